package useragent

import (
	"regexp"
	"strings"
)

// Engine version extraction regexes
var (
	edgeHTMLVersion = regexp.MustCompile(`edge/([\d.]+)`)
	tridentVersion  = regexp.MustCompile(`trident/([\d.]+)`)
	prestoVersion   = regexp.MustCompile(`presto/([\d.]+)`)
	rvVersion       = regexp.MustCompile(`rv:([\d.]+)`)
	firefoxVersion  = regexp.MustCompile(`firefox/([\d.]+)`)
	chromeVersion   = regexp.MustCompile(`chrom(?:e|ium)/([\d.]+)`)
	webkitVersion   = regexp.MustCompile(`applewebkit/([\d.]+)`)
)

// ParseEngine identifies the rendering engine and its version from a
// lower-cased UA string.
//
// Ordering matters: legacy Edge and IE advertise their own engine
// tokens next to a fake WebKit one, Gecko UAs contain the literal
// "like gecko", and every Blink UA still carries an AppleWebKit token,
// so the engine-specific markers are checked before the WebKit
// fallback. Chrome on iOS (CriOS) has no Chrome token and correctly
// falls through to WebKit, which is the engine it actually runs.
func ParseEngine(lowerUA string) Component {
	switch {
	case strings.Contains(lowerUA, "edge/"):
		return Component{Name: EngineEdgeHTML, Version: extractVersion(lowerUA, edgeHTMLVersion)}

	case strings.Contains(lowerUA, "trident/"):
		return Component{Name: EngineTrident, Version: extractVersion(lowerUA, tridentVersion)}

	case strings.Contains(lowerUA, "presto/"):
		return Component{Name: EnginePresto, Version: extractVersion(lowerUA, prestoVersion)}

	case strings.Contains(lowerUA, "gecko/"):
		version := extractVersion(lowerUA, rvVersion)
		if version == "" {
			version = extractVersion(lowerUA, firefoxVersion)
		}
		return Component{Name: EngineGecko, Version: version}

	case strings.Contains(lowerUA, "chrome/") || strings.Contains(lowerUA, "chromium/"):
		return Component{Name: EngineBlink, Version: extractVersion(lowerUA, chromeVersion)}

	case strings.Contains(lowerUA, "applewebkit/"):
		return Component{Name: EngineWebKit, Version: extractVersion(lowerUA, webkitVersion)}
	}

	return Component{}
}
