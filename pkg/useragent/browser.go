package useragent

import (
	"regexp"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// browserPattern defines a detection rule for a single browser identity.
// Patterns are evaluated against a lower-cased UA string in orderHint
// order; the first matching pattern wins.
type browserPattern struct {
	name      string
	all       []string // every keyword must be present
	any       []string // at least one keyword must be present
	none      []string // no keyword may be present
	version   *regexp.Regexp
	orderHint int
}

// extractVersion pulls the first capture group out of the UA string.
// Returns an empty string when the regex does not match; callers treat
// a missing version as "unknown", not as an error.
func extractVersion(ua string, regex *regexp.Regexp) string {
	matches := regex.FindStringSubmatch(ua)
	if len(matches) > 1 {
		version := matches[1]
		// Limit version length to avoid excessively long versions
		if len(version) > 20 {
			version = version[:20]
		}
		return version
	}
	return ""
}

// matchPattern checks if the UA string satisfies a browser pattern
func matchPattern(ua string, pattern browserPattern) bool {
	for _, keyword := range pattern.all {
		if !strings.Contains(ua, keyword) {
			return false
		}
	}

	if len(pattern.any) > 0 {
		found := false
		for _, keyword := range pattern.any {
			if strings.Contains(ua, keyword) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	for _, keyword := range pattern.none {
		if strings.Contains(ua, keyword) {
			return false
		}
	}

	return true
}

// Browser detection patterns in order of checking priority.
// Chromium-family variants must precede plain Chrome, and everything
// that embeds a Chrome token (Edge, Opera, Samsung, Yandex) must come
// earlier still. Safari goes last because nearly every WebKit UA
// carries a Safari token.
var browserPatterns = []browserPattern{
	{
		name:      BrowserEdge,
		any:       []string{"edgios/", "edga/", "edge/", "edg/"},
		version:   regexp.MustCompile(`(?:edgios|edga|edge|edg)/([\d.]+)`),
		orderHint: 10,
	},
	{
		name:      BrowserChromeHeadless,
		any:       []string{"headlesschrome"},
		version:   regexp.MustCompile(`headlesschrome/([\d.]+)`),
		orderHint: 20,
	},
	{
		name:      BrowserChromeWebView,
		all:       []string{"chrome/", "; wv)"},
		version:   regexp.MustCompile(`chrome/([\d.]+)`),
		orderHint: 30,
	},
	{
		name:      BrowserSamsung,
		any:       []string{"samsungbrowser/"},
		version:   regexp.MustCompile(`samsungbrowser/([\d.]+)`),
		orderHint: 40,
	},
	{
		name:      BrowserUC,
		any:       []string{"ucbrowser"},
		version:   regexp.MustCompile(`ucbrowser[/\s]([\d.]+)`),
		orderHint: 50,
	},
	{
		name:      BrowserYandex,
		any:       []string{"yabrowser"},
		version:   regexp.MustCompile(`yabrowser[/\s]([\d.]+)`),
		orderHint: 60,
	},
	{
		name:      BrowserOpera,
		any:       []string{"opr/"},
		version:   regexp.MustCompile(`opr/([\d.]+)`),
		orderHint: 70,
	},
	{
		name:      BrowserOperaMobile,
		all:       []string{"opera mobi"},
		version:   regexp.MustCompile(`version/([\d.]+)`),
		orderHint: 75,
	},
	{
		name:      BrowserOpera, // Presto-era Opera reports its version in a Version token
		all:       []string{"opera", "version/"},
		version:   regexp.MustCompile(`version/([\d.]+)`),
		orderHint: 80,
	},
	{
		name:      BrowserOpera,
		any:       []string{"opera/", "opera "},
		version:   regexp.MustCompile(`opera[/\s]([\d.]+)`),
		orderHint: 85,
	},
	{
		name:      BrowserChromium,
		any:       []string{"chromium/"},
		version:   regexp.MustCompile(`chromium/([\d.]+)`),
		orderHint: 90,
	},
	{
		name:      BrowserChromeMobile, // Chrome on iOS
		any:       []string{"crios/"},
		version:   regexp.MustCompile(`crios/([\d.]+)`),
		orderHint: 95,
	},
	{
		name:      BrowserChromeMobile,
		all:       []string{"chrome/", "mobile"},
		none:      []string{"browser/"},
		version:   regexp.MustCompile(`chrome/([\d.]+)`),
		orderHint: 100,
	},
	{
		name:      BrowserChrome,
		all:       []string{"chrome/"},
		none:      []string{"browser/"},
		version:   regexp.MustCompile(`chrome/([\d.]+)`),
		orderHint: 110,
	},
	{
		name:      BrowserFirefoxMobile, // Firefox on iOS
		any:       []string{"fxios/"},
		version:   regexp.MustCompile(`fxios/([\d.]+)`),
		orderHint: 115,
	},
	{
		name:      BrowserFirefoxMobile,
		all:       []string{"firefox/"},
		any:       []string{"mobile", "android", "tablet"},
		version:   regexp.MustCompile(`firefox/([\d.]+)`),
		orderHint: 120,
	},
	{
		name:      BrowserFirefox,
		all:       []string{"firefox/"},
		none:      []string{"seamonkey"},
		version:   regexp.MustCompile(`firefox/([\d.]+)`),
		orderHint: 125,
	},
	{
		name:      BrowserIEMobile,
		any:       []string{"iemobile"},
		version:   regexp.MustCompile(`iemobile[/\s]([\d.]+)`),
		orderHint: 130,
	},
	{
		name:      BrowserIE,
		any:       []string{"msie "},
		version:   regexp.MustCompile(`msie ([\d.]+)`),
		orderHint: 135,
	},
	{
		name:      BrowserAndroid,
		all:       []string{"android", "version/", "safari"},
		none:      []string{"chrome", "crios"},
		version:   regexp.MustCompile(`version/([\d.]+)`),
		orderHint: 140,
	},
	{
		// Mobile Safari has no version token inside webviews; the
		// version stays empty there and callers fall back to the OS
		name:      BrowserMobileSafari,
		all:       []string{"safari"},
		any:       []string{"iphone", "ipad", "ipod"},
		none:      []string{"chrome", "crios", "android"},
		version:   regexp.MustCompile(`version/([\d.]+)`),
		orderHint: 150,
	},
	{
		name:      BrowserSafari,
		all:       []string{"safari", "version/"},
		none:      []string{"chrome", "chromium", "crios", "android", "iphone", "ipad", "ipod"},
		version:   regexp.MustCompile(`version/([\d.]+)`),
		orderHint: 155,
	},
}

// genericBrowser catches vendor forks that advertise themselves with a
// "<name>browser/<version>" product token (MiuiBrowser, HuaweiBrowser,
// VivoBrowser, ...). They are reported under their own name so callers
// can decide how to proxy them.
var genericBrowser = regexp.MustCompile(`([a-z][a-z0-9_-]*browser)/([\d.]+)`)

var titleCaser = cases.Title(language.English)

// ParseBrowser parses browser identity from a lower-cased UA string
func ParseBrowser(lowerUA string) Component {
	// IE 11 dropped the MSIE token and is only recognizable by Trident
	if strings.Contains(lowerUA, "trident/") && !strings.Contains(lowerUA, "msie") &&
		!strings.Contains(lowerUA, "iemobile") {
		return Component{Name: BrowserIE, Version: "11.0"}
	}

	for _, pattern := range browserPatterns {
		if matchPattern(lowerUA, pattern) {
			return Component{
				Name:    pattern.name,
				Version: extractVersion(lowerUA, pattern.version),
			}
		}
	}

	if matches := genericBrowser.FindStringSubmatch(lowerUA); len(matches) > 2 {
		return Component{
			Name:    titleCaser.String(matches[1]),
			Version: matches[2],
		}
	}

	return Component{}
}
