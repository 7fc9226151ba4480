package useragent

import (
	"regexp"
	"strings"
)

// keywordSet optimizes keyword lookups using map structure for O(1) access
type keywordSet map[string]struct{}

func newKeywordSet(keywords ...string) keywordSet {
	result := make(keywordSet, len(keywords))
	for _, word := range keywords {
		result[word] = struct{}{}
	}
	return result
}

func (k keywordSet) contains(s string) bool {
	for keyword := range k {
		if strings.Contains(s, keyword) {
			return true
		}
	}
	return false
}

// OS detection keyword sets optimized for common traffic patterns
var (
	windowsPhoneKeywords = newKeywordSet("windows phone")
	windowsKeywords      = newKeywordSet("windows")
	iOSKeywords          = newKeywordSet("iphone", "ipad", "ipod")
	macOSKeywords        = newKeywordSet("macintosh", "mac os x")
	androidKeywords      = newKeywordSet("android")
	chromeOSKeywords     = newKeywordSet("cros", "chromeos", "chrome os")
	linuxKeywords        = newKeywordSet("linux", "ubuntu", "debian", "fedora", "mint", "x11")
)

// OS version extraction. Apple platforms separate components with
// underscores inside the parenthesized system token.
var (
	windowsPhoneVersion = regexp.MustCompile(`windows phone (?:os )?([\d.]+)`)
	windowsVersion      = regexp.MustCompile(`windows nt ([\d.]+)`)
	iOSVersion          = regexp.MustCompile(`(?:iphone|ipad|ipod).*os (\d+)(?:[_.](\d+))?(?:[_.](\d+))?`)
	macOSVersion        = regexp.MustCompile(`mac os x (\d+)(?:[_.](\d+))?(?:[_.](\d+))?`)
	androidVersion      = regexp.MustCompile(`android[ /-]?([\d.]+)`)
	chromeOSVersion     = regexp.MustCompile(`cros [^\s)]+ ([\d.]+)`)
)

// joinVersionGroups assembles a dotted version out of regex submatches,
// skipping absent groups
func joinVersionGroups(matches []string) string {
	if len(matches) < 2 {
		return ""
	}
	parts := make([]string, 0, len(matches)-1)
	for _, m := range matches[1:] {
		if m == "" {
			break
		}
		parts = append(parts, m)
	}
	return strings.Join(parts, ".")
}

// ParseOS identifies the operating system and its version from a
// lower-cased UA string. Order reflects typical web traffic patterns:
// Windows first, then mobile OSes.
func ParseOS(lowerUA string) Component {
	if lowerUA == "" {
		return Component{}
	}

	// Windows dominates desktop traffic, check it first
	if windowsKeywords.contains(lowerUA) {
		if windowsPhoneKeywords.contains(lowerUA) {
			return Component{Name: OSWindowsPhone, Version: extractVersion(lowerUA, windowsPhoneVersion)}
		}
		return Component{Name: OSWindows, Version: extractVersion(lowerUA, windowsVersion)}
	}

	if iOSKeywords.contains(lowerUA) {
		return Component{Name: OSiOS, Version: joinVersionGroups(iOSVersion.FindStringSubmatch(lowerUA))}
	}

	if macOSKeywords.contains(lowerUA) {
		return Component{Name: OSMacOS, Version: joinVersionGroups(macOSVersion.FindStringSubmatch(lowerUA))}
	}

	if androidKeywords.contains(lowerUA) {
		return Component{Name: OSAndroid, Version: extractVersion(lowerUA, androidVersion)}
	}

	// CrOS carries "x11" too, so it must be checked before Linux
	if chromeOSKeywords.contains(lowerUA) {
		return Component{Name: OSChromeOS, Version: extractVersion(lowerUA, chromeOSVersion)}
	}

	if linuxKeywords.contains(lowerUA) {
		return Component{Name: OSLinux}
	}

	return Component{}
}
