package browsergate

import (
	"regexp"
	"sort"
	"strings"
)

// familyAliases maps the short codes used by the query ecosystem onto
// the canonical family names used as comparison keys. Many-to-one:
// several codes collapse into one family.
var familyAliases = map[string]string{
	"and_chr":        "Chrome",
	"and_ff":         "Firefox",
	"and_qq":         "QQAndroid",
	"and_uc":         "UCAndroid",
	"baidu":          "BaiduAndroid",
	"bb":             "BlackBerry",
	"chromeandroid":  "Chrome",
	"firefoxandroid": "Firefox",
	"ie":             "Explorer",
	"ie_mob":         "ExplorerMobile",
	"ios_saf":        "iOS",
	"kaios":          "KaiOS",
	"op_mini":        "OperaMini",
	"op_mob":         "OperaMobile",
	"samsung":        "Samsung",
}

// aliasPattern matches any known short code, longer codes first so
// that "ie_mob" never loses to its "ie" prefix.
var aliasPattern = regexp.MustCompile(buildAliasAlternation())

func buildAliasAlternation() string {
	codes := make([]string, 0, len(familyAliases))
	for code := range familyAliases {
		codes = append(codes, code)
	}
	sort.Slice(codes, func(i, j int) bool {
		if len(codes[i]) != len(codes[j]) {
			return len(codes[i]) > len(codes[j])
		}
		return codes[i] < codes[j]
	})
	return "(" + strings.Join(codes, "|") + ")"
}

// canonicalFamily maps a short code onto its canonical family name.
// Unknown names pass through unchanged.
func canonicalFamily(name string) string {
	if family, ok := familyAliases[strings.ToLower(name)]; ok {
		return family
	}
	return name
}

// NormalizeQuery rewrites the first known short code inside a free-text
// compatibility query to its canonical family name, so that queries
// written against either naming keep working. Only the first match is
// replaced; a query addresses one browser.
func NormalizeQuery(query string) string {
	match := aliasPattern.FindString(query)
	if match == "" {
		return query
	}
	return strings.Replace(query, match, familyAliases[match], 1)
}
