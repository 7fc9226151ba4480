package browserlist

// browserStat is one browser's slice of the bundled compatibility
// dataset. Versions are stored oldest-first in release order; entries
// may denote a span of OS-coupled releases ("13.0-13.1") the way the
// upstream caniuse data publishes them. Usage numbers are global
// market-share percentages per version.
type browserStat struct {
	versions   []string
	unreleased []string
	usage      map[string]float64
}

// Dataset snapshot. Short codes follow the caniuse naming that query
// authors already know (and_chr, ios_saf, op_mini, ...).
var browsers = map[string]browserStat{
	"chrome": {
		versions:   []string{"49", "79", "83", "87", "91", "95", "96", "97", "98", "99", "100", "101", "102", "103", "104", "105"},
		unreleased: []string{"106", "107"},
		usage: map[string]float64{
			"49": 0.3, "91": 0.4, "99": 0.3, "100": 0.4, "101": 0.3,
			"102": 0.5, "103": 1.4, "104": 6.8, "105": 12.1,
		},
	},
	"edge": {
		versions: []string{"18", "101", "102", "103", "104", "105"},
		usage:    map[string]float64{"18": 0.1, "103": 0.3, "104": 1.9, "105": 2.2},
	},
	"firefox": {
		versions:   []string{"78", "91", "102", "103", "104", "105"},
		unreleased: []string{"106"},
		usage:      map[string]float64{"91": 0.1, "102": 0.5, "103": 0.3, "104": 1.6, "105": 0.4},
	},
	"safari": {
		versions:   []string{"13.1", "14", "14.1", "15.1", "15.2", "15.3", "15.4", "15.5", "15.6", "16.0"},
		unreleased: []string{"TP"},
		usage:      map[string]float64{"14.1": 0.2, "15.4": 0.2, "15.5": 0.4, "15.6": 1.9, "16.0": 0.3},
	},
	"ios_saf": {
		versions: []string{
			"12.0-12.1", "12.2-12.5", "13.0-13.1", "13.2-13.3", "13.4-13.7",
			"14.0-14.4", "14.5-14.8", "15.0-15.1", "15.2-15.3", "15.4",
			"15.5", "15.6", "16.0",
		},
		usage: map[string]float64{
			"12.2-12.5": 0.4, "14.0-14.4": 0.4, "14.5-14.8": 0.9,
			"15.2-15.3": 0.4, "15.4": 0.4, "15.5": 1.1, "15.6": 2.6, "16.0": 0.6,
		},
	},
	"and_chr": {
		versions: []string{"105"},
		usage:    map[string]float64{"105": 41.3},
	},
	"and_ff": {
		versions: []string{"104"},
		usage:    map[string]float64{"104": 0.3},
	},
	"android": {
		versions: []string{"4.2-4.3", "4.4", "4.4.3-4.4.4", "105"},
		usage:    map[string]float64{"4.4.3-4.4.4": 0.2, "105": 0.6},
	},
	"samsung": {
		versions: []string{"4", "16.0", "17.0", "18.0"},
		usage:    map[string]float64{"17.0": 0.3, "18.0": 2.6},
	},
	"opera": {
		versions: []string{"12.1", "89", "90", "91"},
		usage:    map[string]float64{"89": 0.2, "90": 1.0, "91": 0.2},
	},
	"op_mini": {
		versions: []string{"all"},
		usage:    map[string]float64{"all": 1.0},
	},
	"op_mob": {
		versions: []string{"12", "12.1", "64"},
		usage:    map[string]float64{"64": 1.3},
	},
	"ie": {
		versions: []string{"9", "10", "11"},
		usage:    map[string]float64{"11": 0.4},
	},
	"ie_mob": {
		versions: []string{"10", "11"},
	},
	"bb": {
		versions: []string{"7", "10"},
	},
	"and_qq": {
		versions: []string{"13.1"},
		usage:    map[string]float64{"13.1": 0.6},
	},
	"and_uc": {
		versions: []string{"13.4"},
		usage:    map[string]float64{"13.4": 2.9},
	},
	"baidu": {
		versions: []string{"13.18"},
		usage:    map[string]float64{"13.18": 0.3},
	},
	"kaios": {
		versions: []string{"2.5"},
		usage:    map[string]float64{"2.5": 0.4},
	},
}

// firefoxESR is the extended-support Firefox release line
const firefoxESR = "102"

// deadQueries defines browsers without official support or updates
var deadQueries = []string{
	"ie <= 11",
	"ie_mob <= 11",
	"bb <= 10",
	"op_mob <= 12.1",
	"samsung 4",
}

// defaultQueries backs the "defaults" shortcut
var defaultQueries = []string{"> 0.5%", "last 2 versions", "firefox esr", "not dead"}

// browserAliases maps alternate spellings accepted in queries onto
// dataset short codes. Lookups are case-insensitive; dataset keys
// themselves are always accepted.
var browserAliases = map[string]string{
	"explorer":        "ie",
	"explorermobile":  "ie_mob",
	"blackberry":      "bb",
	"chromeandroid":   "and_chr",
	"firefoxandroid":  "and_ff",
	"ucandroid":       "and_uc",
	"qqandroid":       "and_qq",
	"baiduandroid":    "baidu",
	"operamini":       "op_mini",
	"operamobile":     "op_mob",
	"ios":             "ios_saf",
	"ff":              "firefox",
	"fx":              "firefox",
	"androidbrowser":  "android",
	"samsunginternet": "samsung",
}

// resolveName maps a query-supplied browser name onto its dataset key
func resolveName(name string) (string, bool) {
	if _, ok := browsers[name]; ok {
		return name, true
	}
	if canonical, ok := browserAliases[name]; ok {
		return canonical, true
	}
	return "", false
}
