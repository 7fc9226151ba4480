package browserlist

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"

	"github.com/dmitrymomot/browsergate/pkg/browserver"
)

// selection is one browser/version pair picked by a query. version is
// a dataset-native token and may be a range ("13.0-13.1") or "TP".
type selection struct {
	browser string
	version string
}

func (s selection) String() string {
	return s.browser + " " + s.version
}

// queryPattern binds one query form to its resolver. Patterns are
// evaluated in order against a lower-cased, whitespace-trimmed query
// unit; the first matching form wins, so specific forms must precede
// the catch-all "name version" one.
type queryPattern struct {
	re      *regexp.Regexp
	resolve func(m []string) ([]selection, error)
}

var queryPatterns []queryPattern

// Assigned in init to break the initialization cycle between
// queryPatterns and the resolvers that recurse through resolveUnit.
func init() {
	queryPatterns = []queryPattern{
		{regexp.MustCompile(`^defaults$`), queryDefaults},
		{regexp.MustCompile(`^dead$`), queryDead},
		{regexp.MustCompile(`^(?:firefox|ff|fx)\s+esr$`), queryFirefoxESR},
		{regexp.MustCompile(`^last\s+(\d+)\s+versions$`), queryLastVersions},
		{regexp.MustCompile(`^last\s+(\d+)\s+(\S+)\s+versions$`), queryLastBrowserVersions},
		{regexp.MustCompile(`^unreleased\s+versions$`), queryUnreleased},
		{regexp.MustCompile(`^unreleased\s+(\S+)\s+versions$`), queryUnreleasedBrowser},
		{regexp.MustCompile(`^(>=?|<=?)\s*(\d+(?:\.\d+)?)%$`), queryUsage},
		{regexp.MustCompile(`^(\S+)\s+tp$`), queryTechPreview},
		{regexp.MustCompile(`^(\S+)\s+([\d.]+)\s*-\s*([\d.]+)$`), queryVersionRange},
		{regexp.MustCompile(`^(\S+)\s+(>=?|<=?)\s*([\d.]+)$`), queryVersionCompare},
		{regexp.MustCompile(`^(\S+)\s+(all|[\d.]+(?:-[\d.]+)?)$`), queryExactVersion},
	}
}

// lowBound parses the lower end of a dataset version token for
// ordering purposes. "all" and other non-numeric tokens sort as zero.
func lowBound(version string) *semver.Version {
	low, _, _ := strings.Cut(version, "-")
	v, err := semver.StrictNewVersion(browserver.Normalize(low))
	if err != nil {
		return semver.New(0, 0, 0, "", "")
	}
	return v
}

// highBound parses the upper end of a dataset version token; for
// non-range tokens it equals the low bound
func highBound(version string) *semver.Version {
	_, high, ok := strings.Cut(version, "-")
	if !ok {
		return lowBound(version)
	}
	v, err := semver.StrictNewVersion(browserver.Normalize(high))
	if err != nil {
		return lowBound(version)
	}
	return v
}

func namedStat(rawName string) (string, browserStat, error) {
	name, ok := resolveName(rawName)
	if !ok {
		return "", browserStat{}, fmt.Errorf("%w: %q", ErrUnknownBrowser, rawName)
	}
	return name, browsers[name], nil
}

func queryDefaults([]string) ([]selection, error) {
	return resolveQueryList(defaultQueries)
}

func queryDead([]string) ([]selection, error) {
	return resolveQueryList(deadQueries)
}

func queryFirefoxESR([]string) ([]selection, error) {
	return []selection{{browser: "firefox", version: firefoxESR}}, nil
}

func queryLastVersions(m []string) ([]selection, error) {
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuery, m[0])
	}

	var out []selection
	for _, name := range browserNames() {
		out = append(out, lastN(name, n)...)
	}
	return out, nil
}

func queryLastBrowserVersions(m []string) ([]selection, error) {
	n, err := strconv.Atoi(m[1])
	if err != nil || n <= 0 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuery, m[0])
	}
	name, _, err := namedStat(m[2])
	if err != nil {
		return nil, err
	}
	return lastN(name, n), nil
}

func lastN(name string, n int) []selection {
	versions := browsers[name].versions
	if n > len(versions) {
		n = len(versions)
	}

	out := make([]selection, 0, n)
	for _, v := range versions[len(versions)-n:] {
		out = append(out, selection{browser: name, version: v})
	}
	return out
}

func queryUnreleased([]string) ([]selection, error) {
	var out []selection
	for _, name := range browserNames() {
		for _, v := range browsers[name].unreleased {
			out = append(out, selection{browser: name, version: v})
		}
	}
	return out, nil
}

func queryUnreleasedBrowser(m []string) ([]selection, error) {
	name, stat, err := namedStat(m[1])
	if err != nil {
		return nil, err
	}

	out := make([]selection, 0, len(stat.unreleased))
	for _, v := range stat.unreleased {
		out = append(out, selection{browser: name, version: v})
	}
	return out, nil
}

func queryUsage(m []string) ([]selection, error) {
	threshold, err := strconv.ParseFloat(m[2], 64)
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrUnknownQuery, m[0])
	}

	include := func(share float64) bool {
		switch m[1] {
		case ">":
			return share > threshold
		case ">=":
			return share >= threshold
		case "<":
			return share < threshold
		default:
			return share <= threshold
		}
	}

	var out []selection
	for _, name := range browserNames() {
		stat := browsers[name]
		for _, v := range stat.versions {
			if include(stat.usage[v]) {
				out = append(out, selection{browser: name, version: v})
			}
		}
	}
	return out, nil
}

func queryTechPreview(m []string) ([]selection, error) {
	name, stat, err := namedStat(m[1])
	if err != nil {
		return nil, err
	}
	for _, v := range stat.unreleased {
		if strings.EqualFold(v, "tp") {
			return []selection{{browser: name, version: v}}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q has no technical preview channel", ErrUnknownVersion, name)
}

func queryVersionRange(m []string) ([]selection, error) {
	name, stat, err := namedStat(m[1])
	if err != nil {
		return nil, err
	}

	from := lowBound(m[2])
	to := lowBound(m[3])

	var out []selection
	for _, v := range stat.versions {
		low := lowBound(v)
		if low.Compare(from) >= 0 && low.Compare(to) <= 0 {
			out = append(out, selection{browser: name, version: v})
		}
	}
	return out, nil
}

func queryVersionCompare(m []string) ([]selection, error) {
	name, stat, err := namedStat(m[1])
	if err != nil {
		return nil, err
	}

	pivot := lowBound(m[3])
	include := func(v *semver.Version) bool {
		switch m[2] {
		case ">":
			return v.Compare(pivot) > 0
		case ">=":
			return v.Compare(pivot) >= 0
		case "<":
			return v.Compare(pivot) < 0
		default:
			return v.Compare(pivot) <= 0
		}
	}

	var out []selection
	for _, v := range stat.versions {
		if include(lowBound(v)) {
			out = append(out, selection{browser: name, version: v})
		}
	}
	return out, nil
}

func queryExactVersion(m []string) ([]selection, error) {
	name, stat, err := namedStat(m[1])
	if err != nil {
		return nil, err
	}

	wanted := m[2]
	for _, v := range stat.versions {
		if v == wanted {
			return []selection{{browser: name, version: v}}, nil
		}
	}

	// Lenient matching: "samsung 17" means "samsung 17.0", and a
	// version inside a published span resolves to that span token
	pivot := lowBound(wanted)
	for _, v := range stat.versions {
		if v == "all" {
			continue
		}
		if pivot.Compare(lowBound(v)) >= 0 && pivot.Compare(highBound(v)) <= 0 {
			return []selection{{browser: name, version: v}}, nil
		}
	}

	return nil, fmt.Errorf("%w: %q of %q", ErrUnknownVersion, wanted, name)
}

// browserNames returns dataset keys in stable alphabetical order
func browserNames() []string {
	names := make([]string, 0, len(browsers))
	for name := range browsers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// releaseIndex positions a version within a browser's release history,
// unreleased channels sorting after every released version
func releaseIndex(name, version string) int {
	stat := browsers[name]
	for i, v := range stat.versions {
		if v == version {
			return i
		}
	}
	for i, v := range stat.unreleased {
		if v == version {
			return len(stat.versions) + i
		}
	}
	return -1
}

// resolveQueryList folds a list of query strings into an ordered,
// deduplicated selection set. Units combine sequentially: plain units
// and "or" union, "and" intersects, "not" subtracts.
func resolveQueryList(queries []string) ([]selection, error) {
	type unit struct {
		combinator string // "or" or "and"
		negated    bool
		text       string
	}

	var units []unit
	for _, query := range queries {
		query = strings.ToLower(strings.TrimSpace(query))
		for _, orPart := range splitAny(query, ",", " or ") {
			for i, andPart := range strings.Split(orPart, " and ") {
				u := unit{combinator: "and"}
				if i == 0 {
					u.combinator = "or"
				}
				u.text = strings.TrimSpace(andPart)
				if rest, ok := strings.CutPrefix(u.text, "not "); ok {
					u.negated = true
					u.text = strings.TrimSpace(rest)
				}
				if u.text != "" {
					units = append(units, u)
				}
			}
		}
	}

	result := newSelectionSet()
	for i, u := range units {
		if i == 0 && u.negated {
			return nil, ErrNegationFirst
		}

		picked, err := resolveUnit(u.text)
		if err != nil {
			return nil, err
		}

		switch {
		case u.negated:
			result.subtract(picked)
		case u.combinator == "and":
			result.intersect(picked)
		default:
			result.union(picked)
		}
	}

	return result.ordered, nil
}

func resolveUnit(text string) ([]selection, error) {
	for _, pattern := range queryPatterns {
		if m := pattern.re.FindStringSubmatch(text); m != nil {
			return pattern.resolve(m)
		}
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownQuery, text)
}

// splitAny splits s on every separator in seps
func splitAny(s string, seps ...string) []string {
	parts := []string{s}
	for _, sep := range seps {
		var next []string
		for _, p := range parts {
			next = append(next, strings.Split(p, sep)...)
		}
		parts = next
	}
	return parts
}

// selectionSet is an insertion-ordered set of selections
type selectionSet struct {
	ordered []selection
	seen    map[selection]struct{}
}

func newSelectionSet() *selectionSet {
	return &selectionSet{seen: make(map[selection]struct{})}
}

func (s *selectionSet) union(picked []selection) {
	for _, sel := range picked {
		if _, ok := s.seen[sel]; ok {
			continue
		}
		s.seen[sel] = struct{}{}
		s.ordered = append(s.ordered, sel)
	}
}

func (s *selectionSet) intersect(picked []selection) {
	keep := make(map[selection]struct{}, len(picked))
	for _, sel := range picked {
		keep[sel] = struct{}{}
	}
	s.filter(func(sel selection) bool {
		_, ok := keep[sel]
		return ok
	})
}

func (s *selectionSet) subtract(picked []selection) {
	drop := make(map[selection]struct{}, len(picked))
	for _, sel := range picked {
		drop[sel] = struct{}{}
	}
	s.filter(func(sel selection) bool {
		_, ok := drop[sel]
		return !ok
	})
}

func (s *selectionSet) filter(keep func(selection) bool) {
	filtered := s.ordered[:0]
	for _, sel := range s.ordered {
		if keep(sel) {
			filtered = append(filtered, sel)
		} else {
			delete(s.seen, sel)
		}
	}
	s.ordered = filtered
}
