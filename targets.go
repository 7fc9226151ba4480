package browsergate

import (
	"strings"

	"github.com/dmitrymomot/browsergate/pkg/browserver"
)

// BrowserTarget is one browser version a caller wants to support,
// drawn from a compatibility query's expansion. Unlike ResolvedBrowser
// its version stays un-normalized until comparison time.
type BrowserTarget struct {
	Family  string
	Version string
}

// technicalPreview marks a pre-release channel with no comparable
// version number.
const technicalPreview = "TP"

// parseTargets turns the query engine's "<name> <version>" tokens into
// a flat target list: families canonicalized, ranged versions expanded
// into one target per minor version, technical-preview tokens dropped.
// Input order is preserved and duplicates are kept; the match engine
// treats the list as a disjunction, so both are harmless.
func parseTargets(tokens []string) []BrowserTarget {
	targets := make([]BrowserTarget, 0, len(tokens))

	for _, token := range tokens {
		name, version, ok := strings.Cut(token, " ")
		if !ok || version == technicalPreview {
			continue
		}

		family := canonicalFamily(name)

		if browserver.IsRange(version) {
			for _, expanded := range browserver.ExpandRange(version) {
				targets = append(targets, BrowserTarget{Family: family, Version: expanded})
			}
			continue
		}

		targets = append(targets, BrowserTarget{Family: family, Version: version})
	}

	return targets
}
