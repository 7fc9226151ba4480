package browserver

import (
	"fmt"

	"github.com/Masterminds/semver/v3"
)

// Strictness selects how much of a reference version must match during
// comparison.
type Strictness int

const (
	// StrictnessExact requires major, minor and patch to match.
	StrictnessExact Strictness = iota

	// StrictnessIgnorePatch requires the same major.minor; any patch
	// qualifies.
	StrictnessIgnorePatch

	// StrictnessIgnoreMinor requires the same major; any minor and
	// patch qualify.
	StrictnessIgnoreMinor
)

// Satisfies reports whether candidate fulfills reference under the
// given strictness. Both versions are normalized first, so partial and
// malformed inputs are handled the same way as everywhere else.
//
// With allowHigher set the candidate qualifies whenever it sorts at or
// above the reference. Otherwise the reference is widened into an
// explicit range derived from the strictness and the candidate must
// fall inside it.
func Satisfies(candidate, reference string, s Strictness, allowHigher bool) bool {
	cand, err := semver.StrictNewVersion(Normalize(candidate))
	if err != nil {
		return false
	}
	ref, err := semver.StrictNewVersion(Normalize(reference))
	if err != nil {
		return false
	}

	if allowHigher {
		return cand.Compare(ref) >= 0
	}

	rng, err := semver.NewConstraint(referenceRange(ref, s))
	if err != nil {
		return false
	}
	return rng.Check(cand)
}

// referenceRange builds the constraint expression a candidate must
// satisfy. Ranges are spelled out as explicit bounds instead of caret
// or tilde shorthand so that major version 0 behaves like any other
// major.
func referenceRange(ref *semver.Version, s Strictness) string {
	switch s {
	case StrictnessIgnorePatch:
		return fmt.Sprintf(">= %d.%d.0, < %d.%d.0", ref.Major(), ref.Minor(), ref.Major(), ref.Minor()+1)
	case StrictnessIgnoreMinor:
		return fmt.Sprintf(">= %d.0.0, < %d.0.0", ref.Major(), ref.Major()+1)
	default:
		return "= " + ref.String()
	}
}
