package browserver

import (
	"strconv"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Normalize converts an arbitrary version string into a canonical
// three-component numeric form ("MAJOR.MINOR.PATCH").
//
// Already-valid semantic versions are canonicalized through the strict
// semver parser. Everything else is split on dots, truncated to three
// components and padded with zeros. Components that fail to parse as
// non-negative integers degrade to 0 rather than producing an error, so
// Normalize is total: any input yields a valid result, the empty string
// yields "0.0.0".
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if version == "" {
		return "0.0.0"
	}

	// Strict parse preserves correctness for inputs that are already
	// proper semver (including pre-release and build metadata).
	if v, err := semver.StrictNewVersion(version); err == nil {
		return v.String()
	}

	parts := strings.Split(version, ".")
	if len(parts) > 3 {
		parts = parts[:3]
	}

	nums := [3]uint64{}
	for i, part := range parts {
		n, err := strconv.ParseUint(part, 10, 64)
		if err != nil {
			continue // malformed component stays 0
		}
		nums[i] = n
	}

	return semver.New(nums[0], nums[1], nums[2], "", "").String()
}

// IsRange reports whether token denotes a hyphenated version range.
// The hyphen must appear after the first character so that tokens with
// a leading hyphen are not mistaken for ranges.
func IsRange(token string) bool {
	return strings.Index(token, "-") > 0
}

// ExpandRange expands a hyphenated range token ("<start>-<end>") into
// the discrete list of minor versions it denotes, inclusive of both
// bounds. Start and end are normalized independently. When end sorts
// below start the result contains only start; the walk emits before
// comparing, so it can never iterate backwards or spin.
func ExpandRange(token string) []string {
	start, end, _ := strings.Cut(token, "-")

	cur, err := semver.StrictNewVersion(Normalize(start))
	if err != nil {
		return []string{Normalize(start)}
	}
	stop, err := semver.StrictNewVersion(Normalize(end))
	if err != nil {
		return []string{cur.String()}
	}

	var out []string
	for {
		out = append(out, cur.String())
		next := cur.IncMinor()
		if stop.LessThan(&next) {
			return out
		}
		cur = &next
	}
}
