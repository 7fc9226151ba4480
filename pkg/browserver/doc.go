// Package browserver provides the version arithmetic behind browser
// compatibility matching: canonicalization of loose version strings,
// expansion of hyphenated version ranges, and strictness-based
// comparison of a candidate version against a reference.
//
// Browser version strings in the wild are rarely proper semver: a
// User-Agent may report "10", a compatibility dataset may publish
// "13.0-13.1", and technical-preview channels carry no number at all.
// This package maps all of them onto exactly three non-negative integer
// components so a single semantic-version comparator
// (github.com/Masterminds/semver/v3) can do the rest.
//
// # Architecture
//
// Normalize is the single entry point everything else funnels through:
// both ExpandRange and Satisfies normalize their inputs before touching
// the comparator, which keeps the "always three components, never a
// range, never a non-numeric token" invariant local to one function.
// Comparison strictness is an explicit enum (Strictness) mapped to
// explicit range bounds rather than string-prefix tricks, so each mode
// is independently testable.
//
// # Error Handling
//
// There is none to speak of: every function in this package is total.
// Malformed input degrades to zero components ("garbage" normalizes to
// "0.0.0") instead of returning an error, because an unreadable version
// must mean "no match", never a failure of the caller.
package browserver
