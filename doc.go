// Package browsergate decides whether a browser User-Agent string
// satisfies a compatibility query - a portable description of target
// browsers such as "last 2 Chrome versions" or "iOS >= 13". It is the
// piece that lets a server gate behavior (polyfills, alternate
// bundles, upgrade banners) on what the client can actually run.
//
// # Architecture
//
// Three concerns, three layers:
//
//   - pkg/useragent tokenizes the raw UA string into browser, OS and
//     engine name/version components.
//   - pkg/browserlist expands compatibility queries into concrete
//     "<name> <version>" tokens, including project config discovery.
//   - pkg/browserver normalizes version strings, expands version
//     ranges and compares versions under a strictness policy.
//
// This package ties them together. ResolveUserAgent turns tokenizer
// output into one canonical (family, version) identity through an
// ordered chain of disambiguation rules - in-app webviews, iOS engine
// substitution, Android engine masquerading and vendor forks all
// collapse onto the compatibility family they actually render as.
// Matches resolves both sides and reports whether any target in the
// query's expansion covers the client.
//
// # Usage
//
//	ok, err := browsergate.Matches(r.UserAgent(),
//	    browsergate.WithBrowsers("last 2 versions", "not dead"),
//	)
//	if err != nil {
//	    // invalid query or broken project config
//	}
//	if !ok {
//	    // serve the legacy bundle
//	}
//
// Without WithBrowsers the query list is discovered from project
// configuration (.browserslistrc or package.json) starting at
// WithPath, honoring the usual environment variables.
//
// # Error Handling
//
// UA resolution is heuristic and total: an unreadable User-Agent
// resolves to an empty family that matches nothing, never an error.
// Query resolution is strict and loud: errors from the query engine
// propagate to the caller unchanged, because a broken query is a
// caller mistake rather than client noise.
//
// All package state is immutable after initialization; every function
// here is safe for concurrent use without coordination.
package browsergate
