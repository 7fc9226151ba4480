// Package browserlist resolves human-readable browser compatibility
// queries ("last 2 versions", "> 0.5%", "ios >= 13") into concrete
// "<name> <version>" tokens against a bundled compatibility dataset.
//
// It implements the query mini-language popularized by the frontend
// tooling ecosystem closely enough that existing project configuration
// keeps working: the line-oriented .browserslistrc format with named
// [env] sections, the "browserslist" key of package.json, upward
// config discovery from a project directory, and the BROWSERSLIST /
// BROWSERSLIST_CONFIG / BROWSERSLIST_ENV / NODE_ENV environment
// variables.
//
// # Query forms
//
//   - defaults
//   - last N versions, last N <browser> versions
//   - unreleased versions, unreleased <browser> versions
//   - > X%, >= X%, < X%, <= X% (global usage share)
//   - dead
//   - firefox esr
//   - <browser> <version>, <browser> <op> <version>, <browser> A-B
//   - <browser> TP (technical preview channel)
//
// Units combine with "," or "or" (union), "and" (intersection) and a
// leading "not" (subtraction). Matching is case-insensitive and
// accepts both dataset short codes (ios_saf, and_chr) and the longer
// spellings (iOS, ChromeAndroid).
//
// # Architecture
//
// Query forms live in an ordered pattern table (query.go) mapping a
// regular expression to a resolver, the same first-match-wins shape
// used for UA detection elsewhere in this module. The dataset is a
// static snapshot (data.go) compiled into the binary: per-browser
// release histories, unreleased channels, and global usage shares.
// Config discovery (config.go) and environment handling (env.go) only
// run when the caller passes no explicit queries.
//
// # Error Handling
//
// Unlike UA resolution, query resolution fails loudly: ErrUnknownQuery,
// ErrUnknownBrowser and ErrUnknownVersion report caller mistakes in the
// query text, ErrDuplicateConfig and ErrInvalidConfig report broken
// project configuration. All are sentinel errors testable with
// errors.Is.
package browserlist
