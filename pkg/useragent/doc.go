// Package useragent provides fast and memory-efficient tokenization of
// HTTP User-Agent strings into browser, operating system and rendering
// engine name/version triples.
//
// It identifies:
//   - Browser name and version – Chrome and its mobile/webview/headless
//     variants, Safari, Firefox, Edge, Opera, Samsung Internet, IE, …
//   - Operating system and version – Windows, macOS, iOS, Android,
//     Linux, Chrome OS
//   - Rendering engine and version – Blink, WebKit, Gecko, Trident,
//     EdgeHTML, Presto
//
// Tokenization is performed with plain-string look-ups and pre-compiled
// regular expressions – no heavyweight dependency on the upstream
// Chromium UA-parser – which keeps allocations low and makes the
// package suitable for high-traffic servers and edge environments.
//
// # Architecture
//
// The high-level entry point is Tokenize, which orchestrates dedicated
// parsers for browser, operating system and engine. Each of those lives
// in its own file (browser.go, os.go, engine.go) and relies on ordered
// pattern tables and curated keyword sets to avoid expensive regex
// evaluations where possible. Browser patterns are evaluated in a fixed
// priority order because UA tokens overlap heavily: everything in the
// Chromium family carries a Chrome token, and almost everything carries
// a Safari one. Common string constants reside in constants.go.
//
// # Error Handling
//
// There is none: Tokenize is total. A UA string that identifies nothing
// yields a zero Client, and any individual component the string does
// not carry is left as its zero value. Distinguishing "absent" from
// "malformed" is deliberately left to callers, which apply their own
// fallback heuristics per component.
//
// # Usage
//
//	client := useragent.Tokenize(r.UserAgent())
//	if client.Browser.Name == useragent.BrowserChrome {
//	    // serve modern bundle
//	}
//
// All package-level state is immutable after init, so Tokenize is safe
// for concurrent use without locking.
package useragent
