// Package useragent tokenizes HTTP User-Agent strings into browser,
// operating system and rendering engine name/version components.
package useragent

import "strings"

// Component is a single name/version pair extracted from a UA string.
// Either field may be empty when the UA does not carry the information.
type Component struct {
	Name    string
	Version string
}

// Client is the full tokenization result for one User-Agent string
type Client struct {
	Browser Component
	OS      Component
	Engine  Component
}

// Tokenize parses a User-Agent string into its browser, OS and engine
// components. It is a total function: it never fails, and any component
// that cannot be determined is left as its zero value.
func Tokenize(ua string) Client {
	ua = strings.TrimSpace(ua)
	if ua == "" {
		return Client{}
	}

	// Matching works on a single lower-cased copy of the input
	lowerUA := strings.ToLower(ua)

	return Client{
		Browser: ParseBrowser(lowerUA),
		OS:      ParseOS(lowerUA),
		Engine:  ParseEngine(lowerUA),
	}
}
