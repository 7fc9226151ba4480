package browsergate

import (
	"regexp"
	"strings"

	"github.com/dmitrymomot/browsergate/pkg/browserver"
	"github.com/dmitrymomot/browsergate/pkg/useragent"
)

// ResolvedBrowser is the canonical identity inferred from a client's
// User-Agent string. Family is empty when the UA identifies no browser
// at all; Version is always a normalized three-component string, with
// "0.0.0" standing in for anything unresolvable.
type ResolvedBrowser struct {
	Family  string
	Version string
}

// Engine-masquerading markers removed before tokenization.
//
// Chrome, Opera and Firefox on iOS render through a WebView of the
// system WebKit, so their version markers are stripped and the UA
// resolves as the underlying iOS browser. Vivaldi ships the stock
// Chromium engine and intentionally resolves as Chrome. Facebook's
// in-app browser tags an otherwise ordinary webview UA with its own
// bracket group.
var masqueradeMarkers = []*regexp.Regexp{
	regexp.MustCompile(`(?:CriOS|OPiOS|FxiOS)/[\d.]+\s*`),
	regexp.MustCompile(`Vivaldi/[\d.]+\s*`),
	regexp.MustCompile(`\s*\[FB[A-Z_][^\]]*\]`),
}

func stripMasquerade(ua string) string {
	for _, marker := range masqueradeMarkers {
		ua = marker.ReplaceAllString(ua, "")
	}
	return ua
}

// resolveRule is one step of the disambiguation chain: when applies
// returns true, resolve produces the final answer. Rules overlap, so
// they are evaluated strictly in order and the first match wins.
type resolveRule struct {
	applies func(c useragent.Client) bool
	resolve func(c useragent.Client) ResolvedBrowser
}

// chromeVariants are Chrome builds the compatibility dataset does not
// track separately; they proxy to desktop Chrome.
var chromeVariants = []string{
	useragent.BrowserChromeMobile,
	useragent.BrowserChromeWebView,
	useragent.BrowserChromium,
	useragent.BrowserChromeHeadless,
}

var resolveRules = []resolveRule{
	{
		// Safari version numbers on iOS are unreliable; the OS version
		// is the safer proxy when the browser version is missing
		applies: func(c useragent.Client) bool {
			return strings.Contains(c.Browser.Name, "Safari") && c.OS.Name == useragent.OSiOS
		},
		resolve: func(c useragent.Client) ResolvedBrowser {
			version := c.Browser.Version
			if version == "" {
				version = c.OS.Version
			}
			return ResolvedBrowser{Family: "iOS", Version: browserver.Normalize(version)}
		},
	},
	{
		// Every third-party iOS browser shares the system WebKit, so
		// the OS version is the compatibility signal
		applies: func(c useragent.Client) bool { return c.OS.Name == useragent.OSiOS },
		resolve: func(c useragent.Client) ResolvedBrowser {
			return ResolvedBrowser{Family: "iOS", Version: browserver.Normalize(c.OS.Version)}
		},
	},
	{
		applies: func(c useragent.Client) bool {
			for _, variant := range chromeVariants {
				if strings.Contains(c.Browser.Name, variant) {
					return true
				}
			}
			return false
		},
		resolve: func(c useragent.Client) ResolvedBrowser {
			return ResolvedBrowser{Family: "Chrome", Version: browserver.Normalize(c.Browser.Version)}
		},
	},
	{
		applies: func(c useragent.Client) bool { return c.Browser.Name == useragent.BrowserSamsung },
		resolve: func(c useragent.Client) ResolvedBrowser {
			return ResolvedBrowser{Family: "Samsung", Version: browserver.Normalize(c.Browser.Version)}
		},
	},
	{
		applies: func(c useragent.Client) bool { return c.Browser.Name == useragent.BrowserFirefoxMobile },
		resolve: func(c useragent.Client) ResolvedBrowser {
			return ResolvedBrowser{Family: "Firefox", Version: browserver.Normalize(c.Browser.Version)}
		},
	},
	{
		applies: func(c useragent.Client) bool { return c.Browser.Name == useragent.BrowserIE },
		resolve: func(c useragent.Client) ResolvedBrowser {
			return ResolvedBrowser{Family: "Explorer", Version: browserver.Normalize(c.Browser.Version)}
		},
	},
	{
		applies: func(c useragent.Client) bool { return c.Browser.Name == useragent.BrowserIEMobile },
		resolve: func(c useragent.Client) ResolvedBrowser {
			return ResolvedBrowser{Family: "ExplorerMobile", Version: browserver.Normalize(c.Browser.Version)}
		},
	},
	{
		// Obscure Android Chromium forks: the Blink engine version is
		// a more reliable compatibility signal than whatever version
		// the fork reports for itself
		applies: func(c useragent.Client) bool {
			return c.Engine.Name == useragent.EngineBlink && c.OS.Name == useragent.OSAndroid
		},
		resolve: func(c useragent.Client) ResolvedBrowser {
			return ResolvedBrowser{Family: "Chrome", Version: browserver.Normalize(c.Engine.Version)}
		},
	},
	{
		// The legacy stock Android browser versions track OS releases
		applies: func(c useragent.Client) bool { return c.Browser.Name == useragent.BrowserAndroid },
		resolve: func(c useragent.Client) ResolvedBrowser {
			return ResolvedBrowser{Family: "Android", Version: browserver.Normalize(c.OS.Version)}
		},
	},
}

// ResolveUserAgent infers the canonical (family, version) identity from
// a raw User-Agent string. It never fails: a UA that identifies nothing
// resolves to an empty family with the zero version, which can match no
// target and therefore safely yields "no match" downstream.
func ResolveUserAgent(ua string) ResolvedBrowser {
	client := useragent.Tokenize(stripMasquerade(ua))

	if client.Browser.Name == "" {
		return ResolvedBrowser{Family: "", Version: browserver.Normalize("")}
	}

	for _, rule := range resolveRules {
		if rule.applies(client) {
			return rule.resolve(client)
		}
	}

	return ResolvedBrowser{
		Family:  client.Browser.Name,
		Version: browserver.Normalize(client.Browser.Version),
	}
}
