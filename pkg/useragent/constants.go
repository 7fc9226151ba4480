package useragent

// Browser name identifiers reported by Tokenize. Variants are kept
// distinct (mobile, webview, headless) because downstream consumers
// apply different compatibility rules to each.
const (
	// BrowserEdge identifies Microsoft Edge, both EdgeHTML and Chromium based
	BrowserEdge = "Edge"

	// BrowserChrome identifies desktop Google Chrome
	BrowserChrome = "Chrome"

	// BrowserChromeMobile identifies Chrome on Android and iOS (CriOS)
	BrowserChromeMobile = "Chrome Mobile"

	// BrowserChromeWebView identifies the Android System WebView
	BrowserChromeWebView = "Chrome WebView"

	// BrowserChromeHeadless identifies headless Chrome builds
	BrowserChromeHeadless = "Chrome Headless"

	// BrowserChromium identifies plain Chromium builds
	BrowserChromium = "Chromium"

	// BrowserSamsung identifies Samsung Internet
	BrowserSamsung = "Samsung Browser"

	// BrowserUC identifies UC Browser
	BrowserUC = "UC Browser"

	// BrowserYandex identifies Yandex Browser
	BrowserYandex = "Yandex Browser"

	// BrowserOpera identifies desktop Opera
	BrowserOpera = "Opera"

	// BrowserOperaMobile identifies Opera Mobile
	BrowserOperaMobile = "Opera Mobile"

	// BrowserFirefox identifies desktop Mozilla Firefox
	BrowserFirefox = "Firefox"

	// BrowserFirefoxMobile identifies Firefox on Android and iOS (FxiOS)
	BrowserFirefoxMobile = "Firefox Mobile"

	// BrowserIE identifies Internet Explorer
	BrowserIE = "IE"

	// BrowserIEMobile identifies Internet Explorer Mobile
	BrowserIEMobile = "IEMobile"

	// BrowserAndroid identifies the legacy stock Android browser
	BrowserAndroid = "Android Browser"

	// BrowserSafari identifies desktop Apple Safari
	BrowserSafari = "Safari"

	// BrowserMobileSafari identifies Safari on iPhone, iPad and iPod
	BrowserMobileSafari = "Mobile Safari"
)

// Operating system identifiers reported by Tokenize
const (
	// OSWindows identifies Microsoft Windows
	OSWindows = "Windows"

	// OSWindowsPhone identifies Microsoft Windows Phone
	OSWindowsPhone = "Windows Phone"

	// OSMacOS identifies Apple macOS
	OSMacOS = "Mac OS"

	// OSiOS identifies Apple iOS
	OSiOS = "iOS"

	// OSAndroid identifies Google Android
	OSAndroid = "Android"

	// OSChromeOS identifies Google Chrome OS
	OSChromeOS = "Chrome OS"

	// OSLinux identifies Linux-based systems
	OSLinux = "Linux"
)

// Rendering engine identifiers reported by Tokenize
const (
	// EngineBlink identifies the Blink engine (Chromium family).
	// Blink releases track Chromium releases, so its version is taken
	// from the Chrome token.
	EngineBlink = "Blink"

	// EngineWebKit identifies Apple WebKit
	EngineWebKit = "WebKit"

	// EngineGecko identifies Mozilla Gecko
	EngineGecko = "Gecko"

	// EngineTrident identifies the Internet Explorer Trident engine
	EngineTrident = "Trident"

	// EngineEdgeHTML identifies the legacy Edge engine
	EngineEdgeHTML = "EdgeHTML"

	// EnginePresto identifies the legacy Opera Presto engine
	EnginePresto = "Presto"
)
