package browsergate_test

import (
	"testing"

	"github.com/dmitrymomot/browsergate"

	"github.com/stretchr/testify/assert"
)

func TestResolveUserAgent(t *testing.T) {
	tests := []struct {
		name     string
		ua       string
		expected browsergate.ResolvedBrowser
	}{
		{
			name:     "desktop chrome",
			ua:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.124 Safari/537.36",
			expected: browsergate.ResolvedBrowser{Family: "Chrome", Version: "91.0.4472"},
		},
		{
			name:     "chrome mobile proxies to chrome",
			ua:       "Mozilla/5.0 (Linux; Android 11; Pixel 5) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/91.0.4472.120 Mobile Safari/537.36",
			expected: browsergate.ResolvedBrowser{Family: "Chrome", Version: "91.0.4472"},
		},
		{
			name:     "headless chrome proxies to chrome",
			ua:       "Mozilla/5.0 (X11; Linux x86_64) AppleWebKit/537.36 (KHTML, like Gecko) HeadlessChrome/105.0.5195.52 Safari/537.36",
			expected: browsergate.ResolvedBrowser{Family: "Chrome", Version: "105.0.5195"},
		},
		{
			name:     "vivaldi resolves as chrome",
			ua:       "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/104.0.0.0 Safari/537.36 Vivaldi/5.4.2753.40",
			expected: browsergate.ResolvedBrowser{Family: "Chrome", Version: "104.0.0"},
		},
		{
			name:     "mobile safari",
			ua:       "Mozilla/5.0 (iPhone; CPU iPhone OS 15_6 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) Version/15.6 Mobile/15E148 Safari/604.1",
			expected: browsergate.ResolvedBrowser{Family: "iOS", Version: "15.6.0"},
		},
		{
			name:     "chrome on iOS proxies to iOS via OS version",
			ua:       "Mozilla/5.0 (iPhone; CPU iPhone OS 13_3 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) CriOS/79.0.3945.73 Mobile/15E148 Safari/605.1",
			expected: browsergate.ResolvedBrowser{Family: "iOS", Version: "13.3.0"},
		},
		{
			name:     "firefox on iOS proxies to iOS",
			ua:       "Mozilla/5.0 (iPhone; CPU iPhone OS 14_4 like Mac OS X) AppleWebKit/605.1.15 (KHTML, like Gecko) FxiOS/31.0 Mobile/15E148 Safari/605.1.15",
			expected: browsergate.ResolvedBrowser{Family: "iOS", Version: "14.4.0"},
		},
		{
			name:     "samsung internet",
			ua:       "Mozilla/5.0 (Linux; Android 12; SM-G991B) AppleWebKit/537.36 (KHTML, like Gecko) SamsungBrowser/17.0 Chrome/96.0.4664.104 Mobile Safari/537.36",
			expected: browsergate.ResolvedBrowser{Family: "Samsung", Version: "17.0.0"},
		},
		{
			name:     "firefox mobile proxies to firefox",
			ua:       "Mozilla/5.0 (Android 11; Mobile; rv:103.0) Gecko/103.0 Firefox/103.0",
			expected: browsergate.ResolvedBrowser{Family: "Firefox", Version: "103.0.0"},
		},
		{
			name:     "ie 11",
			ua:       "Mozilla/5.0 (Windows NT 10.0; WOW64; Trident/7.0; rv:11.0) like Gecko",
			expected: browsergate.ResolvedBrowser{Family: "Explorer", Version: "11.0.0"},
		},
		{
			name:     "ie mobile",
			ua:       "Mozilla/5.0 (compatible; MSIE 10.0; Windows Phone 8.0; Trident/6.0; IEMobile/10.0; ARM; Touch; NOKIA; Lumia 920)",
			expected: browsergate.ResolvedBrowser{Family: "ExplorerMobile", Version: "10.0.0"},
		},
		{
			name:     "android blink fork proxies to chrome via engine version",
			ua:       "Mozilla/5.0 (Linux; Android 9; MI 8 Build/PKQ1.180729.001) AppleWebKit/537.36 (KHTML, like Gecko) Chrome/71.0.3578.141 Mobile Safari/537.36 XiaoMi/MiuiBrowser/12.10.5-gn",
			expected: browsergate.ResolvedBrowser{Family: "Chrome", Version: "71.0.3578"},
		},
		{
			name:     "stock android browser proxies to OS version",
			ua:       "Mozilla/5.0 (Linux; U; Android 4.3; en-us; SM-N900T Build/JSS15J) AppleWebKit/534.30 (KHTML, like Gecko) Version/4.0 Mobile Safari/534.30",
			expected: browsergate.ResolvedBrowser{Family: "Android", Version: "4.3.0"},
		},
		{
			name:     "unresolvable UA yields empty sentinel",
			ua:       "definitely not a browser",
			expected: browsergate.ResolvedBrowser{Family: "", Version: "0.0.0"},
		},
		{
			name:     "empty UA yields empty sentinel",
			ua:       "",
			expected: browsergate.ResolvedBrowser{Family: "", Version: "0.0.0"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, browsergate.ResolveUserAgent(tc.ua))
		})
	}
}
