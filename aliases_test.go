package browsergate_test

import (
	"testing"

	"github.com/dmitrymomot/browsergate"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuery(t *testing.T) {
	tests := []struct {
		name     string
		query    string
		expected string
	}{
		{name: "short code rewritten", query: "ie 11", expected: "Explorer 11"},
		{name: "prefix codes resolved longest first", query: "ie_mob >= 10", expected: "ExplorerMobile >= 10"},
		{name: "ios safari", query: "ios_saf 13.0-13.3", expected: "iOS 13.0-13.3"},
		{name: "android chrome", query: "last 2 and_chr versions", expected: "last 2 Chrome versions"},
		{name: "opera mini", query: "op_mini all", expected: "OperaMini all"},
		{name: "only first match replaced", query: "ie 11, ie 10", expected: "Explorer 11, ie 10"},
		{name: "no alias untouched", query: "last 2 versions", expected: "last 2 versions"},
		{name: "canonical name untouched", query: "Explorer 11", expected: "Explorer 11"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, browsergate.NormalizeQuery(tc.query))
		})
	}
}
