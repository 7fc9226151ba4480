package browserver_test

import (
	"strings"
	"testing"

	"github.com/dmitrymomot/browsergate/pkg/browserver"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name     string
		version  string
		expected string
	}{
		{name: "already canonical", version: "10.1.5", expected: "10.1.5"},
		{name: "major only", version: "10", expected: "10.0.0"},
		{name: "major and minor", version: "10.2", expected: "10.2.0"},
		{name: "empty string", version: "", expected: "0.0.0"},
		{name: "whitespace", version: "   ", expected: "0.0.0"},
		{name: "garbage", version: "TP", expected: "0.0.0"},
		{name: "mixed garbage component", version: "10.x.3", expected: "10.0.3"},
		{name: "more than three components", version: "91.0.4472.124", expected: "91.0.4472"},
		{name: "trailing dot", version: "10.", expected: "10.0.0"},
		{name: "leading dot", version: ".5", expected: "0.5.0"},
		{name: "negative component degrades", version: "10.-2.1", expected: "10.0.1"},
		{name: "opera mini all", version: "all", expected: "0.0.0"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, browserver.Normalize(tc.version))
		})
	}
}

func TestNormalizeIdempotent(t *testing.T) {
	inputs := []string{"10", "10.2", "10.1.5", "", "TP", "91.0.4472.124", "0.0.0"}

	for _, in := range inputs {
		once := browserver.Normalize(in)
		assert.Equal(t, once, browserver.Normalize(once), "input %q", in)
	}
}

func TestNormalizeTotality(t *testing.T) {
	inputs := []string{"", ".", "..", "a.b.c", "1.2.3.4.5", "∞", "-1", "1e9", "v1.2.3"}

	for _, in := range inputs {
		out := browserver.Normalize(in)
		parts := strings.Split(out, ".")
		require.Len(t, parts, 3, "input %q produced %q", in, out)
		for _, p := range parts {
			assert.NotEmpty(t, p)
		}
	}
}

func TestIsRange(t *testing.T) {
	assert.True(t, browserver.IsRange("10.0-10.2"))
	assert.True(t, browserver.IsRange("13.4-13.7"))
	assert.False(t, browserver.IsRange("10.0"))
	assert.False(t, browserver.IsRange("-10.0"))
	assert.False(t, browserver.IsRange(""))
}

func TestExpandRange(t *testing.T) {
	tests := []struct {
		name     string
		token    string
		expected []string
	}{
		{
			name:     "minor span",
			token:    "10.0-10.2",
			expected: []string{"10.0.0", "10.1.0", "10.2.0"},
		},
		{
			name:     "partial bounds",
			token:    "13-13.3",
			expected: []string{"13.0.0", "13.1.0", "13.2.0", "13.3.0"},
		},
		{
			name:     "single version span",
			token:    "15.4-15.4",
			expected: []string{"15.4.0"},
		},
		{
			name:     "end below start yields start only",
			token:    "10.2-10.0",
			expected: []string{"10.2.0"},
		},
		{
			name:     "end with patch component",
			token:    "12.0-12.2.5",
			expected: []string{"12.0.0", "12.1.0", "12.2.0"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, browserver.ExpandRange(tc.token))
		})
	}
}

func TestExpandRangeMonotonic(t *testing.T) {
	out := browserver.ExpandRange("13.0-13.7")
	require.NotEmpty(t, out)

	assert.Equal(t, browserver.Normalize("13.0"), out[0])
	for i := 1; i < len(out); i++ {
		assert.True(t, browserver.Satisfies(out[i], out[i-1], browserver.StrictnessExact, true))
		assert.False(t, browserver.Satisfies(out[i-1], out[i], browserver.StrictnessExact, true))
	}
	last := out[len(out)-1]
	assert.True(t, browserver.Satisfies("13.7.0", last, browserver.StrictnessExact, true))
}
