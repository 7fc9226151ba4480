package browserver_test

import (
	"testing"

	"github.com/dmitrymomot/browsergate/pkg/browserver"

	"github.com/stretchr/testify/assert"
)

func TestSatisfies(t *testing.T) {
	tests := []struct {
		name        string
		candidate   string
		reference   string
		strictness  browserver.Strictness
		allowHigher bool
		expected    bool
	}{
		{
			name:       "exact match",
			candidate:  "10.1.5",
			reference:  "10.1.5",
			strictness: browserver.StrictnessExact,
			expected:   true,
		},
		{
			name:       "exact rejects differing patch",
			candidate:  "10.1.5",
			reference:  "10.1.9",
			strictness: browserver.StrictnessExact,
			expected:   false,
		},
		{
			name:       "ignore patch accepts differing patch",
			candidate:  "10.1.5",
			reference:  "10.1.9",
			strictness: browserver.StrictnessIgnorePatch,
			expected:   true,
		},
		{
			name:       "ignore patch rejects differing minor",
			candidate:  "10.1.5",
			reference:  "10.2.0",
			strictness: browserver.StrictnessIgnorePatch,
			expected:   false,
		},
		{
			name:       "ignore minor accepts differing minor",
			candidate:  "10.4.2",
			reference:  "10.1.0",
			strictness: browserver.StrictnessIgnoreMinor,
			expected:   true,
		},
		{
			name:       "ignore minor rejects differing major",
			candidate:  "11.0.0",
			reference:  "10.1.0",
			strictness: browserver.StrictnessIgnoreMinor,
			expected:   false,
		},
		{
			name:        "allow higher accepts greater major",
			candidate:   "12.0.0",
			reference:   "10.0.0",
			allowHigher: true,
			expected:    true,
		},
		{
			name:        "allow higher accepts equal",
			candidate:   "10.0.0",
			reference:   "10.0.0",
			allowHigher: true,
			expected:    true,
		},
		{
			name:        "allow higher rejects lower",
			candidate:   "9.9.9",
			reference:   "10.0.0",
			allowHigher: true,
			expected:    false,
		},
		{
			name:       "higher major rejected without allow higher",
			candidate:  "12.0.0",
			reference:  "10.0.0",
			strictness: browserver.StrictnessIgnorePatch,
			expected:   false,
		},
		{
			name:       "partial inputs normalized before comparing",
			candidate:  "13.3",
			reference:  "13.3.1",
			strictness: browserver.StrictnessIgnorePatch,
			expected:   true,
		},
		{
			name:       "major zero ignore minor",
			candidate:  "0.5.0",
			reference:  "0.2.0",
			strictness: browserver.StrictnessIgnoreMinor,
			expected:   true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := browserver.Satisfies(tc.candidate, tc.reference, tc.strictness, tc.allowHigher)
			assert.Equal(t, tc.expected, got)
		})
	}
}
