package connector

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParsePostedAt(t *testing.T) {
	testCases := []struct {
		raw      string
		expected string
	}{
		{
			raw:      "2024-01-05 10:30:00",
			expected: "2024-01-05T10:30:00Z",
		},
		{
			raw:      "2024-01-05T10:30:00",
			expected: "2024-01-05T10:30:00Z",
		},
		{
			raw:      "2024-01-05 10:30",
			expected: "2024-01-05T10:30:00Z",
		},
		{
			raw:      "2024-01-05",
			expected: "2024-01-05T00:00:00Z",
		},
		{
			raw:      "  2024-01-05 10:30:00  ",
			expected: "2024-01-05T10:30:00Z",
		},
		{
			raw:      "2024-01-05 10:30:00.123456",
			expected: "2024-01-05T10:30:00Z",
		},
	}

	for _, tc := range testCases {
		parsed := parsePostedAt(tc.raw)
		assert.NotNil(t, parsed, tc.raw)
		assert.Equal(t, tc.expected, parsed.Format(time.RFC3339), tc.raw)
		assert.Equal(t, time.UTC, parsed.Location(), tc.raw)
	}
}

func TestParsePostedAtUnparseable(t *testing.T) {
	testCases := []string{
		"",
		"   ",
		"yesterday",
		"2024-13-45 99:99:99",
		"05/01/2024",
	}

	for _, raw := range testCases {
		assert.Nil(t, parsePostedAt(raw), raw)
	}
}
