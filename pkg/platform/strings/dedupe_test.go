package strings

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLines(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		limit    int
		expected []string
	}{
		{
			name:     "empty text",
			input:    "",
			expected: []string{},
		},
		{
			name:     "blank lines only",
			input:    "\n  \r\n\t\n",
			expected: []string{},
		},
		{
			name:     "trims carriage returns and spaces",
			input:    "  Deezer \r\nTidal\r\n",
			expected: []string{"Deezer", "Tidal"},
		},
		{
			name:     "case-insensitive duplicates keep first spelling",
			input:    "Spotify\nspotify\nDeezer\nSPOTIFY",
			expected: []string{"Spotify", "Deezer"},
		},
		{
			name:     "limit counts distinct lines",
			input:    "a\na\nb\n\nc\nd",
			limit:    3,
			expected: []string{"a", "b", "c"},
		},
		{
			name:     "zero limit keeps everything",
			input:    "a\nb\nc\nd",
			expected: []string{"a", "b", "c", "d"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Lines(tt.input, tt.limit))
		})
	}
}
