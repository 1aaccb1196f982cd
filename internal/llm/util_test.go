package llm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCleanJSONBlock(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected string
	}{
		{
			name:     "json code block",
			input:    "```json\n{\"tone\": \"warm\"}\n```",
			expected: `{"tone": "warm"}`,
		},
		{
			name:     "generic code block",
			input:    "```\n{\"tone\": \"warm\"}\n```",
			expected: `{"tone": "warm"}`,
		},
		{
			name:     "plain JSON untouched",
			input:    `{"tone": "warm"}`,
			expected: `{"tone": "warm"}`,
		},
		{
			name:     "surrounding whitespace trimmed",
			input:    "  \n{\"tone\": \"warm\"}\n  ",
			expected: `{"tone": "warm"}`,
		},
		{
			name:     "empty input",
			input:    "",
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, CleanJSONBlock(tt.input))
		})
	}
}
