package analysis

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestWords(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{"Simple words", "hello world", []string{"hello", "world"}},
		{"Strips surrounding punctuation", "Hello, world!", []string{"Hello", "world"}},
		{"Keeps internal apostrophes", "don't stop", []string{"don't", "stop"}},
		{"Keeps internal hyphens", "well-known fact", []string{"well-known", "fact"}},
		{"Drops pure punctuation tokens", "yes — no", []string{"yes", "no"}},
		{"Numbers count as words", "chapter 7 begins", []string{"chapter", "7", "begins"}},
		{"Empty string", "", nil},
		{"Whitespace only", "  \n\t ", nil},
		{"Quoted words", `"quoted" (parenthetical)`, []string{"quoted", "parenthetical"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Words(tt.input)
			if tt.expected == nil {
				assert.Empty(t, result)
				return
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestCountWords(t *testing.T) {
	assert.Equal(t, 0, CountWords(""))
	assert.Equal(t, 5, CountWords("one two three four five"))
	assert.Equal(t, 2, CountWords("Hello, world!"))
}

func TestValidateWordCount(t *testing.T) {
	total, ok := ValidateWordCount([]string{"one two three", "four five"}, 5)
	assert.Equal(t, 5, total)
	assert.True(t, ok)

	total, ok = ValidateWordCount([]string{"one two"}, 5)
	assert.Equal(t, 2, total)
	assert.False(t, ok)

	total, ok = ValidateWordCount(nil, 1)
	assert.Equal(t, 0, total)
	assert.False(t, ok)
}

func TestSentences(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []string
	}{
		{
			name:     "Simple sentences",
			input:    "First sentence. Second sentence.",
			expected: []string{"First sentence.", "Second sentence."},
		},
		{
			name:     "Mixed terminators",
			input:    "Really? Yes! Good.",
			expected: []string{"Really?", "Yes!", "Good."},
		},
		{
			name:     "Terminator run stays together",
			input:    "What?! No way.",
			expected: []string{"What?!", "No way."},
		},
		{
			name:     "Closing quote attaches to sentence",
			input:    `He said "stop." Then left.`,
			expected: []string{`He said "stop."`, "Then left."},
		},
		{
			name:     "Decimal point does not split",
			input:    "Pi is 3.14 roughly. Indeed.",
			expected: []string{"Pi is 3.14 roughly.", "Indeed."},
		},
		{
			name:     "Unterminated trailing text kept",
			input:    "Done. And one more thing",
			expected: []string{"Done.", "And one more thing"},
		},
		{
			name:     "Empty input",
			input:    "",
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := Sentences(tt.input)
			if tt.expected == nil {
				assert.Empty(t, result)
				return
			}
			assert.Equal(t, tt.expected, result)
		})
	}
}

func TestIsQuestion(t *testing.T) {
	assert.True(t, IsQuestion("Is it done?"))
	assert.True(t, IsQuestion(`"Is it done?"`))
	assert.False(t, IsQuestion("It is done."))
	assert.False(t, IsQuestion("It is done!"))
	assert.False(t, IsQuestion(""))
}

func TestParagraphs(t *testing.T) {
	text := "First paragraph line one.\nStill first.\n\nSecond paragraph.\n\n\n\nThird."
	result := Paragraphs(text)
	assert.Equal(t, []string{
		"First paragraph line one.\nStill first.",
		"Second paragraph.",
		"Third.",
	}, result)

	assert.Empty(t, Paragraphs(""))
	assert.Empty(t, Paragraphs("\n\n\n"))
	assert.Equal(t, []string{"only one"}, Paragraphs("only one"))
}
