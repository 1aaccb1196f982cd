// Package analysis provides deterministic linguistic metrics computed directly
// from raw text: segmentation, counts, ratios, and punctuation frequencies.
// Nothing in this package calls a model; identical input yields identical output.
package analysis

import (
	"regexp"
	"strings"
	"unicode"
)

var paragraphBoundary = regexp.MustCompile(`\n\s*\n`)

// Words splits text into word tokens. Tokens are whitespace-separated with
// surrounding punctuation stripped; tokens that are pure punctuation are
// dropped. Apostrophes and hyphens inside a token are kept.
func Words(text string) []string {
	fields := strings.Fields(text)
	words := make([]string, 0, len(fields))
	for _, field := range fields {
		trimmed := strings.TrimFunc(field, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		})
		if trimmed != "" {
			words = append(words, trimmed)
		}
	}
	return words
}

// CountWords returns the number of word tokens in text.
func CountWords(text string) int {
	return len(Words(text))
}

// ValidateWordCount sums word counts across samples and reports whether the
// total meets the minimum.
func ValidateWordCount(samples []string, minWords int) (int, bool) {
	total := 0
	for _, sample := range samples {
		total += CountWords(sample)
	}
	return total, total >= minWords
}

// Sentences splits text into sentences on terminator runs (. ! ?) followed by
// whitespace or end of input. Trailing closing quotes and parentheses attach
// to the sentence they end. Locale independent.
func Sentences(text string) []string {
	runes := []rune(text)
	var sentences []string
	var current strings.Builder

	for i := 0; i < len(runes); i++ {
		r := runes[i]
		current.WriteRune(r)
		if r != '.' && r != '!' && r != '?' {
			continue
		}

		// absorb the rest of the terminator run plus closing marks
		for i+1 < len(runes) && isSentenceTail(runes[i+1]) {
			i++
			current.WriteRune(runes[i])
		}
		if i+1 < len(runes) && !unicode.IsSpace(runes[i+1]) {
			continue
		}

		if s := strings.TrimSpace(current.String()); s != "" {
			sentences = append(sentences, s)
		}
		current.Reset()
	}

	if s := strings.TrimSpace(current.String()); s != "" {
		sentences = append(sentences, s)
	}
	return sentences
}

func isSentenceTail(r rune) bool {
	switch r {
	case '.', '!', '?', '"', '\'', ')', ']', '”', '’':
		return true
	}
	return false
}

// IsQuestion reports whether a sentence ends with a question mark, ignoring
// trailing closing quotes or parentheses.
func IsQuestion(sentence string) bool {
	trimmed := strings.TrimRightFunc(sentence, func(r rune) bool {
		return isSentenceTail(r) && r != '.' && r != '!' && r != '?'
	})
	return strings.HasSuffix(trimmed, "?")
}

// Paragraphs splits text on one-or-more blank lines and drops empty blocks.
func Paragraphs(text string) []string {
	blocks := paragraphBoundary.Split(text, -1)
	paragraphs := make([]string, 0, len(blocks))
	for _, block := range blocks {
		if trimmed := strings.TrimSpace(block); trimmed != "" {
			paragraphs = append(paragraphs, trimmed)
		}
	}
	return paragraphs
}
