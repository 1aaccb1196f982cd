package analysis

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtractFewShot(t *testing.T) {
	sample := "Too short. This sentence has exactly nine well chosen words here. Another qualifying sentence that should never be picked up."

	examples := ExtractFewShot([]string{sample})

	assert.Len(t, examples, 1, "only the first qualifying sentence per sample")
	assert.Equal(t, "This sentence has exactly nine well chosen words here.", examples[0].Original)
	assert.Equal(t, examples[0].Original, examples[0].Rewrite, "rewrite always equals original")
}

func TestExtractFewShotSkipsOutOfRangeSentences(t *testing.T) {
	short := "Five words is too few. Short one. Tiny."
	long := strings.Repeat("word ", 25) + "end."

	examples := ExtractFewShot([]string{short, long})

	assert.Empty(t, examples, "samples with no 8-20 word sentence contribute nothing")
}

func TestExtractFewShotCapsAtThreeSamples(t *testing.T) {
	sample := "Here is a sentence containing exactly nine useful words."
	samples := []string{sample, sample, sample, sample, sample}

	examples := ExtractFewShot(samples)

	assert.Len(t, examples, 3, "only the first three samples contribute")
}

func TestExtractFewShotEmptyInput(t *testing.T) {
	assert.Empty(t, ExtractFewShot(nil))
	assert.Empty(t, ExtractFewShot([]string{""}))
}
