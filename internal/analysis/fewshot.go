package analysis

import (
	"github.com/jonathan/voice-mirror/internal/types"
)

const (
	// maxFewShotSamples caps how many samples contribute examples.
	maxFewShotSamples = 3
	// minExampleWords / maxExampleWords bound the representative sentence length.
	minExampleWords = 8
	maxExampleWords = 20
)

// ExtractFewShot mines representative sentences from writing samples for use
// as few-shot examples. For each of the first three samples it takes the
// first sentence of 8-20 words; samples with no qualifying sentence
// contribute nothing. Rewrite equals Original on every example: the author's
// own sentence stands as the ground truth of the voice.
func ExtractFewShot(samples []string) []types.FewShotExample {
	var examples []types.FewShotExample

	limit := len(samples)
	if limit > maxFewShotSamples {
		limit = maxFewShotSamples
	}

	for _, sample := range samples[:limit] {
		for _, sentence := range Sentences(sample) {
			wordCount := len(Words(sentence))
			if wordCount < minExampleWords || wordCount > maxExampleWords {
				continue
			}
			examples = append(examples, types.FewShotExample{
				Original: sentence,
				Rewrite:  sentence,
			})
			break
		}
	}

	return examples
}
