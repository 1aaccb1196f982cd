package analysis

import (
	"math"
	"strings"

	"github.com/jonathan/voice-mirror/internal/types"
)

const (
	maxSampleSentences  = 3
	maxSampleParagraphs = 2
)

// Metrics holds the deterministic counts and ratios for one text.
type Metrics struct {
	SentenceCount      int     `json:"sentenceCount"`
	WordCount          int     `json:"wordCount"`
	ParagraphCount     int     `json:"paragraphCount"`
	QuestionCount      int     `json:"questionCount"`
	AvgSentenceLength  float64 `json:"avgSentenceLength"`
	AvgWordLength      float64 `json:"avgWordLength"`
	VocabularyRichness float64 `json:"vocabularyRichness"`
	UniqueWordCount    int     `json:"uniqueWordCount"`
}

// PunctuationCounts holds raw punctuation mark counts for one text.
type PunctuationCounts struct {
	EmDash       int `json:"emDash"`
	EnDash       int `json:"enDash"`
	Semicolons   int `json:"semicolons"`
	Exclamations int `json:"exclamations"`
	Colons       int `json:"colons"`
	Parentheses  int `json:"parentheses"`
}

// Analysis is the full structural analysis of one text. SampleSentences and
// SampleParagraphs carry up to three sentences and two paragraphs for
// debugging output.
type Analysis struct {
	Metrics          Metrics           `json:"metrics"`
	Punctuation      PunctuationCounts `json:"punctuation"`
	SampleSentences  []string          `json:"sampleSentences"`
	SampleParagraphs []string          `json:"sampleParagraphs"`
}

// AnalyzeStructure computes deterministic linguistic metrics for one text.
// Empty input yields all-zero metrics; there are no other failure modes.
func AnalyzeStructure(text string) Analysis {
	sentences := Sentences(text)
	words := Words(text)
	paragraphs := Paragraphs(text)

	questionCount := 0
	sentenceWordTotal := 0
	for _, sentence := range sentences {
		if IsQuestion(sentence) {
			questionCount++
		}
		sentenceWordTotal += len(Words(sentence))
	}

	avgSentenceLength := 0.0
	if len(sentences) > 0 {
		avgSentenceLength = float64(sentenceWordTotal) / float64(len(sentences))
	}

	unique := make(map[string]struct{}, len(words))
	wordLengthTotal := 0
	for _, word := range words {
		unique[strings.ToLower(word)] = struct{}{}
		wordLengthTotal += len([]rune(word))
	}

	avgWordLength := 0.0
	richness := 0.0
	if len(words) > 0 {
		avgWordLength = float64(wordLengthTotal) / float64(len(words))
		richness = float64(len(unique)) / float64(len(words))
	}

	return Analysis{
		Metrics: Metrics{
			SentenceCount:      len(sentences),
			WordCount:          len(words),
			ParagraphCount:     len(paragraphs),
			QuestionCount:      questionCount,
			AvgSentenceLength:  Round1(avgSentenceLength),
			AvgWordLength:      Round1(avgWordLength),
			VocabularyRichness: Round2(richness),
			UniqueWordCount:    len(unique),
		},
		Punctuation:      countPunctuation(text),
		SampleSentences:  head(sentences, maxSampleSentences),
		SampleParagraphs: head(paragraphs, maxSampleParagraphs),
	}
}

func countPunctuation(text string) PunctuationCounts {
	var counts PunctuationCounts
	for _, r := range text {
		switch r {
		case '—':
			counts.EmDash++
		case '–':
			counts.EnDash++
		case ';':
			counts.Semicolons++
		case '!':
			counts.Exclamations++
		case ':':
			counts.Colons++
		case '(', ')':
			counts.Parentheses++
		}
	}
	return counts
}

// AggregateStructural merges per-sample analyses into the structural block of
// a style signature. Averages are a simple mean of the per-sample averages,
// not a global recomputation; per-1000 rates come from summed raw counts over
// the total word count.
func AggregateStructural(analyses []Analysis, totalWords int) types.StructuralMetrics {
	if len(analyses) == 0 {
		return types.StructuralMetrics{}
	}

	sentenceSum := 0.0
	wordSum := 0.0
	var emDashes, semicolons, exclamations int
	for _, a := range analyses {
		sentenceSum += a.Metrics.AvgSentenceLength
		wordSum += a.Metrics.AvgWordLength
		emDashes += a.Punctuation.EmDash
		semicolons += a.Punctuation.Semicolons
		exclamations += a.Punctuation.Exclamations
	}

	n := float64(len(analyses))
	return types.StructuralMetrics{
		AverageSentenceLength: Round1(sentenceSum / n),
		AverageWordLength:     Round1(wordSum / n),
		PunctuationFrequency: types.PunctuationFrequency{
			EmDashesPer1000:     per1000(emDashes, totalWords),
			SemicolonsPer1000:   per1000(semicolons, totalWords),
			ExclamationsPer1000: per1000(exclamations, totalWords),
		},
	}
}

func per1000(count, totalWords int) int {
	if totalWords == 0 {
		return 0
	}
	return int(math.Round(float64(count) / float64(totalWords) * 1000))
}

// Round1 rounds to 1 decimal place.
func Round1(x float64) float64 {
	return math.Round(x*10) / 10
}

// Round2 rounds to 2 decimal places.
func Round2(x float64) float64 {
	return math.Round(x*100) / 100
}

func head(items []string, n int) []string {
	if len(items) <= n {
		return items
	}
	return items[:n]
}
