package observability

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jonathan/voice-mirror/internal/analysis"
	"github.com/jonathan/voice-mirror/internal/types"
)

func TestPrintStructuralAnalysis(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	result := analysis.AnalyzeStructure("Hello world. How are you?")
	printer.PrintStructuralAnalysis(&result)

	out := buf.String()
	assert.Contains(t, out, "STRUCTURAL ANALYSIS")
	assert.Contains(t, out, "Sentences:      2")
	assert.Contains(t, out, "Questions:      1")
	assert.Contains(t, out, "┌")
	assert.Contains(t, out, "└")
}

func TestPrintStructuralAnalysisNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintStructuralAnalysis(nil)
	assert.Empty(t, buf.String())
}

func TestPrintStyleSignature(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintStyleSignature(&types.StyleSignature{
		StyleProfile: types.StyleProfile{
			SentenceStructure:  types.SentenceStructure{Complexity: "moderate", Variety: "high"},
			Vocabulary:         types.Vocabulary{Formality: "casual", Richness: "rich", JargonLevel: "light"},
			Tone:               types.Tone{Warmth: "warm", Directness: "direct", Humor: "subtle"},
			DistinctiveMarkers: []string{"em-dash asides", "short openers", "a", "b", "c", "d", "e"},
		},
		StructuralMetrics: types.StructuralMetrics{AverageSentenceLength: 15.5},
	})

	out := buf.String()
	assert.Contains(t, out, "VOICE SIGNATURE")
	assert.Contains(t, out, "15.5")
	assert.Contains(t, out, "moderate complexity")
	assert.Contains(t, out, "em-dash asides")
	assert.Contains(t, out, "and 2 more", "marker list is capped")
}

func TestPrintStyleSignatureNil(t *testing.T) {
	var buf bytes.Buffer
	NewPrinter(&buf).PrintStyleSignature(nil)
	assert.Empty(t, buf.String())
}

func TestPrintSummary(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintSummary("You write with warmth.")
	assert.Contains(t, buf.String(), "PROFILE SUMMARY")
	assert.Contains(t, buf.String(), "You write with warmth.")

	buf.Reset()
	printer.PrintSummary("")
	assert.Empty(t, buf.String())
}

func TestPrintBoxTruncatesLongLines(t *testing.T) {
	var buf bytes.Buffer
	printer := NewPrinter(&buf)

	printer.PrintSummary(strings.Repeat("x", 200))

	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		assert.LessOrEqual(t, len([]rune(line)), boxWidth, "every rendered line fits the box")
	}
	assert.Contains(t, buf.String(), "...")
}
