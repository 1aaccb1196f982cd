// Package observability provides formatted output utilities for verbose CLI mode.
package observability

import (
	"fmt"
	"io"
	"strings"

	"github.com/jonathan/voice-mirror/internal/analysis"
	"github.com/jonathan/voice-mirror/internal/types"
)

const (
	// boxWidth is the default width for formatted output boxes
	boxWidth = 60
	// maxItemsToShow is the default number of items to display in lists
	maxItemsToShow = 5
)

// Printer handles formatted output for verbose mode
type Printer struct {
	out io.Writer
}

// NewPrinter creates a new Printer that writes to the given writer
func NewPrinter(out io.Writer) *Printer {
	return &Printer{out: out}
}

// printBox prints a formatted box with a title and content
//
//nolint:errcheck // writing to stdout; errors are not recoverable
func (p *Printer) printBox(title string, content string) {
	border := strings.Repeat("─", boxWidth-2)
	fmt.Fprintf(p.out, "┌%s┐\n", border)
	fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, title)
	fmt.Fprintf(p.out, "├%s┤\n", border)

	lines := strings.Split(content, "\n")
	for _, line := range lines {
		// Truncate long lines
		if len(line) > boxWidth-4 {
			line = line[:boxWidth-7] + "..."
		}
		fmt.Fprintf(p.out, "│ %-*s │\n", boxWidth-4, line)
	}

	fmt.Fprintf(p.out, "└%s┘\n", border)
}

// PrintStructuralAnalysis outputs a human-readable view of one text's metrics.
func (p *Printer) PrintStructuralAnalysis(a *analysis.Analysis) {
	if a == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Words:          %d\n", a.Metrics.WordCount))
	sb.WriteString(fmt.Sprintf("Sentences:      %d\n", a.Metrics.SentenceCount))
	sb.WriteString(fmt.Sprintf("Paragraphs:     %d\n", a.Metrics.ParagraphCount))
	sb.WriteString(fmt.Sprintf("Questions:      %d\n", a.Metrics.QuestionCount))
	sb.WriteString(fmt.Sprintf("Avg sentence:   %.1f words\n", a.Metrics.AvgSentenceLength))
	sb.WriteString(fmt.Sprintf("Avg word:       %.1f chars\n", a.Metrics.AvgWordLength))
	sb.WriteString(fmt.Sprintf("Richness:       %.2f (%d unique)\n", a.Metrics.VocabularyRichness, a.Metrics.UniqueWordCount))
	sb.WriteString("\n")
	sb.WriteString("Punctuation counts:\n")
	sb.WriteString(fmt.Sprintf("  em-dash %d  en-dash %d  semicolon %d\n",
		a.Punctuation.EmDash, a.Punctuation.EnDash, a.Punctuation.Semicolons))
	sb.WriteString(fmt.Sprintf("  exclaim %d  colon %d  paren %d",
		a.Punctuation.Exclamations, a.Punctuation.Colons, a.Punctuation.Parentheses))

	p.printBox("STRUCTURAL ANALYSIS", sb.String())
}

// PrintStyleSignature outputs a human-readable summary of a built signature.
func (p *Printer) PrintStyleSignature(sig *types.StyleSignature) {
	if sig == nil {
		return
	}

	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Avg sentence:   %.1f words\n", sig.StructuralMetrics.AverageSentenceLength))
	sb.WriteString(fmt.Sprintf("Avg word:       %.1f chars\n", sig.StructuralMetrics.AverageWordLength))
	freq := sig.StructuralMetrics.PunctuationFrequency
	sb.WriteString(fmt.Sprintf("Per 1000 words: em-dash %d, semicolon %d, exclaim %d\n",
		freq.EmDashesPer1000, freq.SemicolonsPer1000, freq.ExclamationsPer1000))
	sb.WriteString("\n")

	sb.WriteString(fmt.Sprintf("Sentences:  %s complexity, %s variety\n",
		sig.SentenceStructure.Complexity, sig.SentenceStructure.Variety))
	sb.WriteString(fmt.Sprintf("Vocabulary: %s, %s richness, %s jargon\n",
		sig.Vocabulary.Formality, sig.Vocabulary.Richness, sig.Vocabulary.JargonLevel))
	sb.WriteString(fmt.Sprintf("Tone:       %s, %s, humor %s\n",
		sig.Tone.Warmth, sig.Tone.Directness, sig.Tone.Humor))

	if len(sig.DistinctiveMarkers) > 0 {
		sb.WriteString("\nDistinctive markers:\n")
		count := min(len(sig.DistinctiveMarkers), maxItemsToShow)
		for i := 0; i < count; i++ {
			sb.WriteString(fmt.Sprintf("  • %s\n", sig.DistinctiveMarkers[i]))
		}
		if len(sig.DistinctiveMarkers) > maxItemsToShow {
			sb.WriteString(fmt.Sprintf("  ... and %d more\n", len(sig.DistinctiveMarkers)-maxItemsToShow))
		}
	}

	p.printBox("VOICE SIGNATURE", strings.TrimSuffix(sb.String(), "\n"))
}

// PrintRewrite outputs the rewrite result with the tier and model used.
func (p *Printer) PrintRewrite(tier, model, rewritten string) {
	var sb strings.Builder

	sb.WriteString(fmt.Sprintf("Tier:   %s\n", tier))
	sb.WriteString(fmt.Sprintf("Model:  %s\n", model))
	sb.WriteString("\n")
	sb.WriteString(rewritten)

	p.printBox("REWRITE", sb.String())
}

// PrintSummary outputs the narrative profile summary.
func (p *Printer) PrintSummary(summary string) {
	if summary == "" {
		return
	}
	p.printBox("PROFILE SUMMARY", summary)
}
