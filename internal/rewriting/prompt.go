package rewriting

import (
	"fmt"
	"strings"

	"github.com/jonathan/voice-mirror/internal/llm"
	"github.com/jonathan/voice-mirror/internal/prompts"
	"github.com/jonathan/voice-mirror/internal/types"
)

// maxPromptExamples caps how many few-shot examples are rendered.
const maxPromptExamples = 3

// BuildRewritePrompt renders the voice signature and few-shot examples into
// the ordered instruction sequence for a constrained rewrite. Deterministic:
// same inputs, same sequence. The closing "return only the rewritten text"
// instruction is load-bearing; the executor trusts the whole response to be
// the rewrite.
func BuildRewritePrompt(signature *types.StyleSignature, examples []types.FewShotExample, targetText string) []llm.Message {
	system := prompts.Format(prompts.MustGet("rewrite.json", "rewrite-system"), map[string]string{
		"Profile":  formatVoiceProfile(signature),
		"Examples": formatFewShotExamples(examples),
	})
	user := prompts.Format(prompts.MustGet("rewrite.json", "rewrite-user"), map[string]string{
		"Text": targetText,
	})

	return []llm.Message{
		{Role: llm.RoleSystem, Content: system},
		{Role: llm.RoleUser, Content: user},
	}
}

// formatVoiceProfile renders the signature as natural-language bullet
// constraints. Each line is omitted when its sub-field is absent.
func formatVoiceProfile(signature *types.StyleSignature) string {
	if signature == nil {
		return "No voice profile available."
	}

	var parts []string

	ss := signature.SentenceStructure
	if len(ss.Patterns) > 0 {
		parts = append(parts, fmt.Sprintf("- Sentence structure: %s", ss.Patterns[0]))
	} else if ss.Complexity != "" {
		parts = append(parts, fmt.Sprintf("- Sentence structure: Average %g words, %s complexity", ss.AverageLength, ss.Complexity))
	}

	v := signature.Vocabulary
	if v.Formality != "" || v.Richness != "" {
		line := fmt.Sprintf("- Vocabulary: %s, %s word choice.", v.Formality, v.Richness)
		if len(v.Preferences) > 0 {
			line += " " + v.Preferences[0]
		}
		parts = append(parts, line)
	}

	t := signature.Tone
	var toneDesc []string
	if t.Warmth != "" {
		toneDesc = append(toneDesc, t.Warmth+" warmth")
	}
	if t.Directness != "" {
		toneDesc = append(toneDesc, t.Directness+" directness")
	}
	if t.Humor != "" && t.Humor != "none" {
		toneDesc = append(toneDesc, t.Humor+" humor")
	}
	if len(toneDesc) > 0 {
		parts = append(parts, "- Tone: "+strings.Join(toneDesc, ", "))
	}

	p := signature.Punctuation
	var punctDesc []string
	if p.EmDashUsage != "" && p.EmDashUsage != "none" {
		punctDesc = append(punctDesc, p.EmDashUsage+" em-dash usage")
	}
	if p.SemicolonUsage != "" && p.SemicolonUsage != "none" {
		punctDesc = append(punctDesc, p.SemicolonUsage+" semicolons")
	}
	if p.EmDashUsage != "" || p.SemicolonUsage != "" || p.ExclamationUsage != "" {
		desc := strings.Join(punctDesc, ", ")
		if desc == "" {
			desc = "standard"
		}
		parts = append(parts, "- Punctuation: "+desc)
	}

	ps := signature.ParagraphStyle
	if ps.LeadStyle != "" || ps.Organization != "" || ps.Flow != "" {
		lead := ps.LeadStyle
		if lead == "" {
			lead = "Varied"
		}
		parts = append(parts, "- Paragraph style: "+lead)
	}

	if len(parts) == 0 {
		return "No voice profile available."
	}
	return strings.Join(parts, "\n")
}

// formatFewShotExamples renders up to three original/author-voice pairs.
// Returns an empty string when there are no examples; otherwise the block
// ends with a blank line so it slots cleanly into the system template.
func formatFewShotExamples(examples []types.FewShotExample) string {
	if len(examples) == 0 {
		return ""
	}
	if len(examples) > maxPromptExamples {
		examples = examples[:maxPromptExamples]
	}

	var sb strings.Builder
	sb.WriteString("Examples of this writer's style:\n")
	for i, example := range examples {
		sb.WriteString(fmt.Sprintf("\nExample %d:\n", i+1))
		sb.WriteString(fmt.Sprintf("Original: %q\n", example.Original))
		sb.WriteString(fmt.Sprintf("This writer's version: %q\n", example.Rewrite))
	}
	sb.WriteString("\n")
	return sb.String()
}
