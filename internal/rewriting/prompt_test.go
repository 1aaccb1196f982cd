package rewriting

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/voice-mirror/internal/llm"
	"github.com/jonathan/voice-mirror/internal/types"
)

func fullSignature() *types.StyleSignature {
	return &types.StyleSignature{
		StyleProfile: types.StyleProfile{
			SentenceStructure: types.SentenceStructure{
				AverageLength: 15.5,
				Complexity:    "moderate",
				Variety:       "high",
				Patterns:      []string{"Short declarative openers followed by longer elaboration"},
			},
			Vocabulary: types.Vocabulary{
				Formality:   "casual",
				Richness:    "rich",
				JargonLevel: "light",
				Preferences: []string{"Prefers concrete verbs over abstractions."},
			},
			Tone: types.Tone{
				Warmth:     "warm",
				Directness: "direct",
				Humor:      "subtle",
				Formality:  "casual",
			},
			Punctuation: types.Punctuation{
				EmDashUsage:      "frequent",
				SemicolonUsage:   "rare",
				ExclamationUsage: "none",
			},
			ParagraphStyle: types.ParagraphStyle{
				LeadStyle:    "Anecdotal openings",
				Organization: "thematic",
				Flow:         "smooth",
			},
		},
	}
}

func TestBuildRewritePrompt(t *testing.T) {
	examples := []types.FewShotExample{
		{Original: "The quick brown fox jumps over the lazy dog.", Rewrite: "The quick brown fox jumps over the lazy dog."},
	}

	messages := BuildRewritePrompt(fullSignature(), examples, "Rewrite me.")
	require.Len(t, messages, 2)

	system := messages[0]
	assert.Equal(t, llm.RoleSystem, system.Role)
	assert.Contains(t, system.Content, "Voice Profile:\n")
	assert.Contains(t, system.Content, "- Sentence structure: Short declarative openers followed by longer elaboration")
	assert.Contains(t, system.Content, "- Vocabulary: casual, rich word choice. Prefers concrete verbs over abstractions.")
	assert.Contains(t, system.Content, "- Tone: warm warmth, direct directness, subtle humor")
	assert.Contains(t, system.Content, "- Punctuation: frequent em-dash usage, rare semicolons")
	assert.Contains(t, system.Content, "- Paragraph style: Anecdotal openings")
	assert.Contains(t, system.Content, "Examples of this writer's style:")
	assert.Contains(t, system.Content, "Rules:")
	assert.Less(t, strings.Index(system.Content, "Voice Profile:"), strings.Index(system.Content, "Examples of this writer's style:"))
	assert.Less(t, strings.Index(system.Content, "Examples of this writer's style:"), strings.Index(system.Content, "Rules:"))

	user := messages[1]
	assert.Equal(t, llm.RoleUser, user.Role)
	assert.Contains(t, user.Content, "Return only the rewritten text, nothing else.")
	assert.True(t, strings.HasSuffix(user.Content, "Rewrite me."))
}

func TestBuildRewritePromptDeterministic(t *testing.T) {
	signature := fullSignature()
	first := BuildRewritePrompt(signature, nil, "Some text.")
	second := BuildRewritePrompt(signature, nil, "Some text.")
	assert.Equal(t, first, second)
}

func TestFormatVoiceProfileOmitsAbsentFields(t *testing.T) {
	signature := &types.StyleSignature{
		StyleProfile: types.StyleProfile{
			Tone: types.Tone{Warmth: "cool", Humor: "none"},
		},
	}

	rendered := formatVoiceProfile(signature)

	assert.Equal(t, "- Tone: cool warmth", rendered)
	assert.NotContains(t, rendered, "humor", "humor none is omitted")
	assert.NotContains(t, rendered, "Vocabulary")
	assert.NotContains(t, rendered, "Punctuation")
}

func TestFormatVoiceProfileFallsBackToComplexityLine(t *testing.T) {
	signature := &types.StyleSignature{
		StyleProfile: types.StyleProfile{
			SentenceStructure: types.SentenceStructure{AverageLength: 12.5, Complexity: "simple"},
		},
	}

	rendered := formatVoiceProfile(signature)

	assert.Equal(t, "- Sentence structure: Average 12.5 words, simple complexity", rendered)
}

func TestFormatVoiceProfileAllNonePunctuation(t *testing.T) {
	signature := &types.StyleSignature{
		StyleProfile: types.StyleProfile{
			Punctuation: types.Punctuation{EmDashUsage: "none", SemicolonUsage: "none", ExclamationUsage: "none"},
		},
	}

	rendered := formatVoiceProfile(signature)

	assert.Equal(t, "- Punctuation: standard", rendered)
}

func TestFormatVoiceProfileEmpty(t *testing.T) {
	assert.Equal(t, "No voice profile available.", formatVoiceProfile(nil))
	assert.Equal(t, "No voice profile available.", formatVoiceProfile(&types.StyleSignature{}))
}

func TestFormatFewShotExamples(t *testing.T) {
	examples := []types.FewShotExample{
		{Original: "First example sentence.", Rewrite: "First example sentence."},
		{Original: "Second example sentence.", Rewrite: "Second example sentence."},
	}

	rendered := formatFewShotExamples(examples)

	assert.Contains(t, rendered, "Example 1:")
	assert.Contains(t, rendered, "Example 2:")
	assert.Contains(t, rendered, `Original: "First example sentence."`)
	assert.Contains(t, rendered, `This writer's version: "First example sentence."`)
	assert.True(t, strings.HasSuffix(rendered, "\n\n"), "block ends with a blank line")
}

func TestFormatFewShotExamplesCapped(t *testing.T) {
	var examples []types.FewShotExample
	for i := 0; i < 5; i++ {
		examples = append(examples, types.FewShotExample{Original: "x", Rewrite: "x"})
	}

	rendered := formatFewShotExamples(examples)

	assert.Contains(t, rendered, "Example 3:")
	assert.NotContains(t, rendered, "Example 4:")
}

func TestFormatFewShotExamplesEmpty(t *testing.T) {
	assert.Equal(t, "", formatFewShotExamples(nil))
}
