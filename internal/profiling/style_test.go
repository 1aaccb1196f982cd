package profiling

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jonathan/voice-mirror/internal/llm"
)

// fakeClient implements llm.Client for tests without network access.
type fakeClient struct {
	jsonResponse    string
	jsonErr         error
	contentResponse string
	contentErr      error

	jsonCalls    int
	contentCalls int
	lastMessages []llm.Message
	lastTier     llm.ModelTier
	lastBudget   int32
}

func (f *fakeClient) GenerateContent(_ context.Context, messages []llm.Message, tier llm.ModelTier, maxTokens int32) (string, error) {
	f.contentCalls++
	f.lastMessages = messages
	f.lastTier = tier
	f.lastBudget = maxTokens
	return f.contentResponse, f.contentErr
}

func (f *fakeClient) GenerateJSON(_ context.Context, messages []llm.Message, tier llm.ModelTier, maxTokens int32) (string, error) {
	f.jsonCalls++
	f.lastMessages = messages
	f.lastTier = tier
	f.lastBudget = maxTokens
	return f.jsonResponse, f.jsonErr
}

func (f *fakeClient) GetModel(tier llm.ModelTier) string {
	if tier == llm.TierQuality {
		return "fake-quality"
	}
	return "fake-fast"
}

func (f *fakeClient) Close() error { return nil }

const validProfileJSON = `{
  "sentenceStructure": {"averageLength": 15.2, "complexity": "moderate", "variety": "high", "patterns": ["declarative openers"]},
  "vocabulary": {"formality": "neutral", "richness": "rich", "jargonLevel": "light", "preferences": ["concrete verbs"]},
  "tone": {"warmth": "warm", "directness": "direct", "humor": "subtle", "formality": "casual"},
  "punctuation": {"emDashUsage": "frequent", "semicolonUsage": "rare", "exclamationUsage": "none", "otherPatterns": []},
  "paragraphStyle": {"leadStyle": "anecdotal", "organization": "thematic", "flow": "smooth"},
  "rhetoricalPatterns": ["rhetorical questions"],
  "distinctiveMarkers": ["em-dash asides"],
  "cadence": {"note": "model added this"}
}`

func TestAnalyzeStyle(t *testing.T) {
	client := &fakeClient{jsonResponse: validProfileJSON}

	profile, err := AnalyzeStyle(context.Background(), client, []string{"sample one", "sample two", "sample three"})
	require.NoError(t, err)

	assert.Equal(t, "moderate", profile.SentenceStructure.Complexity)
	assert.Equal(t, "warm", profile.Tone.Warmth)
	assert.Equal(t, "frequent", profile.Punctuation.EmDashUsage)
	assert.Contains(t, profile.Extra, "cadence", "unknown top-level keys are retained")

	assert.Equal(t, llm.TierQuality, client.lastTier, "style analysis always uses the quality tier")
	require.Len(t, client.lastMessages, 2)
	assert.Equal(t, llm.RoleSystem, client.lastMessages[0].Role)
	assert.Contains(t, client.lastMessages[1].Content, "sample one\n\n---\n\nsample two\n\n---\n\nsample three")
}

func TestAnalyzeStyleStripsMarkdownWrapper(t *testing.T) {
	client := &fakeClient{jsonResponse: "```json\n" + validProfileJSON + "\n```"}

	profile, err := AnalyzeStyle(context.Background(), client, []string{"a sample"})
	require.NoError(t, err)
	assert.Equal(t, "rich", profile.Vocabulary.Richness)
}

func TestAnalyzeStyleRepairsMalformedJSON(t *testing.T) {
	// Trailing comma before the closing brace; a repair pass recovers it.
	broken := strings.TrimSuffix(strings.TrimSpace(validProfileJSON), "}") + ",}"
	client := &fakeClient{jsonResponse: broken}

	profile, err := AnalyzeStyle(context.Background(), client, []string{"a sample"})
	require.NoError(t, err)
	assert.Equal(t, "subtle", profile.Tone.Humor)
}

func TestAnalyzeStyleRejectsOutOfDomainValues(t *testing.T) {
	doc := strings.Replace(validProfileJSON, `"warmth": "warm"`, `"warmth": "scorching"`, 1)
	client := &fakeClient{jsonResponse: doc}

	_, err := AnalyzeStyle(context.Background(), client, []string{"a sample"})
	require.Error(t, err)

	var styleErr *StyleAnalysisError
	assert.ErrorAs(t, err, &styleErr)
}

func TestAnalyzeStyleRejectsUnrepairableResponse(t *testing.T) {
	tests := []struct {
		name     string
		response string
	}{
		{"empty response", ""},
		{"prose instead of JSON", "I cannot produce a profile for this text."},
		{"missing required keys", `{"tone": {"warmth": "warm"}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := &fakeClient{jsonResponse: tt.response}

			_, err := AnalyzeStyle(context.Background(), client, []string{"a sample"})
			var styleErr *StyleAnalysisError
			assert.ErrorAs(t, err, &styleErr)
		})
	}
}

func TestAnalyzeStyleModelFailure(t *testing.T) {
	client := &fakeClient{jsonErr: assert.AnError}

	_, err := AnalyzeStyle(context.Background(), client, []string{"a sample"})
	var styleErr *StyleAnalysisError
	require.ErrorAs(t, err, &styleErr)
	assert.ErrorIs(t, err, assert.AnError)
}

func TestAnalyzeStyleNoSamples(t *testing.T) {
	client := &fakeClient{jsonResponse: validProfileJSON}

	_, err := AnalyzeStyle(context.Background(), client, nil)
	var styleErr *StyleAnalysisError
	assert.ErrorAs(t, err, &styleErr)
	assert.Zero(t, client.jsonCalls, "no model call without samples")
}
