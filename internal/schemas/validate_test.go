package schemas

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const validDoc = `{
  "sentenceStructure": {"averageLength": 14.0, "complexity": "simple", "variety": "low", "patterns": []},
  "vocabulary": {"formality": "formal", "richness": "basic", "jargonLevel": "none", "preferences": []},
  "tone": {"warmth": "neutral", "directness": "balanced", "humor": "none", "formality": "professional"},
  "punctuation": {"emDashUsage": "rare", "semicolonUsage": "occasional", "exclamationUsage": "rare", "otherPatterns": []},
  "paragraphStyle": {"leadStyle": "direct", "organization": "linear", "flow": "choppy"},
  "rhetoricalPatterns": [],
  "distinctiveMarkers": []
}`

func TestValidateStyleProfile(t *testing.T) {
	assert.NoError(t, ValidateStyleProfile([]byte(validDoc)))
}

func TestValidateStyleProfileAllowsUnknownKeys(t *testing.T) {
	doc := strings.Replace(validDoc, `"rhetoricalPatterns": [],`, `"rhetoricalPatterns": [], "cadence": {"pace": "slow"},`, 1)
	assert.NoError(t, ValidateStyleProfile([]byte(doc)), "unknown top-level keys pass")
}

func TestValidateStyleProfileMissingRequiredKey(t *testing.T) {
	doc := strings.Replace(validDoc, `"tone": {"warmth": "neutral", "directness": "balanced", "humor": "none", "formality": "professional"},`, ``, 1)

	err := ValidateStyleProfile([]byte(doc))
	require.Error(t, err)

	var ve *ValidationError
	require.ErrorAs(t, err, &ve)
	assert.NotEmpty(t, ve.Errors)
}

func TestValidateStyleProfileOutOfDomainEnum(t *testing.T) {
	tests := []struct {
		name string
		old  string
		new  string
	}{
		{"complexity", `"complexity": "simple"`, `"complexity": "byzantine"`},
		{"formality", `"formality": "formal"`, `"formality": "stiff"`},
		{"warmth", `"warmth": "neutral"`, `"warmth": "icy"`},
		{"emDashUsage", `"emDashUsage": "rare"`, `"emDashUsage": "constant"`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			doc := strings.Replace(validDoc, tt.old, tt.new, 1)

			var ve *ValidationError
			err := ValidateStyleProfile([]byte(doc))
			assert.ErrorAs(t, err, &ve)
		})
	}
}

func TestValidateStyleProfileNonObject(t *testing.T) {
	var ve *ValidationError
	assert.ErrorAs(t, ValidateStyleProfile([]byte(`"just a string"`)), &ve)
	assert.ErrorAs(t, ValidateStyleProfile([]byte(`[]`)), &ve)
}

func TestValidationErrorMessage(t *testing.T) {
	ve := &ValidationError{Errors: []FieldError{
		{Field: "tone.warmth", Message: "must be one of the following"},
	}}
	assert.Contains(t, ve.Error(), "tone.warmth")
}
