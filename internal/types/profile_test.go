package types

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVoiceProfileTotalWords(t *testing.T) {
	profile := &VoiceProfile{
		Samples: []WritingSample{
			{WordCount: 120},
			{WordCount: 380},
			{WordCount: 1000},
		},
	}
	assert.Equal(t, 1500, profile.TotalWords())

	assert.Equal(t, 0, (&VoiceProfile{}).TotalWords())
}

func TestStyleProfileCapturesUnknownKeys(t *testing.T) {
	doc := `{
		"sentenceStructure": {"complexity": "moderate"},
		"vocabulary": {"formality": "casual"},
		"tone": {"warmth": "warm"},
		"punctuation": {"emDashUsage": "rare"},
		"paragraphStyle": {"flow": "smooth"},
		"rhetoricalPatterns": ["lists"],
		"distinctiveMarkers": [],
		"cadence": {"pace": "slow"},
		"register": "intimate"
	}`

	var profile StyleProfile
	require.NoError(t, json.Unmarshal([]byte(doc), &profile))

	assert.Equal(t, "moderate", profile.SentenceStructure.Complexity)
	assert.Contains(t, profile.Extra, "cadence")
	assert.Contains(t, profile.Extra, "register")
	assert.NotContains(t, profile.Extra, "tone", "known keys are not duplicated into Extra")
}

func TestStyleProfileRoundTripsExtraKeys(t *testing.T) {
	profile := StyleProfile{
		Tone:  Tone{Warmth: "warm"},
		Extra: map[string]json.RawMessage{"cadence": json.RawMessage(`{"pace":"slow"}`)},
	}

	encoded, err := json.Marshal(profile)
	require.NoError(t, err)

	var decoded StyleProfile
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	assert.Equal(t, "warm", decoded.Tone.Warmth)
	require.Contains(t, decoded.Extra, "cadence")
	assert.JSONEq(t, `{"pace":"slow"}`, string(decoded.Extra["cadence"]))
}

func TestStyleSignatureJSON(t *testing.T) {
	signature := StyleSignature{
		StyleProfile: StyleProfile{
			Vocabulary: Vocabulary{Formality: "neutral"},
			Extra:      map[string]json.RawMessage{"pacing": json.RawMessage(`"slow"`)},
		},
		StructuralMetrics: StructuralMetrics{
			AverageSentenceLength: 16.4,
			AverageWordLength:     4.8,
			PunctuationFrequency:  PunctuationFrequency{EmDashesPer1000: 2},
		},
	}

	encoded, err := json.Marshal(signature)
	require.NoError(t, err)
	assert.Contains(t, string(encoded), `"structuralMetrics"`)

	var decoded StyleSignature
	require.NoError(t, json.Unmarshal(encoded, &decoded))

	assert.Equal(t, 16.4, decoded.StructuralMetrics.AverageSentenceLength)
	assert.Equal(t, 2, decoded.StructuralMetrics.PunctuationFrequency.EmDashesPer1000)
	assert.Equal(t, "neutral", decoded.Vocabulary.Formality)
	assert.NotContains(t, decoded.Extra, "structuralMetrics", "the structural block is typed, not an extra key")
	assert.Contains(t, decoded.Extra, "pacing")
}
