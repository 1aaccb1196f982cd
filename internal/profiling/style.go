package profiling

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"

	"github.com/jonathan/voice-mirror/internal/llm"
	"github.com/jonathan/voice-mirror/internal/prompts"
	"github.com/jonathan/voice-mirror/internal/schemas"
	"github.com/jonathan/voice-mirror/internal/types"
)

// sampleSeparator delimits individual samples in the combined prompt text so
// the model can distinguish sample boundaries.
const sampleSeparator = "\n\n---\n\n"

// styleResponseBudget caps the style-analysis response length in tokens.
const styleResponseBudget = 2000

// AnalyzeStyle asks the generative model for a qualitative voice profile of
// the given samples. The response is strictly validated at the boundary:
// markdown wrappers are stripped, a repair pass is attempted on malformed
// JSON, and the result must satisfy the style-profile schema including the
// enumerated value domains. Any failure is a StyleAnalysisError.
func AnalyzeStyle(ctx context.Context, client llm.Client, samples []string) (*types.StyleProfile, error) {
	if len(samples) == 0 {
		return nil, &StyleAnalysisError{Message: "no samples to analyze"}
	}

	combined := strings.Join(samples, sampleSeparator)
	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: prompts.MustGet("voice.json", "analyze-style")},
		{Role: llm.RoleUser, Content: prompts.Format(
			prompts.MustGet("voice.json", "analyze-style-user"),
			map[string]string{"Samples": combined},
		)},
	}

	// Style analysis always runs on the quality tier regardless of input size.
	raw, err := client.GenerateJSON(ctx, messages, llm.TierQuality, styleResponseBudget)
	if err != nil {
		return nil, &StyleAnalysisError{Message: "model call failed", Cause: err}
	}

	raw = llm.CleanJSONBlock(raw)
	if raw == "" {
		return nil, &StyleAnalysisError{Message: "empty response from model"}
	}

	doc := []byte(raw)
	if !json.Valid(doc) {
		repaired, repairErr := jsonrepair.JSONRepair(raw)
		if repairErr != nil {
			return nil, &StyleAnalysisError{Message: "response is not valid JSON", Cause: repairErr}
		}
		doc = []byte(repaired)
	}

	if err := schemas.ValidateStyleProfile(doc); err != nil {
		return nil, &StyleAnalysisError{Message: "response failed schema validation", Cause: err}
	}

	var profile types.StyleProfile
	if err := json.Unmarshal(doc, &profile); err != nil {
		return nil, &StyleAnalysisError{Message: "failed to decode response", Cause: err}
	}

	return &profile, nil
}
