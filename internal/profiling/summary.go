package profiling

import (
	"context"
	"encoding/json"
	"log"
	"strings"

	"github.com/jonathan/voice-mirror/internal/llm"
	"github.com/jonathan/voice-mirror/internal/prompts"
	"github.com/jonathan/voice-mirror/internal/types"
)

// SummaryFallback is returned when summary generation fails. A build with a
// degraded summary still succeeds.
const SummaryFallback = "Profile summary unavailable"

// summaryResponseBudget caps the summary response length in tokens.
const summaryResponseBudget = 150

// GenerateSummary produces a short second-person narrative description of a
// merged signature. It never fails: on any model or encoding error it logs
// the detail and returns the fixed fallback string.
func GenerateSummary(ctx context.Context, client llm.Client, signature *types.StyleSignature) string {
	payload, err := json.MarshalIndent(signature, "", "  ")
	if err != nil {
		log.Printf("summary generation: failed to encode signature: %v", err)
		return SummaryFallback
	}

	messages := []llm.Message{
		{Role: llm.RoleSystem, Content: prompts.MustGet("voice.json", "summarize-profile")},
		{Role: llm.RoleUser, Content: prompts.Format(
			prompts.MustGet("voice.json", "summarize-profile-user"),
			map[string]string{"Profile": string(payload)},
		)},
	}

	text, err := client.GenerateContent(ctx, messages, llm.TierFast, summaryResponseBudget)
	if err != nil {
		log.Printf("summary generation: model call failed: %v", err)
		return SummaryFallback
	}

	text = strings.TrimSpace(text)
	if text == "" {
		return SummaryFallback
	}
	return text
}
