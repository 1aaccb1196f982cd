package rewriting

import (
	"context"
	"math"
	"strings"

	"github.com/jonathan/voice-mirror/internal/llm"
	"github.com/jonathan/voice-mirror/internal/types"
)

// minResponseBudget is the floor on the response-length budget in tokens.
const minResponseBudget = 500

// Result is the outcome of one rewrite call. TierUsed records the routing
// decision for auditability; Model is the concrete provider model.
type Result struct {
	RewrittenText string
	TierUsed      llm.ModelTier
	Model         string
}

// RewriteText routes the tier, builds the constrained prompt, and invokes the
// generative model. The entire response is trusted to be the rewrite; only
// leading and trailing whitespace is trimmed. An empty response after
// trimming is a RewriteError.
func RewriteText(ctx context.Context, client llm.Client, text string, signature *types.StyleSignature, examples []types.FewShotExample) (*Result, error) {
	tier := llm.SelectTier(text)
	messages := BuildRewritePrompt(signature, examples, text)

	raw, err := client.GenerateContent(ctx, messages, tier, ResponseBudget(text))
	if err != nil {
		return nil, &RewriteError{Message: "model call failed", Cause: err}
	}

	rewritten := strings.TrimSpace(raw)
	if rewritten == "" {
		return nil, &RewriteError{Message: "empty response from model"}
	}

	return &Result{
		RewrittenText: rewritten,
		TierUsed:      tier,
		Model:         client.GetModel(tier),
	}, nil
}

// ResponseBudget is the response-length budget for a rewrite of text:
// max(500, estimatedTokens * 1.5).
func ResponseBudget(text string) int32 {
	budget := int32(math.Ceil(float64(llm.EstimateTokens(text)) * 1.5))
	if budget < minResponseBudget {
		return minResponseBudget
	}
	return budget
}
