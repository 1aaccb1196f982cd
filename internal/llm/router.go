// Package llm - router.go routes work to a compute tier by estimated input cost.
package llm

import (
	"math"
	"unicode/utf8"
)

// TokenThreshold is the estimated-token boundary between the fast and quality
// tiers. Inputs at or below the threshold route to TierFast.
const TokenThreshold = 200

// EstimateTokens returns a rough token estimate for text (1 token ≈ 4 chars).
// The estimate counts characters, not bytes, so multi-byte punctuation does
// not inflate it.
func EstimateTokens(text string) int {
	return int(math.Ceil(float64(utf8.RuneCountInString(text)) / 4))
}

// SelectTier chooses a compute tier from the input text alone. It is pure and
// side-effect free; callers record the chosen tier alongside the result.
func SelectTier(text string) ModelTier {
	if EstimateTokens(text) <= TokenThreshold {
		return TierFast
	}
	return TierQuality
}
