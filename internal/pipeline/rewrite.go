package pipeline

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/voice-mirror/internal/analysis"
	"github.com/jonathan/voice-mirror/internal/llm"
	"github.com/jonathan/voice-mirror/internal/rewriting"
	"github.com/jonathan/voice-mirror/internal/types"
)

// RewriteResult is the outcome of one rewrite call.
type RewriteResult struct {
	EventID       uuid.UUID
	OriginalText  string
	RewrittenText string
	TierUsed      llm.ModelTier
	Model         string
}

// Rewrite rewrites target text in the user's voice. Length validation runs
// before any model call; the profile must have been built. On success the
// rewrite event is persisted and its ID returned for later feedback.
func (e *Engine) Rewrite(ctx context.Context, userID uuid.UUID, text string) (*RewriteResult, error) {
	if estimated := llm.EstimateTokens(text); estimated > MaxRewriteTokens {
		return nil, &TextTooLongError{EstimatedTokens: estimated, MaxTokens: MaxRewriteTokens}
	}

	profile, err := e.store.GetVoiceProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil || profile.ProfileData == nil {
		return nil, &ProfileNotReadyError{}
	}

	// Few-shot examples are transient: recomputed per call, never persisted.
	texts := make([]string, len(profile.Samples))
	for i, sample := range profile.Samples {
		texts[i] = sample.Text
	}
	examples := analysis.ExtractFewShot(texts)

	result, err := rewriting.RewriteText(ctx, e.client, text, profile.ProfileData, examples)
	if err != nil {
		return nil, err
	}

	eventID, err := e.store.CreateRewriteEvent(ctx, userID, text, result.RewrittenText, result.Model)
	if err != nil {
		return nil, err
	}

	return &RewriteResult{
		EventID:       eventID,
		OriginalText:  text,
		RewrittenText: result.RewrittenText,
		TierUsed:      result.TierUsed,
		Model:         result.Model,
	}, nil
}

// SubmitResult reports the state of the sample collection after a submission.
type SubmitResult struct {
	SampleID    uuid.UUID
	SampleCount int
	TotalWords  int
	MinWordsMet bool
}

// SubmitSample appends one writing sample to the user's profile, creating the
// profile lazily on first submission. Samples under the word minimum and
// submissions past the sample cap are rejected before any write.
func (e *Engine) SubmitSample(ctx context.Context, userID uuid.UUID, text, filename string) (*SubmitResult, error) {
	wordCount := analysis.CountWords(text)
	if wordCount < MinSampleWords {
		return nil, &SampleTooShortError{WordCount: wordCount, Required: MinSampleWords}
	}

	profile, err := e.store.GetVoiceProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		if err := e.store.CreateVoiceProfile(ctx, userID); err != nil {
			return nil, err
		}
		profile = &types.VoiceProfile{UserID: userID}
	}
	if len(profile.Samples) >= MaxSamples {
		return nil, &SampleLimitError{Limit: MaxSamples}
	}

	sample := types.WritingSample{
		ID:          uuid.New(),
		Text:        text,
		WordCount:   wordCount,
		Filename:    filename,
		SubmittedAt: time.Now().UTC(),
	}
	if err := e.store.AddSample(ctx, userID, sample); err != nil {
		return nil, err
	}

	totalWords := profile.TotalWords() + wordCount
	return &SubmitResult{
		SampleID:    sample.ID,
		SampleCount: len(profile.Samples) + 1,
		TotalWords:  totalWords,
		MinWordsMet: totalWords >= MinTotalWords,
	}, nil
}
