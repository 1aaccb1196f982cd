package pipeline

import (
	"context"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/voice-mirror/internal/analysis"
	"github.com/jonathan/voice-mirror/internal/profiling"
	"github.com/jonathan/voice-mirror/internal/types"
)

// BuildResult is the outcome of a successful profile build.
type BuildResult struct {
	Signature   *types.StyleSignature
	SummaryText string
	SampleCount int
	TotalWords  int
}

// BuildFromTexts synthesizes a voice signature from raw sample texts.
// Validation runs before any model call. Structural analysis has no model
// dependency and runs concurrently with the style call; both must complete
// before the merge. A failed style call fails the whole build; a failed
// summary degrades to the fixed fallback.
func (e *Engine) BuildFromTexts(ctx context.Context, texts []string) (*BuildResult, error) {
	if len(texts) < MinSamples {
		return nil, &InsufficientSamplesError{Found: len(texts), Required: MinSamples}
	}
	totalWords, ok := analysis.ValidateWordCount(texts, MinTotalWords)
	if !ok {
		return nil, &InsufficientWordCountError{Found: totalWords, Required: MinTotalWords}
	}

	var (
		analyses []analysis.Analysis
		style    *types.StyleProfile
	)

	g, gCtx := errgroup.WithContext(ctx)
	g.Go(func() error {
		analyses = make([]analysis.Analysis, len(texts))
		for i, text := range texts {
			analyses[i] = analysis.AnalyzeStructure(text)
		}
		return nil
	})
	g.Go(func() error {
		profile, err := profiling.AnalyzeStyle(gCtx, e.client, texts)
		if err != nil {
			return err
		}
		style = profile
		return nil
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	structural := analysis.AggregateStructural(analyses, totalWords)
	signature := profiling.Merge(structural, style)
	summary := profiling.GenerateSummary(ctx, e.client, signature)

	return &BuildResult{
		Signature:   signature,
		SummaryText: summary,
		SampleCount: len(texts),
		TotalWords:  totalWords,
	}, nil
}

// BuildProfile builds and persists the voice signature for a user's stored
// samples. Persistence is a single write, so a failed build leaves the
// previous profile intact.
func (e *Engine) BuildProfile(ctx context.Context, userID uuid.UUID) (*BuildResult, error) {
	profile, err := e.store.GetVoiceProfile(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, &ProfileNotFoundError{}
	}

	texts := make([]string, len(profile.Samples))
	for i, sample := range profile.Samples {
		texts[i] = sample.Text
	}

	result, err := e.BuildFromTexts(ctx, texts)
	if err != nil {
		return nil, err
	}

	if err := e.store.SaveProfileBuild(ctx, userID, result.Signature, result.SummaryText); err != nil {
		return nil, err
	}
	return result, nil
}
