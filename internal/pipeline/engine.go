package pipeline

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/voice-mirror/internal/analysis"
	"github.com/jonathan/voice-mirror/internal/feedback"
	"github.com/jonathan/voice-mirror/internal/llm"
	"github.com/jonathan/voice-mirror/internal/types"
)

// Validation limits for samples and rewrite input.
const (
	MinSamples       = 3
	MaxSamples       = 10
	MinSampleWords   = 100
	MinTotalWords    = 1500
	MaxRewriteTokens = 1000
)

// Store is the record-store capability the pipeline consumes. Get methods
// return (nil, nil) for missing records.
type Store interface {
	GetVoiceProfile(ctx context.Context, userID uuid.UUID) (*types.VoiceProfile, error)
	CreateVoiceProfile(ctx context.Context, userID uuid.UUID) error
	AddSample(ctx context.Context, userID uuid.UUID, sample types.WritingSample) error
	SaveProfileBuild(ctx context.Context, userID uuid.UUID, signature *types.StyleSignature, summaryText string) error
	CreateRewriteEvent(ctx context.Context, userID uuid.UUID, originalText, rewrittenText, modelUsed string) (uuid.UUID, error)

	feedback.EventStore
}

// Engine wires the analysis, profiling, and rewriting components to a model
// client and a record store. The client and store are passed in explicitly so
// tests can substitute doubles for both.
type Engine struct {
	client llm.Client
	store  Store
}

// New creates a pipeline engine.
func New(client llm.Client, store Store) *Engine {
	return &Engine{client: client, store: store}
}

// AnalyzeStructure computes deterministic structural metrics for one text.
// Read-only; always succeeds.
func (e *Engine) AnalyzeStructure(text string) analysis.Analysis {
	return analysis.AnalyzeStructure(text)
}

// RecordFeedback records one terminal action against a rewrite event and
// reports whether the refinement threshold has been reached.
func (e *Engine) RecordFeedback(ctx context.Context, userID, eventID uuid.UUID, action types.FeedbackAction, editedText string) (*feedback.Result, error) {
	return feedback.Record(ctx, e.store, userID, eventID, action, editedText)
}
