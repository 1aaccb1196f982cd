package feedback

import (
	"context"

	"github.com/google/uuid"

	"github.com/jonathan/voice-mirror/internal/types"
)

// RefinementThreshold is the per-user count of actioned events at which a
// profile refinement is recommended. The signal is advisory only; nothing
// here triggers a rebuild.
const RefinementThreshold = 10

// EventStore is the record-store capability the aggregator consumes.
// GetRewriteEvent returns (nil, nil) when no event exists for the user.
type EventStore interface {
	GetRewriteEvent(ctx context.Context, userID, eventID uuid.UUID) (*types.RewriteEvent, error)
	SetEventFeedback(ctx context.Context, eventID uuid.UUID, action types.FeedbackAction, editedText *string) error
	CountFeedback(ctx context.Context, userID uuid.UUID) (int, error)
}

// Result reports the outcome of recording one feedback action.
type Result struct {
	TotalFeedbackCount    int
	RefinementRecommended bool
}

// Record stores one terminal action against a rewrite event. Each event
// accepts exactly one action; edited text is kept only for edit actions.
func Record(ctx context.Context, store EventStore, userID, eventID uuid.UUID, action types.FeedbackAction, editedText string) (*Result, error) {
	if !action.Valid() {
		return nil, &InvalidActionError{Action: string(action)}
	}
	if action == types.ActionEdit && editedText == "" {
		return nil, &EditTextRequiredError{}
	}

	event, err := store.GetRewriteEvent(ctx, userID, eventID)
	if err != nil {
		return nil, err
	}
	if event == nil {
		return nil, &EventNotFoundError{EventID: eventID}
	}
	if event.UserAction != nil {
		return nil, &AlreadyRecordedError{EventID: eventID}
	}

	var edited *string
	if action == types.ActionEdit {
		edited = &editedText
	}
	if err := store.SetEventFeedback(ctx, eventID, action, edited); err != nil {
		return nil, err
	}

	count, err := store.CountFeedback(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Result{
		TotalFeedbackCount:    count,
		RefinementRecommended: count >= RefinementThreshold,
	}, nil
}
