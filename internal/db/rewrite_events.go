package db

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/voice-mirror/internal/types"
)

// CreateRewriteEvent records one rewrite call and returns the event ID.
func (db *DB) CreateRewriteEvent(ctx context.Context, userID uuid.UUID, originalText, rewrittenText, modelUsed string) (uuid.UUID, error) {
	var id uuid.UUID
	err := db.pool.QueryRow(ctx,
		`INSERT INTO rewrite_events (user_id, original_text, rewritten_text, model_used)
		 VALUES ($1, $2, $3, $4)
		 RETURNING id`,
		userID, originalText, rewrittenText, modelUsed,
	).Scan(&id)
	if err != nil {
		return uuid.Nil, fmt.Errorf("failed to create rewrite event: %w", err)
	}
	return id, nil
}

// GetRewriteEvent retrieves an event scoped to its owning user.
// Returns (nil, nil) when no such event exists for the user.
func (db *DB) GetRewriteEvent(ctx context.Context, userID, eventID uuid.UUID) (*types.RewriteEvent, error) {
	var event types.RewriteEvent
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, original_text, rewritten_text, model_used, user_action, user_edited_text, created_at
		 FROM rewrite_events WHERE id = $1 AND user_id = $2`,
		eventID, userID,
	).Scan(&event.ID, &event.UserID, &event.OriginalText, &event.RewrittenText,
		&event.ModelUsed, &event.UserAction, &event.UserEditedText, &event.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get rewrite event: %w", err)
	}
	return &event, nil
}

// SetEventFeedback records the terminal action for an event. The guard on
// user_action keeps the write single-shot even under concurrent submissions.
func (db *DB) SetEventFeedback(ctx context.Context, eventID uuid.UUID, action types.FeedbackAction, editedText *string) error {
	tag, err := db.pool.Exec(ctx,
		`UPDATE rewrite_events
		 SET user_action = $2, user_edited_text = $3
		 WHERE id = $1 AND user_action IS NULL`,
		eventID, string(action), editedText,
	)
	if err != nil {
		return fmt.Errorf("failed to set event feedback: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("feedback already recorded for event %s", eventID)
	}
	return nil
}

// CountFeedback returns the user's count of events with a recorded action.
func (db *DB) CountFeedback(ctx context.Context, userID uuid.UUID) (int, error) {
	var count int
	err := db.pool.QueryRow(ctx,
		`SELECT COUNT(*) FROM rewrite_events WHERE user_id = $1 AND user_action IS NOT NULL`,
		userID,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count feedback: %w", err)
	}
	return count, nil
}
