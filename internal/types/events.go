package types

import (
	"time"

	"github.com/google/uuid"
)

// FeedbackAction is the terminal user outcome recorded against a rewrite event.
type FeedbackAction string

// Feedback action values.
const (
	ActionAccept FeedbackAction = "accept"
	ActionEdit   FeedbackAction = "edit"
	ActionReject FeedbackAction = "reject"
)

// Valid reports whether the action is one of the declared values.
func (a FeedbackAction) Valid() bool {
	switch a {
	case ActionAccept, ActionEdit, ActionReject:
		return true
	}
	return false
}

// RewriteEvent records one rewrite call and, once submitted, the user's
// feedback on it. UserAction and UserEditedText are set exactly once;
// re-submission is rejected.
type RewriteEvent struct {
	ID             uuid.UUID       `json:"id"`
	UserID         uuid.UUID       `json:"user_id"`
	OriginalText   string          `json:"original_text"`
	RewrittenText  string          `json:"rewritten_text"`
	ModelUsed      string          `json:"model_used"`
	UserAction     *FeedbackAction `json:"user_action,omitempty"`
	UserEditedText *string         `json:"user_edited_text,omitempty"`
	CreatedAt      time.Time       `json:"created_at"`
}

// User is an account record for API responses.
type User struct {
	ID        uuid.UUID `json:"id"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
}
