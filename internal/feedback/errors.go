// Package feedback records user outcomes against rewrite events and signals
// when accumulated feedback suggests the profile should be rebuilt.
package feedback

import (
	"fmt"

	"github.com/google/uuid"
)

// EventNotFoundError indicates the rewrite event does not exist for this user.
type EventNotFoundError struct {
	EventID uuid.UUID
}

func (e *EventNotFoundError) Error() string {
	return fmt.Sprintf("rewrite event not found: %s", e.EventID)
}

// EditTextRequiredError indicates an edit action arrived without edited text.
type EditTextRequiredError struct{}

func (e *EditTextRequiredError) Error() string {
	return "edited text is required when action is \"edit\""
}

// AlreadyRecordedError indicates feedback was already recorded for the event.
// An event takes exactly one terminal action; re-submission is rejected.
type AlreadyRecordedError struct {
	EventID uuid.UUID
}

func (e *AlreadyRecordedError) Error() string {
	return fmt.Sprintf("feedback already recorded for event %s", e.EventID)
}

// InvalidActionError indicates an action outside accept|edit|reject.
type InvalidActionError struct {
	Action string
}

func (e *InvalidActionError) Error() string {
	return fmt.Sprintf("invalid feedback action: %q", e.Action)
}
