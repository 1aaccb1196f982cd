package types

import (
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// SubmitSampleRequest represents a writing sample submission.
type SubmitSampleRequest struct {
	Text     string `json:"text" validate:"required,max=100000"`
	Filename string `json:"filename,omitempty"`
}

// RewriteRequest represents a rewrite call. The 5000-character cap keeps the
// input under the ~1000-token budget.
type RewriteRequest struct {
	Text string `json:"text" validate:"required,max=5000"`
}

// FeedbackRequest represents feedback on a rewrite event.
type FeedbackRequest struct {
	EventID    uuid.UUID `json:"event_id" validate:"required"`
	Action     string    `json:"action" validate:"required,oneof=accept edit reject"`
	EditedText string    `json:"edited_text,omitempty"`
}

// AnalyzeRequest represents a read-only structural analysis call.
type AnalyzeRequest struct {
	Text string `json:"text" validate:"required"`
}

// MagicLinkRequest starts magic-link authentication for an email address.
type MagicLinkRequest struct {
	Email string `json:"email" validate:"required,email"`
}

// VerifyRequest exchanges a magic-link token for a session token.
type VerifyRequest struct {
	Email string `json:"email" validate:"required,email"`
	Token string `json:"token" validate:"required"`
}

// Validate validates the SubmitSampleRequest using the validator.
func (r *SubmitSampleRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the RewriteRequest using the validator.
func (r *RewriteRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the FeedbackRequest using the validator.
func (r *FeedbackRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the AnalyzeRequest using the validator.
func (r *AnalyzeRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the MagicLinkRequest using the validator.
func (r *MagicLinkRequest) Validate() error {
	return validator.New().Struct(r)
}

// Validate validates the VerifyRequest using the validator.
func (r *VerifyRequest) Validate() error {
	return validator.New().Struct(r)
}
