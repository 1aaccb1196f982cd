package server

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"time"

	"github.com/google/uuid"

	"github.com/jonathan/voice-mirror/internal/pipeline"
	"github.com/jonathan/voice-mirror/internal/profiling"
	"github.com/jonathan/voice-mirror/internal/rewriting"
	"github.com/jonathan/voice-mirror/internal/server/middleware"
	"github.com/jonathan/voice-mirror/internal/types"
)

// samplePreviewLen truncates sample text in GET /profile responses.
const samplePreviewLen = 200

// SubmitSampleResponse reports the collection state after a submission.
type SubmitSampleResponse struct {
	SampleID    uuid.UUID `json:"sample_id"`
	SampleCount int       `json:"sample_count"`
	TotalWords  int       `json:"total_words"`
	MinWordsMet bool      `json:"min_words_met"`
}

// BuildProfileResponse is returned after a successful profile build.
type BuildProfileResponse struct {
	Signature   *types.StyleSignature `json:"signature"`
	SummaryText string                `json:"summary_text"`
	SampleCount int                   `json:"sample_count"`
	TotalWords  int                   `json:"total_words"`
}

// SamplePreview is a truncated view of a stored writing sample.
type SamplePreview struct {
	ID          uuid.UUID `json:"id"`
	TextPreview string    `json:"text_preview"`
	WordCount   int       `json:"word_count"`
	Filename    string    `json:"filename,omitempty"`
	SubmittedAt string    `json:"submitted_at"`
}

// ProfileResponse is the GET /profile view. Sample text is truncated; full
// texts never leave the store through this endpoint.
type ProfileResponse struct {
	ID          uuid.UUID             `json:"id"`
	Samples     []SamplePreview       `json:"samples"`
	SampleCount int                   `json:"sample_count"`
	TotalWords  int                   `json:"total_words"`
	Built       bool                  `json:"built"`
	Signature   *types.StyleSignature `json:"signature,omitempty"`
	SummaryText string                `json:"summary_text,omitempty"`
	UpdatedAt   string                `json:"updated_at"`
}

// RewriteResponse is returned after a successful rewrite.
type RewriteResponse struct {
	EventID       uuid.UUID `json:"event_id"`
	OriginalText  string    `json:"original_text"`
	RewrittenText string    `json:"rewritten_text"`
	TierUsed      string    `json:"tier_used"`
	Model         string    `json:"model"`
}

// FeedbackResponse reports the feedback tally after recording an action.
type FeedbackResponse struct {
	TotalFeedbackCount    int  `json:"total_feedback_count"`
	RefinementRecommended bool `json:"refinement_recommended"`
}

// handleSubmitSample stores one writing sample for the authenticated user.
func (s *Server) handleSubmitSample(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.SubmitSampleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result, err := s.engine.SubmitSample(r.Context(), userID, req.Text, req.Filename)
	if err != nil {
		s.operationError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusCreated, SubmitSampleResponse{
		SampleID:    result.SampleID,
		SampleCount: result.SampleCount,
		TotalWords:  result.TotalWords,
		MinWordsMet: result.MinWordsMet,
	})
}

// handleBuildProfile synthesizes the voice signature from stored samples.
func (s *Server) handleBuildProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	result, err := s.engine.BuildProfile(r.Context(), userID)
	if err != nil {
		s.operationError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, BuildProfileResponse{
		Signature:   result.Signature,
		SummaryText: result.SummaryText,
		SampleCount: result.SampleCount,
		TotalWords:  result.TotalWords,
	})
}

// handleGetProfile returns the profile with truncated sample previews.
func (s *Server) handleGetProfile(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	profile, err := s.db.GetVoiceProfile(r.Context(), userID)
	if err != nil {
		log.Printf("Profile lookup failed: %v", err)
		s.errorResponse(w, http.StatusInternalServerError, "Failed to load profile")
		return
	}
	if profile == nil {
		notFound := &pipeline.ProfileNotFoundError{}
		s.errorResponse(w, HTTPStatus(notFound), notFound.Error())
		return
	}

	previews := make([]SamplePreview, 0, len(profile.Samples))
	for _, sample := range profile.Samples {
		text := sample.Text
		if runes := []rune(text); len(runes) > samplePreviewLen {
			text = string(runes[:samplePreviewLen])
		}
		previews = append(previews, SamplePreview{
			ID:          sample.ID,
			TextPreview: text,
			WordCount:   sample.WordCount,
			Filename:    sample.Filename,
			SubmittedAt: sample.SubmittedAt.Format(time.RFC3339),
		})
	}

	resp := ProfileResponse{
		ID:          profile.ID,
		Samples:     previews,
		SampleCount: len(profile.Samples),
		TotalWords:  profile.TotalWords(),
		Built:       profile.ProfileData != nil,
		Signature:   profile.ProfileData,
		UpdatedAt:   profile.UpdatedAt.Format(time.RFC3339),
	}
	if profile.SummaryText != nil {
		resp.SummaryText = *profile.SummaryText
	}

	s.jsonResponse(w, http.StatusOK, resp)
}

// handleRewrite rewrites target text in the authenticated user's voice.
func (s *Server) handleRewrite(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.RewriteRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result, err := s.engine.Rewrite(r.Context(), userID, req.Text)
	if err != nil {
		s.operationError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, RewriteResponse{
		EventID:       result.EventID,
		OriginalText:  result.OriginalText,
		RewrittenText: result.RewrittenText,
		TierUsed:      string(result.TierUsed),
		Model:         result.Model,
	})
}

// handleFeedback records a terminal action against a rewrite event.
func (s *Server) handleFeedback(w http.ResponseWriter, r *http.Request) {
	userID, err := middleware.GetUserID(r)
	if err != nil {
		s.errorResponse(w, http.StatusUnauthorized, "Unauthorized")
		return
	}

	var req types.FeedbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	result, err := s.engine.RecordFeedback(r.Context(), userID, req.EventID, types.FeedbackAction(req.Action), req.EditedText)
	if err != nil {
		s.operationError(w, err)
		return
	}

	s.jsonResponse(w, http.StatusOK, FeedbackResponse{
		TotalFeedbackCount:    result.TotalFeedbackCount,
		RefinementRecommended: result.RefinementRecommended,
	})
}

// handleAnalyze runs the deterministic structural analysis. Read-only, no
// model calls, no persistence.
func (s *Server) handleAnalyze(w http.ResponseWriter, r *http.Request) {
	var req types.AnalyzeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.errorResponse(w, http.StatusBadRequest, "Invalid request body: "+err.Error())
		return
	}
	if err := req.Validate(); err != nil {
		s.errorResponse(w, http.StatusBadRequest, extractValidationErrors(err))
		return
	}

	s.jsonResponse(w, http.StatusOK, s.engine.AnalyzeStructure(req.Text))
}

// operationError maps pipeline errors to HTTP responses. Model failures are
// logged with full detail but surfaced as a generic retry message so internal
// model error text never reaches the caller.
func (s *Server) operationError(w http.ResponseWriter, err error) {
	var styleErr *profiling.StyleAnalysisError
	var rewriteErr *rewriting.RewriteError
	if errors.As(err, &styleErr) || errors.As(err, &rewriteErr) {
		log.Printf("Model operation failed: %v", err)
		s.errorResponse(w, http.StatusBadGateway, "The generation service is unavailable, please try again")
		return
	}

	status := HTTPStatus(err)
	if status == http.StatusInternalServerError {
		log.Printf("Operation failed: %v", err)
		s.errorResponse(w, status, "Internal error, please try again")
		return
	}
	s.errorResponse(w, status, err.Error())
}
