// Package server provides the HTTP REST API for the voice-mirror service.
package server

import (
	"crypto/rand"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"

	"github.com/jonathan/voice-mirror/internal/config"
	"github.com/jonathan/voice-mirror/internal/db"
	"github.com/jonathan/voice-mirror/internal/mailer"
	"github.com/jonathan/voice-mirror/internal/types"
)

// AuthHandler handles magic-link authentication HTTP requests.
type AuthHandler struct {
	db         *db.DB
	magicCfg   *config.MagicLinkConfig
	jwtService *JWTService
	mailer     mailer.Sender
	validator  *validator.Validate
}

// NewAuthHandler creates a new AuthHandler with the given dependencies.
func NewAuthHandler(database *db.DB, magicCfg *config.MagicLinkConfig, jwtService *JWTService, sender mailer.Sender) *AuthHandler {
	return &AuthHandler{
		db:         database,
		magicCfg:   magicCfg,
		jwtService: jwtService,
		mailer:     sender,
		validator:  validator.New(),
	}
}

// LoginResponse is returned after a successful token verification.
type LoginResponse struct {
	User  *types.User `json:"user"`
	Token string      `json:"token"`
}

// RequestMagicLink issues a single-use login token and mails it to the user.
// The response is identical whether or not the email had an account before,
// so the endpoint does not reveal which addresses are registered.
func (h *AuthHandler) RequestMagicLink(w http.ResponseWriter, r *http.Request) {
	var req types.MagicLinkRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	user, err := h.db.GetOrCreateUser(r.Context(), req.Email)
	if err != nil {
		log.Printf("Magic link: user lookup failed: %v", err)
		http.Error(w, "Failed to issue login token", http.StatusInternalServerError)
		return
	}

	token, err := generateMagicToken()
	if err != nil {
		log.Printf("Magic link: token generation failed: %v", err)
		http.Error(w, "Failed to issue login token", http.StatusInternalServerError)
		return
	}

	tokenHash, err := h.magicCfg.HashToken(token)
	if err != nil {
		log.Printf("Magic link: token hashing failed: %v", err)
		http.Error(w, "Failed to issue login token", http.StatusInternalServerError)
		return
	}

	expiresAt := time.Now().UTC().Add(h.magicCfg.TokenLifetime)
	if err := h.db.SetMagicToken(r.Context(), user.ID, tokenHash, expiresAt); err != nil {
		log.Printf("Magic link: token storage failed: %v", err)
		http.Error(w, "Failed to issue login token", http.StatusInternalServerError)
		return
	}

	if err := h.mailer.SendMagicLink(r.Context(), user.Email, token); err != nil {
		log.Printf("Magic link: send failed: %v", err)
		http.Error(w, "Failed to send login token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusAccepted)
	_ = json.NewEncoder(w).Encode(map[string]string{
		"message": "If the address is valid, a login link has been sent",
	})
}

// Verify exchanges a magic-link token for a session token. Tokens are single
// use: the stored hash is cleared on success.
func (h *AuthHandler) Verify(w http.ResponseWriter, r *http.Request) {
	var req types.VerifyRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}

	if err := h.validator.Struct(req); err != nil {
		http.Error(w, extractValidationErrors(err), http.StatusBadRequest)
		return
	}

	stored, err := h.db.GetMagicToken(r.Context(), req.Email)
	if err != nil {
		log.Printf("Verify: token lookup failed: %v", err)
		http.Error(w, "Failed to verify token", http.StatusInternalServerError)
		return
	}
	if stored == nil || time.Now().UTC().After(stored.ExpiresAt) || !h.magicCfg.CompareToken(stored.Hash, req.Token) {
		invalidErr := &ErrInvalidToken{}
		http.Error(w, invalidErr.Error(), HTTPStatus(invalidErr))
		return
	}

	if err := h.db.ClearMagicToken(r.Context(), stored.UserID); err != nil {
		log.Printf("Verify: token clear failed: %v", err)
		http.Error(w, "Failed to verify token", http.StatusInternalServerError)
		return
	}

	user, err := h.db.GetUserByID(r.Context(), stored.UserID)
	if err != nil || user == nil {
		http.Error(w, "Failed to load user", http.StatusInternalServerError)
		return
	}

	token, err := h.jwtService.GenerateToken(user.ID)
	if err != nil {
		http.Error(w, "Failed to generate token", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(LoginResponse{User: user, Token: token})
}

// MeWithUserID returns the account record for an authenticated user.
func (h *AuthHandler) MeWithUserID(w http.ResponseWriter, r *http.Request, userID uuid.UUID) {
	user, err := h.db.GetUserByID(r.Context(), userID)
	if err != nil {
		http.Error(w, "Failed to load user", http.StatusInternalServerError)
		return
	}
	if user == nil {
		notFound := &ErrUserNotFound{}
		http.Error(w, notFound.Error(), HTTPStatus(notFound))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	_ = json.NewEncoder(w).Encode(user)
}

// generateMagicToken returns 32 bytes of randomness hex encoded.
func generateMagicToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", fmt.Errorf("failed to read random bytes: %w", err)
	}
	return hex.EncodeToString(buf), nil
}

// extractValidationErrors formats validator errors into a readable message.
func extractValidationErrors(err error) string {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return "Validation failed"
	}

	msg := "Validation failed:"
	for _, fieldErr := range validationErrors {
		msg += fmt.Sprintf(" %s (%s)", fieldErr.Field(), fieldErr.Tag())
	}
	return msg
}
