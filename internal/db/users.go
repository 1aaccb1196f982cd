package db

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/voice-mirror/internal/types"
)

// MagicToken is a pending magic-link token for one user. Only the bcrypt hash
// of the token is stored.
type MagicToken struct {
	UserID    uuid.UUID
	Hash      string
	ExpiresAt time.Time
}

// GetOrCreateUser looks up a user by email, creating the account on first use.
func (db *DB) GetOrCreateUser(ctx context.Context, email string) (*types.User, error) {
	var user types.User
	err := db.pool.QueryRow(ctx,
		`INSERT INTO users (email)
		 VALUES ($1)
		 ON CONFLICT (email) DO UPDATE SET email = EXCLUDED.email
		 RETURNING id, email, created_at`,
		email,
	).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("failed to get or create user: %w", err)
	}
	return &user, nil
}

// GetUserByID retrieves a user record. Returns (nil, nil) when missing.
func (db *DB) GetUserByID(ctx context.Context, userID uuid.UUID) (*types.User, error) {
	var user types.User
	err := db.pool.QueryRow(ctx,
		`SELECT id, email, created_at FROM users WHERE id = $1`,
		userID,
	).Scan(&user.ID, &user.Email, &user.CreatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &user, nil
}

// SetMagicToken stores a hashed magic-link token with its expiry, replacing
// any previous pending token.
func (db *DB) SetMagicToken(ctx context.Context, userID uuid.UUID, tokenHash string, expiresAt time.Time) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE users SET magic_token_hash = $2, magic_token_expires_at = $3 WHERE id = $1`,
		userID, tokenHash, expiresAt,
	)
	if err != nil {
		return fmt.Errorf("failed to set magic token: %w", err)
	}
	return nil
}

// GetMagicToken retrieves the pending magic-link token for an email address.
// Returns (nil, nil) when there is no pending token.
func (db *DB) GetMagicToken(ctx context.Context, email string) (*MagicToken, error) {
	var token MagicToken
	err := db.pool.QueryRow(ctx,
		`SELECT id, magic_token_hash, magic_token_expires_at
		 FROM users
		 WHERE email = $1 AND magic_token_hash IS NOT NULL`,
		email,
	).Scan(&token.UserID, &token.Hash, &token.ExpiresAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get magic token: %w", err)
	}
	return &token, nil
}

// ClearMagicToken removes a consumed or expired magic-link token.
func (db *DB) ClearMagicToken(ctx context.Context, userID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`UPDATE users SET magic_token_hash = NULL, magic_token_expires_at = NULL WHERE id = $1`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to clear magic token: %w", err)
	}
	return nil
}
