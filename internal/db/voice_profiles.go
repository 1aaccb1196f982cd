package db

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"

	"github.com/jonathan/voice-mirror/internal/types"
)

// GetVoiceProfile retrieves a user's voice profile with its samples.
// Returns (nil, nil) when the user has no profile yet.
func (db *DB) GetVoiceProfile(ctx context.Context, userID uuid.UUID) (*types.VoiceProfile, error) {
	var (
		profile     types.VoiceProfile
		samplesJSON []byte
		profileJSON []byte
	)
	err := db.pool.QueryRow(ctx,
		`SELECT id, user_id, samples, profile_data, summary_text, updated_at
		 FROM voice_profiles WHERE user_id = $1`,
		userID,
	).Scan(&profile.ID, &profile.UserID, &samplesJSON, &profileJSON, &profile.SummaryText, &profile.UpdatedAt)
	if err != nil {
		if err == pgx.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get voice profile: %w", err)
	}

	if len(samplesJSON) > 0 {
		if err := json.Unmarshal(samplesJSON, &profile.Samples); err != nil {
			return nil, fmt.Errorf("failed to decode samples: %w", err)
		}
	}
	if len(profileJSON) > 0 {
		var signature types.StyleSignature
		if err := json.Unmarshal(profileJSON, &signature); err != nil {
			return nil, fmt.Errorf("failed to decode profile data: %w", err)
		}
		profile.ProfileData = &signature
	}

	return &profile, nil
}

// CreateVoiceProfile creates an empty voice profile for a user. Creation is
// idempotent: an existing profile is left untouched.
func (db *DB) CreateVoiceProfile(ctx context.Context, userID uuid.UUID) error {
	_, err := db.pool.Exec(ctx,
		`INSERT INTO voice_profiles (user_id, samples)
		 VALUES ($1, '[]'::jsonb)
		 ON CONFLICT (user_id) DO NOTHING`,
		userID,
	)
	if err != nil {
		return fmt.Errorf("failed to create voice profile: %w", err)
	}
	return nil
}

// AddSample appends one writing sample to a user's profile. Samples are
// append-only and order-preserving.
func (db *DB) AddSample(ctx context.Context, userID uuid.UUID, sample types.WritingSample) error {
	sampleJSON, err := json.Marshal(sample)
	if err != nil {
		return fmt.Errorf("failed to marshal sample: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE voice_profiles
		 SET samples = samples || $2::jsonb, updated_at = NOW()
		 WHERE user_id = $1`,
		userID, sampleJSON,
	)
	if err != nil {
		return fmt.Errorf("failed to add sample: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no voice profile for user %s", userID)
	}
	return nil
}

// SaveProfileBuild replaces the profile data and summary in one write, so a
// build is all-or-nothing from the store's point of view. Concurrent builds
// for the same user are not serialized here; the last write wins.
func (db *DB) SaveProfileBuild(ctx context.Context, userID uuid.UUID, signature *types.StyleSignature, summaryText string) error {
	profileJSON, err := json.Marshal(signature)
	if err != nil {
		return fmt.Errorf("failed to marshal profile data: %w", err)
	}

	tag, err := db.pool.Exec(ctx,
		`UPDATE voice_profiles
		 SET profile_data = $2, summary_text = $3, updated_at = NOW()
		 WHERE user_id = $1`,
		userID, profileJSON, summaryText,
	)
	if err != nil {
		return fmt.Errorf("failed to save profile build: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return fmt.Errorf("no voice profile for user %s", userID)
	}
	return nil
}
