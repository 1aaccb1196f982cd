// Package config provides magic-link token configuration and hashing.
package config

import (
	"fmt"
	"os"
	"strconv"
	"time"

	"golang.org/x/crypto/bcrypt"
)

// MagicLinkConfig holds configuration for magic-link token hashing and expiry.
type MagicLinkConfig struct {
	BcryptCost    int
	TokenLifetime time.Duration
}

// NewMagicLinkConfig creates a magic-link configuration from environment
// variables. It reads BCRYPT_COST (default: 10) and
// MAGIC_TOKEN_EXPIRY_MINUTES (default: 10).
func NewMagicLinkConfig() (*MagicLinkConfig, error) {
	costStr := os.Getenv("BCRYPT_COST")
	if costStr == "" {
		costStr = "10"
	}
	cost, err := strconv.Atoi(costStr)
	if err != nil {
		return nil, fmt.Errorf("invalid BCRYPT_COST: %v", err)
	}
	if cost < bcrypt.MinCost || cost > 14 {
		return nil, fmt.Errorf("bcrypt cost out of range: %d", cost)
	}

	expiryStr := os.Getenv("MAGIC_TOKEN_EXPIRY_MINUTES")
	if expiryStr == "" {
		expiryStr = "10"
	}
	expiryMinutes, err := strconv.Atoi(expiryStr)
	if err != nil {
		return nil, fmt.Errorf("invalid MAGIC_TOKEN_EXPIRY_MINUTES: %v", err)
	}
	if expiryMinutes <= 0 {
		return nil, fmt.Errorf("MAGIC_TOKEN_EXPIRY_MINUTES must be positive: %d", expiryMinutes)
	}

	return &MagicLinkConfig{
		BcryptCost:    cost,
		TokenLifetime: time.Duration(expiryMinutes) * time.Minute,
	}, nil
}

// HashToken hashes a magic-link token for at-rest storage.
func (c *MagicLinkConfig) HashToken(token string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(token), c.BcryptCost)
	if err != nil {
		return "", fmt.Errorf("failed to hash token: %w", err)
	}
	return string(hash), nil
}

// CompareToken checks a presented token against its stored hash.
func (c *MagicLinkConfig) CompareToken(hash, token string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(token)) == nil
}
