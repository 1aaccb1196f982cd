package server

import (
	"encoding/hex"
	"fmt"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateMagicToken(t *testing.T) {
	token, err := generateMagicToken()
	require.NoError(t, err)

	decoded, err := hex.DecodeString(token)
	require.NoError(t, err)
	assert.Len(t, decoded, 32)

	other, err := generateMagicToken()
	require.NoError(t, err)
	assert.NotEqual(t, token, other)
}

func TestExtractValidationErrors(t *testing.T) {
	type payload struct {
		Email string `validate:"required,email"`
	}

	err := validator.New().Struct(payload{Email: "nope"})
	require.Error(t, err)

	msg := extractValidationErrors(err)
	assert.Contains(t, msg, "Email")
	assert.Contains(t, msg, "email")

	assert.Equal(t, "Validation failed", extractValidationErrors(fmt.Errorf("plain error")))
}
