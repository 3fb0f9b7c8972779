package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidateToken(t *testing.T) {
	tokenString, err := GenerateToken("staff-1", "desk@premierlodge.example", time.Hour)
	require.NoError(t, err)

	token, err := ValidateToken(tokenString)
	require.NoError(t, err)
	assert.True(t, token.Valid)

	subject, err := TokenSubject(token)
	require.NoError(t, err)
	assert.Equal(t, "staff-1", subject)
}

func TestValidateTokenRejectsExpired(t *testing.T) {
	tokenString, err := GenerateToken("staff-1", "desk@premierlodge.example", -time.Minute)
	require.NoError(t, err)

	_, err = ValidateToken(tokenString)
	assert.Error(t, err)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")
	assert.Error(t, err)
}
