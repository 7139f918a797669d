package utils

import (
	"testing"

	"github.com/golang-jwt/jwt/v5"
	"github.com/stretchr/testify/assert"
)

func TestGenerateToken_UsesConfiguredSecret(t *testing.T) {
	// The secret can arrive via .env loaded in main(), long after this
	// package is initialized, so tokens must be signed with whatever the
	// environment holds at signing time.
	t.Setenv("JWT_SECRET", "configured-secret")

	token, err := GenerateToken(1, "root", "admin")
	assert.NoError(t, err)

	claims := &Claims{}
	parsed, err := jwt.ParseWithClaims(token, claims, func(token *jwt.Token) (interface{}, error) {
		return []byte("configured-secret"), nil
	})
	assert.NoError(t, err)
	assert.True(t, parsed.Valid)
	assert.Equal(t, "root", claims.Username)
	assert.Equal(t, "admin", claims.Role)
}

func TestValidateToken_RoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "configured-secret")

	token, err := GenerateToken(7, "alice", "viewer")
	assert.NoError(t, err)

	claims, err := ValidateToken(token)
	assert.NoError(t, err)
	assert.Equal(t, uint(7), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "viewer", claims.Role)
}

func TestValidateToken_RejectsWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "configured-secret")
	token, err := GenerateToken(1, "root", "admin")
	assert.NoError(t, err)

	t.Setenv("JWT_SECRET", "a-different-secret")
	claims, err := ValidateToken(token)
	assert.Error(t, err)
	assert.Nil(t, claims)
}
