package middleware

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenRoundTrip(t *testing.T) {
	token, err := GenerateToken(42, "operator")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)

	assert.Equal(t, uint(42), claims.UserID)
	assert.Equal(t, "operator", claims.Role)
}

func TestValidateTokenRejectsGarbage(t *testing.T) {
	_, err := ValidateToken("not-a-token")

	assert.Error(t, err)
}

func TestValidateTokenRejectsTampered(t *testing.T) {
	token, err := GenerateToken(1, "admin")
	require.NoError(t, err)

	_, err = ValidateToken(token + "x")

	assert.Error(t, err)
}
