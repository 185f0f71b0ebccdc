package utils

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/okanay/backend-translate-lingua/configs"
	"github.com/okanay/backend-translate-lingua/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testClaims() types.TokenClaims {
	return types.TokenClaims{
		UserID:   "8a1a5ce0-0db0-4a70-b9a2-0a4f7e54f0b1",
		Username: "testuser",
		Email:    "test@example.com",
		Role:     types.RoleUser,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	token, err := GenerateAccessToken(testClaims())
	require.NoError(t, err)
	require.NotEmpty(t, token)

	claims, err := ValidateAccessToken(token)
	require.NoError(t, err)

	assert.Equal(t, testClaims(), *claims)
}

func TestValidateAccessTokenWrongSecret(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")
	token, err := GenerateAccessToken(testClaims())
	require.NoError(t, err)

	t.Setenv("JWT_SECRET", "other-secret")
	_, err = ValidateAccessToken(token)
	assert.Error(t, err)
}

func TestIsTokenExpired(t *testing.T) {
	t.Setenv("JWT_SECRET", "test-secret")

	t.Run("fresh token", func(t *testing.T) {
		token, err := GenerateAccessToken(testClaims())
		require.NoError(t, err)

		expired, _ := IsTokenExpired(token)
		assert.False(t, expired)
	})

	t.Run("expired token", func(t *testing.T) {
		past := time.Now().Add(-1 * time.Hour)
		token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.RegisteredClaims{
			Issuer:    configs.JWT_ISSUER,
			IssuedAt:  jwt.NewNumericDate(past.Add(-time.Minute)),
			ExpiresAt: jwt.NewNumericDate(past),
		})
		signed, err := token.SignedString([]byte("test-secret"))
		require.NoError(t, err)

		expired, validationErr := IsTokenExpired(signed)
		assert.True(t, expired)
		assert.Error(t, validationErr)
	})

	t.Run("garbage token", func(t *testing.T) {
		expired, err := IsTokenExpired("not-a-token")
		assert.False(t, expired)
		assert.Error(t, err)
	})
}

func TestGenerateRefreshToken(t *testing.T) {
	token := GenerateRefreshToken()
	assert.Len(t, token, configs.REFRESH_TOKEN_LENGTH)
}
