package auth

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rentfolio/backend/internal/infrastructure/config"
)

func testJWTService() *JWTService {
	return NewJWTService(config.JWTConfig{
		Secret:                 "test-secret-key-for-unit-tests-only!",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "rentfolio-test",
		MaxRefreshCount:        2,
	})
}

func TestJWTService_GenerateAndValidate(t *testing.T) {
	service := testJWTService()
	userID := uuid.New()

	pair, err := service.GenerateTokenPair(GenerateTokenInput{
		UserID:   userID,
		Username: "manager1",
		Role:     "manager",
	})
	require.NoError(t, err)
	assert.Equal(t, "Bearer", pair.TokenType)
	assert.NotEmpty(t, pair.AccessToken)
	assert.NotEmpty(t, pair.RefreshToken)

	claims, err := service.ValidateAccessToken(pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "manager1", claims.Username)
	assert.Equal(t, "manager", claims.Role)
	assert.Equal(t, TokenTypeAccess, claims.TokenType)

	// The refresh token is not a valid access token.
	_, err = service.ValidateAccessToken(pair.RefreshToken)
	assert.ErrorIs(t, err, ErrInvalidTokenType)

	refreshClaims, err := service.ValidateRefreshToken(pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, TokenTypeRefresh, refreshClaims.TokenType)
}

func TestJWTService_RejectsTamperedToken(t *testing.T) {
	service := testJWTService()

	pair, err := service.GenerateTokenPair(GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "viewer1",
		Role:     "viewer",
	})
	require.NoError(t, err)

	_, err = service.ValidateAccessToken(pair.AccessToken + "x")
	assert.ErrorIs(t, err, ErrInvalidToken)

	other := NewJWTService(config.JWTConfig{
		Secret:                 "a-completely-different-secret-value!",
		AccessTokenExpiration:  15 * time.Minute,
		RefreshTokenExpiration: 24 * time.Hour,
		Issuer:                 "rentfolio-test",
		MaxRefreshCount:        2,
	})
	_, err = other.ValidateAccessToken(pair.AccessToken)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestJWTService_RefreshTokenPair(t *testing.T) {
	service := testJWTService()

	pair, err := service.GenerateTokenPair(GenerateTokenInput{
		UserID:   uuid.New(),
		Username: "manager1",
		Role:     "manager",
	})
	require.NoError(t, err)

	// Each refresh increments the count until the limit is hit.
	refreshed, err := service.RefreshTokenPair(pair.RefreshToken, "manager")
	require.NoError(t, err)
	refreshed, err = service.RefreshTokenPair(refreshed.RefreshToken, "manager")
	require.NoError(t, err)

	_, err = service.RefreshTokenPair(refreshed.RefreshToken, "manager")
	assert.ErrorIs(t, err, ErrMaxRefreshExceeded)
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("s3cret-passphrase")
	require.NoError(t, err)
	assert.NotEqual(t, "s3cret-passphrase", hash)

	assert.True(t, VerifyPassword(hash, "s3cret-passphrase"))
	assert.False(t, VerifyPassword(hash, "wrong"))
}
