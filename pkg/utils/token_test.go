package utils

import (
	"strings"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func tokenTestConfig() JWTConfig {
	return JWTConfig{
		Secret:            "test-secret",
		AccessExpiryMins:  15,
		RefreshExpiryDays: 7,
	}
}

func TestAccessTokenRoundTrip(t *testing.T) {
	cfg := tokenTestConfig()
	userID := uuid.New()

	token, err := SignAccessToken(cfg, userID, "coach1", "coach")
	require.NoError(t, err)

	claims, err := VerifyAccessToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
	assert.Equal(t, "coach1", claims.Username)
	assert.Equal(t, "coach", claims.Role)
}

func TestRefreshTokenRoundTrip(t *testing.T) {
	cfg := tokenTestConfig()
	userID := uuid.New()

	token, err := SignRefreshToken(cfg, userID)
	require.NoError(t, err)

	claims, err := VerifyRefreshToken(cfg, token)
	require.NoError(t, err)
	assert.Equal(t, userID.String(), claims.UserID)
}

func TestExpiredTokenRejected(t *testing.T) {
	cfg := tokenTestConfig()
	cfg.AccessExpiryMins = -1

	token, err := SignAccessToken(cfg, uuid.New(), "coach1", "coach")
	require.NoError(t, err)

	_, err = VerifyAccessToken(tokenTestConfig(), token)
	assert.Error(t, err)
}

func TestTamperedTokenRejected(t *testing.T) {
	cfg := tokenTestConfig()

	token, err := SignAccessToken(cfg, uuid.New(), "coach1", "coach")
	require.NoError(t, err)

	// Flip a character in the payload segment
	parts := strings.Split(token, ".")
	require.Len(t, parts, 3)
	payload := []byte(parts[1])
	if payload[0] == 'A' {
		payload[0] = 'B'
	} else {
		payload[0] = 'A'
	}
	tampered := parts[0] + "." + string(payload) + "." + parts[2]

	_, err = VerifyAccessToken(cfg, tampered)
	assert.Error(t, err)
}

func TestWrongSecretRejected(t *testing.T) {
	cfg := tokenTestConfig()

	token, err := SignAccessToken(cfg, uuid.New(), "coach1", "coach")
	require.NoError(t, err)

	other := cfg
	other.Secret = "different-secret"
	_, err = VerifyAccessToken(other, token)
	assert.Error(t, err)
}

func TestRefreshTokenIsNotAnAccessToken(t *testing.T) {
	cfg := tokenTestConfig()

	refresh, err := SignRefreshToken(cfg, uuid.New())
	require.NoError(t, err)

	// A refresh token parses as access claims but carries no role; the auth
	// middleware still accepts identity only, so role-gated routes refuse it.
	claims, err := VerifyAccessToken(cfg, refresh)
	require.NoError(t, err)
	assert.Empty(t, claims.Role)
	assert.Empty(t, claims.Username)
}
