package usecase

import (
	"context"
	"encoding/json"
	"testing"
	"time"

	"club-roster/internal/data/entity"
	"club-roster/internal/dto/request"
	"club-roster/pkg/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterCreatesAccount(t *testing.T) {
	f := newFakeRepos()
	svc := NewAuthService(f.repo, testConfig(), testLogger())

	resp, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "coach1",
		Email:    "coach1@example.com",
		Password: "secret123",
		Name:     "Coach One",
	})
	require.NoError(t, err)

	assert.Equal(t, "coach1", resp.Username)
	assert.Equal(t, entity.RoleCoach, resp.Role)

	stored, err := f.user.FindByUsername(context.Background(), "coach1")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.True(t, stored.IsActive)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.True(t, utils.CheckPasswordHash("secret123", stored.PasswordHash))
}

func TestRegisterIgnoresRoleInBody(t *testing.T) {
	f := newFakeRepos()
	svc := NewAuthService(f.repo, testConfig(), testLogger())

	// A register payload smuggling a role field must not grant it; the
	// account always starts as coach.
	var req request.RegisterRequest
	body := `{"username": "mallory", "email": "mallory@example.com",
		"password": "secret123", "name": "Mallory", "role": "admin"}`
	require.NoError(t, json.Unmarshal([]byte(body), &req))

	resp, err := svc.Register(context.Background(), &req)
	require.NoError(t, err)
	assert.Equal(t, entity.RoleCoach, resp.Role)

	stored, err := f.user.FindByUsername(context.Background(), "mallory")
	require.NoError(t, err)
	require.NotNil(t, stored)
	assert.Equal(t, entity.RoleCoach, stored.Role)
}

func TestRegisterRejectsDuplicateUsernameCaseInsensitive(t *testing.T) {
	f := newFakeRepos()
	seedUser(f, "coach1", entity.RoleCoach, "secret123")
	svc := NewAuthService(f.repo, testConfig(), testLogger())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "Coach1",
		Email:    "other@example.com",
		Password: "secret123",
		Name:     "Other",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already")
}

func TestRegisterRejectsDuplicateEmail(t *testing.T) {
	f := newFakeRepos()
	seedUser(f, "coach1", entity.RoleCoach, "secret123")
	svc := NewAuthService(f.repo, testConfig(), testLogger())

	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "coach2",
		Email:    "coach1@example.com",
		Password: "secret123",
		Name:     "Other",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already")
}

func TestRegisterRejectsUnknownClub(t *testing.T) {
	f := newFakeRepos()
	svc := NewAuthService(f.repo, testConfig(), testLogger())

	clubID := "9f4e7a2c-1111-4222-8333-444455556666"
	_, err := svc.Register(context.Background(), &request.RegisterRequest{
		Username: "player1",
		Email:    "player1@example.com",
		Password: "secret123",
		Name:     "Player One",
		Club:     &clubID,
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestLoginReturnsTokenPair(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(f, "coach1", entity.RoleCoach, "secret123")
	cfg := testConfig()
	svc := NewAuthService(f.repo, cfg, testLogger())

	auth, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "coach1",
		Password: "secret123",
	})
	require.NoError(t, err)

	claims, err := utils.VerifyAccessToken(cfg.JWT, auth.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "coach1", claims.Username)
	assert.Equal(t, "coach", claims.Role)

	refreshClaims, err := utils.VerifyRefreshToken(cfg.JWT, auth.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), refreshClaims.UserID)

	assert.Equal(t, user.ID.String(), auth.User.ID)

	// last login recorded
	stored := f.user.users[user.ID]
	assert.NotNil(t, stored.LastLogin)
}

func TestLoginUnknownUserAndWrongPasswordIndistinguishable(t *testing.T) {
	f := newFakeRepos()
	seedUser(f, "coach1", entity.RoleCoach, "secret123")
	svc := NewAuthService(f.repo, testConfig(), testLogger())

	_, errUnknown := svc.Login(context.Background(), &request.LoginRequest{
		Username: "nobody",
		Password: "secret123",
	})
	_, errWrongPass := svc.Login(context.Background(), &request.LoginRequest{
		Username: "coach1",
		Password: "wrongpass",
	})

	require.Error(t, errUnknown)
	require.Error(t, errWrongPass)
	assert.Equal(t, errUnknown.Error(), errWrongPass.Error())
}

func TestLoginRejectsDeactivatedAccount(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(f, "coach1", entity.RoleCoach, "secret123")
	f.user.users[user.ID].IsActive = false
	svc := NewAuthService(f.repo, testConfig(), testLogger())

	_, err := svc.Login(context.Background(), &request.LoginRequest{
		Username: "coach1",
		Password: "secret123",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deactivated")
}

func TestRefreshRotatesBothTokens(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(f, "coach1", entity.RoleCoach, "secret123")
	cfg := testConfig()
	svc := NewAuthService(f.repo, cfg, testLogger())

	refreshToken, err := utils.SignRefreshToken(cfg.JWT, user.ID)
	require.NoError(t, err)

	pair, err := svc.Refresh(context.Background(), refreshToken)
	require.NoError(t, err)
	require.NotEmpty(t, pair.AccessToken)
	require.NotEmpty(t, pair.RefreshToken)

	claims, err := utils.VerifyAccessToken(cfg.JWT, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), claims.UserID)
	assert.Equal(t, "coach", claims.Role)

	refreshClaims, err := utils.VerifyRefreshToken(cfg.JWT, pair.RefreshToken)
	require.NoError(t, err)
	assert.Equal(t, user.ID.String(), refreshClaims.UserID)
}

func TestRefreshCarriesCurrentRole(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(f, "coach1", entity.RoleCoach, "secret123")
	cfg := testConfig()
	svc := NewAuthService(f.repo, cfg, testLogger())

	refreshToken, err := utils.SignRefreshToken(cfg.JWT, user.ID)
	require.NoError(t, err)

	// Role changed after the refresh token was issued; the next access token
	// must carry the new role.
	f.user.users[user.ID].Role = entity.RoleAdmin

	pair, err := svc.Refresh(context.Background(), refreshToken)
	require.NoError(t, err)

	claims, err := utils.VerifyAccessToken(cfg.JWT, pair.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, "admin", claims.Role)
}

func TestRefreshRejectsGarbageAndDeletedAndDeactivated(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(f, "coach1", entity.RoleCoach, "secret123")
	cfg := testConfig()
	svc := NewAuthService(f.repo, cfg, testLogger())

	_, err := svc.Refresh(context.Background(), "not-a-token")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid or expired")

	refreshToken, err := utils.SignRefreshToken(cfg.JWT, user.ID)
	require.NoError(t, err)

	f.user.users[user.ID].IsActive = false
	_, err = svc.Refresh(context.Background(), refreshToken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "deactivated")

	now := time.Now()
	f.user.users[user.ID].DeletedAt = &now
	_, err = svc.Refresh(context.Background(), refreshToken)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid or expired")
}

func TestLogoutValidatesToken(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(f, "coach1", entity.RoleCoach, "secret123")
	cfg := testConfig()
	svc := NewAuthService(f.repo, cfg, testLogger())

	accessToken, err := utils.SignAccessToken(cfg.JWT, user.ID, user.Username, string(user.Role))
	require.NoError(t, err)

	assert.NoError(t, svc.Logout(context.Background(), accessToken))
	assert.Error(t, svc.Logout(context.Background(), "garbage"))
}
