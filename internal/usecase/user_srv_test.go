package usecase

import (
	"context"
	"testing"

	"club-roster/internal/data/entity"
	"club-roster/internal/dto/request"
	"club-roster/pkg/utils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpdateUserChecksUniquenessOnlyOnChange(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(f, "coach1", entity.RoleCoach, "secret123")
	seedUser(f, "coach2", entity.RoleCoach, "secret123")
	svc := NewUserService(f.repo, testLogger())

	// Re-submitting the current username is not a collision
	same := "coach1"
	_, err := svc.Update(context.Background(), user.ID, &request.UserUpdateRequest{Username: &same})
	assert.NoError(t, err)

	// Taking another user's username is
	taken := "coach2"
	_, err = svc.Update(context.Background(), user.ID, &request.UserUpdateRequest{Username: &taken})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "already taken")
}

func TestUpdateUserRehashesPassword(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(f, "coach1", entity.RoleCoach, "secret123")
	svc := NewUserService(f.repo, testLogger())

	newPass := "newsecret"
	_, err := svc.Update(context.Background(), user.ID, &request.UserUpdateRequest{Password: &newPass})
	require.NoError(t, err)

	stored := f.user.users[user.ID]
	assert.False(t, utils.CheckPasswordHash("secret123", stored.PasswordHash))
	assert.True(t, utils.CheckPasswordHash("newsecret", stored.PasswordHash))
}

func TestUpdateUserRejectsUnknownClub(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(f, "player1", entity.RolePlayer, "secret123")
	svc := NewUserService(f.repo, testLogger())

	ghost := uuid.New().String()
	_, err := svc.Update(context.Background(), user.ID, &request.UserUpdateRequest{Club: &ghost})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "club not found")
}

func TestDeleteUserIsSoftAndHidesAccount(t *testing.T) {
	f := newFakeRepos()
	user := seedUser(f, "coach1", entity.RoleCoach, "secret123")
	svc := NewUserService(f.repo, testLogger())

	require.NoError(t, svc.Delete(context.Background(), user.ID))

	// Record kept, but invisible to lookups
	assert.NotNil(t, f.user.users[user.ID].DeletedAt)
	_, err := svc.GetByID(context.Background(), user.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")

	err = svc.Delete(context.Background(), user.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

func TestGetAllUsersPaginates(t *testing.T) {
	f := newFakeRepos()
	seedUser(f, "usera", entity.RoleCoach, "secret123")
	seedUser(f, "userb", entity.RoleCoach, "secret123")
	seedUser(f, "userc", entity.RoleCoach, "secret123")
	svc := NewUserService(f.repo, testLogger())

	page, err := svc.GetAll(context.Background(), 1, 2)
	require.NoError(t, err)

	assert.Len(t, page.Data, 2)
	assert.Equal(t, int64(3), page.Pagination.Total)
	assert.Equal(t, 2, page.Pagination.TotalPages)
}
