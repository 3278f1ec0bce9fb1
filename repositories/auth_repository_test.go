package repositories_test

import (
	"testing"
	"time"

	"gin-giftregistry/constants"
	"gin-giftregistry/models"
	"gin-giftregistry/repositories"
	"gin-giftregistry/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAuthRepository_CreateAndFind(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewAuthRepository(db)

	user := &models.User{Name: "Bob", Email: "bob@example.com", PasswordHash: "x", Role: constants.RoleMember}
	require.NoError(t, repo.CreateUser(user))
	require.NotZero(t, user.ID)

	byEmail, err := repo.FindUser("bob@example.com")
	require.NoError(t, err)
	assert.Equal(t, user.ID, byEmail.ID)

	byID, err := repo.FindUserByID(user.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bob", byID.Name)

	_, err = repo.FindUser("nobody@example.com")
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
	_, err = repo.FindUserByID(user.ID + 1)
	assert.ErrorIs(t, err, repositories.ErrUserNotFound)
}

func TestAuthRepository_CreateUser_DuplicateEmail(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewAuthRepository(db)

	require.NoError(t, repo.CreateUser(&models.User{Name: "A", Email: "same@example.com", PasswordHash: "x", Role: constants.RoleMember}))
	err := repo.CreateUser(&models.User{Name: "B", Email: "same@example.com", PasswordHash: "y", Role: constants.RoleMember})

	assert.ErrorIs(t, err, repositories.ErrDuplicateEmail)
}

func TestTokenRepository_Blacklist(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewTokenRepository(db)
	now := time.Now()

	require.NoError(t, repo.AddBlacklistedToken("expired", now.Add(-time.Minute)))
	require.NoError(t, repo.AddBlacklistedToken("live", now.Add(time.Hour)))
	require.NoError(t, repo.AddBlacklistedToken("live", now.Add(time.Hour)))

	listed, err := repo.IsTokenBlacklisted("live")
	require.NoError(t, err)
	assert.True(t, listed)

	listed, err = repo.IsTokenBlacklisted("never-issued")
	require.NoError(t, err)
	assert.False(t, listed)

	removed, err := repo.CleanExpiredTokens(now)
	require.NoError(t, err)
	assert.Equal(t, int64(1), removed)

	listed, err = repo.IsTokenBlacklisted("expired")
	require.NoError(t, err)
	assert.False(t, listed)
}
