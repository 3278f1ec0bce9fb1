// Package testutil provides database fixtures for tests.
package testutil

import (
	"path/filepath"
	"testing"
	"time"

	"gin-giftregistry/infra"
	"gin-giftregistry/models"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// NewTestDB opens a migrated SQLite database in a per-test temp directory.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := infra.SetupDB("sqlite:///" + filepath.Join(t.TempDir(), "registry.db"))
	require.NoError(t, err)
	require.NoError(t, infra.Migrate(db))

	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return db
}

// CreateUser inserts a user whose password is hashed with the minimum cost.
func CreateUser(t *testing.T, db *gorm.DB, name, email, password, role string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.MinCost)
	require.NoError(t, err)

	user := &models.User{Name: name, Email: email, PasswordHash: string(hash), Role: role}
	require.NoError(t, db.Create(user).Error)
	return user
}

func CreateGift(t *testing.T, db *gorm.DB, name string, parentsOnly bool, enteredBy *models.User, at time.Time) *models.Gift {
	t.Helper()

	gift := &models.Gift{Name: name, ParentsOnly: parentsOnly, EnteredByID: enteredBy.ID, DateEntered: at}
	require.NoError(t, db.Create(gift).Error)
	return gift
}

func CreateClaim(t *testing.T, db *gorm.DB, gift *models.Gift, claimedBy *models.User, at time.Time) *models.Claim {
	t.Helper()

	claim := &models.Claim{GiftID: gift.ID, ClaimedByID: claimedBy.ID, DateClaimed: at}
	require.NoError(t, db.Create(claim).Error)
	return claim
}

func CountClaims(t *testing.T, db *gorm.DB, giftID uint) int64 {
	t.Helper()

	var count int64
	require.NoError(t, db.Model(&models.Claim{}).Where("gift_id = ?", giftID).Count(&count).Error)
	return count
}
