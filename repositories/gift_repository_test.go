package repositories_test

import (
	"errors"
	"testing"
	"time"

	"gin-giftregistry/constants"
	"gin-giftregistry/models"
	"gin-giftregistry/repositories"
	"gin-giftregistry/testutil"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

func TestGiftRepository_FindAll_OrderAndFilter(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewGiftRepository(db)
	parent := testutil.CreateUser(t, db, "Mum", "mum@example.com", "pw", constants.RoleParent)

	base := time.Date(2026, 12, 1, 10, 0, 0, 0, time.UTC)
	oldest := testutil.CreateGift(t, db, "Kite", false, parent, base)
	hidden := testutil.CreateGift(t, db, "Bike", true, parent, base.Add(time.Hour))
	newest := testutil.CreateGift(t, db, "Book", false, parent, base.Add(2*time.Hour))

	all, err := repo.FindAll(true)
	require.NoError(t, err)
	require.Len(t, all, 3)
	assert.Equal(t, []uint{newest.ID, hidden.ID, oldest.ID}, []uint{all[0].ID, all[1].ID, all[2].ID})
	require.NotNil(t, all[0].EnteredBy)
	assert.Equal(t, "Mum", all[0].EnteredBy.Name)

	visible, err := repo.FindAll(false)
	require.NoError(t, err)
	require.Len(t, visible, 2)
	for _, g := range visible {
		assert.False(t, g.ParentsOnly, g.Name)
	}
}

func TestGiftRepository_FindAll_LoadsClaimants(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewGiftRepository(db)
	parent := testutil.CreateUser(t, db, "Mum", "mum@example.com", "pw", constants.RoleParent)
	bob := testutil.CreateUser(t, db, "Bob", "bob@example.com", "pw", constants.RoleMember)

	now := time.Now().UTC()
	gift := testutil.CreateGift(t, db, "Lego", false, parent, now)
	testutil.CreateClaim(t, db, gift, parent, now.Add(time.Minute))
	testutil.CreateClaim(t, db, gift, bob, now.Add(2*time.Minute))

	gifts, err := repo.FindAll(true)
	require.NoError(t, err)
	require.Len(t, gifts, 1)
	require.Len(t, gifts[0].Claims, 2)

	latest := gifts[0].LatestClaim()
	require.NotNil(t, latest)
	require.NotNil(t, latest.ClaimedBy)
	assert.Equal(t, "Bob", latest.ClaimedBy.Name)
}

func TestGiftRepository_FindById(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewGiftRepository(db)
	parent := testutil.CreateUser(t, db, "Mum", "mum@example.com", "pw", constants.RoleParent)
	gift := testutil.CreateGift(t, db, "Kite", true, parent, time.Now())

	found, err := repo.FindById(gift.ID)
	require.NoError(t, err)
	assert.Equal(t, "Kite", found.Name)
	assert.True(t, found.ParentsOnly)

	_, err = repo.FindById(gift.ID + 100)
	assert.ErrorIs(t, err, repositories.ErrGiftNotFound)
}

func TestGiftRepository_Create_RequiresExistingUser(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := repositories.NewGiftRepository(db)

	err := repo.Create(&models.Gift{Name: "Orphan", EnteredByID: 999, DateEntered: time.Now()})

	assert.Error(t, err)
}

func TestGiftRepository_FindAll_DatabaseError(t *testing.T) {
	sqlDB, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	defer sqlDB.Close()

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), &gorm.Config{})
	require.NoError(t, err)

	mock.ExpectQuery(`SELECT .* FROM "gifts"`).WillReturnError(errors.New("db down"))

	gifts, err := repositories.NewGiftRepository(db).FindAll(false)

	assert.Nil(t, gifts)
	assert.EqualError(t, err, "db down")
	assert.NoError(t, mock.ExpectationsWereMet())
}
