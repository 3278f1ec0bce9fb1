package models

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGift_LatestClaim(t *testing.T) {
	base := time.Date(2026, 12, 24, 9, 0, 0, 0, time.UTC)

	assert.Nil(t, (&Gift{}).LatestClaim())

	gift := &Gift{Claims: []Claim{
		{ID: 1, ClaimedByID: 10, DateClaimed: base.Add(time.Hour)},
		{ID: 2, ClaimedByID: 11, DateClaimed: base},
		{ID: 3, ClaimedByID: 12, DateClaimed: base.Add(time.Hour)},
	}}

	latest := gift.LatestClaim()
	require.NotNil(t, latest)
	assert.Equal(t, uint(3), latest.ID, "equal timestamps resolve to the newer row")
}

func TestUser_IsParent(t *testing.T) {
	assert.True(t, (&User{Role: "parent"}).IsParent())
	assert.False(t, (&User{Role: "member"}).IsParent())
	assert.False(t, (*User)(nil).IsParent())
}
