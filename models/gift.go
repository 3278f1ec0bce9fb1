package models

import "time"

type Gift struct {
	ID               uint      `gorm:"primaryKey"`
	Name             string    `gorm:"size:200;not null"`
	DescriptionOrURL *string   `gorm:"column:description_or_url;type:text"`
	PreviewImageURL  *string   `gorm:"column:preview_image_url;size:500"`
	DateEntered      time.Time `gorm:"not null;index"`
	ParentsOnly      bool      `gorm:"not null"`
	EnteredByID      uint      `gorm:"not null"`
	EnteredBy        *User     `gorm:"foreignKey:EnteredByID"`
	Claims           []Claim   `gorm:"foreignKey:GiftID"`
}

// LatestClaim returns the claim with the newest DateClaimed, or nil when the
// gift has not been claimed. Equal timestamps fall back to the higher ID.
func (g *Gift) LatestClaim() *Claim {
	var latest *Claim
	for i := range g.Claims {
		c := &g.Claims[i]
		if latest == nil || c.DateClaimed.After(latest.DateClaimed) ||
			(c.DateClaimed.Equal(latest.DateClaimed) && c.ID > latest.ID) {
			latest = c
		}
	}
	return latest
}
