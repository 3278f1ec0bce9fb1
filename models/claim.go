package models

import "time"

type Claim struct {
	ID          uint      `gorm:"primaryKey"`
	GiftID      uint      `gorm:"not null;index"`
	ClaimedByID uint      `gorm:"not null;index"`
	ClaimedBy   *User     `gorm:"foreignKey:ClaimedByID"`
	DateClaimed time.Time `gorm:"not null"`
}
