package models

import "time"

// BlacklistedToken marks a logged-out session. TokenID is the jti of the
// signed session cookie.
type BlacklistedToken struct {
	ID        uint      `gorm:"primaryKey"`
	TokenID   string    `gorm:"size:64;not null;uniqueIndex"`
	ExpiresAt time.Time `gorm:"not null;index"`
	CreatedAt time.Time
}
