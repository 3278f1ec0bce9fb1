package models

import "time"

// Notification is part of the schema but nothing writes or reads it yet.
type Notification struct {
	ID       uint      `gorm:"primaryKey"`
	UserID   uint      `gorm:"not null"`
	User     *User     `gorm:"foreignKey:UserID"`
	GiftID   *uint     `gorm:"index"`
	Gift     *Gift     `gorm:"foreignKey:GiftID"`
	Type     string    `gorm:"size:50;not null"`
	DateSent time.Time `gorm:"not null"`
}
