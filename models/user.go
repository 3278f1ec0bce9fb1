package models

import "gin-giftregistry/constants"

type User struct {
	ID           uint   `gorm:"primaryKey"`
	Name         string `gorm:"size:100;not null"`
	Email        string `gorm:"size:120;not null;uniqueIndex"`
	PasswordHash string `gorm:"size:128;not null"`
	Role         string `gorm:"size:20;not null"`
}

func (u *User) IsParent() bool {
	return u != nil && u.Role == constants.RoleParent
}
