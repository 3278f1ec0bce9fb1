package repositories

import (
	"gin-giftregistry/models"

	"gorm.io/gorm"
)

// IClaimRepository only appends: claims are never updated or removed, and
// nothing stops a gift from being claimed more than once.
type IClaimRepository interface {
	Create(claim *models.Claim) error
}

type ClaimRepository struct {
	db *gorm.DB
}

func NewClaimRepository(db *gorm.DB) IClaimRepository {
	return &ClaimRepository{db: db}
}

func (r *ClaimRepository) Create(claim *models.Claim) error {
	return r.db.Omit("ClaimedBy").Create(claim).Error
}
