package repositories

import (
	"errors"

	"gin-giftregistry/models"

	"gorm.io/gorm"
)

type IGiftRepository interface {
	FindAll(includeParentsOnly bool) ([]models.Gift, error)
	FindById(giftID uint) (*models.Gift, error)
	Create(newGift *models.Gift) error
}

type GiftRepository struct {
	db *gorm.DB
}

func NewGiftRepository(db *gorm.DB) IGiftRepository {
	return &GiftRepository{db: db}
}

// FindAll returns gifts newest first with their enterer, claims and claimants
// loaded. Parents-only gifts are skipped unless includeParentsOnly is set.
func (r *GiftRepository) FindAll(includeParentsOnly bool) ([]models.Gift, error) {
	var gifts []models.Gift
	query := r.db.
		Preload("EnteredBy").
		Preload("Claims", func(db *gorm.DB) *gorm.DB {
			return db.Order("date_claimed ASC, id ASC")
		}).
		Preload("Claims.ClaimedBy").
		Order("date_entered DESC, id DESC")
	if !includeParentsOnly {
		query = query.Where("parents_only = ?", false)
	}
	if err := query.Find(&gifts).Error; err != nil {
		return nil, err
	}
	return gifts, nil
}

func (r *GiftRepository) FindById(giftID uint) (*models.Gift, error) {
	var gift models.Gift
	result := r.db.First(&gift, "id = ?", giftID)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, ErrGiftNotFound
		}
		return nil, result.Error
	}
	return &gift, nil
}

func (r *GiftRepository) Create(newGift *models.Gift) error {
	return r.db.Omit("EnteredBy", "Claims").Create(newGift).Error
}
