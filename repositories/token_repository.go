package repositories

import (
	"errors"
	"time"

	"gin-giftregistry/models"

	"gorm.io/gorm"
)

type ITokenRepository interface {
	AddBlacklistedToken(tokenID string, expiresAt time.Time) error
	IsTokenBlacklisted(tokenID string) (bool, error)
	CleanExpiredTokens(now time.Time) (int64, error)
}

type TokenRepository struct {
	db *gorm.DB
}

func NewTokenRepository(db *gorm.DB) ITokenRepository {
	return &TokenRepository{db: db}
}

func (r *TokenRepository) AddBlacklistedToken(tokenID string, expiresAt time.Time) error {
	blacklistedToken := models.BlacklistedToken{
		TokenID:   tokenID,
		ExpiresAt: expiresAt.UTC(),
	}
	result := r.db.Create(&blacklistedToken)
	if result.Error != nil {
		// ログアウト済みのセッションを再度ログアウトしても成功扱い
		if isDuplicate(result.Error) {
			return nil
		}
		return result.Error
	}
	return nil
}

func (r *TokenRepository) IsTokenBlacklisted(tokenID string) (bool, error) {
	var blacklistedToken models.BlacklistedToken
	result := r.db.Where("token_id = ?", tokenID).First(&blacklistedToken)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return false, nil
		}
		return false, result.Error
	}
	return true, nil
}

func (r *TokenRepository) CleanExpiredTokens(now time.Time) (int64, error) {
	result := r.db.Where("expires_at < ?", now.UTC()).Delete(&models.BlacklistedToken{})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
