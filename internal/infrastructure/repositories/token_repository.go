package repositories

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/Biholo/planete-xplorer/domain"
)

// TokenRepositoryImpl implements domain.TokenRepository using GORM.
type TokenRepositoryImpl struct {
	db *gorm.DB
}

// DBToken is the database model for persisted bearer credentials.
type DBToken struct {
	ID         string    `gorm:"primaryKey;size:36"`
	Value      string    `gorm:"column:token;uniqueIndex;size:1024"`
	Type       string    `gorm:"index;size:32"`
	UserID     string    `gorm:"column:owned_by_id;index;size:36"`
	DeviceName string    `gorm:"size:128"`
	DeviceIP   string    `gorm:"size:64"`
	ExpiresAt  time.Time `gorm:"index"`
	CreatedAt  time.Time
}

// TableName returns the table name for GORM.
func (DBToken) TableName() string {
	return "tokens"
}

// NewTokenRepository creates a new token repository.
func NewTokenRepository(db *gorm.DB) domain.TokenRepository {
	return &TokenRepositoryImpl{db: db}
}

// Create implements domain.TokenRepository.
func (r *TokenRepositoryImpl) Create(ctx context.Context, token *domain.Token) error {
	dbToken := &DBToken{
		ID:         token.ID,
		Value:      token.Value,
		Type:       string(token.Type),
		UserID:     token.UserID,
		DeviceName: token.DeviceName,
		DeviceIP:   token.DeviceIP,
		ExpiresAt:  token.ExpiresAt,
	}
	if dbToken.ID == "" {
		dbToken.ID = uuid.NewString()
	}
	if err := r.db.WithContext(ctx).Create(dbToken).Error; err != nil {
		return err
	}
	token.ID = dbToken.ID
	token.CreatedAt = dbToken.CreatedAt
	return nil
}

// FindByValue implements domain.TokenRepository.
func (r *TokenRepositoryImpl) FindByValue(ctx context.Context, value string) (*domain.Token, error) {
	var dbToken DBToken
	err := r.db.WithContext(ctx).Where("token = ?", value).First(&dbToken).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrTokenNotFound
		}
		return nil, err
	}
	return &domain.Token{
		ID:         dbToken.ID,
		Value:      dbToken.Value,
		Type:       domain.TokenType(dbToken.Type),
		UserID:     dbToken.UserID,
		DeviceName: dbToken.DeviceName,
		DeviceIP:   dbToken.DeviceIP,
		ExpiresAt:  dbToken.ExpiresAt,
		CreatedAt:  dbToken.CreatedAt,
	}, nil
}

// Delete implements domain.TokenRepository.
func (r *TokenRepositoryImpl) Delete(ctx context.Context, id string) error {
	result := r.db.WithContext(ctx).Where("id = ?", id).Delete(&DBToken{})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return domain.ErrTokenNotFound
	}
	return nil
}

// DeleteExpired implements domain.TokenRepository. Access and refresh tokens
// are never revoked, only left to expire; this sweep keeps the table from
// growing without bound.
func (r *TokenRepositoryImpl) DeleteExpired(ctx context.Context) (int64, error) {
	result := r.db.WithContext(ctx).Where("expires_at < ?", time.Now()).Delete(&DBToken{})
	return result.RowsAffected, result.Error
}
