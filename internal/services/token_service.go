package services

import (
	"context"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	apperrors "finhealth/internal/errors"
	"finhealth/internal/models"
)

// tokenService stores revoked JWT ids until they would have expired.
type tokenService struct {
	db  *gorm.DB
	now func() time.Time
}

// NewTokenService creates a new TokenServicer.
func NewTokenService(db *gorm.DB) TokenServicer {
	return &tokenService{db: db, now: time.Now}
}

// Revoke blacklists jti. Revoking the same token twice is not an error.
func (s *tokenService) Revoke(ctx context.Context, userID, jti string, expiresAt time.Time) error {
	if jti == "" {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, "token has no id")
	}
	entry := &models.RevokedToken{JTI: jti, UserID: userID, ExpiresAt: expiresAt.UTC()}
	err := s.db.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(entry).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// IsRevoked reports whether jti has been logged out.
func (s *tokenService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	var count int64
	err := s.db.WithContext(ctx).
		Model(&models.RevokedToken{}).
		Where("jti = ?", jti).
		Count(&count).Error
	if err != nil {
		return false, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return count > 0, nil
}

// PurgeExpired deletes revocations whose token has expired on its own.
func (s *tokenService) PurgeExpired(ctx context.Context) (int64, error) {
	res := s.db.WithContext(ctx).
		Where("expires_at < ?", s.now().UTC()).
		Delete(&models.RevokedToken{})
	if res.Error != nil {
		return 0, apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	return res.RowsAffected, nil
}
