package services

import (
	"math"

	"gorm.io/gorm"

	apperrors "finhealth/internal/errors"
	"finhealth/internal/models"
	"finhealth/internal/pagination"
	"finhealth/internal/uuid"
)

// bumpDataVersion increments the owner's data version inside tx. It doubles
// as the existence check for the owning user.
func bumpDataVersion(tx *gorm.DB, userID string) error {
	res := tx.Model(&models.User{}).
		Where("id = ?", userID).
		UpdateColumn("data_version", gorm.Expr("data_version + ?", 1))
	if res.Error != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
	}
	if res.RowsAffected == 0 {
		return apperrors.ErrUserNotFound
	}
	return nil
}

// recordStore holds the write path shared by the expense, asset, liability
// and goal services: every mutation bumps the owner's data version in the
// same transaction and evicts the owner's cached snapshot.
type recordStore struct {
	db    *gorm.DB
	cache *SnapshotCache
}

func (s recordStore) create(userID string, record interface{}) error {
	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := bumpDataVersion(tx, userID); err != nil {
			return err
		}
		if err := tx.Create(record).Error; err != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
		return nil
	})
	if err != nil {
		return err
	}
	s.cache.Invalidate(userID)
	return nil
}

// remove soft-deletes the record with id owned by userID. Foreign and
// unknown ids both yield notFound.
func (s recordStore) remove(userID, id string, model interface{}, notFound *apperrors.AppError) error {
	if !uuid.IsValid(id) {
		return notFound
	}
	err := s.db.Transaction(func(tx *gorm.DB) error {
		res := tx.Where("id = ? AND user_id = ?", id, userID).Delete(model)
		if res.Error != nil {
			return apperrors.Wrap(apperrors.ErrInternalServer, res.Error)
		}
		if res.RowsAffected == 0 {
			return notFound
		}
		return bumpDataVersion(tx, userID)
	})
	if err != nil {
		return err
	}
	s.cache.Invalidate(userID)
	return nil
}

// listOwned returns one page of T owned by userID in the given order.
func listOwned[T any](db *gorm.DB, userID, order string, page pagination.PageRequest) (*pagination.PageResponse[T], error) {
	page = page.Normalize()

	base := db.Model(new(T)).Where("user_id = ?", userID).Session(&gorm.Session{})

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var items []T
	if err := base.Order(order).Scopes(pagination.Paginate(page)).Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(items, page, totalItems)
	return &result, nil
}

// allOwned loads every T owned by userID.
func allOwned[T any](db *gorm.DB, userID, order string, scopes ...func(*gorm.DB) *gorm.DB) ([]T, error) {
	var items []T
	if err := db.Where("user_id = ?", userID).Scopes(scopes...).Order(order).Find(&items).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return items, nil
}

func nonNegative(field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) || v < 0 {
		return apperrors.WithMessage(apperrors.ErrInvalidInput, field+" must be a non-negative number")
	}
	return nil
}
