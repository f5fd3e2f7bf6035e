package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "finhealth/internal/errors"
	"finhealth/internal/models"
	"finhealth/internal/pagination"
)

// liabilityService handles liability records.
type liabilityService struct {
	recordStore
}

// NewLiabilityService creates a new LiabilityServicer.
func NewLiabilityService(db *gorm.DB, cache *SnapshotCache) LiabilityServicer {
	return &liabilityService{recordStore{db: db, cache: cache}}
}

// CreateLiability records a debt.
func (s *liabilityService) CreateLiability(userID string, in LiabilityInput) (*models.Liability, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if !in.Type.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown liability type")
	}
	for _, f := range []struct {
		name string
		v    float64
	}{
		{"outstanding_amount", in.OutstandingAmount},
		{"interest_rate", in.InterestRate},
		{"monthly_payment", in.MonthlyPayment},
	} {
		if err := nonNegative(f.name, f.v); err != nil {
			return nil, err
		}
	}

	liability := &models.Liability{
		UserID:            userID,
		Name:              name,
		Type:              in.Type,
		OutstandingAmount: in.OutstandingAmount,
		InterestRate:      in.InterestRate,
		MonthlyPayment:    in.MonthlyPayment,
	}
	if err := s.create(userID, liability); err != nil {
		return nil, err
	}
	return liability, nil
}

// GetUserLiabilities lists liabilities, newest first.
func (s *liabilityService) GetUserLiabilities(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Liability], error) {
	return listOwned[models.Liability](s.db, userID, "created_at DESC, id DESC", page)
}

// DeleteLiability removes a liability owned by the user.
func (s *liabilityService) DeleteLiability(userID, liabilityID string) error {
	return s.remove(userID, liabilityID, &models.Liability{}, apperrors.ErrLiabilityNotFound)
}
