package services

import (
	"strings"

	"gorm.io/gorm"

	apperrors "finhealth/internal/errors"
	"finhealth/internal/models"
	"finhealth/internal/pagination"
)

// assetService handles asset records.
type assetService struct {
	recordStore
}

// NewAssetService creates a new AssetServicer.
func NewAssetService(db *gorm.DB, cache *SnapshotCache) AssetServicer {
	return &assetService{recordStore{db: db, cache: cache}}
}

// CreateAsset records an asset. A missing liquidity score means 1.
func (s *assetService) CreateAsset(userID string, in AssetInput) (*models.Asset, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if !in.Type.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown asset type")
	}
	if err := nonNegative("value", in.Value); err != nil {
		return nil, err
	}
	if in.LiquidityScore == 0 {
		in.LiquidityScore = models.MinLiquidityScore
	}
	if in.LiquidityScore < models.MinLiquidityScore || in.LiquidityScore > models.MaxLiquidityScore {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "liquidity_score must be between 1 and 5")
	}

	asset := &models.Asset{
		UserID:         userID,
		Name:           name,
		Type:           in.Type,
		Value:          in.Value,
		LiquidityScore: in.LiquidityScore,
	}
	if err := s.create(userID, asset); err != nil {
		return nil, err
	}
	return asset, nil
}

// GetUserAssets lists assets, newest first.
func (s *assetService) GetUserAssets(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error) {
	return listOwned[models.Asset](s.db, userID, "created_at DESC, id DESC", page)
}

// DeleteAsset removes an asset owned by the user.
func (s *assetService) DeleteAsset(userID, assetID string) error {
	return s.remove(userID, assetID, &models.Asset{}, apperrors.ErrAssetNotFound)
}
