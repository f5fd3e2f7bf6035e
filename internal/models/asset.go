package models

// AssetType is the closed set of asset classes.
type AssetType string

const (
	AssetTypeMutualFund AssetType = "Mutual Fund"
	AssetTypeStock      AssetType = "Stock"
	AssetTypeGold       AssetType = "Gold"
	AssetTypeRealEstate AssetType = "Real Estate"
	AssetTypeCrypto     AssetType = "Crypto"
	AssetTypeBank       AssetType = "Bank"
)

// AssetTypes lists every asset type in display order.
var AssetTypes = []AssetType{
	AssetTypeMutualFund,
	AssetTypeStock,
	AssetTypeGold,
	AssetTypeRealEstate,
	AssetTypeCrypto,
	AssetTypeBank,
}

// Valid reports whether t is a known asset type.
func (t AssetType) Valid() bool {
	switch t {
	case AssetTypeMutualFund, AssetTypeStock, AssetTypeGold, AssetTypeRealEstate, AssetTypeCrypto, AssetTypeBank:
		return true
	}
	return false
}

const (
	MinLiquidityScore = 1
	MaxLiquidityScore = 5
)

// Asset is something the user owns. LiquidityScore runs from 1 (illiquid)
// to 5 (cash-equivalent).
type Asset struct {
	Base
	UserID         string    `gorm:"type:uuid;not null;index" json:"-"`
	Name           string    `gorm:"not null" json:"name"`
	Type           AssetType `gorm:"not null" json:"type"`
	Value          float64   `gorm:"type:numeric(14,2);not null" json:"value"`
	LiquidityScore int       `gorm:"not null;default:1" json:"liquidity_score"`
}
