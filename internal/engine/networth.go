package engine

import (
	"github.com/shopspring/decimal"

	"finhealth/internal/models"
)

// Balance is the balance sheet derived from assets, liabilities and cash savings.
type Balance struct {
	TotalAssets      decimal.Decimal
	TotalLiabilities decimal.Decimal
	CurrentSavings   decimal.Decimal
	NetWorth         decimal.Decimal
	LiquidAssets     decimal.Decimal
	// ByType sums asset values per type; zero-valued types are absent.
	ByType          map[models.AssetType]decimal.Decimal
	DebtRatio       decimal.Decimal
	EmergencyMonths decimal.Decimal
}

// Allocation returns each asset type's share of total assets. The map is
// empty when there are no asset values.
func (b Balance) Allocation() map[models.AssetType]float64 {
	out := make(map[models.AssetType]float64, len(b.ByType))
	if !b.TotalAssets.IsPositive() {
		return out
	}
	for t, v := range b.ByType {
		out[t] = f64(v.Div(b.TotalAssets))
	}
	return out
}

func (e *Engine) balance(p Profile, assets []models.Asset, liabilities []models.Liability, burn decimal.Decimal) Balance {
	savings := money(p.CurrentSavings)

	b := Balance{
		TotalAssets:      decimal.Zero,
		TotalLiabilities: decimal.Zero,
		CurrentSavings:   savings,
		LiquidAssets:     savings,
		ByType:           make(map[models.AssetType]decimal.Decimal),
	}

	for _, a := range assets {
		v := money(a.Value)
		b.TotalAssets = b.TotalAssets.Add(v)
		if v.IsPositive() {
			b.ByType[a.Type] = b.ByType[a.Type].Add(v)
		}
		if a.LiquidityScore >= e.policy.LiquidityThreshold {
			b.LiquidAssets = b.LiquidAssets.Add(v)
		}
	}
	for _, l := range liabilities {
		b.TotalLiabilities = b.TotalLiabilities.Add(money(l.OutstandingAmount))
	}

	b.NetWorth = b.TotalAssets.Sub(b.TotalLiabilities).Add(savings)
	b.DebtRatio = ratio(b.TotalLiabilities, b.TotalAssets, e.policy.RatioSentinel)
	b.EmergencyMonths = ratio(b.LiquidAssets, burn, e.policy.RatioSentinel)
	return b
}
