package engine

import (
	"github.com/shopspring/decimal"

	"finhealth/internal/models"
)

// ProjectionPoint is the projected net worth at the end of a month.
type ProjectionPoint struct {
	Month    int     `json:"month"`
	NetWorth float64 `json:"net_worth"`
}

// project rolls the balance sheet forward. Assets compound at their type's
// monthly rate, cash receives the surplus minus that month's debt payments,
// and liabilities follow the debt plan's schedule.
func (e *Engine) project(b Balance, cf CashFlow, plan DebtPlan) []ProjectionPoint {
	values := make(map[models.AssetType]decimal.Decimal, len(b.ByType))
	rates := make(map[models.AssetType]decimal.Decimal, len(b.ByType))
	for t, v := range b.ByType {
		values[t] = v
		rates[t] = monthlyRate(e.policy.GrowthRates[t])
	}
	cash := b.CurrentSavings

	points := make([]ProjectionPoint, 0, e.policy.ProjectionMonths)
	for month := 1; month <= e.policy.ProjectionMonths; month++ {
		// Iterate in a fixed order so rounding is reproducible.
		assets := decimal.Zero
		for _, t := range models.AssetTypes {
			v, ok := values[t]
			if !ok {
				continue
			}
			v = v.Add(v.Mul(rates[t]).Round(2))
			values[t] = v
			assets = assets.Add(v)
		}

		debtBalance, paid := plan.balanceAfter(month)
		cash = cash.Add(cf.Surplus).Sub(paid)

		points = append(points, ProjectionPoint{
			Month:    month,
			NetWorth: f64(assets.Add(cash).Sub(debtBalance).Round(2)),
		})
	}
	return points
}
