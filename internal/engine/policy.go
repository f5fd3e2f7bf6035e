package engine

import (
	"fmt"
	"math"

	"finhealth/internal/models"
)

// Weights assigns each normalized score component its share of the score.
type Weights struct {
	Burn      float64 `json:"burn"`
	Debt      float64 `json:"debt"`
	Emergency float64 `json:"emergency"`
	Goals     float64 `json:"goals"`
}

func (w Weights) sum() float64 {
	return w.Burn + w.Debt + w.Emergency + w.Goals
}

// Policy holds every tunable constant of the engine.
type Policy struct {
	// InvestmentFraction is the share of a positive surplus recommended for investment.
	InvestmentFraction float64
	// InvestmentSalaryCap bounds the recommendation to this share of salary. Zero disables the cap.
	InvestmentSalaryCap float64
	// AtRiskTolerance multiplies the surplus to form the upper bound of "At Risk".
	AtRiskTolerance float64
	// EmergencyTargetMonths is how many months of burn count as a full emergency fund.
	EmergencyTargetMonths float64
	// LiquidityThreshold is the lowest liquidity score counted as liquid.
	LiquidityThreshold int
	// GrowthRates are annual nominal growth percentages per asset type.
	GrowthRates map[models.AssetType]float64
	Weights     Weights
	// NegativeNetWorthPenalty is subtracted from the score when net worth is below zero.
	NegativeNetWorthPenalty int
	MaxPayoffMonths         int
	ProjectionMonths        int
	// RatioSentinel replaces a ratio whose denominator is zero while its numerator is not.
	RatioSentinel float64
}

// DefaultPolicy returns the production constants.
func DefaultPolicy() Policy {
	return Policy{
		InvestmentFraction:    0.5,
		InvestmentSalaryCap:   0.2,
		AtRiskTolerance:       2.0,
		EmergencyTargetMonths: 6,
		LiquidityThreshold:    4,
		GrowthRates: map[models.AssetType]float64{
			models.AssetTypeBank:       3.5,
			models.AssetTypeMutualFund: 10,
			models.AssetTypeStock:      11,
			models.AssetTypeGold:       6,
			models.AssetTypeRealEstate: 7,
			models.AssetTypeCrypto:     12,
		},
		Weights: Weights{
			Burn:      0.30,
			Debt:      0.25,
			Emergency: 0.25,
			Goals:     0.20,
		},
		NegativeNetWorthPenalty: 10,
		MaxPayoffMonths:         600,
		ProjectionMonths:        12,
		RatioSentinel:           999,
	}
}

// Validate reports the first constant that is out of range.
func (p Policy) Validate() error {
	switch {
	case p.InvestmentFraction < 0 || p.InvestmentFraction > 1:
		return fmt.Errorf("investment fraction %v outside [0,1]", p.InvestmentFraction)
	case p.InvestmentSalaryCap < 0 || p.InvestmentSalaryCap > 1:
		return fmt.Errorf("investment salary cap %v outside [0,1]", p.InvestmentSalaryCap)
	case p.AtRiskTolerance < 1:
		return fmt.Errorf("at-risk tolerance %v must be at least 1", p.AtRiskTolerance)
	case p.EmergencyTargetMonths <= 0:
		return fmt.Errorf("emergency target months %v must be positive", p.EmergencyTargetMonths)
	case p.LiquidityThreshold < models.MinLiquidityScore || p.LiquidityThreshold > models.MaxLiquidityScore:
		return fmt.Errorf("liquidity threshold %d outside [%d,%d]", p.LiquidityThreshold, models.MinLiquidityScore, models.MaxLiquidityScore)
	case p.MaxPayoffMonths <= 0:
		return fmt.Errorf("max payoff months %d must be positive", p.MaxPayoffMonths)
	case p.ProjectionMonths <= 0:
		return fmt.Errorf("projection months %d must be positive", p.ProjectionMonths)
	case p.RatioSentinel <= 1:
		return fmt.Errorf("ratio sentinel %v must exceed 1", p.RatioSentinel)
	case p.NegativeNetWorthPenalty < 0 || p.NegativeNetWorthPenalty > 100:
		return fmt.Errorf("negative net worth penalty %d outside [0,100]", p.NegativeNetWorthPenalty)
	}

	w := p.Weights
	if w.Burn < 0 || w.Debt < 0 || w.Emergency < 0 || w.Goals < 0 {
		return fmt.Errorf("score weights must be non-negative: %+v", w)
	}
	if math.Abs(w.sum()-1) > 1e-9 {
		return fmt.Errorf("score weights sum to %v, want 1", w.sum())
	}

	for _, t := range models.AssetTypes {
		if r := p.GrowthRates[t]; r < -100 || math.IsNaN(r) {
			return fmt.Errorf("growth rate for %s is %v", t, r)
		}
	}
	return nil
}
