package engine

import (
	"testing"

	"finhealth/internal/models"
)

func TestDefaultPolicy_IsValid(t *testing.T) {
	if err := DefaultPolicy().Validate(); err != nil {
		t.Fatalf("default policy invalid: %v", err)
	}
}

func TestPolicy_Validate(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Policy)
	}{
		{"fraction_above_one", func(p *Policy) { p.InvestmentFraction = 1.2 }},
		{"negative_cap", func(p *Policy) { p.InvestmentSalaryCap = -0.1 }},
		{"tolerance_below_one", func(p *Policy) { p.AtRiskTolerance = 0.5 }},
		{"zero_emergency_target", func(p *Policy) { p.EmergencyTargetMonths = 0 }},
		{"threshold_out_of_range", func(p *Policy) { p.LiquidityThreshold = 9 }},
		{"zero_payoff_cap", func(p *Policy) { p.MaxPayoffMonths = 0 }},
		{"zero_projection", func(p *Policy) { p.ProjectionMonths = 0 }},
		{"small_sentinel", func(p *Policy) { p.RatioSentinel = 1 }},
		{"huge_penalty", func(p *Policy) { p.NegativeNetWorthPenalty = 101 }},
		{"weights_do_not_sum", func(p *Policy) { p.Weights.Goals = 0.3 }},
		{"negative_weight", func(p *Policy) { p.Weights = Weights{Burn: 1.2, Debt: -0.2} }},
		{"growth_below_total_loss", func(p *Policy) {
			p.GrowthRates = map[models.AssetType]float64{models.AssetTypeCrypto: -150}
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPolicy()
			tt.mutate(&p)
			if err := p.Validate(); err == nil {
				t.Fatal("expected error")
			}
		})
	}
}

func TestPolicy_LiquidityThresholdChangesLiquidAssets(t *testing.T) {
	p := DefaultPolicy()
	p.LiquidityThreshold = 2
	in := Input{
		Profile: Profile{Rent: 1000},
		Assets:  []models.Asset{asset("gold", models.AssetTypeGold, 3000, 2)},
	}

	loose, err := New(p).Compute(in, testNow)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	strict, err := New(DefaultPolicy()).Compute(in, testNow)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	if loose.LiquidAssets != 3000 || strict.LiquidAssets != 0 {
		t.Errorf("liquid assets loose=%v strict=%v, want 3000 and 0", loose.LiquidAssets, strict.LiquidAssets)
	}
}
