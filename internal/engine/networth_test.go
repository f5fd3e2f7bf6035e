package engine

import (
	"testing"

	"github.com/shopspring/decimal"

	"finhealth/internal/models"
)

func TestBalance_NetWorthIgnoresRecordOrder(t *testing.T) {
	e := New(DefaultPolicy())
	profile := Profile{CurrentSavings: 2500.5}
	assets := []models.Asset{
		asset("a", models.AssetTypeStock, 1234.56, 3),
		asset("b", models.AssetTypeGold, 999.99, 2),
		asset("c", models.AssetTypeBank, 0.01, 5),
		asset("d", models.AssetTypeRealEstate, 250000, 1),
	}
	liabilities := []models.Liability{
		liability("x", 12000.33, 10, 100),
		liability("y", 0.67, 5, 1),
		liability("z", 75000, 8.5, 900),
	}

	want := e.balance(profile, assets, liabilities, decimal.NewFromInt(1000)).NetWorth

	perms := [][]int{{3, 2, 1, 0}, {1, 3, 0, 2}, {2, 0, 3, 1}}
	for _, perm := range perms {
		a := make([]models.Asset, len(assets))
		for i, j := range perm {
			a[i] = assets[j]
		}
		l := []models.Liability{liabilities[perm[0]%3], liabilities[(perm[0]+1)%3], liabilities[(perm[0]+2)%3]}

		got := e.balance(profile, a, l, decimal.NewFromInt(1000)).NetWorth
		if !got.Equal(want) {
			t.Errorf("perm %v: net worth = %s, want %s", perm, got, want)
		}
	}

	if !want.Equal(decimal.RequireFromString("167734.06")) {
		t.Errorf("net worth = %s, want 167734.06", want)
	}
}

func TestBalance_Allocation(t *testing.T) {
	e := New(DefaultPolicy())

	t.Run("sums_to_one", func(t *testing.T) {
		b := e.balance(Profile{}, []models.Asset{
			asset("a", models.AssetTypeStock, 333.33, 3),
			asset("b", models.AssetTypeStock, 100, 3),
			asset("c", models.AssetTypeCrypto, 777.77, 4),
			asset("d", models.AssetTypeMutualFund, 12.5, 3),
			asset("e", models.AssetTypeGold, 0, 2),
		}, nil, decimal.Zero)

		alloc := b.Allocation()
		sum := 0.0
		for _, v := range alloc {
			sum += v
		}
		if !approx(sum, 1) {
			t.Errorf("allocation sums to %v, want 1", sum)
		}
		if _, ok := alloc[models.AssetTypeGold]; ok {
			t.Error("expected zero-valued Gold to be omitted")
		}
		if got, want := alloc[models.AssetTypeStock], 433.33/1223.6; !approx(got, want) {
			t.Errorf("stock share = %v, want %v", got, want)
		}
	})

	t.Run("empty_without_assets", func(t *testing.T) {
		b := e.balance(Profile{CurrentSavings: 5000}, nil, nil, decimal.Zero)
		if alloc := b.Allocation(); len(alloc) != 0 {
			t.Errorf("allocation = %v, want empty", alloc)
		}
	})

	t.Run("empty_when_all_zero", func(t *testing.T) {
		b := e.balance(Profile{}, []models.Asset{asset("a", models.AssetTypeBank, 0, 5)}, nil, decimal.Zero)
		if alloc := b.Allocation(); len(alloc) != 0 {
			t.Errorf("allocation = %v, want empty", alloc)
		}
	})
}

func TestBalance_DebtRatio(t *testing.T) {
	p := DefaultPolicy()
	e := New(p)

	tests := []struct {
		name        string
		assets      []models.Asset
		liabilities []models.Liability
		want        decimal.Decimal
	}{
		{"no_debt", []models.Asset{asset("a", models.AssetTypeBank, 100, 5)}, nil, decimal.Zero},
		{"quarter", []models.Asset{asset("a", models.AssetTypeBank, 400, 5)}, []models.Liability{liability("l", 100, 0, 0)}, decimal.RequireFromString("0.25")},
		{"nothing_at_all", nil, nil, decimal.Zero},
		{"debt_without_assets", nil, []models.Liability{liability("l", 1, 0, 0)}, decimal.NewFromFloat(p.RatioSentinel)},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := e.balance(Profile{}, tt.assets, tt.liabilities, decimal.Zero)
			if !b.DebtRatio.Equal(tt.want) {
				t.Errorf("debt ratio = %s, want %s", b.DebtRatio, tt.want)
			}
		})
	}
}

func TestBalance_EmergencyMonths(t *testing.T) {
	p := DefaultPolicy()
	e := New(p)

	assets := []models.Asset{
		asset("bank", models.AssetTypeBank, 3000, 5),
		asset("fund", models.AssetTypeMutualFund, 2000, 4),
		asset("house", models.AssetTypeRealEstate, 90000, 1),
		asset("gold", models.AssetTypeGold, 4000, 3),
	}

	b := e.balance(Profile{CurrentSavings: 1000}, assets, nil, decimal.NewFromInt(1500))
	if !b.LiquidAssets.Equal(decimal.NewFromInt(6000)) {
		t.Errorf("liquid assets = %s, want 6000 (savings + score >= 4)", b.LiquidAssets)
	}
	if !b.EmergencyMonths.Equal(decimal.NewFromInt(4)) {
		t.Errorf("emergency months = %s, want 4", b.EmergencyMonths)
	}

	b = e.balance(Profile{CurrentSavings: 1000}, nil, nil, decimal.Zero)
	if !b.EmergencyMonths.Equal(decimal.NewFromFloat(p.RatioSentinel)) {
		t.Errorf("emergency months with zero burn = %s, want sentinel", b.EmergencyMonths)
	}

	b = e.balance(Profile{}, nil, nil, decimal.Zero)
	if !b.EmergencyMonths.IsZero() {
		t.Errorf("emergency months with nothing = %s, want 0", b.EmergencyMonths)
	}
}
