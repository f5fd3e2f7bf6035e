package engine

import (
	"testing"

	"finhealth/internal/models"
)

func TestProjection_GrowthAndSurplus(t *testing.T) {
	e := New(DefaultPolicy())
	in := Input{
		Profile: Profile{Salary: 50000, Rent: 10000, CurrentSavings: 1000},
		Assets:  []models.Asset{asset("fd", models.AssetTypeBank, 120000, 5)},
	}

	snap, err := e.Compute(in, testNow)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}
	if len(snap.Projections) != 12 {
		t.Fatalf("expected 12 points, got %d", len(snap.Projections))
	}
	for i, p := range snap.Projections {
		if p.Month != i+1 {
			t.Errorf("point %d has month %d", i, p.Month)
		}
	}

	// 120000 * 3.5% / 12 = 350 growth, plus the 40000 surplus.
	if got := snap.Projections[0].NetWorth; got != 161350 {
		t.Errorf("month 1 = %v, want 161350", got)
	}
	// 120350 * 3.5% / 12 = 351.02
	if got := snap.Projections[1].NetWorth; got != 201701.02 {
		t.Errorf("month 2 = %v, want 201701.02", got)
	}
}

func TestProjection_InterestFreeDebtMovesInLockstep(t *testing.T) {
	e := New(DefaultPolicy())
	in := Input{
		Profile:     Profile{Salary: 1000},
		Liabilities: []models.Liability{liability("emi", 1200, 0, 100)},
	}

	snap, err := e.Compute(in, testNow)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// Without interest or growth every payment moves cash to debt one for one.
	for _, p := range snap.Projections {
		want := snap.NetWorth + float64(p.Month)*snap.Surplus
		if !approx(p.NetWorth, want) {
			t.Errorf("month %d = %v, want %v", p.Month, p.NetWorth, want)
		}
	}
	if snap.Projections[0].NetWorth != -200 || snap.Projections[2].NetWorth != 1800 {
		t.Errorf("unexpected projection %+v", snap.Projections[:3])
	}
}

func TestProjection_InterestDragsNetWorth(t *testing.T) {
	e := New(DefaultPolicy())
	in := Input{
		Profile:     Profile{Salary: 3000},
		Liabilities: []models.Liability{liability("cc", 60000, 36, 500)},
	}

	snap, err := e.Compute(in, testNow)
	if err != nil {
		t.Fatalf("Compute: %v", err)
	}

	// Month 1: 1800 interest accrues, the 3000 surplus is all paid out.
	if got, want := snap.Projections[0].NetWorth, snap.NetWorth+3000-1800; !approx(got, want) {
		t.Errorf("month 1 = %v, want %v", got, want)
	}
}
