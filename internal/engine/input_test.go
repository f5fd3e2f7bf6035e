package engine

import (
	"errors"
	"math"
	"testing"
	"time"

	apperrors "finhealth/internal/errors"
	"finhealth/internal/models"
)

func TestValidate_FillsDefaults(t *testing.T) {
	ex := expense("misc", 30)
	ex.Category = ""
	a := asset("plot", models.AssetTypeRealEstate, 900000, 0)
	g := goal("edu", 40000, 36)
	g.Priority = ""

	in := Input{
		Expenses: []models.Expense{ex},
		Assets:   []models.Asset{a},
		Goals:    []models.Goal{g},
	}
	out, err := in.Validate()
	if err != nil {
		t.Fatalf("Validate: %v", err)
	}

	if out.Expenses[0].Category != models.ExpenseCategoryOther {
		t.Errorf("category = %q, want Other", out.Expenses[0].Category)
	}
	if out.Assets[0].LiquidityScore != models.MinLiquidityScore {
		t.Errorf("liquidity = %d, want %d", out.Assets[0].LiquidityScore, models.MinLiquidityScore)
	}
	if out.Goals[0].Priority != models.GoalPriorityMedium {
		t.Errorf("priority = %q, want Medium", out.Goals[0].Priority)
	}

	// The caller's records are untouched.
	if in.Expenses[0].Category != "" || in.Assets[0].LiquidityScore != 0 || in.Goals[0].Priority != "" {
		t.Error("Validate modified its input")
	}
}

func TestValidate_Rejects(t *testing.T) {
	badExpense := expense("x", 10)
	badExpense.Category = "Yachts"
	zeroExpense := expense("x", 0)
	noDate := goal("g", 100, 3)
	noDate.TargetDate = time.Time{}
	badPriority := goal("g", 100, 3)
	badPriority.Priority = "Urgent"
	overSaved := goal("g", 100, 3)
	overSaved.SavedAmount = -1
	badLiability := liability("l", 100, 5, 10)
	badLiability.Type = "Mortgage"

	tests := []struct {
		name string
		in   Input
	}{
		{"negative_salary", Input{Profile: Profile{Salary: -1}}},
		{"nan_rent", Input{Profile: Profile{Rent: math.NaN()}}},
		{"infinite_savings", Input{Profile: Profile{CurrentSavings: math.Inf(1)}}},
		{"negative_age", Input{Profile: Profile{Age: -3}}},
		{"expense_without_id", Input{Expenses: []models.Expense{expense("", 10)}}},
		{"zero_expense", Input{Expenses: []models.Expense{zeroExpense}}},
		{"negative_expense", Input{Expenses: []models.Expense{expense("x", -5)}}},
		{"unknown_category", Input{Expenses: []models.Expense{badExpense}}},
		{"unknown_asset_type", Input{Assets: []models.Asset{asset("a", "Art", 10, 2)}}},
		{"negative_asset", Input{Assets: []models.Asset{asset("a", models.AssetTypeGold, -10, 2)}}},
		{"liquidity_too_high", Input{Assets: []models.Asset{asset("a", models.AssetTypeGold, 10, 6)}}},
		{"liquidity_negative", Input{Assets: []models.Asset{asset("a", models.AssetTypeGold, 10, -1)}}},
		{"negative_rate", Input{Liabilities: []models.Liability{liability("l", 100, -1, 10)}}},
		{"negative_payment", Input{Liabilities: []models.Liability{liability("l", 100, 5, -10)}}},
		{"unknown_liability_type", Input{Liabilities: []models.Liability{badLiability}}},
		{"zero_target", Input{Goals: []models.Goal{goal("g", 0, 3)}}},
		{"missing_target_date", Input{Goals: []models.Goal{noDate}}},
		{"unknown_priority", Input{Goals: []models.Goal{badPriority}}},
		{"negative_saved", Input{Goals: []models.Goal{overSaved}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := tt.in.Validate()
			if !errors.Is(err, apperrors.ErrInvalidInput) {
				t.Fatalf("expected INVALID_INPUT, got %v", err)
			}
		})
	}
}

func TestValidate_AcceptsZeroBalances(t *testing.T) {
	in := Input{
		Assets:      []models.Asset{asset("empty", models.AssetTypeBank, 0, 5)},
		Liabilities: []models.Liability{liability("closed", 0, 0, 0)},
	}
	if _, err := in.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}
