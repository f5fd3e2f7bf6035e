package engine

import (
	"fmt"
	"math"

	apperrors "finhealth/internal/errors"
	"finhealth/internal/models"
)

// Profile is the part of the user record the engine reads.
type Profile struct {
	Salary         float64 `json:"salary" toml:"salary"`
	Rent           float64 `json:"rent" toml:"rent"`
	CurrentSavings float64 `json:"current_savings" toml:"current_savings"`
	Age            int     `json:"age" toml:"age"`
}

// Input is one user's fully loaded record set. Expenses are the ones that
// fall in the current period; choosing that period is the caller's job.
type Input struct {
	Profile     Profile
	Expenses    []models.Expense
	Assets      []models.Asset
	Liabilities []models.Liability
	Goals       []models.Goal
}

func invalid(format string, args ...any) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf(format, args...))
}

// checkAmount rejects NaN, infinities and negative values.
func checkAmount(record, field string, v float64) error {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return invalid("%s: %s is not a number", record, field)
	}
	if v < 0 {
		return invalid("%s: %s must not be negative", record, field)
	}
	return nil
}

// Validate returns a normalized copy of in. Typed defaults fill fields the
// storage layer leaves at their zero value (liquidity score 1, expense
// category Other, goal priority Medium). Records that are structurally
// unusable fail with INVALID_INPUT. The caller's slices are not modified.
func (in Input) Validate() (Input, error) {
	out := Input{Profile: in.Profile}

	p := in.Profile
	for _, f := range []struct {
		name string
		v    float64
	}{{"salary", p.Salary}, {"rent", p.Rent}, {"current_savings", p.CurrentSavings}} {
		if err := checkAmount("profile", f.name, f.v); err != nil {
			return Input{}, err
		}
	}
	if p.Age < 0 {
		return Input{}, invalid("profile: age must not be negative")
	}

	out.Expenses = make([]models.Expense, len(in.Expenses))
	for i, e := range in.Expenses {
		if e.ID == "" {
			return Input{}, invalid("expense #%d: missing id", i)
		}
		rec := fmt.Sprintf("expense %q", e.ID)
		if err := checkAmount(rec, "amount", e.Amount); err != nil {
			return Input{}, err
		}
		if e.Amount == 0 {
			return Input{}, invalid("%s: amount must be positive", rec)
		}
		if e.Category == "" {
			e.Category = models.ExpenseCategoryOther
		} else if !e.Category.Valid() {
			return Input{}, invalid("%s: unknown category %q", rec, e.Category)
		}
		out.Expenses[i] = e
	}

	out.Assets = make([]models.Asset, len(in.Assets))
	for i, a := range in.Assets {
		if a.ID == "" {
			return Input{}, invalid("asset #%d: missing id", i)
		}
		rec := fmt.Sprintf("asset %q", a.ID)
		if err := checkAmount(rec, "value", a.Value); err != nil {
			return Input{}, err
		}
		if !a.Type.Valid() {
			return Input{}, invalid("%s: unknown type %q", rec, a.Type)
		}
		if a.LiquidityScore == 0 {
			a.LiquidityScore = models.MinLiquidityScore
		}
		if a.LiquidityScore < models.MinLiquidityScore || a.LiquidityScore > models.MaxLiquidityScore {
			return Input{}, invalid("%s: liquidity_score must be between %d and %d", rec, models.MinLiquidityScore, models.MaxLiquidityScore)
		}
		out.Assets[i] = a
	}

	out.Liabilities = make([]models.Liability, len(in.Liabilities))
	for i, l := range in.Liabilities {
		if l.ID == "" {
			return Input{}, invalid("liability #%d: missing id", i)
		}
		rec := fmt.Sprintf("liability %q", l.ID)
		if err := checkAmount(rec, "outstanding_amount", l.OutstandingAmount); err != nil {
			return Input{}, err
		}
		if err := checkAmount(rec, "interest_rate", l.InterestRate); err != nil {
			return Input{}, err
		}
		if err := checkAmount(rec, "monthly_payment", l.MonthlyPayment); err != nil {
			return Input{}, err
		}
		if !l.Type.Valid() {
			return Input{}, invalid("%s: unknown type %q", rec, l.Type)
		}
		out.Liabilities[i] = l
	}

	out.Goals = make([]models.Goal, len(in.Goals))
	for i, g := range in.Goals {
		if g.ID == "" {
			return Input{}, invalid("goal #%d: missing id", i)
		}
		rec := fmt.Sprintf("goal %q", g.ID)
		if err := checkAmount(rec, "target_amount", g.TargetAmount); err != nil {
			return Input{}, err
		}
		if g.TargetAmount == 0 {
			return Input{}, invalid("%s: target_amount must be positive", rec)
		}
		if err := checkAmount(rec, "saved_amount", g.SavedAmount); err != nil {
			return Input{}, err
		}
		if g.TargetDate.IsZero() {
			return Input{}, invalid("%s: missing target_date", rec)
		}
		if g.Priority == "" {
			g.Priority = models.GoalPriorityMedium
		} else if !g.Priority.Valid() {
			return Input{}, invalid("%s: unknown priority %q", rec, g.Priority)
		}
		out.Goals[i] = g
	}

	return out, nil
}
