// Package scenario decodes TOML what-if files into engine input.
//
//	now = 2026-10-14          # optional
//
//	[profile]
//	salary = 50000            # required
//	rent = 10000              # required
//	current_savings = 0
//	age = 30
//
//	[[expenses]]
//	title = "Groceries"
//	amount = 5000             # required
//	category = "Food"
//
//	[[assets]]
//	name = "Savings"
//	type = "Bank"             # required
//	value = 100000            # required
//	liquidity_score = 5
//
//	[[liabilities]]
//	name = "Card"
//	type = "Credit Card"      # required
//	outstanding_amount = 20000 # required
//	interest_rate = 24        # required, annual percent
//	monthly_payment = 2000
//
//	[[goals]]
//	name = "Emergency fund"
//	target_amount = 60000     # required
//	months_remaining = 12     # or target_date = 2027-10-14
//	priority = "High"
package scenario

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/BurntSushi/toml"

	"finhealth/internal/engine"
	apperrors "finhealth/internal/errors"
	"finhealth/internal/models"
)

// Scenario is a decoded what-if file.
type Scenario struct {
	Now   time.Time
	Input engine.Input
}

type file struct {
	Now         time.Time      `toml:"now"`
	Profile     engine.Profile `toml:"profile"`
	Expenses    []expense      `toml:"expenses"`
	Assets      []asset        `toml:"assets"`
	Liabilities []liability    `toml:"liabilities"`
	Goals       []goal         `toml:"goals"`
}

type expense struct {
	Title    string    `toml:"title"`
	Amount   *float64  `toml:"amount"`
	Category string    `toml:"category"`
	Date     time.Time `toml:"date"`
}

type asset struct {
	Name           string   `toml:"name"`
	Type           *string  `toml:"type"`
	Value          *float64 `toml:"value"`
	LiquidityScore int      `toml:"liquidity_score"`
}

type liability struct {
	Name              string   `toml:"name"`
	Type              *string  `toml:"type"`
	OutstandingAmount *float64 `toml:"outstanding_amount"`
	InterestRate      *float64 `toml:"interest_rate"`
	MonthlyPayment    float64  `toml:"monthly_payment"`
}

type goal struct {
	Name            string    `toml:"name"`
	TargetAmount    *float64  `toml:"target_amount"`
	SavedAmount     float64   `toml:"saved_amount"`
	TargetDate      time.Time `toml:"target_date"`
	MonthsRemaining *int      `toml:"months_remaining"`
	Priority        string    `toml:"priority"`
}

func missing(record string, key string) error {
	return apperrors.WithMessage(apperrors.ErrInvalidInput, fmt.Sprintf("%s: missing required key %q", record, key))
}

// day keeps the calendar date of t at UTC midnight.
func day(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Decode reads a scenario. A non-zero now overrides the file's own `now`;
// with neither the current time is used. Missing required keys and unknown
// keys fail with INVALID_INPUT.
func Decode(r io.Reader, now time.Time) (*Scenario, error) {
	var f file
	md, err := toml.NewDecoder(r).Decode(&f)
	if err != nil {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "malformed scenario: "+err.Error())
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown keys: "+strings.Join(keys, ", "))
	}
	for _, key := range []string{"salary", "rent"} {
		if !md.IsDefined("profile", key) {
			return nil, missing("profile", key)
		}
	}

	switch {
	case !now.IsZero():
	case md.IsDefined("now"):
		now = f.Now
	default:
		now = time.Now()
	}

	in := engine.Input{Profile: f.Profile}

	for i, e := range f.Expenses {
		rec := fmt.Sprintf("expenses[%d]", i)
		if e.Amount == nil {
			return nil, missing(rec, "amount")
		}
		date := now
		if !e.Date.IsZero() {
			date = e.Date
		}
		in.Expenses = append(in.Expenses, models.Expense{
			Base:     models.Base{ID: fmt.Sprintf("expense-%d", i+1)},
			Title:    e.Title,
			Amount:   *e.Amount,
			Category: models.ExpenseCategory(e.Category),
			Date:     day(date),
		})
	}

	for i, a := range f.Assets {
		rec := fmt.Sprintf("assets[%d]", i)
		if a.Type == nil {
			return nil, missing(rec, "type")
		}
		if a.Value == nil {
			return nil, missing(rec, "value")
		}
		in.Assets = append(in.Assets, models.Asset{
			Base:           models.Base{ID: fmt.Sprintf("asset-%d", i+1)},
			Name:           a.Name,
			Type:           models.AssetType(*a.Type),
			Value:          *a.Value,
			LiquidityScore: a.LiquidityScore,
		})
	}

	for i, l := range f.Liabilities {
		rec := fmt.Sprintf("liabilities[%d]", i)
		switch {
		case l.Type == nil:
			return nil, missing(rec, "type")
		case l.OutstandingAmount == nil:
			return nil, missing(rec, "outstanding_amount")
		case l.InterestRate == nil:
			return nil, missing(rec, "interest_rate")
		}
		in.Liabilities = append(in.Liabilities, models.Liability{
			Base:              models.Base{ID: fmt.Sprintf("liability-%d", i+1)},
			Name:              l.Name,
			Type:              models.LiabilityType(*l.Type),
			OutstandingAmount: *l.OutstandingAmount,
			InterestRate:      *l.InterestRate,
			MonthlyPayment:    l.MonthlyPayment,
		})
	}

	for i, g := range f.Goals {
		rec := fmt.Sprintf("goals[%d]", i)
		if g.TargetAmount == nil {
			return nil, missing(rec, "target_amount")
		}
		target := g.TargetDate
		switch {
		case g.MonthsRemaining != nil && !target.IsZero():
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, rec+": set target_date or months_remaining, not both")
		case g.MonthsRemaining != nil:
			target = now.AddDate(0, *g.MonthsRemaining, 0)
		case target.IsZero():
			return nil, missing(rec, "target_date")
		}
		in.Goals = append(in.Goals, models.Goal{
			Base:         models.Base{ID: fmt.Sprintf("goal-%d", i+1)},
			Name:         g.Name,
			TargetAmount: *g.TargetAmount,
			SavedAmount:  g.SavedAmount,
			TargetDate:   day(target),
			Priority:     models.GoalPriority(g.Priority),
		})
	}

	return &Scenario{Now: now, Input: in}, nil
}
