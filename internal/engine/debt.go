package engine

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"

	"finhealth/internal/models"
)

const (
	StrategyAvalanche = "Avalanche"
	StrategyNone      = "None"

	FreedomDateNone  = "N/A"
	FreedomDateNever = "Never"

	freedomDateLayout = "Jan 2006"
)

// PayoffStep records when one liability reached zero.
type PayoffStep struct {
	LiabilityID  string               `json:"liability_id"`
	Name         string               `json:"name"`
	Type         models.LiabilityType `json:"type"`
	InterestRate float64              `json:"interest_rate"`
	// PaidOffMonth is the 1-based month the balance reached zero, 0 when
	// it started at zero or outlived the simulation.
	PaidOffMonth int  `json:"paid_off_month"`
	PaidOff      bool `json:"paid_off"`
}

// DebtMonth is the simulated aggregate of one month across all liabilities.
type DebtMonth struct {
	Month    int
	Interest decimal.Decimal
	Paid     decimal.Decimal
	Balance  decimal.Decimal
}

// DebtPlan is the outcome of the avalanche simulation.
type DebtPlan struct {
	Strategy         string
	RecommendedExtra decimal.Decimal
	FreedomDate      string
	MonthsToFreedom  int
	PaidOff          bool
	InitialBalance   decimal.Decimal
	TotalInterest    decimal.Decimal
	TotalPaid        decimal.Decimal
	// Order lists liabilities from highest to lowest interest rate.
	Order    []PayoffStep
	Schedule []DebtMonth
}

// balanceAfter returns the total outstanding after month m, and what was
// paid during it. Months past the schedule hold the final balance.
func (p DebtPlan) balanceAfter(m int) (balance, paid decimal.Decimal) {
	if m <= len(p.Schedule) {
		s := p.Schedule[m-1]
		return s.Balance, s.Paid
	}
	if n := len(p.Schedule); n > 0 {
		return p.Schedule[n-1].Balance, decimal.Zero
	}
	return p.InitialBalance, decimal.Zero
}

type debt struct {
	liability models.Liability
	rate      decimal.Decimal
	minimum   decimal.Decimal
	balance   decimal.Decimal
	paidOff   int
	cleared   bool
}

// avalanche returns liabilities ordered by interest rate, highest first.
// Equal rates keep their input (creation) order.
func avalanche(liabilities []models.Liability) []*debt {
	debts := make([]*debt, 0, len(liabilities))
	for _, l := range liabilities {
		d := &debt{
			liability: l,
			rate:      monthlyRate(l.InterestRate),
			minimum:   money(l.MonthlyPayment),
			balance:   money(l.OutstandingAmount),
		}
		d.cleared = !d.balance.IsPositive()
		debts = append(debts, d)
	}
	sort.SliceStable(debts, func(i, j int) bool {
		return debts[i].liability.InterestRate > debts[j].liability.InterestRate
	})
	return debts
}

// planDebt simulates month-by-month paydown. Each month interest accrues,
// every minimum is paid, and the extra pool (surplus beyond minimums plus
// minimums freed by cleared debts) goes to the highest-rate balance first.
func (e *Engine) planDebt(liabilities []models.Liability, surplus decimal.Decimal, now time.Time) DebtPlan {
	debts := avalanche(liabilities)

	plan := DebtPlan{
		Strategy:         StrategyNone,
		RecommendedExtra: decimal.Zero,
		FreedomDate:      FreedomDateNone,
		InitialBalance:   decimal.Zero,
		TotalInterest:    decimal.Zero,
		TotalPaid:        decimal.Zero,
		Order:            make([]PayoffStep, 0, len(debts)),
	}

	minimums := decimal.Zero
	for _, d := range debts {
		plan.InitialBalance = plan.InitialBalance.Add(d.balance)
		minimums = minimums.Add(d.minimum)
	}
	if !plan.InitialBalance.IsPositive() {
		plan.PaidOff = true
		for _, d := range debts {
			plan.Order = append(plan.Order, d.step())
		}
		return plan
	}

	plan.Strategy = StrategyAvalanche
	plan.RecommendedExtra = decimal.Max(decimal.Zero, surplus.Sub(minimums))

	remaining := plan.InitialBalance
	for month := 1; month <= e.policy.MaxPayoffMonths && remaining.IsPositive(); month++ {
		m := DebtMonth{Month: month, Interest: decimal.Zero, Paid: decimal.Zero}

		for _, d := range debts {
			if d.balance.IsPositive() {
				interest := d.balance.Mul(d.rate).Round(2)
				d.balance = d.balance.Add(interest)
				m.Interest = m.Interest.Add(interest)
			}
		}

		pool := plan.RecommendedExtra
		for _, d := range debts {
			pay := decimal.Min(d.minimum, d.balance)
			d.balance = d.balance.Sub(pay)
			m.Paid = m.Paid.Add(pay)
			pool = pool.Add(d.minimum.Sub(pay))
		}

		for _, d := range debts {
			if !pool.IsPositive() {
				break
			}
			if !d.balance.IsPositive() {
				continue
			}
			pay := decimal.Min(pool, d.balance)
			d.balance = d.balance.Sub(pay)
			pool = pool.Sub(pay)
			m.Paid = m.Paid.Add(pay)
		}

		remaining = decimal.Zero
		for _, d := range debts {
			if !d.cleared && !d.balance.IsPositive() {
				d.cleared = true
				d.paidOff = month
			}
			remaining = remaining.Add(d.balance)
		}
		m.Balance = remaining

		plan.TotalInterest = plan.TotalInterest.Add(m.Interest)
		plan.TotalPaid = plan.TotalPaid.Add(m.Paid)
		plan.Schedule = append(plan.Schedule, m)
	}

	for _, d := range debts {
		plan.Order = append(plan.Order, d.step())
	}

	if remaining.IsPositive() {
		plan.FreedomDate = FreedomDateNever
		return plan
	}
	plan.PaidOff = true
	plan.MonthsToFreedom = len(plan.Schedule)
	start := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location())
	plan.FreedomDate = start.AddDate(0, plan.MonthsToFreedom, 0).Format(freedomDateLayout)
	return plan
}

func (d *debt) step() PayoffStep {
	return PayoffStep{
		LiabilityID:  d.liability.ID,
		Name:         d.liability.Name,
		Type:         d.liability.Type,
		InterestRate: d.liability.InterestRate,
		PaidOffMonth: d.paidOff,
		PaidOff:      d.cleared,
	}
}
