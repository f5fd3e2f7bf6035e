package engine

import (
	"github.com/shopspring/decimal"

	"finhealth/internal/models"
)

// CashFlow is the monthly income statement.
type CashFlow struct {
	Salary                decimal.Decimal
	MonthlyBurn           decimal.Decimal
	Surplus               decimal.Decimal
	RecommendedInvestment decimal.Decimal
	// SavingsRate is the surplus as a percentage of salary.
	SavingsRate decimal.Decimal
	// EMIBurden is the sum of committed minimum loan payments.
	EMIBurden decimal.Decimal
}

func (e *Engine) cashFlow(p Profile, expenses []models.Expense, liabilities []models.Liability) CashFlow {
	salary := money(p.Salary)

	burn := money(p.Rent)
	for _, ex := range expenses {
		burn = burn.Add(money(ex.Amount))
	}
	surplus := salary.Sub(burn)

	invest := decimal.Max(decimal.Zero, surplus.Mul(decimal.NewFromFloat(e.policy.InvestmentFraction)))
	if e.policy.InvestmentSalaryCap > 0 {
		invest = decimal.Min(invest, salary.Mul(decimal.NewFromFloat(e.policy.InvestmentSalaryCap)))
	}

	savingsRate := decimal.Zero
	if salary.IsPositive() {
		savingsRate = surplus.Div(salary).Mul(hundred)
	}

	emi := decimal.Zero
	for _, l := range liabilities {
		emi = emi.Add(money(l.MonthlyPayment))
	}

	return CashFlow{
		Salary:                salary,
		MonthlyBurn:           burn,
		Surplus:               surplus,
		RecommendedInvestment: invest.Round(2),
		SavingsRate:           savingsRate,
		EMIBurden:             emi,
	}
}
