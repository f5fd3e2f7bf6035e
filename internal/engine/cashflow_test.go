package engine

import (
	"testing"

	"github.com/shopspring/decimal"

	"finhealth/internal/models"
)

func TestCashFlow_BurnAndSurplus(t *testing.T) {
	e := New(DefaultPolicy())

	tests := []struct {
		name        string
		profile     Profile
		expenses    []models.Expense
		wantBurn    string
		wantSurplus string
	}{
		{
			name:        "no_expenses",
			profile:     Profile{Salary: 4000, Rent: 1500},
			wantBurn:    "1500",
			wantSurplus: "2500",
		},
		{
			name:        "cents_add_exactly",
			profile:     Profile{Salary: 1000, Rent: 0.1},
			expenses:    []models.Expense{expense("a", 0.2), expense("b", 0.3), expense("c", 99.99)},
			wantBurn:    "100.59",
			wantSurplus: "899.41",
		},
		{
			name:        "deficit",
			profile:     Profile{Salary: 2000, Rent: 1800},
			expenses:    []models.Expense{expense("a", 650)},
			wantBurn:    "2450",
			wantSurplus: "-450",
		},
		{
			name:        "zero_salary",
			profile:     Profile{Rent: 300},
			expenses:    []models.Expense{expense("a", 20)},
			wantBurn:    "320",
			wantSurplus: "-320",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cf := e.cashFlow(tt.profile, tt.expenses, nil)

			if !cf.MonthlyBurn.Equal(decimal.RequireFromString(tt.wantBurn)) {
				t.Errorf("burn = %s, want %s", cf.MonthlyBurn, tt.wantBurn)
			}
			if !cf.Surplus.Equal(decimal.RequireFromString(tt.wantSurplus)) {
				t.Errorf("surplus = %s, want %s", cf.Surplus, tt.wantSurplus)
			}
			if !cf.Surplus.Equal(cf.Salary.Sub(cf.MonthlyBurn)) {
				t.Errorf("surplus %s != salary %s - burn %s", cf.Surplus, cf.Salary, cf.MonthlyBurn)
			}
		})
	}
}

func TestCashFlow_RecommendedInvestment(t *testing.T) {
	tests := []struct {
		name     string
		fraction float64
		cap      float64
		profile  Profile
		want     string
	}{
		{"fraction_of_surplus", 0.5, 0, Profile{Salary: 10000, Rent: 6000}, "2000"},
		{"capped_by_salary", 0.5, 0.2, Profile{Salary: 10000, Rent: 2000}, "2000"},
		{"below_cap", 0.5, 0.2, Profile{Salary: 10000, Rent: 8000}, "1000"},
		{"deficit_is_zero", 0.5, 0.2, Profile{Salary: 1000, Rent: 3000}, "0"},
		{"zero_salary_is_zero", 0.7, 0.2, Profile{}, "0"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := DefaultPolicy()
			p.InvestmentFraction = tt.fraction
			p.InvestmentSalaryCap = tt.cap

			cf := New(p).cashFlow(tt.profile, nil, nil)
			if !cf.RecommendedInvestment.Equal(decimal.RequireFromString(tt.want)) {
				t.Errorf("recommended = %s, want %s", cf.RecommendedInvestment, tt.want)
			}
		})
	}
}

func TestCashFlow_RatesAndEMI(t *testing.T) {
	e := New(DefaultPolicy())

	cf := e.cashFlow(Profile{Salary: 8000, Rent: 2000}, nil, []models.Liability{
		liability("car", 10000, 9, 350),
		liability("cc", 900, 39, 45.5),
	})
	if !cf.SavingsRate.Equal(decimal.NewFromInt(75)) {
		t.Errorf("savings rate = %s, want 75", cf.SavingsRate)
	}
	if !cf.EMIBurden.Equal(decimal.RequireFromString("395.5")) {
		t.Errorf("emi burden = %s, want 395.5", cf.EMIBurden)
	}

	cf = e.cashFlow(Profile{Rent: 100}, nil, nil)
	if !cf.SavingsRate.IsZero() {
		t.Errorf("savings rate with zero salary = %s, want 0", cf.SavingsRate)
	}
}
