// Package engine derives a user's financial health snapshot from their
// profile and records.
//
// The computation is pure: it reads a fully loaded Input, never performs
// I/O and keeps no state between calls, so one Engine may serve concurrent
// requests. Stages run leaves first:
//
//	cash flow -> balance sheet -> debt plan -> goal feasibility -> projection -> score
//
// Monetary arithmetic is done in decimal, rounded to cents at the input
// boundary and after every interest or growth step.
package engine

import (
	"time"

	"finhealth/internal/models"
)

// Engine computes snapshots under a fixed Policy.
type Engine struct {
	policy Policy
}

// New returns an Engine. Callers are expected to have run Policy.Validate.
func New(policy Policy) *Engine {
	return &Engine{policy: policy}
}

// Policy returns the constants the engine was built with.
func (e *Engine) Policy() Policy {
	return e.policy
}

// DebtStrategy is the wire form of a DebtPlan.
type DebtStrategy struct {
	Strategy                string       `json:"strategy"`
	RecommendedExtraPayment float64      `json:"recommended_extra_payment"`
	FreedomDate             string       `json:"freedom_date"`
	MonthsToFreedom         int          `json:"months_to_freedom"`
	PaidOff                 bool         `json:"paid_off"`
	TotalInterest           float64      `json:"total_interest"`
	TotalPaid               float64      `json:"total_paid"`
	Order                   []PayoffStep `json:"order"`
}

// Snapshot is the health of one user at one instant. It is never stored.
type Snapshot struct {
	Score                 int                          `json:"score"`
	NetWorth              float64                      `json:"net_worth"`
	Surplus               float64                      `json:"surplus"`
	MonthlyBurn           float64                      `json:"monthly_burn"`
	RecommendedInvestment float64                      `json:"recommended_investment"`
	EmergencyMonths       float64                      `json:"emergency_months"`
	DebtRatio             float64                      `json:"debt_ratio"`
	Allocation            map[models.AssetType]float64 `json:"allocation"`
	DebtStrategy          DebtStrategy                 `json:"debt_strategy"`
	Projections           []ProjectionPoint            `json:"projections"`

	TotalAssets      float64        `json:"total_assets"`
	TotalLiabilities float64        `json:"total_liabilities"`
	LiquidAssets     float64        `json:"liquid_assets"`
	SavingsRate      float64        `json:"savings_rate"`
	MonthlyEMIBurden float64        `json:"monthly_emi_burden"`
	ScoreBreakdown   ScoreBreakdown `json:"score_breakdown"`
	AnalyzedGoals    []GoalAnalysis `json:"analyzed_goals"`
	ComputedAt       time.Time      `json:"computed_at"`
}

// Compute validates in and derives its snapshot as of now. It fails only
// with an INVALID_INPUT AppError.
func (e *Engine) Compute(in Input, now time.Time) (*Snapshot, error) {
	in, err := in.Validate()
	if err != nil {
		return nil, err
	}

	cf := e.cashFlow(in.Profile, in.Expenses, in.Liabilities)
	bal := e.balance(in.Profile, in.Assets, in.Liabilities, cf.MonthlyBurn)
	plan := e.planDebt(in.Liabilities, cf.Surplus, now)
	goals := e.evaluateGoals(in.Goals, cf.Surplus, now)
	projections := e.project(bal, cf, plan)
	breakdown := e.breakdown(cf, bal, goals)

	return &Snapshot{
		Score:                 e.score(breakdown, bal.NetWorth),
		NetWorth:              f64(bal.NetWorth),
		Surplus:               f64(cf.Surplus),
		MonthlyBurn:           f64(cf.MonthlyBurn),
		RecommendedInvestment: f64(cf.RecommendedInvestment),
		EmergencyMonths:       f64(bal.EmergencyMonths.Round(2)),
		DebtRatio:             f64(bal.DebtRatio.Round(4)),
		Allocation:            bal.Allocation(),
		DebtStrategy:          plan.strategy(),
		Projections:           projections,
		TotalAssets:           f64(bal.TotalAssets),
		TotalLiabilities:      f64(bal.TotalLiabilities),
		LiquidAssets:          f64(bal.LiquidAssets),
		SavingsRate:           f64(cf.SavingsRate.Round(2)),
		MonthlyEMIBurden:      f64(cf.EMIBurden),
		ScoreBreakdown:        breakdown,
		AnalyzedGoals:         goals,
		ComputedAt:            now,
	}, nil
}

func (p DebtPlan) strategy() DebtStrategy {
	return DebtStrategy{
		Strategy:                p.Strategy,
		RecommendedExtraPayment: f64(p.RecommendedExtra),
		FreedomDate:             p.FreedomDate,
		MonthsToFreedom:         p.MonthsToFreedom,
		PaidOff:                 p.PaidOff,
		TotalInterest:           f64(p.TotalInterest),
		TotalPaid:               f64(p.TotalPaid),
		Order:                   p.Order,
	}
}

// Plan exposes the raw debt simulation for callers that need the monthly
// schedule, such as exports.
func (e *Engine) Plan(in Input, now time.Time) (DebtPlan, error) {
	in, err := in.Validate()
	if err != nil {
		return DebtPlan{}, err
	}
	cf := e.cashFlow(in.Profile, in.Expenses, in.Liabilities)
	return e.planDebt(in.Liabilities, cf.Surplus, now), nil
}
