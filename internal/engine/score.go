package engine

import (
	"math"

	"github.com/shopspring/decimal"

	"finhealth/internal/models"
)

// ScoreBreakdown holds each normalized component in [0,1].
type ScoreBreakdown struct {
	Burn      float64 `json:"burn"`
	Debt      float64 `json:"debt"`
	Emergency float64 `json:"emergency"`
	Goals     float64 `json:"goals"`
}

func clamp01(v float64) float64 {
	return math.Max(0, math.Min(1, v))
}

func (e *Engine) breakdown(cf CashFlow, b Balance, goals []GoalAnalysis) ScoreBreakdown {
	var s ScoreBreakdown

	// No salary is the worst possible burn ratio.
	if cf.Salary.IsPositive() {
		s.Burn = 1 - math.Min(1, f64(cf.MonthlyBurn.Div(cf.Salary)))
	}
	s.Debt = 1 - math.Min(1, f64(b.DebtRatio))
	s.Emergency = math.Min(1, f64(b.EmergencyMonths.Div(decimal.NewFromFloat(e.policy.EmergencyTargetMonths))))

	s.Goals = 1
	if len(goals) > 0 {
		onTrack := 0
		for _, g := range goals {
			if g.Status == models.GoalStatusOnTrack {
				onTrack++
			}
		}
		s.Goals = float64(onTrack) / float64(len(goals))
	}

	s.Burn = clamp01(s.Burn)
	s.Debt = clamp01(s.Debt)
	s.Emergency = clamp01(s.Emergency)
	s.Goals = clamp01(s.Goals)
	return s
}

// score weighs the components into [0,100].
func (e *Engine) score(s ScoreBreakdown, netWorth decimal.Decimal) int {
	w := e.policy.Weights
	raw := 100 * (w.Burn*s.Burn + w.Debt*s.Debt + w.Emergency*s.Emergency + w.Goals*s.Goals)

	score := int(math.Round(raw))
	if netWorth.IsNegative() {
		score -= e.policy.NegativeNetWorthPenalty
	}
	return max(0, min(100, score))
}
