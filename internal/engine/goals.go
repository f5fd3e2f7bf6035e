package engine

import (
	"time"

	"github.com/shopspring/decimal"

	"finhealth/internal/models"
)

// GoalAnalysis is a goal with its derived feasibility.
type GoalAnalysis struct {
	ID              string              `json:"id"`
	Name            string              `json:"name"`
	TargetAmount    float64             `json:"target_amount"`
	SavedAmount     float64             `json:"saved_amount"`
	TargetDate      time.Time           `json:"target_date"`
	Priority        models.GoalPriority `json:"priority"`
	RequiredMonthly float64             `json:"required_monthly"`
	MonthsLeft      int                 `json:"months_left"`
	Status          models.GoalStatus   `json:"status"`
}

// monthsBetween counts calendar months from now to target, ignoring days.
func monthsBetween(now, target time.Time) int {
	return (target.Year()-now.Year())*12 + int(target.Month()) - int(now.Month())
}

// evaluateGoals classifies each goal against the whole positive surplus.
// Goals do not share the surplus: two goals that each fit are both On Track
// even when together they exceed it.
func (e *Engine) evaluateGoals(goals []models.Goal, surplus decimal.Decimal, now time.Time) []GoalAnalysis {
	available := decimal.Max(decimal.Zero, surplus)
	atRiskLimit := available.Mul(decimal.NewFromFloat(e.policy.AtRiskTolerance))

	out := make([]GoalAnalysis, 0, len(goals))
	for _, g := range goals {
		remaining := decimal.Max(decimal.Zero, money(g.TargetAmount).Sub(money(g.SavedAmount)))

		raw := monthsBetween(now, g.TargetDate)
		months := raw
		if months < 1 {
			months = 1
		}
		required := remaining.Div(decimal.NewFromInt(int64(months))).Round(2)

		var status models.GoalStatus
		switch {
		case raw <= 0 && remaining.IsPositive():
			status = models.GoalStatusUnrealistic
		case required.LessThanOrEqual(available):
			status = models.GoalStatusOnTrack
		case required.LessThanOrEqual(atRiskLimit):
			status = models.GoalStatusAtRisk
		default:
			status = models.GoalStatusUnrealistic
		}

		out = append(out, GoalAnalysis{
			ID:              g.ID,
			Name:            g.Name,
			TargetAmount:    g.TargetAmount,
			SavedAmount:     g.SavedAmount,
			TargetDate:      g.TargetDate,
			Priority:        g.Priority,
			RequiredMonthly: f64(required),
			MonthsLeft:      months,
			Status:          status,
		})
	}
	return out
}
