package models

import "time"

// GoalPriority is informational only; it never changes feasibility.
type GoalPriority string

const (
	GoalPriorityLow    GoalPriority = "Low"
	GoalPriorityMedium GoalPriority = "Medium"
	GoalPriorityHigh   GoalPriority = "High"
)

// Valid reports whether p is a known priority.
func (p GoalPriority) Valid() bool {
	switch p {
	case GoalPriorityLow, GoalPriorityMedium, GoalPriorityHigh:
		return true
	}
	return false
}

// GoalStatus is the feasibility classification computed on read.
type GoalStatus string

const (
	GoalStatusOnTrack     GoalStatus = "On Track"
	GoalStatusAtRisk      GoalStatus = "At Risk"
	GoalStatusUnrealistic GoalStatus = "Unrealistic"
)

// Goal is a savings target. Status and required monthly savings are derived
// by the health engine and not stored.
type Goal struct {
	Base
	UserID       string       `gorm:"type:uuid;not null;index" json:"-"`
	Name         string       `gorm:"not null" json:"name"`
	TargetAmount float64      `gorm:"type:numeric(14,2);not null" json:"target_amount"`
	SavedAmount  float64      `gorm:"type:numeric(14,2);not null;default:0" json:"saved_amount"`
	TargetDate   time.Time    `gorm:"type:date;not null" json:"target_date"`
	Priority     GoalPriority `gorm:"not null;default:Medium" json:"priority"`
}
