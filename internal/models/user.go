package models

import "time"

// User is an account holder together with the onboarding profile the health
// engine reads (salary, rent, savings).
type User struct {
	Base
	Username            string     `gorm:"uniqueIndex;not null" json:"username"`
	Password            string     `gorm:"not null" json:"-"`
	Age                 int        `json:"age"`
	Salary              float64    `gorm:"type:numeric(14,2);default:0" json:"salary"`
	Rent                float64    `gorm:"type:numeric(14,2);default:0" json:"rent"`
	CurrentSavings      float64    `gorm:"type:numeric(14,2);default:0" json:"current_savings"`
	SavingGoal          string     `json:"saving_goal"`
	DataVersion         int64      `gorm:"not null;default:0" json:"-"`
	FailedLoginAttempts int        `gorm:"default:0" json:"-"`
	LockedUntil         *time.Time `json:"-"`
	LastLoginAt         *time.Time `json:"last_login_at,omitempty"`
}

// HasOnboarded reports whether the user has submitted a salary.
func (u *User) HasOnboarded() bool {
	return u.Salary > 0
}
