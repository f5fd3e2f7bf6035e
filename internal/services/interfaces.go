package services

import (
	"context"
	"io"
	"time"

	"finhealth/internal/engine"
	"finhealth/internal/models"
	"finhealth/internal/pagination"
)

// ProfileUpdate carries the onboarding fields a user may set.
type ProfileUpdate struct {
	Age            int
	Salary         float64
	Rent           float64
	CurrentSavings float64
	SavingGoal     string
}

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(username, password string) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	AttemptLogin(username, password string) (*models.User, error)
	UpdateProfile(userID string, update ProfileUpdate) (*models.User, error)
}

// ExpenseInput is a validated request to record an expense.
type ExpenseInput struct {
	Title    string
	Amount   float64
	Category models.ExpenseCategory
	Date     time.Time
}

// ExpenseServicer defines the contract for expense records.
type ExpenseServicer interface {
	CreateExpense(userID string, in ExpenseInput) (*models.Expense, error)
	GetUserExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	DeleteExpense(userID, expenseID string) error
}

// AssetInput is a validated request to record an asset.
type AssetInput struct {
	Name           string
	Type           models.AssetType
	Value          float64
	LiquidityScore int
}

// AssetServicer defines the contract for asset records.
type AssetServicer interface {
	CreateAsset(userID string, in AssetInput) (*models.Asset, error)
	GetUserAssets(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error)
	DeleteAsset(userID, assetID string) error
}

// LiabilityInput is a validated request to record a liability.
type LiabilityInput struct {
	Name              string
	Type              models.LiabilityType
	OutstandingAmount float64
	InterestRate      float64
	MonthlyPayment    float64
}

// LiabilityServicer defines the contract for liability records.
type LiabilityServicer interface {
	CreateLiability(userID string, in LiabilityInput) (*models.Liability, error)
	GetUserLiabilities(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Liability], error)
	DeleteLiability(userID, liabilityID string) error
}

// GoalInput is a validated request to record a goal.
type GoalInput struct {
	Name         string
	TargetAmount float64
	SavedAmount  float64
	TargetDate   time.Time
	Priority     models.GoalPriority
}

// GoalServicer defines the contract for goal records.
type GoalServicer interface {
	CreateGoal(userID string, in GoalInput) (*models.Goal, error)
	GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error)
	DeleteGoal(userID, goalID string) error
}

// HealthServicer computes health snapshots and the dashboard payload.
type HealthServicer interface {
	GetSnapshot(userID string) (*engine.Snapshot, error)
	GetDashboard(userID string) (*Dashboard, error)
	GetReport(userID string) (*Report, error)
}

// TokenServicer tracks logged-out JWT ids.
type TokenServicer interface {
	Revoke(ctx context.Context, userID, jti string, expiresAt time.Time) error
	IsRevoked(ctx context.Context, jti string) (bool, error)
	PurgeExpired(ctx context.Context) (int64, error)
}

// ExportServicer renders a user's records as a spreadsheet.
type ExportServicer interface {
	WriteWorkbook(userID string, w io.Writer) error
}

// AuditServicer defines the contract for audit logging.
type AuditServicer interface {
	Log(userID, action, resourceType, resourceID, ipAddress string, changes map[string]interface{})
}
