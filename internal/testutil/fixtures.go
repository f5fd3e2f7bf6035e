package testutil

import (
	"fmt"
	"sync/atomic"
	"testing"
	"time"

	"finhealth/internal/models"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// TestPassword is the plaintext password of every fixture user.
const TestPassword = "password123"

// counter provides unique values across fixtures within a test run.
var counter atomic.Int64

func nextID() int64 {
	return counter.Add(1)
}

// CreateTestUser creates an onboarded user with a unique username.
func CreateTestUser(t *testing.T, db *gorm.DB) *models.User {
	t.Helper()
	return CreateTestUserWithUsername(t, db, fmt.Sprintf("user%d", nextID()))
}

// CreateTestUserWithUsername creates a user earning 50000 a month with 10000 rent.
func CreateTestUserWithUsername(t *testing.T, db *gorm.DB, username string) *models.User {
	t.Helper()

	hash, err := bcrypt.GenerateFromPassword([]byte(TestPassword), bcrypt.MinCost)
	if err != nil {
		t.Fatalf("failed to hash password: %v", err)
	}

	user := &models.User{
		Username: username,
		Password: string(hash),
		Age:      30,
		Salary:   50000,
		Rent:     10000,
	}
	if err := db.Create(user).Error; err != nil {
		t.Fatalf("failed to create test user: %v", err)
	}
	return user
}

// CreateTestExpense creates a Food expense dated at the given time.
func CreateTestExpense(t *testing.T, db *gorm.DB, userID string, amount float64, date time.Time) *models.Expense {
	t.Helper()

	expense := &models.Expense{
		UserID:   userID,
		Title:    fmt.Sprintf("Test Expense %d", nextID()),
		Amount:   amount,
		Category: models.ExpenseCategoryFood,
		Date:     date,
	}
	if err := db.Create(expense).Error; err != nil {
		t.Fatalf("failed to create test expense: %v", err)
	}
	return expense
}

// CreateTestAsset creates an asset of the given type and value.
func CreateTestAsset(t *testing.T, db *gorm.DB, userID string, assetType models.AssetType, value float64, liquidity int) *models.Asset {
	t.Helper()

	asset := &models.Asset{
		UserID:         userID,
		Name:           fmt.Sprintf("Test Asset %d", nextID()),
		Type:           assetType,
		Value:          value,
		LiquidityScore: liquidity,
	}
	if err := db.Create(asset).Error; err != nil {
		t.Fatalf("failed to create test asset: %v", err)
	}
	return asset
}

// CreateTestLiability creates a credit card debt.
func CreateTestLiability(t *testing.T, db *gorm.DB, userID string, outstanding, rate, payment float64) *models.Liability {
	t.Helper()

	liability := &models.Liability{
		UserID:            userID,
		Name:              fmt.Sprintf("Test Liability %d", nextID()),
		Type:              models.LiabilityTypeCreditCard,
		OutstandingAmount: outstanding,
		InterestRate:      rate,
		MonthlyPayment:    payment,
	}
	if err := db.Create(liability).Error; err != nil {
		t.Fatalf("failed to create test liability: %v", err)
	}
	return liability
}

// CreateTestGoal creates a Medium-priority goal due on targetDate.
func CreateTestGoal(t *testing.T, db *gorm.DB, userID string, target float64, targetDate time.Time) *models.Goal {
	t.Helper()

	goal := &models.Goal{
		UserID:       userID,
		Name:         fmt.Sprintf("Test Goal %d", nextID()),
		TargetAmount: target,
		TargetDate:   targetDate,
		Priority:     models.GoalPriorityMedium,
	}
	if err := db.Create(goal).Error; err != nil {
		t.Fatalf("failed to create test goal: %v", err)
	}
	return goal
}
