package testutil_test

import (
	"testing"
	"time"

	"finhealth/internal/errors"
	"finhealth/internal/models"
	"finhealth/internal/testutil"
)

func TestSetupTestDB(t *testing.T) {
	db := testutil.SetupTestDB(t)

	var count int64
	for _, table := range []string{"users", "expenses", "assets", "liabilities", "goals", "audit_logs", "revoked_tokens"} {
		if err := db.Table(table).Count(&count).Error; err != nil {
			t.Errorf("table %q should exist after migration: %v", table, err)
		}
	}
}

func TestSetupTestDB_IsIsolated(t *testing.T) {
	a := testutil.SetupTestDB(t)
	b := testutil.SetupTestDB(t)
	testutil.CreateTestUser(t, a)

	var count int64
	b.Model(&models.User{}).Count(&count)
	if count != 0 {
		t.Errorf("expected isolated databases, found %d users", count)
	}
}

func TestFixtures(t *testing.T) {
	db := testutil.SetupTestDB(t)

	user := testutil.CreateTestUser(t, db)
	if user.ID == "" {
		t.Fatal("user should have an ID")
	}
	if !user.HasOnboarded() {
		t.Error("fixture user should be onboarded")
	}

	expense := testutil.CreateTestExpense(t, db, user.ID, 120.5, time.Now())
	if expense.Amount != 120.5 {
		t.Errorf("expected amount 120.5, got %v", expense.Amount)
	}

	asset := testutil.CreateTestAsset(t, db, user.ID, models.AssetTypeGold, 5000, 3)
	if asset.Type != models.AssetTypeGold {
		t.Errorf("expected gold asset, got %s", asset.Type)
	}

	liability := testutil.CreateTestLiability(t, db, user.ID, 2000, 36, 100)
	if liability.OutstandingAmount != 2000 {
		t.Errorf("expected outstanding 2000, got %v", liability.OutstandingAmount)
	}

	goal := testutil.CreateTestGoal(t, db, user.ID, 10000, time.Now().AddDate(1, 0, 0))
	if goal.Priority != models.GoalPriorityMedium {
		t.Errorf("expected medium priority, got %s", goal.Priority)
	}
}

func TestAssertAppError(t *testing.T) {
	err := errors.WithMessage(errors.ErrAssetNotFound, "custom message")
	appErr := testutil.AssertAppError(t, err, "ASSET_NOT_FOUND")
	if appErr.StatusCode != 404 || appErr.Message != "custom message" {
		t.Errorf("unexpected AppError %+v", appErr)
	}
}

func TestAssertAmount(t *testing.T) {
	testutil.AssertAmount(t, "rounded", 1666.6667, 1666.67)
	testutil.AssertAmount(t, "exact", 15000, 15000)
}

func TestAssertNoError(t *testing.T) {
	testutil.AssertNoError(t, nil)
}
