package handlers

import (
	"context"
	"io"
	"time"

	"finhealth/internal/engine"
	"finhealth/internal/models"
	"finhealth/internal/pagination"
	"finhealth/internal/services"
)

// --- mock services ---

type mockUserService struct {
	createUserFn        func(username, password string) (*models.User, error)
	getUserByUsernameFn func(username string) (*models.User, error)
	getUserByIDFn       func(id string) (*models.User, error)
	attemptLoginFn      func(username, password string) (*models.User, error)
	updateProfileFn     func(userID string, update services.ProfileUpdate) (*models.User, error)
}

func (m *mockUserService) CreateUser(username, password string) (*models.User, error) {
	if m.createUserFn != nil {
		return m.createUserFn(username, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByUsername(username string) (*models.User, error) {
	if m.getUserByUsernameFn != nil {
		return m.getUserByUsernameFn(username)
	}
	return &models.User{}, nil
}

func (m *mockUserService) GetUserByID(id string) (*models.User, error) {
	if m.getUserByIDFn != nil {
		return m.getUserByIDFn(id)
	}
	return &models.User{}, nil
}

func (m *mockUserService) AttemptLogin(username, password string) (*models.User, error) {
	if m.attemptLoginFn != nil {
		return m.attemptLoginFn(username, password)
	}
	return &models.User{}, nil
}

func (m *mockUserService) UpdateProfile(userID string, update services.ProfileUpdate) (*models.User, error) {
	if m.updateProfileFn != nil {
		return m.updateProfileFn(userID, update)
	}
	return &models.User{}, nil
}

type mockTokenService struct {
	revokeFn       func(ctx context.Context, userID, jti string, expiresAt time.Time) error
	isRevokedFn    func(ctx context.Context, jti string) (bool, error)
	purgeExpiredFn func(ctx context.Context) (int64, error)
}

func (m *mockTokenService) Revoke(ctx context.Context, userID, jti string, expiresAt time.Time) error {
	if m.revokeFn != nil {
		return m.revokeFn(ctx, userID, jti, expiresAt)
	}
	return nil
}

func (m *mockTokenService) IsRevoked(ctx context.Context, jti string) (bool, error) {
	if m.isRevokedFn != nil {
		return m.isRevokedFn(ctx, jti)
	}
	return false, nil
}

func (m *mockTokenService) PurgeExpired(ctx context.Context) (int64, error) {
	if m.purgeExpiredFn != nil {
		return m.purgeExpiredFn(ctx)
	}
	return 0, nil
}

type mockExpenseService struct {
	createExpenseFn   func(userID string, in services.ExpenseInput) (*models.Expense, error)
	getUserExpensesFn func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error)
	deleteExpenseFn   func(userID, expenseID string) error
}

func (m *mockExpenseService) CreateExpense(userID string, in services.ExpenseInput) (*models.Expense, error) {
	if m.createExpenseFn != nil {
		return m.createExpenseFn(userID, in)
	}
	return &models.Expense{}, nil
}

func (m *mockExpenseService) GetUserExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	if m.getUserExpensesFn != nil {
		return m.getUserExpensesFn(userID, page)
	}
	result := pagination.NewPageResponse[models.Expense](nil, pagination.PageRequest{}.Normalize(), 0)
	return &result, nil
}

func (m *mockExpenseService) DeleteExpense(userID, expenseID string) error {
	if m.deleteExpenseFn != nil {
		return m.deleteExpenseFn(userID, expenseID)
	}
	return nil
}

type mockAssetService struct {
	createAssetFn   func(userID string, in services.AssetInput) (*models.Asset, error)
	getUserAssetsFn func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error)
	deleteAssetFn   func(userID, assetID string) error
}

func (m *mockAssetService) CreateAsset(userID string, in services.AssetInput) (*models.Asset, error) {
	if m.createAssetFn != nil {
		return m.createAssetFn(userID, in)
	}
	return &models.Asset{}, nil
}

func (m *mockAssetService) GetUserAssets(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Asset], error) {
	if m.getUserAssetsFn != nil {
		return m.getUserAssetsFn(userID, page)
	}
	result := pagination.NewPageResponse[models.Asset](nil, pagination.PageRequest{}.Normalize(), 0)
	return &result, nil
}

func (m *mockAssetService) DeleteAsset(userID, assetID string) error {
	if m.deleteAssetFn != nil {
		return m.deleteAssetFn(userID, assetID)
	}
	return nil
}

type mockLiabilityService struct {
	createLiabilityFn    func(userID string, in services.LiabilityInput) (*models.Liability, error)
	getUserLiabilitiesFn func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Liability], error)
	deleteLiabilityFn    func(userID, liabilityID string) error
}

func (m *mockLiabilityService) CreateLiability(userID string, in services.LiabilityInput) (*models.Liability, error) {
	if m.createLiabilityFn != nil {
		return m.createLiabilityFn(userID, in)
	}
	return &models.Liability{}, nil
}

func (m *mockLiabilityService) GetUserLiabilities(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Liability], error) {
	if m.getUserLiabilitiesFn != nil {
		return m.getUserLiabilitiesFn(userID, page)
	}
	result := pagination.NewPageResponse[models.Liability](nil, pagination.PageRequest{}.Normalize(), 0)
	return &result, nil
}

func (m *mockLiabilityService) DeleteLiability(userID, liabilityID string) error {
	if m.deleteLiabilityFn != nil {
		return m.deleteLiabilityFn(userID, liabilityID)
	}
	return nil
}

type mockGoalService struct {
	createGoalFn   func(userID string, in services.GoalInput) (*models.Goal, error)
	getUserGoalsFn func(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error)
	deleteGoalFn   func(userID, goalID string) error
}

func (m *mockGoalService) CreateGoal(userID string, in services.GoalInput) (*models.Goal, error) {
	if m.createGoalFn != nil {
		return m.createGoalFn(userID, in)
	}
	return &models.Goal{}, nil
}

func (m *mockGoalService) GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error) {
	if m.getUserGoalsFn != nil {
		return m.getUserGoalsFn(userID, page)
	}
	result := pagination.NewPageResponse[models.Goal](nil, pagination.PageRequest{}.Normalize(), 0)
	return &result, nil
}

func (m *mockGoalService) DeleteGoal(userID, goalID string) error {
	if m.deleteGoalFn != nil {
		return m.deleteGoalFn(userID, goalID)
	}
	return nil
}

type mockHealthService struct {
	getSnapshotFn  func(userID string) (*engine.Snapshot, error)
	getDashboardFn func(userID string) (*services.Dashboard, error)
	getReportFn    func(userID string) (*services.Report, error)
}

func (m *mockHealthService) GetSnapshot(userID string) (*engine.Snapshot, error) {
	if m.getSnapshotFn != nil {
		return m.getSnapshotFn(userID)
	}
	return &engine.Snapshot{}, nil
}

func (m *mockHealthService) GetDashboard(userID string) (*services.Dashboard, error) {
	if m.getDashboardFn != nil {
		return m.getDashboardFn(userID)
	}
	return &services.Dashboard{}, nil
}

func (m *mockHealthService) GetReport(userID string) (*services.Report, error) {
	if m.getReportFn != nil {
		return m.getReportFn(userID)
	}
	return &services.Report{Dashboard: &services.Dashboard{}}, nil
}

type mockExportService struct {
	writeWorkbookFn func(userID string, w io.Writer) error
}

func (m *mockExportService) WriteWorkbook(userID string, w io.Writer) error {
	if m.writeWorkbookFn != nil {
		return m.writeWorkbookFn(userID, w)
	}
	return nil
}

type auditEntry struct {
	userID, action, resourceType, resourceID string
}

type mockAuditService struct {
	entries []auditEntry
}

func (m *mockAuditService) Log(userID, action, resourceType, resourceID, _ string, _ map[string]interface{}) {
	m.entries = append(m.entries, auditEntry{userID, action, resourceType, resourceID})
}
