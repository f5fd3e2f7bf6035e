package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "finhealth/internal/errors"
	"finhealth/internal/models"
	"finhealth/internal/pagination"
)

// expenseService handles expense records.
type expenseService struct {
	recordStore
	now func() time.Time
}

// NewExpenseService creates a new ExpenseServicer.
func NewExpenseService(db *gorm.DB, cache *SnapshotCache) ExpenseServicer {
	return &expenseService{recordStore: recordStore{db: db, cache: cache}, now: time.Now}
}

// CreateExpense records an expense. A zero date means today and a missing
// category means Other.
func (s *expenseService) CreateExpense(userID string, in ExpenseInput) (*models.Expense, error) {
	title := strings.TrimSpace(in.Title)
	if title == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "title is required")
	}
	if !(in.Amount > 0) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "amount must be positive")
	}
	if in.Category == "" {
		in.Category = models.ExpenseCategoryOther
	}
	if !in.Category.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown category")
	}
	if in.Date.IsZero() {
		in.Date = s.now()
	}

	expense := &models.Expense{
		UserID:   userID,
		Title:    title,
		Amount:   in.Amount,
		Category: in.Category,
		Date:     truncateToDay(in.Date),
	}
	if err := s.create(userID, expense); err != nil {
		return nil, err
	}
	return expense, nil
}

// GetUserExpenses lists expenses, newest first.
func (s *expenseService) GetUserExpenses(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Expense], error) {
	return listOwned[models.Expense](s.db, userID, "date DESC, id DESC", page)
}

// DeleteExpense removes an expense owned by the user.
func (s *expenseService) DeleteExpense(userID, expenseID string) error {
	return s.remove(userID, expenseID, &models.Expense{}, apperrors.ErrExpenseNotFound)
}

// truncateToDay keeps the calendar date of t as UTC midnight. Stored dates
// are always UTC so range queries compare like with like.
func truncateToDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// monthBounds returns [first of t's month, first of the next month) in UTC.
func monthBounds(t time.Time) (time.Time, time.Time) {
	start := time.Date(t.Year(), t.Month(), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
