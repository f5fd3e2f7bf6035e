package services

import (
	"strings"
	"time"

	"gorm.io/gorm"

	apperrors "finhealth/internal/errors"
	"finhealth/internal/models"
	"finhealth/internal/pagination"
)

// goalService handles goal records.
type goalService struct {
	recordStore
	now func() time.Time
}

// NewGoalService creates a new GoalServicer.
func NewGoalService(db *gorm.DB, cache *SnapshotCache) GoalServicer {
	return &goalService{recordStore: recordStore{db: db, cache: cache}, now: time.Now}
}

// CreateGoal records a savings goal. A missing priority means Medium. The
// target date may be today but not earlier.
func (s *goalService) CreateGoal(userID string, in GoalInput) (*models.Goal, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "name is required")
	}
	if !(in.TargetAmount > 0) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target_amount must be positive")
	}
	if err := nonNegative("saved_amount", in.SavedAmount); err != nil {
		return nil, err
	}
	if in.TargetDate.IsZero() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target_date is required")
	}
	if truncateToDay(in.TargetDate).Before(truncateToDay(s.now())) {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "target_date must not be in the past")
	}
	if in.Priority == "" {
		in.Priority = models.GoalPriorityMedium
	}
	if !in.Priority.Valid() {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "unknown priority")
	}

	goal := &models.Goal{
		UserID:       userID,
		Name:         name,
		TargetAmount: in.TargetAmount,
		SavedAmount:  in.SavedAmount,
		TargetDate:   truncateToDay(in.TargetDate),
		Priority:     in.Priority,
	}
	if err := s.create(userID, goal); err != nil {
		return nil, err
	}
	return goal, nil
}

// GetUserGoals lists goals by target date.
func (s *goalService) GetUserGoals(userID string, page pagination.PageRequest) (*pagination.PageResponse[models.Goal], error) {
	return listOwned[models.Goal](s.db, userID, "target_date ASC, id ASC", page)
}

// DeleteGoal removes a goal owned by the user.
func (s *goalService) DeleteGoal(userID, goalID string) error {
	return s.remove(userID, goalID, &models.Goal{}, apperrors.ErrGoalNotFound)
}
