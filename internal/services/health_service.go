package services

import (
	"time"

	"gorm.io/gorm"

	"finhealth/internal/engine"
	"finhealth/internal/logger"
	"finhealth/internal/models"
)

// dashboardExpenseLimit caps the expenses listed on the dashboard.
const dashboardExpenseLimit = 50

// UserProfile is the profile block of the dashboard.
type UserProfile struct {
	ID             string  `json:"id"`
	Username       string  `json:"username"`
	Age            int     `json:"age"`
	Salary         float64 `json:"salary"`
	Rent           float64 `json:"rent"`
	CurrentSavings float64 `json:"current_savings"`
	SavingGoal     string  `json:"saving_goal"`
	HasOnboarded   bool    `json:"has_onboarded"`
}

// NewUserProfile projects a user onto its public profile.
func NewUserProfile(u *models.User) UserProfile {
	return UserProfile{
		ID:             u.ID,
		Username:       u.Username,
		Age:            u.Age,
		Salary:         u.Salary,
		Rent:           u.Rent,
		CurrentSavings: u.CurrentSavings,
		SavingGoal:     u.SavingGoal,
		HasOnboarded:   u.HasOnboarded(),
	}
}

// GoalView is a stored goal with its derived feasibility inline.
type GoalView struct {
	models.Goal
	Status          models.GoalStatus `json:"status"`
	RequiredMonthly float64           `json:"required_monthly"`
	MonthsLeft      int               `json:"months_left"`
}

// DashboardLists holds the user's records as shown on the dashboard.
type DashboardLists struct {
	Expenses    []models.Expense   `json:"expenses"`
	Assets      []models.Asset     `json:"assets"`
	Liabilities []models.Liability `json:"liabilities"`
	Goals       []GoalView         `json:"goals"`
}

// Dashboard is the single read the client renders from.
type Dashboard struct {
	UserProfile UserProfile      `json:"user_profile"`
	Health      *engine.Snapshot `json:"health"`
	Lists       DashboardLists   `json:"lists"`
}

// Report is a dashboard together with the month-by-month debt schedule it
// was computed alongside.
type Report struct {
	*Dashboard
	DebtPlan engine.DebtPlan
}

// records is everything loaded for one user.
type records struct {
	user        *models.User
	expenses    []models.Expense
	assets      []models.Asset
	liabilities []models.Liability
	goals       []models.Goal
}

func (r records) input() engine.Input {
	return engine.Input{
		Profile: engine.Profile{
			Salary:         r.user.Salary,
			Rent:           r.user.Rent,
			CurrentSavings: r.user.CurrentSavings,
			Age:            r.user.Age,
		},
		Expenses:    r.expenses,
		Assets:      r.assets,
		Liabilities: r.liabilities,
		Goals:       r.goals,
	}
}

// healthService loads a user's records and runs the engine over them.
type healthService struct {
	db     *gorm.DB
	engine *engine.Engine
	cache  *SnapshotCache
	now    func() time.Time
}

// NewHealthService creates a new HealthServicer.
func NewHealthService(db *gorm.DB, eng *engine.Engine, cache *SnapshotCache) HealthServicer {
	return &healthService{db: db, engine: eng, cache: cache, now: time.Now}
}

// load reads the engine input: this month's expenses plus all other records,
// assets and liabilities oldest first.
func (s *healthService) load(user *models.User, now time.Time) (records, error) {
	r := records{user: user}
	start, end := monthBounds(now)

	var err error
	if r.expenses, err = allOwned[models.Expense](s.db, user.ID, "date DESC, id DESC", func(db *gorm.DB) *gorm.DB {
		return db.Where("date >= ? AND date < ?", start, end)
	}); err != nil {
		return r, err
	}
	// Creation order breaks avalanche ties between equal rates.
	if r.assets, err = allOwned[models.Asset](s.db, user.ID, "created_at ASC, id ASC"); err != nil {
		return r, err
	}
	if r.liabilities, err = allOwned[models.Liability](s.db, user.ID, "created_at ASC, id ASC"); err != nil {
		return r, err
	}
	if r.goals, err = allOwned[models.Goal](s.db, user.ID, "target_date ASC, id ASC"); err != nil {
		return r, err
	}
	return r, nil
}

// snapshot serves from cache when the user's data version still matches.
func (s *healthService) snapshot(user *models.User, r *records) (*engine.Snapshot, error) {
	if snap, ok := s.cache.Get(user.ID, user.DataVersion); ok {
		return snap, nil
	}

	now := s.now()
	if r == nil {
		loaded, err := s.load(user, now)
		if err != nil {
			return nil, err
		}
		r = &loaded
	}

	snap, err := s.engine.Compute(r.input(), now)
	if err != nil {
		logger.Get().Errorw("health computation rejected stored records", "user_id", user.ID, "error", err)
		return nil, err
	}
	s.cache.Put(user.ID, user.DataVersion, snap)
	return snap, nil
}

// GetSnapshot returns the user's current health snapshot.
func (s *healthService) GetSnapshot(userID string) (*engine.Snapshot, error) {
	user, err := findUser(s.db, userID)
	if err != nil {
		return nil, err
	}
	return s.snapshot(user, nil)
}

// GetDashboard returns the profile, the snapshot and the record lists with
// goal feasibility inline.
func (s *healthService) GetDashboard(userID string) (*Dashboard, error) {
	user, err := findUser(s.db, userID)
	if err != nil {
		return nil, err
	}
	r, err := s.load(user, s.now())
	if err != nil {
		return nil, err
	}
	snap, err := s.snapshot(user, &r)
	if err != nil {
		return nil, err
	}
	return s.dashboard(user, r, snap)
}

// dashboard assembles the dashboard payload around an already computed snapshot.
func (s *healthService) dashboard(user *models.User, r records, snap *engine.Snapshot) (*Dashboard, error) {
	recent, err := allOwned[models.Expense](s.db, user.ID, "date DESC, id DESC", func(db *gorm.DB) *gorm.DB {
		return db.Limit(dashboardExpenseLimit)
	})
	if err != nil {
		return nil, err
	}

	analyzed := make(map[string]engine.GoalAnalysis, len(snap.AnalyzedGoals))
	for _, g := range snap.AnalyzedGoals {
		analyzed[g.ID] = g
	}
	goals := make([]GoalView, 0, len(r.goals))
	for _, g := range r.goals {
		a := analyzed[g.ID]
		goals = append(goals, GoalView{
			Goal:            g,
			Status:          a.Status,
			RequiredMonthly: a.RequiredMonthly,
			MonthsLeft:      a.MonthsLeft,
		})
	}

	return &Dashboard{
		UserProfile: NewUserProfile(user),
		Health:      snap,
		Lists: DashboardLists{
			Expenses:    nonNil(recent),
			Assets:      nonNil(r.assets),
			Liabilities: nonNil(r.liabilities),
			Goals:       goals,
		},
	}, nil
}

// GetReport computes the dashboard and the debt schedule from a single load
// at a single instant, bypassing the cache read.
func (s *healthService) GetReport(userID string) (*Report, error) {
	user, err := findUser(s.db, userID)
	if err != nil {
		return nil, err
	}
	now := s.now()
	r, err := s.load(user, now)
	if err != nil {
		return nil, err
	}
	in := r.input()

	snap, err := s.engine.Compute(in, now)
	if err != nil {
		logger.Get().Errorw("health computation rejected stored records", "user_id", user.ID, "error", err)
		return nil, err
	}
	plan, err := s.engine.Plan(in, now)
	if err != nil {
		return nil, err
	}
	s.cache.Put(user.ID, user.DataVersion, snap)

	dash, err := s.dashboard(user, r, snap)
	if err != nil {
		return nil, err
	}
	return &Report{Dashboard: dash, DebtPlan: plan}, nil
}

func nonNil[T any](items []T) []T {
	if items == nil {
		return []T{}
	}
	return items
}
