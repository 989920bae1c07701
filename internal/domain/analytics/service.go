package analytics

import (
	"context"
	"time"
)

const defaultWindowDays = 30

type Config struct {
	// WindowDays is the length of the rolling trailing window.
	WindowDays int
	// Rates overrides the fixed exchange-rate table; nil keeps the
	// defaults.
	Rates RateTable
}

type Service struct {
	repo       Repository
	rates      RateTable
	windowDays int
	now        func() time.Time
}

func NewService(repo Repository) *Service {
	return NewServiceWithConfig(repo, Config{})
}

func NewServiceWithConfig(repo Repository, cfg Config) *Service {
	if cfg.WindowDays <= 0 {
		cfg.WindowDays = defaultWindowDays
	}
	if cfg.Rates == nil {
		cfg.Rates = DefaultRates()
	}

	return &Service{
		repo:       repo,
		rates:      cfg.Rates,
		windowDays: cfg.WindowDays,
		now:        time.Now,
	}
}

// SpendingByCategory returns the rolling-window category breakdown,
// zero-seeded with every category the user currently owns.
func (s *Service) SpendingByCategory(ctx context.Context, userID string) ([]CategoryTotal, error) {
	now := s.now().UTC()

	names, err := s.repo.ListCategoryNames(ctx, userID)
	if err != nil {
		return nil, err
	}

	expenses, err := s.fetchWindow(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	return AggregateByCategory(expenses, names, s.rates, now, s.windowDays)
}

// SpendingTrends returns the rolling-window daily spend series.
func (s *Service) SpendingTrends(ctx context.Context, userID string) ([]TrendPoint, error) {
	now := s.now().UTC()

	expenses, err := s.fetchWindow(ctx, userID, now)
	if err != nil {
		return nil, err
	}

	return AggregateByDay(expenses, s.rates, now, s.windowDays)
}

// Insights aggregates the user's full history: month totals are
// calendar-month bounded, so the fetch cannot be window-limited.
func (s *Service) Insights(ctx context.Context, userID string) (Insights, error) {
	now := s.now().UTC()

	expenses, err := s.repo.FetchExpenses(ctx, userID, nil)
	if err != nil {
		return Insights{}, err
	}

	return ComputeInsights(expenses, s.rates, now, s.windowDays)
}

// Tips derives rule-based recommendations from the same aggregates
// the insights and category endpoints expose.
func (s *Service) Tips(ctx context.Context, userID string) ([]Tip, error) {
	now := s.now().UTC()

	expenses, err := s.repo.FetchExpenses(ctx, userID, nil)
	if err != nil {
		return nil, err
	}

	insights, err := ComputeInsights(expenses, s.rates, now, s.windowDays)
	if err != nil {
		return nil, err
	}

	byCategory, err := AggregateByCategory(expenses, nil, s.rates, now, s.windowDays)
	if err != nil {
		return nil, err
	}

	return buildTips(insights, byCategory, weekendShare(expenses, s.rates, now, s.windowDays)), nil
}

func (s *Service) fetchWindow(ctx context.Context, userID string, now time.Time) ([]Expense, error) {
	// The pure aggregators re-apply the window rule; the fetch bound
	// just keeps the query from reading unbounded history.
	from := dayOf(now).AddDate(0, 0, -s.windowDays)
	return s.repo.FetchExpenses(ctx, userID, &from)
}
