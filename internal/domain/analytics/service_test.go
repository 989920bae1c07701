package analytics

import (
	"context"
	"testing"
	"time"
)

type fakeAnalyticsRepo struct {
	expenses      []Expense
	categoryNames []string

	fetchCalls int
	lastFrom   *time.Time
}

func (f *fakeAnalyticsRepo) FetchExpenses(ctx context.Context, userID string, from *time.Time) ([]Expense, error) {
	f.fetchCalls++
	f.lastFrom = from
	if f.expenses == nil {
		return []Expense{}, nil
	}
	return f.expenses, nil
}

func (f *fakeAnalyticsRepo) ListCategoryNames(ctx context.Context, userID string) ([]string, error) {
	if f.categoryNames == nil {
		return []string{}, nil
	}
	return f.categoryNames, nil
}

func TestSpendingByCategorySeedsOwnedCategories(t *testing.T) {
	repo := &fakeAnalyticsRepo{categoryNames: []string{"Food & Dining", "Transportation"}}
	svc := NewService(repo)
	svc.now = func() time.Time { return testNow }

	rows, err := svc.SpendingByCategory(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("expected 2 zero buckets, got %d: %+v", len(rows), rows)
	}
	for _, row := range rows {
		if row.Total != 0 || row.Count != 0 {
			t.Fatalf("expected zero bucket, got %+v", row)
		}
	}
}

func TestSpendingByCategoryFetchesWindowedHistory(t *testing.T) {
	repo := &fakeAnalyticsRepo{}
	svc := NewServiceWithConfig(repo, Config{WindowDays: 30})
	svc.now = func() time.Time { return testNow }

	if _, err := svc.SpendingByCategory(context.Background(), "user-1"); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.lastFrom == nil {
		t.Fatal("expected a windowed fetch with a lower bound")
	}
	want := time.Date(2026, 2, 13, 0, 0, 0, 0, time.UTC)
	if !repo.lastFrom.Equal(want) {
		t.Fatalf("expected fetch from %s, got %s", want, repo.lastFrom)
	}
}

func TestSpendingTrends(t *testing.T) {
	repo := &fakeAnalyticsRepo{expenses: []Expense{
		{Category: "Food", Amount: 1, Currency: "USD", Date: day(2026, 3, 5)},
		{Category: "Food", Amount: 100, Currency: "INR", Date: day(2026, 3, 12)},
	}}
	svc := NewService(repo)
	svc.now = func() time.Time { return testNow }

	points, err := svc.SpendingTrends(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d", len(points))
	}
	if points[0].Day != "2026-03-05" || points[0].Total != 83 {
		t.Fatalf("unexpected first point: %+v", points[0])
	}
}

func TestInsightsFetchesFullHistory(t *testing.T) {
	repo := &fakeAnalyticsRepo{expenses: []Expense{
		{Category: "Food", Amount: 150, Currency: "INR", Date: day(2026, 3, 10)},
		{Category: "Food", Amount: 100, Currency: "INR", Date: day(2026, 2, 1)},
	}}
	svc := NewService(repo)
	svc.now = func() time.Time { return testNow }

	insights, err := svc.Insights(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if repo.lastFrom != nil {
		t.Fatalf("expected unbounded fetch for month totals, got from=%s", repo.lastFrom)
	}
	if insights.CurrentMonthSpending != 150 || insights.PreviousMonthSpending != 100 {
		t.Fatalf("unexpected month totals: %+v", insights)
	}
	if insights.MonthOverMonthChange != 50 {
		t.Fatalf("expected 50%% change, got %v", insights.MonthOverMonthChange)
	}
}

func TestTipsQuietMonthProducesNoTips(t *testing.T) {
	repo := &fakeAnalyticsRepo{expenses: []Expense{
		{Category: "Food", Amount: 30, Currency: "INR", Date: day(2026, 3, 10)},
		{Category: "Travel", Amount: 30, Currency: "INR", Date: day(2026, 3, 11)},
		{Category: "Shopping", Amount: 30, Currency: "INR", Date: day(2026, 3, 12)},
		{Category: "Food", Amount: 85, Currency: "INR", Date: day(2026, 2, 10)},
	}}
	svc := NewService(repo)
	svc.now = func() time.Time { return testNow }

	tips, err := svc.Tips(context.Background(), "user-1")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(tips) != 0 {
		t.Fatalf("expected no tips, got %+v", tips)
	}
}
