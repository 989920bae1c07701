package analytics

import (
	"errors"
	"testing"
	"time"
)

var testNow = time.Date(2026, 3, 15, 12, 0, 0, 0, time.UTC)

func day(year int, month time.Month, dayOfMonth int) time.Time {
	return time.Date(year, month, dayOfMonth, 0, 0, 0, 0, time.UTC)
}

func TestAggregateByCategoryConvertsAndSeeds(t *testing.T) {
	expenses := []Expense{
		{Category: "Food", Amount: 100, Currency: "INR", Date: day(2026, 3, 10)},
		{Category: "Food", Amount: 1, Currency: "USD", Date: day(2026, 3, 12)},
		{Category: "Travel", Amount: 2, Currency: "EUR", Date: day(2026, 3, 1)},
		{Category: "Misc", Amount: 50, Currency: "XYZ", Date: day(2026, 3, 14)},
		{Category: "Food", Amount: 999, Currency: "INR", Date: day(2026, 1, 1)},
	}
	known := []string{"Food", "Shopping", "Food"}

	result, err := AggregateByCategory(expenses, known, DefaultRates(), testNow, 30)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 4 {
		t.Fatalf("expected 4 buckets, got %d: %+v", len(result), result)
	}

	if result[0].Category != "Food" || result[0].Total != 183 || result[0].Count != 2 {
		t.Fatalf("unexpected first bucket: %+v", result[0])
	}
	if result[0].Average != 91.5 {
		t.Fatalf("expected average 91.5, got %v", result[0].Average)
	}
	if result[1].Category != "Travel" || result[1].Total != 180 {
		t.Fatalf("unexpected second bucket: %+v", result[1])
	}
	if result[2].Category != "Misc" || result[2].Total != 50 {
		t.Fatalf("expected unknown-currency amount kept as-is, got %+v", result[2])
	}
	if result[3].Category != "Shopping" || result[3].Total != 0 || result[3].Count != 0 || result[3].Average != 0 {
		t.Fatalf("expected zero-seeded Shopping bucket, got %+v", result[3])
	}
}

func TestAggregateByCategoryEmptyExpenses(t *testing.T) {
	result, err := AggregateByCategory([]Expense{}, []string{"Food", "Travel"}, DefaultRates(), testNow, 30)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(result) != 2 {
		t.Fatalf("expected 2 zero buckets, got %d", len(result))
	}
	for _, row := range result {
		if row.Total != 0 || row.Count != 0 || row.Average != 0 {
			t.Fatalf("expected zero bucket, got %+v", row)
		}
	}
}

func TestAggregateByCategoryNilExpenses(t *testing.T) {
	if _, err := AggregateByCategory(nil, nil, DefaultRates(), testNow, 30); !errors.Is(err, ErrNilExpenses) {
		t.Fatalf("expected ErrNilExpenses, got %v", err)
	}
	if _, err := AggregateByDay(nil, DefaultRates(), testNow, 30); !errors.Is(err, ErrNilExpenses) {
		t.Fatalf("expected ErrNilExpenses, got %v", err)
	}
	if _, err := ComputeInsights(nil, DefaultRates(), testNow, 30); !errors.Is(err, ErrNilExpenses) {
		t.Fatalf("expected ErrNilExpenses, got %v", err)
	}
}

func TestAggregateByDaySortsAscending(t *testing.T) {
	expenses := []Expense{
		{Category: "Food", Amount: 60, Currency: "INR", Date: day(2026, 3, 12)},
		{Category: "Food", Amount: 1, Currency: "USD", Date: day(2026, 3, 5)},
		{Category: "Travel", Amount: 40, Currency: "INR", Date: day(2026, 3, 12)},
		{Category: "Food", Amount: 500, Currency: "INR", Date: day(2026, 1, 1)},
	}

	points, err := AggregateByDay(expenses, DefaultRates(), testNow, 30)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 points, got %d: %+v", len(points), points)
	}
	if points[0].Day != "2026-03-05" || points[0].Total != 83 {
		t.Fatalf("unexpected first point: %+v", points[0])
	}
	if points[1].Day != "2026-03-12" || points[1].Total != 100 {
		t.Fatalf("unexpected second point: %+v", points[1])
	}
}

func TestComputeInsights(t *testing.T) {
	expenses := []Expense{
		{Category: "Food", Amount: 100, Currency: "INR", Date: day(2026, 3, 10)},
		{Category: "Food", Amount: 1, Currency: "USD", Date: day(2026, 3, 12)},
		{Category: "Travel", Amount: 80, Currency: "INR", Date: day(2026, 3, 5)},
		{Category: "Food", Amount: 100, Currency: "INR", Date: day(2026, 2, 20)},
		{Category: "Food", Amount: 50, Currency: "INR", Date: day(2026, 1, 10)},
	}

	insights, err := ComputeInsights(expenses, DefaultRates(), testNow, 30)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if insights.CurrentMonthSpending != 263 {
		t.Fatalf("expected current month 263, got %v", insights.CurrentMonthSpending)
	}
	if insights.PreviousMonthSpending != 100 {
		t.Fatalf("expected previous month 100, got %v", insights.PreviousMonthSpending)
	}
	if insights.TopCategory == nil || *insights.TopCategory != "Food" {
		t.Fatalf("expected top category Food, got %v", insights.TopCategory)
	}
	if insights.TopCategoryAmount != 183 {
		t.Fatalf("expected top category amount 183, got %v", insights.TopCategoryAmount)
	}
	// Days with spend inside the window: 03-10, 03-12, 03-05, 02-20.
	if insights.AverageDailySpending != 363.0/4 {
		t.Fatalf("expected average daily %v, got %v", 363.0/4, insights.AverageDailySpending)
	}
	if insights.MonthOverMonthChange != 163 {
		t.Fatalf("expected month-over-month 163, got %v", insights.MonthOverMonthChange)
	}
}

func TestComputeInsightsZeroPreviousMonth(t *testing.T) {
	expenses := []Expense{
		{Category: "Food", Amount: 200, Currency: "INR", Date: day(2026, 3, 10)},
	}

	insights, err := ComputeInsights(expenses, DefaultRates(), testNow, 30)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if insights.MonthOverMonthChange != 0 {
		t.Fatalf("expected 0%% change with empty previous month, got %v", insights.MonthOverMonthChange)
	}
}

func TestComputeInsightsEmptyHistory(t *testing.T) {
	insights, err := ComputeInsights([]Expense{}, DefaultRates(), testNow, 30)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if insights.CurrentMonthSpending != 0 || insights.PreviousMonthSpending != 0 {
		t.Fatalf("expected zero totals, got %+v", insights)
	}
	if insights.TopCategory != nil {
		t.Fatalf("expected nil top category, got %v", *insights.TopCategory)
	}
	if insights.AverageDailySpending != 0 || insights.MonthOverMonthChange != 0 {
		t.Fatalf("expected zero derived values, got %+v", insights)
	}
}

func TestComputeInsightsTopCategoryTieKeepsFirstSeen(t *testing.T) {
	expenses := []Expense{
		{Category: "Alpha", Amount: 50, Currency: "INR", Date: day(2026, 3, 10)},
		{Category: "Beta", Amount: 50, Currency: "INR", Date: day(2026, 3, 11)},
	}

	insights, err := ComputeInsights(expenses, DefaultRates(), testNow, 30)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if insights.TopCategory == nil || *insights.TopCategory != "Alpha" {
		t.Fatalf("expected tie to keep first-seen category, got %v", insights.TopCategory)
	}
}
