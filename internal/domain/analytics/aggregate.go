package analytics

import (
	"sort"
	"time"
)

// AggregateByCategory groups expenses within the rolling window by
// their literal category name, in the reference currency. Every name
// in knownCategories gets a bucket even when nothing was spent on it;
// names not in the list get a bucket on first sight. The result is
// sorted descending by total, ties keeping first-seen order.
func AggregateByCategory(expenses []Expense, knownCategories []string, rates RateTable, now time.Time, windowDays int) ([]CategoryTotal, error) {
	if expenses == nil {
		return nil, ErrNilExpenses
	}

	type bucket struct {
		total float64
		count int64
	}

	order := make([]string, 0, len(knownCategories))
	buckets := make(map[string]*bucket, len(knownCategories))
	for _, name := range knownCategories {
		if _, ok := buckets[name]; ok {
			continue
		}
		buckets[name] = &bucket{}
		order = append(order, name)
	}

	for _, expense := range expenses {
		if !inRollingWindow(expense.Date, now, windowDays) {
			continue
		}
		b, ok := buckets[expense.Category]
		if !ok {
			b = &bucket{}
			buckets[expense.Category] = b
			order = append(order, expense.Category)
		}
		b.total += rates.ToReference(expense.Amount, expense.Currency)
		b.count++
	}

	result := make([]CategoryTotal, 0, len(order))
	for _, name := range order {
		b := buckets[name]
		average := 0.0
		if b.count > 0 {
			average = b.total / float64(b.count)
		}
		result = append(result, CategoryTotal{
			Category: name,
			Total:    b.total,
			Count:    b.count,
			Average:  average,
		})
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].Total > result[j].Total
	})

	return result, nil
}

// AggregateByDay sums normalized spend per calendar day within the
// rolling window, sorted ascending by day. Days without expenses are
// absent rather than zero-filled.
func AggregateByDay(expenses []Expense, rates RateTable, now time.Time, windowDays int) ([]TrendPoint, error) {
	if expenses == nil {
		return nil, ErrNilExpenses
	}

	totals := make(map[string]float64)
	for _, expense := range expenses {
		if !inRollingWindow(expense.Date, now, windowDays) {
			continue
		}
		totals[dayOf(expense.Date).Format(dayFormat)] += rates.ToReference(expense.Amount, expense.Currency)
	}

	points := make([]TrendPoint, 0, len(totals))
	for day, total := range totals {
		points = append(points, TrendPoint{Day: day, Total: total})
	}

	// Input order is not guaranteed by the store.
	sort.Slice(points, func(i, j int) bool {
		return points[i].Day < points[j].Day
	})

	return points, nil
}

// ComputeInsights makes a single pass over the user's full expense
// history. Month totals use calendar-month boundaries; the per-day
// accumulator behind averageDailySpending uses the rolling window.
func ComputeInsights(expenses []Expense, rates RateTable, now time.Time, windowDays int) (Insights, error) {
	if expenses == nil {
		return Insights{}, ErrNilExpenses
	}

	thisMonth := monthKey(now)
	prevMonth := previousMonthKey(now)

	var currentMonthTotal, previousMonthTotal float64
	categoryTotals := make(map[string]float64)
	categoryOrder := make([]string, 0)
	dailyTotals := make(map[string]float64)

	for _, expense := range expenses {
		amount := rates.ToReference(expense.Amount, expense.Currency)

		switch monthKey(expense.Date) {
		case thisMonth:
			currentMonthTotal += amount
			if _, ok := categoryTotals[expense.Category]; !ok {
				categoryOrder = append(categoryOrder, expense.Category)
			}
			categoryTotals[expense.Category] += amount
		case prevMonth:
			previousMonthTotal += amount
		}

		if inRollingWindow(expense.Date, now, windowDays) {
			dailyTotals[dayOf(expense.Date).Format(dayFormat)] += amount
		}
	}

	// Strict-max comparison in first-seen order keeps the tie-break
	// deterministic: the earliest category to reach the maximum wins.
	var topCategory *string
	topCategoryAmount := 0.0
	for _, name := range categoryOrder {
		if total := categoryTotals[name]; total > topCategoryAmount {
			category := name
			topCategory = &category
			topCategoryAmount = total
		}
	}

	// Mean over days that actually had spend, not total/windowDays.
	averageDailySpending := 0.0
	if len(dailyTotals) > 0 {
		var sum float64
		for _, total := range dailyTotals {
			sum += total
		}
		averageDailySpending = sum / float64(len(dailyTotals))
	}

	// A zero previous month reports 0% change even when the current
	// month is nonzero; clients treat that as "no comparison available".
	monthOverMonthChange := 0.0
	if previousMonthTotal > 0 {
		monthOverMonthChange = (currentMonthTotal - previousMonthTotal) / previousMonthTotal * 100
	}

	return Insights{
		CurrentMonthSpending:  currentMonthTotal,
		PreviousMonthSpending: previousMonthTotal,
		TopCategory:           topCategory,
		TopCategoryAmount:     topCategoryAmount,
		AverageDailySpending:  averageDailySpending,
		MonthOverMonthChange:  monthOverMonthChange,
	}, nil
}
