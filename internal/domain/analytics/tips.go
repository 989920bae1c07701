package analytics

import (
	"fmt"
	"time"
)

const (
	TipKindWarning = "warning"
	TipKindSuccess = "success"
	TipKindTip     = "tip"
	TipKindInfo    = "info"
)

const (
	maxTips = 6

	spendingIncreaseThreshold = 20.0
	spendingDecreaseThreshold = -10.0
	topCategoryShareThreshold = 40.0
	weekendShareThreshold     = 60.0
	highDailyAverageThreshold = 100.0
)

func buildTips(insights Insights, byCategory []CategoryTotal, weekendPercent float64) []Tip {
	tips := make([]Tip, 0, maxTips)

	switch {
	case insights.MonthOverMonthChange > spendingIncreaseThreshold:
		tips = append(tips, Tip{
			Kind:        TipKindWarning,
			Title:       "High Spending Alert",
			Description: fmt.Sprintf("Your spending increased by %.1f%% this month compared to last month.", insights.MonthOverMonthChange),
			Action:      "Review your top spending categories and look for areas to cut back.",
		})
	case insights.MonthOverMonthChange < spendingDecreaseThreshold:
		tips = append(tips, Tip{
			Kind:        TipKindSuccess,
			Title:       "Great Job Saving",
			Description: fmt.Sprintf("You've reduced your spending by %.1f%% this month.", -insights.MonthOverMonthChange),
			Action:      "Consider putting these savings into an emergency fund.",
		})
	}

	if insights.TopCategory != nil {
		if share, ok := topCategoryShare(byCategory); ok && share > topCategoryShareThreshold {
			tips = append(tips, Tip{
				Kind:        TipKindTip,
				Title:       "Category Concentration",
				Description: fmt.Sprintf("%.1f%% of your spending is on %s.", share, byCategory[0].Category),
				Action:      "Consider setting a monthly budget for this category.",
			})
		}
	}

	if weekendPercent > weekendShareThreshold {
		tips = append(tips, Tip{
			Kind:        TipKindTip,
			Title:       "Weekend Spending Pattern",
			Description: fmt.Sprintf("%.1f%% of your recent spending happens on weekends.", weekendPercent),
			Action:      "Plan weekend activities with a set budget to avoid overspending on leisure.",
		})
	}

	if insights.AverageDailySpending > highDailyAverageThreshold {
		tips = append(tips, Tip{
			Kind:        TipKindWarning,
			Title:       "High Daily Average",
			Description: fmt.Sprintf("Your average daily spending is %.2f.", insights.AverageDailySpending),
			Action:      "Set a daily spending limit and track progress against it.",
		})
	}

	if len(tips) > maxTips {
		tips = tips[:maxTips]
	}

	return tips
}

// topCategoryShare is the leading bucket's share of all window spend,
// in percent. byCategory is already sorted descending by total.
func topCategoryShare(byCategory []CategoryTotal) (float64, bool) {
	var total float64
	for _, row := range byCategory {
		total += row.Total
	}
	if len(byCategory) == 0 || total == 0 {
		return 0, false
	}
	return byCategory[0].Total / total * 100, true
}

// weekendShare is the percentage of rolling-window spend falling on
// Saturday or Sunday.
func weekendShare(expenses []Expense, rates RateTable, now time.Time, windowDays int) float64 {
	var total, weekend float64
	for _, expense := range expenses {
		if !inRollingWindow(expense.Date, now, windowDays) {
			continue
		}
		amount := rates.ToReference(expense.Amount, expense.Currency)
		total += amount
		if weekday := expense.Date.Weekday(); weekday == time.Saturday || weekday == time.Sunday {
			weekend += amount
		}
	}
	if total == 0 {
		return 0
	}
	return weekend / total * 100
}
