package analytics

import "time"

// Expense is the analytics projection of a stored expense row: just
// the fields the aggregators need.
type Expense struct {
	Category string
	Amount   float64
	Currency string
	Date     time.Time
}

// CategoryTotal is one spending bucket within the rolling window.
// Totals and averages are in the reference currency.
type CategoryTotal struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
	Count    int64   `json:"count"`
	Average  float64 `json:"average"`
}

// TrendPoint is the spend of one calendar day within the rolling
// window. Days without expenses produce no point.
type TrendPoint struct {
	Day   string  `json:"day"`
	Total float64 `json:"total"`
}

// Insights summarizes spending across calendar months and the rolling
// window. Field names mirror the public API payload.
type Insights struct {
	CurrentMonthSpending  float64 `json:"currentMonthSpending"`
	PreviousMonthSpending float64 `json:"previousMonthSpending"`
	TopCategory           *string `json:"topCategory"`
	TopCategoryAmount     float64 `json:"topCategoryAmount"`
	AverageDailySpending  float64 `json:"averageDailySpending"`
	MonthOverMonthChange  float64 `json:"monthOverMonthChange"`
}

// Tip is a rule-based recommendation derived from the aggregates.
type Tip struct {
	Kind        string `json:"kind"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Action      string `json:"action"`
}
