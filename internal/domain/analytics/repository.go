package analytics

import (
	"context"
	"time"
)

type Repository interface {
	// FetchExpenses returns the analytics projection of the user's
	// expenses, optionally restricted to accounting dates >= from.
	// Implementations return an empty (non-nil) slice when the user
	// has no matching rows.
	FetchExpenses(ctx context.Context, userID string, from *time.Time) ([]Expense, error)
	// ListCategoryNames returns the user's category names in the
	// order the category listing uses.
	ListCategoryNames(ctx context.Context, userID string) ([]string, error)
}
