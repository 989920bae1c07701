package expenses

import "context"

type Repository interface {
	ListExpenses(ctx context.Context, userID string, filter ListFilter) ([]Expense, error)
	CreateExpense(ctx context.Context, expense *Expense) error
	DeleteExpense(ctx context.Context, userID string, expenseID int64) (bool, error)
	ListCategories(ctx context.Context, userID string) ([]Category, error)
	CreateCategory(ctx context.Context, category *Category) error
	CountCategories(ctx context.Context, userID string) (int64, error)
	// CreateCategoriesIgnoreConflicts inserts the given categories,
	// silently skipping rows that collide on (user_id, name).
	CreateCategoriesIgnoreConflicts(ctx context.Context, categories []Category) error
}
