package db

import (
	expensesdomain "finance-flow/internal/domain/expenses"
	"gorm.io/gorm"
)

// Migrate creates or updates the schema on whichever dialect is
// configured. The budgets table is part of the stored schema even
// though no endpoint serves it yet.
func Migrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&expensesdomain.Expense{},
		&expensesdomain.Category{},
		&expensesdomain.Budget{},
	)
}
