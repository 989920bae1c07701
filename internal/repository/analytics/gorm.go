package analytics

import (
	"context"
	"time"

	analyticsdomain "finance-flow/internal/domain/analytics"
	expensesdomain "finance-flow/internal/domain/expenses"
	"gorm.io/gorm"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) FetchExpenses(ctx context.Context, userID string, from *time.Time) ([]analyticsdomain.Expense, error) {
	query := r.db.WithContext(ctx).
		Model(&expensesdomain.Expense{}).
		Where("user_id = ?", userID)
	if from != nil {
		query = query.Where("date >= ?", *from)
	}

	var rows []struct {
		Category string
		Amount   float64
		Currency string
		Date     time.Time
	}
	if err := query.Select("category, amount, currency, date").Find(&rows).Error; err != nil {
		return nil, err
	}

	result := make([]analyticsdomain.Expense, 0, len(rows))
	for _, row := range rows {
		result = append(result, analyticsdomain.Expense{
			Category: row.Category,
			Amount:   row.Amount,
			Currency: row.Currency,
			Date:     row.Date,
		})
	}
	return result, nil
}

func (r *GormRepository) ListCategoryNames(ctx context.Context, userID string) ([]string, error) {
	names := make([]string, 0)
	if err := r.db.WithContext(ctx).
		Model(&expensesdomain.Category{}).
		Where("user_id = ?", userID).
		Order("name asc").
		Pluck("name", &names).Error; err != nil {
		return nil, err
	}
	return names, nil
}
