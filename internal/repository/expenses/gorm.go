package expenses

import (
	"context"

	expensesdomain "finance-flow/internal/domain/expenses"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type GormRepository struct {
	db *gorm.DB
}

func NewGorm(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) ListExpenses(ctx context.Context, userID string, filter expensesdomain.ListFilter) ([]expensesdomain.Expense, error) {
	query := r.db.WithContext(ctx).Where("user_id = ?", userID)
	if filter.From != nil {
		query = query.Where("date >= ?", *filter.From)
	}
	if filter.To != nil {
		query = query.Where("date <= ?", *filter.To)
	}

	items := make([]expensesdomain.Expense, 0)
	if err := query.Order("date desc, created_at desc").Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepository) CreateExpense(ctx context.Context, expense *expensesdomain.Expense) error {
	return r.db.WithContext(ctx).Create(expense).Error
}

func (r *GormRepository) DeleteExpense(ctx context.Context, userID string, expenseID int64) (bool, error) {
	result := r.db.WithContext(ctx).Delete(&expensesdomain.Expense{}, "user_id = ? AND id = ?", userID, expenseID)
	return result.RowsAffected > 0, result.Error
}

func (r *GormRepository) ListCategories(ctx context.Context, userID string) ([]expensesdomain.Category, error) {
	items := make([]expensesdomain.Category, 0)
	if err := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("name asc").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepository) CreateCategory(ctx context.Context, category *expensesdomain.Category) error {
	return r.db.WithContext(ctx).Create(category).Error
}

func (r *GormRepository) CountCategories(ctx context.Context, userID string) (int64, error) {
	var count int64
	if err := r.db.WithContext(ctx).
		Model(&expensesdomain.Category{}).
		Where("user_id = ?", userID).
		Count(&count).Error; err != nil {
		return 0, err
	}
	return count, nil
}

func (r *GormRepository) CreateCategoriesIgnoreConflicts(ctx context.Context, categories []expensesdomain.Category) error {
	if len(categories) == 0 {
		return nil
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "user_id"}, {Name: "name"}},
			DoNothing: true,
		}).
		Create(&categories).Error
}
