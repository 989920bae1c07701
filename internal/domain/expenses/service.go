package expenses

import (
	"context"
	"strings"
	"time"
)

// ReferenceCurrency is stored on expenses created without an explicit
// currency; all aggregates are normalized into it.
const ReferenceCurrency = "INR"

const defaultCategoriesCacheTTL = 5 * time.Minute

type Service struct {
	repo     Repository
	cache    CategoriesCache
	cacheTTL time.Duration
}

func NewService(repo Repository) *Service {
	return &Service{repo: repo, cache: noopCategoriesCache{}, cacheTTL: defaultCategoriesCacheTTL}
}

func NewServiceWithCache(repo Repository, cache CategoriesCache, cacheTTL time.Duration) *Service {
	if cacheTTL <= 0 {
		cacheTTL = defaultCategoriesCacheTTL
	}
	return &Service{repo: repo, cache: cache, cacheTTL: cacheTTL}
}

func (s *Service) ListExpenses(ctx context.Context, userID string, filter ListFilter) ([]Expense, error) {
	return s.repo.ListExpenses(ctx, userID, filter)
}

func (s *Service) CreateExpense(ctx context.Context, input CreateExpenseInput) (*Expense, error) {
	if input.Amount <= 0 {
		return nil, ErrInvalidAmount
	}
	description := strings.TrimSpace(input.Description)
	if description == "" {
		return nil, ErrDescriptionRequired
	}
	category := strings.TrimSpace(input.Category)
	if category == "" {
		return nil, ErrCategoryRequired
	}
	if input.Date.IsZero() {
		return nil, ErrDateRequired
	}

	currency := strings.ToUpper(strings.TrimSpace(input.Currency))
	if currency == "" {
		currency = ReferenceCurrency
	}

	expense := Expense{
		UserID:      input.UserID,
		Amount:      input.Amount,
		Description: description,
		Category:    category,
		Date:        input.Date,
		Currency:    currency,
	}
	if err := s.repo.CreateExpense(ctx, &expense); err != nil {
		return nil, err
	}

	return &expense, nil
}

func (s *Service) DeleteExpense(ctx context.Context, userID string, expenseID int64) error {
	deleted, err := s.repo.DeleteExpense(ctx, userID, expenseID)
	if err != nil {
		return err
	}
	if !deleted {
		return ErrExpenseNotFound
	}
	return nil
}

func (s *Service) ListCategories(ctx context.Context, userID string) ([]Category, error) {
	if cached, ok := s.cache.GetByUserID(userID); ok {
		return cached, nil
	}

	categories, err := s.repo.ListCategories(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.cache.SetByUserID(userID, categories, s.cacheTTL)
	return categories, nil
}

func (s *Service) CreateCategory(ctx context.Context, input CreateCategoryInput) (*Category, error) {
	name := strings.TrimSpace(input.Name)
	if name == "" {
		return nil, ErrCategoryNameRequired
	}
	color := strings.TrimSpace(input.Color)
	if color == "" {
		return nil, ErrCategoryColorRequired
	}

	category := Category{
		UserID: input.UserID,
		Name:   name,
		Color:  color,
		Icon:   strings.TrimSpace(input.Icon),
	}
	if err := s.repo.CreateCategory(ctx, &category); err != nil {
		return nil, err
	}

	s.cache.DeleteByUserID(input.UserID)
	return &category, nil
}

// EnsureDefaultCategories seeds the fixed default set for a user who
// owns no category rows yet. Any existing row, default or custom,
// makes this a no-op. The inserts ignore (user_id, name) conflicts,
// so two racing first requests cannot produce duplicates.
func (s *Service) EnsureDefaultCategories(ctx context.Context, userID string) error {
	count, err := s.repo.CountCategories(ctx, userID)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	defaults := DefaultCategories()
	categories := make([]Category, 0, len(defaults))
	for _, d := range defaults {
		categories = append(categories, Category{
			UserID: userID,
			Name:   d.Name,
			Color:  d.Color,
			Icon:   d.Icon,
		})
	}

	if err := s.repo.CreateCategoriesIgnoreConflicts(ctx, categories); err != nil {
		return err
	}

	s.cache.DeleteByUserID(userID)
	return nil
}
