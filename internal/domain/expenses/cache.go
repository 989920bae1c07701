package expenses

import "time"

// CategoriesCache shortcuts repeated category listings; every
// aggregation request re-reads the user's category names, so the list
// is worth keeping warm.
type CategoriesCache interface {
	GetByUserID(userID string) ([]Category, bool)
	SetByUserID(userID string, categories []Category, ttl time.Duration)
	DeleteByUserID(userID string)
}

type noopCategoriesCache struct{}

func (noopCategoriesCache) GetByUserID(string) ([]Category, bool) {
	return nil, false
}

func (noopCategoriesCache) SetByUserID(string, []Category, time.Duration) {}

func (noopCategoriesCache) DeleteByUserID(string) {}
