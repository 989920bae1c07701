package inmemory

import (
	"sync"
	"time"

	expensesdomain "finance-flow/internal/domain/expenses"
)

// CategoriesCache is a TTL cache of category listings keyed by user.
type CategoriesCache struct {
	mu    sync.RWMutex
	items map[string]categoriesItem
}

type categoriesItem struct {
	value     []expensesdomain.Category
	expiresAt time.Time
}

func NewCategoriesCache() *CategoriesCache {
	return &CategoriesCache{items: make(map[string]categoriesItem)}
}

func (c *CategoriesCache) GetByUserID(userID string) ([]expensesdomain.Category, bool) {
	now := time.Now()

	c.mu.RLock()
	item, ok := c.items[userID]
	c.mu.RUnlock()
	if !ok {
		return nil, false
	}

	if !item.expiresAt.After(now) {
		c.mu.Lock()
		item, ok = c.items[userID]
		if ok && !item.expiresAt.After(now) {
			delete(c.items, userID)
		}
		c.mu.Unlock()
		return nil, false
	}

	return cloneCategories(item.value), true
}

func (c *CategoriesCache) SetByUserID(userID string, categories []expensesdomain.Category, ttl time.Duration) {
	if ttl <= 0 {
		c.DeleteByUserID(userID)
		return
	}

	c.mu.Lock()
	c.items[userID] = categoriesItem{
		value:     cloneCategories(categories),
		expiresAt: time.Now().Add(ttl),
	}
	c.mu.Unlock()
}

func (c *CategoriesCache) DeleteByUserID(userID string) {
	c.mu.Lock()
	delete(c.items, userID)
	c.mu.Unlock()
}

func cloneCategories(categories []expensesdomain.Category) []expensesdomain.Category {
	if categories == nil {
		return nil
	}
	cloned := make([]expensesdomain.Category, len(categories))
	copy(cloned, categories)
	return cloned
}
