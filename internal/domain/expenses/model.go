package expenses

import "time"

// Expense is one recorded spending event. Date is the accounting date
// of the spend; CreatedAt/UpdatedAt are row bookkeeping. Rows are
// created and deleted but never updated in place.
type Expense struct {
	ID          int64     `gorm:"primaryKey"`
	UserID      string    `gorm:"index;not null"`
	Amount      float64   `gorm:"type:numeric(12,2);not null"`
	Description string    `gorm:"not null"`
	Category    string    `gorm:"not null"`
	Date        time.Time `gorm:"type:date;not null;index"`
	Currency    string    `gorm:"size:3"`
	CreatedAt   time.Time `gorm:"autoCreateTime"`
	UpdatedAt   time.Time `gorm:"autoUpdateTime"`
}

// Category is a named spending bucket. The unique (user_id, name)
// index is what makes default-category seeding safe under concurrent
// first requests.
type Category struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    string    `gorm:"uniqueIndex:idx_categories_user_name;not null"`
	Name      string    `gorm:"uniqueIndex:idx_categories_user_name;not null"`
	Color     string    `gorm:"not null"`
	Icon      string
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

// Budget rows are part of the stored schema but are not served by any
// endpoint yet.
type Budget struct {
	ID        int64     `gorm:"primaryKey"`
	UserID    string    `gorm:"index;not null"`
	Category  string    `gorm:"not null"`
	Amount    float64   `gorm:"type:numeric(12,2);not null"`
	Month     int       `gorm:"not null"`
	Year      int       `gorm:"not null"`
	CreatedAt time.Time `gorm:"autoCreateTime"`
	UpdatedAt time.Time `gorm:"autoUpdateTime"`
}

type ListFilter struct {
	From *time.Time
	To   *time.Time
}

type CreateExpenseInput struct {
	UserID      string
	Amount      float64
	Description string
	Category    string
	Date        time.Time
	Currency    string
}

type CreateCategoryInput struct {
	UserID string
	Name   string
	Color  string
	Icon   string
}
