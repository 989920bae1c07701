package expenses

import "errors"

var (
	ErrExpenseNotFound       = errors.New("expense not found")
	ErrInvalidAmount         = errors.New("amount must be positive")
	ErrDescriptionRequired   = errors.New("description is required")
	ErrCategoryRequired      = errors.New("category is required")
	ErrDateRequired          = errors.New("date is required")
	ErrCategoryNameRequired  = errors.New("category name is required")
	ErrCategoryColorRequired = errors.New("color is required")
)
