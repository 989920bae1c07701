package expenses

type DefaultCategory struct {
	Name  string
	Color string
	Icon  string
}

// DefaultCategories is the fixed set seeded for a user the first time
// their expenses are listed and they own no category rows.
func DefaultCategories() []DefaultCategory {
	return []DefaultCategory{
		{Name: "Food & Dining", Color: "#ef4444", Icon: "utensils"},
		{Name: "Transportation", Color: "#3b82f6", Icon: "car"},
		{Name: "Shopping", Color: "#8b5cf6", Icon: "shopping-bag"},
		{Name: "Entertainment", Color: "#f59e0b", Icon: "music"},
		{Name: "Bills & Utilities", Color: "#10b981", Icon: "receipt"},
		{Name: "Healthcare", Color: "#ec4899", Icon: "heart"},
		{Name: "Education", Color: "#06b6d4", Icon: "book"},
		{Name: "Travel", Color: "#84cc16", Icon: "plane"},
		{Name: "Other", Color: "#6b7280", Icon: "more-horizontal"},
	}
}
