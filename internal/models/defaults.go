package models

// DefaultCategories returns the system default category set: 5 income
// and 8 expense categories with fixed IDs. Defaults carry no user ID,
// are flagged IsDefault, and are never deletable.
func DefaultCategories() []Category {
	return []Category{
		{Base: Base{ID: "inc-1"}, Name: "Salary", Type: CategoryTypeIncome, Color: "#1E88E5", IsDefault: true},
		{Base: Base{ID: "inc-2"}, Name: "Freelance", Type: CategoryTypeIncome, Color: "#00BFA5", IsDefault: true},
		{Base: Base{ID: "inc-3"}, Name: "Investments", Type: CategoryTypeIncome, Color: "#7C4DFF", IsDefault: true},
		{Base: Base{ID: "inc-4"}, Name: "Gifts", Type: CategoryTypeIncome, Color: "#FF4081", IsDefault: true},
		{Base: Base{ID: "inc-5"}, Name: "Other", Type: CategoryTypeIncome, Color: "#90A4AE", IsDefault: true},
		{Base: Base{ID: "exp-1"}, Name: "Food & Groceries", Type: CategoryTypeExpense, Color: "#EF5350", IsDefault: true},
		{Base: Base{ID: "exp-2"}, Name: "Rent", Type: CategoryTypeExpense, Color: "#FF7043", IsDefault: true},
		{Base: Base{ID: "exp-3"}, Name: "Utilities", Type: CategoryTypeExpense, Color: "#FFA726", IsDefault: true},
		{Base: Base{ID: "exp-4"}, Name: "Transport", Type: CategoryTypeExpense, Color: "#FFCA28", IsDefault: true},
		{Base: Base{ID: "exp-5"}, Name: "Entertainment", Type: CategoryTypeExpense, Color: "#66BB6A", IsDefault: true},
		{Base: Base{ID: "exp-6"}, Name: "Health", Type: CategoryTypeExpense, Color: "#26A69A", IsDefault: true},
		{Base: Base{ID: "exp-7"}, Name: "Shopping", Type: CategoryTypeExpense, Color: "#29B6F6", IsDefault: true},
		{Base: Base{ID: "exp-8"}, Name: "Travel", Type: CategoryTypeExpense, Color: "#AB47BC", IsDefault: true},
	}
}
