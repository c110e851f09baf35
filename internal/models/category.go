package models

// CategoryType represents the type of category
type CategoryType string

const (
	CategoryTypeIncome  CategoryType = "income"
	CategoryTypeExpense CategoryType = "expense"
)

// Category represents a transaction category. System defaults carry no
// user ID and are flagged IsDefault; user-created categories belong to
// exactly one user.
type Category struct {
	Base
	UserID    *string      `gorm:"type:uuid;index" json:"user_id,omitempty"`
	Name      string       `gorm:"not null" json:"name"`
	Type      CategoryType `gorm:"not null" json:"type"`
	Icon      string       `json:"icon,omitempty"`
	Color     string       `json:"color"`
	IsDefault bool         `gorm:"not null;default:false" json:"is_default"`
}
