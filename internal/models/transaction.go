package models

// TransactionType represents the type of transaction
type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

// DateLayout is the calendar-date format used for transaction dates.
// Dates carry no time component; lexicographic order on this layout is
// chronological, which the YYYY-MM prefix filter relies on.
const DateLayout = "2006-01-02"

// MonthLayout is the format for month keys used in filters and summaries.
const MonthLayout = "2006-01"

// Transaction represents a financial transaction in the system.
//
// Amount is always non-negative; the sign is carried by Type.
// CategoryName is a denormalized snapshot of the category's name at
// write time, resolved server-side rather than taken from the client.
//
// Soft deletion is a plain tombstone flag rather than gorm.DeletedAt:
// soft-deleted rows stay reachable for updates while every list read
// filters them out. The transition is one-way; nothing undeletes.
type Transaction struct {
	Base
	UserID       string          `gorm:"type:uuid;not null;index" json:"user_id"`
	Type         TransactionType `gorm:"not null" json:"type"`
	Amount       float64         `gorm:"not null" json:"amount"`
	Currency     string          `gorm:"size:3;not null" json:"currency"`
	CategoryID   string          `gorm:"not null;index" json:"category_id"`
	CategoryName string          `gorm:"not null" json:"category_name"`
	Date         string          `gorm:"size:10;not null;index" json:"date"`
	Notes        string          `json:"notes,omitempty"`
	Deleted      bool            `gorm:"not null;default:false;index" json:"deleted"`
}
