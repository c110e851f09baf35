package models

import "time"

// User represents the user model in the database
type User struct {
	Base
	Name     string `json:"name"`
	Email    string `gorm:"uniqueIndex;not null" json:"email"`
	Phone    string `json:"phone,omitempty"`
	Password string `gorm:"not null" json:"-"`

	// SeededAt records that the demo-data bootstrap ran for this user.
	// A presence check, not an emptiness check: deleting every
	// transaction afterwards must not re-trigger seeding.
	SeededAt *time.Time `json:"-"`

	Categories   []Category    `gorm:"foreignKey:UserID" json:"categories,omitempty"`
	Transactions []Transaction `gorm:"foreignKey:UserID" json:"transactions,omitempty"`
}
