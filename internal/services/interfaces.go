package services

import (
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// UserServicer defines the contract for user-related business logic.
type UserServicer interface {
	CreateUser(email, password, name, phone string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	GetUserByID(id string) (*models.User, error)
	VerifyPassword(user *models.User, password string) bool
}

// SeedServicer defines the contract for bootstrap seeding.
type SeedServicer interface {
	EnsureDefaultCategories() error
	SeedDemoData(user *models.User) error
}

// CategoryServicer defines the contract for category-related business logic.
type CategoryServicer interface {
	Create(userID, name string, categoryType models.CategoryType, icon, color string) (*models.Category, error)
	List(userID string) ([]models.Category, error)
	ListByType(userID string, categoryType models.CategoryType) ([]models.Category, error)
	GetVisibleByID(userID, categoryID string) (*models.Category, error)
	Delete(userID, categoryID string) error
}

// TransactionFilter holds optional filter parameters for listing transactions.
// Month matches the YYYY-MM prefix of the transaction date exactly; Type
// matches by equality.
type TransactionFilter struct {
	Month *string
	Type  *models.TransactionType
}

// TransactionUpdate holds the mutable transaction fields for a partial
// update. Nil pointers leave the stored value unchanged.
type TransactionUpdate struct {
	Type       *models.TransactionType
	Amount     *float64
	Currency   *string
	CategoryID *string
	Date       *string
	Notes      *string
}

// TransactionServicer defines the contract for transaction-related business logic.
type TransactionServicer interface {
	Create(userID string, transactionType models.TransactionType, amount float64, currency, categoryID, date, notes string) (*models.Transaction, error)
	List(userID string, filter TransactionFilter) ([]models.Transaction, error)
	ListPage(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error)
	GetByID(userID, transactionID string) (*models.Transaction, error)
	Update(userID, transactionID string, fields TransactionUpdate) (*models.Transaction, error)
	Delete(userID, transactionID string) error
}
