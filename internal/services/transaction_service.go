package services

import (
	"errors"
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/pagination"
)

// transactionService handles transaction-related business logic.
type transactionService struct {
	db              *gorm.DB
	categoryService CategoryServicer
}

// NewTransactionService creates a new TransactionServicer.
func NewTransactionService(db *gorm.DB, categoryService CategoryServicer) TransactionServicer {
	return &transactionService{
		db:              db,
		categoryService: categoryService,
	}
}

// Create validates and persists a new transaction for a user. The
// category name is resolved server-side from the referenced category
// row at write time; a client-supplied copy is never trusted. Nothing
// is persisted when validation fails.
func (s *transactionService) Create(
	userID string,
	transactionType models.TransactionType,
	amount float64,
	currency, categoryID, date, notes string,
) (*models.Transaction, error) {
	if amount < 0 {
		return nil, apperrors.ErrNegativeAmount
	}

	switch transactionType {
	case models.TransactionTypeIncome, models.TransactionTypeExpense:
	default:
		return nil, apperrors.ErrInvalidTransactionType
	}

	if _, err := time.Parse(models.DateLayout, date); err != nil {
		return nil, apperrors.ErrInvalidDate
	}

	category, err := s.categoryService.GetVisibleByID(userID, categoryID)
	if err != nil {
		return nil, err
	}

	transaction := &models.Transaction{
		UserID:       userID,
		Type:         transactionType,
		Amount:       amount,
		Currency:     currency,
		CategoryID:   category.ID,
		CategoryName: category.Name,
		Date:         date,
		Notes:        notes,
	}

	if err := s.db.Create(transaction).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return transaction, nil
}

// listQuery builds the base query for reads: the user's non-deleted
// transactions with the optional month and type filters applied.
func (s *transactionService) listQuery(userID string, filter TransactionFilter) *gorm.DB {
	q := s.db.Model(&models.Transaction{}).
		Where("user_id = ? AND deleted = ?", userID, false)
	if filter.Month != nil {
		q = q.Where("date LIKE ?", *filter.Month+"%")
	}
	if filter.Type != nil {
		q = q.Where("type = ?", *filter.Type)
	}
	return q
}

// List retrieves the user's non-deleted transactions, newest first.
// Equal dates tie-break on id descending; IDs are UUIDv7 and therefore
// time-ordered, so later inserts sort first.
func (s *transactionService) List(userID string, filter TransactionFilter) ([]models.Transaction, error) {
	var transactions []models.Transaction
	if err := s.listQuery(userID, filter).
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return transactions, nil
}

// ListPage retrieves a paginated, filtered list of the user's transactions.
func (s *transactionService) ListPage(userID string, page pagination.PageRequest, filter TransactionFilter) (*pagination.PageResponse[models.Transaction], error) {
	page.Defaults()

	base := s.listQuery(userID, filter)

	var totalItems int64
	if err := base.Count(&totalItems).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	var transactions []models.Transaction
	if err := base.Scopes(pagination.Paginate(page)).
		Order("date DESC, id DESC").
		Find(&transactions).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	result := pagination.NewPageResponse(transactions, page.Page, page.PageSize, totalItems)
	return &result, nil
}

// GetByID retrieves a transaction by ID for a specific user. Deliberately
// does not exclude soft-deleted rows; Update depends on that.
func (s *transactionService) GetByID(userID, transactionID string) (*models.Transaction, error) {
	var transaction models.Transaction
	if err := s.db.Where("id = ? AND user_id = ?", transactionID, userID).First(&transaction).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTransactionNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &transaction, nil
}

// Update merges the provided fields over an existing transaction and
// refreshes updated_at. Missing IDs fail with a not-found error, unlike
// Delete. Soft-deleted rows remain updatable; the tombstone flag itself
// is not a mutable field and one-way deletion is preserved.
func (s *transactionService) Update(userID, transactionID string, fields TransactionUpdate) (*models.Transaction, error) {
	transaction, err := s.GetByID(userID, transactionID)
	if err != nil {
		return nil, err
	}

	updates := make(map[string]interface{})

	if fields.Type != nil {
		switch *fields.Type {
		case models.TransactionTypeIncome, models.TransactionTypeExpense:
		default:
			return nil, apperrors.ErrInvalidTransactionType
		}
		updates["type"] = *fields.Type
	}

	if fields.Amount != nil {
		if *fields.Amount < 0 {
			return nil, apperrors.ErrNegativeAmount
		}
		updates["amount"] = *fields.Amount
	}

	if fields.Currency != nil {
		updates["currency"] = *fields.Currency
	}

	if fields.Date != nil {
		if _, err := time.Parse(models.DateLayout, *fields.Date); err != nil {
			return nil, apperrors.ErrInvalidDate
		}
		updates["date"] = *fields.Date
	}

	if fields.Notes != nil {
		updates["notes"] = *fields.Notes
	}

	// A category change re-resolves the denormalized name snapshot.
	if fields.CategoryID != nil {
		category, err := s.categoryService.GetVisibleByID(userID, *fields.CategoryID)
		if err != nil {
			return nil, err
		}
		updates["category_id"] = category.ID
		updates["category_name"] = category.Name
	}

	if len(updates) > 0 {
		if err := s.db.Model(transaction).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return transaction, nil
}

// Delete sets the tombstone flag on a matching transaction. A missing
// or unowned ID is a silent no-op, not an error; this asymmetry with
// Update is deliberate and covered by tests. UpdateColumn bypasses the
// timestamp callback, so updated_at is untouched by deletion.
func (s *transactionService) Delete(userID, transactionID string) error {
	err := s.db.Model(&models.Transaction{}).
		Where("id = ? AND user_id = ?", transactionID, userID).
		UpdateColumn("deleted", true).Error
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
