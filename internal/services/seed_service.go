package services

import (
	"time"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// seedService bootstraps system defaults and per-user demo data.
type seedService struct {
	db *gorm.DB
}

// NewSeedService creates a new SeedServicer.
func NewSeedService(db *gorm.DB) SeedServicer {
	return &seedService{db: db}
}

// EnsureDefaultCategories inserts the system default category set if it
// is not already present. Idempotent: a presence check on is_default
// rows guards the insert, so repeated calls never duplicate defaults.
func (s *seedService) EnsureDefaultCategories() error {
	var count int64
	if err := s.db.Model(&models.Category{}).Where("is_default = ?", true).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil
	}

	defaults := models.DefaultCategories()
	if err := s.db.Create(&defaults).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}

// SeedDemoData inserts the demo transactions for a user exactly once,
// on first-ever login. The gate is the user's SeededAt marker, not the
// transaction count: a user who deletes every transaction must not get
// the demo set back.
func (s *seedService) SeedDemoData(user *models.User) error {
	if user.SeededAt != nil {
		return nil
	}

	now := time.Now()
	monthDay := func(day int) string {
		return time.Date(now.Year(), now.Month(), day, 0, 0, 0, 0, time.UTC).Format(models.DateLayout)
	}

	demo := []models.Transaction{
		{
			UserID:       user.ID,
			Type:         models.TransactionTypeIncome,
			Amount:       5000,
			Currency:     "USD",
			CategoryID:   "inc-1",
			CategoryName: "Salary",
			Date:         monthDay(1),
		},
		{
			UserID:       user.ID,
			Type:         models.TransactionTypeExpense,
			Amount:       1500,
			Currency:     "USD",
			CategoryID:   "exp-2",
			CategoryName: "Rent",
			Date:         monthDay(2),
		},
		{
			UserID:       user.ID,
			Type:         models.TransactionTypeExpense,
			Amount:       120.50,
			Currency:     "USD",
			CategoryID:   "exp-1",
			CategoryName: "Food & Groceries",
			Date:         monthDay(5),
			Notes:        "Weekly haul",
		},
	}

	err := s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&demo).Error; err != nil {
			return err
		}
		if err := tx.Model(user).Update("seeded_at", now).Error; err != nil {
			return err
		}
		return nil
	})
	if err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	user.SeededAt = &now
	return nil
}
