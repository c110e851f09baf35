package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// visible scopes a query to the categories a user can see: the system
// defaults plus the user's own.
func (s *categoryService) visible(userID string) *gorm.DB {
	return s.db.Model(&models.Category{}).Where("user_id = ? OR user_id IS NULL", userID)
}

// Create creates a new category owned by the user. Duplicate names are
// permitted; the UI partitions by type, not by name.
func (s *categoryService) Create(userID, name string, categoryType models.CategoryType, icon, color string) (*models.Category, error) {
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}

	switch categoryType {
	case models.CategoryTypeIncome, models.CategoryTypeExpense:
	default:
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category type must be income or expense")
	}

	category := &models.Category{
		UserID: &userID,
		Name:   name,
		Type:   categoryType,
		Icon:   icon,
		Color:  color,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// List retrieves the full category set visible to a user: system
// defaults plus the user's own categories.
func (s *categoryService) List(userID string) ([]models.Category, error) {
	var categories []models.Category
	if err := s.visible(userID).Order("is_default DESC, id").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// ListByType retrieves the visible categories of a single type.
func (s *categoryService) ListByType(userID string, categoryType models.CategoryType) ([]models.Category, error) {
	var categories []models.Category
	if err := s.visible(userID).Where("type = ?", categoryType).
		Order("is_default DESC, id").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetVisibleByID retrieves a single category the user can see, default
// or owned.
func (s *categoryService) GetVisibleByID(userID, categoryID string) (*models.Category, error) {
	var category models.Category
	if err := s.visible(userID).Where("id = ?", categoryID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// Delete removes one of the user's own categories. Default categories
// are rejected outright, and a category still referenced by a
// non-deleted transaction is rejected rather than left dangling.
func (s *categoryService) Delete(userID, categoryID string) error {
	category, err := s.GetVisibleByID(userID, categoryID)
	if err != nil {
		return err
	}

	if category.IsDefault {
		return apperrors.ErrDefaultCategory
	}

	var refs int64
	if err := s.db.Model(&models.Transaction{}).
		Where("category_id = ? AND deleted = ?", categoryID, false).
		Count(&refs).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if refs > 0 {
		return apperrors.ErrCategoryInUse
	}

	if err := s.db.Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
