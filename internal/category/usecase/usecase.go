package usecase

import "fintrack-backend/internal/category/domain"

// CategoryUsecase defines the interface for category business logic
type CategoryUsecase interface {
	// GetUserCategories returns all categories owned by the user
	GetUserCategories(userID string) ([]*domain.Category, error)

	// CreateCategory creates a category named name for the user
	CreateCategory(userID, name string) (*domain.Category, error)

	// UpdateCategory renames an owned category
	UpdateCategory(userID, categoryID, name string) (*domain.Category, error)

	// DeleteCategory removes an owned category. Expenses referencing it are
	// left untouched.
	DeleteCategory(userID, categoryID string) error
}
