package repository

import "fintrack-backend/internal/category/domain"

// CategoryRepository defines the interface for category data access
type CategoryRepository interface {
	// Create persists a new category, assigning its ID and timestamps
	Create(category *domain.Category) error

	// FindByID finds a category by its ID, or nil if absent
	FindByID(id string) (*domain.Category, error)

	// FindByUserID returns all categories owned by a user
	FindByUserID(userID string) ([]*domain.Category, error)

	// FindByUserAndName returns the owner's category with that name, or nil
	FindByUserAndName(userID, name string) (*domain.Category, error)

	// Update saves changes to an existing category
	Update(category *domain.Category) error

	// Delete removes a category by ID
	Delete(id string) error
}
