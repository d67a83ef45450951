package repository

import "fintrack-backend/internal/income/domain"

// IncomeRepository defines the interface for income data access
type IncomeRepository interface {
	// Create persists a new income, assigning its ID and timestamps
	Create(income *domain.Income) error

	// FindByID finds an income by its ID, or nil if absent
	FindByID(id string) (*domain.Income, error)

	// FindByUserID returns one page of the user's incomes, newest first,
	// plus the unpaged total
	FindByUserID(userID string, limit, offset int) ([]*domain.Income, int64, error)

	// Update saves changes to an existing income
	Update(income *domain.Income) error

	// Delete removes an income by ID
	Delete(id string) error
}
