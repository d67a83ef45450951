package repository

import "fintrack-backend/internal/expense/domain"

// ExpenseRepository defines the interface for expense data access
type ExpenseRepository interface {
	// Create persists a new expense, assigning its ID and timestamps
	Create(expense *domain.Expense) error

	// FindByID finds an expense by its ID, or nil if absent
	FindByID(id string) (*domain.Expense, error)

	// FindByUserID returns one page of the user's expenses, newest first,
	// with the owning category's name attached, plus the unpaged total
	FindByUserID(userID string, limit, offset int) ([]*domain.Expense, int64, error)

	// FindByUserAndCategory is FindByUserID narrowed to one category
	FindByUserAndCategory(userID, categoryID string, limit, offset int) ([]*domain.Expense, int64, error)

	// Update saves changes to an existing expense
	Update(expense *domain.Expense) error

	// Delete removes an expense by ID
	Delete(id string) error
}
