package usecase

import (
	"fintrack-backend/internal/expense/domain"
	"fintrack-backend/pkg/pagination"
)

// ExpenseUsecase defines the interface for expense business logic
type ExpenseUsecase interface {
	// ListExpenses returns one page of the user's expenses plus the total
	ListExpenses(userID string, p pagination.Params) ([]*domain.Expense, int64, error)

	// ListExpensesByCategory narrows the listing to one owned category
	ListExpensesByCategory(userID, categoryID string, p pagination.Params) ([]*domain.Expense, int64, error)

	// CreateExpense records a spend against one of the user's categories
	CreateExpense(userID string, req ExpenseInput) (*domain.Expense, error)

	// UpdateExpense rewrites an owned expense's fields
	UpdateExpense(userID, expenseID string, req ExpenseInput) (*domain.Expense, error)

	// DeleteExpense removes an owned expense
	DeleteExpense(userID, expenseID string) error
}

// ExpenseInput carries the writable expense fields.
type ExpenseInput struct {
	CategoryID  string
	Amount      float64
	Description string
}
