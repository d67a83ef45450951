package usecase

import (
	"fintrack-backend/internal/income/domain"
	"fintrack-backend/pkg/pagination"
)

// IncomeUsecase defines the interface for income business logic
type IncomeUsecase interface {
	// ListIncomes returns one page of the user's incomes plus the total
	ListIncomes(userID string, p pagination.Params) ([]*domain.Income, int64, error)

	// CreateIncome records an earning for the user
	CreateIncome(userID string, req IncomeInput) (*domain.Income, error)

	// UpdateIncome rewrites an owned income's fields
	UpdateIncome(userID, incomeID string, req IncomeInput) (*domain.Income, error)

	// DeleteIncome removes an owned income
	DeleteIncome(userID, incomeID string) error
}

// IncomeInput carries the writable income fields.
type IncomeInput struct {
	Source      string
	Amount      float64
	Description string
}
