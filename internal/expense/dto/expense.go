package dto

import "fintrack-backend/internal/expense/domain"

// TimestampLayout renders timestamps the way the web client displays them,
// e.g. "2 Jan 2006, 3:04 pm".
const TimestampLayout = "2 Jan 2006, 3:04 pm"

type ExpenseResponse struct {
	ID           string  `json:"id"`
	UserID       string  `json:"user_id"`
	CategoryID   string  `json:"category_id"`
	CategoryName string  `json:"category_name,omitempty"`
	Amount       float64 `json:"amount"`
	Description  string  `json:"description"`
	CreatedAt    string  `json:"created_at"`
	UpdatedAt    string  `json:"updated_at"`
}

func NewExpenseResponse(e *domain.Expense) ExpenseResponse {
	return ExpenseResponse{
		ID:           e.ID,
		UserID:       e.UserID,
		CategoryID:   e.CategoryID,
		CategoryName: e.CategoryName,
		Amount:       e.Amount,
		Description:  e.Description,
		CreatedAt:    e.CreatedAt.Format(TimestampLayout),
		UpdatedAt:    e.UpdatedAt.Format(TimestampLayout),
	}
}

func NewExpenseList(expenses []*domain.Expense) []ExpenseResponse {
	out := make([]ExpenseResponse, 0, len(expenses))
	for _, e := range expenses {
		out = append(out, NewExpenseResponse(e))
	}
	return out
}
