package dto

import "fintrack-backend/internal/income/domain"

// timestampLayout matches the expense resource format.
const timestampLayout = "2 Jan 2006, 3:04 pm"

type IncomeResponse struct {
	ID          string  `json:"id"`
	UserID      string  `json:"user_id"`
	Source      string  `json:"source"`
	Amount      float64 `json:"amount"`
	Description string  `json:"description"`
	CreatedAt   string  `json:"created_at"`
	UpdatedAt   string  `json:"updated_at"`
}

func NewIncomeResponse(i *domain.Income) IncomeResponse {
	return IncomeResponse{
		ID:          i.ID,
		UserID:      i.UserID,
		Source:      i.Source,
		Amount:      i.Amount,
		Description: i.Description,
		CreatedAt:   i.CreatedAt.Format(timestampLayout),
		UpdatedAt:   i.UpdatedAt.Format(timestampLayout),
	}
}

func NewIncomeList(incomes []*domain.Income) []IncomeResponse {
	out := make([]IncomeResponse, 0, len(incomes))
	for _, i := range incomes {
		out = append(out, NewIncomeResponse(i))
	}
	return out
}
