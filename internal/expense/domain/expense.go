package domain

import "time"

// Expense is a spend record tied to one of the owner's categories.
type Expense struct {
	ID          string    `json:"id" gorm:"primaryKey"`
	UserID      string    `json:"user_id" gorm:"index;not null"`
	CategoryID  string    `json:"category_id" gorm:"index;not null"`
	Amount      float64   `json:"amount" gorm:"type:decimal(10,2);not null"`
	Description string    `json:"description" gorm:"size:255"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`

	// CategoryName is attached by list queries as a read-time join; it is
	// never stored.
	CategoryName string `json:"category_name,omitempty" gorm:"->;-:migration"`
}

func (e *Expense) Owner() string {
	return e.UserID
}
