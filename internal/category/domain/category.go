package domain

import "time"

// Category is a user-defined label for expenses. Names are unique per owner,
// not globally.
type Category struct {
	ID        string    `json:"id" gorm:"primaryKey"`
	UserID    string    `json:"user_id" gorm:"not null;uniqueIndex:idx_categories_user_name"`
	Name      string    `json:"name" gorm:"size:25;not null;uniqueIndex:idx_categories_user_name"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func (c *Category) Owner() string {
	return c.UserID
}
