package repository

import authdomain "fintrack-backend/internal/auth/domain"

// UserRepository defines the interface for user data access
type UserRepository interface {
	// Create persists a new user, assigning its ID and timestamps
	Create(user *authdomain.User) error

	// FindByEmail returns the user with the given email, or nil if absent
	FindByEmail(email string) (*authdomain.User, error)

	// FindByID returns the user with the given ID, or nil if absent
	FindByID(id string) (*authdomain.User, error)

	// Update saves changes to an existing user
	Update(user *authdomain.User) error
}
