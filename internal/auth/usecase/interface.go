package usecase

import (
	authdomain "fintrack-backend/internal/auth/domain"
	authdto "fintrack-backend/internal/auth/dto"
)

// AuthUsecase defines the interface for authentication business logic
type AuthUsecase interface {
	// Register creates an account and issues its first token
	Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error)

	// Login verifies credentials and issues a token
	Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error)

	// Logout invalidates the presented token; idempotent
	Logout(tokenString string)

	// Refresh invalidates the presented token and issues a fresh one
	Refresh(tokenString string) (string, error)

	// GetUser returns the account for an authenticated user ID
	GetUser(userID string) (*authdomain.User, error)

	// UpdateProfile applies optional name/email/password changes
	UpdateProfile(userID string, req *authdto.UpdateProfileRequest) (*authdomain.User, error)

	// ValidateToken resolves a bearer token to its account
	ValidateToken(tokenString string) (*authdomain.User, error)
}
