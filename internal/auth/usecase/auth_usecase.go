package usecase

import (
	"fintrack-backend/internal/apperr"
	authdomain "fintrack-backend/internal/auth/domain"
	authdto "fintrack-backend/internal/auth/dto"
	"fintrack-backend/internal/auth/repository"
	"fintrack-backend/internal/auth/token"
)

// authUsecase implements AuthUsecase interface
type authUsecase struct {
	userRepo repository.UserRepository
	tokens   *token.Service
}

// NewAuthUsecase creates a new instance of authUsecase
func NewAuthUsecase(userRepo repository.UserRepository, tokens *token.Service) AuthUsecase {
	return &authUsecase{
		userRepo: userRepo,
		tokens:   tokens,
	}
}

func (u *authUsecase) Register(req *authdto.RegisterRequest) (*authdto.TokenResponse, error) {
	existing, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperr.ConflictFields("The given data was invalid.", map[string][]string{
			"email": {"The email has already been taken."},
		})
	}

	hashedPassword, err := repository.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &authdomain.User{
		Name:     req.Name,
		Email:    req.Email,
		Password: hashedPassword,
	}
	if err := u.userRepo.Create(user); err != nil {
		return nil, err
	}

	tok, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{Token: tok, User: user}, nil
}

func (u *authUsecase) Login(req *authdto.LoginRequest) (*authdto.TokenResponse, error) {
	user, err := u.userRepo.FindByEmail(req.Email)
	if err != nil {
		return nil, err
	}
	if user == nil || !repository.CheckPasswordHash(req.Password, user.Password) {
		return nil, apperr.Authentication("Email or password is incorrect")
	}

	tok, err := u.tokens.Issue(user.ID)
	if err != nil {
		return nil, err
	}

	return &authdto.TokenResponse{Token: tok, User: user}, nil
}

func (u *authUsecase) Logout(tokenString string) {
	u.tokens.Invalidate(tokenString)
}

func (u *authUsecase) Refresh(tokenString string) (string, error) {
	return u.tokens.Refresh(tokenString)
}

func (u *authUsecase) GetUser(userID string) (*authdomain.User, error) {
	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.NotFound("User not found")
	}
	return user, nil
}

func (u *authUsecase) UpdateProfile(userID string, req *authdto.UpdateProfileRequest) (*authdomain.User, error) {
	user, err := u.GetUser(userID)
	if err != nil {
		return nil, err
	}

	if req.Password != nil {
		if req.CurrentPassword == nil || !repository.CheckPasswordHash(*req.CurrentPassword, user.Password) {
			return nil, apperr.Authentication("Current password is incorrect")
		}
		if req.PasswordConfirmation == nil || *req.PasswordConfirmation != *req.Password {
			return nil, apperr.ValidationFields("The given data was invalid.", map[string][]string{
				"password": {"The password confirmation does not match."},
			})
		}
		hashed, err := repository.HashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		user.Password = hashed
	}

	if req.Email != nil && *req.Email != user.Email {
		// Uniqueness re-checked excluding the user's own row.
		other, err := u.userRepo.FindByEmail(*req.Email)
		if err != nil {
			return nil, err
		}
		if other != nil && other.ID != user.ID {
			return nil, apperr.ConflictFields("The given data was invalid.", map[string][]string{
				"email": {"The email has already been taken."},
			})
		}
		user.Email = *req.Email
	}

	if req.Name != nil {
		user.Name = *req.Name
	}

	if err := u.userRepo.Update(user); err != nil {
		return nil, err
	}
	return user, nil
}

func (u *authUsecase) ValidateToken(tokenString string) (*authdomain.User, error) {
	userID, err := u.tokens.Validate(tokenString)
	if err != nil {
		return nil, err
	}

	user, err := u.userRepo.FindByID(userID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperr.Authentication("invalid or expired token")
	}
	return user, nil
}
