package delivery

import (
	"net/http"

	"fintrack-backend/internal/apperr"
	authdomain "fintrack-backend/internal/auth/domain"
	authdto "fintrack-backend/internal/auth/dto"
	"fintrack-backend/internal/auth/usecase"
	"fintrack-backend/pkg/httputil"

	"github.com/gin-gonic/gin"
)

// AuthHandler handles authentication HTTP requests
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
}

// NewAuthHandler creates a new AuthHandler
func NewAuthHandler(authUsecase usecase.AuthUsecase) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
	}
}

// Register creates a new account
// POST /api/auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req authdto.RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, httputil.BindingError(err))
		return
	}

	resp, err := h.authUsecase.Register(&req)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"success": true,
		"message": "User registered successfully",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// Login verifies credentials and returns a token
// POST /api/auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req authdto.LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, httputil.BindingError(err))
		return
	}

	resp, err := h.authUsecase.Login(&req)
	if err != nil {
		if apperr.KindOf(err) == apperr.KindAuthentication {
			c.JSON(http.StatusUnauthorized, gin.H{
				"success": false,
				"message": "Invalid credentials",
				"error":   "Email or password is incorrect",
			})
			return
		}
		httputil.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Login successful",
		"token":   resp.Token,
		"user":    resp.User,
	})
}

// Logout invalidates the presented token
// POST /api/auth/logout
func (h *AuthHandler) Logout(c *gin.Context) {
	h.authUsecase.Logout(c.GetString(ContextRawToken))

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Successfully logged out",
	})
}

// Me returns the authenticated user's profile
// GET /api/auth/user
func (h *AuthHandler) Me(c *gin.Context) {
	user := c.MustGet(ContextUserKey).(*authdomain.User)

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "User profile retrieved successfully",
		"user":    user,
	})
}

// UpdateProfile applies name/email/password changes
// PUT /api/auth/profile
func (h *AuthHandler) UpdateProfile(c *gin.Context) {
	userID := c.GetString(ContextUserID)

	var req authdto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, httputil.BindingError(err))
		return
	}

	user, err := h.authUsecase.UpdateProfile(userID, &req)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Profile updated successfully",
		"user":    user,
	})
}

// RefreshToken trades the presented bearer for a fresh one
// POST /api/auth/refresh
func (h *AuthHandler) RefreshToken(c *gin.Context) {
	newToken, err := h.authUsecase.Refresh(c.GetString(ContextRawToken))
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"success": true,
		"message": "Token refreshed successfully",
		"token":   newToken,
	})
}
