package delivery

import (
	"net/http"

	authDelivery "fintrack-backend/internal/auth/delivery"
	"fintrack-backend/internal/category/usecase"
	"fintrack-backend/pkg/httputil"

	"github.com/gin-gonic/gin"
)

// CategoryHandler handles category HTTP requests
type CategoryHandler struct {
	categoryUsecase usecase.CategoryUsecase
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryUsecase usecase.CategoryUsecase) *CategoryHandler {
	return &CategoryHandler{categoryUsecase: categoryUsecase}
}

// CategoryRequest is the body for both create and update.
type CategoryRequest struct {
	Name string `json:"name" binding:"required,max=25"`
}

// Index returns the caller's categories
// GET /api/categories
func (h *CategoryHandler) Index(c *gin.Context) {
	userID := c.GetString(authDelivery.ContextUserID)

	categories, err := h.categoryUsecase.GetUserCategories(userID)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"data": categories})
}

// Store creates a category
// POST /api/categories
func (h *CategoryHandler) Store(c *gin.Context) {
	userID := c.GetString(authDelivery.ContextUserID)

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, httputil.BindingError(err))
		return
	}

	category, err := h.categoryUsecase.CreateCategory(userID, req.Name)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Category saved successfully.",
		"data":    category,
	})
}

// Update renames a category
// PUT /api/categories/:id
func (h *CategoryHandler) Update(c *gin.Context) {
	userID := c.GetString(authDelivery.ContextUserID)
	categoryID := c.Param("id")

	var req CategoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, httputil.BindingError(err))
		return
	}

	category, err := h.categoryUsecase.UpdateCategory(userID, categoryID, req.Name)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Category updated successfully.",
		"data":    category,
	})
}

// Destroy deletes a category
// DELETE /api/categories/:id
func (h *CategoryHandler) Destroy(c *gin.Context) {
	userID := c.GetString(authDelivery.ContextUserID)
	categoryID := c.Param("id")

	if err := h.categoryUsecase.DeleteCategory(userID, categoryID); err != nil {
		httputil.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
