package delivery

import (
	"net/http"

	authDelivery "fintrack-backend/internal/auth/delivery"
	"fintrack-backend/internal/expense/dto"
	"fintrack-backend/internal/expense/usecase"
	"fintrack-backend/pkg/httputil"
	"fintrack-backend/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// ExpenseHandler handles expense HTTP requests
type ExpenseHandler struct {
	expenseUsecase usecase.ExpenseUsecase
}

// NewExpenseHandler creates a new ExpenseHandler
func NewExpenseHandler(expenseUsecase usecase.ExpenseUsecase) *ExpenseHandler {
	return &ExpenseHandler{expenseUsecase: expenseUsecase}
}

// ExpenseRequest is the body for both create and update.
type ExpenseRequest struct {
	CategoryID  string  `json:"category_id" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"omitempty,max=255"`
}

// Index returns one page of the caller's expenses
// GET /api/expenses?page=N
func (h *ExpenseHandler) Index(c *gin.Context) {
	userID := c.GetString(authDelivery.ContextUserID)
	params := pagination.ParsePage(c.Query("page"))

	expenses, total, err := h.expenseUsecase.ListExpenses(userID, params)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  dto.NewExpenseList(expenses),
		"links": pagination.BuildLinks(c.Request.URL.Path, params, total),
	})
}

// ByCategory returns one page of the caller's expenses in one category
// GET /api/categories/:id/expenses?page=N
func (h *ExpenseHandler) ByCategory(c *gin.Context) {
	userID := c.GetString(authDelivery.ContextUserID)
	categoryID := c.Param("id")
	params := pagination.ParsePage(c.Query("page"))

	expenses, total, err := h.expenseUsecase.ListExpensesByCategory(userID, categoryID, params)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  dto.NewExpenseList(expenses),
		"links": pagination.BuildLinks(c.Request.URL.Path, params, total),
	})
}

// Store records a new expense
// POST /api/expenses
func (h *ExpenseHandler) Store(c *gin.Context) {
	userID := c.GetString(authDelivery.ContextUserID)

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, httputil.BindingError(err))
		return
	}

	expense, err := h.expenseUsecase.CreateExpense(userID, usecase.ExpenseInput{
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "expense saved successfully.",
		"data":    dto.NewExpenseResponse(expense),
	})
}

// Update rewrites an expense
// PUT /api/expenses/:id
func (h *ExpenseHandler) Update(c *gin.Context) {
	userID := c.GetString(authDelivery.ContextUserID)
	expenseID := c.Param("id")

	var req ExpenseRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, httputil.BindingError(err))
		return
	}

	expense, err := h.expenseUsecase.UpdateExpense(userID, expenseID, usecase.ExpenseInput{
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Expense updated successfully.",
		"data":    dto.NewExpenseResponse(expense),
	})
}

// Destroy deletes an expense
// DELETE /api/expenses/:id
func (h *ExpenseHandler) Destroy(c *gin.Context) {
	userID := c.GetString(authDelivery.ContextUserID)
	expenseID := c.Param("id")

	if err := h.expenseUsecase.DeleteExpense(userID, expenseID); err != nil {
		httputil.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
