package delivery

import (
	"net/http"

	authDelivery "fintrack-backend/internal/auth/delivery"
	"fintrack-backend/internal/income/dto"
	"fintrack-backend/internal/income/usecase"
	"fintrack-backend/pkg/httputil"
	"fintrack-backend/pkg/pagination"

	"github.com/gin-gonic/gin"
)

// IncomeHandler handles income HTTP requests
type IncomeHandler struct {
	incomeUsecase usecase.IncomeUsecase
}

// NewIncomeHandler creates a new IncomeHandler
func NewIncomeHandler(incomeUsecase usecase.IncomeUsecase) *IncomeHandler {
	return &IncomeHandler{incomeUsecase: incomeUsecase}
}

// IncomeRequest is the body for both create and update.
type IncomeRequest struct {
	Source      string  `json:"source" binding:"required,max=255"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Description string  `json:"description" binding:"omitempty,max=255"`
}

// Index returns one page of the caller's incomes
// GET /api/incomes?page=N
func (h *IncomeHandler) Index(c *gin.Context) {
	userID := c.GetString(authDelivery.ContextUserID)
	params := pagination.ParsePage(c.Query("page"))

	incomes, total, err := h.incomeUsecase.ListIncomes(userID, params)
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"data":  dto.NewIncomeList(incomes),
		"links": pagination.BuildLinks(c.Request.URL.Path, params, total),
	})
}

// Store records a new income
// POST /api/incomes
func (h *IncomeHandler) Store(c *gin.Context) {
	userID := c.GetString(authDelivery.ContextUserID)

	var req IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, httputil.BindingError(err))
		return
	}

	income, err := h.incomeUsecase.CreateIncome(userID, usecase.IncomeInput{
		Source:      req.Source,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"status":  "success",
		"message": "Income saved successfully.",
		"data":    dto.NewIncomeResponse(income),
	})
}

// Update rewrites an income
// PUT /api/incomes/:id
func (h *IncomeHandler) Update(c *gin.Context) {
	userID := c.GetString(authDelivery.ContextUserID)
	incomeID := c.Param("id")

	var req IncomeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httputil.RespondError(c, httputil.BindingError(err))
		return
	}

	income, err := h.incomeUsecase.UpdateIncome(userID, incomeID, usecase.IncomeInput{
		Source:      req.Source,
		Amount:      req.Amount,
		Description: req.Description,
	})
	if err != nil {
		httputil.RespondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"status":  "success",
		"message": "Income updated successfully.",
		"data":    dto.NewIncomeResponse(income),
	})
}

// Destroy deletes an income
// DELETE /api/incomes/:id
func (h *IncomeHandler) Destroy(c *gin.Context) {
	userID := c.GetString(authDelivery.ContextUserID)
	incomeID := c.Param("id")

	if err := h.incomeUsecase.DeleteIncome(userID, incomeID); err != nil {
		httputil.RespondError(c, err)
		return
	}

	c.Status(http.StatusNoContent)
}
