package api

import (
	authUsecase "fintrack-backend/internal/auth/usecase"
	categoryUsecase "fintrack-backend/internal/category/usecase"
	expenseUsecase "fintrack-backend/internal/expense/usecase"
	incomeUsecase "fintrack-backend/internal/income/usecase"
	"fintrack-backend/pkg/config"

	"github.com/gin-gonic/gin"
)

type Handler struct {
	authUsecase     authUsecase.AuthUsecase
	categoryUsecase categoryUsecase.CategoryUsecase
	expenseUsecase  expenseUsecase.ExpenseUsecase
	incomeUsecase   incomeUsecase.IncomeUsecase
	config          *config.Config
}

func NewHandler(authUc authUsecase.AuthUsecase, categoryUc categoryUsecase.CategoryUsecase, expenseUc expenseUsecase.ExpenseUsecase, incomeUc incomeUsecase.IncomeUsecase, cfg *config.Config) *Handler {
	return &Handler{
		authUsecase:     authUc,
		categoryUsecase: categoryUc,
		expenseUsecase:  expenseUc,
		incomeUsecase:   incomeUc,
		config:          cfg,
	}
}

// Engine builds the configured gin engine; split from Start so tests can
// drive it with httptest.
func (h *Handler) Engine() *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.Default()

	// CORS middleware
	r.Use(func(c *gin.Context) {
		origin := c.Request.Header.Get("Origin")
		if origin != "" {
			c.Writer.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			c.Writer.Header().Set("Access-Control-Allow-Origin", "*")
		}

		c.Writer.Header().Set("Access-Control-Allow-Credentials", "true")
		c.Writer.Header().Set("Access-Control-Allow-Headers", "Content-Type, Content-Length, Accept-Encoding, Authorization, accept, origin, Cache-Control, X-Requested-With")
		c.Writer.Header().Set("Access-Control-Allow-Methods", "POST, OPTIONS, GET, PUT, DELETE")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	})

	SetupRoutes(r, h.authUsecase, h.categoryUsecase, h.expenseUsecase, h.incomeUsecase)
	return r
}

func (h *Handler) Start(addr string) error {
	return h.Engine().Run(addr)
}
