package api

import (
	"net/http"

	"fintrack-backend/internal/auth/delivery"
	authUsecase "fintrack-backend/internal/auth/usecase"
	categoryDelivery "fintrack-backend/internal/category/delivery"
	categoryUsecase "fintrack-backend/internal/category/usecase"
	expenseDelivery "fintrack-backend/internal/expense/delivery"
	expenseUsecase "fintrack-backend/internal/expense/usecase"
	incomeDelivery "fintrack-backend/internal/income/delivery"
	incomeUsecase "fintrack-backend/internal/income/usecase"

	"github.com/gin-gonic/gin"
)

func SetupRoutes(r *gin.Engine, authUc authUsecase.AuthUsecase, categoryUc categoryUsecase.CategoryUsecase, expenseUc expenseUsecase.ExpenseUsecase, incomeUc incomeUsecase.IncomeUsecase) {
	authHandler := delivery.NewAuthHandler(authUc)
	categoryHandler := categoryDelivery.NewCategoryHandler(categoryUc)
	expenseHandler := expenseDelivery.NewExpenseHandler(expenseUc)
	incomeHandler := incomeDelivery.NewIncomeHandler(incomeUc)

	api := r.Group("/api")
	{
		// Health check (no auth required)
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{"status": "ok"})
		})

		// Auth routes
		auth := api.Group("/auth")
		{
			auth.POST("/register", authHandler.Register)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", delivery.AuthMiddleware(authUc), authHandler.Logout)
			auth.GET("/user", delivery.AuthMiddleware(authUc), authHandler.Me)
			auth.PUT("/profile", delivery.AuthMiddleware(authUc), authHandler.UpdateProfile)
			auth.POST("/refresh", delivery.AuthMiddleware(authUc), authHandler.RefreshToken)
		}

		// Category routes (protected)
		categories := api.Group("/categories")
		categories.Use(delivery.AuthMiddleware(authUc))
		{
			categories.GET("", categoryHandler.Index)
			categories.POST("", categoryHandler.Store)
			categories.PUT("/:id", categoryHandler.Update)
			categories.DELETE("/:id", categoryHandler.Destroy)
			categories.GET("/:id/expenses", expenseHandler.ByCategory)
		}

		// Expense routes (protected)
		expenses := api.Group("/expenses")
		expenses.Use(delivery.AuthMiddleware(authUc))
		{
			expenses.GET("", expenseHandler.Index)
			expenses.POST("", expenseHandler.Store)
			expenses.PUT("/:id", expenseHandler.Update)
			expenses.DELETE("/:id", expenseHandler.Destroy)
		}

		// Income routes (protected)
		incomes := api.Group("/incomes")
		incomes.Use(delivery.AuthMiddleware(authUc))
		{
			incomes.GET("", incomeHandler.Index)
			incomes.POST("", incomeHandler.Store)
			incomes.PUT("/:id", incomeHandler.Update)
			incomes.DELETE("/:id", incomeHandler.Destroy)
		}
	}
}
