package main

import (
	"log"

	api "fintrack-backend/cmd/api"
	authdomain "fintrack-backend/internal/auth/domain"
	authRepo "fintrack-backend/internal/auth/repository"
	"fintrack-backend/internal/auth/token"
	authUsecase "fintrack-backend/internal/auth/usecase"
	categorydomain "fintrack-backend/internal/category/domain"
	categoryRepo "fintrack-backend/internal/category/repository"
	categoryUsecase "fintrack-backend/internal/category/usecase"
	expensedomain "fintrack-backend/internal/expense/domain"
	expenseRepo "fintrack-backend/internal/expense/repository"
	expenseUsecase "fintrack-backend/internal/expense/usecase"
	incomedomain "fintrack-backend/internal/income/domain"
	incomeRepo "fintrack-backend/internal/income/repository"
	incomeUsecase "fintrack-backend/internal/income/usecase"
	"fintrack-backend/pkg/config"
	"fintrack-backend/pkg/database"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// A missing signing secret is a startup failure, not a per-request one
	if cfg.JWTSecret == "" {
		log.Fatal("JWT_SECRET must be configured")
	}

	// Initialize database
	db, err := database.NewPostgresConnection(cfg)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Auto-migrate database schemas
	if err := db.AutoMigrate(&authdomain.User{}, &categorydomain.Category{}, &expensedomain.Expense{}, &incomedomain.Income{}); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Initialize repositories (dependency injection)
	userRepository := authRepo.NewUserRepository(db)
	categoryRepository := categoryRepo.NewGormCategoryRepository(db)
	expenseRepository := expenseRepo.NewGormExpenseRepository(db)
	incomeRepository := incomeRepo.NewGormIncomeRepository(db)

	// Token service holds the process-wide signing secret
	tokenService := token.NewService([]byte(cfg.JWTSecret), cfg.JWTTTL)

	// Initialize use cases (dependency injection)
	authUc := authUsecase.NewAuthUsecase(userRepository, tokenService)
	categoryUc := categoryUsecase.NewCategoryUsecase(categoryRepository)
	expenseUc := expenseUsecase.NewExpenseUsecase(expenseRepository, categoryRepository)
	incomeUc := incomeUsecase.NewIncomeUsecase(incomeRepository)

	// Initialize HTTP handler
	handler := api.NewHandler(authUc, categoryUc, expenseUc, incomeUc, cfg)

	// Start server
	log.Printf("Server starting on port %s", cfg.Port)
	if err := handler.Start(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
