package usecase

import (
	"fintrack-backend/internal/apperr"
	categoryRepo "fintrack-backend/internal/category/repository"
	"fintrack-backend/internal/expense/domain"
	"fintrack-backend/internal/expense/repository"
	"fintrack-backend/internal/ownership"
	"fintrack-backend/pkg/pagination"
)

// expenseUsecase implements ExpenseUsecase interface
type expenseUsecase struct {
	expenseRepo  repository.ExpenseRepository
	categoryRepo categoryRepo.CategoryRepository
}

// NewExpenseUsecase creates a new instance of expenseUsecase
func NewExpenseUsecase(expenseRepo repository.ExpenseRepository, categoryRepo categoryRepo.CategoryRepository) ExpenseUsecase {
	return &expenseUsecase{
		expenseRepo:  expenseRepo,
		categoryRepo: categoryRepo,
	}
}

func (u *expenseUsecase) ListExpenses(userID string, p pagination.Params) ([]*domain.Expense, int64, error) {
	return u.expenseRepo.FindByUserID(userID, p.Limit(), p.Offset())
}

func (u *expenseUsecase) ListExpensesByCategory(userID, categoryID string, p pagination.Params) ([]*domain.Expense, int64, error) {
	// The category itself is checked first so a foreign category reads as a
	// denial rather than an empty page.
	category, err := u.categoryRepo.FindByID(categoryID)
	if err != nil {
		return nil, 0, err
	}
	if category == nil {
		return nil, 0, apperr.NotFound("Category not found.")
	}
	if err := ownership.Authorize(userID, category, "view", "category"); err != nil {
		return nil, 0, err
	}

	return u.expenseRepo.FindByUserAndCategory(userID, categoryID, p.Limit(), p.Offset())
}

func (u *expenseUsecase) CreateExpense(userID string, req ExpenseInput) (*domain.Expense, error) {
	if err := u.resolveCategory(userID, req.CategoryID); err != nil {
		return nil, err
	}

	expense := &domain.Expense{
		UserID:      userID,
		CategoryID:  req.CategoryID,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if err := u.expenseRepo.Create(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (u *expenseUsecase) UpdateExpense(userID, expenseID string, req ExpenseInput) (*domain.Expense, error) {
	expense, err := u.findOwned(userID, expenseID, "update")
	if err != nil {
		return nil, err
	}

	if err := u.resolveCategory(userID, req.CategoryID); err != nil {
		return nil, err
	}

	expense.CategoryID = req.CategoryID
	expense.Amount = req.Amount
	expense.Description = req.Description
	if err := u.expenseRepo.Update(expense); err != nil {
		return nil, err
	}
	return expense, nil
}

func (u *expenseUsecase) DeleteExpense(userID, expenseID string) error {
	if _, err := u.findOwned(userID, expenseID, "delete"); err != nil {
		return err
	}
	return u.expenseRepo.Delete(expenseID)
}

func (u *expenseUsecase) findOwned(userID, expenseID, action string) (*domain.Expense, error) {
	expense, err := u.expenseRepo.FindByID(expenseID)
	if err != nil {
		return nil, err
	}
	if expense == nil {
		return nil, apperr.NotFound("Expense not found.")
	}
	if err := ownership.Authorize(userID, expense, action, "expense"); err != nil {
		return nil, err
	}
	return expense, nil
}

// resolveCategory enforces the write-time foreign key: the category must
// exist (validation failure otherwise) and must belong to the caller
// (authorization failure otherwise).
func (u *expenseUsecase) resolveCategory(userID, categoryID string) error {
	category, err := u.categoryRepo.FindByID(categoryID)
	if err != nil {
		return err
	}
	if category == nil {
		return apperr.ValidationFields("The given data was invalid.", map[string][]string{
			"category_id": {"The selected category_id is invalid."},
		})
	}
	return ownership.Authorize(userID, category, "use", "category")
}
