package usecase

import (
	"fintrack-backend/internal/apperr"
	"fintrack-backend/internal/income/domain"
	"fintrack-backend/internal/income/repository"
	"fintrack-backend/internal/ownership"
	"fintrack-backend/pkg/pagination"
)

// incomeUsecase implements IncomeUsecase interface
type incomeUsecase struct {
	incomeRepo repository.IncomeRepository
}

// NewIncomeUsecase creates a new instance of incomeUsecase
func NewIncomeUsecase(incomeRepo repository.IncomeRepository) IncomeUsecase {
	return &incomeUsecase{incomeRepo: incomeRepo}
}

func (u *incomeUsecase) ListIncomes(userID string, p pagination.Params) ([]*domain.Income, int64, error) {
	return u.incomeRepo.FindByUserID(userID, p.Limit(), p.Offset())
}

func (u *incomeUsecase) CreateIncome(userID string, req IncomeInput) (*domain.Income, error) {
	income := &domain.Income{
		UserID:      userID,
		Source:      req.Source,
		Amount:      req.Amount,
		Description: req.Description,
	}
	if err := u.incomeRepo.Create(income); err != nil {
		return nil, err
	}
	return income, nil
}

func (u *incomeUsecase) UpdateIncome(userID, incomeID string, req IncomeInput) (*domain.Income, error) {
	income, err := u.findOwned(userID, incomeID, "update")
	if err != nil {
		return nil, err
	}

	income.Source = req.Source
	income.Amount = req.Amount
	income.Description = req.Description
	if err := u.incomeRepo.Update(income); err != nil {
		return nil, err
	}
	return income, nil
}

func (u *incomeUsecase) DeleteIncome(userID, incomeID string) error {
	if _, err := u.findOwned(userID, incomeID, "delete"); err != nil {
		return err
	}
	return u.incomeRepo.Delete(incomeID)
}

func (u *incomeUsecase) findOwned(userID, incomeID, action string) (*domain.Income, error) {
	income, err := u.incomeRepo.FindByID(incomeID)
	if err != nil {
		return nil, err
	}
	if income == nil {
		return nil, apperr.NotFound("Income not found.")
	}
	if err := ownership.Authorize(userID, income, action, "income"); err != nil {
		return nil, err
	}
	return income, nil
}
