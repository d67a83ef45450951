package usecase

import (
	"fintrack-backend/internal/apperr"
	"fintrack-backend/internal/category/domain"
	"fintrack-backend/internal/category/repository"
	"fintrack-backend/internal/ownership"
)

// categoryUsecase implements CategoryUsecase interface
type categoryUsecase struct {
	categoryRepo repository.CategoryRepository
}

// NewCategoryUsecase creates a new instance of categoryUsecase
func NewCategoryUsecase(categoryRepo repository.CategoryRepository) CategoryUsecase {
	return &categoryUsecase{categoryRepo: categoryRepo}
}

func (u *categoryUsecase) GetUserCategories(userID string) ([]*domain.Category, error) {
	return u.categoryRepo.FindByUserID(userID)
}

func (u *categoryUsecase) CreateCategory(userID, name string) (*domain.Category, error) {
	if err := u.checkUniqueName(userID, name, ""); err != nil {
		return nil, err
	}

	category := &domain.Category{
		UserID: userID,
		Name:   name,
	}
	if err := u.categoryRepo.Create(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (u *categoryUsecase) UpdateCategory(userID, categoryID, name string) (*domain.Category, error) {
	category, err := u.findOwned(userID, categoryID, "update")
	if err != nil {
		return nil, err
	}

	if err := u.checkUniqueName(userID, name, categoryID); err != nil {
		return nil, err
	}

	category.Name = name
	if err := u.categoryRepo.Update(category); err != nil {
		return nil, err
	}
	return category, nil
}

func (u *categoryUsecase) DeleteCategory(userID, categoryID string) error {
	if _, err := u.findOwned(userID, categoryID, "delete"); err != nil {
		return err
	}
	return u.categoryRepo.Delete(categoryID)
}

// findOwned loads a category and checks ownership. Missing row is NotFound
// regardless of owner; a foreign row is an authorization failure, not a 404.
func (u *categoryUsecase) findOwned(userID, categoryID, action string) (*domain.Category, error) {
	category, err := u.categoryRepo.FindByID(categoryID)
	if err != nil {
		return nil, err
	}
	if category == nil {
		return nil, apperr.NotFound("Category not found.")
	}
	if err := ownership.Authorize(userID, category, action, "category"); err != nil {
		return nil, err
	}
	return category, nil
}

func (u *categoryUsecase) checkUniqueName(userID, name, excludeID string) error {
	existing, err := u.categoryRepo.FindByUserAndName(userID, name)
	if err != nil {
		return err
	}
	if existing != nil && existing.ID != excludeID {
		return apperr.ConflictFields("The given data was invalid.", map[string][]string{
			"name": {"The name has already been taken."},
		})
	}
	return nil
}
