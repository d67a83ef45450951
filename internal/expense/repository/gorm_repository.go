package repository

import (
	"errors"
	"time"

	"fintrack-backend/internal/expense/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormExpenseRepository implements ExpenseRepository using GORM
type gormExpenseRepository struct {
	db *gorm.DB
}

// NewGormExpenseRepository creates a new GORM-based ExpenseRepository
func NewGormExpenseRepository(db *gorm.DB) ExpenseRepository {
	return &gormExpenseRepository{db: db}
}

func (r *gormExpenseRepository) Create(expense *domain.Expense) error {
	if expense.ID == "" {
		expense.ID = uuid.New().String()
	}
	expense.CreatedAt = time.Now()
	expense.UpdatedAt = time.Now()
	return r.db.Create(expense).Error
}

func (r *gormExpenseRepository) FindByID(id string) (*domain.Expense, error) {
	var expense domain.Expense
	err := r.db.Where("id = ?", id).First(&expense).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &expense, nil
}

func (r *gormExpenseRepository) FindByUserID(userID string, limit, offset int) ([]*domain.Expense, int64, error) {
	query := r.db.Model(&domain.Expense{}).Where("expenses.user_id = ?", userID)
	return r.page(query, limit, offset)
}

func (r *gormExpenseRepository) FindByUserAndCategory(userID, categoryID string, limit, offset int) ([]*domain.Expense, int64, error) {
	query := r.db.Model(&domain.Expense{}).
		Where("expenses.user_id = ? AND expenses.category_id = ?", userID, categoryID)
	return r.page(query, limit, offset)
}

// page counts the scoped rows, then fetches one page with the category name
// joined in.
func (r *gormExpenseRepository) page(query *gorm.DB, limit, offset int) ([]*domain.Expense, int64, error) {
	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var expenses []*domain.Expense
	err := query.
		Select("expenses.*, categories.name AS category_name").
		Joins("LEFT JOIN categories ON categories.id = expenses.category_id").
		Order("expenses.created_at DESC").
		Limit(limit).Offset(offset).
		Find(&expenses).Error

	return expenses, total, err
}

func (r *gormExpenseRepository) Update(expense *domain.Expense) error {
	expense.UpdatedAt = time.Now()
	return r.db.Save(expense).Error
}

func (r *gormExpenseRepository) Delete(id string) error {
	return r.db.Delete(&domain.Expense{}, "id = ?", id).Error
}
