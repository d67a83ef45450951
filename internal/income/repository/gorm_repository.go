package repository

import (
	"errors"
	"time"

	"fintrack-backend/internal/income/domain"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// gormIncomeRepository implements IncomeRepository using GORM
type gormIncomeRepository struct {
	db *gorm.DB
}

// NewGormIncomeRepository creates a new GORM-based IncomeRepository
func NewGormIncomeRepository(db *gorm.DB) IncomeRepository {
	return &gormIncomeRepository{db: db}
}

func (r *gormIncomeRepository) Create(income *domain.Income) error {
	if income.ID == "" {
		income.ID = uuid.New().String()
	}
	income.CreatedAt = time.Now()
	income.UpdatedAt = time.Now()
	return r.db.Create(income).Error
}

func (r *gormIncomeRepository) FindByID(id string) (*domain.Income, error) {
	var income domain.Income
	err := r.db.Where("id = ?", id).First(&income).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &income, nil
}

func (r *gormIncomeRepository) FindByUserID(userID string, limit, offset int) ([]*domain.Income, int64, error) {
	query := r.db.Model(&domain.Income{}).Where("user_id = ?", userID)

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	var incomes []*domain.Income
	err := query.Order("created_at DESC").Limit(limit).Offset(offset).Find(&incomes).Error
	return incomes, total, err
}

func (r *gormIncomeRepository) Update(income *domain.Income) error {
	income.UpdatedAt = time.Now()
	return r.db.Save(income).Error
}

func (r *gormIncomeRepository) Delete(id string) error {
	return r.db.Delete(&domain.Income{}, "id = ?", id).Error
}
