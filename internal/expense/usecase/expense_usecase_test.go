package usecase

import (
	"fmt"
	"path/filepath"
	"testing"

	"fintrack-backend/internal/apperr"
	categorydomain "fintrack-backend/internal/category/domain"
	categoryRepo "fintrack-backend/internal/category/repository"
	"fintrack-backend/internal/expense/domain"
	"fintrack-backend/internal/expense/repository"
	"fintrack-backend/pkg/pagination"

	"github.com/glebarez/sqlite"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type fixture struct {
	uc         ExpenseUsecase
	categories categoryRepo.CategoryRepository
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "test.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&categorydomain.Category{}, &domain.Expense{}))

	categories := categoryRepo.NewGormCategoryRepository(db)
	return &fixture{
		uc:         NewExpenseUsecase(repository.NewGormExpenseRepository(db), categories),
		categories: categories,
	}
}

func (f *fixture) category(t *testing.T, userID, name string) *categorydomain.Category {
	t.Helper()
	c := &categorydomain.Category{UserID: userID, Name: name}
	require.NoError(t, f.categories.Create(c))
	return c
}

func page(n int) pagination.Params {
	return pagination.ParsePage(fmt.Sprintf("%d", n))
}

func TestCreateExpense(t *testing.T) {
	f := newFixture(t)
	food := f.category(t, "alice", "Food")

	expense, err := f.uc.CreateExpense("alice", ExpenseInput{
		CategoryID:  food.ID,
		Amount:      12.50,
		Description: "lunch",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, expense.ID)
	assert.Equal(t, "alice", expense.UserID)
	assert.Equal(t, food.ID, expense.CategoryID)
}

func TestCreateExpense_NonexistentCategory(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.CreateExpense("alice", ExpenseInput{CategoryID: "missing", Amount: 5})
	require.Error(t, err)
	assert.Equal(t, apperr.KindValidation, apperr.KindOf(err))
}

func TestCreateExpense_ForeignCategory(t *testing.T) {
	f := newFixture(t)
	bobs := f.category(t, "bob", "Travel")

	// The category exists but belongs to someone else: denial, not validation
	_, err := f.uc.CreateExpense("alice", ExpenseInput{CategoryID: bobs.ID, Amount: 5})
	require.Error(t, err)
	assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))
}

func TestUpdateExpense(t *testing.T) {
	f := newFixture(t)
	food := f.category(t, "alice", "Food")
	rent := f.category(t, "alice", "Rent")

	expense, err := f.uc.CreateExpense("alice", ExpenseInput{CategoryID: food.ID, Amount: 10})
	require.NoError(t, err)

	updated, err := f.uc.UpdateExpense("alice", expense.ID, ExpenseInput{
		CategoryID:  rent.ID,
		Amount:      900,
		Description: "june",
	})
	require.NoError(t, err)
	assert.Equal(t, rent.ID, updated.CategoryID)
	assert.Equal(t, 900.0, updated.Amount)
	assert.Equal(t, "june", updated.Description)
}

func TestUpdateExpense_ForeignExpense(t *testing.T) {
	f := newFixture(t)
	food := f.category(t, "alice", "Food")

	expense, err := f.uc.CreateExpense("alice", ExpenseInput{CategoryID: food.ID, Amount: 10})
	require.NoError(t, err)

	_, err = f.uc.UpdateExpense("bob", expense.ID, ExpenseInput{CategoryID: food.ID, Amount: 1})
	require.Error(t, err)
	assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))
}

func TestUpdateExpense_NotFound(t *testing.T) {
	f := newFixture(t)

	_, err := f.uc.UpdateExpense("alice", "missing", ExpenseInput{CategoryID: "x", Amount: 1})
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeleteExpense_ForeignExpense(t *testing.T) {
	f := newFixture(t)
	food := f.category(t, "alice", "Food")

	expense, err := f.uc.CreateExpense("alice", ExpenseInput{CategoryID: food.ID, Amount: 10})
	require.NoError(t, err)

	err = f.uc.DeleteExpense("bob", expense.ID)
	require.Error(t, err)
	assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))

	// Still retrievable by its owner
	expenses, _, err := f.uc.ListExpenses("alice", page(1))
	require.NoError(t, err)
	assert.Len(t, expenses, 1)
}

func TestListExpenses_Pagination(t *testing.T) {
	f := newFixture(t)
	food := f.category(t, "alice", "Food")

	for i := 0; i < 25; i++ {
		_, err := f.uc.CreateExpense("alice", ExpenseInput{CategoryID: food.ID, Amount: float64(i + 1)})
		require.NoError(t, err)
	}

	first, total, err := f.uc.ListExpenses("alice", page(1))
	require.NoError(t, err)
	assert.EqualValues(t, 25, total)
	assert.Len(t, first, 10)

	second, _, err := f.uc.ListExpenses("alice", page(2))
	require.NoError(t, err)
	assert.Len(t, second, 10)

	third, _, err := f.uc.ListExpenses("alice", page(3))
	require.NoError(t, err)
	assert.Len(t, third, 5)

	// Past the last page: empty set, not an error
	fourth, _, err := f.uc.ListExpenses("alice", page(4))
	require.NoError(t, err)
	assert.Empty(t, fourth)
}

func TestListExpenses_AttachesCategoryName(t *testing.T) {
	f := newFixture(t)
	food := f.category(t, "alice", "Food")

	_, err := f.uc.CreateExpense("alice", ExpenseInput{CategoryID: food.ID, Amount: 3})
	require.NoError(t, err)

	expenses, _, err := f.uc.ListExpenses("alice", page(1))
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, "Food", expenses[0].CategoryName)
}

func TestListExpenses_ScopedToOwner(t *testing.T) {
	f := newFixture(t)
	aliceFood := f.category(t, "alice", "Food")
	bobFood := f.category(t, "bob", "Food")

	_, err := f.uc.CreateExpense("alice", ExpenseInput{CategoryID: aliceFood.ID, Amount: 1})
	require.NoError(t, err)
	_, err = f.uc.CreateExpense("bob", ExpenseInput{CategoryID: bobFood.ID, Amount: 2})
	require.NoError(t, err)

	expenses, total, err := f.uc.ListExpenses("alice", page(1))
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, expenses, 1)
	assert.Equal(t, "alice", expenses[0].UserID)
}

func TestListExpensesByCategory(t *testing.T) {
	f := newFixture(t)
	food := f.category(t, "alice", "Food")
	rent := f.category(t, "alice", "Rent")

	_, err := f.uc.CreateExpense("alice", ExpenseInput{CategoryID: food.ID, Amount: 1})
	require.NoError(t, err)
	_, err = f.uc.CreateExpense("alice", ExpenseInput{CategoryID: rent.ID, Amount: 2})
	require.NoError(t, err)

	expenses, total, err := f.uc.ListExpensesByCategory("alice", food.ID, page(1))
	require.NoError(t, err)
	assert.EqualValues(t, 1, total)
	require.Len(t, expenses, 1)
	assert.Equal(t, food.ID, expenses[0].CategoryID)
}

func TestListExpensesByCategory_ForeignCategory(t *testing.T) {
	f := newFixture(t)
	bobs := f.category(t, "bob", "Travel")

	_, _, err := f.uc.ListExpensesByCategory("alice", bobs.ID, page(1))
	require.Error(t, err)
	assert.Equal(t, apperr.KindAuthorization, apperr.KindOf(err))
}

func TestListExpensesByCategory_MissingCategory(t *testing.T) {
	f := newFixture(t)

	_, _, err := f.uc.ListExpensesByCategory("alice", "missing", page(1))
	require.Error(t, err)
	assert.Equal(t, apperr.KindNotFound, apperr.KindOf(err))
}

func TestDeleteCategory_LeavesExpensesOrphaned(t *testing.T) {
	f := newFixture(t)
	food := f.category(t, "alice", "Food")

	expense, err := f.uc.CreateExpense("alice", ExpenseInput{CategoryID: food.ID, Amount: 7})
	require.NoError(t, err)

	require.NoError(t, f.categories.Delete(food.ID))

	// The expense survives with a dangling reference and no joined name
	expenses, _, err := f.uc.ListExpenses("alice", page(1))
	require.NoError(t, err)
	require.Len(t, expenses, 1)
	assert.Equal(t, expense.ID, expenses[0].ID)
	assert.Empty(t, expenses[0].CategoryName)
}
