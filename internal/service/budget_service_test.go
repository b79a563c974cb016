package service_test

import (
	"context"
	"database/sql"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"finanzas-backend/internal/categories"
	"finanzas-backend/internal/domain"
	"finanzas-backend/internal/service"
)

// Two real subcategories from the taxonomy, used across the budget tests.
var (
	testSubA = categories.All()[0].Subcategories[0]
	testSubB = categories.All()[1].Subcategories[0]
)

func TestBudgetService_AddExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		expenseRepo := new(MockExpenseRepo)
		svc := service.NewBudgetService(expenseRepo, new(MockLifestyleRepo))

		expense := &domain.Expense{
			UserID:        "user-1",
			Name:          "Renta enero",
			Amount:        decimal.NewFromInt(800),
			CategoryID:    testSubA.ID / 100,
			SubcategoryID: testSubA.ID,
			Month:         0,
		}
		expenseRepo.On("Create", ctx, expense).Return(nil)

		err := svc.AddExpense(ctx, expense)
		assert.NoError(t, err)
	})

	t.Run("Subcategory must belong to the category", func(t *testing.T) {
		svc := service.NewBudgetService(new(MockExpenseRepo), new(MockLifestyleRepo))

		expense := &domain.Expense{
			UserID:        "user-1",
			Name:          "Renta",
			Amount:        decimal.NewFromInt(800),
			CategoryID:    testSubB.ID / 100,
			SubcategoryID: testSubA.ID,
			Month:         0,
		}
		err := svc.AddExpense(ctx, expense)
		assert.ErrorIs(t, err, service.ErrInvalidExpense)
	})

	t.Run("Month out of range", func(t *testing.T) {
		svc := service.NewBudgetService(new(MockExpenseRepo), new(MockLifestyleRepo))

		expense := &domain.Expense{
			UserID:        "user-1",
			Name:          "Renta",
			Amount:        decimal.NewFromInt(800),
			CategoryID:    testSubA.ID / 100,
			SubcategoryID: testSubA.ID,
			Month:         12,
		}
		err := svc.AddExpense(ctx, expense)
		assert.ErrorIs(t, err, service.ErrInvalidMonth)
	})

	t.Run("Negative amount", func(t *testing.T) {
		svc := service.NewBudgetService(new(MockExpenseRepo), new(MockLifestyleRepo))

		expense := &domain.Expense{
			UserID:        "user-1",
			Name:          "Renta",
			Amount:        decimal.NewFromInt(-1),
			CategoryID:    testSubA.ID / 100,
			SubcategoryID: testSubA.ID,
		}
		err := svc.AddExpense(ctx, expense)
		assert.ErrorIs(t, err, service.ErrNegativeAmount)
	})
}

func TestBudgetService_DeleteExpense(t *testing.T) {
	ctx := context.Background()

	t.Run("Hides other users' expenses", func(t *testing.T) {
		expenseRepo := new(MockExpenseRepo)
		svc := service.NewBudgetService(expenseRepo, new(MockLifestyleRepo))

		expenseRepo.On("GetByID", ctx, "exp-1").Return(&domain.Expense{ID: "exp-1", UserID: "user-1"}, nil)

		err := svc.DeleteExpense(ctx, "user-2", "exp-1")
		assert.ErrorIs(t, err, service.ErrExpenseNotFound)
	})
}

func TestBudgetService_GetLifestyle(t *testing.T) {
	ctx := context.Background()

	t.Run("Fresh account gets an empty document", func(t *testing.T) {
		lifestyleRepo := new(MockLifestyleRepo)
		svc := service.NewBudgetService(new(MockExpenseRepo), lifestyleRepo)

		lifestyleRepo.On("GetByUser", ctx, "user-1").Return(nil, sql.ErrNoRows)

		lifestyle, err := svc.GetLifestyle(ctx, "user-1")
		require.NoError(t, err)
		assert.Equal(t, "user-1", lifestyle.UserID)
		assert.Empty(t, lifestyle.Budgets)
		assert.True(t, lifestyle.Income.IsZero())
	})
}

func TestBudgetService_SaveLifestyle(t *testing.T) {
	ctx := context.Background()

	t.Run("Rejects unknown subcategory", func(t *testing.T) {
		svc := service.NewBudgetService(new(MockExpenseRepo), new(MockLifestyleRepo))

		lifestyle := &domain.Lifestyle{
			UserID:  "user-1",
			Income:  decimal.NewFromInt(2000),
			Budgets: []domain.LifestyleBudget{{SubcategoryID: 99999, Budget: decimal.NewFromInt(100)}},
		}
		err := svc.SaveLifestyle(ctx, lifestyle)
		assert.ErrorIs(t, err, service.ErrInvalidExpense)
	})
}

func TestBudgetService_GetMonthlySummary(t *testing.T) {
	ctx := context.Background()

	t.Run("Grades spending against the budgets", func(t *testing.T) {
		expenseRepo := new(MockExpenseRepo)
		lifestyleRepo := new(MockLifestyleRepo)
		svc := service.NewBudgetService(expenseRepo, lifestyleRepo)

		expenses := []domain.Expense{
			{SubcategoryID: testSubA.ID, Amount: decimal.NewFromInt(75)},  // 75% of 100, warning
			{SubcategoryID: testSubB.ID, Amount: decimal.NewFromInt(150)}, // 150% of 100, exceeded
		}
		lifestyle := &domain.Lifestyle{
			UserID: "user-1",
			Income: decimal.NewFromInt(2000),
			Budgets: []domain.LifestyleBudget{
				{SubcategoryID: testSubA.ID, Budget: decimal.NewFromInt(100)},
				{SubcategoryID: testSubB.ID, Budget: decimal.NewFromInt(100)},
			},
		}

		expenseRepo.On("ListByUserMonth", ctx, "user-1", 3).Return(expenses, nil)
		lifestyleRepo.On("GetByUser", ctx, "user-1").Return(lifestyle, nil)

		summary, err := svc.GetMonthlySummary(ctx, "user-1", 3)
		require.NoError(t, err)
		assert.Equal(t, 3, summary.Month)
		assert.True(t, summary.TotalSpent.Equal(decimal.NewFromInt(225)))
		assert.True(t, summary.Income.Equal(decimal.NewFromInt(2000)))

		// Worst first.
		require.Len(t, summary.Subcategories, 2)
		assert.Equal(t, testSubB.ID, summary.Subcategories[0].SubcategoryID)
		assert.Equal(t, domain.BudgetStatusExceeded, summary.Subcategories[0].Status)
		assert.Equal(t, testSubA.ID, summary.Subcategories[1].SubcategoryID)
		assert.Equal(t, domain.BudgetStatusWarning, summary.Subcategories[1].Status)

		require.Len(t, summary.Critical, 2)
	})

	t.Run("Under threshold stays normal", func(t *testing.T) {
		expenseRepo := new(MockExpenseRepo)
		lifestyleRepo := new(MockLifestyleRepo)
		svc := service.NewBudgetService(expenseRepo, lifestyleRepo)

		expenses := []domain.Expense{
			{SubcategoryID: testSubA.ID, Amount: decimal.NewFromInt(69)},
		}
		lifestyle := &domain.Lifestyle{
			UserID:  "user-1",
			Budgets: []domain.LifestyleBudget{{SubcategoryID: testSubA.ID, Budget: decimal.NewFromInt(100)}},
		}

		expenseRepo.On("ListByUserMonth", ctx, "user-1", 0).Return(expenses, nil)
		lifestyleRepo.On("GetByUser", ctx, "user-1").Return(lifestyle, nil)

		summary, err := svc.GetMonthlySummary(ctx, "user-1", 0)
		require.NoError(t, err)
		require.Len(t, summary.Subcategories, 1)
		assert.Equal(t, domain.BudgetStatusNormal, summary.Subcategories[0].Status)
		assert.Empty(t, summary.Critical)
	})

	t.Run("Invalid month", func(t *testing.T) {
		svc := service.NewBudgetService(new(MockExpenseRepo), new(MockLifestyleRepo))

		_, err := svc.GetMonthlySummary(ctx, "user-1", 12)
		assert.ErrorIs(t, err, service.ErrInvalidMonth)
	})
}
