package service

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"

	"github.com/shopspring/decimal"

	"finanzas-backend/internal/categories"
	"finanzas-backend/internal/domain"
	"finanzas-backend/internal/logger"
	"finanzas-backend/internal/repository"
)

var (
	ErrExpenseNotFound = errors.New("expense not found")
	ErrInvalidExpense  = errors.New("invalid expense")
	ErrInvalidMonth    = errors.New("month must be between 0 and 11")
)

// Budget warning thresholds, percent of the subcategory limit.
var (
	warningThreshold  = decimal.NewFromInt(70)
	exceededThreshold = decimal.NewFromInt(100)
)

type budgetService struct {
	expenseRepo   repository.ExpenseRepository
	lifestyleRepo repository.LifestyleRepository
}

func NewBudgetService(expenseRepo repository.ExpenseRepository, lifestyleRepo repository.LifestyleRepository) BudgetService {
	return &budgetService{
		expenseRepo:   expenseRepo,
		lifestyleRepo: lifestyleRepo,
	}
}

func (s *budgetService) AddExpense(ctx context.Context, expense *domain.Expense) error {
	logger.EnterMethod("budgetService.AddExpense", "userID", expense.UserID, "month", expense.Month)

	if err := validateExpense(expense); err != nil {
		logger.ExitMethodWithError("budgetService.AddExpense", err, "userID", expense.UserID)
		return err
	}

	if err := s.expenseRepo.Create(ctx, expense); err != nil {
		logger.ExitMethodWithError("budgetService.AddExpense", err, "userID", expense.UserID)
		return err
	}

	logger.ExitMethod("budgetService.AddExpense", "expenseID", expense.ID)
	return nil
}

func (s *budgetService) UpdateExpense(ctx context.Context, userID string, expense *domain.Expense) error {
	logger.EnterMethod("budgetService.UpdateExpense", "userID", userID, "expenseID", expense.ID)

	existing, err := s.ownedExpense(ctx, userID, expense.ID)
	if err != nil {
		logger.ExitMethodWithError("budgetService.UpdateExpense", err, "expenseID", expense.ID)
		return err
	}

	expense.UserID = existing.UserID
	expense.CreatedAt = existing.CreatedAt
	if err := validateExpense(expense); err != nil {
		logger.ExitMethodWithError("budgetService.UpdateExpense", err, "expenseID", expense.ID)
		return err
	}

	if err := s.expenseRepo.Update(ctx, expense); err != nil {
		logger.ExitMethodWithError("budgetService.UpdateExpense", err, "expenseID", expense.ID)
		return err
	}

	logger.ExitMethod("budgetService.UpdateExpense", "expenseID", expense.ID)
	return nil
}

func (s *budgetService) DeleteExpense(ctx context.Context, userID, expenseID string) error {
	logger.EnterMethod("budgetService.DeleteExpense", "userID", userID, "expenseID", expenseID)

	if _, err := s.ownedExpense(ctx, userID, expenseID); err != nil {
		logger.ExitMethodWithError("budgetService.DeleteExpense", err, "expenseID", expenseID)
		return err
	}

	if err := s.expenseRepo.Delete(ctx, expenseID); err != nil {
		logger.ExitMethodWithError("budgetService.DeleteExpense", err, "expenseID", expenseID)
		return err
	}

	logger.ExitMethod("budgetService.DeleteExpense", "expenseID", expenseID)
	return nil
}

func (s *budgetService) ListExpenses(ctx context.Context, userID string, month int) ([]domain.Expense, error) {
	logger.EnterMethod("budgetService.ListExpenses", "userID", userID, "month", month)

	if month < 0 || month > 11 {
		logger.ExitMethodWithError("budgetService.ListExpenses", ErrInvalidMonth, "month", month)
		return nil, ErrInvalidMonth
	}

	expenses, err := s.expenseRepo.ListByUserMonth(ctx, userID, month)
	if err != nil {
		logger.ExitMethodWithError("budgetService.ListExpenses", err, "userID", userID)
		return nil, err
	}

	logger.ExitMethod("budgetService.ListExpenses", "userID", userID, "count", len(expenses))
	return expenses, nil
}

func (s *budgetService) GetLifestyle(ctx context.Context, userID string) (*domain.Lifestyle, error) {
	logger.EnterMethod("budgetService.GetLifestyle", "userID", userID)

	lifestyle, err := s.lifestyleRepo.GetByUser(ctx, userID)
	if errors.Is(err, sql.ErrNoRows) {
		// No lifestyle yet is a normal state for a fresh account.
		logger.ExitMethod("budgetService.GetLifestyle", "userID", userID, "exists", false)
		return &domain.Lifestyle{UserID: userID, Budgets: []domain.LifestyleBudget{}}, nil
	}
	if err != nil {
		logger.ExitMethodWithError("budgetService.GetLifestyle", err, "userID", userID)
		return nil, err
	}

	logger.ExitMethod("budgetService.GetLifestyle", "userID", userID, "exists", true)
	return lifestyle, nil
}

func (s *budgetService) SaveLifestyle(ctx context.Context, lifestyle *domain.Lifestyle) error {
	logger.EnterMethod("budgetService.SaveLifestyle", "userID", lifestyle.UserID)

	for _, b := range lifestyle.Budgets {
		if _, ok := categories.SubcategoryByID(b.SubcategoryID); !ok {
			logger.ExitMethodWithError("budgetService.SaveLifestyle", ErrInvalidExpense, "subcategoryID", b.SubcategoryID)
			return ErrInvalidExpense
		}
		if b.Budget.IsNegative() {
			logger.ExitMethodWithError("budgetService.SaveLifestyle", ErrNegativeAmount, "subcategoryID", b.SubcategoryID)
			return ErrNegativeAmount
		}
	}
	if lifestyle.Income.IsNegative() {
		logger.ExitMethodWithError("budgetService.SaveLifestyle", ErrNegativeAmount, "userID", lifestyle.UserID)
		return ErrNegativeAmount
	}

	if err := s.lifestyleRepo.Save(ctx, lifestyle); err != nil {
		logger.ExitMethodWithError("budgetService.SaveLifestyle", err, "userID", lifestyle.UserID)
		return err
	}

	logger.ExitMethod("budgetService.SaveLifestyle", "userID", lifestyle.UserID)
	return nil
}

func (s *budgetService) GetMonthlySummary(ctx context.Context, userID string, month int) (*MonthlySummary, error) {
	logger.EnterMethod("budgetService.GetMonthlySummary", "userID", userID, "month", month)

	if month < 0 || month > 11 {
		logger.ExitMethodWithError("budgetService.GetMonthlySummary", ErrInvalidMonth, "month", month)
		return nil, ErrInvalidMonth
	}

	expenses, err := s.expenseRepo.ListByUserMonth(ctx, userID, month)
	if err != nil {
		logger.ExitMethodWithError("budgetService.GetMonthlySummary", err, "userID", userID)
		return nil, err
	}

	lifestyle, err := s.GetLifestyle(ctx, userID)
	if err != nil {
		logger.ExitMethodWithError("budgetService.GetMonthlySummary", err, "userID", userID)
		return nil, err
	}

	summary := buildMonthlySummary(month, lifestyle, expenses)

	logger.ExitMethod("budgetService.GetMonthlySummary", "userID", userID, "critical", len(summary.Critical))
	return summary, nil
}

// buildMonthlySummary folds a month of expenses into per-subcategory totals
// and grades each budgeted subcategory against its limit. Subcategories come
// back worst first, exceeded before warning before normal, higher percentage
// first within a grade.
func buildMonthlySummary(month int, lifestyle *domain.Lifestyle, expenses []domain.Expense) *MonthlySummary {
	totals := map[int]decimal.Decimal{}
	totalSpent := decimal.Zero
	for _, e := range expenses {
		totals[e.SubcategoryID] = totals[e.SubcategoryID].Add(e.Amount)
		totalSpent = totalSpent.Add(e.Amount)
	}

	names := categories.SubcategoryNames()

	infos := make([]domain.SubcategoryBudgetInfo, 0, len(lifestyle.Budgets))
	for _, b := range lifestyle.Budgets {
		info := domain.SubcategoryBudgetInfo{
			SubcategoryID: b.SubcategoryID,
			Name:          names[b.SubcategoryID],
			TotalAmount:   totals[b.SubcategoryID],
			BudgetLimit:   b.Budget,
			Status:        domain.BudgetStatusNormal,
		}
		if b.Budget.IsPositive() {
			info.Percentage = info.TotalAmount.Div(b.Budget).Mul(decimal.NewFromInt(100)).Round(2)
		}
		switch {
		case info.Percentage.GreaterThanOrEqual(exceededThreshold):
			info.Status = domain.BudgetStatusExceeded
		case info.Percentage.GreaterThanOrEqual(warningThreshold):
			info.Status = domain.BudgetStatusWarning
		}
		infos = append(infos, info)
	}

	sort.SliceStable(infos, func(i, j int) bool {
		si, sj := statusSeverity(infos[i].Status), statusSeverity(infos[j].Status)
		if si != sj {
			return si > sj
		}
		return infos[i].Percentage.GreaterThan(infos[j].Percentage)
	})

	summary := &MonthlySummary{
		Month:         month,
		Income:        lifestyle.Income,
		TotalSpent:    totalSpent,
		Subcategories: infos,
		Critical:      []domain.SubcategoryBudgetInfo{},
	}
	for _, info := range infos {
		if info.Status != domain.BudgetStatusNormal {
			summary.Critical = append(summary.Critical, info)
		}
	}
	return summary
}

func statusSeverity(s domain.BudgetStatus) int {
	switch s {
	case domain.BudgetStatusExceeded:
		return 2
	case domain.BudgetStatusWarning:
		return 1
	default:
		return 0
	}
}

func (s *budgetService) ownedExpense(ctx context.Context, userID, expenseID string) (*domain.Expense, error) {
	expense, err := s.expenseRepo.GetByID(ctx, expenseID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrExpenseNotFound
	}
	if err != nil {
		return nil, err
	}
	if expense.UserID != userID {
		return nil, ErrExpenseNotFound
	}
	return expense, nil
}

func validateExpense(expense *domain.Expense) error {
	if strings.TrimSpace(expense.Name) == "" {
		return ErrInvalidExpense
	}
	if expense.Amount.IsNegative() {
		return ErrNegativeAmount
	}
	if expense.Month < 0 || expense.Month > 11 {
		return ErrInvalidMonth
	}

	catID, ok := categories.CategoryOf(expense.SubcategoryID)
	if !ok || catID != expense.CategoryID {
		return ErrInvalidExpense
	}
	return nil
}
