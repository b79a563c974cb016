package postgres

import (
	"context"
	"database/sql"
	"time"

	"github.com/google/uuid"

	"finanzas-backend/internal/domain"
	"finanzas-backend/internal/logger"
	"finanzas-backend/internal/repository"
)

type expenseRepository struct {
	db *sql.DB
}

func NewExpenseRepository(db *sql.DB) repository.ExpenseRepository {
	return &expenseRepository{db: db}
}

func (r *expenseRepository) Create(ctx context.Context, expense *domain.Expense) error {
	logger.EnterMethod("expenseRepository.Create", "userID", expense.UserID, "month", expense.Month)

	if expense.ID == "" {
		expense.ID = uuid.NewString()
	}

	query := `
		INSERT INTO expenses (id, user_id, name, amount, category_id, subcategory_id, month, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		expense.ID, expense.UserID, expense.Name, expense.Amount,
		expense.CategoryID, expense.SubcategoryID, expense.Month, time.Now(),
	).Scan(&expense.CreatedAt)

	if err != nil {
		logger.ExitMethodWithError("expenseRepository.Create", err, "userID", expense.UserID)
		return err
	}

	logger.ExitMethod("expenseRepository.Create", "expenseID", expense.ID)
	return nil
}

func (r *expenseRepository) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	logger.EnterMethod("expenseRepository.GetByID", "expenseID", id)

	query := `
		SELECT id, user_id, name, amount, category_id, subcategory_id, month, created_at
		FROM expenses WHERE id = $1
	`

	expense := &domain.Expense{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&expense.ID, &expense.UserID, &expense.Name, &expense.Amount,
		&expense.CategoryID, &expense.SubcategoryID, &expense.Month, &expense.CreatedAt,
	)

	if err != nil {
		logger.ExitMethodWithError("expenseRepository.GetByID", err, "expenseID", id)
		return nil, err
	}

	logger.ExitMethod("expenseRepository.GetByID", "expenseID", id)
	return expense, nil
}

func (r *expenseRepository) Update(ctx context.Context, expense *domain.Expense) error {
	logger.EnterMethod("expenseRepository.Update", "expenseID", expense.ID)

	query := `
		UPDATE expenses SET
			name = $1,
			amount = $2,
			category_id = $3,
			subcategory_id = $4,
			month = $5
		WHERE id = $6
	`

	_, err := r.db.ExecContext(ctx, query,
		expense.Name, expense.Amount, expense.CategoryID, expense.SubcategoryID,
		expense.Month, expense.ID,
	)

	if err != nil {
		logger.ExitMethodWithError("expenseRepository.Update", err, "expenseID", expense.ID)
		return err
	}

	logger.ExitMethod("expenseRepository.Update", "expenseID", expense.ID)
	return nil
}

func (r *expenseRepository) Delete(ctx context.Context, id string) error {
	logger.EnterMethod("expenseRepository.Delete", "expenseID", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM expenses WHERE id = $1`, id)
	if err != nil {
		logger.ExitMethodWithError("expenseRepository.Delete", err, "expenseID", id)
		return err
	}

	logger.ExitMethod("expenseRepository.Delete", "expenseID", id)
	return nil
}

func (r *expenseRepository) ListByUserMonth(ctx context.Context, userID string, month int) ([]domain.Expense, error) {
	logger.EnterMethod("expenseRepository.ListByUserMonth", "userID", userID, "month", month)

	query := `
		SELECT id, user_id, name, amount, category_id, subcategory_id, month, created_at
		FROM expenses
		WHERE user_id = $1 AND month = $2
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID, month)
	if err != nil {
		logger.ExitMethodWithError("expenseRepository.ListByUserMonth", err, "userID", userID)
		return nil, err
	}
	defer rows.Close()

	expenses := []domain.Expense{}
	for rows.Next() {
		var e domain.Expense
		err := rows.Scan(
			&e.ID, &e.UserID, &e.Name, &e.Amount,
			&e.CategoryID, &e.SubcategoryID, &e.Month, &e.CreatedAt,
		)
		if err != nil {
			logger.ExitMethodWithError("expenseRepository.ListByUserMonth", err, "userID", userID)
			return nil, err
		}
		expenses = append(expenses, e)
	}

	logger.ExitMethod("expenseRepository.ListByUserMonth", "userID", userID, "count", len(expenses))
	return expenses, nil
}
