package postgres

import (
	"context"
	"database/sql"
	"encoding/json"

	"github.com/google/uuid"

	"finanzas-backend/internal/domain"
	"finanzas-backend/internal/logger"
	"finanzas-backend/internal/repository"
)

type lifestyleRepository struct {
	db *sql.DB
}

func NewLifestyleRepository(db *sql.DB) repository.LifestyleRepository {
	return &lifestyleRepository{db: db}
}

func (r *lifestyleRepository) GetByUser(ctx context.Context, userID string) (*domain.Lifestyle, error) {
	logger.EnterMethod("lifestyleRepository.GetByUser", "userID", userID)

	query := `
		SELECT id, user_id, income, budgets
		FROM lifestyles WHERE user_id = $1
	`

	lifestyle := &domain.Lifestyle{}
	var budgets []byte
	err := r.db.QueryRowContext(ctx, query, userID).Scan(
		&lifestyle.ID, &lifestyle.UserID, &lifestyle.Income, &budgets,
	)

	if err != nil {
		logger.ExitMethodWithError("lifestyleRepository.GetByUser", err, "userID", userID)
		return nil, err
	}

	if err := json.Unmarshal(budgets, &lifestyle.Budgets); err != nil {
		logger.ExitMethodWithError("lifestyleRepository.GetByUser", err, "userID", userID)
		return nil, err
	}

	logger.ExitMethod("lifestyleRepository.GetByUser", "userID", userID, "budgets", len(lifestyle.Budgets))
	return lifestyle, nil
}

func (r *lifestyleRepository) Save(ctx context.Context, lifestyle *domain.Lifestyle) error {
	logger.EnterMethod("lifestyleRepository.Save", "userID", lifestyle.UserID)

	if lifestyle.ID == "" {
		lifestyle.ID = uuid.NewString()
	}
	if lifestyle.Budgets == nil {
		lifestyle.Budgets = []domain.LifestyleBudget{}
	}

	budgets, err := json.Marshal(lifestyle.Budgets)
	if err != nil {
		logger.ExitMethodWithError("lifestyleRepository.Save", err, "userID", lifestyle.UserID)
		return err
	}

	// One lifestyle document per user.
	query := `
		INSERT INTO lifestyles (id, user_id, income, budgets)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (user_id) DO UPDATE SET
			income = EXCLUDED.income,
			budgets = EXCLUDED.budgets
	`

	_, err = r.db.ExecContext(ctx, query, lifestyle.ID, lifestyle.UserID, lifestyle.Income, budgets)
	if err != nil {
		logger.ExitMethodWithError("lifestyleRepository.Save", err, "userID", lifestyle.UserID)
		return err
	}

	logger.ExitMethod("lifestyleRepository.Save", "userID", lifestyle.UserID)
	return nil
}
