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

type favoriteCategoryRepository struct {
	db *sql.DB
}

func NewFavoriteCategoryRepository(db *sql.DB) repository.FavoriteCategoryRepository {
	return &favoriteCategoryRepository{db: db}
}

func (r *favoriteCategoryRepository) Add(ctx context.Context, fav *domain.FavoriteCategory) error {
	logger.EnterMethod("favoriteCategoryRepository.Add", "userID", fav.UserID, "subcategoryID", fav.SubcategoryID)

	if fav.ID == "" {
		fav.ID = uuid.NewString()
	}

	query := `
		INSERT INTO favorite_categories (id, user_id, category_id, subcategory_id, created_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, subcategory_id) DO NOTHING
	`

	_, err := r.db.ExecContext(ctx, query, fav.ID, fav.UserID, fav.CategoryID, fav.SubcategoryID, time.Now())
	if err != nil {
		logger.ExitMethodWithError("favoriteCategoryRepository.Add", err, "userID", fav.UserID)
		return err
	}

	logger.ExitMethod("favoriteCategoryRepository.Add", "userID", fav.UserID)
	return nil
}

func (r *favoriteCategoryRepository) Remove(ctx context.Context, userID string, subcategoryID int) error {
	logger.EnterMethod("favoriteCategoryRepository.Remove", "userID", userID, "subcategoryID", subcategoryID)

	query := `DELETE FROM favorite_categories WHERE user_id = $1 AND subcategory_id = $2`

	_, err := r.db.ExecContext(ctx, query, userID, subcategoryID)
	if err != nil {
		logger.ExitMethodWithError("favoriteCategoryRepository.Remove", err, "userID", userID)
		return err
	}

	logger.ExitMethod("favoriteCategoryRepository.Remove", "userID", userID)
	return nil
}

func (r *favoriteCategoryRepository) ListByUser(ctx context.Context, userID string) ([]domain.FavoriteCategory, error) {
	logger.EnterMethod("favoriteCategoryRepository.ListByUser", "userID", userID)

	query := `
		SELECT id, user_id, category_id, subcategory_id, created_at
		FROM favorite_categories
		WHERE user_id = $1
		ORDER BY created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		logger.ExitMethodWithError("favoriteCategoryRepository.ListByUser", err, "userID", userID)
		return nil, err
	}
	defer rows.Close()

	favorites := []domain.FavoriteCategory{}
	for rows.Next() {
		var f domain.FavoriteCategory
		if err := rows.Scan(&f.ID, &f.UserID, &f.CategoryID, &f.SubcategoryID, &f.CreatedAt); err != nil {
			logger.ExitMethodWithError("favoriteCategoryRepository.ListByUser", err, "userID", userID)
			return nil, err
		}
		favorites = append(favorites, f)
	}

	logger.ExitMethod("favoriteCategoryRepository.ListByUser", "userID", userID, "count", len(favorites))
	return favorites, nil
}

func (r *favoriteCategoryRepository) CountByUser(ctx context.Context, userID string) (int, error) {
	logger.EnterMethod("favoriteCategoryRepository.CountByUser", "userID", userID)

	var count int
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM favorite_categories WHERE user_id = $1`, userID).Scan(&count)
	if err != nil {
		logger.ExitMethodWithError("favoriteCategoryRepository.CountByUser", err, "userID", userID)
		return 0, err
	}

	logger.ExitMethod("favoriteCategoryRepository.CountByUser", "userID", userID, "count", count)
	return count, nil
}
