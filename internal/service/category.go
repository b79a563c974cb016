package service

import (
	"context"
	"errors"

	"finanzas-backend/internal/categories"
	"finanzas-backend/internal/domain"
	"finanzas-backend/internal/logger"
	"finanzas-backend/internal/repository"
)

var (
	ErrUnknownSubcategory = errors.New("unknown subcategory")
	ErrFavoriteLimit      = errors.New("favorite category limit reached")
)

type categoryService struct {
	favoriteRepo repository.FavoriteCategoryRepository
}

func NewCategoryService(favoriteRepo repository.FavoriteCategoryRepository) CategoryService {
	return &categoryService{favoriteRepo: favoriteRepo}
}

func (s *categoryService) ListCategories(ctx context.Context) []categories.Category {
	return categories.All()
}

func (s *categoryService) ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteCategory, error) {
	logger.EnterMethod("categoryService.ListFavorites", "userID", userID)

	favorites, err := s.favoriteRepo.ListByUser(ctx, userID)
	if err != nil {
		logger.ExitMethodWithError("categoryService.ListFavorites", err, "userID", userID)
		return nil, err
	}

	logger.ExitMethod("categoryService.ListFavorites", "userID", userID, "count", len(favorites))
	return favorites, nil
}

func (s *categoryService) AddFavorite(ctx context.Context, userID string, subcategoryID int) (*domain.FavoriteCategory, error) {
	logger.EnterMethod("categoryService.AddFavorite", "userID", userID, "subcategoryID", subcategoryID)

	categoryID, ok := categories.CategoryOf(subcategoryID)
	if !ok {
		logger.ExitMethodWithError("categoryService.AddFavorite", ErrUnknownSubcategory, "subcategoryID", subcategoryID)
		return nil, ErrUnknownSubcategory
	}

	count, err := s.favoriteRepo.CountByUser(ctx, userID)
	if err != nil {
		logger.ExitMethodWithError("categoryService.AddFavorite", err, "userID", userID)
		return nil, err
	}
	if count >= domain.MaxFavoriteCategories {
		logger.ExitMethodWithError("categoryService.AddFavorite", ErrFavoriteLimit, "userID", userID)
		return nil, ErrFavoriteLimit
	}

	fav := &domain.FavoriteCategory{
		UserID:        userID,
		CategoryID:    categoryID,
		SubcategoryID: subcategoryID,
	}
	if err := s.favoriteRepo.Add(ctx, fav); err != nil {
		logger.ExitMethodWithError("categoryService.AddFavorite", err, "userID", userID)
		return nil, err
	}

	logger.ExitMethod("categoryService.AddFavorite", "userID", userID, "subcategoryID", subcategoryID)
	return fav, nil
}

func (s *categoryService) RemoveFavorite(ctx context.Context, userID string, subcategoryID int) error {
	logger.EnterMethod("categoryService.RemoveFavorite", "userID", userID, "subcategoryID", subcategoryID)

	if err := s.favoriteRepo.Remove(ctx, userID, subcategoryID); err != nil {
		logger.ExitMethodWithError("categoryService.RemoveFavorite", err, "userID", userID)
		return err
	}

	logger.ExitMethod("categoryService.RemoveFavorite", "userID", userID, "subcategoryID", subcategoryID)
	return nil
}
