package service_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"finanzas-backend/internal/domain"
	"finanzas-backend/internal/service"
)

func TestCategoryService_ListCategories(t *testing.T) {
	svc := service.NewCategoryService(new(MockFavoriteRepo))

	cats := svc.ListCategories(context.Background())
	assert.NotEmpty(t, cats)
	for _, c := range cats {
		assert.NotEmpty(t, c.Subcategories, "category %q has no subcategories", c.Name)
	}
}

func TestCategoryService_AddFavorite(t *testing.T) {
	ctx := context.Background()

	t.Run("Success", func(t *testing.T) {
		favoriteRepo := new(MockFavoriteRepo)
		svc := service.NewCategoryService(favoriteRepo)

		favoriteRepo.On("CountByUser", ctx, "user-1").Return(2, nil)
		favoriteRepo.On("Add", ctx, mock.AnythingOfType("*domain.FavoriteCategory")).Return(nil)

		fav, err := svc.AddFavorite(ctx, "user-1", testSubA.ID)
		require.NoError(t, err)
		assert.Equal(t, testSubA.ID, fav.SubcategoryID)
		assert.Equal(t, testSubA.ID/100, fav.CategoryID)
	})

	t.Run("Limit reached", func(t *testing.T) {
		favoriteRepo := new(MockFavoriteRepo)
		svc := service.NewCategoryService(favoriteRepo)

		favoriteRepo.On("CountByUser", ctx, "user-1").Return(domain.MaxFavoriteCategories, nil)

		_, err := svc.AddFavorite(ctx, "user-1", testSubA.ID)
		assert.ErrorIs(t, err, service.ErrFavoriteLimit)
	})

	t.Run("Unknown subcategory", func(t *testing.T) {
		svc := service.NewCategoryService(new(MockFavoriteRepo))

		_, err := svc.AddFavorite(ctx, "user-1", 99999)
		assert.ErrorIs(t, err, service.ErrUnknownSubcategory)
	})
}

func TestCategoryService_RemoveFavorite(t *testing.T) {
	ctx := context.Background()

	favoriteRepo := new(MockFavoriteRepo)
	svc := service.NewCategoryService(favoriteRepo)

	favoriteRepo.On("Remove", ctx, "user-1", testSubA.ID).Return(nil)

	err := svc.RemoveFavorite(ctx, "user-1", testSubA.ID)
	assert.NoError(t, err)
}
