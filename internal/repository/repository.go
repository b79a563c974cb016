package repository

import (
	"context"
	"finanzas-backend/internal/domain"
)

type UserRepository interface {
	Create(ctx context.Context, user *domain.User) error
	GetByID(ctx context.Context, id string) (*domain.User, error)
	GetByEmail(ctx context.Context, email string) (*domain.User, error)
	Update(ctx context.Context, user *domain.User) error
}

type BillRepository interface {
	Create(ctx context.Context, bill *domain.Bill) error
	GetByID(ctx context.Context, id string) (*domain.Bill, error)
	Update(ctx context.Context, bill *domain.Bill) error
	Delete(ctx context.Context, id string) error
	ListByUser(ctx context.Context, userID string, statuses []domain.BillStatus) ([]domain.Bill, error)
	ListActive(ctx context.Context) ([]domain.Bill, error)
}

type PaymentRepository interface {
	Create(ctx context.Context, payment *domain.Payment) error
	GetByID(ctx context.Context, id string) (*domain.Payment, error)
	Delete(ctx context.Context, id string) error

	// ListByBill returns payments ordered most recent first. Callers that
	// classify billing cycles depend on this ordering.
	ListByBill(ctx context.Context, billID string) ([]domain.Payment, error)
	DeleteByBill(ctx context.Context, billID string) error
}

type ExpenseRepository interface {
	Create(ctx context.Context, expense *domain.Expense) error
	GetByID(ctx context.Context, id string) (*domain.Expense, error)
	Update(ctx context.Context, expense *domain.Expense) error
	Delete(ctx context.Context, id string) error
	ListByUserMonth(ctx context.Context, userID string, month int) ([]domain.Expense, error)
}

type LifestyleRepository interface {
	GetByUser(ctx context.Context, userID string) (*domain.Lifestyle, error)
	Save(ctx context.Context, lifestyle *domain.Lifestyle) error
}

type FavoriteCategoryRepository interface {
	Add(ctx context.Context, fav *domain.FavoriteCategory) error
	Remove(ctx context.Context, userID string, subcategoryID int) error
	ListByUser(ctx context.Context, userID string) ([]domain.FavoriteCategory, error)
	CountByUser(ctx context.Context, userID string) (int, error)
}
