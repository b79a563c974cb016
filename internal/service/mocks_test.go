package service_test

import (
	"context"

	"github.com/stretchr/testify/mock"

	"finanzas-backend/internal/domain"
	"finanzas-backend/internal/security"
)

// MockUserRepo
type MockUserRepo struct {
	mock.Mock
}

func (m *MockUserRepo) Create(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}
func (m *MockUserRepo) GetByID(ctx context.Context, id string) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}
func (m *MockUserRepo) Update(ctx context.Context, user *domain.User) error {
	args := m.Called(ctx, user)
	return args.Error(0)
}

// MockBillRepo
type MockBillRepo struct {
	mock.Mock
}

func (m *MockBillRepo) Create(ctx context.Context, bill *domain.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}
func (m *MockBillRepo) GetByID(ctx context.Context, id string) (*domain.Bill, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Bill), args.Error(1)
}
func (m *MockBillRepo) Update(ctx context.Context, bill *domain.Bill) error {
	args := m.Called(ctx, bill)
	return args.Error(0)
}
func (m *MockBillRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockBillRepo) ListByUser(ctx context.Context, userID string, statuses []domain.BillStatus) ([]domain.Bill, error) {
	args := m.Called(ctx, userID, statuses)
	return args.Get(0).([]domain.Bill), args.Error(1)
}
func (m *MockBillRepo) ListActive(ctx context.Context) ([]domain.Bill, error) {
	args := m.Called(ctx)
	return args.Get(0).([]domain.Bill), args.Error(1)
}

// MockPaymentRepo
type MockPaymentRepo struct {
	mock.Mock
}

func (m *MockPaymentRepo) Create(ctx context.Context, payment *domain.Payment) error {
	args := m.Called(ctx, payment)
	return args.Error(0)
}
func (m *MockPaymentRepo) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockPaymentRepo) ListByBill(ctx context.Context, billID string) ([]domain.Payment, error) {
	args := m.Called(ctx, billID)
	return args.Get(0).([]domain.Payment), args.Error(1)
}
func (m *MockPaymentRepo) DeleteByBill(ctx context.Context, billID string) error {
	args := m.Called(ctx, billID)
	return args.Error(0)
}

// MockExpenseRepo
type MockExpenseRepo struct {
	mock.Mock
}

func (m *MockExpenseRepo) Create(ctx context.Context, expense *domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}
func (m *MockExpenseRepo) GetByID(ctx context.Context, id string) (*domain.Expense, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Expense), args.Error(1)
}
func (m *MockExpenseRepo) Update(ctx context.Context, expense *domain.Expense) error {
	args := m.Called(ctx, expense)
	return args.Error(0)
}
func (m *MockExpenseRepo) Delete(ctx context.Context, id string) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockExpenseRepo) ListByUserMonth(ctx context.Context, userID string, month int) ([]domain.Expense, error) {
	args := m.Called(ctx, userID, month)
	return args.Get(0).([]domain.Expense), args.Error(1)
}

// MockLifestyleRepo
type MockLifestyleRepo struct {
	mock.Mock
}

func (m *MockLifestyleRepo) GetByUser(ctx context.Context, userID string) (*domain.Lifestyle, error) {
	args := m.Called(ctx, userID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Lifestyle), args.Error(1)
}
func (m *MockLifestyleRepo) Save(ctx context.Context, lifestyle *domain.Lifestyle) error {
	args := m.Called(ctx, lifestyle)
	return args.Error(0)
}

// MockFavoriteRepo
type MockFavoriteRepo struct {
	mock.Mock
}

func (m *MockFavoriteRepo) Add(ctx context.Context, fav *domain.FavoriteCategory) error {
	args := m.Called(ctx, fav)
	return args.Error(0)
}
func (m *MockFavoriteRepo) Remove(ctx context.Context, userID string, subcategoryID int) error {
	args := m.Called(ctx, userID, subcategoryID)
	return args.Error(0)
}
func (m *MockFavoriteRepo) ListByUser(ctx context.Context, userID string) ([]domain.FavoriteCategory, error) {
	args := m.Called(ctx, userID)
	return args.Get(0).([]domain.FavoriteCategory), args.Error(1)
}
func (m *MockFavoriteRepo) CountByUser(ctx context.Context, userID string) (int, error) {
	args := m.Called(ctx, userID)
	return args.Int(0), args.Error(1)
}

// MockTokenManager
type MockTokenManager struct {
	mock.Mock
}

func (m *MockTokenManager) GenerateAccessToken(userID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) GenerateRefreshToken(userID, email string) (string, error) {
	args := m.Called(userID, email)
	return args.String(0), args.Error(1)
}
func (m *MockTokenManager) ValidateToken(token string) (*security.UserClaims, error) {
	args := m.Called(token)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*security.UserClaims), args.Error(1)
}
