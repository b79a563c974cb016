package service

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"finanzas-backend/internal/billcycle"
	"finanzas-backend/internal/categories"
	"finanzas-backend/internal/domain"
)

type AuthService interface {
	Signup(ctx context.Context, name, email, password string) (*domain.User, string, string, error) // user, access, refresh
	Login(ctx context.Context, email, password string) (*domain.User, string, string, error)
	RefreshToken(ctx context.Context, refresh string) (string, string, error)
}

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*domain.User, error)
	UpdateProfile(ctx context.Context, userID string, upd UserProfileUpdate) (*domain.User, error)
}

// UserProfileUpdate carries the editable profile fields. Nil means unchanged.
type UserProfileUpdate struct {
	Name         *string `json:"name"`
	Gender       *string `json:"gender"`
	DateOfBirth  *string `json:"date_of_birth"`
	PhoneNumber  *string `json:"phone_number"`
	ProfilePhoto *string `json:"profile_photo"`
}

// BillOverview is the home-screen payload: every active bill with its
// computed cycle status, plus the slices the screen highlights.
type BillOverview struct {
	Bills        []domain.BillCard `json:"bills"`
	Important    []domain.BillCard `json:"important"`
	RecentlyPaid []domain.BillCard `json:"recently_paid"`
}

type BillService interface {
	CreateBill(ctx context.Context, bill *domain.Bill) error
	GetBill(ctx context.Context, userID, billID string) (*domain.BillWithPayments, error)
	UpdateBill(ctx context.Context, userID string, bill *domain.Bill) error
	DeleteBill(ctx context.Context, userID, billID string) error
	ListBills(ctx context.Context, userID string, statuses []domain.BillStatus) ([]domain.BillCard, error)
	GetOverview(ctx context.Context, userID string) (*BillOverview, error)
	GetAnalysis(ctx context.Context, userID, billID string) (*billcycle.Analysis, error)
}

type PaymentService interface {
	RecordPayment(ctx context.Context, userID, billID string, amount decimal.Decimal, paidAt time.Time) (*domain.Payment, error)
	SkipCycle(ctx context.Context, userID, billID string, paidAt time.Time) (*domain.Payment, error)
	ListPayments(ctx context.Context, userID, billID string) ([]domain.Payment, error)
	DeletePayment(ctx context.Context, userID, billID, paymentID string) error
}

// MonthlySummary measures a month's spending against the lifestyle budgets.
type MonthlySummary struct {
	Month         int                            `json:"month"`
	Income        decimal.Decimal                `json:"income"`
	TotalSpent    decimal.Decimal                `json:"total_spent"`
	Subcategories []domain.SubcategoryBudgetInfo `json:"subcategories"`
	Critical      []domain.SubcategoryBudgetInfo `json:"critical"`
}

type BudgetService interface {
	AddExpense(ctx context.Context, expense *domain.Expense) error
	UpdateExpense(ctx context.Context, userID string, expense *domain.Expense) error
	DeleteExpense(ctx context.Context, userID, expenseID string) error
	ListExpenses(ctx context.Context, userID string, month int) ([]domain.Expense, error)
	GetLifestyle(ctx context.Context, userID string) (*domain.Lifestyle, error)
	SaveLifestyle(ctx context.Context, lifestyle *domain.Lifestyle) error
	GetMonthlySummary(ctx context.Context, userID string, month int) (*MonthlySummary, error)
}

type CategoryService interface {
	ListCategories(ctx context.Context) []categories.Category
	ListFavorites(ctx context.Context, userID string) ([]domain.FavoriteCategory, error)
	AddFavorite(ctx context.Context, userID string, subcategoryID int) (*domain.FavoriteCategory, error)
	RemoveFavorite(ctx context.Context, userID string, subcategoryID int) error
}

type EmailService interface {
	SendDueSoonReminder(ctx context.Context, email, name, billName string, dueDate time.Time) error
	SendOverdueNotice(ctx context.Context, email, name, billName string, dueDate time.Time) error
}
