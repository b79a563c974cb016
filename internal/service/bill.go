package service

import (
	"context"
	"database/sql"
	"errors"
	"sort"
	"strings"

	"finanzas-backend/internal/billcycle"
	"finanzas-backend/internal/domain"
	"finanzas-backend/internal/logger"
	"finanzas-backend/internal/repository"
)

var (
	ErrBillNotFound = errors.New("bill not found")
	ErrInvalidBill  = errors.New("invalid bill")
)

// recentlyPaidLimit caps the home screen's recently-paid strip.
const recentlyPaidLimit = 5

type billService struct {
	billRepo    repository.BillRepository
	paymentRepo repository.PaymentRepository
}

func NewBillService(billRepo repository.BillRepository, paymentRepo repository.PaymentRepository) BillService {
	return &billService{
		billRepo:    billRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *billService) CreateBill(ctx context.Context, bill *domain.Bill) error {
	logger.EnterMethod("billService.CreateBill", "userID", bill.UserID, "name", bill.Name)

	if err := validateBill(bill); err != nil {
		logger.ExitMethodWithError("billService.CreateBill", err, "userID", bill.UserID)
		return err
	}
	if bill.Status == "" {
		bill.Status = domain.BillStatusActive
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		logger.ExitMethodWithError("billService.CreateBill", err, "userID", bill.UserID)
		return err
	}

	logger.ExitMethod("billService.CreateBill", "billID", bill.ID)
	return nil
}

func (s *billService) GetBill(ctx context.Context, userID, billID string) (*domain.BillWithPayments, error) {
	logger.EnterMethod("billService.GetBill", "userID", userID, "billID", billID)

	bill, err := s.ownedBill(ctx, userID, billID)
	if err != nil {
		logger.ExitMethodWithError("billService.GetBill", err, "billID", billID)
		return nil, err
	}

	payments, err := s.paymentRepo.ListByBill(ctx, billID)
	if err != nil {
		logger.ExitMethodWithError("billService.GetBill", err, "billID", billID)
		return nil, err
	}

	logger.ExitMethod("billService.GetBill", "billID", billID, "payments", len(payments))
	return &domain.BillWithPayments{Bill: *bill, Payments: payments}, nil
}

func (s *billService) UpdateBill(ctx context.Context, userID string, bill *domain.Bill) error {
	logger.EnterMethod("billService.UpdateBill", "userID", userID, "billID", bill.ID)

	existing, err := s.ownedBill(ctx, userID, bill.ID)
	if err != nil {
		logger.ExitMethodWithError("billService.UpdateBill", err, "billID", bill.ID)
		return err
	}

	if err := validateBill(bill); err != nil {
		logger.ExitMethodWithError("billService.UpdateBill", err, "billID", bill.ID)
		return err
	}

	bill.UserID = existing.UserID
	bill.CreatedAt = existing.CreatedAt
	if bill.Status == "" {
		bill.Status = existing.Status
	}

	if err := s.billRepo.Update(ctx, bill); err != nil {
		logger.ExitMethodWithError("billService.UpdateBill", err, "billID", bill.ID)
		return err
	}

	logger.ExitMethod("billService.UpdateBill", "billID", bill.ID)
	return nil
}

func (s *billService) DeleteBill(ctx context.Context, userID, billID string) error {
	logger.EnterMethod("billService.DeleteBill", "userID", userID, "billID", billID)

	if _, err := s.ownedBill(ctx, userID, billID); err != nil {
		logger.ExitMethodWithError("billService.DeleteBill", err, "billID", billID)
		return err
	}

	// Payments go first so a bill never ends up orphaning its history.
	if err := s.paymentRepo.DeleteByBill(ctx, billID); err != nil {
		logger.ExitMethodWithError("billService.DeleteBill", err, "billID", billID)
		return err
	}
	if err := s.billRepo.Delete(ctx, billID); err != nil {
		logger.ExitMethodWithError("billService.DeleteBill", err, "billID", billID)
		return err
	}

	logger.ExitMethod("billService.DeleteBill", "billID", billID)
	return nil
}

func (s *billService) ListBills(ctx context.Context, userID string, statuses []domain.BillStatus) ([]domain.BillCard, error) {
	logger.EnterMethod("billService.ListBills", "userID", userID)

	cards, err := s.buildCards(ctx, userID, statuses)
	if err != nil {
		logger.ExitMethodWithError("billService.ListBills", err, "userID", userID)
		return nil, err
	}

	logger.ExitMethod("billService.ListBills", "userID", userID, "count", len(cards))
	return cards, nil
}

func (s *billService) GetOverview(ctx context.Context, userID string) (*BillOverview, error) {
	logger.EnterMethod("billService.GetOverview", "userID", userID)

	cards, err := s.buildCards(ctx, userID, []domain.BillStatus{domain.BillStatusActive})
	if err != nil {
		logger.ExitMethodWithError("billService.GetOverview", err, "userID", userID)
		return nil, err
	}

	overview := &BillOverview{
		Bills:        cards,
		Important:    []domain.BillCard{},
		RecentlyPaid: []domain.BillCard{},
	}
	for _, c := range cards {
		switch c.Status {
		case domain.CycleStatusOverdue, domain.CycleStatusDue, domain.CycleStatusSkipped:
			overview.Important = append(overview.Important, c)
		case domain.CycleStatusPaid:
			if len(overview.RecentlyPaid) < recentlyPaidLimit {
				overview.RecentlyPaid = append(overview.RecentlyPaid, c)
			}
		}
	}

	logger.ExitMethod("billService.GetOverview", "userID", userID, "bills", len(cards), "important", len(overview.Important))
	return overview, nil
}

func (s *billService) GetAnalysis(ctx context.Context, userID, billID string) (*billcycle.Analysis, error) {
	logger.EnterMethod("billService.GetAnalysis", "userID", userID, "billID", billID)

	bill, err := s.ownedBill(ctx, userID, billID)
	if err != nil {
		logger.ExitMethodWithError("billService.GetAnalysis", err, "billID", billID)
		return nil, err
	}

	payments, err := s.paymentRepo.ListByBill(ctx, billID)
	if err != nil {
		logger.ExitMethodWithError("billService.GetAnalysis", err, "billID", billID)
		return nil, err
	}

	analysis := billcycle.New(bill, payments).Analysis()

	logger.ExitMethod("billService.GetAnalysis", "billID", billID, "status", analysis.Status)
	return &analysis, nil
}

// buildCards runs the cycle analyzer over each of the user's bills and sorts
// the result most urgent first, ties broken by name.
func (s *billService) buildCards(ctx context.Context, userID string, statuses []domain.BillStatus) ([]domain.BillCard, error) {
	bills, err := s.billRepo.ListByUser(ctx, userID, statuses)
	if err != nil {
		return nil, err
	}

	cards := make([]domain.BillCard, 0, len(bills))
	for i := range bills {
		payments, err := s.paymentRepo.ListByBill(ctx, bills[i].ID)
		if err != nil {
			return nil, err
		}
		cards = append(cards, domain.BillCard{
			Bill:   bills[i],
			Status: billcycle.New(&bills[i], payments).Status(),
		})
	}

	sort.SliceStable(cards, func(i, j int) bool {
		pi, pj := cards[i].Status.Priority(), cards[j].Status.Priority()
		if pi != pj {
			return pi < pj
		}
		return cards[i].Bill.Name < cards[j].Bill.Name
	})

	return cards, nil
}

// ownedBill fetches a bill and hides its existence from other users.
func (s *billService) ownedBill(ctx context.Context, userID, billID string) (*domain.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrBillNotFound
	}
	if err != nil {
		return nil, err
	}
	if bill.UserID != userID {
		return nil, ErrBillNotFound
	}
	return bill, nil
}

func validateBill(bill *domain.Bill) error {
	if strings.TrimSpace(bill.Name) == "" {
		return ErrInvalidBill
	}

	switch bill.Type {
	case domain.BillTypeCreditCard:
		if !validMonthDay(bill.CutoffDate) || !validMonthDay(bill.PaymentDeadline) {
			return ErrInvalidBill
		}
	case domain.BillTypeService, domain.BillTypeSubscription:
		if !validMonthDay(bill.PaymentDeadline) {
			return ErrInvalidBill
		}
	default:
		return ErrInvalidBill
	}
	return nil
}

func validMonthDay(day *int) bool {
	return day != nil && *day >= 1 && *day <= 31
}
