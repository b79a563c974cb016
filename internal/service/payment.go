package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/shopspring/decimal"

	"finanzas-backend/internal/domain"
	"finanzas-backend/internal/logger"
	"finanzas-backend/internal/repository"
)

var (
	ErrPaymentNotFound = errors.New("payment not found")
	ErrNegativeAmount  = errors.New("payment amount cannot be negative")
)

type paymentService struct {
	billRepo    repository.BillRepository
	paymentRepo repository.PaymentRepository
}

func NewPaymentService(billRepo repository.BillRepository, paymentRepo repository.PaymentRepository) PaymentService {
	return &paymentService{
		billRepo:    billRepo,
		paymentRepo: paymentRepo,
	}
}

func (s *paymentService) RecordPayment(ctx context.Context, userID, billID string, amount decimal.Decimal, paidAt time.Time) (*domain.Payment, error) {
	logger.EnterMethod("paymentService.RecordPayment", "userID", userID, "billID", billID, "amount", amount)

	if amount.IsNegative() {
		logger.ExitMethodWithError("paymentService.RecordPayment", ErrNegativeAmount, "billID", billID)
		return nil, ErrNegativeAmount
	}

	if err := s.checkOwnership(ctx, userID, billID); err != nil {
		logger.ExitMethodWithError("paymentService.RecordPayment", err, "billID", billID)
		return nil, err
	}

	if paidAt.IsZero() {
		paidAt = time.Now()
	}

	payment := &domain.Payment{
		BillID: billID,
		Amount: amount,
		PaidAt: paidAt,
	}
	if err := s.paymentRepo.Create(ctx, payment); err != nil {
		logger.ExitMethodWithError("paymentService.RecordPayment", err, "billID", billID)
		return nil, err
	}

	logger.ExitMethod("paymentService.RecordPayment", "paymentID", payment.ID)
	return payment, nil
}

// SkipCycle records a zero-amount payment, the marker the cycle analyzer
// reads as an explicit skip of the current period.
func (s *paymentService) SkipCycle(ctx context.Context, userID, billID string, paidAt time.Time) (*domain.Payment, error) {
	logger.EnterMethod("paymentService.SkipCycle", "userID", userID, "billID", billID)

	payment, err := s.RecordPayment(ctx, userID, billID, decimal.Zero, paidAt)
	if err != nil {
		logger.ExitMethodWithError("paymentService.SkipCycle", err, "billID", billID)
		return nil, err
	}

	logger.ExitMethod("paymentService.SkipCycle", "paymentID", payment.ID)
	return payment, nil
}

func (s *paymentService) ListPayments(ctx context.Context, userID, billID string) ([]domain.Payment, error) {
	logger.EnterMethod("paymentService.ListPayments", "userID", userID, "billID", billID)

	if err := s.checkOwnership(ctx, userID, billID); err != nil {
		logger.ExitMethodWithError("paymentService.ListPayments", err, "billID", billID)
		return nil, err
	}

	payments, err := s.paymentRepo.ListByBill(ctx, billID)
	if err != nil {
		logger.ExitMethodWithError("paymentService.ListPayments", err, "billID", billID)
		return nil, err
	}

	logger.ExitMethod("paymentService.ListPayments", "billID", billID, "count", len(payments))
	return payments, nil
}

func (s *paymentService) DeletePayment(ctx context.Context, userID, billID, paymentID string) error {
	logger.EnterMethod("paymentService.DeletePayment", "userID", userID, "paymentID", paymentID)

	if err := s.checkOwnership(ctx, userID, billID); err != nil {
		logger.ExitMethodWithError("paymentService.DeletePayment", err, "billID", billID)
		return err
	}

	payment, err := s.paymentRepo.GetByID(ctx, paymentID)
	if errors.Is(err, sql.ErrNoRows) {
		logger.ExitMethodWithError("paymentService.DeletePayment", ErrPaymentNotFound, "paymentID", paymentID)
		return ErrPaymentNotFound
	}
	if err != nil {
		logger.ExitMethodWithError("paymentService.DeletePayment", err, "paymentID", paymentID)
		return err
	}
	if payment.BillID != billID {
		logger.ExitMethodWithError("paymentService.DeletePayment", ErrPaymentNotFound, "paymentID", paymentID)
		return ErrPaymentNotFound
	}

	if err := s.paymentRepo.Delete(ctx, paymentID); err != nil {
		logger.ExitMethodWithError("paymentService.DeletePayment", err, "paymentID", paymentID)
		return err
	}

	logger.ExitMethod("paymentService.DeletePayment", "paymentID", paymentID)
	return nil
}

func (s *paymentService) checkOwnership(ctx context.Context, userID, billID string) error {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if errors.Is(err, sql.ErrNoRows) {
		return ErrBillNotFound
	}
	if err != nil {
		return err
	}
	if bill.UserID != userID {
		return ErrBillNotFound
	}
	return nil
}
