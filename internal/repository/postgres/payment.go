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

type paymentRepository struct {
	db *sql.DB
}

func NewPaymentRepository(db *sql.DB) repository.PaymentRepository {
	return &paymentRepository{db: db}
}

func (r *paymentRepository) Create(ctx context.Context, payment *domain.Payment) error {
	logger.EnterMethod("paymentRepository.Create", "billID", payment.BillID, "amount", payment.Amount)

	if payment.ID == "" {
		payment.ID = uuid.NewString()
	}

	query := `
		INSERT INTO payments (id, bill_id, amount, paid_at, created_at)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING created_at
	`
	err := r.db.QueryRowContext(ctx, query,
		payment.ID, payment.BillID, payment.Amount, payment.PaidAt, time.Now(),
	).Scan(&payment.CreatedAt)

	if err != nil {
		logger.ExitMethodWithError("paymentRepository.Create", err, "billID", payment.BillID)
		return err
	}

	logger.ExitMethod("paymentRepository.Create", "paymentID", payment.ID)
	return nil
}

func (r *paymentRepository) GetByID(ctx context.Context, id string) (*domain.Payment, error) {
	logger.EnterMethod("paymentRepository.GetByID", "paymentID", id)

	query := `
		SELECT id, bill_id, amount, paid_at, created_at
		FROM payments WHERE id = $1
	`

	payment := &domain.Payment{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&payment.ID, &payment.BillID, &payment.Amount, &payment.PaidAt, &payment.CreatedAt,
	)

	if err != nil {
		logger.ExitMethodWithError("paymentRepository.GetByID", err, "paymentID", id)
		return nil, err
	}

	logger.ExitMethod("paymentRepository.GetByID", "paymentID", id)
	return payment, nil
}

func (r *paymentRepository) Delete(ctx context.Context, id string) error {
	logger.EnterMethod("paymentRepository.Delete", "paymentID", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE id = $1`, id)
	if err != nil {
		logger.ExitMethodWithError("paymentRepository.Delete", err, "paymentID", id)
		return err
	}

	logger.ExitMethod("paymentRepository.Delete", "paymentID", id)
	return nil
}

func (r *paymentRepository) ListByBill(ctx context.Context, billID string) ([]domain.Payment, error) {
	logger.EnterMethod("paymentRepository.ListByBill", "billID", billID)

	query := `
		SELECT id, bill_id, amount, paid_at, created_at
		FROM payments
		WHERE bill_id = $1
		ORDER BY paid_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, billID)
	if err != nil {
		logger.ExitMethodWithError("paymentRepository.ListByBill", err, "billID", billID)
		return nil, err
	}
	defer rows.Close()

	payments := []domain.Payment{}
	for rows.Next() {
		var p domain.Payment
		err := rows.Scan(&p.ID, &p.BillID, &p.Amount, &p.PaidAt, &p.CreatedAt)
		if err != nil {
			logger.ExitMethodWithError("paymentRepository.ListByBill", err, "billID", billID)
			return nil, err
		}
		payments = append(payments, p)
	}

	logger.ExitMethod("paymentRepository.ListByBill", "billID", billID, "count", len(payments))
	return payments, nil
}

func (r *paymentRepository) DeleteByBill(ctx context.Context, billID string) error {
	logger.EnterMethod("paymentRepository.DeleteByBill", "billID", billID)

	_, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE bill_id = $1`, billID)
	if err != nil {
		logger.ExitMethodWithError("paymentRepository.DeleteByBill", err, "billID", billID)
		return err
	}

	logger.ExitMethod("paymentRepository.DeleteByBill", "billID", billID)
	return nil
}
