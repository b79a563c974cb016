package postgres

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"finanzas-backend/internal/domain"
	"finanzas-backend/internal/logger"
	"finanzas-backend/internal/repository"
)

type billRepository struct {
	db *sql.DB
}

func NewBillRepository(db *sql.DB) repository.BillRepository {
	return &billRepository{db: db}
}

func (r *billRepository) Create(ctx context.Context, bill *domain.Bill) error {
	logger.EnterMethod("billRepository.Create", "userID", bill.UserID, "name", bill.Name)

	if bill.ID == "" {
		bill.ID = uuid.NewString()
	}

	query := `
		INSERT INTO bills (
			id, user_id, name, color, type, status, cutoff_date, payment_deadline,
			created_at, updated_at
		) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING created_at, updated_at
	`
	now := time.Now()
	err := r.db.QueryRowContext(ctx, query,
		bill.ID, bill.UserID, bill.Name, bill.Color, bill.Type, bill.Status,
		bill.CutoffDate, bill.PaymentDeadline, now, now,
	).Scan(&bill.CreatedAt, &bill.UpdatedAt)

	if err != nil {
		logger.ExitMethodWithError("billRepository.Create", err, "userID", bill.UserID)
		return err
	}

	logger.ExitMethod("billRepository.Create", "billID", bill.ID)
	return nil
}

func (r *billRepository) GetByID(ctx context.Context, id string) (*domain.Bill, error) {
	logger.EnterMethod("billRepository.GetByID", "billID", id)

	query := `
		SELECT id, user_id, name, COALESCE(color, ''), type, status,
		       cutoff_date, payment_deadline, created_at, updated_at
		FROM bills WHERE id = $1
	`

	bill := &domain.Bill{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&bill.ID, &bill.UserID, &bill.Name, &bill.Color, &bill.Type, &bill.Status,
		&bill.CutoffDate, &bill.PaymentDeadline, &bill.CreatedAt, &bill.UpdatedAt,
	)

	if err != nil {
		logger.ExitMethodWithError("billRepository.GetByID", err, "billID", id)
		return nil, err
	}

	logger.ExitMethod("billRepository.GetByID", "billID", id)
	return bill, nil
}

func (r *billRepository) Update(ctx context.Context, bill *domain.Bill) error {
	logger.EnterMethod("billRepository.Update", "billID", bill.ID)

	query := `
		UPDATE bills SET
			name = $1,
			color = $2,
			type = $3,
			status = $4,
			cutoff_date = $5,
			payment_deadline = $6,
			updated_at = $7
		WHERE id = $8
	`

	_, err := r.db.ExecContext(ctx, query,
		bill.Name, bill.Color, bill.Type, bill.Status,
		bill.CutoffDate, bill.PaymentDeadline, time.Now(), bill.ID,
	)

	if err != nil {
		logger.ExitMethodWithError("billRepository.Update", err, "billID", bill.ID)
		return err
	}

	logger.ExitMethod("billRepository.Update", "billID", bill.ID)
	return nil
}

func (r *billRepository) Delete(ctx context.Context, id string) error {
	logger.EnterMethod("billRepository.Delete", "billID", id)

	_, err := r.db.ExecContext(ctx, `DELETE FROM bills WHERE id = $1`, id)
	if err != nil {
		logger.ExitMethodWithError("billRepository.Delete", err, "billID", id)
		return err
	}

	logger.ExitMethod("billRepository.Delete", "billID", id)
	return nil
}

func (r *billRepository) ListByUser(ctx context.Context, userID string, statuses []domain.BillStatus) ([]domain.Bill, error) {
	logger.EnterMethod("billRepository.ListByUser", "userID", userID)

	query := `
		SELECT id, user_id, name, COALESCE(color, ''), type, status,
		       cutoff_date, payment_deadline, created_at, updated_at
		FROM bills
		WHERE user_id = $1
	`

	args := []interface{}{userID}

	if len(statuses) > 0 {
		statusStrs := make([]string, len(statuses))
		for i, s := range statuses {
			statusStrs[i] = string(s)
		}
		query += fmt.Sprintf(" AND status = ANY($%d)", len(args)+1)
		args = append(args, pq.Array(statusStrs))
	}

	query += " ORDER BY created_at ASC"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		logger.ExitMethodWithError("billRepository.ListByUser", err, "userID", userID)
		return nil, err
	}
	defer rows.Close()

	bills := []domain.Bill{}
	for rows.Next() {
		var b domain.Bill
		err := rows.Scan(
			&b.ID, &b.UserID, &b.Name, &b.Color, &b.Type, &b.Status,
			&b.CutoffDate, &b.PaymentDeadline, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			logger.ExitMethodWithError("billRepository.ListByUser", err, "userID", userID)
			return nil, err
		}
		bills = append(bills, b)
	}

	logger.ExitMethod("billRepository.ListByUser", "userID", userID, "count", len(bills))
	return bills, nil
}

func (r *billRepository) ListActive(ctx context.Context) ([]domain.Bill, error) {
	logger.EnterMethod("billRepository.ListActive")

	query := `
		SELECT id, user_id, name, COALESCE(color, ''), type, status,
		       cutoff_date, payment_deadline, created_at, updated_at
		FROM bills
		WHERE status = $1
		ORDER BY user_id, created_at ASC
	`

	rows, err := r.db.QueryContext(ctx, query, domain.BillStatusActive)
	if err != nil {
		logger.ExitMethodWithError("billRepository.ListActive", err)
		return nil, err
	}
	defer rows.Close()

	bills := []domain.Bill{}
	for rows.Next() {
		var b domain.Bill
		err := rows.Scan(
			&b.ID, &b.UserID, &b.Name, &b.Color, &b.Type, &b.Status,
			&b.CutoffDate, &b.PaymentDeadline, &b.CreatedAt, &b.UpdatedAt,
		)
		if err != nil {
			logger.ExitMethodWithError("billRepository.ListActive", err)
			return nil, err
		}
		bills = append(bills, b)
	}

	logger.ExitMethod("billRepository.ListActive", "count", len(bills))
	return bills, nil
}
