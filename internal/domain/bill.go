package domain

import "time"

type BillType string

const (
	BillTypeCreditCard   BillType = "credit_card"
	BillTypeService      BillType = "service"
	BillTypeSubscription BillType = "subscription"
)

type BillStatus string

const (
	BillStatusActive   BillStatus = "active"
	BillStatusInactive BillStatus = "inactive"
)

// BillCycleStatus classifies a bill against its current billing cycle.
type BillCycleStatus string

const (
	CycleStatusPaid    BillCycleStatus = "paid"
	CycleStatusDue     BillCycleStatus = "due"
	CycleStatusOverdue BillCycleStatus = "overdue"
	CycleStatusSkipped BillCycleStatus = "skipped"
	CycleStatusNA      BillCycleStatus = "NA"
)

// Priority orders cycle statuses for display, most urgent first.
func (s BillCycleStatus) Priority() int {
	switch s {
	case CycleStatusOverdue:
		return 0
	case CycleStatusDue:
		return 1
	case CycleStatusPaid:
		return 2
	case CycleStatusSkipped:
		return 3
	default:
		return 4
	}
}

type Bill struct {
	ID              string     `json:"id"`
	UserID          string     `json:"user_id"`
	Name            string     `json:"name"`
	Color           string     `json:"color"`
	Type            BillType   `json:"type"`
	Status          BillStatus `json:"status"`
	CutoffDate      *int       `json:"cutoff_date,omitempty"`      // day of month the statement closes, credit_card only
	PaymentDeadline *int       `json:"payment_deadline,omitempty"` // day of month payment is due
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}

// BillWithPayments bundles a bill with its payment history,
// ordered most-recent-first by the payment repository.
type BillWithPayments struct {
	Bill     Bill      `json:"bill"`
	Payments []Payment `json:"payments"`
}

// BillCard is a bill plus its computed cycle status, the shape the
// bills and home screens render.
type BillCard struct {
	Bill   Bill            `json:"bill"`
	Status BillCycleStatus `json:"status"`
}
