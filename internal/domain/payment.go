package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Payment is a single payment recorded against a bill. A zero amount is an
// explicit "no charge this period" marker, not a data error.
type Payment struct {
	ID        string          `json:"id"`
	BillID    string          `json:"bill_id"`
	Amount    decimal.Decimal `json:"amount"`
	PaidAt    time.Time       `json:"paid_at"`
	CreatedAt time.Time       `json:"created_at"`
}
