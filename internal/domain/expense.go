package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

type Expense struct {
	ID            string          `json:"id"`
	UserID        string          `json:"user_id"`
	Name          string          `json:"name"`
	Amount        decimal.Decimal `json:"amount"`
	CategoryID    int             `json:"category_id"`
	SubcategoryID int             `json:"subcategory_id"`
	Month         int             `json:"month"` // 0-11, month the expense counts against
	CreatedAt     time.Time       `json:"created_at"`
}
