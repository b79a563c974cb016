package domain

import "github.com/shopspring/decimal"

// LifestyleBudget is a monthly spending limit for one subcategory.
type LifestyleBudget struct {
	SubcategoryID int             `json:"subcategory_id"`
	Budget        decimal.Decimal `json:"budget"`
}

// Lifestyle is a user's monthly budget document: declared income plus the
// per-subcategory limits. There is at most one per user.
type Lifestyle struct {
	ID      string            `json:"id"`
	UserID  string            `json:"user_id"`
	Income  decimal.Decimal   `json:"income"`
	Budgets []LifestyleBudget `json:"budgets"`
}

// BudgetStatus grades spending in a subcategory against its limit.
type BudgetStatus string

const (
	BudgetStatusNormal   BudgetStatus = "normal"
	BudgetStatusWarning  BudgetStatus = "warning"  // >= 70% of the limit
	BudgetStatusExceeded BudgetStatus = "exceeded" // >= 100% of the limit
)

// SubcategoryBudgetInfo is a subcategory's spending measured against its
// lifestyle budget for the month.
type SubcategoryBudgetInfo struct {
	SubcategoryID int             `json:"subcategory_id"`
	Name          string          `json:"name"`
	TotalAmount   decimal.Decimal `json:"total_amount"`
	BudgetLimit   decimal.Decimal `json:"budget_limit"`
	Percentage    decimal.Decimal `json:"percentage"`
	Status        BudgetStatus    `json:"status"`
}
