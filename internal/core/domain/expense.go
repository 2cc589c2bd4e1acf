package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fund identifies one of the three accounting buckets a freight's value is
// split into and expenses are deducted from.
type Fund string

const (
	FundCompany Fund = "COMPANY"
	FundDriver  Fund = "DRIVER"
	FundReserve Fund = "RESERVE"
)

// Expense is a deduction against one of the three funds. Expenses are only
// ever consumed in aggregate, summed by source fund, when a month is closed.
type Expense struct {
	ExpenseID   string          `json:"expenseID"` // Primary key (UUID)
	OwnerUserID string          `json:"ownerUserID"`
	Source      Fund            `json:"source"`
	Value       decimal.Decimal `json:"value"` // Always positive
	ExpenseDate time.Time       `json:"expenseDate"`
	Description string          `json:"description"`
	AuditFields
}
