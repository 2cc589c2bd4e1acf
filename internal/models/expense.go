package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Fund mirrors the domain fund enum for DB storage.
type Fund string

const (
	FundCompany Fund = "COMPANY"
	FundDriver  Fund = "DRIVER"
	FundReserve Fund = "RESERVE"
)

// Expense is the database representation of a fund deduction.
type Expense struct {
	ExpenseID   string          `db:"expense_id"`
	OwnerUserID string          `db:"owner_user_id"`
	Source      Fund            `db:"source"`
	Value       decimal.Decimal `db:"value"`
	ExpenseDate time.Time       `db:"expense_date"`
	Description string          `db:"description"`
	AuditFields
}
