package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// FreightStatus mirrors the domain payment status for DB storage.
type FreightStatus string

const (
	FreightPaid    FreightStatus = "PAID"
	FreightPartial FreightStatus = "PARTIAL"
	FreightPending FreightStatus = "PENDING"
)

// Freight is the database representation of a freight job.
type Freight struct {
	FreightID   string    `db:"freight_id"`
	OwnerUserID string    `db:"owner_user_id"`
	FreightDate time.Time `db:"freight_date"`

	TotalValue     decimal.Decimal `db:"total_value"`
	CompanyPercent decimal.Decimal `db:"company_percent"`
	DriverPercent  decimal.Decimal `db:"driver_percent"`
	ReservePercent decimal.Decimal `db:"reserve_percent"`
	CompanyValue   decimal.Decimal `db:"company_value"`
	DriverValue    decimal.Decimal `db:"driver_value"`
	ReserveValue   decimal.Decimal `db:"reserve_value"`

	Status        FreightStatus   `db:"status"`
	ReceivedValue decimal.Decimal `db:"received_value"`
	PendingValue  decimal.Decimal `db:"pending_value"`
	DueDate       *time.Time      `db:"due_date"` // Nullable

	ClientName    string `db:"client_name"`
	ClientDoc     string `db:"client_doc"`
	Origin        string `db:"origin"`
	Destination   string `db:"destination"`
	Description   string `db:"description"`
	PaymentMethod string `db:"payment_method"`

	AuditFields
}
