package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// FreightStatus indicates how much of a freight's value has been collected.
type FreightStatus string

const (
	FreightPaid    FreightStatus = "PAID"
	FreightPartial FreightStatus = "PARTIAL"
	FreightPending FreightStatus = "PENDING"
)

// Freight represents one transported-goods job with its three-way revenue
// split and payment tracking. The split values are computed when the record
// is saved and frozen until the next full save; they are never re-derived
// from the percentages afterwards, so historical statements stay stable.
type Freight struct {
	FreightID   string    `json:"freightID"` // Primary key (UUID)
	OwnerUserID string    `json:"ownerUserID"`
	FreightDate time.Time `json:"freightDate"` // Service date, anchored at local noon

	TotalValue     decimal.Decimal `json:"totalValue"`
	CompanyPercent decimal.Decimal `json:"companyPercent"`
	DriverPercent  decimal.Decimal `json:"driverPercent"`
	ReservePercent decimal.Decimal `json:"reservePercent"`
	CompanyValue   decimal.Decimal `json:"companyValue"` // Frozen at save time
	DriverValue    decimal.Decimal `json:"driverValue"`  // Frozen at save time
	ReserveValue   decimal.Decimal `json:"reserveValue"` // Frozen at save time

	Status        FreightStatus   `json:"status"`
	ReceivedValue decimal.Decimal `json:"receivedValue"`
	PendingValue  decimal.Decimal `json:"pendingValue"`
	DueDate       *time.Time      `json:"dueDate,omitempty"` // Only set while pendingValue > 0

	// Receipt metadata, all optional.
	ClientName    string `json:"clientName,omitempty"`
	ClientDoc     string `json:"clientDoc,omitempty"`
	Origin        string `json:"origin,omitempty"`
	Destination   string `json:"destination,omitempty"`
	Description   string `json:"description,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`

	AuditFields
}

// NoonAnchor normalizes a calendar date to 12:00 local time. Freight dates
// are stored as plain dates; anchoring at noon keeps the date from shifting
// a day when rendered in UTC-minus timezones.
func NoonAnchor(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 12, 0, 0, 0, time.Local)
}

// InMonth reports whether the freight's service date falls in the given
// calendar month, using the noon-anchored date.
func (f Freight) InMonth(year int, month time.Month) bool {
	d := NoonAnchor(f.FreightDate)
	return d.Year() == year && d.Month() == month
}
