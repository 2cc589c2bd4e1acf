package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// OFretejaStatus mirrors the marketplace workflow status for DB storage.
type OFretejaStatus string

// OFretejaFreight is the database representation of a marketplace freight
// request. Stops are stored as a JSONB column.
type OFretejaFreight struct {
	RequestID   string         `db:"request_id"`
	OwnerUserID string         `db:"owner_user_id"`
	ExternalRef string         `db:"external_ref"`
	Status      OFretejaStatus `db:"status"`

	RequesterName  string          `db:"requester_name"`
	RequesterPhone string          `db:"requester_phone"`
	PickupDate     time.Time       `db:"pickup_date"`
	ProposedValue  decimal.Decimal `db:"proposed_value"`

	OriginAddress      string `db:"origin_address"`
	DestinationAddress string `db:"destination_address"`
	StopsJSON          []byte `db:"stops"` // JSONB
	VehicleCategory    string `db:"vehicle_category"`
	CargoDescription   string `db:"cargo_description"`

	ImportedFreightID string `db:"imported_freight_id"` // Nullable

	AuditFields
}
