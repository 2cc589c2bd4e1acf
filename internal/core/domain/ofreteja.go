package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// OFretejaStatus tracks a marketplace freight request through its review
// workflow. Values follow the marketplace's own vocabulary.
type OFretejaStatus string

const (
	OFretejaAwaitingReview   OFretejaStatus = "AGUARDANDO_ANALISE"
	OFretejaAwaitingApproval OFretejaStatus = "AGUARDANDO_APROVACAO"
	OFretejaApproved         OFretejaStatus = "APROVADO"
	OFretejaRejected         OFretejaStatus = "REPROVADO"
	OFretejaCancelled        OFretejaStatus = "CANCELLED"
	OFretejaImported         OFretejaStatus = "IMPORTED"
)

// OFretejaStop is one pickup or delivery point on a marketplace freight.
type OFretejaStop struct {
	Sequence   int    `json:"sequence"`
	Address    string `json:"address"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// OFretejaFreight is an externally-sourced freight request from the
// "O FreteJá" marketplace. It stays a workflow item with its own status and
// is only merged into the native Freight entity when imported.
type OFretejaFreight struct {
	RequestID   string         `json:"requestID"` // Primary key (UUID)
	OwnerUserID string         `json:"ownerUserID"`
	ExternalRef string         `json:"externalRef"` // Marketplace's own identifier
	Status      OFretejaStatus `json:"status"`

	RequesterName  string          `json:"requesterName"`
	RequesterPhone string          `json:"requesterPhone"`
	PickupDate     time.Time       `json:"pickupDate"`
	ProposedValue  decimal.Decimal `json:"proposedValue"`

	OriginAddress      string         `json:"originAddress"`
	DestinationAddress string         `json:"destinationAddress"`
	Stops              []OFretejaStop `json:"stops,omitempty"`
	VehicleCategory    string         `json:"vehicleCategory"`
	CargoDescription   string         `json:"cargoDescription"`

	ImportedFreightID string `json:"importedFreightID,omitempty"` // Set once imported

	AuditFields
}

// CanTransitionTo reports whether a status change is a legal workflow move.
// Terminal states (rejected, cancelled, imported) accept no transitions.
func (o OFretejaFreight) CanTransitionTo(next OFretejaStatus) bool {
	switch o.Status {
	case OFretejaAwaitingReview:
		return next == OFretejaAwaitingApproval || next == OFretejaRejected || next == OFretejaCancelled
	case OFretejaAwaitingApproval:
		return next == OFretejaApproved || next == OFretejaRejected || next == OFretejaCancelled
	case OFretejaApproved:
		return next == OFretejaImported || next == OFretejaCancelled
	default:
		return false
	}
}
