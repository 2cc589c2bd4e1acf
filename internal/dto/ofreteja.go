package dto

import (
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// OFretejaStopPayload is one pickup or delivery stop on a request.
type OFretejaStopPayload struct {
	Sequence   int    `json:"sequence"`
	Address    string `json:"address" binding:"required"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
}

// CreateOFretejaRequest defines an incoming marketplace freight request.
type CreateOFretejaRequest struct {
	ExternalRef        string                `json:"externalRef" binding:"required"`
	RequesterName      string                `json:"requesterName" binding:"required"`
	RequesterPhone     string                `json:"requesterPhone"`
	PickupDate         string                `json:"pickupDate" binding:"required,dateymd"`
	ProposedValue      decimal.Decimal       `json:"proposedValue" binding:"required"`
	OriginAddress      string                `json:"originAddress" binding:"required"`
	DestinationAddress string                `json:"destinationAddress" binding:"required"`
	Stops              []OFretejaStopPayload `json:"stops"`
	VehicleCategory    string                `json:"vehicleCategory"`
	CargoDescription   string                `json:"cargoDescription"`
}

// OFretejaResponse defines the data returned for a marketplace request.
type OFretejaResponse struct {
	RequestID          string                `json:"requestID"`
	ExternalRef        string                `json:"externalRef"`
	Status             domain.OFretejaStatus `json:"status"`
	RequesterName      string                `json:"requesterName"`
	RequesterPhone     string                `json:"requesterPhone,omitempty"`
	PickupDate         string                `json:"pickupDate"` // "YYYY-MM-DD"
	ProposedValue      decimal.Decimal       `json:"proposedValue"`
	OriginAddress      string                `json:"originAddress"`
	DestinationAddress string                `json:"destinationAddress"`
	Stops              []OFretejaStopPayload `json:"stops,omitempty"`
	VehicleCategory    string                `json:"vehicleCategory,omitempty"`
	CargoDescription   string                `json:"cargoDescription,omitempty"`
	ImportedFreightID  string                `json:"importedFreightID,omitempty"`
}

// ToOFretejaResponse converts a domain.OFretejaFreight.
func ToOFretejaResponse(r *domain.OFretejaFreight) OFretejaResponse {
	stops := make([]OFretejaStopPayload, len(r.Stops))
	for i, s := range r.Stops {
		stops[i] = OFretejaStopPayload{
			Sequence:   s.Sequence,
			Address:    s.Address,
			City:       s.City,
			State:      s.State,
			PostalCode: s.PostalCode,
		}
	}
	return OFretejaResponse{
		RequestID:          r.RequestID,
		ExternalRef:        r.ExternalRef,
		Status:             r.Status,
		RequesterName:      r.RequesterName,
		RequesterPhone:     r.RequesterPhone,
		PickupDate:         r.PickupDate.Format("2006-01-02"),
		ProposedValue:      r.ProposedValue,
		OriginAddress:      r.OriginAddress,
		DestinationAddress: r.DestinationAddress,
		Stops:              stops,
		VehicleCategory:    r.VehicleCategory,
		CargoDescription:   r.CargoDescription,
		ImportedFreightID:  r.ImportedFreightID,
	}
}

// ListOFretejaParams defines query parameters for listing requests.
type ListOFretejaParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
}

// ListOFretejaResponse wraps the list of marketplace requests.
type ListOFretejaResponse struct {
	Requests []OFretejaResponse `json:"requests"`
}

// ImportOFretejaRequest carries the split percentages applied when an
// approved marketplace request becomes a native freight.
type ImportOFretejaRequest struct {
	CompanyPercent decimal.Decimal `json:"companyPercent"`
	DriverPercent  decimal.Decimal `json:"driverPercent"`
	ReservePercent decimal.Decimal `json:"reservePercent"`
}
