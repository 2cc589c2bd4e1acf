package dto

import (
	"time"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// SaveFreightRequest defines the data needed to create a freight. The same
// shape is used for edits: an edit fully replaces the record and re-derives
// every computed field, it never patches in place.
type SaveFreightRequest struct {
	FreightDate    string          `json:"freightDate" binding:"required,dateymd"`
	TotalValue     decimal.Decimal `json:"totalValue" binding:"required"`
	CompanyPercent decimal.Decimal `json:"companyPercent"`
	DriverPercent  decimal.Decimal `json:"driverPercent"`
	ReservePercent decimal.Decimal `json:"reservePercent"`

	PaidInFull   bool            `json:"paidInFull"`
	AdvanceValue decimal.Decimal `json:"advanceValue"`
	DueDate      *string         `json:"dueDate" binding:"omitempty,dateymd"`

	ClientName    string `json:"clientName"`
	ClientDoc     string `json:"clientDoc"`
	Origin        string `json:"origin"`
	Destination   string `json:"destination"`
	Description   string `json:"description"`
	PaymentMethod string `json:"paymentMethod"`
}

// FreightResponse defines the data returned for a freight.
type FreightResponse struct {
	FreightID   string `json:"freightID"`
	FreightDate string `json:"freightDate"` // "YYYY-MM-DD"

	TotalValue     decimal.Decimal `json:"totalValue"`
	CompanyPercent decimal.Decimal `json:"companyPercent"`
	DriverPercent  decimal.Decimal `json:"driverPercent"`
	ReservePercent decimal.Decimal `json:"reservePercent"`
	CompanyValue   decimal.Decimal `json:"companyValue"`
	DriverValue    decimal.Decimal `json:"driverValue"`
	ReserveValue   decimal.Decimal `json:"reserveValue"`

	Status        domain.FreightStatus `json:"status"`
	ReceivedValue decimal.Decimal      `json:"receivedValue"`
	PendingValue  decimal.Decimal      `json:"pendingValue"`
	DueDate       *string              `json:"dueDate,omitempty"`

	ClientName    string `json:"clientName,omitempty"`
	ClientDoc     string `json:"clientDoc,omitempty"`
	Origin        string `json:"origin,omitempty"`
	Destination   string `json:"destination,omitempty"`
	Description   string `json:"description,omitempty"`
	PaymentMethod string `json:"paymentMethod,omitempty"`

	CreatedAt     time.Time `json:"createdAt"`
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
}

// SaveFreightResponse wraps a saved freight together with the advisory
// split-percentage warning, when the percentages do not sum to 100.
type SaveFreightResponse struct {
	Freight FreightResponse `json:"freight"`
	Warning string          `json:"warning,omitempty"`
}

// ToFreightResponse converts a domain.Freight to FreightResponse.
func ToFreightResponse(f *domain.Freight) FreightResponse {
	resp := FreightResponse{
		FreightID:      f.FreightID,
		FreightDate:    f.FreightDate.Format("2006-01-02"),
		TotalValue:     f.TotalValue,
		CompanyPercent: f.CompanyPercent,
		DriverPercent:  f.DriverPercent,
		ReservePercent: f.ReservePercent,
		CompanyValue:   f.CompanyValue,
		DriverValue:    f.DriverValue,
		ReserveValue:   f.ReserveValue,
		Status:         f.Status,
		ReceivedValue:  f.ReceivedValue,
		PendingValue:   f.PendingValue,
		ClientName:     f.ClientName,
		ClientDoc:      f.ClientDoc,
		Origin:         f.Origin,
		Destination:    f.Destination,
		Description:    f.Description,
		PaymentMethod:  f.PaymentMethod,
		CreatedAt:      f.CreatedAt,
		LastUpdatedAt:  f.LastUpdatedAt,
	}
	if f.DueDate != nil {
		due := f.DueDate.Format("2006-01-02")
		resp.DueDate = &due
	}
	return resp
}

// ListFreightsParams defines query parameters for listing freights.
type ListFreightsParams struct {
	Limit  int `form:"limit,default=20"`
	Offset int `form:"offset,default=0"`
	Year   int `form:"year"`
	Month  int `form:"month"` // 1-12; with Year, lists one month instead of paginating
}

// ListFreightsResponse wraps the list of freights.
type ListFreightsResponse struct {
	Freights []FreightResponse `json:"freights"`
}

// FreightFeedItemResponse is one row of the merged native+marketplace feed.
type FreightFeedItemResponse struct {
	Kind   domain.FreightListKind `json:"kind"`
	ID     string                 `json:"id"`
	Date   string                 `json:"date"` // "YYYY-MM-DD"
	Title  string                 `json:"title"`
	Amount decimal.Decimal        `json:"amount"`
	Status string                 `json:"status"`
}

// ToFreightFeedResponse converts the merged feed to its wire shape.
func ToFreightFeedResponse(items []domain.FreightListItem) []FreightFeedItemResponse {
	out := make([]FreightFeedItemResponse, len(items))
	for i, it := range items {
		out[i] = FreightFeedItemResponse{
			Kind:   it.Kind,
			ID:     it.ID,
			Date:   it.Date.Format("2006-01-02"),
			Title:  it.Title,
			Amount: it.Amount,
			Status: it.Status,
		}
	}
	return out
}
