package dto

import (
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// UpdateSettingsRequest fully replaces the caller's settings row.
type UpdateSettingsRequest struct {
	DefaultCompanyPercent decimal.Decimal `json:"defaultCompanyPercent"`
	DefaultDriverPercent  decimal.Decimal `json:"defaultDriverPercent"`
	DefaultReservePercent decimal.Decimal `json:"defaultReservePercent"`

	MonthlyGoal  decimal.Decimal `json:"monthlyGoal"`
	GoalDeadline *string         `json:"goalDeadline" binding:"omitempty,dateymd"`

	IssuerName  string `json:"issuerName"`
	IssuerDoc   string `json:"issuerDoc"`
	IssuerPhone string `json:"issuerPhone"`
}

// SettingsResponse defines the data returned for user settings.
type SettingsResponse struct {
	DefaultCompanyPercent decimal.Decimal `json:"defaultCompanyPercent"`
	DefaultDriverPercent  decimal.Decimal `json:"defaultDriverPercent"`
	DefaultReservePercent decimal.Decimal `json:"defaultReservePercent"`

	MonthlyGoal  decimal.Decimal `json:"monthlyGoal"`
	GoalDeadline *string         `json:"goalDeadline,omitempty"`

	IssuerName  string `json:"issuerName,omitempty"`
	IssuerDoc   string `json:"issuerDoc,omitempty"`
	IssuerPhone string `json:"issuerPhone,omitempty"`
}

// ToSettingsResponse converts a domain.Settings.
func ToSettingsResponse(s *domain.Settings) SettingsResponse {
	resp := SettingsResponse{
		DefaultCompanyPercent: s.DefaultCompanyPercent,
		DefaultDriverPercent:  s.DefaultDriverPercent,
		DefaultReservePercent: s.DefaultReservePercent,
		MonthlyGoal:           s.MonthlyGoal,
		IssuerName:            s.IssuerName,
		IssuerDoc:             s.IssuerDoc,
		IssuerPhone:           s.IssuerPhone,
	}
	if s.GoalDeadline != nil {
		d := s.GoalDeadline.Format("2006-01-02")
		resp.GoalDeadline = &d
	}
	return resp
}
