package dto

import (
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ClosureParams defines query parameters selecting the month to close.
type ClosureParams struct {
	Year  int `form:"year" binding:"required"`
	Month int `form:"month" binding:"required,min=1,max=12"`
}

// ClosureResponse is the printable monthly statement breakdown.
type ClosureResponse struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalCompany decimal.Decimal `json:"totalCompany"`
	TotalDriver  decimal.Decimal `json:"totalDriver"`
	TotalReserve decimal.Decimal `json:"totalReserve"`

	ExpensesBySource map[string]decimal.Decimal `json:"expensesBySource"`
	TotalExpenses    decimal.Decimal            `json:"totalExpenses"`

	NetCompany decimal.Decimal `json:"netCompany"`
	NetDriver  decimal.Decimal `json:"netDriver"`
	NetReserve decimal.Decimal `json:"netReserve"`
	NetProfit  decimal.Decimal `json:"netProfit"`

	FreightCount int `json:"freightCount"`
	ExpenseCount int `json:"expenseCount"`
}

// ToClosureResponse converts a domain.MonthlyClosure.
func ToClosureResponse(c *domain.MonthlyClosure) ClosureResponse {
	expenses := make(map[string]decimal.Decimal, len(c.ExpensesBySource))
	for fund, v := range c.ExpensesBySource {
		expenses[string(fund)] = v
	}
	return ClosureResponse{
		Year:             c.Year,
		Month:            c.Month,
		TotalIncome:      c.TotalIncome,
		TotalCompany:     c.TotalCompany,
		TotalDriver:      c.TotalDriver,
		TotalReserve:     c.TotalReserve,
		ExpensesBySource: expenses,
		TotalExpenses:    c.TotalExpenses,
		NetCompany:       c.NetCompany,
		NetDriver:        c.NetDriver,
		NetReserve:       c.NetReserve,
		NetProfit:        c.NetProfit,
		FreightCount:     c.FreightCount,
		ExpenseCount:     c.ExpenseCount,
	}
}
