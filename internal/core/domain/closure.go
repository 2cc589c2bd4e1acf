package domain

import (
	"github.com/shopspring/decimal"
)

// MonthlyClosure is the finalized financial summary for one calendar month:
// gross income, the frozen per-fund split totals, expense deductions per
// fund, and the resulting net per fund. All figures carry full decimal
// precision; formatting happens only at the presentation layer so the
// printable statement reproduces exact values.
type MonthlyClosure struct {
	Year  int `json:"year"`
	Month int `json:"month"`

	TotalIncome  decimal.Decimal `json:"totalIncome"`
	TotalCompany decimal.Decimal `json:"totalCompany"`
	TotalDriver  decimal.Decimal `json:"totalDriver"`
	TotalReserve decimal.Decimal `json:"totalReserve"`

	ExpensesBySource map[Fund]decimal.Decimal `json:"expensesBySource"`
	TotalExpenses    decimal.Decimal          `json:"totalExpenses"`

	NetCompany decimal.Decimal `json:"netCompany"`
	NetDriver  decimal.Decimal `json:"netDriver"`
	NetReserve decimal.Decimal `json:"netReserve"`
	NetProfit  decimal.Decimal `json:"netProfit"`

	FreightCount int `json:"freightCount"`
	ExpenseCount int `json:"expenseCount"`
}

// BuildClosure reduces one month's freights and expenses into a closure.
// Split totals are sums of the values frozen on each freight at save time,
// never re-derived from the percentages.
func BuildClosure(year int, month int, freights []Freight, expenses []Expense) MonthlyClosure {
	c := MonthlyClosure{
		Year:  year,
		Month: month,
		ExpensesBySource: map[Fund]decimal.Decimal{
			FundCompany: decimal.Zero,
			FundDriver:  decimal.Zero,
			FundReserve: decimal.Zero,
		},
		TotalIncome:   decimal.Zero,
		TotalCompany:  decimal.Zero,
		TotalDriver:   decimal.Zero,
		TotalReserve:  decimal.Zero,
		TotalExpenses: decimal.Zero,
		FreightCount:  len(freights),
		ExpenseCount:  len(expenses),
	}

	for _, f := range freights {
		c.TotalIncome = c.TotalIncome.Add(f.TotalValue)
		c.TotalCompany = c.TotalCompany.Add(f.CompanyValue)
		c.TotalDriver = c.TotalDriver.Add(f.DriverValue)
		c.TotalReserve = c.TotalReserve.Add(f.ReserveValue)
	}

	for _, e := range expenses {
		c.ExpensesBySource[e.Source] = c.ExpensesBySource[e.Source].Add(e.Value)
		c.TotalExpenses = c.TotalExpenses.Add(e.Value)
	}

	c.NetCompany = c.TotalCompany.Sub(c.ExpensesBySource[FundCompany])
	c.NetDriver = c.TotalDriver.Sub(c.ExpensesBySource[FundDriver])
	c.NetReserve = c.TotalReserve.Sub(c.ExpensesBySource[FundReserve])
	c.NetProfit = c.NetCompany.Add(c.NetDriver).Add(c.NetReserve)

	return c
}
