package domain_test

import (
	"testing"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestBuildClosure(t *testing.T) {
	freights := []domain.Freight{
		{
			TotalValue:   dec("600"),
			CompanyValue: dec("300"),
			DriverValue:  dec("240"),
			ReserveValue: dec("60"),
		},
		{
			TotalValue:   dec("400"),
			CompanyValue: dec("300"),
			DriverValue:  dec("60"),
			ReserveValue: dec("40"),
		},
	}
	expenses := []domain.Expense{
		{Source: domain.FundCompany, Value: dec("50")},
		{Source: domain.FundReserve, Value: dec("20")},
	}

	c := domain.BuildClosure(2024, 3, freights, expenses)

	assert.Equal(t, 2024, c.Year)
	assert.Equal(t, 3, c.Month)
	assert.Equal(t, 2, c.FreightCount)
	assert.Equal(t, 2, c.ExpenseCount)

	assert.True(t, c.TotalIncome.Equal(dec("1000")))
	assert.True(t, c.TotalCompany.Equal(dec("600")))
	assert.True(t, c.TotalDriver.Equal(dec("300")))
	assert.True(t, c.TotalReserve.Equal(dec("100")))

	assert.True(t, c.ExpensesBySource[domain.FundCompany].Equal(dec("50")))
	assert.True(t, c.ExpensesBySource[domain.FundDriver].IsZero())
	assert.True(t, c.ExpensesBySource[domain.FundReserve].Equal(dec("20")))
	assert.True(t, c.TotalExpenses.Equal(dec("70")))

	assert.True(t, c.NetCompany.Equal(dec("550")))
	assert.True(t, c.NetDriver.Equal(dec("300")))
	assert.True(t, c.NetReserve.Equal(dec("80")))
	assert.True(t, c.NetProfit.Equal(dec("930")))
}

func TestBuildClosureUsesFrozenSplitValues(t *testing.T) {
	// The closure sums the values frozen at save time. A freight whose
	// percentages were later meaningless must not be re-derived.
	freights := []domain.Freight{
		{
			TotalValue:     dec("100"),
			CompanyPercent: dec("99"), // Deliberately inconsistent with the frozen value
			CompanyValue:   dec("10"),
			DriverValue:    dec("80"),
			ReserveValue:   dec("10"),
		},
	}

	c := domain.BuildClosure(2024, 1, freights, nil)
	assert.True(t, c.TotalCompany.Equal(dec("10")))
	assert.True(t, c.TotalDriver.Equal(dec("80")))
}

func TestBuildClosureEmptyMonth(t *testing.T) {
	c := domain.BuildClosure(2024, 2, nil, nil)

	assert.Zero(t, c.FreightCount)
	assert.Zero(t, c.ExpenseCount)
	assert.True(t, c.TotalIncome.IsZero())
	assert.True(t, c.NetProfit.IsZero())
	assert.True(t, c.ExpensesBySource[domain.FundCompany].Equal(decimal.Zero))
}
