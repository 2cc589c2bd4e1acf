package finance_test

import (
	"testing"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/apperrors"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/utils/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	v, err := decimal.NewFromString(s)
	if err != nil {
		panic(err)
	}
	return v
}

func TestComputeSplit(t *testing.T) {
	tests := []struct {
		name           string
		total          string
		company        string
		driver         string
		reserve        string
		wantCompany    string
		wantDriver     string
		wantReserve    string
		sumEqualsTotal bool
	}{
		{
			name:  "standard fifty forty ten",
			total: "1000", company: "50", driver: "40", reserve: "10",
			wantCompany: "500", wantDriver: "400", wantReserve: "100",
			sumEqualsTotal: true,
		},
		{
			name:  "fractional percentages keep precision",
			total: "100", company: "33.33", driver: "33.33", reserve: "33.34",
			wantCompany: "33.33", wantDriver: "33.33", wantReserve: "33.34",
			sumEqualsTotal: true,
		},
		{
			name:  "zero reserve",
			total: "250.50", company: "60", driver: "40", reserve: "0",
			wantCompany: "150.3", wantDriver: "100.2", wantReserve: "0",
			sumEqualsTotal: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			split := finance.ComputeSplit(d(tt.total), d(tt.company), d(tt.driver), d(tt.reserve))
			assert.True(t, split.Company.Equal(d(tt.wantCompany)), "company: got %s", split.Company)
			assert.True(t, split.Driver.Equal(d(tt.wantDriver)), "driver: got %s", split.Driver)
			assert.True(t, split.Reserve.Equal(d(tt.wantReserve)), "reserve: got %s", split.Reserve)
			if tt.sumEqualsTotal {
				sum := split.Company.Add(split.Driver).Add(split.Reserve)
				assert.True(t, sum.Equal(d(tt.total)), "sum: got %s", sum)
			}
		})
	}
}

func TestValidSplitPercents(t *testing.T) {
	tests := []struct {
		name    string
		company string
		driver  string
		reserve string
		want    bool
	}{
		{"exact hundred", "50", "40", "10", true},
		{"within tolerance", "50.05", "40", "9.99", true},
		{"sum too low", "40", "40", "10", false},
		{"sum too high", "60", "40", "10", false},
		{"off by exactly tolerance", "50.1", "40", "10", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := finance.ValidSplitPercents(d(tt.company), d(tt.driver), d(tt.reserve))
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestDerivePayment(t *testing.T) {
	t.Run("paid in full wins over advance", func(t *testing.T) {
		state, err := finance.DerivePayment(d("1000"), true, d("200"))
		require.NoError(t, err)
		assert.Equal(t, domain.FreightPaid, state.Status)
		assert.True(t, state.Received.Equal(d("1000")))
		assert.True(t, state.Pending.IsZero())
	})

	t.Run("no advance is pending", func(t *testing.T) {
		state, err := finance.DerivePayment(d("1000"), false, decimal.Zero)
		require.NoError(t, err)
		assert.Equal(t, domain.FreightPending, state.Status)
		assert.True(t, state.Received.IsZero())
		assert.True(t, state.Pending.Equal(d("1000")))
	})

	t.Run("partial advance", func(t *testing.T) {
		state, err := finance.DerivePayment(d("1000"), false, d("300"))
		require.NoError(t, err)
		assert.Equal(t, domain.FreightPartial, state.Status)
		assert.True(t, state.Received.Equal(d("300")))
		assert.True(t, state.Pending.Equal(d("700")))
	})

	t.Run("advance equal to total is paid", func(t *testing.T) {
		state, err := finance.DerivePayment(d("1000"), false, d("1000"))
		require.NoError(t, err)
		assert.Equal(t, domain.FreightPaid, state.Status)
		assert.True(t, state.Pending.IsZero())
	})

	t.Run("advance exceeding total is a validation error", func(t *testing.T) {
		_, err := finance.DerivePayment(d("1000"), false, d("1000.01"))
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})

	t.Run("negative advance is a validation error", func(t *testing.T) {
		_, err := finance.DerivePayment(d("1000"), false, d("-1"))
		require.Error(t, err)
		assert.ErrorIs(t, err, apperrors.ErrValidation)
	})
}
