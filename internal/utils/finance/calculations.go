// Package finance holds the pure monetary calculations shared by services
// and handlers: the three-way revenue split and payment-status derivation.
package finance

import (
	"fmt"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/apperrors"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	"github.com/shopspring/decimal"
)

var (
	hundred = decimal.NewFromInt(100)
	// percentTolerance is how far the three percentages may drift from 100
	// before the sum is considered invalid.
	percentTolerance = decimal.NewFromFloat(0.1)
)

// SplitValues is the three-way allocation of a freight's total value.
type SplitValues struct {
	Company decimal.Decimal
	Driver  decimal.Decimal
	Reserve decimal.Decimal
}

// ComputeSplit allocates totalValue across the three funds. Each share is
// totalValue * percent / 100 at full decimal precision; rounding is left to
// the presentation layer.
func ComputeSplit(totalValue, companyPct, driverPct, reservePct decimal.Decimal) SplitValues {
	return SplitValues{
		Company: totalValue.Mul(companyPct).Div(hundred),
		Driver:  totalValue.Mul(driverPct).Div(hundred),
		Reserve: totalValue.Mul(reservePct).Div(hundred),
	}
}

// ValidSplitPercents reports whether the three percentages sum to 100 within
// tolerance. The check is advisory: an off sum is surfaced to the user but
// does not by itself reject a freight.
func ValidSplitPercents(companyPct, driverPct, reservePct decimal.Decimal) bool {
	sum := companyPct.Add(driverPct).Add(reservePct)
	return sum.Sub(hundred).Abs().LessThan(percentTolerance)
}

// PaymentState is the derived payment breakdown of a freight.
type PaymentState struct {
	Received decimal.Decimal
	Pending  decimal.Decimal
	Status   domain.FreightStatus
}

// DerivePayment computes received/pending amounts and the payment status
// from the entry form's inputs. A negative advance or one exceeding the
// total is an error state that must block the save; a negative pending
// value is never stored.
func DerivePayment(totalValue decimal.Decimal, paidInFull bool, advance decimal.Decimal) (PaymentState, error) {
	if paidInFull {
		return PaymentState{
			Received: totalValue,
			Pending:  decimal.Zero,
			Status:   domain.FreightPaid,
		}, nil
	}
	if advance.IsNegative() {
		return PaymentState{}, fmt.Errorf("%w: advance %s cannot be negative", apperrors.ErrValidation, advance)
	}
	if advance.GreaterThan(totalValue) {
		return PaymentState{}, fmt.Errorf("%w: advance %s exceeds total value %s", apperrors.ErrValidation, advance, totalValue)
	}
	pending := totalValue.Sub(advance)
	status := domain.FreightPartial
	if advance.IsZero() {
		status = domain.FreightPending
	} else if pending.IsZero() {
		status = domain.FreightPaid
	}
	return PaymentState{Received: advance, Pending: pending, Status: status}, nil
}
