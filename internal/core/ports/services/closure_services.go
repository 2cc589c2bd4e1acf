package services

import (
	"context"
	"time"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
)

// ClosureSvcFacade builds monthly closure statements.
type ClosureSvcFacade interface {
	// GetMonthlyClosure reduces one month's freights and expenses into the
	// bruto/despesas/saldo breakdown per fund.
	GetMonthlyClosure(ctx context.Context, userID string, year int, month time.Month) (*domain.MonthlyClosure, error)

	// ExportClosureXLSX renders the closure as a spreadsheet for printing.
	// Returns the file bytes and a suggested filename.
	ExportClosureXLSX(ctx context.Context, userID string, year int, month time.Month) ([]byte, string, error)
}
