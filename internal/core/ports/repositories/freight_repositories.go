package repositories

import (
	"context"
	"time"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
)

// FreightReader defines read operations for freight data.
type FreightReader interface {
	// FindFreightByID retrieves a specific freight by its unique identifier.
	FindFreightByID(ctx context.Context, freightID string) (*domain.Freight, error)

	// ListFreights retrieves a paginated list of an owner's freights, newest
	// first. A zero limit applies the default page size; a negative limit
	// returns the full listing.
	ListFreights(ctx context.Context, ownerUserID string, limit int, offset int) ([]domain.Freight, error)

	// ListFreightsByMonth retrieves every freight of the owner dated in the given month.
	ListFreightsByMonth(ctx context.Context, ownerUserID string, year int, month time.Month) ([]domain.Freight, error)

	// ListFreightsInRange retrieves the owner's freights dated in [from, to).
	ListFreightsInRange(ctx context.Context, ownerUserID string, from, to time.Time) ([]domain.Freight, error)
}

// FreightWriter defines write operations for freight data.
type FreightWriter interface {
	// SaveFreight persists a new freight with its frozen split values.
	SaveFreight(ctx context.Context, freight domain.Freight) error

	// UpdateFreight replaces every derived field of an existing freight.
	// Edits are full replacements, never partial patches.
	UpdateFreight(ctx context.Context, freight domain.Freight) error

	// DeleteFreight removes a freight record.
	DeleteFreight(ctx context.Context, freightID string) error
}

// FreightRepositoryFacade combines all freight repository interfaces.
type FreightRepositoryFacade interface {
	FreightReader
	FreightWriter
}
