package services

import (
	"context"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/dto"
)

// FreightReaderSvc defines read operations for freight data.
type FreightReaderSvc interface {
	// GetFreightByID retrieves one of the caller's freights.
	GetFreightByID(ctx context.Context, freightID string, userID string) (*domain.Freight, error)

	// ListFreights retrieves the caller's freights, by month when the params
	// name one, otherwise paginated newest first.
	ListFreights(ctx context.Context, userID string, params dto.ListFreightsParams) ([]domain.Freight, error)

	// GetFreightFeed returns the merged native+marketplace listing,
	// date-descending, as a tagged union.
	GetFreightFeed(ctx context.Context, userID string) ([]domain.FreightListItem, error)
}

// FreightWriterSvc defines write operations for freight data.
type FreightWriterSvc interface {
	// CreateFreight validates the entry, computes the split and payment
	// state, and persists the freight with those values frozen. The returned
	// warning is non-empty when the percentages do not sum to 100.
	CreateFreight(ctx context.Context, req dto.SaveFreightRequest, userID string) (*domain.Freight, string, error)

	// UpdateFreight re-derives every computed field from the request and
	// fully replaces the stored record.
	UpdateFreight(ctx context.Context, freightID string, req dto.SaveFreightRequest, userID string) (*domain.Freight, string, error)

	// DeleteFreight removes one of the caller's freights.
	DeleteFreight(ctx context.Context, freightID string, userID string) error
}

// FreightSvcFacade combines all freight service interfaces.
type FreightSvcFacade interface {
	FreightReaderSvc
	FreightWriterSvc
}
