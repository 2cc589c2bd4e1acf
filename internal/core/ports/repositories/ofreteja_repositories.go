package repositories

import (
	"context"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
)

// OFretejaRepositoryFacade persists marketplace freight requests.
type OFretejaRepositoryFacade interface {
	// FindRequestByID retrieves a specific marketplace request.
	FindRequestByID(ctx context.Context, requestID string) (*domain.OFretejaFreight, error)

	// ListRequests retrieves the owner's marketplace requests, newest first.
	// A zero limit applies the default page size; a negative limit returns
	// the full listing.
	ListRequests(ctx context.Context, ownerUserID string, limit int, offset int) ([]domain.OFretejaFreight, error)

	// SaveRequest persists a new marketplace request.
	SaveRequest(ctx context.Context, request domain.OFretejaFreight) error

	// UpdateRequest replaces the stored request, including its workflow status.
	UpdateRequest(ctx context.Context, request domain.OFretejaFreight) error
}
