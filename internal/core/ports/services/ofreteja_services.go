package services

import (
	"context"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/dto"
)

// OFretejaSvcFacade manages the marketplace request workflow.
type OFretejaSvcFacade interface {
	// CreateRequest registers an incoming marketplace freight request in
	// AGUARDANDO_ANALISE state.
	CreateRequest(ctx context.Context, req dto.CreateOFretejaRequest, userID string) (*domain.OFretejaFreight, error)

	// GetRequestByID retrieves one of the caller's marketplace requests.
	GetRequestByID(ctx context.Context, requestID string, userID string) (*domain.OFretejaFreight, error)

	// ListRequests retrieves the caller's marketplace requests, newest first.
	ListRequests(ctx context.Context, userID string, limit int, offset int) ([]domain.OFretejaFreight, error)

	// TransitionRequest moves a request through the review workflow. Illegal
	// moves fail with a validation error.
	TransitionRequest(ctx context.Context, requestID string, next domain.OFretejaStatus, userID string) (*domain.OFretejaFreight, error)

	// ImportRequest turns an approved request into a native freight using
	// the given split percentages and marks the request IMPORTED.
	ImportRequest(ctx context.Context, requestID string, req dto.ImportOFretejaRequest, userID string) (*domain.Freight, error)
}
