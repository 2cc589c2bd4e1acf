package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/apperrors"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	portsrepo "github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/ports/repositories"
	portssvc "github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/ports/services"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/dto"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/utils/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// ofretejaService implements the OFretejaSvcFacade interface.
type ofretejaService struct {
	BaseService
	ofretejaRepo portsrepo.OFretejaRepositoryFacade
	freightRepo  portsrepo.FreightRepositoryFacade
}

// NewOFretejaService creates a new marketplace request service.
func NewOFretejaService(ofretejaRepo portsrepo.OFretejaRepositoryFacade, freightRepo portsrepo.FreightRepositoryFacade) portssvc.OFretejaSvcFacade {
	return &ofretejaService{
		ofretejaRepo: ofretejaRepo,
		freightRepo:  freightRepo,
	}
}

// Ensure ofretejaService implements the OFretejaSvcFacade interface.
var _ portssvc.OFretejaSvcFacade = (*ofretejaService)(nil)

func (s *ofretejaService) CreateRequest(ctx context.Context, req dto.CreateOFretejaRequest, userID string) (*domain.OFretejaFreight, error) {
	if !req.ProposedValue.IsPositive() {
		return nil, fmt.Errorf("%w: proposed value must be positive", apperrors.ErrValidation)
	}

	stops := make([]domain.OFretejaStop, len(req.Stops))
	for i, stop := range req.Stops {
		stops[i] = domain.OFretejaStop{
			Sequence:   stop.Sequence,
			Address:    stop.Address,
			City:       stop.City,
			State:      stop.State,
			PostalCode: stop.PostalCode,
		}
	}

	now := time.Now()
	request := domain.OFretejaFreight{
		RequestID:          uuid.NewString(),
		OwnerUserID:        userID,
		ExternalRef:        req.ExternalRef,
		Status:             domain.OFretejaAwaitingReview,
		RequesterName:      req.RequesterName,
		RequesterPhone:     req.RequesterPhone,
		PickupDate:         dto.ParseDateYMD(req.PickupDate),
		ProposedValue:      req.ProposedValue,
		OriginAddress:      req.OriginAddress,
		DestinationAddress: req.DestinationAddress,
		Stops:              stops,
		VehicleCategory:    req.VehicleCategory,
		CargoDescription:   req.CargoDescription,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.ofretejaRepo.SaveRequest(ctx, request); err != nil {
		s.LogError(ctx, err, "Failed to save marketplace request",
			slog.String("request_id", request.RequestID))
		return nil, err
	}

	s.LogInfo(ctx, "Marketplace request created",
		slog.String("request_id", request.RequestID),
		slog.String("external_ref", request.ExternalRef))
	return &request, nil
}

func (s *ofretejaService) GetRequestByID(ctx context.Context, requestID string, userID string) (*domain.OFretejaFreight, error) {
	request, err := s.ofretejaRepo.FindRequestByID(ctx, requestID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find marketplace request",
				slog.String("request_id", requestID))
		}
		return nil, err
	}
	if request.OwnerUserID != userID {
		return nil, apperrors.ErrNotFound
	}
	return request, nil
}

func (s *ofretejaService) ListRequests(ctx context.Context, userID string, limit int, offset int) ([]domain.OFretejaFreight, error) {
	requests, err := s.ofretejaRepo.ListRequests(ctx, userID, limit, offset)
	if err != nil {
		s.LogError(ctx, err, "Failed to list marketplace requests")
		return nil, fmt.Errorf("failed to list marketplace requests: %w", err)
	}
	if requests == nil {
		return []domain.OFretejaFreight{}, nil
	}
	return requests, nil
}

func (s *ofretejaService) TransitionRequest(ctx context.Context, requestID string, next domain.OFretejaStatus, userID string) (*domain.OFretejaFreight, error) {
	request, err := s.GetRequestByID(ctx, requestID, userID)
	if err != nil {
		return nil, err
	}

	if !request.CanTransitionTo(next) {
		return nil, fmt.Errorf("%w: cannot transition request from %s to %s", apperrors.ErrValidation, request.Status, next)
	}

	request.Status = next
	request.LastUpdatedAt = time.Now()
	request.LastUpdatedBy = userID

	if err := s.ofretejaRepo.UpdateRequest(ctx, *request); err != nil {
		s.LogError(ctx, err, "Failed to update marketplace request",
			slog.String("request_id", requestID))
		return nil, err
	}

	s.LogInfo(ctx, "Marketplace request transitioned",
		slog.String("request_id", requestID),
		slog.String("status", string(next)))
	return request, nil
}

// ImportRequest turns an approved request into a native freight. The freight
// is created first; only after that succeeds is the request flipped to
// IMPORTED, so a failed import can simply be retried.
func (s *ofretejaService) ImportRequest(ctx context.Context, requestID string, req dto.ImportOFretejaRequest, userID string) (*domain.Freight, error) {
	request, err := s.GetRequestByID(ctx, requestID, userID)
	if err != nil {
		return nil, err
	}

	if !request.CanTransitionTo(domain.OFretejaImported) {
		return nil, fmt.Errorf("%w: only approved requests can be imported, current status %s", apperrors.ErrValidation, request.Status)
	}

	payment, err := finance.DerivePayment(request.ProposedValue, false, decimal.Zero)
	if err != nil {
		return nil, err
	}
	split := finance.ComputeSplit(request.ProposedValue, req.CompanyPercent, req.DriverPercent, req.ReservePercent)

	now := time.Now()
	freight := domain.Freight{
		FreightID:      uuid.NewString(),
		OwnerUserID:    userID,
		FreightDate:    domain.NoonAnchor(request.PickupDate),
		TotalValue:     request.ProposedValue,
		CompanyPercent: req.CompanyPercent,
		DriverPercent:  req.DriverPercent,
		ReservePercent: req.ReservePercent,
		CompanyValue:   split.Company,
		DriverValue:    split.Driver,
		ReserveValue:   split.Reserve,
		Status:         payment.Status,
		ReceivedValue:  payment.Received,
		PendingValue:   payment.Pending,
		ClientName:     request.RequesterName,
		Origin:         request.OriginAddress,
		Destination:    request.DestinationAddress,
		Description:    request.CargoDescription,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}

	if err := s.freightRepo.SaveFreight(ctx, freight); err != nil {
		s.LogError(ctx, err, "Failed to save imported freight",
			slog.String("request_id", requestID))
		return nil, err
	}

	request.Status = domain.OFretejaImported
	request.ImportedFreightID = freight.FreightID
	request.LastUpdatedAt = now
	request.LastUpdatedBy = userID
	if err := s.ofretejaRepo.UpdateRequest(ctx, *request); err != nil {
		s.LogError(ctx, err, "Failed to mark marketplace request as imported",
			slog.String("request_id", requestID),
			slog.String("freight_id", freight.FreightID))
		return nil, err
	}

	s.LogInfo(ctx, "Marketplace request imported",
		slog.String("request_id", requestID),
		slog.String("freight_id", freight.FreightID))
	return &freight, nil
}
