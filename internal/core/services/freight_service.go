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
)

// splitWarningMessage is surfaced when the percentages do not sum to 100.
// It is advisory and never blocks the save by itself.
const splitWarningMessage = "split percentages do not sum to 100"

// listAll asks a repository listing for every row instead of a page.
const listAll = -1

// freightService implements the FreightSvcFacade interface.
type freightService struct {
	BaseService
	freightRepo  portsrepo.FreightRepositoryFacade
	ofretejaRepo portsrepo.OFretejaRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// FreightServiceOption is a functional option for configuring the freight service.
type FreightServiceOption func(*freightService)

// WithOFretejaRepository adds the marketplace repository, enabling the
// merged freight feed.
func WithOFretejaRepository(repo portsrepo.OFretejaRepositoryFacade) FreightServiceOption {
	return func(s *freightService) {
		s.ofretejaRepo = repo
	}
}

// WithSettingsRepository adds the settings repository, enabling default
// split percentages when an entry omits them.
func WithSettingsRepository(repo portsrepo.SettingsRepositoryFacade) FreightServiceOption {
	return func(s *freightService) {
		s.settingsRepo = repo
	}
}

// NewFreightService creates a new freight service with the provided options.
func NewFreightService(repo portsrepo.FreightRepositoryFacade, options ...FreightServiceOption) portssvc.FreightSvcFacade {
	svc := &freightService{freightRepo: repo}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure freightService implements the FreightSvcFacade interface.
var _ portssvc.FreightSvcFacade = (*freightService)(nil)

func (s *freightService) CreateFreight(ctx context.Context, req dto.SaveFreightRequest, userID string) (*domain.Freight, string, error) {
	freight, warning, err := s.deriveFreight(ctx, req, userID)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	freight.FreightID = uuid.NewString()
	freight.AuditFields = domain.AuditFields{
		CreatedAt:     now,
		CreatedBy:     userID,
		LastUpdatedAt: now,
		LastUpdatedBy: userID,
	}

	if err := s.freightRepo.SaveFreight(ctx, *freight); err != nil {
		s.LogError(ctx, err, "Failed to save freight",
			slog.String("freight_id", freight.FreightID))
		return nil, "", err
	}

	s.LogInfo(ctx, "Freight created successfully",
		slog.String("freight_id", freight.FreightID),
		slog.String("status", string(freight.Status)))
	return freight, warning, nil
}

func (s *freightService) UpdateFreight(ctx context.Context, freightID string, req dto.SaveFreightRequest, userID string) (*domain.Freight, string, error) {
	existing, err := s.GetFreightByID(ctx, freightID, userID)
	if err != nil {
		return nil, "", err
	}

	// An edit fully replaces the record: every computed field is re-derived
	// from the request, exactly as on first save.
	freight, warning, err := s.deriveFreight(ctx, req, userID)
	if err != nil {
		return nil, "", err
	}

	now := time.Now()
	freight.FreightID = existing.FreightID
	freight.AuditFields = existing.AuditFields
	freight.LastUpdatedAt = now
	freight.LastUpdatedBy = userID

	if err := s.freightRepo.UpdateFreight(ctx, *freight); err != nil {
		s.LogError(ctx, err, "Failed to update freight",
			slog.String("freight_id", freightID))
		return nil, "", err
	}

	s.LogInfo(ctx, "Freight updated successfully",
		slog.String("freight_id", freightID))
	return freight, warning, nil
}

func (s *freightService) GetFreightByID(ctx context.Context, freightID string, userID string) (*domain.Freight, error) {
	freight, err := s.freightRepo.FindFreightByID(ctx, freightID)
	if err != nil {
		if !errors.Is(err, apperrors.ErrNotFound) {
			s.LogError(ctx, err, "Failed to find freight by ID",
				slog.String("freight_id", freightID))
		}
		return nil, err
	}
	if freight.OwnerUserID != userID {
		// Return NotFound to obscure existence from other users.
		return nil, apperrors.ErrNotFound
	}
	return freight, nil
}

func (s *freightService) ListFreights(ctx context.Context, userID string, params dto.ListFreightsParams) ([]domain.Freight, error) {
	var (
		freights []domain.Freight
		err      error
	)
	if params.Year != 0 && params.Month >= 1 && params.Month <= 12 {
		freights, err = s.freightRepo.ListFreightsByMonth(ctx, userID, params.Year, time.Month(params.Month))
	} else {
		freights, err = s.freightRepo.ListFreights(ctx, userID, params.Limit, params.Offset)
	}
	if err != nil {
		s.LogError(ctx, err, "Failed to list freights")
		return nil, fmt.Errorf("failed to list freights: %w", err)
	}
	if freights == nil {
		return []domain.Freight{}, nil
	}
	return freights, nil
}

func (s *freightService) GetFreightFeed(ctx context.Context, userID string) ([]domain.FreightListItem, error) {
	// The feed must not be silently truncated to a page, so both listings
	// are read uncapped.
	freights, err := s.freightRepo.ListFreights(ctx, userID, listAll, 0)
	if err != nil {
		s.LogError(ctx, err, "Failed to list freights for feed")
		return nil, err
	}

	var requests []domain.OFretejaFreight
	if s.ofretejaRepo != nil {
		requests, err = s.ofretejaRepo.ListRequests(ctx, userID, listAll, 0)
		if err != nil {
			s.LogError(ctx, err, "Failed to list marketplace requests for feed")
			return nil, err
		}
	}

	return domain.MergeFreightFeed(freights, requests), nil
}

func (s *freightService) DeleteFreight(ctx context.Context, freightID string, userID string) error {
	if _, err := s.GetFreightByID(ctx, freightID, userID); err != nil {
		return err
	}
	if err := s.freightRepo.DeleteFreight(ctx, freightID); err != nil {
		s.LogError(ctx, err, "Failed to delete freight",
			slog.String("freight_id", freightID))
		return err
	}
	s.LogInfo(ctx, "Freight deleted successfully",
		slog.String("freight_id", freightID))
	return nil
}

// deriveFreight validates the entry and computes every derived field: split
// values, payment state and due-date retention. The returned warning is
// non-empty when the percentage sum is off.
func (s *freightService) deriveFreight(ctx context.Context, req dto.SaveFreightRequest, userID string) (*domain.Freight, string, error) {
	if !req.TotalValue.IsPositive() {
		return nil, "", fmt.Errorf("%w: total value must be positive", apperrors.ErrValidation)
	}

	companyPct, driverPct, reservePct := req.CompanyPercent, req.DriverPercent, req.ReservePercent
	if companyPct.IsZero() && driverPct.IsZero() && reservePct.IsZero() && s.settingsRepo != nil {
		if settings, err := s.settingsRepo.FindSettingsByOwner(ctx, userID); err == nil {
			companyPct = settings.DefaultCompanyPercent
			driverPct = settings.DefaultDriverPercent
			reservePct = settings.DefaultReservePercent
		}
	}

	warning := ""
	if !finance.ValidSplitPercents(companyPct, driverPct, reservePct) {
		warning = splitWarningMessage
	}

	payment, err := finance.DerivePayment(req.TotalValue, req.PaidInFull, req.AdvanceValue)
	if err != nil {
		return nil, "", err
	}

	split := finance.ComputeSplit(req.TotalValue, companyPct, driverPct, reservePct)

	freight := &domain.Freight{
		OwnerUserID:    userID,
		FreightDate:    dto.ParseDateYMD(req.FreightDate),
		TotalValue:     req.TotalValue,
		CompanyPercent: companyPct,
		DriverPercent:  driverPct,
		ReservePercent: reservePct,
		CompanyValue:   split.Company,
		DriverValue:    split.Driver,
		ReserveValue:   split.Reserve,
		Status:         payment.Status,
		ReceivedValue:  payment.Received,
		PendingValue:   payment.Pending,
		ClientName:     req.ClientName,
		ClientDoc:      req.ClientDoc,
		Origin:         req.Origin,
		Destination:    req.Destination,
		Description:    req.Description,
		PaymentMethod:  req.PaymentMethod,
	}

	// The due date only survives while something is still owed.
	if req.DueDate != nil && payment.Pending.IsPositive() {
		due := dto.ParseDateYMD(*req.DueDate)
		freight.DueDate = &due
	}

	return freight, warning, nil
}
