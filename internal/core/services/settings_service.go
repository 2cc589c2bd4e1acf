package services

import (
	"context"
	"errors"
	"time"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/apperrors"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	portsrepo "github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/ports/repositories"
	portssvc "github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/ports/services"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/dto"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Default split for first-time users: half to the company, forty percent to
// the driver, ten percent to the reserve fund.
var (
	defaultCompanyPercent = decimal.NewFromInt(50)
	defaultDriverPercent  = decimal.NewFromInt(40)
	defaultReservePercent = decimal.NewFromInt(10)
)

// settingsService implements the SettingsSvcFacade interface.
type settingsService struct {
	BaseService
	settingsRepo portsrepo.SettingsRepositoryFacade
}

// NewSettingsService creates a new settings service.
func NewSettingsService(repo portsrepo.SettingsRepositoryFacade) portssvc.SettingsSvcFacade {
	return &settingsService{settingsRepo: repo}
}

// Ensure settingsService implements the SettingsSvcFacade interface.
var _ portssvc.SettingsSvcFacade = (*settingsService)(nil)

func (s *settingsService) GetSettings(ctx context.Context, userID string) (*domain.Settings, error) {
	settings, err := s.settingsRepo.FindSettingsByOwner(ctx, userID)
	if err == nil {
		return settings, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load settings")
		return nil, err
	}

	// First access: materialize the defaults so later reads are plain.
	now := time.Now()
	created := domain.Settings{
		SettingsID:            uuid.NewString(),
		OwnerUserID:           userID,
		DefaultCompanyPercent: defaultCompanyPercent,
		DefaultDriverPercent:  defaultDriverPercent,
		DefaultReservePercent: defaultReservePercent,
		MonthlyGoal:           decimal.Zero,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.settingsRepo.SaveSettings(ctx, created); err != nil {
		s.LogError(ctx, err, "Failed to create default settings")
		return nil, err
	}
	s.LogInfo(ctx, "Default settings created")
	return &created, nil
}

func (s *settingsService) UpdateSettings(ctx context.Context, req dto.UpdateSettingsRequest, userID string) (*domain.Settings, error) {
	settings, err := s.GetSettings(ctx, userID)
	if err != nil {
		return nil, err
	}

	settings.DefaultCompanyPercent = req.DefaultCompanyPercent
	settings.DefaultDriverPercent = req.DefaultDriverPercent
	settings.DefaultReservePercent = req.DefaultReservePercent
	settings.MonthlyGoal = req.MonthlyGoal
	settings.GoalDeadline = nil
	if req.GoalDeadline != nil {
		deadline := dto.ParseDateYMD(*req.GoalDeadline)
		settings.GoalDeadline = &deadline
	}
	settings.IssuerName = req.IssuerName
	settings.IssuerDoc = req.IssuerDoc
	settings.IssuerPhone = req.IssuerPhone
	settings.LastUpdatedAt = time.Now()
	settings.LastUpdatedBy = userID

	if err := s.settingsRepo.SaveSettings(ctx, *settings); err != nil {
		s.LogError(ctx, err, "Failed to update settings")
		return nil, err
	}

	s.LogInfo(ctx, "Settings updated successfully")
	return settings, nil
}
