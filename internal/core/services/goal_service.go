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
	"github.com/google/uuid"
)

// goalService implements the GoalSvcFacade interface.
type goalService struct {
	BaseService
	freightRepo  portsrepo.FreightRepositoryFacade
	settingsRepo portsrepo.SettingsRepositoryFacade
	now          func() time.Time
}

// GoalServiceOption is a functional option for configuring the goal service.
type GoalServiceOption func(*goalService)

// WithGoalClock overrides the clock, used by tests to pin the current month.
func WithGoalClock(now func() time.Time) GoalServiceOption {
	return func(s *goalService) {
		s.now = now
	}
}

// NewGoalService creates a new goal service.
func NewGoalService(freightRepo portsrepo.FreightRepositoryFacade, settingsRepo portsrepo.SettingsRepositoryFacade, options ...GoalServiceOption) portssvc.GoalSvcFacade {
	svc := &goalService{
		freightRepo:  freightRepo,
		settingsRepo: settingsRepo,
		now:          time.Now,
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

// Ensure goalService implements the GoalSvcFacade interface.
var _ portssvc.GoalSvcFacade = (*goalService)(nil)

func (s *goalService) GetGoalSummary(ctx context.Context, userID string) (domain.GoalProgress, []domain.GoalMonth, error) {
	now := s.now()

	settings, err := s.settingsRepo.FindSettingsByOwner(ctx, userID)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to load settings for goal summary")
		return domain.GoalProgress{}, nil, err
	}
	if settings == nil {
		settings = &domain.Settings{}
	}

	// One range read covers the current month plus the six history months.
	from := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, -6, 0)
	to := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, now.Location()).AddDate(0, 1, 0)
	freights, err := s.freightRepo.ListFreightsInRange(ctx, userID, from, to)
	if err != nil {
		s.LogError(ctx, err, "Failed to list freights for goal summary")
		return domain.GoalProgress{}, nil, err
	}

	snapshots, err := s.settingsRepo.ListGoalHistory(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goal history snapshots")
		return domain.GoalProgress{}, nil, err
	}

	progress := domain.BuildGoalProgress(freights, settings.MonthlyGoal, settings.GoalDeadline, now)
	history := domain.BuildGoalHistory(freights, snapshots, now)
	return progress, history, nil
}

func (s *goalService) SnapshotGoal(ctx context.Context, userID string, month string) (*domain.GoalHistoryEntry, error) {
	if _, err := time.Parse("2006-01", month); err != nil {
		return nil, fmt.Errorf("%w: month must be in YYYY-MM format", apperrors.ErrValidation)
	}

	settings, err := s.settingsRepo.FindSettingsByOwner(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to load settings for goal snapshot")
		return nil, err
	}

	// Snapshotting twice for the same month replaces the earlier value, so
	// re-running a month close stays harmless.
	if existing, err := s.settingsRepo.FindGoalHistoryByMonth(ctx, userID, month); err == nil {
		existing.Goal = settings.MonthlyGoal
		existing.LastUpdatedAt = s.now()
		existing.LastUpdatedBy = userID
		if err := s.settingsRepo.SaveGoalHistoryEntry(ctx, *existing); err != nil {
			s.LogError(ctx, err, "Failed to update goal snapshot",
				slog.String("month", month))
			return nil, err
		}
		return existing, nil
	} else if !errors.Is(err, apperrors.ErrNotFound) {
		s.LogError(ctx, err, "Failed to look up goal snapshot",
			slog.String("month", month))
		return nil, err
	}

	now := s.now()
	entry := domain.GoalHistoryEntry{
		EntryID:     uuid.NewString(),
		OwnerUserID: userID,
		Month:       month,
		Goal:        settings.MonthlyGoal,
		AuditFields: domain.AuditFields{
			CreatedAt:     now,
			CreatedBy:     userID,
			LastUpdatedAt: now,
			LastUpdatedBy: userID,
		},
	}
	if err := s.settingsRepo.SaveGoalHistoryEntry(ctx, entry); err != nil {
		s.LogError(ctx, err, "Failed to save goal snapshot",
			slog.String("month", month))
		return nil, err
	}

	s.LogInfo(ctx, "Goal snapshot saved",
		slog.String("month", month))
	return &entry, nil
}

func (s *goalService) DeleteGoalHistoryEntry(ctx context.Context, entryID string, userID string) error {
	snapshots, err := s.settingsRepo.ListGoalHistory(ctx, userID)
	if err != nil {
		s.LogError(ctx, err, "Failed to list goal history snapshots")
		return err
	}

	found := false
	for _, snap := range snapshots {
		if snap.EntryID == entryID {
			found = true
			break
		}
	}
	if !found {
		return apperrors.ErrNotFound
	}

	if err := s.settingsRepo.DeleteGoalHistoryEntry(ctx, entryID); err != nil {
		s.LogError(ctx, err, "Failed to delete goal snapshot",
			slog.String("entry_id", entryID))
		return err
	}

	s.LogInfo(ctx, "Goal snapshot deleted",
		slog.String("entry_id", entryID))
	return nil
}
