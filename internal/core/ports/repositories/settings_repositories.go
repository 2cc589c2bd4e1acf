package repositories

import (
	"context"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
)

// SettingsRepositoryFacade persists per-user configuration and the monthly
// goal snapshots used to reconstruct historical attainment.
type SettingsRepositoryFacade interface {
	// FindSettingsByOwner retrieves the owner's settings row.
	FindSettingsByOwner(ctx context.Context, ownerUserID string) (*domain.Settings, error)

	// SaveSettings inserts or fully replaces the owner's settings row.
	SaveSettings(ctx context.Context, settings domain.Settings) error

	// ListGoalHistory retrieves all goal snapshots for the owner, newest month first.
	ListGoalHistory(ctx context.Context, ownerUserID string) ([]domain.GoalHistoryEntry, error)

	// FindGoalHistoryByMonth retrieves the snapshot for one "YYYY-MM" month.
	FindGoalHistoryByMonth(ctx context.Context, ownerUserID string, month string) (*domain.GoalHistoryEntry, error)

	// SaveGoalHistoryEntry persists a goal snapshot for a closed month.
	SaveGoalHistoryEntry(ctx context.Context, entry domain.GoalHistoryEntry) error

	// DeleteGoalHistoryEntry removes one snapshot. Freight records are untouched.
	DeleteGoalHistoryEntry(ctx context.Context, entryID string) error
}
