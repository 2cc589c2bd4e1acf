package services

import (
	"context"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
)

// GoalSvcFacade computes goal progress and manages goal snapshots.
type GoalSvcFacade interface {
	// GetGoalSummary returns the current month's progress against the live
	// goal plus the reconstructed six-month history.
	GetGoalSummary(ctx context.Context, userID string) (domain.GoalProgress, []domain.GoalMonth, error)

	// SnapshotGoal records the live monthly goal against a "YYYY-MM" month,
	// so later history reads stay correct when the live goal changes.
	SnapshotGoal(ctx context.Context, userID string, month string) (*domain.GoalHistoryEntry, error)

	// DeleteGoalHistoryEntry removes one snapshot. The underlying freight
	// records are untouched, so achievement stays re-derivable.
	DeleteGoalHistoryEntry(ctx context.Context, entryID string, userID string) error
}
