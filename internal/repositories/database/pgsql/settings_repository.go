package pgsql

import (
	"context"
	"errors"
	"fmt"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/apperrors"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	portsrepo "github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/ports/repositories"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxSettingsRepository struct {
	db *pgxpool.Pool
}

func newPgxSettingsRepository(db *pgxpool.Pool) portsrepo.SettingsRepositoryFacade {
	return &PgxSettingsRepository{db: db}
}

// Ensure PgxSettingsRepository implements portsrepo.SettingsRepositoryFacade
var _ portsrepo.SettingsRepositoryFacade = (*PgxSettingsRepository)(nil)

func toModelSettings(d domain.Settings) models.Settings {
	return models.Settings{
		SettingsID:            d.SettingsID,
		OwnerUserID:           d.OwnerUserID,
		DefaultCompanyPercent: d.DefaultCompanyPercent,
		DefaultDriverPercent:  d.DefaultDriverPercent,
		DefaultReservePercent: d.DefaultReservePercent,
		MonthlyGoal:           d.MonthlyGoal,
		GoalDeadline:          d.GoalDeadline,
		IssuerName:            d.IssuerName,
		IssuerDoc:             d.IssuerDoc,
		IssuerPhone:           d.IssuerPhone,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

func toDomainSettings(m models.Settings) domain.Settings {
	return domain.Settings{
		SettingsID:            m.SettingsID,
		OwnerUserID:           m.OwnerUserID,
		DefaultCompanyPercent: m.DefaultCompanyPercent,
		DefaultDriverPercent:  m.DefaultDriverPercent,
		DefaultReservePercent: m.DefaultReservePercent,
		MonthlyGoal:           m.MonthlyGoal,
		GoalDeadline:          m.GoalDeadline,
		IssuerName:            m.IssuerName,
		IssuerDoc:             m.IssuerDoc,
		IssuerPhone:           m.IssuerPhone,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

func (r *PgxSettingsRepository) FindSettingsByOwner(ctx context.Context, ownerUserID string) (*domain.Settings, error) {
	query := `
		SELECT settings_id, owner_user_id,
		       default_company_percent, default_driver_percent, default_reserve_percent,
		       monthly_goal, goal_deadline,
		       issuer_name, issuer_doc, issuer_phone,
		       created_at, created_by, last_updated_at, last_updated_by
		FROM settings
		WHERE owner_user_id = $1;
	`
	var m models.Settings
	err := r.db.QueryRow(ctx, query, ownerUserID).Scan(
		&m.SettingsID,
		&m.OwnerUserID,
		&m.DefaultCompanyPercent,
		&m.DefaultDriverPercent,
		&m.DefaultReservePercent,
		&m.MonthlyGoal,
		&m.GoalDeadline,
		&m.IssuerName,
		&m.IssuerDoc,
		&m.IssuerPhone,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find settings for owner %s: %w", ownerUserID, err)
	}
	d := toDomainSettings(m)
	return &d, nil
}

func (r *PgxSettingsRepository) SaveSettings(ctx context.Context, settings domain.Settings) error {
	m := toModelSettings(settings)
	query := `
        INSERT INTO settings (
            settings_id, owner_user_id,
            default_company_percent, default_driver_percent, default_reserve_percent,
            monthly_goal, goal_deadline,
            issuer_name, issuer_doc, issuer_phone,
            created_at, created_by, last_updated_at, last_updated_by
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14)
        ON CONFLICT (owner_user_id) DO UPDATE SET
            default_company_percent = EXCLUDED.default_company_percent,
            default_driver_percent = EXCLUDED.default_driver_percent,
            default_reserve_percent = EXCLUDED.default_reserve_percent,
            monthly_goal = EXCLUDED.monthly_goal,
            goal_deadline = EXCLUDED.goal_deadline,
            issuer_name = EXCLUDED.issuer_name,
            issuer_doc = EXCLUDED.issuer_doc,
            issuer_phone = EXCLUDED.issuer_phone,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.db.Exec(ctx, query,
		m.SettingsID, m.OwnerUserID,
		m.DefaultCompanyPercent, m.DefaultDriverPercent, m.DefaultReservePercent,
		m.MonthlyGoal, m.GoalDeadline,
		m.IssuerName, m.IssuerDoc, m.IssuerPhone,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	return nil
}

func (r *PgxSettingsRepository) ListGoalHistory(ctx context.Context, ownerUserID string) ([]domain.GoalHistoryEntry, error) {
	query := `
        SELECT entry_id, owner_user_id, month, goal,
               created_at, created_by, last_updated_at, last_updated_by
        FROM goal_history
        WHERE owner_user_id = $1
        ORDER BY month DESC;
    `
	rows, err := r.db.Query(ctx, query, ownerUserID)
	if err != nil {
		return nil, fmt.Errorf("failed to query goal history: %w", err)
	}
	defer rows.Close()

	entries := []domain.GoalHistoryEntry{}
	for rows.Next() {
		var m models.GoalHistoryEntry
		if err := rows.Scan(
			&m.EntryID, &m.OwnerUserID, &m.Month, &m.Goal,
			&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
		); err != nil {
			return nil, fmt.Errorf("failed to scan goal history row: %w", err)
		}
		entries = append(entries, toDomainGoalHistoryEntry(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating goal history rows: %w", err)
	}
	return entries, nil
}

func (r *PgxSettingsRepository) FindGoalHistoryByMonth(ctx context.Context, ownerUserID string, month string) (*domain.GoalHistoryEntry, error) {
	query := `
        SELECT entry_id, owner_user_id, month, goal,
               created_at, created_by, last_updated_at, last_updated_by
        FROM goal_history
        WHERE owner_user_id = $1 AND month = $2;
    `
	var m models.GoalHistoryEntry
	err := r.db.QueryRow(ctx, query, ownerUserID, month).Scan(
		&m.EntryID, &m.OwnerUserID, &m.Month, &m.Goal,
		&m.CreatedAt, &m.CreatedBy, &m.LastUpdatedAt, &m.LastUpdatedBy,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find goal history for month %s: %w", month, err)
	}
	d := toDomainGoalHistoryEntry(m)
	return &d, nil
}

func (r *PgxSettingsRepository) SaveGoalHistoryEntry(ctx context.Context, entry domain.GoalHistoryEntry) error {
	query := `
        INSERT INTO goal_history (
            entry_id, owner_user_id, month, goal,
            created_at, created_by, last_updated_at, last_updated_by
        )
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
        ON CONFLICT (owner_user_id, month) DO UPDATE SET
            goal = EXCLUDED.goal,
            last_updated_at = EXCLUDED.last_updated_at,
            last_updated_by = EXCLUDED.last_updated_by;
    `
	_, err := r.db.Exec(ctx, query,
		entry.EntryID, entry.OwnerUserID, entry.Month, entry.Goal,
		entry.CreatedAt, entry.CreatedBy, entry.LastUpdatedAt, entry.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save goal history entry: %w", err)
	}
	return nil
}

func (r *PgxSettingsRepository) DeleteGoalHistoryEntry(ctx context.Context, entryID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM goal_history WHERE entry_id = $1;`, entryID)
	if err != nil {
		return fmt.Errorf("failed to delete goal history entry %s: %w", entryID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func toDomainGoalHistoryEntry(m models.GoalHistoryEntry) domain.GoalHistoryEntry {
	return domain.GoalHistoryEntry{
		EntryID:     m.EntryID,
		OwnerUserID: m.OwnerUserID,
		Month:       m.Month,
		Goal:        m.Goal,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}
