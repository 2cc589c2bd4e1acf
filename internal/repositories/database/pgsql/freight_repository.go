package pgsql

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/apperrors"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	portsrepo "github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/ports/repositories"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

// defaultListLimit is the page size applied when a caller passes limit 0.
const defaultListLimit = 100

type PgxFreightRepository struct {
	db *pgxpool.Pool
}

func newPgxFreightRepository(db *pgxpool.Pool) portsrepo.FreightRepositoryFacade {
	return &PgxFreightRepository{db: db}
}

// Ensure PgxFreightRepository implements portsrepo.FreightRepositoryFacade
var _ portsrepo.FreightRepositoryFacade = (*PgxFreightRepository)(nil)

// Helper to convert domain.Freight to models.Freight
func toModelFreight(d domain.Freight) models.Freight {
	return models.Freight{
		FreightID:      d.FreightID,
		OwnerUserID:    d.OwnerUserID,
		FreightDate:    d.FreightDate,
		TotalValue:     d.TotalValue,
		CompanyPercent: d.CompanyPercent,
		DriverPercent:  d.DriverPercent,
		ReservePercent: d.ReservePercent,
		CompanyValue:   d.CompanyValue,
		DriverValue:    d.DriverValue,
		ReserveValue:   d.ReserveValue,
		Status:         models.FreightStatus(d.Status),
		ReceivedValue:  d.ReceivedValue,
		PendingValue:   d.PendingValue,
		DueDate:        d.DueDate,
		ClientName:     d.ClientName,
		ClientDoc:      d.ClientDoc,
		Origin:         d.Origin,
		Destination:    d.Destination,
		Description:    d.Description,
		PaymentMethod:  d.PaymentMethod,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}
}

// Helper to convert models.Freight to domain.Freight
func toDomainFreight(m models.Freight) domain.Freight {
	return domain.Freight{
		FreightID:      m.FreightID,
		OwnerUserID:    m.OwnerUserID,
		FreightDate:    m.FreightDate,
		TotalValue:     m.TotalValue,
		CompanyPercent: m.CompanyPercent,
		DriverPercent:  m.DriverPercent,
		ReservePercent: m.ReservePercent,
		CompanyValue:   m.CompanyValue,
		DriverValue:    m.DriverValue,
		ReserveValue:   m.ReserveValue,
		Status:         domain.FreightStatus(m.Status),
		ReceivedValue:  m.ReceivedValue,
		PendingValue:   m.PendingValue,
		DueDate:        m.DueDate,
		ClientName:     m.ClientName,
		ClientDoc:      m.ClientDoc,
		Origin:         m.Origin,
		Destination:    m.Destination,
		Description:    m.Description,
		PaymentMethod:  m.PaymentMethod,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}
}

const freightColumns = `
	freight_id, owner_user_id, freight_date,
	total_value, company_percent, driver_percent, reserve_percent,
	company_value, driver_value, reserve_value,
	status, received_value, pending_value, due_date,
	client_name, client_doc, origin, destination, description, payment_method,
	created_at, created_by, last_updated_at, last_updated_by`

func scanFreight(row pgx.Row) (models.Freight, error) {
	var m models.Freight
	err := row.Scan(
		&m.FreightID,
		&m.OwnerUserID,
		&m.FreightDate,
		&m.TotalValue,
		&m.CompanyPercent,
		&m.DriverPercent,
		&m.ReservePercent,
		&m.CompanyValue,
		&m.DriverValue,
		&m.ReserveValue,
		&m.Status,
		&m.ReceivedValue,
		&m.PendingValue,
		&m.DueDate,
		&m.ClientName,
		&m.ClientDoc,
		&m.Origin,
		&m.Destination,
		&m.Description,
		&m.PaymentMethod,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	return m, err
}

func (r *PgxFreightRepository) SaveFreight(ctx context.Context, freight domain.Freight) error {
	m := toModelFreight(freight)
	query := `
        INSERT INTO freights (` + freightColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19, $20, $21, $22, $23, $24);
    `
	_, err := r.db.Exec(ctx, query,
		m.FreightID, m.OwnerUserID, m.FreightDate,
		m.TotalValue, m.CompanyPercent, m.DriverPercent, m.ReservePercent,
		m.CompanyValue, m.DriverValue, m.ReserveValue,
		m.Status, m.ReceivedValue, m.PendingValue, m.DueDate,
		m.ClientName, m.ClientDoc, m.Origin, m.Destination, m.Description, m.PaymentMethod,
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save freight: %w", err)
	}
	return nil
}

func (r *PgxFreightRepository) UpdateFreight(ctx context.Context, freight domain.Freight) error {
	m := toModelFreight(freight)
	query := `
        UPDATE freights SET
            freight_date = $2,
            total_value = $3,
            company_percent = $4,
            driver_percent = $5,
            reserve_percent = $6,
            company_value = $7,
            driver_value = $8,
            reserve_value = $9,
            status = $10,
            received_value = $11,
            pending_value = $12,
            due_date = $13,
            client_name = $14,
            client_doc = $15,
            origin = $16,
            destination = $17,
            description = $18,
            payment_method = $19,
            last_updated_at = $20,
            last_updated_by = $21
        WHERE freight_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		m.FreightID, m.FreightDate,
		m.TotalValue, m.CompanyPercent, m.DriverPercent, m.ReservePercent,
		m.CompanyValue, m.DriverValue, m.ReserveValue,
		m.Status, m.ReceivedValue, m.PendingValue, m.DueDate,
		m.ClientName, m.ClientDoc, m.Origin, m.Destination, m.Description, m.PaymentMethod,
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update freight %s: %w", freight.FreightID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxFreightRepository) FindFreightByID(ctx context.Context, freightID string) (*domain.Freight, error) {
	query := `SELECT ` + freightColumns + ` FROM freights WHERE freight_id = $1;`
	m, err := scanFreight(r.db.QueryRow(ctx, query, freightID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find freight by ID %s: %w", freightID, err)
	}
	d := toDomainFreight(m)
	return &d, nil
}

func (r *PgxFreightRepository) ListFreights(ctx context.Context, ownerUserID string, limit int, offset int) ([]domain.Freight, error) {
	// Zero limit applies the default page size; a negative limit removes
	// the cap entirely (LIMIT NULL), used by the merged feed.
	var limitArg any = limit
	if limit == 0 {
		limitArg = defaultListLimit
	} else if limit < 0 {
		limitArg = nil
	}
	if offset < 0 {
		offset = 0
	}
	query := `
        SELECT ` + freightColumns + `
        FROM freights
        WHERE owner_user_id = $1
        ORDER BY freight_date DESC, created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, ownerUserID, limitArg, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query freights: %w", err)
	}
	defer rows.Close()
	return collectFreights(rows)
}

func (r *PgxFreightRepository) ListFreightsByMonth(ctx context.Context, ownerUserID string, year int, month time.Month) ([]domain.Freight, error) {
	from := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	return r.ListFreightsInRange(ctx, ownerUserID, from, from.AddDate(0, 1, 0))
}

func (r *PgxFreightRepository) ListFreightsInRange(ctx context.Context, ownerUserID string, from, to time.Time) ([]domain.Freight, error) {
	query := `
        SELECT ` + freightColumns + `
        FROM freights
        WHERE owner_user_id = $1 AND freight_date >= $2 AND freight_date < $3
        ORDER BY freight_date DESC, created_at DESC;
    `
	rows, err := r.db.Query(ctx, query, ownerUserID, from, to)
	if err != nil {
		return nil, fmt.Errorf("failed to query freights in range: %w", err)
	}
	defer rows.Close()
	return collectFreights(rows)
}

func (r *PgxFreightRepository) DeleteFreight(ctx context.Context, freightID string) error {
	tag, err := r.db.Exec(ctx, `DELETE FROM freights WHERE freight_id = $1;`, freightID)
	if err != nil {
		return fmt.Errorf("failed to delete freight %s: %w", freightID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func collectFreights(rows pgx.Rows) ([]domain.Freight, error) {
	freights := []domain.Freight{}
	for rows.Next() {
		m, err := scanFreight(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan freight row: %w", err)
		}
		freights = append(freights, toDomainFreight(m))
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating freight rows: %w", err)
	}
	return freights, nil
}
