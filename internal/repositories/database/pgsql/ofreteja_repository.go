package pgsql

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/apperrors"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/domain"
	portsrepo "github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/core/ports/repositories"
	"github.com/kieltransportes011-pixel/controlfretev1-sub001/internal/models"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxOFretejaRepository struct {
	db *pgxpool.Pool
}

func newPgxOFretejaRepository(db *pgxpool.Pool) portsrepo.OFretejaRepositoryFacade {
	return &PgxOFretejaRepository{db: db}
}

// Ensure PgxOFretejaRepository implements portsrepo.OFretejaRepositoryFacade
var _ portsrepo.OFretejaRepositoryFacade = (*PgxOFretejaRepository)(nil)

func toModelOFreteja(d domain.OFretejaFreight) (models.OFretejaFreight, error) {
	stops, err := json.Marshal(d.Stops)
	if err != nil {
		return models.OFretejaFreight{}, fmt.Errorf("failed to marshal request stops: %w", err)
	}
	return models.OFretejaFreight{
		RequestID:          d.RequestID,
		OwnerUserID:        d.OwnerUserID,
		ExternalRef:        d.ExternalRef,
		Status:             models.OFretejaStatus(d.Status),
		RequesterName:      d.RequesterName,
		RequesterPhone:     d.RequesterPhone,
		PickupDate:         d.PickupDate,
		ProposedValue:      d.ProposedValue,
		OriginAddress:      d.OriginAddress,
		DestinationAddress: d.DestinationAddress,
		StopsJSON:          stops,
		VehicleCategory:    d.VehicleCategory,
		CargoDescription:   d.CargoDescription,
		ImportedFreightID:  d.ImportedFreightID,
		AuditFields: models.AuditFields{
			CreatedAt:     d.CreatedAt,
			CreatedBy:     d.CreatedBy,
			LastUpdatedAt: d.LastUpdatedAt,
			LastUpdatedBy: d.LastUpdatedBy,
		},
	}, nil
}

func toDomainOFreteja(m models.OFretejaFreight) (domain.OFretejaFreight, error) {
	var stops []domain.OFretejaStop
	if len(m.StopsJSON) > 0 {
		if err := json.Unmarshal(m.StopsJSON, &stops); err != nil {
			return domain.OFretejaFreight{}, fmt.Errorf("failed to unmarshal request stops: %w", err)
		}
	}
	return domain.OFretejaFreight{
		RequestID:          m.RequestID,
		OwnerUserID:        m.OwnerUserID,
		ExternalRef:        m.ExternalRef,
		Status:             domain.OFretejaStatus(m.Status),
		RequesterName:      m.RequesterName,
		RequesterPhone:     m.RequesterPhone,
		PickupDate:         m.PickupDate,
		ProposedValue:      m.ProposedValue,
		OriginAddress:      m.OriginAddress,
		DestinationAddress: m.DestinationAddress,
		Stops:              stops,
		VehicleCategory:    m.VehicleCategory,
		CargoDescription:   m.CargoDescription,
		ImportedFreightID:  m.ImportedFreightID,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.CreatedBy,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.LastUpdatedBy,
		},
	}, nil
}

const ofretejaColumns = `
	request_id, owner_user_id, external_ref, status,
	requester_name, requester_phone, pickup_date, proposed_value,
	origin_address, destination_address, stops, vehicle_category, cargo_description,
	imported_freight_id,
	created_at, created_by, last_updated_at, last_updated_by`

func scanOFreteja(row pgx.Row) (models.OFretejaFreight, error) {
	var m models.OFretejaFreight
	var importedFreightID sql.NullString
	err := row.Scan(
		&m.RequestID,
		&m.OwnerUserID,
		&m.ExternalRef,
		&m.Status,
		&m.RequesterName,
		&m.RequesterPhone,
		&m.PickupDate,
		&m.ProposedValue,
		&m.OriginAddress,
		&m.DestinationAddress,
		&m.StopsJSON,
		&m.VehicleCategory,
		&m.CargoDescription,
		&importedFreightID,
		&m.CreatedAt,
		&m.CreatedBy,
		&m.LastUpdatedAt,
		&m.LastUpdatedBy,
	)
	if importedFreightID.Valid {
		m.ImportedFreightID = importedFreightID.String
	}
	return m, err
}

// nullableID maps an empty string to SQL NULL for optional FK columns.
func nullableID(id string) sql.NullString {
	return sql.NullString{String: id, Valid: id != ""}
}

func (r *PgxOFretejaRepository) SaveRequest(ctx context.Context, request domain.OFretejaFreight) error {
	m, err := toModelOFreteja(request)
	if err != nil {
		return err
	}
	query := `
        INSERT INTO ofreteja_requests (` + ofretejaColumns + `)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18);
    `
	_, err = r.db.Exec(ctx, query,
		m.RequestID, m.OwnerUserID, m.ExternalRef, m.Status,
		m.RequesterName, m.RequesterPhone, m.PickupDate, m.ProposedValue,
		m.OriginAddress, m.DestinationAddress, m.StopsJSON, m.VehicleCategory, m.CargoDescription,
		nullableID(m.ImportedFreightID),
		m.CreatedAt, m.CreatedBy, m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to save marketplace request: %w", err)
	}
	return nil
}

func (r *PgxOFretejaRepository) UpdateRequest(ctx context.Context, request domain.OFretejaFreight) error {
	m, err := toModelOFreteja(request)
	if err != nil {
		return err
	}
	query := `
        UPDATE ofreteja_requests SET
            status = $2,
            requester_name = $3,
            requester_phone = $4,
            pickup_date = $5,
            proposed_value = $6,
            origin_address = $7,
            destination_address = $8,
            stops = $9,
            vehicle_category = $10,
            cargo_description = $11,
            imported_freight_id = $12,
            last_updated_at = $13,
            last_updated_by = $14
        WHERE request_id = $1;
    `
	tag, err := r.db.Exec(ctx, query,
		m.RequestID, m.Status,
		m.RequesterName, m.RequesterPhone, m.PickupDate, m.ProposedValue,
		m.OriginAddress, m.DestinationAddress, m.StopsJSON, m.VehicleCategory, m.CargoDescription,
		nullableID(m.ImportedFreightID),
		m.LastUpdatedAt, m.LastUpdatedBy,
	)
	if err != nil {
		return fmt.Errorf("failed to update marketplace request %s: %w", request.RequestID, err)
	}
	if tag.RowsAffected() == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (r *PgxOFretejaRepository) FindRequestByID(ctx context.Context, requestID string) (*domain.OFretejaFreight, error) {
	query := `SELECT ` + ofretejaColumns + ` FROM ofreteja_requests WHERE request_id = $1;`
	m, err := scanOFreteja(r.db.QueryRow(ctx, query, requestID))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, fmt.Errorf("failed to find marketplace request by ID %s: %w", requestID, err)
	}
	d, err := toDomainOFreteja(m)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

func (r *PgxOFretejaRepository) ListRequests(ctx context.Context, ownerUserID string, limit int, offset int) ([]domain.OFretejaFreight, error) {
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
        SELECT ` + ofretejaColumns + `
        FROM ofreteja_requests
        WHERE owner_user_id = $1
        ORDER BY pickup_date DESC, created_at DESC
        LIMIT $2 OFFSET $3;
    `
	rows, err := r.db.Query(ctx, query, ownerUserID, limitArg, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to query marketplace requests: %w", err)
	}
	defer rows.Close()

	requests := []domain.OFretejaFreight{}
	for rows.Next() {
		m, err := scanOFreteja(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan marketplace request row: %w", err)
		}
		d, err := toDomainOFreteja(m)
		if err != nil {
			return nil, err
		}
		requests = append(requests, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating marketplace request rows: %w", err)
	}
	return requests, nil
}
