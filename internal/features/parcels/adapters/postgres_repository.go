package adapters

import (
	"context"
	"errors"
	"fmt"
	"time"

	"parcel-tracker/internal/core/metrics"
	"parcel-tracker/internal/features/parcels/domain"
	"parcel-tracker/internal/features/parcels/ports"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

const parcelColumns = `id, user_id, tracking_number, status, current_location,
	destination, carrier, eta, amount_paid, created_at, updated_at`

// queryTimeout bounds every statement issued by the repository.
const queryTimeout = 5 * time.Second

// PostgresRepository implements ports.ParcelRepository on the parcels table.
type PostgresRepository struct {
	pool *pgxpool.Pool
}

// NewPostgresRepository creates a repository on an open pool.
func NewPostgresRepository(pool *pgxpool.Pool) *PostgresRepository {
	return &PostgresRepository{pool: pool}
}

// GetByID returns the parcel with the given id.
func (r *PostgresRepository) GetByID(ctx context.Context, id string) (*domain.Parcel, error) {
	defer observe("get_by_id", time.Now())

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `SELECT ` + parcelColumns + ` FROM parcels WHERE id = $1`

	parcel, err := scanParcel(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get parcel %s: %w", id, err)
	}
	return parcel, nil
}

// GetByTrackingNumber returns the oldest parcel registered under the tracking number.
func (r *PostgresRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Parcel, error) {
	defer observe("get_by_tracking_number", time.Now())

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `SELECT ` + parcelColumns + ` FROM parcels
		WHERE tracking_number = $1
		ORDER BY created_at ASC
		LIMIT 1`

	parcel, err := scanParcel(r.pool.QueryRow(ctx, query, trackingNumber))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("failed to get parcel by tracking number %s: %w", trackingNumber, err)
	}
	return parcel, nil
}

// ListByUser returns a user's parcels, newest first.
func (r *PostgresRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Parcel, error) {
	defer observe("list_by_user", time.Now())

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `SELECT ` + parcelColumns + ` FROM parcels
		WHERE user_id = $1
		ORDER BY created_at DESC
		LIMIT $2`

	rows, err := r.pool.Query(ctx, query, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("failed to list parcels: %w", err)
	}

	return collectParcels(rows)
}

// ListByStatus returns every parcel of a user whose status is in statuses,
// newest first. An empty statuses list matches all parcels.
func (r *PostgresRepository) ListByStatus(ctx context.Context, userID string, statuses []domain.Status) ([]domain.Parcel, error) {
	defer observe("list_by_status", time.Now())

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	filter := make([]string, 0, len(statuses))
	for _, s := range statuses {
		filter = append(filter, s.Spellings()...)
	}

	query := `SELECT ` + parcelColumns + ` FROM parcels
		WHERE user_id = $1
		  AND (cardinality($2::text[]) = 0 OR status = ANY($2::text[]))
		ORDER BY created_at DESC`

	rows, err := r.pool.Query(ctx, query, userID, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list parcels by status: %w", err)
	}

	return collectParcels(rows)
}

func collectParcels(rows pgx.Rows) ([]domain.Parcel, error) {
	defer rows.Close()

	parcels := []domain.Parcel{}
	for rows.Next() {
		parcel, err := scanParcel(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan parcel: %w", err)
		}
		parcels = append(parcels, *parcel)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate parcels: %w", err)
	}

	return parcels, nil
}

// Create inserts the parcel. An empty ID is replaced with a UUIDv7.
func (r *PostgresRepository) Create(ctx context.Context, parcel *domain.Parcel) error {
	defer observe("create", time.Now())

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	if parcel.ID == "" {
		id, err := uuid.NewV7()
		if err != nil {
			return fmt.Errorf("failed to generate parcel id: %w", err)
		}
		parcel.ID = id.String()
	}
	if parcel.CreatedAt.IsZero() {
		parcel.CreatedAt = time.Now().UTC()
	}

	query := `
		INSERT INTO parcels (` + parcelColumns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	`

	_, err := r.pool.Exec(ctx, query,
		parcel.ID,
		parcel.UserID,
		parcel.TrackingNumber,
		string(parcel.Status),
		parcel.CurrentLocation,
		nullable(parcel.Destination),
		nullable(parcel.Carrier),
		parcel.ETA,
		parcel.AmountPaid,
		parcel.CreatedAt,
		parcel.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create parcel: %w", err)
	}

	return nil
}

// UpdateStatus sets the status and current location and stamps updated_at.
func (r *PostgresRepository) UpdateStatus(ctx context.Context, id string, status domain.Status, currentLocation string) (*domain.Parcel, error) {
	defer observe("update_status", time.Now())

	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	query := `
		UPDATE parcels
		SET status = $2,
			current_location = COALESCE(NULLIF($3, ''), current_location),
			updated_at = NOW()
		WHERE id = $1
		RETURNING ` + parcelColumns

	parcel, err := scanParcel(r.pool.QueryRow(ctx, query, id, string(status), currentLocation))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, ports.ErrNotFound
		}
		return nil, fmt.Errorf("failed to update parcel %s: %w", id, err)
	}
	return parcel, nil
}

// Ping checks the database is reachable.
func (r *PostgresRepository) Ping(ctx context.Context) error {
	return r.pool.Ping(ctx)
}

func scanParcel(row pgx.Row) (*domain.Parcel, error) {
	var (
		p           domain.Parcel
		status      string
		destination *string
		carrier     *string
		updatedAt   *time.Time
	)

	err := row.Scan(
		&p.ID,
		&p.UserID,
		&p.TrackingNumber,
		&status,
		&p.CurrentLocation,
		&destination,
		&carrier,
		&p.ETA,
		&p.AmountPaid,
		&p.CreatedAt,
		&updatedAt,
	)
	if err != nil {
		return nil, err
	}

	p.Status = normalizeStatus(status)
	if destination != nil {
		p.Destination = *destination
	}
	if carrier != nil {
		p.Carrier = *carrier
	}
	p.UpdatedAt = updatedAt

	return &p, nil
}

// normalizeStatus folds legacy spellings into the canonical status; unknown
// values are kept verbatim so the row still renders.
func normalizeStatus(raw string) domain.Status {
	if s, err := domain.ParseStatus(raw); err == nil {
		return s
	}
	return domain.Status(raw)
}

func nullable(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

func observe(operation string, start time.Time) {
	metrics.StoreDuration.WithLabelValues(operation).Observe(time.Since(start).Seconds())
}
