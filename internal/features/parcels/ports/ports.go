package ports

import (
	"context"
	"errors"

	"parcel-tracker/internal/features/parcels/domain"
)

// ErrNotFound is returned by repositories when no row matches.
var ErrNotFound = errors.New("parcel not found")

// ParcelRepository is the secondary port for parcel storage.
type ParcelRepository interface {
	// GetByID returns the parcel with the given id or ErrNotFound.
	GetByID(ctx context.Context, id string) (*domain.Parcel, error)
	// GetByTrackingNumber returns the first parcel with the tracking number or ErrNotFound.
	GetByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Parcel, error)
	// ListByUser returns a user's parcels, newest first.
	ListByUser(ctx context.Context, userID string, limit int) ([]domain.Parcel, error)
	// ListByStatus returns all of a user's parcels whose status is in statuses,
	// newest first. An empty statuses list matches every parcel.
	ListByStatus(ctx context.Context, userID string, statuses []domain.Status) ([]domain.Parcel, error)
	// Create inserts the parcel, filling in its ID.
	Create(ctx context.Context, parcel *domain.Parcel) error
	// UpdateStatus changes the status and current location, returning the updated row.
	UpdateStatus(ctx context.Context, id string, status domain.Status, currentLocation string) (*domain.Parcel, error)
}

// ActivityLogger records user actions for auditing.
type ActivityLogger interface {
	Log(ctx context.Context, userID, action string, metadata map[string]any) error
}

// ParcelService is the primary port used by the HTTP layer.
type ParcelService interface {
	GetParcel(ctx context.Context, userID, id string) (*domain.Parcel, error)
	TrackByNumber(ctx context.Context, userID, trackingNumber string) (*domain.Parcel, bool, error)
	ListRecent(ctx context.Context, userID string, limit int) ([]domain.Parcel, error)
	ListByStatus(ctx context.Context, userID string, statuses []string) ([]domain.Parcel, error)
	UpdateStatus(ctx context.Context, userID, id, status, currentLocation string) (*domain.Parcel, error)
}
