package ports

import (
	"context"

	parcel "parcel-tracker/internal/features/parcels/domain"
)

// ParcelSource supplies the parcels whose timelines are synthesized.
// It is satisfied by the parcels service.
type ParcelSource interface {
	// GetParcel retrieves a parcel by id on behalf of userID.
	GetParcel(ctx context.Context, userID, id string) (*parcel.Parcel, error)
	// TrackByNumber finds or registers the parcel with the given tracking number.
	TrackByNumber(ctx context.Context, userID, trackingNumber string) (*parcel.Parcel, bool, error)
}
