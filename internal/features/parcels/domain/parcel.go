package domain

import (
	"errors"
	"strings"
	"time"
)

const (
	// DefaultCurrentLocation is where a newly tracked parcel is assumed to be.
	DefaultCurrentLocation = "Processing Center"
	// DefaultDestination is shown until the carrier confirms a destination.
	DefaultDestination = "Destination pending"
	// DefaultCarrier is shown until the carrier is verified.
	DefaultCarrier = "Pending carrier verification"
)

var (
	// ErrTrackingNumberRequired is returned when a tracking number is blank.
	ErrTrackingNumberRequired = errors.New("tracking number is required")
	// ErrUserRequired is returned when a parcel has no owner.
	ErrUserRequired = errors.New("user id is required")
)

// Parcel is a shipment row owned by the parcel store.
type Parcel struct {
	// ID is the opaque row identifier.
	ID string `json:"id"`
	// UserID identifies the user who tracks this parcel.
	UserID string `json:"user_id"`
	// TrackingNumber is the carrier-issued tracking code.
	TrackingNumber string `json:"tracking_number"`
	// Status is the current lifecycle label.
	Status Status `json:"status"`
	// CurrentLocation is a free-text description of where the parcel is now.
	CurrentLocation string `json:"current_location"`
	// Destination is where the parcel is headed. Empty means unknown.
	Destination string `json:"destination,omitempty"`
	// Carrier is the courier handling the parcel.
	Carrier string `json:"carrier,omitempty"`
	// ETA is the expected delivery time.
	ETA time.Time `json:"eta"`
	// AmountPaid is what the sender paid, in ZMW.
	AmountPaid float64 `json:"amount_paid"`
	// CreatedAt is when the parcel entered the system.
	CreatedAt time.Time `json:"created_at"`
	// UpdatedAt is the last status change, if any.
	UpdatedAt *time.Time `json:"updated_at,omitempty"`
}

// NewTrackedParcel builds the placeholder parcel recorded when a user tracks a
// number the store has never seen.
func NewTrackedParcel(userID, trackingNumber string, now time.Time, etaAfter time.Duration) (*Parcel, error) {
	userID = strings.TrimSpace(userID)
	trackingNumber = strings.TrimSpace(trackingNumber)

	if userID == "" {
		return nil, ErrUserRequired
	}
	if trackingNumber == "" {
		return nil, ErrTrackingNumberRequired
	}

	return &Parcel{
		UserID:          userID,
		TrackingNumber:  trackingNumber,
		Status:          StatusPending,
		CurrentLocation: DefaultCurrentLocation,
		Destination:     DefaultDestination,
		Carrier:         DefaultCarrier,
		ETA:             now.Add(etaAfter).UTC(),
		AmountPaid:      0,
		CreatedAt:       now.UTC(),
	}, nil
}
