package domain

import (
	"slices"
	"time"

	parcel "parcel-tracker/internal/features/parcels/domain"
)

// Stage offsets from the parcel's created_at.
const (
	processingAfter     = 2 * time.Hour
	inTransitAfter      = 6 * time.Hour
	outForDeliveryAfter = 4 * time.Hour
	readyForPickupAfter = 2 * time.Hour
	onHoldAfter         = 1 * time.Hour
	delayedAfter        = 3 * time.Hour
)

// Placeholder locations used when the parcel has no destination.
const (
	locationSystem       = "System"
	locationSorting      = "Sorting Facility"
	locationDeliveryArea = "Delivery Area"
	locationPickup       = "Pickup Location"
	locationDestination  = "Destination"
)

// TrackingUpdate is one synthesized event in a parcel's timeline.
type TrackingUpdate struct {
	// Location is where the event notionally happened.
	Location string `json:"location"`
	// Status is the lifecycle label reached at this event.
	Status parcel.Status `json:"status"`
	// Timestamp is when the event notionally happened.
	Timestamp time.Time `json:"timestamp"`
	// Note is a human readable description of the event.
	Note string `json:"note,omitempty"`
}

// Synthesize derives the tracking history leading up to p's current status,
// newest first. now is only read for parcels in the Exception status.
// Every timestamp is returned in UTC.
//
// The base Pending and Processing events are always present. Unknown statuses
// produce only those two.
func Synthesize(p parcel.Parcel, now time.Time) []TrackingUpdate {
	registered := p.CreatedAt.UTC()
	processing := registered.Add(processingAfter)
	inTransit := processing.Add(inTransitAfter)
	outForDelivery := inTransit.Add(outForDeliveryAfter)

	updates := []TrackingUpdate{
		{
			Location:  locationSystem,
			Status:    parcel.StatusPending,
			Timestamp: registered,
			Note:      "Parcel registered in the system",
		},
		{
			Location:  locationSorting,
			Status:    parcel.StatusProcessing,
			Timestamp: processing,
			Note:      "Parcel information verified and processing started",
		},
	}

	if leftFacility(p.Status) {
		updates = append(updates, TrackingUpdate{
			Location:  p.CurrentLocation,
			Status:    parcel.StatusInTransit,
			Timestamp: inTransit,
			Note:      "Parcel dispatched from facility",
		})
	}

	switch p.Status {
	case parcel.StatusOutForDelivery:
		updates = append(updates, outForDeliveryUpdate(p, outForDelivery))

	case parcel.StatusDelivered:
		delivered := p.ETA
		if p.UpdatedAt != nil {
			delivered = *p.UpdatedAt
		}
		updates = append(updates,
			outForDeliveryUpdate(p, outForDelivery),
			TrackingUpdate{
				Location:  destinationOr(p, locationDestination),
				Status:    parcel.StatusDelivered,
				Timestamp: delivered.UTC(),
				Note:      "Parcel successfully delivered",
			},
		)

	case parcel.StatusReadyForPickup:
		updates = append(updates, TrackingUpdate{
			Location:  destinationOr(p, locationPickup),
			Status:    parcel.StatusReadyForPickup,
			Timestamp: outForDelivery.Add(readyForPickupAfter),
			Note:      "Parcel is ready to be picked up",
		})

	case parcel.StatusOnHold:
		updates = append(updates, TrackingUpdate{
			Location:  p.CurrentLocation,
			Status:    parcel.StatusOnHold,
			Timestamp: outForDelivery.Add(onHoldAfter),
			Note:      "Delivery is temporarily paused",
		})

	case parcel.StatusDelayed:
		updates = append(updates, TrackingUpdate{
			Location:  p.CurrentLocation,
			Status:    parcel.StatusDelayed,
			Timestamp: outForDelivery.Add(delayedAfter),
			Note:      "Unexpected delay in delivery",
		})

	case parcel.StatusException:
		updates = append(updates, TrackingUpdate{
			Location:  p.CurrentLocation,
			Status:    parcel.StatusException,
			Timestamp: now.UTC(),
			Note:      "An unexpected issue occurred during transit",
		})
	}

	slices.SortStableFunc(updates, func(a, b TrackingUpdate) int {
		return b.Timestamp.Compare(a.Timestamp)
	})

	return updates
}

// leftFacility reports whether a parcel in status s has been dispatched.
func leftFacility(s parcel.Status) bool {
	switch s {
	case parcel.StatusInTransit,
		parcel.StatusOutForDelivery,
		parcel.StatusDelivered,
		parcel.StatusException,
		parcel.StatusReadyForPickup,
		parcel.StatusOnHold,
		parcel.StatusDelayed:
		return true
	}
	return false
}

func outForDeliveryUpdate(p parcel.Parcel, at time.Time) TrackingUpdate {
	return TrackingUpdate{
		Location:  destinationOr(p, locationDeliveryArea),
		Status:    parcel.StatusOutForDelivery,
		Timestamp: at,
		Note:      "Parcel is with the delivery agent",
	}
}

func destinationOr(p parcel.Parcel, fallback string) string {
	if p.Destination == "" {
		return fallback
	}
	return p.Destination
}
