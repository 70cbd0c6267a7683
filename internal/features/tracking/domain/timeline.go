package domain

import (
	"time"

	parcel "parcel-tracker/internal/features/parcels/domain"
)

// TimelineEntry is a tracking update decorated with display hints.
type TimelineEntry struct {
	TrackingUpdate
	parcel.Presentation
}

// Timeline is the response rendered by the parcel detail view.
type Timeline struct {
	// ParcelID is the parcel this timeline belongs to. Empty for previews.
	ParcelID string `json:"parcel_id,omitempty"`
	// TrackingNumber is the carrier-issued tracking code.
	TrackingNumber string `json:"tracking_number,omitempty"`
	// Status is the parcel's current status.
	Status parcel.Status `json:"status"`
	// Events are ordered newest first.
	Events []TimelineEntry `json:"events"`
}

// BuildTimeline synthesizes p's history and attaches presentation hints.
func BuildTimeline(p parcel.Parcel, now time.Time) Timeline {
	updates := Synthesize(p, now)

	events := make([]TimelineEntry, 0, len(updates))
	for _, u := range updates {
		events = append(events, TimelineEntry{
			TrackingUpdate: u,
			Presentation:   u.Status.Present(),
		})
	}

	return Timeline{
		ParcelID:       p.ID,
		TrackingNumber: p.TrackingNumber,
		Status:         p.Status,
		Events:         events,
	}
}
