package service

import (
	"context"
	"fmt"
	"time"

	"parcel-tracker/internal/core/metrics"
	parcel "parcel-tracker/internal/features/parcels/domain"
	"parcel-tracker/internal/features/tracking/domain"
	"parcel-tracker/internal/features/tracking/ports"
)

// TrackingService builds tracking timelines for stored or caller-supplied parcels.
type TrackingService struct {
	parcels ports.ParcelSource
	now     func() time.Time
}

// NewTrackingService creates a new TrackingService reading parcels from source.
func NewTrackingService(source ports.ParcelSource) *TrackingService {
	return &TrackingService{
		parcels: source,
		now:     time.Now,
	}
}

// Timeline returns the synthesized history of a stored parcel.
func (s *TrackingService) Timeline(ctx context.Context, userID, parcelID string) (*domain.Timeline, error) {
	p, err := s.parcels.GetParcel(ctx, userID, parcelID)
	if err != nil {
		return nil, fmt.Errorf("failed to get parcel for timeline: %w", err)
	}

	return s.build(*p), nil
}

// TrackByNumber finds or registers the parcel and returns its timeline.
func (s *TrackingService) TrackByNumber(ctx context.Context, userID, trackingNumber string) (*domain.Timeline, bool, error) {
	p, created, err := s.parcels.TrackByNumber(ctx, userID, trackingNumber)
	if err != nil {
		return nil, false, fmt.Errorf("failed to track parcel: %w", err)
	}

	return s.build(*p), created, nil
}

// Preview synthesizes the timeline of a parcel that is not stored.
func (s *TrackingService) Preview(p parcel.Parcel) *domain.Timeline {
	return s.build(p)
}

func (s *TrackingService) build(p parcel.Parcel) *domain.Timeline {
	timeline := domain.BuildTimeline(p, s.now())

	label := string(p.Status)
	if !p.Status.Valid() {
		label = "unknown"
	}
	metrics.TimelinesGenerated.WithLabelValues(label).Inc()
	metrics.TimelineEvents.Observe(float64(len(timeline.Events)))

	return &timeline
}
