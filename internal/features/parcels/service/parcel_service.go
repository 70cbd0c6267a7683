package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"parcel-tracker/internal/core/metrics"
	"parcel-tracker/internal/features/parcels/domain"
	"parcel-tracker/internal/features/parcels/ports"

	"go.uber.org/zap"
)

const (
	// DefaultRecentLimit is how many parcels ListRecent returns when no limit is given.
	DefaultRecentLimit = 5
	// MaxRecentLimit caps the limit accepted by ListRecent.
	MaxRecentLimit = 50
)

var (
	// ErrParcelNotFound is returned when the parcel does not exist.
	ErrParcelNotFound = errors.New("parcel not found")
	// ErrParcelIDRequired is returned when a lookup has no parcel id.
	ErrParcelIDRequired = errors.New("parcel id is required")
)

// ParcelService handles parcel lookups, tracking requests and status changes.
type ParcelService struct {
	repo     ports.ParcelRepository
	activity ports.ActivityLogger
	etaAfter time.Duration
	logger   *zap.Logger
	now      func() time.Time
}

// NewParcelService creates a ParcelService. etaAfter is the ETA offset given to
// parcels created by tracking an unknown number.
func NewParcelService(repo ports.ParcelRepository, activity ports.ActivityLogger, etaAfter time.Duration, logger *zap.Logger) *ParcelService {
	return &ParcelService{
		repo:     repo,
		activity: activity,
		etaAfter: etaAfter,
		logger:   logger,
		now:      time.Now,
	}
}

// GetParcel returns a parcel by id. When userID is set the view is recorded.
func (s *ParcelService) GetParcel(ctx context.Context, userID, id string) (*domain.Parcel, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrParcelIDRequired
	}

	parcel, err := s.repo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ErrParcelNotFound
		}
		return nil, fmt.Errorf("service: failed to get parcel: %w", err)
	}

	s.record(ctx, userID, domain.ActionViewedParcel, map[string]any{"parcel_id": parcel.ID})
	return parcel, nil
}

// TrackByNumber returns the parcel registered under trackingNumber, creating a
// Pending placeholder for userID when none exists. created reports which happened.
func (s *ParcelService) TrackByNumber(ctx context.Context, userID, trackingNumber string) (parcel *domain.Parcel, created bool, err error) {
	trackingNumber = strings.TrimSpace(trackingNumber)
	if trackingNumber == "" {
		return nil, false, domain.ErrTrackingNumberRequired
	}
	if strings.TrimSpace(userID) == "" {
		return nil, false, domain.ErrUserRequired
	}

	existing, err := s.repo.GetByTrackingNumber(ctx, trackingNumber)
	if err == nil {
		metrics.ParcelsTracked.WithLabelValues("existing").Inc()
		s.record(ctx, userID, domain.ActionTrackedExisting, map[string]any{"tracking_number": trackingNumber})
		return existing, false, nil
	}
	if !errors.Is(err, ports.ErrNotFound) {
		return nil, false, fmt.Errorf("service: failed to look up tracking number: %w", err)
	}

	parcel, err = domain.NewTrackedParcel(userID, trackingNumber, s.now(), s.etaAfter)
	if err != nil {
		return nil, false, err
	}

	if err := s.repo.Create(ctx, parcel); err != nil {
		return nil, false, fmt.Errorf("service: failed to create parcel: %w", err)
	}

	metrics.ParcelsTracked.WithLabelValues("created").Inc()
	s.record(ctx, userID, domain.ActionAddedParcel, map[string]any{"tracking_number": trackingNumber})
	return parcel, true, nil
}

// ListRecent returns a user's most recent parcels. limit <= 0 means
// DefaultRecentLimit; larger values are capped at MaxRecentLimit.
func (s *ParcelService) ListRecent(ctx context.Context, userID string, limit int) ([]domain.Parcel, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrUserRequired
	}

	switch {
	case limit <= 0:
		limit = DefaultRecentLimit
	case limit > MaxRecentLimit:
		limit = MaxRecentLimit
	}

	parcels, err := s.repo.ListByUser(ctx, userID, limit)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list parcels: %w", err)
	}

	s.record(ctx, userID, domain.ActionListedRecentOnes, nil)
	return parcels, nil
}

// ListByStatus returns all of a user's parcels whose status is one of
// rawStatuses, newest first. Selecting no status or every status returns the
// full history unfiltered.
func (s *ParcelService) ListByStatus(ctx context.Context, userID string, rawStatuses []string) ([]domain.Parcel, error) {
	if strings.TrimSpace(userID) == "" {
		return nil, domain.ErrUserRequired
	}

	selected := make([]domain.Status, 0, len(rawStatuses))
	seen := make(map[domain.Status]bool, len(rawStatuses))
	for _, raw := range rawStatuses {
		status, err := domain.ParseStatus(raw)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", err, raw)
		}
		if !seen[status] {
			seen[status] = true
			selected = append(selected, status)
		}
	}
	if len(selected) == 0 || len(selected) == len(domain.Statuses()) {
		selected = nil
	}

	parcels, err := s.repo.ListByStatus(ctx, userID, selected)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list parcels by status: %w", err)
	}

	s.record(ctx, userID, domain.ActionFilteredParcels, map[string]any{"statuses": statusNames(selected)})
	return parcels, nil
}

func statusNames(statuses []domain.Status) []string {
	names := make([]string, len(statuses))
	for i, s := range statuses {
		names[i] = string(s)
	}
	return names
}

// UpdateStatus moves a parcel to a new status. currentLocation may be empty to keep the old one.
func (s *ParcelService) UpdateStatus(ctx context.Context, userID, id, rawStatus, currentLocation string) (*domain.Parcel, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return nil, ErrParcelIDRequired
	}

	status, err := domain.ParseStatus(rawStatus)
	if err != nil {
		return nil, err
	}

	parcel, err := s.repo.UpdateStatus(ctx, id, status, strings.TrimSpace(currentLocation))
	if err != nil {
		if errors.Is(err, ports.ErrNotFound) {
			return nil, ErrParcelNotFound
		}
		return nil, fmt.Errorf("service: failed to update parcel status: %w", err)
	}

	s.record(ctx, userID, domain.ActionUpdatedStatus, map[string]any{
		"parcel_id": id,
		"status":    string(status),
	})
	return parcel, nil
}

// record logs user activity. Failures are logged and never surface to callers.
func (s *ParcelService) record(ctx context.Context, userID, action string, metadata map[string]any) {
	if s.activity == nil || userID == "" {
		return
	}

	if err := s.activity.Log(ctx, userID, action, metadata); err != nil {
		s.logger.Warn("Failed to record activity",
			zap.String("user_id", userID),
			zap.String("action", action),
			zap.Error(err),
		)
	}
}
