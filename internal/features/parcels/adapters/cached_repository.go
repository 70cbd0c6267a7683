package adapters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"parcel-tracker/internal/core/cache"
	"parcel-tracker/internal/core/metrics"
	"parcel-tracker/internal/features/parcels/domain"
	"parcel-tracker/internal/features/parcels/ports"

	"go.uber.org/zap"
)

const parcelKeyPrefix = "parcel:"

// CachedRepository is a read-through cache in front of another repository.
// Only lookups by id are cached; writes evict the affected entry.
type CachedRepository struct {
	next   ports.ParcelRepository
	cache  cache.Cache
	ttl    time.Duration
	logger *zap.Logger
}

// NewCachedRepository wraps next with a cache. A ttl of 0 disables caching.
func NewCachedRepository(next ports.ParcelRepository, c cache.Cache, ttl time.Duration, logger *zap.Logger) *CachedRepository {
	return &CachedRepository{
		next:   next,
		cache:  c,
		ttl:    ttl,
		logger: logger,
	}
}

func parcelKey(id string) string {
	return parcelKeyPrefix + id
}

// GetByID serves from cache when possible. Cache failures fall through to the store.
func (r *CachedRepository) GetByID(ctx context.Context, id string) (*domain.Parcel, error) {
	if r.ttl <= 0 {
		return r.next.GetByID(ctx, id)
	}

	if parcel, ok := r.fromCache(ctx, id); ok {
		return parcel, nil
	}

	parcel, err := r.next.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	r.store(ctx, parcel)
	return parcel, nil
}

// GetByTrackingNumber is not cached.
func (r *CachedRepository) GetByTrackingNumber(ctx context.Context, trackingNumber string) (*domain.Parcel, error) {
	return r.next.GetByTrackingNumber(ctx, trackingNumber)
}

// ListByUser is not cached.
func (r *CachedRepository) ListByUser(ctx context.Context, userID string, limit int) ([]domain.Parcel, error) {
	return r.next.ListByUser(ctx, userID, limit)
}

// ListByStatus is not cached.
func (r *CachedRepository) ListByStatus(ctx context.Context, userID string, statuses []domain.Status) ([]domain.Parcel, error) {
	return r.next.ListByStatus(ctx, userID, statuses)
}

// Create writes through and primes the cache.
func (r *CachedRepository) Create(ctx context.Context, parcel *domain.Parcel) error {
	if err := r.next.Create(ctx, parcel); err != nil {
		return err
	}

	if r.ttl > 0 {
		r.store(ctx, parcel)
	}
	return nil
}

// UpdateStatus writes through and evicts the stale entry.
func (r *CachedRepository) UpdateStatus(ctx context.Context, id string, status domain.Status, currentLocation string) (*domain.Parcel, error) {
	parcel, err := r.next.UpdateStatus(ctx, id, status, currentLocation)
	if err != nil {
		return nil, err
	}

	if err := r.cache.Delete(ctx, parcelKey(id)); err != nil {
		r.logger.Warn("Failed to evict parcel from cache", zap.String("parcel_id", id), zap.Error(err))
	}
	return parcel, nil
}

func (r *CachedRepository) fromCache(ctx context.Context, id string) (*domain.Parcel, bool) {
	data, err := r.cache.Get(ctx, parcelKey(id))
	if err != nil {
		if errors.Is(err, cache.ErrMiss) {
			metrics.ParcelCacheLookups.WithLabelValues("miss").Inc()
		} else {
			metrics.ParcelCacheLookups.WithLabelValues("error").Inc()
			r.logger.Warn("Parcel cache lookup failed", zap.String("parcel_id", id), zap.Error(err))
		}
		return nil, false
	}

	var parcel domain.Parcel
	if err := json.Unmarshal(data, &parcel); err != nil {
		metrics.ParcelCacheLookups.WithLabelValues("error").Inc()
		r.logger.Warn("Discarding undecodable cached parcel", zap.String("parcel_id", id), zap.Error(err))
		return nil, false
	}

	metrics.ParcelCacheLookups.WithLabelValues("hit").Inc()
	return &parcel, true
}

func (r *CachedRepository) store(ctx context.Context, parcel *domain.Parcel) {
	if err := r.put(ctx, parcel); err != nil {
		r.logger.Warn("Failed to cache parcel", zap.String("parcel_id", parcel.ID), zap.Error(err))
	}
}

func (r *CachedRepository) put(ctx context.Context, parcel *domain.Parcel) error {
	data, err := json.Marshal(parcel)
	if err != nil {
		return fmt.Errorf("failed to marshal parcel: %w", err)
	}
	return r.cache.Set(ctx, parcelKey(parcel.ID), data, r.ttl)
}
