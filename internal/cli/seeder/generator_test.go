package seeder

import (
	"context"
	"errors"
	"slices"
	"testing"
	"time"

	"parcel-tracker/internal/features/parcels/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var seedNow = time.Date(2024, 3, 1, 12, 0, 0, 0, time.UTC)

func TestGenerator_Generate(t *testing.T) {
	parcels := NewGenerator(42, seedNow).Generate(50, "u-1")

	require.Len(t, parcels, 50)
	for _, p := range parcels {
		assert.Equal(t, "u-1", p.UserID)
		assert.Len(t, p.TrackingNumber, 12)
		assert.True(t, p.Status.Valid(), p.Status)
		assert.Contains(t, Towns, p.Destination)
		assert.NotEmpty(t, p.CurrentLocation)
		assert.True(t, p.CreatedAt.Before(seedNow))
		assert.Equal(t, 7*24*time.Hour, p.ETA.Sub(p.CreatedAt))
		assert.GreaterOrEqual(t, p.AmountPaid, 20.0)
		assert.LessOrEqual(t, p.AmountPaid, 500.0)

		if p.Status == domain.StatusDelivered {
			require.NotNil(t, p.UpdatedAt)
			assert.True(t, p.UpdatedAt.After(p.CreatedAt))
		} else {
			assert.Nil(t, p.UpdatedAt)
		}
	}
}

func TestGenerator_Deterministic(t *testing.T) {
	first := NewGenerator(7, seedNow).Generate(10, "")
	second := NewGenerator(7, seedNow).Generate(10, "")

	assert.Equal(t, first, second)
	assert.NotEqual(t, first[0].UserID, "")
}

type fakeStore struct {
	created []string
	failAt  int
}

func (f *fakeStore) Create(ctx context.Context, p *domain.Parcel) error {
	if f.failAt > 0 && len(f.created) == f.failAt {
		return errors.New("duplicate tracking number")
	}
	p.ID = "id-" + p.TrackingNumber
	f.created = append(f.created, p.TrackingNumber)
	return nil
}

func TestInsert(t *testing.T) {
	parcels := NewGenerator(1, seedNow).Generate(5, "u-1")

	t.Run("AllInserted", func(t *testing.T) {
		store := &fakeStore{}
		n, err := Insert(context.Background(), store, parcels)

		require.NoError(t, err)
		assert.Equal(t, 5, n)
		assert.True(t, slices.ContainsFunc(parcels, func(p domain.Parcel) bool { return p.ID != "" }))
	})

	t.Run("StopsAtFirstFailure", func(t *testing.T) {
		store := &fakeStore{failAt: 2}
		n, err := Insert(context.Background(), store, parcels)

		assert.Equal(t, 2, n)
		assert.ErrorContains(t, err, "duplicate tracking number")
	})
}
