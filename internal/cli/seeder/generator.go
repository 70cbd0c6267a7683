package seeder

import (
	"context"
	"fmt"
	"math"
	"time"

	"parcel-tracker/internal/features/parcels/domain"

	"github.com/brianvoe/gofakeit/v6"
)

// Towns are the destinations seeded parcels are sent to.
var Towns = []string{"Lusaka", "Ndola", "Kitwe", "Livingstone", "Chingola", "Chipata", "Kabwe", "Solwezi"}

var carriers = []string{"Zampost", "DHL Zambia", "Fedex Lusaka", "Yango Delivery"}

// Generator produces realistic parcels for development databases.
type Generator struct {
	faker *gofakeit.Faker
	now   time.Time
}

// NewGenerator returns a Generator. The same seed and now produce the same parcels.
func NewGenerator(seed int64, now time.Time) *Generator {
	return &Generator{
		faker: gofakeit.New(seed),
		now:   now.UTC(),
	}
}

// Generate creates count parcels owned by userID. A blank userID gives each
// parcel a random owner.
func (g *Generator) Generate(count int, userID string) []domain.Parcel {
	statuses := domain.Statuses()
	parcels := make([]domain.Parcel, 0, count)

	for i := 0; i < count; i++ {
		owner := userID
		if owner == "" {
			owner = g.faker.UUID()
		}

		status := statuses[g.faker.Number(0, len(statuses)-1)]
		createdAt := g.now.Add(-time.Duration(g.faker.Number(1, 240)) * time.Hour)
		destination := g.faker.RandomString(Towns)

		p := domain.Parcel{
			UserID:          owner,
			TrackingNumber:  "ZM" + g.faker.DigitN(10),
			Status:          status,
			CurrentLocation: g.currentLocation(status, destination),
			Destination:     destination,
			Carrier:         g.faker.RandomString(carriers),
			ETA:             createdAt.Add(7 * 24 * time.Hour),
			AmountPaid:      math.Round(g.faker.Price(20, 500)*100) / 100,
			CreatedAt:       createdAt,
		}

		if status == domain.StatusDelivered {
			deliveredAt := createdAt.Add(time.Duration(g.faker.Number(14, 72)) * time.Hour)
			p.UpdatedAt = &deliveredAt
		}

		parcels = append(parcels, p)
	}

	return parcels
}

func (g *Generator) currentLocation(status domain.Status, destination string) string {
	switch status {
	case domain.StatusPending, domain.StatusProcessing:
		return domain.DefaultCurrentLocation
	case domain.StatusDelivered, domain.StatusReadyForPickup, domain.StatusOutForDelivery:
		return destination
	default:
		return g.faker.RandomString(Towns) + " Hub"
	}
}

// Creator stores seeded parcels.
type Creator interface {
	Create(ctx context.Context, parcel *domain.Parcel) error
}

// Insert stores every parcel and returns how many were written before the first failure.
func Insert(ctx context.Context, store Creator, parcels []domain.Parcel) (int, error) {
	for i := range parcels {
		if err := store.Create(ctx, &parcels[i]); err != nil {
			return i, fmt.Errorf("failed to insert parcel %s: %w", parcels[i].TrackingNumber, err)
		}
	}
	return len(parcels), nil
}
