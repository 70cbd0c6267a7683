package service

import (
	"parcel-tracker/internal/core/config"
	"parcel-tracker/internal/core/metrics"
	"parcel-tracker/internal/features/rates/domain"
)

// RateService prices parcels between towns.
type RateService struct {
	calculator *domain.Calculator
}

// NewRateService creates a RateService using the configured base rate and service fee.
func NewRateService(cfg config.RatesConfig) *RateService {
	return &RateService{
		calculator: domain.NewCalculator(cfg.BasePerKg, cfg.ServiceFee),
	}
}

// Quote calculates the price of a parcel of weightKg from one town to another.
func (s *RateService) Quote(from, to string, weightKg float64) (domain.Quote, error) {
	quote, err := s.calculator.Calculate(from, to, weightKg)
	if err != nil {
		return domain.Quote{}, err
	}

	metrics.RateQuotes.WithLabelValues(string(quote.Source)).Inc()
	return quote, nil
}
