package domain

import (
	"errors"
	"math"
	"strings"
)

// Currency is the currency every quote is priced in.
const Currency = "ZMW"

var (
	// ErrOriginRequired is returned when the pickup town is blank.
	ErrOriginRequired = errors.New("origin is required")
	// ErrDestinationRequired is returned when the delivery town is blank.
	ErrDestinationRequired = errors.New("destination is required")
	// ErrInvalidWeight is returned for weights that are not positive and finite,
	// or too large to price.
	ErrInvalidWeight = errors.New("weight must be a positive number within range")
)

// Source tells whether a quote was priced from the route table or the base rate.
type Source string

const (
	SourceTable Source = "table"
	SourceBase  Source = "base"
)

// Quote is the price of sending a parcel of a given weight between two towns.
type Quote struct {
	From         string  `json:"from"`
	To           string  `json:"to"`
	WeightKg     float64 `json:"weight_kg"`
	RatePerKg    float64 `json:"rate_per_kg"`
	WeightCharge float64 `json:"weight_charge"`
	ServiceFee   float64 `json:"service_fee"`
	TotalCost    float64 `json:"total_cost"`
	Currency     string  `json:"currency"`
	Source       Source  `json:"source"`
}

// RouteTable maps origin to destination to a per-kilogram rate.
// Keys are lowercase town names.
type RouteTable map[string]map[string]float64

// DefaultRoutes are the Copperbelt and Lusaka routes with negotiated rates.
var DefaultRoutes = RouteTable{
	"lusaka": {
		"ndola":       15,
		"kitwe":       18,
		"livingstone": 20,
		"chingola":    19,
		"chipata":     22,
	},
	"ndola": {
		"lusaka":      15,
		"kitwe":       8,
		"livingstone": 25,
		"chingola":    7,
		"chipata":     30,
	},
	"kitwe": {
		"lusaka":      18,
		"ndola":       8,
		"livingstone": 28,
		"chingola":    5,
		"chipata":     35,
	},
}

// Lookup returns the per-kg rate of a route. Inputs must already be normalized.
func (t RouteTable) Lookup(from, to string) (float64, bool) {
	rate, ok := t[from][to]
	return rate, ok
}

// Calculator prices quotes from a route table, falling back to a flat base rate.
type Calculator struct {
	Routes     RouteTable
	BasePerKg  float64
	ServiceFee float64
}

// NewCalculator returns a Calculator over DefaultRoutes.
func NewCalculator(basePerKg, serviceFee float64) *Calculator {
	return &Calculator{
		Routes:     DefaultRoutes,
		BasePerKg:  basePerKg,
		ServiceFee: serviceFee,
	}
}

// Calculate prices a parcel of weightKg sent from one town to another.
// Town names are matched case-insensitively.
func (c *Calculator) Calculate(from, to string, weightKg float64) (Quote, error) {
	from = normalizeTown(from)
	to = normalizeTown(to)

	if from == "" {
		return Quote{}, ErrOriginRequired
	}
	if to == "" {
		return Quote{}, ErrDestinationRequired
	}
	// NaN fails every comparison, so test the positive case.
	if !(weightKg > 0) || math.IsInf(weightKg, 0) {
		return Quote{}, ErrInvalidWeight
	}

	rate, source := c.BasePerKg, SourceBase
	if routed, ok := c.Routes.Lookup(from, to); ok {
		rate, source = routed, SourceTable
	}

	weightCharge := rate * weightKg
	if math.IsInf(weightCharge+c.ServiceFee, 0) {
		return Quote{}, ErrInvalidWeight
	}

	return Quote{
		From:         from,
		To:           to,
		WeightKg:     weightKg,
		RatePerKg:    rate,
		WeightCharge: weightCharge,
		ServiceFee:   c.ServiceFee,
		TotalCost:    weightCharge + c.ServiceFee,
		Currency:     Currency,
		Source:       source,
	}, nil
}

func normalizeTown(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}
