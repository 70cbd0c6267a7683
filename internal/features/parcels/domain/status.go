package domain

import (
	"errors"
	"strings"
)

// Status is the lifecycle label of a parcel. Values are matched case-sensitively.
type Status string

const (
	// StatusPending indicates the parcel has been registered but not processed.
	StatusPending Status = "Pending"
	// StatusProcessing indicates the parcel information is being verified.
	StatusProcessing Status = "Processing"
	// StatusInTransit indicates the parcel has left the sorting facility.
	StatusInTransit Status = "In Transit"
	// StatusOutForDelivery indicates the parcel is with the delivery agent.
	StatusOutForDelivery Status = "Out for Delivery"
	// StatusReadyForPickup indicates the parcel is waiting at a pickup point.
	StatusReadyForPickup Status = "Ready for pickup"
	// StatusOnHold indicates delivery is temporarily paused.
	StatusOnHold Status = "On Hold"
	// StatusDelayed indicates delivery is running late.
	StatusDelayed Status = "Delayed"
	// StatusDelivered indicates the parcel reached its destination.
	StatusDelivered Status = "Delivered"
	// StatusException indicates an unexpected issue during transit.
	StatusException Status = "Exception"
)

// legacyReadyForPickup is the capitalised spelling older clients send.
const legacyReadyForPickup = "Ready for Pickup"

// ErrInvalidStatus is returned when a status is not part of the enumeration.
var ErrInvalidStatus = errors.New("invalid parcel status")

var knownStatuses = []Status{
	StatusPending,
	StatusProcessing,
	StatusInTransit,
	StatusOutForDelivery,
	StatusReadyForPickup,
	StatusOnHold,
	StatusDelayed,
	StatusDelivered,
	StatusException,
}

// Statuses returns every known status in lifecycle order.
func Statuses() []Status {
	out := make([]Status, len(knownStatuses))
	copy(out, knownStatuses)
	return out
}

// Valid reports whether s is one of the known statuses.
func (s Status) Valid() bool {
	for _, known := range knownStatuses {
		if s == known {
			return true
		}
	}
	return false
}

// Spellings returns every stored form of the status, including legacy ones.
func (s Status) Spellings() []string {
	if s == StatusReadyForPickup {
		return []string{string(s), legacyReadyForPickup}
	}
	return []string{string(s)}
}

// ParseStatus converts user input into a known Status.
// Surrounding whitespace is ignored and the legacy "Ready for Pickup" spelling
// is folded into StatusReadyForPickup; everything else must match exactly.
func ParseStatus(raw string) (Status, error) {
	raw = strings.TrimSpace(raw)
	if raw == legacyReadyForPickup {
		return StatusReadyForPickup, nil
	}

	s := Status(raw)
	if !s.Valid() {
		return "", ErrInvalidStatus
	}
	return s, nil
}

// Tone groups statuses by how a client should highlight them.
type Tone string

const (
	ToneInfo    Tone = "info"
	ToneSuccess Tone = "success"
	ToneWarning Tone = "warning"
	ToneNeutral Tone = "neutral"
)

// Presentation is the icon and tone a client renders for a status.
type Presentation struct {
	Icon string `json:"icon"`
	Tone Tone   `json:"tone"`
}

// Present returns the display hints for s. Unknown statuses get a neutral info icon.
func (s Status) Present() Presentation {
	switch s {
	case StatusPending:
		return Presentation{Icon: "pending-actions", Tone: ToneInfo}
	case StatusProcessing:
		return Presentation{Icon: "work", Tone: ToneInfo}
	case StatusInTransit:
		return Presentation{Icon: "truck", Tone: ToneInfo}
	case StatusOutForDelivery:
		return Presentation{Icon: "delivery-dining", Tone: ToneInfo}
	case StatusReadyForPickup:
		return Presentation{Icon: "store", Tone: ToneInfo}
	case StatusDelivered:
		return Presentation{Icon: "home", Tone: ToneSuccess}
	case StatusException, StatusDelayed, StatusOnHold:
		return Presentation{Icon: "error-outline", Tone: ToneWarning}
	default:
		return Presentation{Icon: "info-outline", Tone: ToneNeutral}
	}
}
