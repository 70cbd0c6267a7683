package domain

import "time"

// Activity actions recorded against a user.
const (
	ActionViewedParcel     = "Viewed Parcel Details"
	ActionTrackedExisting  = "Tracked Existing Parcel"
	ActionAddedParcel      = "Added New Parcel"
	ActionUpdatedStatus    = "Updated Parcel Status"
	ActionListedRecentOnes = "Viewed Recent Searches"
	ActionFilteredParcels  = "Filtered Parcels By Status"
)

// Activity is an audit row describing something a user did.
type Activity struct {
	ID        string         `json:"id"`
	UserID    string         `json:"user_id"`
	Action    string         `json:"action"`
	Metadata  map[string]any `json:"metadata,omitempty"`
	CreatedAt time.Time      `json:"created_at"`
}
