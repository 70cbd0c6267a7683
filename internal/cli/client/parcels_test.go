package client

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	parcel "parcel-tracker/internal/features/parcels/domain"
	"parcel-tracker/internal/features/tracking/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewParcelClient(t *testing.T) {
	c := NewParcelClient("http://localhost:8080/", "u-1")

	assert.Equal(t, "http://localhost:8080", c.baseURL)
	assert.Equal(t, 30*time.Second, c.client.Timeout)
}

func TestParcelClient_Track(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/tracking/ZM 1", r.URL.Path)
		assert.Equal(t, "u-1", r.Header.Get("X-User-ID"))
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(domain.Timeline{TrackingNumber: "ZM 1", Status: parcel.StatusPending})
	}))
	defer ts.Close()

	timeline, created, err := NewParcelClient(ts.URL, "u-1").Track(context.Background(), "ZM 1")

	require.NoError(t, err)
	assert.True(t, created)
	assert.Equal(t, "ZM 1", timeline.TrackingNumber)
}

func TestParcelClient_Timeline_APIError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
		w.Write([]byte(`{"message":"parcel not found","ray_id":"ray-9"}`))
	}))
	defer ts.Close()

	_, err := NewParcelClient(ts.URL, "").Timeline(context.Background(), "missing")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusNotFound, apiErr.StatusCode)
	assert.Equal(t, "parcel not found", apiErr.Message)
	assert.Equal(t, "api error 404: parcel not found (ray id ray-9)", err.Error())
}

func TestParcelClient_Timeline_NonJSONError(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Ray-ID", "ray-3")
		w.WriteHeader(http.StatusBadGateway)
		w.Write([]byte("upstream down"))
	}))
	defer ts.Close()

	_, err := NewParcelClient(ts.URL, "").Timeline(context.Background(), "p-1")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, "Bad Gateway", apiErr.Message)
	assert.Equal(t, "ray-3", apiErr.RayID)
}

func TestParcelClient_UpdateStatus(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPatch, r.Method)
		assert.Equal(t, "/parcels/p-1/status", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		raw, _ := io.ReadAll(r.Body)
		assert.JSONEq(t, `{"status":"Delivered","current_location":"Lusaka"}`, string(raw))

		json.NewEncoder(w).Encode(parcel.Parcel{ID: "p-1", Status: parcel.StatusDelivered})
	}))
	defer ts.Close()

	p, err := NewParcelClient(ts.URL, "u-1").UpdateStatus(context.Background(), "p-1", "Delivered", "Lusaka")

	require.NoError(t, err)
	assert.Equal(t, parcel.StatusDelivered, p.Status)
}
