package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"parcel-tracker/internal/core/httpclient"
	"parcel-tracker/internal/core/server"
	parcel "parcel-tracker/internal/features/parcels/domain"
	"parcel-tracker/internal/features/tracking/domain"
)

// APIError is a non-2xx answer from the parcel API.
type APIError struct {
	StatusCode int
	Message    string
	RayID      string
}

func (e *APIError) Error() string {
	if e.RayID != "" {
		return fmt.Sprintf("api error %d: %s (ray id %s)", e.StatusCode, e.Message, e.RayID)
	}
	return fmt.Sprintf("api error %d: %s", e.StatusCode, e.Message)
}

// ParcelClient talks to a running parcel-tracker API on behalf of one user.
type ParcelClient struct {
	baseURL string
	client  *http.Client
}

// NewParcelClient creates a ParcelClient pointing at baseURL.
func NewParcelClient(baseURL, userID string) *ParcelClient {
	return &ParcelClient{
		baseURL: strings.TrimRight(baseURL, "/"),
		client:  httpclient.NewClient(30*time.Second, userID),
	}
}

// Track returns the timeline of a tracking number and whether the API registered it.
func (c *ParcelClient) Track(ctx context.Context, trackingNumber string) (*domain.Timeline, bool, error) {
	var timeline domain.Timeline
	status, err := c.do(ctx, http.MethodGet, "/tracking/"+url.PathEscape(trackingNumber), nil, &timeline)
	if err != nil {
		return nil, false, err
	}
	return &timeline, status == http.StatusCreated, nil
}

// Timeline returns the timeline of a stored parcel.
func (c *ParcelClient) Timeline(ctx context.Context, parcelID string) (*domain.Timeline, error) {
	var timeline domain.Timeline
	if _, err := c.do(ctx, http.MethodGet, "/parcels/"+url.PathEscape(parcelID)+"/timeline", nil, &timeline); err != nil {
		return nil, err
	}
	return &timeline, nil
}

// UpdateStatus moves a parcel to a new status.
func (c *ParcelClient) UpdateStatus(ctx context.Context, parcelID, status, currentLocation string) (*parcel.Parcel, error) {
	body := map[string]string{"status": status, "current_location": currentLocation}

	var p parcel.Parcel
	if _, err := c.do(ctx, http.MethodPatch, "/parcels/"+url.PathEscape(parcelID)+"/status", body, &p); err != nil {
		return nil, err
	}
	return &p, nil
}

func (c *ParcelClient) do(ctx context.Context, method, path string, in, out any) (int, error) {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return 0, err
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, body)
	if err != nil {
		return 0, err
	}
	req.Header.Set("Accept", "application/json")
	if in != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		var errResp server.ErrorResponse
		if err := json.NewDecoder(resp.Body).Decode(&errResp); err != nil || errResp.Message == "" {
			errResp.Message = http.StatusText(resp.StatusCode)
		}
		if errResp.RayID == "" {
			errResp.RayID = resp.Header.Get(server.RayIDHeader)
		}
		return resp.StatusCode, &APIError{
			StatusCode: resp.StatusCode,
			Message:    errResp.Message,
			RayID:      errResp.RayID,
		}
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return resp.StatusCode, fmt.Errorf("failed to decode response: %w", err)
	}
	return resp.StatusCode, nil
}
