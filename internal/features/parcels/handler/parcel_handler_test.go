package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"parcel-tracker/internal/core/server"
	"parcel-tracker/internal/features/parcels/domain"
	"parcel-tracker/internal/features/parcels/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockParcelService is a mock implementation of ports.ParcelService.
type MockParcelService struct {
	mock.Mock
}

func (m *MockParcelService) GetParcel(ctx context.Context, userID, id string) (*domain.Parcel, error) {
	args := m.Called(ctx, userID, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Parcel), args.Error(1)
}

func (m *MockParcelService) TrackByNumber(ctx context.Context, userID, trackingNumber string) (*domain.Parcel, bool, error) {
	args := m.Called(ctx, userID, trackingNumber)
	if args.Get(0) == nil {
		return nil, args.Bool(1), args.Error(2)
	}
	return args.Get(0).(*domain.Parcel), args.Bool(1), args.Error(2)
}

func (m *MockParcelService) ListRecent(ctx context.Context, userID string, limit int) ([]domain.Parcel, error) {
	args := m.Called(ctx, userID, limit)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Parcel), args.Error(1)
}

func (m *MockParcelService) ListByStatus(ctx context.Context, userID string, statuses []string) ([]domain.Parcel, error) {
	args := m.Called(ctx, userID, statuses)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Parcel), args.Error(1)
}

func (m *MockParcelService) UpdateStatus(ctx context.Context, userID, id, status, currentLocation string) (*domain.Parcel, error) {
	args := m.Called(ctx, userID, id, status, currentLocation)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Parcel), args.Error(1)
}

func setupApp(svc *MockParcelService) *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	NewParcelHandler(svc).Register(app)
	return app
}

func decodeError(t *testing.T, resp *http.Response) server.ErrorResponse {
	t.Helper()
	var errResp server.ErrorResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
	return errResp
}

func TestParcelHandler_GetParcel(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockParcelService)
		app := setupApp(svc)

		svc.On("GetParcel", mock.Anything, "u-1", "p-1").Return(&domain.Parcel{ID: "p-1", Status: domain.StatusInTransit}, nil).Once()

		req := httptest.NewRequest("GET", "/parcels/p-1", nil)
		req.Header.Set(server.UserIDHeader, "u-1")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var parcel domain.Parcel
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parcel))
		assert.Equal(t, domain.StatusInTransit, parcel.Status)
		svc.AssertExpectations(t)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockParcelService)
		app := setupApp(svc)

		svc.On("GetParcel", mock.Anything, "", "missing").Return(nil, service.ErrParcelNotFound).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/parcels/missing", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
		errResp := decodeError(t, resp)
		assert.Equal(t, "Parcel not found", errResp.Message)
		assert.Equal(t, "test-ray-id", errResp.RayID)
	})

	t.Run("InternalError", func(t *testing.T) {
		svc := new(MockParcelService)
		app := setupApp(svc)

		svc.On("GetParcel", mock.Anything, "", "p-1").Return(nil, errors.New("db down")).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/parcels/p-1", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Internal server error", decodeError(t, resp).Message)
	})
}

func TestParcelHandler_ListRecent(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockParcelService)
		app := setupApp(svc)

		svc.On("ListRecent", mock.Anything, "u-1", 3).Return([]domain.Parcel{{ID: "a"}, {ID: "b"}}, nil).Once()

		req := httptest.NewRequest("GET", "/parcels?limit=3", nil)
		req.Header.Set(server.UserIDHeader, "u-1")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)

		var parcels []domain.Parcel
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&parcels))
		assert.Len(t, parcels, 2)
		svc.AssertExpectations(t)
	})

	t.Run("MissingUser", func(t *testing.T) {
		svc := new(MockParcelService)
		app := setupApp(svc)

		svc.On("ListRecent", mock.Anything, "", 0).Return(nil, domain.ErrUserRequired).Once()

		resp, err := app.Test(httptest.NewRequest("GET", "/parcels", nil))

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decodeError(t, resp).Message, "user id is required")
	})
}

func TestParcelHandler_ListByStatus(t *testing.T) {
	tests := []struct {
		name     string
		target   string
		expected []string
	}{
		{name: "CommaSeparated", target: "/parcels?status=In%20Transit,Delayed", expected: []string{"In Transit", "Delayed"}},
		{name: "Repeated", target: "/parcels?status=Pending&status=Out%20for%20Delivery&limit=2", expected: []string{"Pending", "Out for Delivery"}},
		{name: "BlankPartsDropped", target: "/parcels?status=Delivered,%20,", expected: []string{"Delivered"}},
		{name: "HistoryFiltered", target: "/parcels/history?status=Exception", expected: []string{"Exception"}},
		{name: "HistoryUnfiltered", target: "/parcels/history", expected: nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockParcelService)
			app := setupApp(svc)

			svc.On("ListByStatus", mock.Anything, "u-1", tt.expected).Return([]domain.Parcel{{ID: "a"}}, nil).Once()

			req := httptest.NewRequest("GET", tt.target, nil)
			req.Header.Set(server.UserIDHeader, "u-1")
			resp, err := app.Test(req)

			require.NoError(t, err)
			assert.Equal(t, http.StatusOK, resp.StatusCode)

			var parcels []domain.Parcel
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&parcels))
			assert.Len(t, parcels, 1)
			svc.AssertExpectations(t)
			svc.AssertNotCalled(t, "ListRecent", mock.Anything, mock.Anything, mock.Anything)
		})
	}

	t.Run("InvalidStatus", func(t *testing.T) {
		svc := new(MockParcelService)
		app := setupApp(svc)

		svc.On("ListByStatus", mock.Anything, "u-1", []string{"Lost"}).
			Return(nil, fmt.Errorf("%w: %q", domain.ErrInvalidStatus, "Lost")).Once()

		req := httptest.NewRequest("GET", "/parcels?status=Lost", nil)
		req.Header.Set(server.UserIDHeader, "u-1")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decodeError(t, resp).Message, "invalid parcel status")
	})

	t.Run("InternalError", func(t *testing.T) {
		svc := new(MockParcelService)
		app := setupApp(svc)

		svc.On("ListByStatus", mock.Anything, "u-1", []string{"Pending"}).Return(nil, errors.New("db down")).Once()

		req := httptest.NewRequest("GET", "/parcels/history?status=Pending", nil)
		req.Header.Set(server.UserIDHeader, "u-1")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusInternalServerError, resp.StatusCode)
		assert.Equal(t, "Internal server error", decodeError(t, resp).Message)
	})
}

func TestParcelHandler_TrackParcel(t *testing.T) {
	tests := []struct {
		name           string
		created        bool
		expectedStatus int
	}{
		{name: "Existing", created: false, expectedStatus: http.StatusOK},
		{name: "Created", created: true, expectedStatus: http.StatusCreated},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc := new(MockParcelService)
			app := setupApp(svc)

			svc.On("TrackByNumber", mock.Anything, "u-1", "ZM0001").
				Return(&domain.Parcel{ID: "p-1", TrackingNumber: "ZM0001"}, tt.created, nil).Once()

			body, _ := json.Marshal(TrackParcelRequest{TrackingNumber: "ZM0001"})
			req := httptest.NewRequest("POST", "/parcels/track", bytes.NewReader(body))
			req.Header.Set("Content-Type", "application/json")
			req.Header.Set(server.UserIDHeader, "u-1")
			resp, err := app.Test(req)

			require.NoError(t, err)
			assert.Equal(t, tt.expectedStatus, resp.StatusCode)
			svc.AssertExpectations(t)
		})
	}

	t.Run("InvalidBody", func(t *testing.T) {
		svc := new(MockParcelService)
		app := setupApp(svc)

		req := httptest.NewRequest("POST", "/parcels/track", strings.NewReader("{"))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		svc.AssertNotCalled(t, "TrackByNumber", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("MissingTrackingNumber", func(t *testing.T) {
		svc := new(MockParcelService)
		app := setupApp(svc)

		svc.On("TrackByNumber", mock.Anything, "u-1", "").Return(nil, false, domain.ErrTrackingNumberRequired).Once()

		req := httptest.NewRequest("POST", "/parcels/track", strings.NewReader(`{}`))
		req.Header.Set("Content-Type", "application/json")
		req.Header.Set(server.UserIDHeader, "u-1")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Equal(t, "tracking number is required", decodeError(t, resp).Message)
	})
}

func TestParcelHandler_UpdateStatus(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		svc := new(MockParcelService)
		app := setupApp(svc)

		svc.On("UpdateStatus", mock.Anything, "", "p-1", "Delivered", "Lusaka").
			Return(&domain.Parcel{ID: "p-1", Status: domain.StatusDelivered}, nil).Once()

		body, _ := json.Marshal(UpdateStatusRequest{Status: "Delivered", CurrentLocation: "Lusaka"})
		req := httptest.NewRequest("PATCH", "/parcels/p-1/status", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusOK, resp.StatusCode)
		svc.AssertExpectations(t)
	})

	t.Run("InvalidStatus", func(t *testing.T) {
		svc := new(MockParcelService)
		app := setupApp(svc)

		svc.On("UpdateStatus", mock.Anything, "", "p-1", "Teleported", "").Return(nil, domain.ErrInvalidStatus).Once()

		req := httptest.NewRequest("PATCH", "/parcels/p-1/status", strings.NewReader(`{"status":"Teleported"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("NotFound", func(t *testing.T) {
		svc := new(MockParcelService)
		app := setupApp(svc)

		svc.On("UpdateStatus", mock.Anything, "", "missing", "Delivered", "").Return(nil, service.ErrParcelNotFound).Once()

		req := httptest.NewRequest("PATCH", "/parcels/missing/status", strings.NewReader(`{"status":"Delivered"}`))
		req.Header.Set("Content-Type", "application/json")
		resp, err := app.Test(req)

		require.NoError(t, err)
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})
}
