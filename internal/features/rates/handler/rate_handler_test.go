package handler

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"parcel-tracker/internal/core/config"
	"parcel-tracker/internal/core/server"
	"parcel-tracker/internal/features/rates/domain"
	"parcel-tracker/internal/features/rates/service"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupApp() *fiber.App {
	app := fiber.New()
	app.Use(func(c *fiber.Ctx) error {
		c.Locals("requestid", "test-ray-id")
		return c.Next()
	})
	svc := service.NewRateService(config.RatesConfig{BasePerKg: 25, ServiceFee: 10})
	NewRateHandler(svc).Register(app)
	return app
}

func TestRateHandler_GetQuote(t *testing.T) {
	app := setupApp()

	resp, err := app.Test(httptest.NewRequest("GET", "/rates/quote?from=Ndola&to=Kitwe&weight=3", nil))

	require.NoError(t, err)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	var quote domain.Quote
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&quote))
	assert.Equal(t, "ndola", quote.From)
	assert.Equal(t, "kitwe", quote.To)
	assert.Equal(t, 8.0, quote.RatePerKg)
	assert.Equal(t, 24.0, quote.WeightCharge)
	assert.Equal(t, 34.0, quote.TotalCost)
	assert.Equal(t, "ZMW", quote.Currency)
}

func TestRateHandler_GetQuote_BadRequest(t *testing.T) {
	tests := []struct {
		name            string
		query           string
		expectedMessage string
	}{
		{name: "MissingWeight", query: "from=lusaka&to=ndola", expectedMessage: "weight must be a positive number within range"},
		{name: "TextWeight", query: "from=lusaka&to=ndola&weight=heavy", expectedMessage: "weight must be a positive number within range"},
		{name: "NegativeWeight", query: "from=lusaka&to=ndola&weight=-1", expectedMessage: "weight must be a positive number within range"},
		{name: "InfWeight", query: "from=Ndola&to=Kitwe&weight=inf", expectedMessage: "weight must be a positive number within range"},
		{name: "InfinityWeight", query: "from=Ndola&to=Kitwe&weight=Infinity", expectedMessage: "weight must be a positive number within range"},
		{name: "OverflowingWeight", query: "from=Ndola&to=Kitwe&weight=1e308", expectedMessage: "weight must be a positive number within range"},
		{name: "MissingOrigin", query: "to=ndola&weight=1", expectedMessage: "origin is required"},
		{name: "MissingDestination", query: "from=lusaka&weight=1", expectedMessage: "destination is required"},
	}

	app := setupApp()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp, err := app.Test(httptest.NewRequest("GET", "/rates/quote?"+tt.query, nil))

			require.NoError(t, err)
			assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

			var errResp server.ErrorResponse
			require.NoError(t, json.NewDecoder(resp.Body).Decode(&errResp))
			assert.Equal(t, tt.expectedMessage, errResp.Message)
			assert.Equal(t, "test-ray-id", errResp.RayID)
		})
	}
}
