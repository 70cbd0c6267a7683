package handler

import (
	"strconv"

	"parcel-tracker/internal/core/server"
	"parcel-tracker/internal/features/rates/domain"
	"parcel-tracker/internal/features/rates/service"

	"github.com/gofiber/fiber/v2"
)

// RateHandler handles HTTP requests for shipping quotes.
type RateHandler struct {
	rateService *service.RateService
}

// NewRateHandler creates a new RateHandler.
func NewRateHandler(rateService *service.RateService) *RateHandler {
	return &RateHandler{rateService: rateService}
}

// Register mounts the rate routes.
func (h *RateHandler) Register(router fiber.Router) {
	router.Get("/rates/quote", h.GetQuote)
}

// GetQuote godoc
// @Summary Quote a shipment
// @Description Prices a parcel between two towns. Unknown routes use the base rate per kg.
// @Tags rates
// @Produce json
// @Param from query string true "Origin town"
// @Param to query string true "Destination town"
// @Param weight query number true "Weight in kg"
// @Success 200 {object} domain.Quote
// @Failure 400 {object} server.ErrorResponse
// @Router /rates/quote [get]
func (h *RateHandler) GetQuote(c *fiber.Ctx) error {
	weight, err := strconv.ParseFloat(c.Query("weight"), 64)
	if err != nil {
		return server.Fail(c, fiber.StatusBadRequest, domain.ErrInvalidWeight.Error())
	}

	quote, err := h.rateService.Quote(c.Query("from"), c.Query("to"), weight)
	if err != nil {
		return server.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	return c.JSON(quote)
}
