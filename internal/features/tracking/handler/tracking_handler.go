package handler

import (
	"errors"

	"parcel-tracker/internal/core/logger"
	"parcel-tracker/internal/core/server"
	parcel "parcel-tracker/internal/features/parcels/domain"
	parcelservice "parcel-tracker/internal/features/parcels/service"
	"parcel-tracker/internal/features/tracking/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// TrackingHandler handles HTTP requests for tracking timelines.
type TrackingHandler struct {
	trackingService *service.TrackingService
}

// NewTrackingHandler creates a new TrackingHandler.
func NewTrackingHandler(trackingService *service.TrackingService) *TrackingHandler {
	return &TrackingHandler{
		trackingService: trackingService,
	}
}

// Register mounts the tracking routes.
func (h *TrackingHandler) Register(router fiber.Router) {
	router.Get("/parcels/:id/timeline", h.GetTimeline)
	router.Get("/tracking/:number", h.TrackByNumber)
	router.Post("/tracking/preview", h.Preview)
}

// GetTimeline godoc
// @Summary Get the tracking timeline of a parcel
// @Description Synthesizes the tracking history of a stored parcel, newest event first
// @Tags tracking
// @Produce json
// @Param id path string true "Parcel ID"
// @Param X-User-ID header string false "Caller user id"
// @Success 200 {object} domain.Timeline
// @Failure 404 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /parcels/{id}/timeline [get]
func (h *TrackingHandler) GetTimeline(c *fiber.Ctx) error {
	timeline, err := h.trackingService.Timeline(c.UserContext(), server.UserID(c), c.Params("id"))
	if err != nil {
		return h.fail(c, err)
	}

	return c.JSON(timeline)
}

// TrackByNumber godoc
// @Summary Track a shipment by tracking number
// @Description Retrieves the tracking timeline for a tracking number, registering the parcel when it is unknown
// @Tags tracking
// @Produce json
// @Param number path string true "Tracking Number"
// @Param X-User-ID header string true "Caller user id"
// @Success 200 {object} domain.Timeline
// @Success 201 {object} domain.Timeline
// @Failure 400 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /tracking/{number} [get]
func (h *TrackingHandler) TrackByNumber(c *fiber.Ctx) error {
	timeline, created, err := h.trackingService.TrackByNumber(c.UserContext(), server.UserID(c), c.Params("number"))
	if err != nil {
		return h.fail(c, err)
	}

	if created {
		return c.Status(fiber.StatusCreated).JSON(timeline)
	}
	return c.JSON(timeline)
}

// Preview godoc
// @Summary Preview a timeline
// @Description Synthesizes the tracking history of the parcel in the request body without storing it
// @Tags tracking
// @Accept json
// @Produce json
// @Param parcel body parcel.Parcel true "Parcel record"
// @Success 200 {object} domain.Timeline
// @Failure 400 {object} server.ErrorResponse
// @Router /tracking/preview [post]
func (h *TrackingHandler) Preview(c *fiber.Ctx) error {
	var p parcel.Parcel
	if err := c.BodyParser(&p); err != nil {
		return server.Fail(c, fiber.StatusBadRequest, "Invalid parcel: "+err.Error())
	}

	if p.CreatedAt.IsZero() {
		return server.Fail(c, fiber.StatusBadRequest, "created_at is required")
	}

	if status, err := parcel.ParseStatus(string(p.Status)); err == nil {
		p.Status = status
	}

	return c.JSON(h.trackingService.Preview(p))
}

var badRequestErrors = []error{
	parcelservice.ErrParcelIDRequired,
	parcel.ErrTrackingNumberRequired,
	parcel.ErrUserRequired,
}

func (h *TrackingHandler) fail(c *fiber.Ctx, err error) error {
	if errors.Is(err, parcelservice.ErrParcelNotFound) {
		return server.Fail(c, fiber.StatusNotFound, "parcel not found")
	}
	for _, target := range badRequestErrors {
		if errors.Is(err, target) {
			return server.Fail(c, fiber.StatusBadRequest, target.Error())
		}
	}

	logger.Get().Error("Failed to build timeline",
		zap.String("ray_id", server.RayID(c)),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return server.Fail(c, fiber.StatusInternalServerError, "Internal server error")
}
