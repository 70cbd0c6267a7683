package handler

import (
	"errors"
	"strings"

	"parcel-tracker/internal/core/logger"
	"parcel-tracker/internal/core/server"
	"parcel-tracker/internal/features/parcels/domain"
	"parcel-tracker/internal/features/parcels/ports"
	"parcel-tracker/internal/features/parcels/service"

	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// ParcelHandler handles HTTP requests for parcels.
type ParcelHandler struct {
	service ports.ParcelService
}

// NewParcelHandler creates a new ParcelHandler.
func NewParcelHandler(s ports.ParcelService) *ParcelHandler {
	return &ParcelHandler{
		service: s,
	}
}

// Register mounts the parcel routes.
func (h *ParcelHandler) Register(router fiber.Router) {
	router.Get("/parcels", h.ListRecent)
	router.Get("/parcels/history", h.ListHistory)
	router.Post("/parcels/track", h.TrackParcel)
	router.Get("/parcels/:id", h.GetParcel)
	router.Patch("/parcels/:id/status", h.UpdateStatus)
}

// TrackParcelRequest is the body of POST /parcels/track.
type TrackParcelRequest struct {
	TrackingNumber string `json:"tracking_number"`
}

// UpdateStatusRequest is the body of PATCH /parcels/{id}/status.
type UpdateStatusRequest struct {
	Status          string `json:"status"`
	CurrentLocation string `json:"current_location"`
}

// GetParcel godoc
// @Summary Get a parcel
// @Description Retrieves a parcel by its id.
// @Tags parcels
// @Produce json
// @Param id path string true "Parcel ID"
// @Param X-User-ID header string false "Caller user id"
// @Success 200 {object} domain.Parcel
// @Failure 404 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /parcels/{id} [get]
func (h *ParcelHandler) GetParcel(c *fiber.Ctx) error {
	parcel, err := h.service.GetParcel(c.UserContext(), server.UserID(c), c.Params("id"))
	if err != nil {
		return h.fail(c, "Failed to get parcel", err)
	}

	return c.Status(fiber.StatusOK).JSON(parcel)
}

// ListRecent godoc
// @Summary List recent parcels
// @Description Lists the caller's most recently tracked parcels, newest first.
// @Tags parcels
// @Produce json
// @Param X-User-ID header string true "Caller user id"
// @Param limit query int false "Maximum number of parcels (default 5, max 50)"
// @Param status query []string false "Only parcels in these statuses, comma separated or repeated; ignores limit" collectionFormat(multi)
// @Success 200 {array} domain.Parcel
// @Failure 400 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /parcels [get]
func (h *ParcelHandler) ListRecent(c *fiber.Ctx) error {
	if statuses, ok := statusFilter(c); ok {
		return h.listByStatus(c, statuses)
	}

	parcels, err := h.service.ListRecent(c.UserContext(), server.UserID(c), c.QueryInt("limit", 0))
	if err != nil {
		return h.fail(c, "Failed to list parcels", err)
	}

	return c.Status(fiber.StatusOK).JSON(parcels)
}

// ListHistory godoc
// @Summary List parcel history
// @Description Lists every parcel the caller has tracked, newest first, optionally filtered by status.
// @Tags parcels
// @Produce json
// @Param X-User-ID header string true "Caller user id"
// @Param status query []string false "Only parcels in these statuses, comma separated or repeated" collectionFormat(multi)
// @Success 200 {array} domain.Parcel
// @Failure 400 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /parcels/history [get]
func (h *ParcelHandler) ListHistory(c *fiber.Ctx) error {
	statuses, _ := statusFilter(c)
	return h.listByStatus(c, statuses)
}

func (h *ParcelHandler) listByStatus(c *fiber.Ctx, statuses []string) error {
	parcels, err := h.service.ListByStatus(c.UserContext(), server.UserID(c), statuses)
	if err != nil {
		return h.fail(c, "Failed to list parcels by status", err)
	}

	return c.Status(fiber.StatusOK).JSON(parcels)
}

// statusFilter collects the status query values. Each value may hold several
// comma separated statuses. ok reports whether the parameter was present.
func statusFilter(c *fiber.Ctx) (statuses []string, ok bool) {
	values := c.Context().QueryArgs().PeekMulti("status")
	if len(values) == 0 {
		return nil, false
	}

	for _, value := range values {
		for _, part := range strings.Split(string(value), ",") {
			if part = strings.TrimSpace(part); part != "" {
				statuses = append(statuses, part)
			}
		}
	}
	return statuses, true
}

// TrackParcel godoc
// @Summary Track a parcel by number
// @Description Returns the parcel registered under the tracking number, registering a pending one when unknown.
// @Tags parcels
// @Accept json
// @Produce json
// @Param X-User-ID header string true "Caller user id"
// @Param request body TrackParcelRequest true "Tracking number"
// @Success 200 {object} domain.Parcel "Existing parcel"
// @Success 201 {object} domain.Parcel "Newly registered parcel"
// @Failure 400 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /parcels/track [post]
func (h *ParcelHandler) TrackParcel(c *fiber.Ctx) error {
	var req TrackParcelRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	parcel, created, err := h.service.TrackByNumber(c.UserContext(), server.UserID(c), req.TrackingNumber)
	if err != nil {
		return h.fail(c, "Failed to track parcel", err)
	}

	status := fiber.StatusOK
	if created {
		status = fiber.StatusCreated
	}
	return c.Status(status).JSON(parcel)
}

// UpdateStatus godoc
// @Summary Update a parcel's status
// @Description Moves a parcel to a new status and optionally a new current location.
// @Tags parcels
// @Accept json
// @Produce json
// @Param id path string true "Parcel ID"
// @Param X-User-ID header string false "Caller user id"
// @Param request body UpdateStatusRequest true "New status"
// @Success 200 {object} domain.Parcel
// @Failure 400 {object} server.ErrorResponse
// @Failure 404 {object} server.ErrorResponse
// @Failure 500 {object} server.ErrorResponse
// @Router /parcels/{id}/status [patch]
func (h *ParcelHandler) UpdateStatus(c *fiber.Ctx) error {
	var req UpdateStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return server.Fail(c, fiber.StatusBadRequest, "Invalid request body")
	}

	parcel, err := h.service.UpdateStatus(c.UserContext(), server.UserID(c), c.Params("id"), req.Status, req.CurrentLocation)
	if err != nil {
		return h.fail(c, "Failed to update parcel status", err)
	}

	return c.Status(fiber.StatusOK).JSON(parcel)
}

// fail maps service errors onto HTTP statuses.
func (h *ParcelHandler) fail(c *fiber.Ctx, logMsg string, err error) error {
	switch {
	case errors.Is(err, service.ErrParcelNotFound):
		return server.Fail(c, fiber.StatusNotFound, "Parcel not found")
	case errors.Is(err, service.ErrParcelIDRequired),
		errors.Is(err, domain.ErrTrackingNumberRequired),
		errors.Is(err, domain.ErrUserRequired),
		errors.Is(err, domain.ErrInvalidStatus):
		return server.Fail(c, fiber.StatusBadRequest, err.Error())
	}

	logger.Get().Error(logMsg,
		zap.String("ray_id", server.RayID(c)),
		zap.String("path", c.Path()),
		zap.Error(err),
	)
	return server.Fail(c, fiber.StatusInternalServerError, "Internal server error")
}
