package server

import (
	"strings"

	"github.com/gofiber/fiber/v2"
)

const (
	// UserIDHeader carries the caller's opaque user id, set by the auth gateway.
	UserIDHeader = "X-User-ID"
	// RayIDHeader carries the request id assigned to every response.
	RayIDHeader = "X-Ray-ID"
)

// ErrorResponse represents an error response with Ray ID.
type ErrorResponse struct {
	// Message is the error description.
	Message string `json:"message"`
	// RayID is the unique request identifier for tracing.
	RayID string `json:"ray_id,omitempty"`
}

// RayID returns the request id assigned by the requestid middleware.
func RayID(c *fiber.Ctx) string {
	rayID, ok := c.Locals("requestid").(string)
	if !ok {
		return "unknown"
	}
	return rayID
}

// UserID returns the caller's user id header, trimmed. Empty when absent.
func UserID(c *fiber.Ctx) string {
	return strings.TrimSpace(c.Get(UserIDHeader))
}

// Fail writes an ErrorResponse with the given status.
func Fail(c *fiber.Ctx, status int, message string) error {
	return c.Status(status).JSON(ErrorResponse{
		Message: message,
		RayID:   RayID(c),
	})
}
