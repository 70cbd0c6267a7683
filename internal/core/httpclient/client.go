package httpclient

import (
	"net/http"
	"time"

	"parcel-tracker/internal/core/logger"
	"parcel-tracker/internal/core/server"

	"go.uber.org/zap"
)

// LoggingRoundTripper stamps outgoing requests with the caller's user id and
// logs each exchange together with the server's ray id.
type LoggingRoundTripper struct {
	// Proxied is the underlying RoundTripper to execute the request.
	Proxied http.RoundTripper
	// UserID is sent as the X-User-ID header when the request has none.
	UserID string
}

// RoundTrip executes the request and logs details.
func (lrt *LoggingRoundTripper) RoundTrip(req *http.Request) (*http.Response, error) {
	start := time.Now()
	l := logger.Named("httpclient")

	if lrt.UserID != "" && req.Header.Get(server.UserIDHeader) == "" {
		req = req.Clone(req.Context())
		req.Header.Set(server.UserIDHeader, lrt.UserID)
	}

	resp, err := lrt.Proxied.RoundTrip(req)

	duration := time.Since(start)

	if err != nil {
		l.Error("HTTP Request Failed",
			zap.String("method", req.Method),
			zap.String("url", req.URL.String()),
			zap.Duration("duration", duration),
			zap.Error(err),
		)
		return nil, err
	}

	l.Debug("HTTP Request Completed",
		zap.String("method", req.Method),
		zap.String("url", req.URL.String()),
		zap.Int("status_code", resp.StatusCode),
		zap.String("ray_id", resp.Header.Get(server.RayIDHeader)),
		zap.Duration("duration", duration),
	)

	return resp, nil
}

// NewClient returns an http.Client acting on behalf of userID.
func NewClient(timeout time.Duration, userID string) *http.Client {
	return &http.Client{
		Transport: &LoggingRoundTripper{
			Proxied: http.DefaultTransport,
			UserID:  userID,
		},
		Timeout: timeout,
	}
}
