package httpclient

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"parcel-tracker/internal/core/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestLoggingRoundTripper verifies the user id header is added.
func TestLoggingRoundTripper(t *testing.T) {
	var gotUser string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = r.Header.Get("X-User-ID")
		w.Header().Set("X-Ray-ID", "ray-1")
		w.WriteHeader(http.StatusOK)
	}))
	defer ts.Close()

	logger.Init("development", "debug")

	client := NewClient(1*time.Second, "u-1")
	resp, err := client.Get(ts.URL)
	require.NoError(t, err)
	defer resp.Body.Close()

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "u-1", gotUser)
}

// TestLoggingRoundTripper_KeepsExplicitUser verifies a header set by the caller wins.
func TestLoggingRoundTripper_KeepsExplicitUser(t *testing.T) {
	var gotUser string
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotUser = r.Header.Get("X-User-ID")
	}))
	defer ts.Close()

	req, err := http.NewRequest(http.MethodGet, ts.URL, nil)
	require.NoError(t, err)
	req.Header.Set("X-User-ID", "u-2")

	resp, err := NewClient(time.Second, "u-1").Do(req)
	require.NoError(t, err)
	resp.Body.Close()

	assert.Equal(t, "u-2", gotUser)
}

// TestLoggingRoundTripper_Error verifies that failed requests are logged.
func TestLoggingRoundTripper_Error(t *testing.T) {
	logger.Init("development", "debug")

	client := NewClient(1*time.Second, "")
	_, err := client.Get("http://invalid-url-that-does-not-exist.local")
	require.Error(t, err)
}
