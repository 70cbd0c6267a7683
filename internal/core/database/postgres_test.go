package database

import (
	"context"
	"os"
	"testing"

	"parcel-tracker/internal/core/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPool_InvalidURL(t *testing.T) {
	pool, err := NewPool(context.Background(), config.DatabaseConfig{URL: "://not a url"})
	assert.Nil(t, pool)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse database config")
}

func TestNewPool_Live(t *testing.T) {
	url := os.Getenv("PARCELS_TEST_DATABASE_URL")
	if url == "" {
		t.Skip("PARCELS_TEST_DATABASE_URL not set")
	}

	pool, err := NewPool(context.Background(), config.DatabaseConfig{URL: url, MaxConns: 2})
	require.NoError(t, err)
	defer pool.Close()

	assert.Equal(t, int32(2), pool.Config().MaxConns)
}
