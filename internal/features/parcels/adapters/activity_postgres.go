package adapters

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// PostgresActivityLogger writes user actions to the activity_logs table.
type PostgresActivityLogger struct {
	pool *pgxpool.Pool
}

// NewPostgresActivityLogger creates an activity logger on an open pool.
func NewPostgresActivityLogger(pool *pgxpool.Pool) *PostgresActivityLogger {
	return &PostgresActivityLogger{pool: pool}
}

// Log inserts one activity row. Metadata is stored as JSONB.
func (l *PostgresActivityLogger) Log(ctx context.Context, userID, action string, metadata map[string]any) error {
	ctx, cancel := context.WithTimeout(ctx, queryTimeout)
	defer cancel()

	id, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("failed to generate activity id: %w", err)
	}

	var metadataJSON []byte
	if len(metadata) > 0 {
		metadataJSON, err = json.Marshal(metadata)
		if err != nil {
			return fmt.Errorf("failed to marshal activity metadata: %w", err)
		}
	}

	query := `
		INSERT INTO activity_logs (id, user_id, action, metadata, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	if _, err := l.pool.Exec(ctx, query, id.String(), userID, action, metadataJSON); err != nil {
		return fmt.Errorf("failed to log activity %q: %w", action, err)
	}

	return nil
}
