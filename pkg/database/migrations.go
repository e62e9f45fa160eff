package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// CreateGINIndexes creates full-text search GIN indexes for PostgreSQL.
// These enable efficient search over archived queries and responses, which
// Ent schema definitions cannot express.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_task_histories_query_gin
		ON task_histories USING gin(to_tsvector('english', query))`)
	if err != nil {
		return fmt.Errorf("failed to create query GIN index: %w", err)
	}

	_, err = db.ExecContext(ctx,
		`CREATE INDEX IF NOT EXISTS idx_task_histories_response_gin
		ON task_histories USING gin(to_tsvector('english', COALESCE(response_summary, '')))`)
	if err != nil {
		return fmt.Errorf("failed to create response_summary GIN index: %w", err)
	}

	return nil
}
