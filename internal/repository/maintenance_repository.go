package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

type maintenanceRepository struct {
	pool *pgxpool.Pool
}

// NewMaintenanceRepository wires a repository backed by pgxpool.
func NewMaintenanceRepository(pool *pgxpool.Pool) MaintenanceRepository {
	return &maintenanceRepository{pool: pool}
}

// Purge runs the cleanup_old_records() function installed by the migrations.
// Retention policy lives in SQL; callers only see success or failure.
func (r *maintenanceRepository) Purge(ctx context.Context) error {
	if r.pool == nil {
		return fmt.Errorf("maintenance repository not initialized")
	}

	if _, err := r.pool.Exec(ctx, `SELECT cleanup_old_records()`); err != nil {
		return fmt.Errorf("failed to run cleanup routine: %w", err)
	}

	return nil
}
