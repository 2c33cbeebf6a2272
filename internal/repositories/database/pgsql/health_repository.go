package pgsql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"

	portsrepo "github.com/padgame/pad_backend/internal/core/ports/repositories"
)

type PgxHealthRepository struct {
	pool *pgxpool.Pool
}

// NewPgxHealthRepository creates a repository used by the health endpoint.
func NewPgxHealthRepository(pool *pgxpool.Pool) portsrepo.HealthRepository {
	return &PgxHealthRepository{pool: pool}
}

// Check runs a trivial query to confirm database connectivity.
func (r *PgxHealthRepository) Check(ctx context.Context) error {
	var one int
	if err := r.pool.QueryRow(ctx, `SELECT 1;`).Scan(&one); err != nil {
		return fmt.Errorf("database connectivity check failed: %w", err)
	}
	return nil
}
