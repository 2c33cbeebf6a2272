package repositories

import "context"

// HealthRepository verifies database connectivity with a trivial query.
type HealthRepository interface {
	Check(ctx context.Context) error
}
