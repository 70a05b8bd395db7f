package driven

import (
	"context"

	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
)

// RouteLogStore persists routing decisions for later analysis.
//
// Logging is strictly best-effort: routing must answer even when the
// store is down, so callers log failures and move on.
type RouteLogStore interface {
	// Record appends one routing decision.
	Record(ctx context.Context, rec *domain.RouteRecord) error

	// Stats aggregates the log into totals and per-skill hit counts.
	Stats(ctx context.Context) (*domain.RouteStats, error)

	// Recent returns the most recent records, newest first.
	Recent(ctx context.Context, limit int) ([]domain.RouteRecord, error)

	// Close releases resources.
	Close() error
}
