package driving

import (
	"context"

	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
)

// StatsService reports on recorded routing activity.
type StatsService interface {
	// Stats aggregates the route log.
	Stats(ctx context.Context) (*domain.RouteStats, error)

	// Recent returns the latest routing decisions, newest first.
	Recent(ctx context.Context, limit int) ([]domain.RouteRecord, error)
}
