package services

import (
	"context"

	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driven"
	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driving"
)

// Ensure StatsService implements the interface.
var _ driving.StatsService = (*StatsService)(nil)

// StatsService reports on recorded routing activity.
type StatsService struct {
	routeLog driven.RouteLogStore
}

// NewStatsService creates a new stats service.
// The routeLog parameter is optional (can be nil); both methods then
// report domain.ErrLogUnavailable.
func NewStatsService(routeLog driven.RouteLogStore) *StatsService {
	return &StatsService{routeLog: routeLog}
}

// Stats aggregates the route log.
func (s *StatsService) Stats(ctx context.Context) (*domain.RouteStats, error) {
	if s.routeLog == nil {
		return nil, domain.ErrLogUnavailable
	}
	return s.routeLog.Stats(ctx)
}

// Recent returns the latest routing decisions, newest first.
func (s *StatsService) Recent(ctx context.Context, limit int) ([]domain.RouteRecord, error) {
	if s.routeLog == nil {
		return nil, domain.ErrLogUnavailable
	}
	return s.routeLog.Recent(ctx, limit)
}
