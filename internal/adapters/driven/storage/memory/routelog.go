// Package memory provides in-memory implementations of driven ports.
//
// The route log here backs installations that disable persistent logging:
// stats survive for the lifetime of the process only. The config store
// exists for tests that need configuration without touching disk.
package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driven"
)

// Ensure RouteLog implements the interface.
var _ driven.RouteLogStore = (*RouteLog)(nil)

// RouteLog is an in-memory implementation of driven.RouteLogStore.
type RouteLog struct {
	mu      sync.RWMutex
	records []domain.RouteRecord
	hits    map[string]int
}

// NewRouteLog creates a new in-memory route log.
func NewRouteLog() *RouteLog {
	return &RouteLog{
		hits: make(map[string]int),
	}
}

// Record appends one routing decision.
func (l *RouteLog) Record(_ context.Context, rec *domain.RouteRecord) error {
	l.mu.Lock()
	defer l.mu.Unlock()

	stored := *rec
	if stored.CreatedAt.IsZero() {
		stored.CreatedAt = time.Now().UTC()
	}
	stored.SkillIDs = append([]string(nil), rec.SkillIDs...)

	l.records = append(l.records, stored)
	for _, skillID := range stored.SkillIDs {
		l.hits[skillID]++
	}
	return nil
}

// Stats aggregates the log into totals and per-skill hit counts.
func (l *RouteLog) Stats(_ context.Context) (*domain.RouteStats, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	stats := &domain.RouteStats{TotalQueries: len(l.records)}
	for _, rec := range l.records {
		switch rec.Outcome {
		case domain.OutcomeResolved:
			stats.Resolved++
		case domain.OutcomeFallback:
			stats.Fallbacks++
		}
	}

	stats.TopSkills = make([]domain.SkillHits, 0, len(l.hits))
	for skillID, hits := range l.hits {
		stats.TopSkills = append(stats.TopSkills, domain.SkillHits{SkillID: skillID, Hits: hits})
	}
	sort.Slice(stats.TopSkills, func(i, j int) bool {
		if stats.TopSkills[i].Hits != stats.TopSkills[j].Hits {
			return stats.TopSkills[i].Hits > stats.TopSkills[j].Hits
		}
		return stats.TopSkills[i].SkillID < stats.TopSkills[j].SkillID
	})

	return stats, nil
}

// Recent returns the most recent records, newest first.
func (l *RouteLog) Recent(_ context.Context, limit int) ([]domain.RouteRecord, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if limit <= 0 || limit > len(l.records) {
		limit = len(l.records)
	}

	recent := make([]domain.RouteRecord, 0, limit)
	for i := len(l.records) - 1; i >= 0 && len(recent) < limit; i-- {
		recent = append(recent, l.records[i])
	}
	return recent, nil
}

// Close releases resources (no-op for memory log).
func (l *RouteLog) Close() error {
	return nil
}
