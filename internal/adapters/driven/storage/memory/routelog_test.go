package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
)

func logRecord(id string, outcome domain.RouteOutcome, skillIDs ...string) *domain.RouteRecord {
	return &domain.RouteRecord{
		ID:        id,
		Query:     "query " + id,
		Outcome:   outcome,
		SkillIDs:  skillIDs,
		CreatedAt: time.Now().UTC(),
	}
}

// TestRouteLog_RecordAndRecent tests records come back newest first
func TestRouteLog_RecordAndRecent(t *testing.T) {
	log := NewRouteLog()
	ctx := context.Background()

	require.NoError(t, log.Record(ctx, logRecord("r1", domain.OutcomeResolved, "fee-delegation")))
	require.NoError(t, log.Record(ctx, logRecord("r2", domain.OutcomeResolved, "multi-clause")))
	require.NoError(t, log.Record(ctx, logRecord("r3", domain.OutcomeFallback, "getting-started")))

	recent, err := log.Recent(ctx, 2)

	require.NoError(t, err)
	require.Len(t, recent, 2)
	assert.Equal(t, "r3", recent[0].ID)
	assert.Equal(t, "r2", recent[1].ID)
}

// TestRouteLog_Recent_ZeroLimitReturnsAll tests a non-positive limit means everything
func TestRouteLog_Recent_ZeroLimitReturnsAll(t *testing.T) {
	log := NewRouteLog()
	ctx := context.Background()

	require.NoError(t, log.Record(ctx, logRecord("r1", domain.OutcomeResolved, "fee-delegation")))
	require.NoError(t, log.Record(ctx, logRecord("r2", domain.OutcomeFallback, "getting-started")))

	recent, err := log.Recent(ctx, 0)

	require.NoError(t, err)
	assert.Len(t, recent, 2)
}

// TestRouteLog_Record_CopiesInput tests later caller mutation cannot corrupt the log
func TestRouteLog_Record_CopiesInput(t *testing.T) {
	log := NewRouteLog()
	ctx := context.Background()

	rec := logRecord("r1", domain.OutcomeResolved, "fee-delegation")
	require.NoError(t, log.Record(ctx, rec))
	rec.SkillIDs[0] = "mutated"

	recent, err := log.Recent(ctx, 1)

	require.NoError(t, err)
	assert.Equal(t, []string{"fee-delegation"}, recent[0].SkillIDs)
}

// TestRouteLog_Stats tests outcome totals and the hit leaderboard
func TestRouteLog_Stats(t *testing.T) {
	log := NewRouteLog()
	ctx := context.Background()

	require.NoError(t, log.Record(ctx, logRecord("r1", domain.OutcomeResolved, "fee-delegation")))
	require.NoError(t, log.Record(ctx, logRecord("r2", domain.OutcomeResolved, "fee-delegation", "multi-clause")))
	require.NoError(t, log.Record(ctx, logRecord("r3", domain.OutcomeFallback, "getting-started")))

	stats, err := log.Stats(ctx)

	require.NoError(t, err)
	assert.Equal(t, 3, stats.TotalQueries)
	assert.Equal(t, 2, stats.Resolved)
	assert.Equal(t, 1, stats.Fallbacks)
	require.Len(t, stats.TopSkills, 3)
	assert.Equal(t, domain.SkillHits{SkillID: "fee-delegation", Hits: 2}, stats.TopSkills[0])
}

// TestRouteLog_Stats_TiesBreakAlphabetically tests deterministic leaderboard order
func TestRouteLog_Stats_TiesBreakAlphabetically(t *testing.T) {
	log := NewRouteLog()
	ctx := context.Background()

	require.NoError(t, log.Record(ctx, logRecord("r1", domain.OutcomeResolved, "multi-clause", "fee-delegation")))

	stats, err := log.Stats(ctx)

	require.NoError(t, err)
	require.Len(t, stats.TopSkills, 2)
	assert.Equal(t, "fee-delegation", stats.TopSkills[0].SkillID)
	assert.Equal(t, "multi-clause", stats.TopSkills[1].SkillID)
}

// TestRouteLog_Stats_Empty tests an untouched log reports zeros
func TestRouteLog_Stats_Empty(t *testing.T) {
	stats, err := NewRouteLog().Stats(context.Background())

	require.NoError(t, err)
	assert.Equal(t, 0, stats.TotalQueries)
	assert.Empty(t, stats.TopSkills)
}

// TestRouteLog_Close tests closing is a safe no-op
func TestRouteLog_Close(t *testing.T) {
	log := NewRouteLog()
	assert.NoError(t, log.Close())
}
