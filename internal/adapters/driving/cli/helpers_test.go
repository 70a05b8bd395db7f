package cli

import (
	"context"
	"fmt"
	"time"

	"github.com/skilldex-labs/skilldex-cli/internal/adapters/driven/storage/memory"
	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driven"
	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driving"
)

// Shared test doubles for the command tests. setupTestServices swaps
// the package-level services for deterministic in-memory fakes and
// returns a cleanup that restores the previous wiring.

// testSkills is the catalog the fakes serve.
func testSkills() []domain.Skill {
	return []domain.Skill{
		{
			ID:       "index",
			Title:    "Getting Started",
			Keywords: []string{"overview"},
			Path:     "index.md",
			Root:     true,
			Order:    0,
		},
		{
			ID:          "fee-delegation",
			Title:       "Fee Delegation",
			Description: "Sponsor transaction fees for your users",
			Keywords:    []string{"gasless", "sponsor", "fee delegation"},
			Path:        "fee-delegation.md",
			Order:       1,
		},
		{
			ID:       "multi-clause",
			Title:    "Multi-Clause Transactions",
			Keywords: []string{"batch", "atomic"},
			Path:     "multi-clause.md",
			Order:    2,
		},
	}
}

type fakeRouter struct{}

func (f *fakeRouter) Route(_ context.Context, query string, opts domain.RouteOptions) ([]domain.Match, error) {
	skills := testSkills()

	if query == "deploy with ansible" {
		// Nothing matches: the entry point steps in.
		return []domain.Match{
			{Skill: skills[0], Fallback: true},
		}, nil
	}

	matches := []domain.Match{
		{Skill: skills[1], MatchedKeywords: []string{"gasless"}, Score: 1},
		{Skill: skills[2], MatchedKeywords: []string{"batch"}, Score: 1},
	}
	if opts.Limit > 0 && len(matches) > opts.Limit {
		matches = matches[:opts.Limit]
	}
	return matches, nil
}

type fakeContent struct{}

func (f *fakeContent) GetContent(_ context.Context, id string) (string, error) {
	for _, s := range testSkills() {
		if s.ID == id {
			return "# " + s.Title + "\n\nBody of " + id + ".\n", nil
		}
	}
	return "", fmt.Errorf("skill %s: %w", id, domain.ErrNotFound)
}

type fakeCatalog struct{}

func (f *fakeCatalog) List(_ context.Context) ([]domain.Skill, error) {
	return testSkills(), nil
}

func (f *fakeCatalog) Get(_ context.Context, id string) (domain.Skill, error) {
	for _, s := range testSkills() {
		if s.ID == id {
			return s, nil
		}
	}
	return domain.Skill{}, fmt.Errorf("skill %s: %w", id, domain.ErrNotFound)
}

func (f *fakeCatalog) Root(_ context.Context) (domain.Skill, error) {
	return testSkills()[0], nil
}

func (f *fakeCatalog) Reload(_ context.Context) error {
	return nil
}

func (f *fakeCatalog) Validate(_ context.Context) ([]driving.Issue, error) {
	return nil, nil
}

type fakeStats struct{}

func (f *fakeStats) Stats(_ context.Context) (*domain.RouteStats, error) {
	return &domain.RouteStats{
		TotalQueries: 10,
		Resolved:     8,
		Fallbacks:    2,
		TopSkills: []domain.SkillHits{
			{SkillID: "fee-delegation", Hits: 6},
			{SkillID: "multi-clause", Hits: 3},
		},
	}, nil
}

func (f *fakeStats) Recent(_ context.Context, limit int) ([]domain.RouteRecord, error) {
	records := []domain.RouteRecord{
		{
			ID:        "rec-1",
			Query:     "gasless onboarding",
			Outcome:   domain.OutcomeResolved,
			SkillIDs:  []string{"fee-delegation"},
			CreatedAt: time.Date(2025, 6, 1, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:        "rec-2",
			Query:     "deploy with ansible",
			Outcome:   domain.OutcomeFallback,
			SkillIDs:  []string{"index"},
			CreatedAt: time.Date(2025, 6, 1, 9, 30, 0, 0, time.UTC),
		},
	}
	if limit > 0 && len(records) > limit {
		records = records[:limit]
	}
	return records, nil
}

type fakeFetcher struct{}

func (f *fakeFetcher) Fetch(_ context.Context, _ driven.PackRef, _ string) (*driven.FetchResult, error) {
	return &driven.FetchResult{
		Files:   []string{"index.md", "fee-delegation.md"},
		Skipped: 1,
	}, nil
}

// setupTestServices wires the fakes and returns a cleanup restoring
// the previous services.
func setupTestServices() func() {
	oldCatalog := catalogService
	oldRouter := routerService
	oldContent := contentService
	oldStats := statsService
	oldConfig := configStore
	oldFetcher := packFetcher
	oldCatalogErr := catalogErr

	catalogService = &fakeCatalog{}
	routerService = &fakeRouter{}
	contentService = &fakeContent{}
	statsService = &fakeStats{}
	configStore = memory.NewConfigStore()
	packFetcher = &fakeFetcher{}
	catalogErr = nil

	return func() {
		catalogService = oldCatalog
		routerService = oldRouter
		contentService = oldContent
		statsService = oldStats
		configStore = oldConfig
		packFetcher = oldFetcher
		catalogErr = oldCatalogErr
	}
}
