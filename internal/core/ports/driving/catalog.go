package driving

import (
	"context"

	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
)

// CatalogService manages the loaded skill catalog.
type CatalogService interface {
	// List returns every skill in declaration order.
	List(ctx context.Context) ([]domain.Skill, error)

	// Get retrieves a skill by ID.
	Get(ctx context.Context, id string) (domain.Skill, error)

	// Root returns the designated fallback entry.
	Root(ctx context.Context) (domain.Skill, error)

	// Reload re-reads the corpus and atomically swaps in the new
	// catalog. On failure the previous catalog stays in service.
	Reload(ctx context.Context) error

	// Validate checks the corpus without touching the live catalog
	// and reports every problem found, not just the first.
	Validate(ctx context.Context) ([]Issue, error)
}

// Issue is one problem found during catalog validation.
type Issue struct {
	// SkillID identifies the affected entry, when known.
	SkillID string

	// Path is the file the issue was found in, when known.
	Path string

	// Problem describes what is wrong.
	Problem string

	// Fatal is true when the issue would prevent the catalog from
	// loading at all.
	Fatal bool
}
