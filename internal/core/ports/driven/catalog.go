package driven

import (
	"context"

	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
)

// CatalogSource discovers skill entries in an underlying corpus.
// Each source type (directory scan, remote pack, etc.) implements this.
type CatalogSource interface {
	// Load parses the corpus and returns entries in declaration order.
	// The order is significant: routing breaks ranking ties with it.
	// Load returns raw entries; registry validation happens in core.
	Load(ctx context.Context) ([]domain.Skill, error)

	// Location describes where the corpus lives, for logs and errors.
	Location() string
}

// CatalogWatcher is implemented by sources that can report corpus changes.
// Long-running surfaces use it to reload the catalog without restarting.
type CatalogWatcher interface {
	// Watch emits an event each time the underlying corpus changes.
	// Bursts of filesystem activity are debounced into a single event.
	// The channel closes when ctx is cancelled.
	Watch(ctx context.Context) (<-chan struct{}, error)
}
