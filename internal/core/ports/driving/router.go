package driving

import (
	"context"

	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
)

// RouterService answers natural-language queries with ranked skills.
type RouterService interface {
	// Route matches the query against every skill's trigger keywords
	// and returns matches ranked by the number of distinct keywords
	// hit, declaration order breaking ties. A query that matches
	// nothing (or is empty) yields the root entry as a single
	// fallback match, so the result is never empty.
	Route(ctx context.Context, query string, opts domain.RouteOptions) ([]domain.Match, error)
}
