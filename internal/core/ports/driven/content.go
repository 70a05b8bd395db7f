package driven

import (
	"context"

	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
)

// ContentStore reads document text for catalog entries.
type ContentStore interface {
	// Read returns the document body for the skill, with any metadata
	// preamble stripped. Failures wrap the underlying I/O error and
	// carry the skill ID and path.
	Read(ctx context.Context, skill domain.Skill) (string, error)

	// Stat verifies the skill's document exists and is readable,
	// without reading it. Catalog loading probes every entry this way
	// so a broken path is caught at startup, not at first use.
	Stat(ctx context.Context, skill domain.Skill) error
}
