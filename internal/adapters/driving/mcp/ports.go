package mcp

import (
	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Router resolves queries to ranked skills.
	Router driving.RouterService

	// Content loads skill document bodies.
	Content driving.ContentService

	// Catalog exposes the loaded skill catalog.
	Catalog driving.CatalogService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Router == nil {
		return ErrMissingRouterService
	}
	if p.Content == nil {
		return ErrMissingContentService
	}
	// Catalog is optional: without it the skills resource lists nothing
	// and match titles fall back to skill IDs.
	return nil
}
