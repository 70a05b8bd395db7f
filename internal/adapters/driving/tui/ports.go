// Package tui provides an interactive terminal user interface for skilldex.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driving"
)

// Ports aggregates the driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Router answers queries with ranked skills.
	Router driving.RouterService

	// Content loads skill document text on demand.
	Content driving.ContentService

	// Catalog is optional: without it the browse screen and the skill
	// count in the header are unavailable.
	Catalog driving.CatalogService
}

// NewPorts creates a new Ports aggregate with the given services.
func NewPorts(
	router driving.RouterService,
	content driving.ContentService,
	catalog driving.CatalogService,
) *Ports {
	return &Ports{
		Router:  router,
		Content: content,
		Catalog: catalog,
	}
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
	return nil
}
