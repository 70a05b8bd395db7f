package services

import (
	"context"
	"errors"

	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driven"
	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driving"
	"github.com/skilldex-labs/skilldex-cli/internal/logger"
)

// Ensure ContentService implements the interface.
var _ driving.ContentService = (*ContentService)(nil)

// ContentService resolves skill IDs to document text.
type ContentService struct {
	catalog driven.RegistryProvider
	store   driven.ContentStore
}

// NewContentService creates a new content service.
func NewContentService(catalog driven.RegistryProvider, store driven.ContentStore) *ContentService {
	return &ContentService{
		catalog: catalog,
		store:   store,
	}
}

// GetContent returns the full document body for a skill. The text is
// read from disk on every call rather than cached: corpora are small,
// and a stale body after an edit would be worse than the extra read.
func (s *ContentService) GetContent(ctx context.Context, id string) (string, error) {
	reg := s.catalog.Registry()
	if reg == nil {
		return "", errors.New("catalog not loaded")
	}

	skill, err := reg.Get(id)
	if err != nil {
		return "", err
	}

	text, err := s.store.Read(ctx, skill)
	if err != nil {
		return "", err
	}

	logger.Debug("Loaded %q (%d bytes)", skill.ID, len(text))
	return text, nil
}
