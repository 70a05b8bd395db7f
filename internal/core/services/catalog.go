package services

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driven"
	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driving"
	"github.com/skilldex-labs/skilldex-cli/internal/logger"
)

// Ensure CatalogService implements the interfaces.
var (
	_ driving.CatalogService  = (*CatalogService)(nil)
	_ driven.RegistryProvider = (*CatalogService)(nil)
)

// CatalogService owns the loaded skill catalog and its lifecycle.
//
// The catalog is held as an immutable registry snapshot behind a
// read-write mutex. Reload builds a complete replacement first and
// swaps it in atomically, so readers never observe a half-loaded
// catalog and a failed reload leaves the previous one in service.
type CatalogService struct {
	source  driven.CatalogSource
	content driven.ContentStore

	mu       sync.RWMutex
	registry *domain.Registry
	loadedAt time.Time
}

// NewCatalogService creates a new catalog service.
// The content parameter is optional (can be nil); document probing
// during load and validation is then skipped.
func NewCatalogService(source driven.CatalogSource, content driven.ContentStore) *CatalogService {
	return &CatalogService{
		source:  source,
		content: content,
	}
}

// Load reads the corpus, validates it and makes it the live catalog.
// Call once at startup; use Reload to refresh afterwards.
func (s *CatalogService) Load(ctx context.Context) error {
	reg, err := s.build(ctx)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.registry = reg
	s.loadedAt = time.Now()
	s.mu.Unlock()

	logger.Info("Catalog loaded: %d skill(s) from %s", reg.Len(), s.source.Location())
	return nil
}

// Reload re-reads the corpus and atomically swaps in the new catalog.
// On failure the previous catalog stays in service and the error is
// returned.
func (s *CatalogService) Reload(ctx context.Context) error {
	reg, err := s.build(ctx)
	if err != nil {
		logger.Warn("Catalog reload failed, keeping previous catalog: %v", err)
		return err
	}

	s.mu.Lock()
	s.registry = reg
	s.loadedAt = time.Now()
	s.mu.Unlock()

	logger.Info("Catalog reloaded: %d skill(s)", reg.Len())
	return nil
}

// build loads entries and runs full validation, including a
// readability probe of every document.
func (s *CatalogService) build(ctx context.Context) (*domain.Registry, error) {
	entries, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", s.source.Location(), err)
	}

	reg, err := domain.NewRegistry(entries)
	if err != nil {
		return nil, fmt.Errorf("invalid catalog at %s: %w", s.source.Location(), err)
	}

	if s.content != nil {
		for _, skill := range reg.Skills() {
			if err := s.content.Stat(ctx, skill); err != nil {
				return nil, fmt.Errorf("invalid catalog at %s: %w", s.source.Location(), err)
			}
		}
	}

	return reg, nil
}

// Registry returns the current snapshot, nil before the first Load.
func (s *CatalogService) Registry() *domain.Registry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.registry
}

// LoadedAt returns when the current catalog was installed.
func (s *CatalogService) LoadedAt() time.Time {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loadedAt
}

func (s *CatalogService) snapshot() (*domain.Registry, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.registry == nil {
		return nil, errors.New("catalog not loaded")
	}
	return s.registry, nil
}

// List returns every skill in declaration order.
func (s *CatalogService) List(_ context.Context) ([]domain.Skill, error) {
	reg, err := s.snapshot()
	if err != nil {
		return nil, err
	}
	return reg.Skills(), nil
}

// Get retrieves a skill by ID.
func (s *CatalogService) Get(_ context.Context, id string) (domain.Skill, error) {
	reg, err := s.snapshot()
	if err != nil {
		return domain.Skill{}, err
	}
	return reg.Get(id)
}

// Root returns the designated fallback entry.
func (s *CatalogService) Root(_ context.Context) (domain.Skill, error) {
	reg, err := s.snapshot()
	if err != nil {
		return domain.Skill{}, err
	}
	return reg.Root(), nil
}

// Validate checks the corpus without touching the live catalog.
// Unlike Load it keeps going after the first problem, so a broken
// corpus is reported in full rather than one error at a time.
func (s *CatalogService) Validate(ctx context.Context) ([]driving.Issue, error) {
	entries, err := s.source.Load(ctx)
	if err != nil {
		return nil, fmt.Errorf("load catalog from %s: %w", s.source.Location(), err)
	}

	var issues []driving.Issue
	if len(entries) == 0 {
		issues = append(issues, driving.Issue{
			Problem: "catalog contains no skills",
			Fatal:   true,
		})
		return issues, nil
	}

	seenIDs := make(map[string]string, len(entries))
	keywordOwners := make(map[string][]string)
	var roots []string

	for _, e := range entries {
		id := strings.TrimSpace(e.ID)

		if !domain.ValidID(id) {
			issues = append(issues, driving.Issue{
				SkillID: id,
				Path:    e.Path,
				Problem: fmt.Sprintf("id %q is not lowercase kebab-case", id),
				Fatal:   true,
			})
			continue
		}

		if firstPath, ok := seenIDs[id]; ok {
			issues = append(issues, driving.Issue{
				SkillID: id,
				Path:    e.Path,
				Problem: fmt.Sprintf("duplicate id, first declared in %s", firstPath),
				Fatal:   true,
			})
			continue
		}
		seenIDs[id] = e.Path

		if e.Root {
			roots = append(roots, id)
		}

		hasKeyword := false
		for _, k := range e.Keywords {
			k = strings.Join(strings.Fields(strings.ToLower(k)), " ")
			if k == "" {
				continue
			}
			hasKeyword = true
			keywordOwners[k] = append(keywordOwners[k], id)
		}
		if !hasKeyword && !e.Root {
			issues = append(issues, driving.Issue{
				SkillID: id,
				Path:    e.Path,
				Problem: "no trigger keywords, skill can never be routed to",
				Fatal:   true,
			})
		}

		if s.content != nil {
			if err := s.content.Stat(ctx, e); err != nil {
				issues = append(issues, driving.Issue{
					SkillID: id,
					Path:    e.Path,
					Problem: fmt.Sprintf("document unreadable: %v", err),
					Fatal:   true,
				})
			}
		}
	}

	switch len(roots) {
	case 0:
		issues = append(issues, driving.Issue{
			Problem: "no root skill, mark exactly one entry as root",
			Fatal:   true,
		})
	case 1:
		// Exactly one root, nothing to report.
	default:
		issues = append(issues, driving.Issue{
			Problem: fmt.Sprintf("multiple root skills: %s", strings.Join(roots, ", ")),
			Fatal:   true,
		})
	}

	// Shared keywords are legal but usually unintentional: an exclusive
	// trigger stops ranking from splitting between topics.
	shared := make([]string, 0, len(keywordOwners))
	for k, owners := range keywordOwners {
		if len(owners) > 1 {
			shared = append(shared, k)
		}
	}
	sort.Strings(shared)
	for _, k := range shared {
		issues = append(issues, driving.Issue{
			Problem: fmt.Sprintf("keyword %q declared by %s", k, strings.Join(keywordOwners[k], ", ")),
		})
	}

	return issues, nil
}
