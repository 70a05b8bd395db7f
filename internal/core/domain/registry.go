package domain

import (
	"fmt"
	"regexp"
	"strings"
)

// idPattern constrains skill IDs to lowercase kebab-case.
var idPattern = regexp.MustCompile(`^[a-z0-9]+(?:-[a-z0-9]+)*$`)

// ValidID reports whether id is acceptable as a skill identifier.
func ValidID(id string) bool {
	return idPattern.MatchString(id)
}

// Registry is an immutable, validated skill catalog. Entries keep their
// declaration order, which routing uses to break ranking ties.
//
// Construct one with NewRegistry; the zero value is empty and unusable.
type Registry struct {
	skills []Skill
	byID   map[string]int
	root   int
}

// NewRegistry validates entries and builds a registry from them.
//
// Validation enforces the catalog contract up front: at least one entry,
// unique kebab-case IDs, trigger keywords on every non-root entry, and
// exactly one root. Keywords are lowercased and de-duplicated so matching
// can stay case-insensitive without re-normalising per query. The input
// slice is copied; callers may reuse it.
func NewRegistry(entries []Skill) (*Registry, error) {
	if len(entries) == 0 {
		return nil, ErrEmptyCatalog
	}

	skills := make([]Skill, len(entries))
	copy(skills, entries)

	byID := make(map[string]int, len(skills))
	root := -1
	for i := range skills {
		s := &skills[i]
		s.Order = i
		s.ID = strings.TrimSpace(s.ID)

		if !idPattern.MatchString(s.ID) {
			return nil, fmt.Errorf("%w: id %q is not lowercase kebab-case", ErrInvalidSkill, s.ID)
		}
		if prev, ok := byID[s.ID]; ok {
			return nil, fmt.Errorf("%w: %q declared at positions %d and %d", ErrDuplicateSkill, s.ID, prev, i)
		}
		byID[s.ID] = i

		s.Keywords = normaliseKeywords(s.Keywords)
		if len(s.Keywords) == 0 && !s.Root {
			return nil, fmt.Errorf("%w: %q", ErrMissingKeywords, s.ID)
		}

		if s.Root {
			if root >= 0 {
				return nil, fmt.Errorf("%w: %q and %q", ErrMultipleRoots, skills[root].ID, s.ID)
			}
			root = i
		}
	}

	if root < 0 {
		return nil, fmt.Errorf("%w: mark exactly one entry as root", ErrNoRootSkill)
	}

	return &Registry{skills: skills, byID: byID, root: root}, nil
}

// normaliseKeywords lowercases, trims and de-duplicates keywords,
// preserving first-seen order. Inner whitespace collapses to single
// spaces so phrase keywords compare predictably.
func normaliseKeywords(keywords []string) []string {
	out := make([]string, 0, len(keywords))
	seen := make(map[string]struct{}, len(keywords))
	for _, k := range keywords {
		k = strings.Join(strings.Fields(strings.ToLower(k)), " ")
		if k == "" {
			continue
		}
		if _, ok := seen[k]; ok {
			continue
		}
		seen[k] = struct{}{}
		out = append(out, k)
	}
	return out
}

// Get returns the skill with the given ID. Lookup ignores case and
// surrounding whitespace.
func (r *Registry) Get(id string) (Skill, error) {
	i, ok := r.byID[strings.ToLower(strings.TrimSpace(id))]
	if !ok {
		return Skill{}, fmt.Errorf("skill %q: %w", id, ErrNotFound)
	}
	return r.skills[i], nil
}

// Root returns the designated fallback entry.
func (r *Registry) Root() Skill {
	return r.skills[r.root]
}

// Skills returns every entry in declaration order. The returned slice
// is a copy; mutating it does not affect the registry.
func (r *Registry) Skills() []Skill {
	out := make([]Skill, len(r.skills))
	copy(out, r.skills)
	return out
}

// Len returns the number of registered skills.
func (r *Registry) Len() int {
	return len(r.skills)
}
