package domain

import "errors"

// Domain errors represent catalog and routing failures.
// Configuration problems surface at registry construction so a broken
// corpus is rejected before it can serve a single query. Infrastructure
// errors are wrapped by the adapters that raise them.
var (
	// ErrNotFound indicates a requested skill does not exist.
	ErrNotFound = errors.New("skill not found")

	// ErrEmptyCatalog indicates the corpus produced no entries at all.
	ErrEmptyCatalog = errors.New("catalog contains no skills")

	// ErrDuplicateSkill indicates two entries declared the same ID.
	ErrDuplicateSkill = errors.New("duplicate skill id")

	// ErrInvalidSkill indicates an entry that fails structural validation.
	ErrInvalidSkill = errors.New("invalid skill")

	// ErrMissingKeywords indicates a non-root entry with no trigger keywords.
	// Such a skill could never be routed to.
	ErrMissingKeywords = errors.New("skill has no trigger keywords")

	// ErrNoRootSkill indicates no entry is marked as the fallback root.
	ErrNoRootSkill = errors.New("catalog has no root skill")

	// ErrMultipleRoots indicates more than one entry is marked as root.
	ErrMultipleRoots = errors.New("catalog has multiple root skills")

	// ErrLogUnavailable indicates no route log store is configured.
	// Routing works without one; stats reporting does not.
	ErrLogUnavailable = errors.New("route log unavailable")
)
