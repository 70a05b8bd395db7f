package driven

import "github.com/skilldex-labs/skilldex-cli/internal/core/domain"

// RegistryProvider yields the current catalog snapshot.
//
// The catalog service implements this: it swaps in a fresh registry on
// reload, and consumers always see a complete, validated snapshot.
// Returns nil before the first successful load.
type RegistryProvider interface {
	Registry() *domain.Registry
}
