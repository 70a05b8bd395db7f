// Package driven declares the interfaces the core services call out
// through: the "driven" side of the hexagon. Adapters under
// internal/adapters/driven implement them; services never import an
// adapter directly, so infrastructure swaps without touching routing
// logic.
//
// Three interfaces must be wired before the application can answer a
// single query:
//
//   - CatalogSource: discovers skill entries in a corpus
//   - ContentStore: reads skill document text
//   - RegistryProvider: yields the current catalog snapshot
//
// The rest may be nil, and the CLI degrades rather than failing:
//
//   - RouteLogStore: persists routing decisions. Without it routing
//     still works but `skilldex stats` has nothing to report.
//   - CatalogWatcher: pushes corpus change events. Without it
//     long-running surfaces serve the catalog loaded at startup.
//   - PackFetcher: downloads remote skill packs. Only `skilldex fetch`
//     needs one.
//   - ConfigStore: persistent CLI settings.
//
// This package imports domain and nothing else.
package driven
