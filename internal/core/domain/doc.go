// Package domain holds the entities the rest of Skilldex is built
// around. It sits at the centre of the hexagonal architecture and
// imports nothing beyond the standard library; services and adapters
// depend on it, never the reverse.
//
// The types:
//
//   - Skill: a catalog entry describing one Markdown document
//   - Registry: an immutable, validated skill catalog
//   - Match: a routed skill with its relevance evidence
//   - RouteRecord / RouteStats: logged routing decisions and their rollup
//
// Catalog validation lives here too: NewRegistry rejects duplicate,
// malformed or unreachable entries, so every registry the services
// hold is known good.
package domain
