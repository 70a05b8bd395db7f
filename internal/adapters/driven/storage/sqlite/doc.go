// Package sqlite provides a SQLite-backed implementation of the route log.
//
// This adapter uses modernc.org/sqlite, a pure Go SQLite implementation that
// requires no CGO, enabling easy cross-compilation. It persists two tables:
//
//   - route_log: one row per routing decision, with the ranked skill IDs
//     stored as a JSON array
//   - skill_hits: per-skill counters updated in the same transaction, so
//     leaderboard queries never scan the full log
//
// # Schema
//
// The database schema is managed through versioned migrations stored in the
// migrations/ directory. Each migration is a pair of .up.sql and .down.sql
// files.
//
// # Data Location
//
// By default, the database is stored at ~/.skilldex/data/routes.db
//
// # Thread Safety
//
// All operations are thread-safe. The store uses database-level locking
// provided by SQLite in WAL mode.
package sqlite
