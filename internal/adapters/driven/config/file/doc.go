// Package file provides the TOML-backed configuration store.
//
// Configuration lives in ~/.skilldex/config.toml by default. Nested TOML
// tables are flattened to dot-notation keys on load, so callers address
// settings uniformly: "skills_dir", "route.limit", "log.enabled".
package file
