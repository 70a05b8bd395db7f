package driven

// ConfigStore reads and writes persistent CLI settings.
//
// Keys are flat, dot-separated strings. The keys the CLI understands:
//
//	skills_dir    corpus directory (overridden by --skills-dir)
//	route.limit   default number of matches the route command prints
//	log.enabled   whether routes are recorded for stats
//	github.token  token used when fetching private skill packs
//
// Unknown keys round-trip untouched so older binaries do not destroy
// settings written by newer ones. The file-backed implementation
// persists to TOML; the in-memory one backs tests and degraded runs
// where the config directory is unwritable.
type ConfigStore interface {
	// Get returns the raw value for key and whether it is set.
	Get(key string) (any, bool)

	// GetString returns the value for key, or "" when unset or not a string.
	GetString(key string) string

	// GetInt returns the value for key, or 0 when unset. TOML decodes
	// numbers as int64, so implementations coerce numeric types.
	GetInt(key string) int

	// GetBool returns the value for key, or false when unset or not a bool.
	GetBool(key string) bool

	// Set stores a value under key and persists it immediately.
	Set(key string, value any) error

	// Save writes the current settings to backing storage.
	Save() error

	// Load replaces the current settings with those in backing storage.
	// A missing file is not an error; it loads as empty.
	Load() error

	// Path identifies the backing storage for display in diagnostics.
	Path() string
}
