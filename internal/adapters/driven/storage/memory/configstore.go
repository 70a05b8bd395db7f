package memory

import (
	"sync"

	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore holds settings in a map with no persistence. The CLI
// falls back to it when the config directory cannot be used, so a
// read-only home directory degrades to per-invocation settings
// instead of a startup failure. Tests inject it to avoid touching
// the filesystem.
type ConfigStore struct {
	mu      sync.RWMutex
	entries map[string]any
}

// NewConfigStore returns an empty in-memory settings store.
func NewConfigStore() *ConfigStore {
	return &ConfigStore{entries: make(map[string]any)}
}

func (s *ConfigStore) value(key string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.entries[key]
}

// Get returns the raw value for key and whether it is set.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.entries[key]
	return v, ok
}

// GetString returns the string under key, or "".
func (s *ConfigStore) GetString(key string) string {
	str, _ := s.value(key).(string)
	return str
}

// GetInt returns the integer under key, or 0. Values set as int64 or
// float64 are coerced so callers see the same behaviour as the
// TOML-backed store.
func (s *ConfigStore) GetInt(key string) int {
	switch v := s.value(key).(type) {
	case int:
		return v
	case int64:
		return int(v)
	case float64:
		return int(v)
	}
	return 0
}

// GetBool returns the boolean under key, or false.
func (s *ConfigStore) GetBool(key string) bool {
	b, _ := s.value(key).(bool)
	return b
}

// Set stores value under key. It never fails.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries[key] = value
	return nil
}

// Save is a no-op; nothing outlives the process.
func (s *ConfigStore) Save() error { return nil }

// Load is a no-op; the store starts empty and stays in memory.
func (s *ConfigStore) Load() error { return nil }

// Path reports the sentinel ":memory:" since there is no backing file.
func (s *ConfigStore) Path() string { return ":memory:" }
