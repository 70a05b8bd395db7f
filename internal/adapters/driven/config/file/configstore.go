package file

import (
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/pelletier/go-toml/v2"

	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driven"
)

var _ driven.ConfigStore = (*ConfigStore)(nil)

// ConfigStore persists CLI settings to a TOML file. Nested tables are
// flattened to dot-notation keys on load, so "[route]\nlimit = 3" and
// a literal "route.limit" key read the same way. Writes go through Set
// or Save and land on disk immediately; there is no dirty state to
// lose on a killed process.
type ConfigStore struct {
	mu     sync.RWMutex
	path   string
	values map[string]any
}

// NewConfigStore opens (or creates) the settings file under configDir,
// defaulting to ~/.skilldex when configDir is empty. The directory is
// created if needed; a missing file starts the store empty.
func NewConfigStore(configDir string) (*ConfigStore, error) {
	if configDir == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolving home directory: %w", err)
		}
		configDir = filepath.Join(home, ".skilldex")
	}
	if err := os.MkdirAll(configDir, 0700); err != nil {
		return nil, fmt.Errorf("creating config directory: %w", err)
	}

	s := &ConfigStore{
		path:   filepath.Join(configDir, "config.toml"),
		values: make(map[string]any),
	}
	if err := s.Load(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *ConfigStore) value(key string) any {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.values[key]
}

// Get returns the raw value for key and whether it is set.
func (s *ConfigStore) Get(key string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	v, ok := s.values[key]
	return v, ok
}

// GetString returns the string under key, or "".
func (s *ConfigStore) GetString(key string) string {
	str, _ := s.value(key).(string)
	return str
}

// GetInt returns the integer under key, or 0. go-toml decodes numbers
// as int64, so both widths are accepted.
func (s *ConfigStore) GetInt(key string) int {
	switch v := s.value(key).(type) {
	case int64:
		return int(v)
	case int:
		return v
	}
	return 0
}

// GetBool returns the boolean under key, or false.
func (s *ConfigStore) GetBool(key string) bool {
	b, _ := s.value(key).(bool)
	return b
}

// Set stores value under key and writes the file through.
func (s *ConfigStore) Set(key string, value any) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[key] = value
	return s.write()
}

// Save writes the current settings to disk.
func (s *ConfigStore) Save() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write()
}

// write marshals and writes the file. Caller holds the lock.
func (s *ConfigStore) write() error {
	out, err := toml.Marshal(s.values)
	if err != nil {
		return fmt.Errorf("encoding config: %w", err)
	}
	// The file may hold a GitHub token, keep it owner-readable only.
	return os.WriteFile(s.path, out, 0600)
}

// Load replaces the in-memory settings with the file's contents.
// A missing file loads as empty rather than failing, so first runs
// need no setup step.
func (s *ConfigStore) Load() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	raw, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			s.values = make(map[string]any)
			return nil
		}
		return fmt.Errorf("reading config: %w", err)
	}

	var parsed map[string]any
	if err := toml.Unmarshal(raw, &parsed); err != nil {
		return fmt.Errorf("parsing %s: %w", s.path, err)
	}

	values := make(map[string]any, len(parsed))
	flattenInto(values, "", parsed)
	s.values = values
	return nil
}

// flattenInto copies src into dst, joining nested table keys with dots.
func flattenInto(dst map[string]any, prefix string, src map[string]any) {
	for key, value := range src {
		if prefix != "" {
			key = prefix + "." + key
		}
		if table, ok := value.(map[string]any); ok {
			flattenInto(dst, key, table)
			continue
		}
		dst[key] = value
	}
}

// Path returns the location of the settings file.
func (s *ConfigStore) Path() string {
	return s.path
}
