// Package fs reads skill documents from the local filesystem.
//
// The store resolves each skill through the path recorded on it at scan
// time, so moving or deleting a document between catalogue loads surfaces
// as a read error naming both the skill and the path it was expected at.
// Front matter is stripped before the body is returned; callers receive
// the document as an assistant would consume it.
package fs

import (
	"context"
	"fmt"
	"os"

	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driven"
	"github.com/skilldex-labs/skilldex-cli/internal/markdown"
)

// Store serves skill bodies straight from disk on every read.
type Store struct{}

// Interface guard
var _ driven.ContentStore = (*Store)(nil)

// New creates a filesystem-backed content store.
func New() *Store {
	return &Store{}
}

// Read returns the document body for a skill with front matter removed.
func (s *Store) Read(ctx context.Context, skill domain.Skill) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	raw, err := os.ReadFile(skill.Path)
	if err != nil {
		return "", fmt.Errorf("read skill %q at %s: %w", skill.ID, skill.Path, err)
	}

	_, body, _ := markdown.Split(string(raw))
	return body, nil
}

// Stat reports whether the skill's document is present on disk.
func (s *Store) Stat(ctx context.Context, skill domain.Skill) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	info, err := os.Stat(skill.Path)
	if err != nil {
		return fmt.Errorf("stat skill %q at %s: %w", skill.ID, skill.Path, err)
	}
	if info.IsDir() {
		return fmt.Errorf("stat skill %q at %s: path is a directory", skill.ID, skill.Path)
	}
	return nil
}
