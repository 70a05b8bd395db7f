// Package dirscan loads a skill catalog from a directory of Markdown
// documents.
//
// Every *.md file under the root becomes a catalog entry. Front matter
// declares the entry's identity; documents without it fall back to
// conventions: slugified file name as ID, first H1 as title, first
// paragraph as description and the "When to use" section for trigger
// keywords.
package dirscan

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driven"
	"github.com/skilldex-labs/skilldex-cli/internal/logger"
	"github.com/skilldex-labs/skilldex-cli/internal/markdown"
)

// Ensure Scanner implements the interfaces.
var (
	_ driven.CatalogSource  = (*Scanner)(nil)
	_ driven.CatalogWatcher = (*Scanner)(nil)
)

// Scanner discovers skill documents under a root directory.
type Scanner struct {
	root string
}

// New creates a scanner rooted at dir.
func New(dir string) *Scanner {
	return &Scanner{root: dir}
}

// Location implements driven.CatalogSource.
func (s *Scanner) Location() string {
	return s.root
}

// Load walks the corpus and parses every Markdown document into a
// catalog entry. Files are visited in sorted path order, which pins
// the catalog's declaration order (and therefore routing tie-breaks)
// between runs and machines.
func (s *Scanner) Load(ctx context.Context) ([]domain.Skill, error) {
	root, err := filepath.Abs(s.root)
	if err != nil {
		return nil, fmt.Errorf("resolve corpus root %s: %w", s.root, err)
	}

	var paths []string
	err = filepath.WalkDir(root, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if err := ctx.Err(); err != nil {
			return err
		}
		name := d.Name()
		if d.IsDir() {
			if path != root && strings.HasPrefix(name, ".") {
				return fs.SkipDir
			}
			return nil
		}
		if strings.HasPrefix(name, ".") || !strings.EqualFold(filepath.Ext(name), ".md") {
			return nil
		}
		paths = append(paths, path)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("scan corpus %s: %w", root, err)
	}
	sort.Strings(paths)

	skills := make([]domain.Skill, 0, len(paths))
	for _, path := range paths {
		skill, err := parseFile(path)
		if err != nil {
			return nil, err
		}
		skills = append(skills, skill)
	}

	logger.Debug("Scanned %s: %d document(s)", root, len(skills))
	return markRoot(skills), nil
}

// parseFile builds one catalog entry from a document.
func parseFile(path string) (domain.Skill, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return domain.Skill{}, fmt.Errorf("read %s: %w", path, err)
	}

	fm, body, err := markdown.Parse(string(data))
	if err != nil {
		return domain.Skill{}, fmt.Errorf("%s: %w", path, err)
	}

	id := fm.EffectiveID()
	if id == "" {
		id = markdown.Slugify(strings.TrimSuffix(filepath.Base(path), filepath.Ext(path)))
	}

	title := fm.Title
	if title == "" {
		title = markdown.ExtractTitle(body, path)
	}

	description := fm.Description
	if description == "" {
		description = markdown.ExtractDescription(body)
	}

	keywords := []string(fm.Keywords)
	if len(keywords) == 0 {
		keywords = markdown.WhenToUse(body)
		if len(keywords) > 0 {
			logger.Debug("Derived %d keyword(s) for %s from its when-to-use section", len(keywords), path)
		}
	}

	return domain.Skill{
		ID:          id,
		Title:       title,
		Description: description,
		Keywords:    keywords,
		Path:        path,
		Root:        fm.Root,
	}, nil
}

// rootBasenames are the conventional entry-point files, tried in order,
// when no entry declares root: true.
var rootBasenames = []string{"index.md", "readme.md"}

// markRoot applies the root convention: an explicit root: true wins,
// otherwise the first conventional entry-point file becomes the root.
// Registry validation still rejects catalogs where neither resolves.
func markRoot(skills []domain.Skill) []domain.Skill {
	for _, s := range skills {
		if s.Root {
			return skills
		}
	}
	for _, base := range rootBasenames {
		for i := range skills {
			if strings.EqualFold(filepath.Base(skills[i].Path), base) {
				skills[i].Root = true
				logger.Debug("No explicit root, using %s", skills[i].Path)
				return skills
			}
		}
	}
	return skills
}
