package domain

import "strings"

// Skill describes one document in a skill corpus: a self-contained
// Markdown reference covering a single topic, addressable by ID and
// discoverable through its trigger keywords.
type Skill struct {
	// ID is the unique, stable identifier (kebab-case, e.g. "fee-delegation").
	ID string

	// Title is the human-readable name shown in listings.
	Title string

	// Description summarises when the skill applies.
	Description string

	// Keywords are the lowercase trigger terms that route queries here.
	// A keyword containing spaces matches as a whole phrase.
	Keywords []string

	// Path is the location of the Markdown file on disk.
	Path string

	// Root marks the corpus entry point, served when routing finds
	// no keyword match.
	Root bool

	// Order is the zero-based declaration position within the catalog.
	// It breaks ranking ties.
	Order int
}

// DisplayTitle returns the title, falling back to the ID when no
// title was declared.
func (s Skill) DisplayTitle() string {
	if s.Title != "" {
		return s.Title
	}
	return s.ID
}

// HasKeyword reports whether term equals one of the skill's trigger
// keywords, ignoring case and surrounding whitespace.
func (s Skill) HasKeyword(term string) bool {
	term = strings.ToLower(strings.TrimSpace(term))
	for _, k := range s.Keywords {
		if k == term {
			return true
		}
	}
	return false
}
