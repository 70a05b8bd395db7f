package tui

import (
	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
)

// Bubbletea messages produced by the app's commands. They carry the
// results of service calls back into Update.

// routeCompleted delivers the outcome of a routing request.
type routeCompleted struct {
	Matches []domain.Match
	Err     error
}

// contentLoaded delivers a skill document fetched for reading.
type contentLoaded struct {
	SkillID string
	Title   string
	Content string
	Err     error
}

// catalogLoaded delivers the skill listing used by the browse screen
// and the header count.
type catalogLoaded struct {
	Skills []domain.Skill
	Err    error
}
