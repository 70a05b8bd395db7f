package tui

import (
	"github.com/charmbracelet/lipgloss"
)

// Theme is the colour palette the TUI draws from. Every style in
// Styles derives from one of these so a palette swap restyles the
// whole interface consistently.
type Theme struct {
	Primary    lipgloss.Color // main accent, headers and selection
	Secondary  lipgloss.Color // secondary accent
	Foreground lipgloss.Color // regular text
	Muted      lipgloss.Color // hints, status line, help
	Success    lipgloss.Color // matched keywords
	Warning    lipgloss.Color // fallback notices
	Error      lipgloss.Color // failures
	Border     lipgloss.Color // input field frame
}

// DefaultTheme returns the built-in palette.
func DefaultTheme() *Theme {
	return &Theme{
		Primary:    lipgloss.Color("#2DD4BF"), // Teal
		Secondary:  lipgloss.Color("#818CF8"), // Indigo
		Foreground: lipgloss.Color("#CDD6F4"), // Light gray
		Muted:      lipgloss.Color("#6C7086"), // Medium gray
		Success:    lipgloss.Color("#A6E3A1"), // Green
		Warning:    lipgloss.Color("#F9E2AF"), // Yellow
		Error:      lipgloss.Color("#F38BA8"), // Red
		Border:     lipgloss.Color("#45475A"), // Border gray
	}
}

// Styles carries the ready-to-use lipgloss styles for each piece of
// the interface: the header, the query input, the ranked match list
// and the status line.
type Styles struct {
	theme *Theme

	Title      lipgloss.Style
	Subtitle   lipgloss.Style
	Normal     lipgloss.Style
	Muted      lipgloss.Style
	Selected   lipgloss.Style
	Error      lipgloss.Style
	Success    lipgloss.Style
	Warning    lipgloss.Style
	InputField lipgloss.Style
	StatusBar  lipgloss.Style
	Help       lipgloss.Style
}

// NewStyles derives the interface styles from theme. A nil theme
// falls back to the default palette.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}

	base := lipgloss.NewStyle().Foreground(theme.Foreground)
	return &Styles{
		theme:      theme,
		Title:      lipgloss.NewStyle().Bold(true).Foreground(theme.Primary),
		Subtitle:   lipgloss.NewStyle().Bold(true).Foreground(theme.Secondary),
		Normal:     base,
		Muted:      lipgloss.NewStyle().Foreground(theme.Muted),
		Selected:   base.Bold(true).Background(theme.Primary),
		Error:      lipgloss.NewStyle().Foreground(theme.Error),
		Success:    lipgloss.NewStyle().Foreground(theme.Success),
		Warning:    lipgloss.NewStyle().Foreground(theme.Warning),
		InputField: lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(theme.Border).Padding(0, 1),
		StatusBar:  lipgloss.NewStyle().Foreground(theme.Muted).Background(lipgloss.Color("#181825")).Padding(0, 1),
		Help:       lipgloss.NewStyle().Foreground(theme.Muted),
	}
}

// DefaultStyles returns styles for the default palette.
func DefaultStyles() *Styles {
	return NewStyles(nil)
}

// Theme returns the palette these styles were derived from.
func (s *Styles) Theme() *Theme {
	return s.theme
}
