package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
)

// ViewType identifies which screen is active.
type ViewType int

const (
	// ViewQuery is the query input screen.
	ViewQuery ViewType = iota

	// ViewResults is the ranked match list.
	ViewResults

	// ViewContent is the document reader.
	ViewContent
)

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
//
// Three screens cycle: a query prompt, the ranked matches for that
// query, and a rendered skill document.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	// styles holds the TUI styles.
	styles *Styles

	// keymap holds the keybindings.
	keymap *KeyMap

	// input is the query text field.
	input textinput.Model

	// viewport scrolls the rendered skill document.
	viewport viewport.Model

	// state tracks which screen is active.
	state ViewType

	// skills is the catalog listing, when a catalog service is wired.
	skills []domain.Skill

	// query is the last routed query.
	query string

	// matches holds the current routing answer, or the full catalog
	// when browsing.
	matches []domain.Match

	// selected is the highlighted match index.
	selected int

	// browsing is true when the list shows the whole catalog rather
	// than a routing answer.
	browsing bool

	// contentID and contentTitle identify the loaded document.
	contentID    string
	contentTitle string

	// content is the raw Markdown of the loaded document, kept for
	// re-rendering on resize.
	content string

	// loading is true while a service call is in flight.
	loading bool

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has received its dimensions.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	ti := textinput.New()
	ti.Placeholder = "Describe the task..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	return &App{
		ports:    ports,
		ctx:      context.Background(),
		styles:   DefaultStyles(),
		keymap:   DefaultKeyMap(),
		input:    ti,
		viewport: viewport.New(80, 20),
		state:    ViewQuery,
		width:    80,
		height:   24,
	}, nil
}

// WithContext sets the context for the app.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init implements tea.Model.
// It runs initial commands when the program starts.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{
		textinput.Blink,
		tea.EnterAltScreen,
		tea.SetWindowTitle("skilldex - Skill Router"),
	}
	if a.ports.Catalog != nil {
		cmds = append(cmds, a.loadCatalog())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.ready = true
		a.resize()
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		switch a.state {
		case ViewQuery:
			return a.handleQueryKey(msg)
		case ViewResults:
			return a.handleResultsKey(msg)
		case ViewContent:
			return a.handleContentKey(msg)
		}
		return a, nil

	case routeCompleted:
		a.loading = false
		if msg.Err != nil {
			a.err = msg.Err
			return a, a.input.Focus()
		}
		a.err = nil
		a.matches = msg.Matches
		a.selected = 0
		a.browsing = false
		a.state = ViewResults
		return a, nil

	case contentLoaded:
		a.loading = false
		if msg.Err != nil {
			a.err = msg.Err
			return a, nil
		}
		a.err = nil
		a.contentID = msg.SkillID
		a.contentTitle = msg.Title
		a.content = msg.Content
		a.viewport.SetContent(a.renderMarkdown(msg.Content))
		a.viewport.GotoTop()
		a.state = ViewContent
		return a, nil

	case catalogLoaded:
		// A missing or failing catalog only disables the browse
		// screen, it never blocks routing.
		if msg.Err == nil {
			a.skills = msg.Skills
		}
		return a, nil
	}

	// Forward remaining messages to the focused widget.
	var cmd tea.Cmd
	switch a.state {
	case ViewQuery:
		a.input, cmd = a.input.Update(msg)
	case ViewContent:
		a.viewport, cmd = a.viewport.Update(msg)
	case ViewResults:
		// The match list has no passive updates.
	}
	return a, cmd
}

// handleQueryKey processes keyboard input on the query screen. Most
// keys belong to the text field, so only esc, enter and tab are
// interpreted here.
func (a *App) handleQueryKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case keyStr == "esc":
		// The query screen is the bottom of the stack.
		return a, tea.Quit

	case Matches(keyStr, a.keymap.Submit):
		if a.loading {
			return a, nil
		}
		// An empty query is routed too: it resolves to the corpus
		// entry point.
		a.query = a.input.Value()
		a.err = nil
		a.loading = true
		a.input.Blur()
		return a, a.routeQuery(a.query)

	case Matches(keyStr, a.keymap.Browse):
		if len(a.skills) == 0 {
			return a, nil
		}
		a.openBrowse()
		return a, nil
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleResultsKey processes keyboard input on the match list.
func (a *App) handleResultsKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case Matches(keyStr, a.keymap.Quit):
		return a, tea.Quit

	case Matches(keyStr, a.keymap.Back):
		a.state = ViewQuery
		return a, a.input.Focus()

	case Matches(keyStr, a.keymap.Up):
		if a.selected > 0 {
			a.selected--
		}
		return a, nil

	case Matches(keyStr, a.keymap.Down):
		if a.selected < len(a.matches)-1 {
			a.selected++
		}
		return a, nil

	case Matches(keyStr, a.keymap.NewQuery):
		a.state = ViewQuery
		a.input.SetValue("")
		return a, a.input.Focus()

	case Matches(keyStr, a.keymap.Open):
		if a.loading {
			return a, nil
		}
		if m := a.selectedMatch(); m != nil {
			a.err = nil
			a.loading = true
			return a, a.loadSkill(m.Skill)
		}
		return a, nil
	}

	return a, nil
}

// handleContentKey processes keyboard input in the document reader.
// Scrolling is delegated to the viewport.
func (a *App) handleContentKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	keyStr := msg.String()

	switch {
	case Matches(keyStr, a.keymap.Quit):
		return a, tea.Quit

	case Matches(keyStr, a.keymap.Back):
		a.state = ViewResults
		return a, nil
	}

	var cmd tea.Cmd
	a.viewport, cmd = a.viewport.Update(msg)
	return a, cmd
}

// routeQuery asks the router for matches.
func (a *App) routeQuery(query string) tea.Cmd {
	return func() tea.Msg {
		matches, err := a.ports.Router.Route(a.ctx, query, domain.RouteOptions{})
		return routeCompleted{Matches: matches, Err: err}
	}
}

// loadSkill fetches the document body for a skill.
func (a *App) loadSkill(skill domain.Skill) tea.Cmd {
	return func() tea.Msg {
		content, err := a.ports.Content.GetContent(a.ctx, skill.ID)
		return contentLoaded{
			SkillID: skill.ID,
			Title:   skill.DisplayTitle(),
			Content: content,
			Err:     err,
		}
	}
}

// loadCatalog fetches the skill listing.
func (a *App) loadCatalog() tea.Cmd {
	return func() tea.Msg {
		skills, err := a.ports.Catalog.List(a.ctx)
		return catalogLoaded{Skills: skills, Err: err}
	}
}

// openBrowse shows every catalog entry as an unscored match.
func (a *App) openBrowse() {
	matches := make([]domain.Match, 0, len(a.skills))
	for _, s := range a.skills {
		matches = append(matches, domain.Match{Skill: s})
	}
	a.matches = matches
	a.selected = 0
	a.browsing = true
	a.err = nil
	a.state = ViewResults
	a.input.Blur()
}

// selectedMatch returns the highlighted match, or nil when the list
// is empty.
func (a *App) selectedMatch() *domain.Match {
	if a.selected < 0 || a.selected >= len(a.matches) {
		return nil
	}
	return &a.matches[a.selected]
}

// resize fits the widgets to the terminal and re-wraps any loaded
// document at the new width.
func (a *App) resize() {
	inputWidth := a.width - 14
	if inputWidth < 20 {
		inputWidth = 20
	}
	a.input.Width = inputWidth

	a.viewport.Width = a.width
	a.viewport.Height = a.contentHeight()
	if a.content != "" {
		a.viewport.SetContent(a.renderMarkdown(a.content))
	}
}

// contentHeight is the viewport height: the terminal minus the
// header, separator and status line.
func (a *App) contentHeight() int {
	h := a.height - 5
	if h < 1 {
		h = 1
	}
	return h
}

// renderMarkdown renders a skill document for the terminal, falling
// back to the raw text when rendering fails.
func (a *App) renderMarkdown(content string) string {
	wrap := a.width - 4
	if wrap < 20 {
		wrap = 20
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(wrap),
	)
	if err != nil {
		return content
	}
	out, err := renderer.Render(content)
	if err != nil {
		return content
	}
	return out
}

// View implements tea.Model.
// It renders the active screen as a string.
func (a *App) View() string {
	if !a.ready {
		return "Initialising..."
	}

	switch a.state {
	case ViewResults:
		return a.viewResults()
	case ViewContent:
		return a.viewContent()
	case ViewQuery:
		return a.viewQuery()
	default:
		return a.viewQuery()
	}
}

// viewQuery renders the query input screen.
func (a *App) viewQuery() string {
	sections := make([]string, 0, 8)
	sections = append(sections, a.header(), "")

	label := a.styles.Subtitle.Render("Query: ")
	field := a.styles.InputField.Render(a.input.View())
	//nolint:misspell // lipgloss.Center is the correct constant from the library
	sections = append(sections, lipgloss.JoinHorizontal(lipgloss.Center, label, field), "")

	if a.err != nil {
		sections = append(sections, a.styles.Error.Render("Error: "+a.err.Error()), "")
	}

	sections = append(sections, a.statusLine(a.keymap.QueryHelp()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewResults renders the ranked match list.
func (a *App) viewResults() string {
	sections := make([]string, 0, len(a.matches)+8)
	sections = append(sections, a.header(), "")

	heading := fmt.Sprintf("Matches (%d)", len(a.matches))
	if a.browsing {
		heading = fmt.Sprintf("All skills (%d)", len(a.matches))
	}
	sections = append(sections, a.styles.Subtitle.Render(heading))
	if !a.browsing && a.query != "" {
		sections = append(sections, a.styles.Muted.Render(fmt.Sprintf("for %q", a.query)))
	}
	sections = append(sections, "")

	if a.err != nil {
		sections = append(sections, a.styles.Error.Render("Error: "+a.err.Error()), "")
	}

	if len(a.matches) == 0 {
		sections = append(sections, a.styles.Muted.Render("No matches"))
	}

	// Window the list around the selection so it fits the terminal.
	visible := (a.height - 9) / 2
	if visible < 1 {
		visible = 1
	}
	start := 0
	if a.selected >= visible {
		start = a.selected - visible + 1
	}
	end := start + visible
	if end > len(a.matches) {
		end = len(a.matches)
	}
	for i := start; i < end; i++ {
		sections = append(sections, a.renderMatch(i, a.matches[i]))
	}

	sections = append(sections, "", a.statusLine(a.keymap.ResultsHelp()))
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// viewContent renders the document reader.
func (a *App) viewContent() string {
	title := a.styles.Subtitle.Render(a.contentTitle)
	separator := a.styles.Muted.Render(strings.Repeat("─", min(a.width-4, 60)))
	return lipgloss.JoinVertical(lipgloss.Left,
		title,
		separator,
		a.viewport.View(),
		"",
		a.statusLine(a.keymap.ContentHelp()),
	)
}

// header renders the application title with the catalog size.
func (a *App) header() string {
	title := a.styles.Title.Render("Skilldex")
	if len(a.skills) > 0 {
		return title + a.styles.Muted.Render(fmt.Sprintf("  %d skills", len(a.skills)))
	}
	return title
}

// renderMatch formats one match as a title line plus an evidence line.
func (a *App) renderMatch(index int, m domain.Match) string {
	indicator := "  "
	if index == a.selected {
		indicator = "> "
	}

	title := m.Skill.DisplayTitle()
	maxTitle := a.width - 10
	if maxTitle < 10 {
		maxTitle = 10
	}
	if len(title) > maxTitle {
		title = title[:maxTitle-3] + "..."
	}

	var titleLine string
	if index == a.selected {
		titleLine = a.styles.Selected.Render(indicator + title)
	} else {
		titleLine = a.styles.Normal.Render(indicator + title)
	}

	return titleLine + "\n" + a.matchDetail(m)
}

// matchDetail explains why an entry is in the list.
func (a *App) matchDetail(m domain.Match) string {
	switch {
	case m.Fallback:
		return a.styles.Warning.Render("    entry point (no keywords matched)")
	case a.browsing:
		text := m.Skill.Description
		if text == "" {
			text = strings.Join(m.Skill.Keywords, ", ")
		}
		return a.styles.Muted.Render("    " + truncate(text, a.width-6))
	default:
		matched := strings.Join(m.MatchedKeywords, ", ")
		return a.styles.Success.Render("    matched: " + truncate(matched, a.width-16))
	}
}

// statusLine renders the bottom bar: progress or context on the left,
// keybinding hints on the right.
func (a *App) statusLine(bindings []key.Binding) string {
	left := a.statusLeft()
	right := renderHints(bindings)

	pad := a.width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if pad < 1 {
		pad = 1
	}
	return a.styles.StatusBar.Width(a.width).Render(left + strings.Repeat(" ", pad) + right)
}

// statusLeft summarises what the app is doing.
func (a *App) statusLeft() string {
	switch {
	case a.loading && a.state == ViewQuery:
		return "Routing..."
	case a.loading:
		return "Loading skill..."
	case a.state == ViewContent:
		return "skill: " + a.contentID
	case a.state == ViewResults && len(a.matches) > 0:
		return fmt.Sprintf("%d of %d", a.selected+1, len(a.matches))
	default:
		return "Ready"
	}
}

// renderHints formats keybinding hints for the status line.
func renderHints(bindings []key.Binding) string {
	hints := make([]string, 0, len(bindings))
	for _, b := range bindings {
		h := b.Help()
		hints = append(hints, fmt.Sprintf("%s: %s", h.Key, h.Desc))
	}
	return strings.Join(hints, " | ")
}

// truncate shortens s to max bytes, marking the cut with an ellipsis.
func truncate(s string, maxLen int) string {
	if maxLen < 4 {
		maxLen = 4
	}
	if len(s) <= maxLen {
		return s
	}
	return s[:maxLen-3] + "..."
}

// Run starts the TUI application.
func (a *App) Run() error {
	p := tea.NewProgram(a, tea.WithAltScreen())
	_, err := p.Run()
	return err
}

// CurrentView returns the active screen.
func (a *App) CurrentView() ViewType {
	return a.state
}

// Query returns the text currently in the input field.
func (a *App) Query() string {
	return a.input.Value()
}

// Results returns the current match list.
func (a *App) Results() []domain.Match {
	return a.matches
}

// SelectedIndex returns the highlighted match index.
func (a *App) SelectedIndex() int {
	return a.selected
}

// Browsing returns whether the list shows the whole catalog.
func (a *App) Browsing() bool {
	return a.browsing
}

// SkillCount returns the catalog size known to the header.
func (a *App) SkillCount() int {
	return len(a.skills)
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has received its dimensions.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions sets the terminal dimensions (for testing).
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true
	a.resize()
}
