package tui

import (
	"testing"

	"github.com/charmbracelet/bubbles/key"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaultKeyMap(t *testing.T) {
	km := DefaultKeyMap()

	require.NotNil(t, km)
}

func TestDefaultKeyMap_QuitBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Quit.Keys()
	assert.Contains(t, keys, "q")
	assert.Contains(t, keys, "ctrl+c")
}

func TestDefaultKeyMap_BackBinding(t *testing.T) {
	km := DefaultKeyMap()

	keys := km.Back.Keys()
	assert.Contains(t, keys, "esc")
}

func TestDefaultKeyMap_SubmitAndOpenShareEnter(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Submit.Keys(), "enter")
	assert.Contains(t, km.Open.Keys(), "enter")
}

func TestDefaultKeyMap_NavigationBindings(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Up.Keys(), "up")
	assert.Contains(t, km.Up.Keys(), "k")
	assert.Contains(t, km.Down.Keys(), "down")
	assert.Contains(t, km.Down.Keys(), "j")
}

func TestDefaultKeyMap_BrowseBinding(t *testing.T) {
	km := DefaultKeyMap()

	assert.Contains(t, km.Browse.Keys(), "tab")
}

func TestQueryHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.QueryHelp()

	assert.NotEmpty(t, bindings)
}

func TestResultsHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ResultsHelp()

	assert.NotEmpty(t, bindings)
}

func TestContentHelp(t *testing.T) {
	km := DefaultKeyMap()

	bindings := km.ContentHelp()

	assert.NotEmpty(t, bindings)
}

func TestMatches(t *testing.T) {
	binding := key.NewBinding(key.WithKeys("q", "ctrl+c"))

	assert.True(t, Matches("q", binding))
	assert.True(t, Matches("ctrl+c", binding))
	assert.False(t, Matches("x", binding))
}
