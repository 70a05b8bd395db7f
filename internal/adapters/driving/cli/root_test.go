package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRootCmd_Use(t *testing.T) {
	assert.Equal(t, "skilldex", rootCmd.Use)
}

func TestRootCmd_HasSubcommands(t *testing.T) {
	commands := rootCmd.Commands()
	commandNames := make([]string, 0, len(commands))
	for _, cmd := range commands {
		commandNames = append(commandNames, cmd.Name())
	}

	assert.Contains(t, commandNames, "route")
	assert.Contains(t, commandNames, "list")
	assert.Contains(t, commandNames, "show")
	assert.Contains(t, commandNames, "validate")
	assert.Contains(t, commandNames, "fetch")
	assert.Contains(t, commandNames, "stats")
	assert.Contains(t, commandNames, "mcp")
	assert.Contains(t, commandNames, "tui")
	assert.Contains(t, commandNames, "config")
	assert.Contains(t, commandNames, "version")
}

func TestRootCmd_HasSkillsDirFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("skills-dir")

	require.NotNil(t, flag)
	assert.Equal(t, "", flag.DefValue)
}

func TestRootCmd_HasConfigFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("config")

	require.NotNil(t, flag)
}

func TestRootCmd_HasVerboseFlag(t *testing.T) {
	flag := rootCmd.PersistentFlags().Lookup("verbose")

	require.NotNil(t, flag)
	assert.Equal(t, "v", flag.Shorthand)
	assert.Equal(t, "false", flag.DefValue)
}

func TestNeedsConfig(t *testing.T) {
	assert.False(t, needsConfig(versionCmd))
	assert.True(t, needsConfig(routeCmd))
	assert.True(t, needsConfig(configGetCmd))
}

func TestNeedsServices(t *testing.T) {
	assert.False(t, needsServices(configCmd))
	assert.False(t, needsServices(configGetCmd))
	assert.True(t, needsServices(routeCmd))
	assert.True(t, needsServices(mcpServeCmd))
}

func TestRequireCatalog_NoError(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	assert.NoError(t, requireCatalog())
}

func TestRequireCatalog_SurfacesLoadFailure(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	catalogErr = assert.AnError

	err := requireCatalog()

	require.Error(t, err)
	assert.ErrorIs(t, err, assert.AnError)
	assert.Contains(t, err.Error(), "skilldex fetch")
}
