package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driving"
)

func TestValidateCmd_Use(t *testing.T) {
	assert.Equal(t, "validate", validateCmd.Use)
}

func TestValidateCmd_Short(t *testing.T) {
	assert.Equal(t, "Check the skill corpus for problems", validateCmd.Short)
}

func TestValidateCmd_CleanCatalog(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"validate"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Catalog is valid.")
}

// issueCatalog reports validation problems.
type issueCatalog struct {
	fakeCatalog
}

func (c *issueCatalog) Validate(_ context.Context) ([]driving.Issue, error) {
	return []driving.Issue{
		{
			SkillID: "fee-delegation",
			Path:    "fee-delegation.md",
			Problem: "document file missing",
			Fatal:   true,
		},
		{
			SkillID: "multi-clause",
			Problem: "no trigger keywords",
		},
	}, nil
}

func TestValidateCmd_ReportsIssues(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	catalogService = &issueCatalog{}

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs([]string{"validate"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	assert.Error(t, err)
	assert.Contains(t, err.Error(), "found 2 issue(s), 1 fatal")
	assert.Contains(t, buf.String(), "error: document file missing")
	assert.Contains(t, buf.String(), "warning: no trigger keywords")
	assert.Contains(t, buf.String(), "skill: fee-delegation")
	assert.Contains(t, buf.String(), "path:  fee-delegation.md")
}

func TestValidateCmd_RunsWithoutLoadedCatalog(t *testing.T) {
	cleanup := setupTestServices()
	defer cleanup()
	catalogErr = assert.AnError

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetArgs([]string{"validate"})
	defer func() {
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.Execute()

	// Validation must run against a corpus that refused to load.
	assert.NoError(t, err)
	assert.Contains(t, buf.String(), "Catalog is valid.")
}
