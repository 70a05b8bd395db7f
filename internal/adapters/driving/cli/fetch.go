package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/skilldex-labs/skilldex-cli/internal/adapters/driven/fetch/github"
)

var (
	fetchToken string
	fetchDest  string
)

var fetchCmd = &cobra.Command{
	Use:   "fetch [owner/repo[/dir][@ref]]",
	Short: "Download a skill pack from GitHub",
	Long: `Downloads the Markdown documents of a skill pack from a GitHub
repository into the skills directory, then validates the result.

The pack reference names the repository, an optional subdirectory and
an optional git ref:

  skilldex fetch vechain/vechain-skills
  skilldex fetch vechain/docs/skills@v1.2.0

Public repositories need no authentication. For private repositories,
or to raise the API quota, supply a token via --token, the
github.token config key, or the GITHUB_TOKEN environment variable.`,
	Args: cobra.ExactArgs(1),
	RunE: runFetch,
}

func init() {
	fetchCmd.Flags().StringVarP(
		&fetchToken, "token", "t", "", "GitHub token (defaults to config, then GITHUB_TOKEN)")
	fetchCmd.Flags().StringVar(
		&fetchDest, "dest", "", "destination directory (defaults to the skills directory)")
	rootCmd.AddCommand(fetchCmd)
}

func runFetch(cmd *cobra.Command, args []string) error {
	ref, err := github.ParsePackRef(args[0])
	if err != nil {
		return err
	}

	dest := fetchDest
	if dest == "" {
		dest = skillsDir
	}
	if dest == "" {
		return errors.New("no destination directory; set --dest or --skills-dir")
	}

	ctx := context.Background()

	fetcher := packFetcher
	if fetcher == nil {
		fetcher = github.New(ctx, resolveToken())
	}

	cmd.Printf("Fetching %s into %s...\n", ref, dest)

	result, err := fetcher.Fetch(ctx, ref, dest)
	if err != nil {
		return fmt.Errorf("fetch failed: %w", err)
	}

	cmd.Printf("Fetched %d document(s)", len(result.Files))
	if result.Skipped > 0 {
		cmd.Printf(", skipped %d non-Markdown file(s)", result.Skipped)
	}
	cmd.Println(".")

	// Reload and validate so corpus problems surface now, not on the
	// first route.
	if catalogService == nil || fetchDest != "" {
		return nil
	}
	if err := catalogService.Reload(ctx); err != nil {
		cmd.Printf("Warning: fetched pack did not load: %v\n", err)
		return nil
	}
	catalogErr = nil

	issues, err := catalogService.Validate(ctx)
	if err == nil && len(issues) > 0 {
		cmd.Printf("Warning: %d validation issue(s); run 'skilldex validate' for details.\n", len(issues))
	}

	return nil
}

// resolveToken returns the GitHub token to fetch with: the flag wins,
// then the config store, then the environment.
func resolveToken() string {
	if fetchToken != "" {
		return fetchToken
	}
	if configStore != nil {
		if tok := configStore.GetString("github.token"); tok != "" {
			return tok
		}
	}
	return os.Getenv("GITHUB_TOKEN")
}
