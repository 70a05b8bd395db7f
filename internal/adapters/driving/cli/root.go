// Package cli implements the skilldex command-line interface.
// It is a driving adapter: commands translate terminal invocations into
// calls on the core services and print the results.
package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"

	"github.com/skilldex-labs/skilldex-cli/internal/adapters/driven/catalog/dirscan"
	configfile "github.com/skilldex-labs/skilldex-cli/internal/adapters/driven/config/file"
	"github.com/skilldex-labs/skilldex-cli/internal/adapters/driven/content/fs"
	"github.com/skilldex-labs/skilldex-cli/internal/adapters/driven/storage/memory"
	"github.com/skilldex-labs/skilldex-cli/internal/adapters/driven/storage/sqlite"
	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driven"
	"github.com/skilldex-labs/skilldex-cli/internal/core/ports/driving"
	"github.com/skilldex-labs/skilldex-cli/internal/core/services"
	"github.com/skilldex-labs/skilldex-cli/internal/logger"
)

// version is set at build time via ldflags.
var version = "dev"

// Services the commands run against. Execute wires the real
// implementations; tests assign their own doubles before calling
// rootCmd.Execute.
var (
	catalogService driving.CatalogService
	routerService  driving.RouterService
	contentService driving.ContentService
	statsService   driving.StatsService

	configStore    driven.ConfigStore
	packFetcher    driven.PackFetcher
	catalogWatcher driven.CatalogWatcher
	routeLog       driven.RouteLogStore
)

// Persistent flag values.
var (
	flagSkillsDir string
	flagConfigDir string
	verbose       bool
)

// skillsDir is the resolved corpus directory, after flag and config
// precedence is applied.
var skillsDir string

// catalogErr records why the catalog failed to load, so commands that
// need it can explain instead of failing blind. Fetch clears it after
// a successful download.
var catalogErr error

var rootCmd = &cobra.Command{
	Use:   "skilldex",
	Short: "Route coding tasks to the right skill document",
	Long: `Skilldex routes natural-language task descriptions to the Markdown
skill documents that cover them.

A skill corpus is a directory of Markdown documents, each declaring
trigger keywords in YAML front-matter. Skilldex matches queries
against those keywords, ranks the hits and serves the document text
on demand, so an AI coding assistant reads the one relevant document
instead of the whole corpus.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		logger.SetVerbose(verbose)

		switch {
		case !needsConfig(cmd):
			return nil
		case !needsServices(cmd):
			initConfig()
			return nil
		case routerService != nil:
			// Already wired, e.g. by tests.
			return nil
		default:
			initConfig()
			initServices(cmd.Context())
			return nil
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&flagSkillsDir, "skills-dir", "", "skill corpus directory (default ~/.skilldex/skills)")
	rootCmd.PersistentFlags().StringVar(
		&flagConfigDir, "config", "", "configuration directory (default ~/.skilldex)")
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable verbose logging")
}

// Execute wires the application and runs the root command.
// v is the build version stamped into the binary.
func Execute(v string) error {
	version = v
	defer closeRouteLog()
	return rootCmd.Execute()
}

// needsConfig reports whether the command reads configuration at all.
func needsConfig(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		switch c.Name() {
		case "version", "help", "completion":
			return false
		}
	}
	return true
}

// needsServices reports whether the command touches the service layer.
// Config management must work even when no skill corpus exists.
func needsServices(cmd *cobra.Command) bool {
	for c := cmd; c != nil; c = c.Parent() {
		if c.Name() == "config" {
			return false
		}
	}
	return true
}

// initConfig loads the configuration store and resolves the corpus
// directory. A store that cannot be opened degrades to in-memory
// defaults rather than blocking the command.
func initConfig() {
	if configStore == nil {
		store, err := configfile.NewConfigStore(flagConfigDir)
		if err != nil {
			logger.Warn("Config store unavailable, using in-memory defaults: %v", err)
			configStore = memory.NewConfigStore()
		} else {
			configStore = store
		}
	}

	skillsDir = flagSkillsDir
	if skillsDir == "" {
		skillsDir = configStore.GetString("skills_dir")
	}
	if skillsDir == "" {
		if home, err := os.UserHomeDir(); err == nil {
			skillsDir = filepath.Join(home, ".skilldex", "skills")
		} else {
			skillsDir = "skills"
		}
	}
}

// initServices builds the real service graph: directory catalog,
// keyword router, content loader and stats over the route log.
func initServices(ctx context.Context) {
	// A .env file may carry GITHUB_TOKEN for fetch. Best-effort.
	_ = godotenv.Load()

	scanner := dirscan.New(skillsDir)
	store := fs.New()

	catalog := services.NewCatalogService(scanner, store)
	if err := catalog.Load(ctx); err != nil {
		// Commands that read the catalog surface this later; fetch
		// and stats still work against an absent corpus.
		catalogErr = err
		logger.Warn("Catalog not loaded: %v", err)
	}

	routeLog = openRouteLog()

	catalogService = catalog
	catalogWatcher = scanner
	routerService = services.NewRouterService(catalog, routeLog)
	contentService = services.NewContentService(catalog, store)
	statsService = services.NewStatsService(routeLog)
}

// openRouteLog opens the SQLite route log. Logging disabled in config
// or a store that cannot be opened degrades to an in-memory log, so
// routing itself is never blocked by its bookkeeping.
func openRouteLog() driven.RouteLogStore {
	if configStore != nil {
		if v, ok := configStore.Get("log.enabled"); ok {
			if enabled, isBool := v.(bool); isBool && !enabled {
				return memory.NewRouteLog()
			}
		}
	}

	dataDir := ""
	if flagConfigDir != "" {
		dataDir = filepath.Join(flagConfigDir, "data")
	}

	store, err := sqlite.NewStore(dataDir)
	if err != nil {
		logger.Warn("Route log unavailable, recording in memory: %v", err)
		return memory.NewRouteLog()
	}
	return store
}

// closeRouteLog flushes the persistent route log when one is open.
func closeRouteLog() {
	if routeLog != nil {
		_ = routeLog.Close() //nolint:errcheck // Exit path, nowhere to report
	}
}

// requireCatalog guards commands that read the loaded catalog.
func requireCatalog() error {
	if catalogErr != nil {
		return fmt.Errorf(
			"catalog unavailable (download a pack with 'skilldex fetch owner/repo' or point --skills-dir at a corpus): %w",
			catalogErr)
	}
	return nil
}
