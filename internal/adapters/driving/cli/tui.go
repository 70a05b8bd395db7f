package cli

import (
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	"github.com/spf13/cobra"

	"github.com/skilldex-labs/skilldex-cli/internal/adapters/driving/tui"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for skilldex.

Type what you are working on, pick a match and read the document
without leaving the terminal.

Controls:
  Enter    - Route the query / open the selected skill
  Tab      - Browse the whole catalog
  ↑/k, ↓/j - Navigate matches
  Esc      - Back / quit
  q        - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	if routerService == nil {
		return errors.New("router service not configured")
	}
	if contentService == nil {
		return errors.New("content service not configured")
	}
	if err := requireCatalog(); err != nil {
		return err
	}

	// Panic recovery so the terminal state and a stack trace survive
	// a crash inside the UI loop.
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	app, err := tui.NewApp(tui.NewPorts(routerService, contentService, catalogService))
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}
	app.WithContext(cmd.Context())

	if err := app.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
