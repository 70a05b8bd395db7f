package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/glamour"
	"github.com/spf13/cobra"
	"golang.org/x/term"
)

var showRaw bool

var showCmd = &cobra.Command{
	Use:   "show [skill-id]",
	Short: "Print a skill document",
	Long: `Prints the full Markdown body of a skill document.

On a terminal the document is rendered with styled headings and code
blocks; when piped, raw Markdown is printed. --raw forces raw output.`,
	Args: cobra.ExactArgs(1),
	RunE: runShow,
}

func init() {
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print raw Markdown without rendering")
	rootCmd.AddCommand(showCmd)
}

func runShow(cmd *cobra.Command, args []string) error {
	if contentService == nil {
		return errors.New("content service not configured")
	}
	if err := requireCatalog(); err != nil {
		return err
	}

	id := args[0]
	ctx := context.Background()

	content, err := contentService.GetContent(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to load skill: %w", err)
	}

	if showRaw || !term.IsTerminal(int(os.Stdout.Fd())) {
		cmd.Println(content)
		return nil
	}

	rendered, err := renderDocument(content)
	if err != nil {
		// A failed renderer should not block reading the document.
		cmd.Println(content)
		return nil
	}
	cmd.Print(rendered)
	return nil
}

// renderDocument renders Markdown for terminal display, wrapped to the
// terminal width.
func renderDocument(content string) (string, error) {
	width := 100
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		width = w
	}
	if width > 120 {
		width = 120
	}

	renderer, err := glamour.NewTermRenderer(
		glamour.WithAutoStyle(),
		glamour.WithWordWrap(width),
	)
	if err != nil {
		return "", err
	}
	return renderer.Render(content)
}
