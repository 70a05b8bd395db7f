package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var validateCmd = &cobra.Command{
	Use:   "validate",
	Short: "Check the skill corpus for problems",
	Long: `Scans the corpus and reports every problem found: duplicate or
malformed IDs, missing documents, skills without trigger keywords.
Exits non-zero when issues are found, so it can gate a corpus in CI.`,
	RunE: runValidate,
}

func init() {
	rootCmd.AddCommand(validateCmd)
}

func runValidate(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}

	// Deliberately no catalog guard: validate is the command to run
	// against a corpus that refused to load.
	ctx := context.Background()
	issues, err := catalogService.Validate(ctx)
	if err != nil {
		return fmt.Errorf("validation could not run: %w", err)
	}

	if len(issues) == 0 {
		cmd.Println("Catalog is valid.")
		return nil
	}

	fatal := 0
	for i := range issues {
		severity := "warning"
		if issues[i].Fatal {
			severity = "error"
			fatal++
		}
		cmd.Printf("  %s: %s\n", severity, issues[i].Problem)
		if issues[i].SkillID != "" {
			cmd.Printf("    skill: %s\n", issues[i].SkillID)
		}
		if issues[i].Path != "" {
			cmd.Printf("    path:  %s\n", issues[i].Path)
		}
		cmd.Println()
	}

	return fmt.Errorf("found %d issue(s), %d fatal", len(issues), fatal)
}
