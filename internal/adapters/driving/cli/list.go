package cli

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List the skills in the catalog",
	Long: `Lists every skill with its trigger keywords, in catalog order.
The entry point served when no keywords match is marked with *.`,
	RunE: runList,
}

func init() {
	rootCmd.AddCommand(listCmd)
}

func runList(cmd *cobra.Command, _ []string) error {
	if catalogService == nil {
		return errors.New("catalog service not configured")
	}
	if err := requireCatalog(); err != nil {
		return err
	}

	ctx := context.Background()
	skills, err := catalogService.List(ctx)
	if err != nil {
		return fmt.Errorf("failed to list skills: %w", err)
	}

	if len(skills) == 0 {
		cmd.Println("The catalog is empty.")
		cmd.Println("Download a pack with: skilldex fetch owner/repo")
		return nil
	}

	cmd.Println("Skills:")
	cmd.Println()
	for i := range skills {
		s := &skills[i]
		marker := " "
		if s.Root {
			marker = "*"
		}
		cmd.Printf("  %s %s\n", marker, s.ID)
		cmd.Printf("      Title: %s\n", s.DisplayTitle())
		if s.Description != "" {
			cmd.Printf("      Description: %s\n", s.Description)
		}
		if len(s.Keywords) > 0 {
			cmd.Printf("      Keywords: %s\n", strings.Join(s.Keywords, ", "))
		}
		cmd.Println()
	}

	cmd.Printf("Total: %d skill(s), * marks the entry point.\n", len(skills))
	return nil
}
