package cli

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/skilldex-labs/skilldex-cli/internal/core/domain"
)

var (
	routeLimit int
	routeJSON  bool
	routeLoad  bool
)

var routeCmd = &cobra.Command{
	Use:   "route [query]",
	Short: "Route a task to matching skills",
	Long: `Matches the query against every skill's trigger keywords and prints
the hits ranked by the number of distinct keywords matched. When
nothing matches, the corpus entry point is served instead, so there
is always somewhere to start reading.`,
	Args: cobra.ExactArgs(1),
	RunE: runRoute,
}

func init() {
	routeCmd.Flags().IntVarP(&routeLimit, "limit", "n", 5, "maximum number of matches")
	routeCmd.Flags().BoolVar(&routeJSON, "json", false, "output matches as JSON")
	routeCmd.Flags().BoolVar(&routeLoad, "load", false, "include the document text of the best match")
	rootCmd.AddCommand(routeCmd)
}

// routeMatchJSON is the JSON output shape for one match.
type routeMatchJSON struct {
	SkillID         string   `json:"skill_id"`
	Title           string   `json:"title"`
	Path            string   `json:"path,omitempty"`
	Score           int      `json:"score"`
	MatchedKeywords []string `json:"matched_keywords,omitempty"`
	Fallback        bool     `json:"fallback,omitempty"`
	Content         string   `json:"content,omitempty"`
}

func runRoute(cmd *cobra.Command, args []string) error {
	query := args[0]

	if routerService == nil {
		return errors.New("router service not configured")
	}
	if routeLoad && contentService == nil {
		return errors.New("content service not configured")
	}
	if err := requireCatalog(); err != nil {
		return err
	}

	limit := routeLimit
	if !cmd.Flags().Changed("limit") && configStore != nil {
		if v := configStore.GetInt("route.limit"); v > 0 {
			limit = v
		}
	}

	ctx := context.Background()
	matches, err := routerService.Route(ctx, query, domain.RouteOptions{Limit: limit})
	if err != nil {
		return fmt.Errorf("routing failed: %w", err)
	}

	if routeJSON {
		return outputRouteJSON(ctx, cmd, matches)
	}
	return outputRouteTable(ctx, cmd, query, matches)
}

func outputRouteJSON(ctx context.Context, cmd *cobra.Command, matches []domain.Match) error {
	out := make([]routeMatchJSON, 0, len(matches))
	for i := range matches {
		m := &matches[i]
		entry := routeMatchJSON{
			SkillID:         m.Skill.ID,
			Title:           m.Skill.DisplayTitle(),
			Path:            m.Skill.Path,
			Score:           m.Score,
			MatchedKeywords: m.MatchedKeywords,
			Fallback:        m.Fallback,
		}
		if routeLoad && i == 0 {
			content, err := contentService.GetContent(ctx, m.Skill.ID)
			if err != nil {
				return fmt.Errorf("failed to load %s: %w", m.Skill.ID, err)
			}
			entry.Content = content
		}
		out = append(out, entry)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal matches: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputRouteTable(ctx context.Context, cmd *cobra.Command, query string, matches []domain.Match) error {
	if len(matches) == 0 {
		cmd.Println("No matches.")
		return nil
	}

	if matches[0].Fallback {
		cmd.Printf("Nothing matched %q; starting at the corpus entry point.\n", query)
	} else {
		cmd.Printf("Matches for %q:\n", query)
	}
	cmd.Println()

	for i := range matches {
		m := &matches[i]
		if m.Fallback {
			cmd.Printf("  [%d] %s: %s (entry point)\n", i+1, m.Skill.ID, m.Skill.DisplayTitle())
		} else {
			cmd.Printf("  [%d] %s: %s (score %d)\n", i+1, m.Skill.ID, m.Skill.DisplayTitle(), m.Score)
		}
		if len(m.MatchedKeywords) > 0 {
			cmd.Printf("      matched: %s\n", strings.Join(m.MatchedKeywords, ", "))
		}
		if m.Skill.Description != "" {
			cmd.Printf("      %s\n", m.Skill.Description)
		}
		cmd.Println()
	}

	if routeLoad {
		content, err := contentService.GetContent(ctx, matches[0].Skill.ID)
		if err != nil {
			return fmt.Errorf("failed to load %s: %w", matches[0].Skill.ID, err)
		}
		cmd.Printf("--- %s ---\n\n", matches[0].Skill.ID)
		cmd.Println(content)
	} else {
		cmd.Println("Read one with: skilldex show <id>")
	}

	return nil
}
