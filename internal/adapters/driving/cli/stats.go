package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"
)

var statsRecent int

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show routing statistics",
	Long: `Summarises recorded routing activity: how many queries were asked,
how many resolved through keywords, how often the corpus entry point
had to step in, and which skills are hit most.

A high fallback share usually means the corpus is missing keywords
for what people actually ask.`,
	RunE: runStats,
}

func init() {
	statsCmd.Flags().IntVar(&statsRecent, "recent", 0, "also list the N most recent queries")
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, _ []string) error {
	if statsService == nil {
		return errors.New("stats service not configured")
	}

	ctx := context.Background()
	stats, err := statsService.Stats(ctx)
	if err != nil {
		return fmt.Errorf("failed to read stats: %w", err)
	}

	if stats.TotalQueries == 0 {
		cmd.Println("No routing activity recorded yet.")
		return nil
	}

	fallbackShare := float64(stats.Fallbacks) / float64(stats.TotalQueries) * 100

	cmd.Println("Routing activity")
	cmd.Println("================")
	cmd.Println()
	cmd.Printf("  Queries:   %d\n", stats.TotalQueries)
	cmd.Printf("  Resolved:  %d\n", stats.Resolved)
	cmd.Printf("  Fallbacks: %d (%.0f%%)\n", stats.Fallbacks, fallbackShare)
	cmd.Println()

	if len(stats.TopSkills) > 0 {
		cmd.Println("  Top skills:")
		for i := range stats.TopSkills {
			cmd.Printf("    %2d. %s (%d hit(s))\n",
				i+1, stats.TopSkills[i].SkillID, stats.TopSkills[i].Hits)
		}
		cmd.Println()
	}

	if statsRecent <= 0 {
		return nil
	}

	records, err := statsService.Recent(ctx, statsRecent)
	if err != nil {
		return fmt.Errorf("failed to read recent queries: %w", err)
	}

	cmd.Println("  Recent queries:")
	for i := range records {
		r := &records[i]
		cmd.Printf("    %s  %-8s  %q\n",
			r.CreatedAt.Format("2006-01-02 15:04"), r.Outcome, r.Query)
	}

	return nil
}
