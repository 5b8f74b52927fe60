package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dash/internal/registry"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

var scoresCmd = &cobra.Command{
	Use:   "scores <level>",
	Short: "Show best runs for a level",
	Long: `Display the ten best runs and the attempt statistics of a level.

Examples:
  dash scores first-flight
  dash scores arrowhead`,
	Args: cobra.ExactArgs(1),
	RunE: runScores,
}

func runScores(cmd *cobra.Command, args []string) error {
	levelID := args[0]

	if !registry.Exists(levelID) {
		return fmt.Errorf("unknown level %q, run 'dash list' to see available levels", levelID)
	}

	game, err := registry.Create(levelID)
	if err != nil {
		return fmt.Errorf("cannot create level: %w", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("cannot open attempts database: %w", err)
	}
	defer store.Close()

	runs, err := store.TopRuns(levelID, 10)
	if err != nil {
		return fmt.Errorf("cannot read runs: %w", err)
	}

	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Best Runs - %s\n\n", game.Title())

	if len(runs) == 0 {
		fmt.Fprintln(out, "No runs recorded yet.")
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Play 'dash play %s' to set the first record!\n", levelID)
		return nil
	}

	// Print header
	fmt.Fprintf(out, "  %-4s  %-8s  %-7s  %s\n", "Rank", "Progress", "Attempt", "Date")
	fmt.Fprintf(out, "  %-4s  %-8s  %-7s  %s\n", "----", "--------", "-------", "----")

	for i, run := range runs {
		progress := fmt.Sprintf("%d%%", run.Percent)
		if run.Completed {
			progress = "done"
		}
		fmt.Fprintf(out, "  %-4d  %-8s  %-7d  %s\n", i+1, progress, run.Attempt, run.CreatedAt.Format("2006-01-02 15:04"))
	}

	stats, err := store.GetLevelStats(levelID)
	if err == nil {
		fmt.Fprintln(out)
		fmt.Fprintf(out, "Runs: %d  Completions: %d  Best: %d%%  Average: %.1f%%\n",
			stats.Runs, stats.Completions, stats.BestPercent, stats.AvgPercent)
	}
	return nil
}
