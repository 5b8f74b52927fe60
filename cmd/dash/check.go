package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dash/internal/games/dash/levels"
)

var checkCmd = &cobra.Command{
	Use:   "check <file>...",
	Short: "Validate level files",
	Long: `Parse each level file and interpret its whole script once.
Errors name the failing script line.

Examples:
  dash check ./my-level.yaml
  dash check ./levels/*.yaml`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

var errCheckFailed = errors.New("some levels are invalid")

func runCheck(cmd *cobra.Command, args []string) error {
	failed := false
	for _, path := range args {
		lvl, err := levels.LoadFile(path)
		if err != nil {
			failed = true
			fmt.Fprintf(cmd.OutOrStdout(), "FAIL  %s: %v\n", path, err)
			continue
		}
		fmt.Fprintf(cmd.OutOrStdout(), "ok    %s  %s (%d columns)\n", path, lvl.ID, lvl.Columns())
	}
	if failed {
		return errCheckFailed
	}
	return nil
}
