package main

import (
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dash/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start with a level picker menu",
	Long: `Start in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a level.
Press B in a level to return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select level
  Tab          - Best runs
  Q            - Quit

Examples:
  dash menu
  dash menu --levels ./my-levels
  dash menu --db ./dash.db`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	store := openStore()
	if store != nil {
		defer store.Close()
	}
	return tui.RunSession(store, terminalConfig(), logger)
}
