// dash is a terminal side-scrolling platformer driven by level scripts.
//
// Usage:
//
//	dash list                 - List available levels
//	dash play <level>         - Play a level
//	dash play --file F        - Play a level file (add --watch to hot reload it)
//	dash menu                 - Start menu to pick levels interactively
//	dash check <file>...      - Validate level files
//	dash scores <level>       - Show best runs for a level
//	dash serve                - Start SSH server for remote play
//
// Global flags:
//
//	--db <path>         - Set database path (default: ~/.dash/dash.db)
//	--config <path>     - Physics and timing config YAML
//	--levels <dir>      - Load extra levels from a directory
//	--log-level <lvl>   - debug, info, warn or error (default: warn)
//	--log-file <path>   - Write logs to a file instead of stderr
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-dash/internal/games/dash"
	"github.com/vovakirdan/tui-dash/internal/games/dash/levels"
)

var (
	// Global flags
	flagDBPath    string
	flagConfig    string
	flagLevelsDir string
	flagLogLevel  string
	flagLogFile   string

	logger  *log.Logger
	logFile *os.File
)

func main() {
	err := rootCmd.Execute()
	if logFile != nil {
		logFile.Close()
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "dash",
	Short: "TUI Dash - a rhythm platformer in your terminal",
	Long: `TUI Dash is a terminal side-scroller: the world scrolls on its own and
you jump, hover, flip gravity and steer an arrow through levels described by
small text scripts.

Available commands:
  list     - Show all available levels
  play     - Play a specific level directly
  menu     - Interactive level picker menu
  check    - Validate level files
  scores   - View best runs
  serve    - Start SSH server for remote play

Examples:
  dash list
  dash play first-flight
  dash play --file ./my-level.yaml --watch
  dash menu
  dash check ./levels/*.yaml
  dash serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.dash/dash.db", "Path to attempts database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom physics config YAML")
	rootCmd.PersistentFlags().StringVar(&flagLevelsDir, "levels", "", "Directory with extra level files")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "Write logs to this file")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(checkCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger, applies the config path and registers extra levels.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}

	out := os.Stderr
	if flagLogFile != "" {
		f, err := os.OpenFile(flagLogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
		if err != nil {
			return fmt.Errorf("cannot open log file: %w", err)
		}
		logFile = f
		out = f
	}

	logger = log.NewWithOptions(out, log.Options{
		ReportTimestamp: true,
		Prefix:          "dash",
		Level:           level,
	})
	dash.SetLogger(logger)
	dash.SetConfigPath(flagConfig)

	if flagLevelsDir == "" {
		return nil
	}
	lvls, err := levels.NewLoader(flagLevelsDir).LoadAll()
	if err != nil {
		return fmt.Errorf("cannot load levels from %s: %w", flagLevelsDir, err)
	}
	for _, lvl := range lvls {
		dash.Register(lvl)
		logger.Debug("level registered", "id", lvl.ID, "file", lvl.FilePath)
	}
	return nil
}
