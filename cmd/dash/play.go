package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/games/dash"
	"github.com/vovakirdan/tui-dash/internal/games/dash/levels"
	"github.com/vovakirdan/tui-dash/internal/platform/tui"
	"github.com/vovakirdan/tui-dash/internal/registry"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

var (
	flagFile  string
	flagWatch bool
)

var playCmd = &cobra.Command{
	Use:   "play [level]",
	Short: "Play a level",
	Long: `Start playing the specified level, or a level file with --file.

Controls:
  Space/Up/W - Jump (hold to keep jumping)
  M          - Fly-through practice mode
  P/Esc      - Pause
  R          - Restart (while paused or after the level ends)
  B          - Back to the level menu
  Ctrl+S     - Screenshot to ~/.dash/screenshots
  Q/Ctrl+C   - Quit

Examples:
  dash play first-flight
  dash play --file ./my-level.yaml
  dash play --file ./my-level.yaml --watch
  dash play arrowhead --config ./slow.yaml`,
	Args: cobra.MaximumNArgs(1),
	RunE: runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagFile, "file", "", "Play a level file instead of a registered level")
	playCmd.Flags().BoolVar(&flagWatch, "watch", false, "Reload the level file when it changes (requires --file)")
}

// terminalConfig returns the runtime config sized to the current terminal.
func terminalConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	return cfg
}

// openStore opens the attempts database, or returns nil so play continues
// without history.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open attempts database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

func runPlay(_ *cobra.Command, args []string) error {
	var levelID string
	var opts []tui.ModelOption

	switch {
	case flagFile != "":
		path, err := filepath.Abs(flagFile)
		if err != nil {
			return err
		}
		lvl, err := levels.LoadFile(path)
		if err != nil {
			return err
		}
		dash.Register(lvl)
		levelID = lvl.ID
		if flagWatch {
			opts = append(opts, tui.WithWatch(path))
		}
	case len(args) == 1:
		levelID = args[0]
	default:
		return errors.New("specify a level id or --file")
	}
	if flagWatch && flagFile == "" {
		return errors.New("--watch requires --file")
	}

	// Check if level exists
	if !registry.Exists(levelID) {
		return fmt.Errorf("unknown level %q, run 'dash list' to see available levels", levelID)
	}

	game, err := registry.Create(levelID)
	if err != nil {
		return fmt.Errorf("cannot create level: %w", err)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}

	cfg := terminalConfig()
	opts = append(opts, tui.WithLogger(logger.With("level", levelID)))
	backToMenu, err := tui.Run(game, store, cfg, opts...)
	if err != nil {
		return fmt.Errorf("error running level: %w", err)
	}
	if backToMenu {
		return tui.RunSession(store, cfg, logger)
	}
	return nil
}
