// Package dash adapts the level simulation to the platform: one Game per
// level, registered in the level registry, rendered into a core.Screen.
package dash

import (
	"fmt"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/games/dash/levels"
	"github.com/vovakirdan/tui-dash/internal/games/dash/sim"
	"github.com/vovakirdan/tui-dash/internal/registry"
)

// configPath stores the custom config path set via CLI
var configPath string

// logger receives simulation events. Discarded unless the CLI sets one.
var logger = log.New(io.Discard)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetLogger sets the logger handed to every new world.
func SetLogger(l *log.Logger) {
	if l != nil {
		logger = l
	}
}

// Game plays one level.
type Game struct {
	level   levels.Level
	cfg     config.DashConfig
	world   *sim.World
	runtime core.RuntimeConfig
	err     error
}

// New creates a game for lvl. The world is built on Reset.
func New(lvl levels.Level) *Game {
	return &Game{level: lvl}
}

// ID returns the level ID.
func (g *Game) ID() string {
	return g.level.ID
}

// Title returns the level name, or its ID when unnamed.
func (g *Game) Title() string {
	if g.level.Name != "" {
		return g.level.Name
	}
	return g.level.ID
}

// Reset loads the simulation config and starts the level at attempt 1.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.runtime = rc
	cfg, err := config.LoadDash(configPath)
	if err != nil {
		logger.Warn("config load failed, using defaults", "path", configPath, "err", err)
		cfg = config.DefaultDashConfig()
	}
	g.cfg = cfg

	w, err := sim.NewWorld(g.level, cfg, sim.WithLogger(logger.With("level", g.level.ID)))
	if err != nil {
		g.err = err
		g.world = nil
		logger.Error("level rejected", "level", g.level.ID, "err", err)
		return
	}
	g.err = nil
	g.world = w
}

// Err returns the error that prevented the level from starting.
func (g *Game) Err() error {
	return g.err
}

// Intervals returns the tick and frame driver periods.
func (g *Game) Intervals() (tick, frame time.Duration) {
	tick, frame = g.cfg.Timing.TickInterval, g.cfg.Timing.FrameInterval
	if tick <= 0 {
		tick = g.runtime.TickInterval
	}
	if frame <= 0 {
		frame = g.runtime.FrameInterval
	}
	return tick, frame
}

// Step advances one fixed tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{State: core.GameState{Ended: true, Menu: in.Has(core.ActionMenu)}}
	}
	return g.world.Tick(in)
}

// Frame advances one animation frame.
func (g *Game) Frame(in core.InputFrame) core.StepResult {
	if g.world == nil {
		return core.StepResult{State: core.GameState{Ended: true, Menu: in.Has(core.ActionMenu)}}
	}
	return g.world.Frame(in)
}

// Reload swaps in an edited version of the level and starts over.
func (g *Game) Reload(lvl levels.Level) error {
	if lvl.ID != g.level.ID {
		return fmt.Errorf("dash: reload of %q with level %q", g.level.ID, lvl.ID)
	}
	if g.world == nil {
		g.level = lvl
		g.Reset(g.runtime)
		return g.err
	}
	if err := g.world.Load(lvl); err != nil {
		return err
	}
	g.level = lvl
	return nil
}

// Generation returns the clock generation driver messages must carry.
func (g *Game) Generation() uint64 {
	if g.world == nil {
		return 0
	}
	return g.world.Clock().Generation()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	if g.world == nil {
		return core.GameState{Ended: true}
	}
	return g.world.State()
}

// Snapshot returns the world snapshot. ok is false if the level failed to start.
func (g *Game) Snapshot() (sim.Snapshot, bool) {
	if g.world == nil {
		return sim.Snapshot{}, false
	}
	return g.world.Snapshot(), true
}

// Register adds lvl to the level registry, replacing a level with the same ID.
func Register(lvl levels.Level) {
	f := func() registry.Game { return New(lvl) }
	if registry.Exists(lvl.ID) {
		registry.Replace(lvl.ID, f)
		return
	}
	registry.Register(lvl.ID, f)
}

// Register the builtin level pack with the registry
func init() {
	builtin, err := levels.Builtin()
	if err != nil {
		panic(fmt.Sprintf("dash: builtin levels: %v", err))
	}
	for _, lvl := range builtin {
		Register(lvl)
	}
}
