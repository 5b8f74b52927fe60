package tui

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/games/dash/levels"
	"github.com/vovakirdan/tui-dash/internal/registry"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

// intervalSource is implemented by games that configure their own driver periods.
type intervalSource interface {
	Intervals() (tick, frame time.Duration)
}

// reloadable is implemented by games that accept an edited level in place.
type reloadable interface {
	Reload(lvl levels.Level) error
}

// generational is implemented by games whose resets invalidate in-flight
// driver messages.
type generational interface {
	Generation() uint64
}

// LevelReloadMsg reports that the watched level file changed.
type LevelReloadMsg struct {
	Path string
}

// reloadErrMsg reports a watcher failure.
type reloadErrMsg struct {
	err error
}

// statusColor is the colour of the reload status line.
var statusColor = core.RGB{R: 255, G: 215, B: 0}

// Model is the Bubble Tea model for playing one level.
type Model struct {
	game       registry.Game
	screen     *core.Screen
	store      *storage.Store
	config     core.RuntimeConfig
	inputFrame core.InputFrame
	gameState  core.GameState
	keyMapper  *KeyMapper
	hold       *HoldTracker
	logger     *log.Logger
	watcher    *levels.Watcher
	watchPath  string
	status     string
	gen        uint64
	tick       time.Duration
	frame      time.Duration
	quitting   bool
	backToMenu bool
}

// ModelOption configures a Model.
type ModelOption func(*Model)

// WithLogger sets the logger used for storage and reload failures.
func WithLogger(l *log.Logger) ModelOption {
	return func(m *Model) {
		m.logger = l
	}
}

// WithWatch reloads the level whenever the file at path changes.
func WithWatch(path string) ModelOption {
	return func(m *Model) {
		m.watchPath = path
	}
}

// NewModel creates a new Bubble Tea model for the given level.
func NewModel(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) Model {
	m := Model{
		game:       game,
		screen:     core.NewScreen(cfg.ScreenW, cfg.ScreenH),
		store:      store,
		config:     cfg,
		inputFrame: core.NewInputFrame(),
		keyMapper:  NewKeyMapper(),
		hold:       NewHoldTracker(DefaultHoldInitial, DefaultHoldRepeat),
		logger:     log.New(io.Discard),
		tick:       cfg.TickInterval,
		frame:      cfg.FrameInterval,
	}
	for _, opt := range opts {
		opt(&m)
	}

	m.game.Reset(m.config)
	m.gameState = m.game.State()
	m.gen = m.generation()
	if src, ok := m.game.(intervalSource); ok {
		m.tick, m.frame = src.Intervals()
	}

	if m.watchPath != "" {
		w, err := levels.NewWatcher(m.watchPath)
		if err != nil {
			m.logger.Warn("cannot watch level file", "path", m.watchPath, "err", err)
			m.status = "watch failed: " + err.Error()
		} else {
			m.watcher = w
		}
	}
	return m
}

// Init starts the tick driver and the file watcher.
func (m Model) Init() tea.Cmd {
	return tea.Batch(tickCmd(m.gen, m.tick), m.waitForReload())
}

// waitForReload blocks on the watcher until the level file changes.
func (m Model) waitForReload() tea.Cmd {
	if m.watcher == nil {
		return nil
	}
	w := m.watcher
	return func() tea.Msg {
		select {
		case path, ok := <-w.Events:
			if !ok {
				return nil
			}
			return LevelReloadMsg{Path: path}
		case err, ok := <-w.Errors:
			if !ok {
				return nil
			}
			return reloadErrMsg{err: err}
		}
	}
}

// Update handles messages and updates the model state.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)

	case tea.WindowSizeMsg:
		m.config.ScreenW = msg.Width
		m.config.ScreenH = msg.Height
		m.screen.Resize(msg.Width, msg.Height)
		return m, nil

	case TickMsg:
		if msg.Gen != m.gen {
			return m, nil // stale
		}
		res := m.game.Step(m.inputFrame)
		return m.afterStep(res)

	case FrameMsg:
		if msg.Gen != m.gen {
			return m, nil
		}
		res := m.game.Frame(m.inputFrame)
		return m.afterStep(res)

	case HoldCheckMsg:
		if m.hold.Check(msg.Seq, msg.At) {
			m.inputFrame.Set(core.ActionJumpReleased)
		}
		return m, nil

	case tea.BlurMsg:
		m.releaseJump()
		return m, nil

	case LevelReloadMsg:
		if !m.reload(msg.Path) {
			return m, m.waitForReload()
		}
		// The reset dropped the running chain; start a new one.
		m.releaseJump()
		m.gen = m.generation()
		m.gameState = m.game.State()
		return m, tea.Batch(tickCmd(m.gen, m.tick), m.waitForReload())

	case reloadErrMsg:
		m.logger.Warn("level watcher", "err", msg.err)
		m.status = "watch error: " + msg.err.Error()
		return m, m.waitForReload()
	}

	return m, nil
}

// handleKey processes keyboard input.
func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if msg.String() == "ctrl+s" {
		m.saveScreenshot()
		return m, nil
	}

	action, isQuit := m.keyMapper.MapKey(msg)
	if isQuit {
		m.quitting = true
		return m, tea.Quit
	}

	switch action {
	case core.ActionNone:
		return m, nil
	case core.ActionJumpPressed:
		rising, seq := m.hold.Press(time.Now())
		if rising {
			m.inputFrame.Set(core.ActionJumpPressed)
		}
		return m, holdCheckCmd(seq, m.hold.Timeout())
	}

	m.inputFrame.Set(action)
	return m, nil
}

// releaseJump ends a held jump without waiting for the repeat timeout.
func (m *Model) releaseJump() {
	if m.hold.Release() {
		m.inputFrame.Set(core.ActionJumpReleased)
	}
}

// afterStep records the result and schedules the next driver message.
func (m Model) afterStep(res core.StepResult) (tea.Model, tea.Cmd) {
	m.gameState = res.State
	m.gen = res.Generation
	m.inputFrame.Clear()

	if res.Died {
		m.saveAttempt(res.State.Attempts, res.State.Percent, false)
	}
	if res.Completed {
		m.saveAttempt(res.State.Attempts, 100, true)
	}

	if res.State.Menu {
		m.backToMenu = true
		return m, tea.Quit
	}

	return m, driverCmd(res.Next, m.gen, m.tick, m.frame)
}

// saveAttempt stores one finished attempt.
func (m *Model) saveAttempt(attempt, percent int, completed bool) {
	if m.store == nil {
		return
	}
	if _, err := m.store.SaveAttempt(m.game.ID(), attempt, percent, completed); err != nil {
		m.logger.Warn("cannot save attempt", "level", m.game.ID(), "err", err)
	}
}

// generation returns the game's current clock generation.
func (m Model) generation() uint64 {
	if g, ok := m.game.(generational); ok {
		return g.Generation()
	}
	return 0
}

// reload parses the changed level file and swaps it into the running game.
// It reports whether the game was reset.
func (m *Model) reload(path string) bool {
	r, ok := m.game.(reloadable)
	if !ok {
		return false
	}
	lvl, err := levels.LoadFile(path)
	if err == nil {
		err = r.Reload(lvl)
	}
	if err != nil {
		m.logger.Warn("reload failed", "path", path, "err", err)
		m.status = "reload failed: " + err.Error()
		return false
	}
	m.logger.Info("level reloaded", "path", path, "level", lvl.ID)
	m.status = "reloaded " + filepath.Base(path) + " at " + time.Now().Format("15:04:05")
	return true
}

// saveScreenshot saves the current screen to a file.
func (m *Model) saveScreenshot() {
	// Render current state
	m.game.Render(m.screen)

	dir := filepath.Join(os.Getenv("HOME"), ".dash", "screenshots")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		m.logger.Warn("cannot create screenshot directory", "err", err)
		return
	}

	// Generate filename with timestamp
	timestamp := time.Now().Format("20060102_150405")
	filename := fmt.Sprintf("%s_%s.txt", m.game.ID(), timestamp)
	path := filepath.Join(dir, filename)

	if err := os.WriteFile(path, []byte(m.screen.String()), 0o600); err != nil {
		m.logger.Warn("cannot save screenshot", "err", err)
		return
	}
	m.status = "screenshot " + filename
}

// View renders the current state to a string for display.
func (m Model) View() string {
	if m.quitting {
		return ""
	}

	m.game.Render(m.screen)
	if m.status != "" && m.screen.Height() > 0 {
		m.screen.DrawTextColored(0, m.screen.Height()-1, m.status, statusColor)
	}
	return RenderScreen(m.screen)
}

// IsQuitting returns true if user requested to quit entirely.
func (m Model) IsQuitting() bool {
	return m.quitting
}

// BackToMenu returns true if user requested to go back to menu.
func (m Model) BackToMenu() bool {
	return m.backToMenu
}

// Close stops the file watcher.
func (m Model) Close() error {
	if m.watcher == nil {
		return nil
	}
	return m.watcher.Close()
}

// Run starts the Bubble Tea program for one level.
// It returns true when the player asked for the level menu.
func Run(game registry.Game, store *storage.Store, cfg core.RuntimeConfig, opts ...ModelOption) (backToMenu bool, err error) {
	model := NewModel(game, store, cfg, opts...)
	defer model.Close() //nolint:errcheck // watcher shutdown is best-effort

	p := tea.NewProgram(
		model,
		tea.WithAltScreen(), // Use alternate screen buffer
		tea.WithReportFocus(),
	)

	final, err := p.Run()
	if err != nil {
		return false, err
	}
	if fm, ok := final.(Model); ok {
		return fm.BackToMenu(), nil
	}
	return false, nil
}
