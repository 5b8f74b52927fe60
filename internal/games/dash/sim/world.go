// Package sim runs a level: it feeds the script interpreter, scrolls and
// retires entities, moves the player, fires timed events and drives the
// static camera protocol across the tick and frame clocks.
package sim

import (
	"fmt"
	"io"
	"math"

	"github.com/charmbracelet/log"

	"github.com/vovakirdan/tui-dash/internal/config"
	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/games/dash/entity"
	"github.com/vovakirdan/tui-dash/internal/games/dash/levels"
	"github.com/vovakirdan/tui-dash/internal/games/dash/script"
)

// Phase is the lifecycle stage of one attempt.
type Phase int

const (
	PhaseIntro    Phase = iota // player flies in, world frozen
	PhaseRunning               // normal play
	PhaseOutro                 // level ended, player flies out
	PhaseComplete              // player left the screen
)

// String returns the phase name.
func (p Phase) String() string {
	switch p {
	case PhaseIntro:
		return "intro"
	case PhaseRunning:
		return "running"
	case PhaseOutro:
		return "outro"
	case PhaseComplete:
		return "complete"
	default:
		return "unknown"
	}
}

// Option configures a World.
type Option func(*World)

// WithLogger sets the logger used for lifecycle and debug events.
func WithLogger(l *log.Logger) Option {
	return func(w *World) {
		if l != nil {
			w.log = l
		}
	}
}

// World is the complete simulation state of one level.
type World struct {
	cfg   config.DashConfig
	level levels.Level
	log   *log.Logger

	clock  Clock
	interp *script.Interpreter
	events Scheduler

	entities []*entity.Entity
	dots     []entity.TrailDot
	columns  []float64
	total    int
	crossed  int

	ground  *entity.Entity
	ceiling *entity.Entity
	player  *Player
	palette entity.Palette

	cursor     float64
	texture    int
	speed      float64
	baseSpeed  float64
	flyThrough bool
	interpDone bool

	phase  Phase
	scroll ScrollState

	settleDeg   float64
	settleFrame int
	scrolled    float64

	held     bool
	paused   bool
	menu     bool
	attempts int
	percent  int
	pending  int
}

// NewWorld validates the level program and returns a world at attempt 1.
func NewWorld(lvl levels.Level, cfg config.DashConfig, opts ...Option) (*World, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if err := lvl.Program.Validate(); err != nil {
		return nil, fmt.Errorf("level %s: %w", lvl.ID, err)
	}
	w := &World{
		cfg:     cfg,
		level:   lvl,
		log:     log.New(io.Discard),
		ground:  entity.NewGround(cfg.Player.FloorY + cfg.Player.Size),
		ceiling: entity.NewGround(cfg.Player.CeilingY - 150),
	}
	for _, opt := range opts {
		opt(w)
	}
	w.reset(1)
	return w, nil
}

// Load replaces the level and starts over at attempt 1.
func (w *World) Load(lvl levels.Level) error {
	if err := lvl.Program.Validate(); err != nil {
		return fmt.Errorf("level %s: %w", lvl.ID, err)
	}
	w.level = lvl
	w.reset(1)
	w.log.Info("level loaded", "id", lvl.ID, "columns", lvl.Program.TotalColumns())
	return nil
}

// Level returns the level being played.
func (w *World) Level() levels.Level {
	return w.level
}

// Phase returns the lifecycle stage.
func (w *World) Phase() Phase {
	return w.phase
}

// ScrollState returns the camera state.
func (w *World) ScrollState() ScrollState {
	return w.scroll
}

// Clock returns the driver arbitration state.
func (w *World) Clock() *Clock {
	return &w.clock
}

// Player returns the live player.
func (w *World) Player() *Player {
	return w.player
}

// State returns the HUD-level state.
func (w *World) State() core.GameState {
	return core.GameState{
		Percent:  w.percent,
		Attempts: w.attempts,
		Paused:   w.paused,
		Ended:    w.phase == PhaseOutro || w.phase == PhaseComplete,
		Complete: w.phase == PhaseComplete,
		Menu:     w.menu,
	}
}

// Tick advances one fixed-rate step. It does nothing unless the tick driver
// is active.
func (w *World) Tick(in core.InputFrame) core.StepResult {
	var res core.StepResult
	if w.applyInput(in) {
		return w.result(res)
	}
	if w.clock.Active() != core.DriverTick || w.paused || w.phase == PhaseComplete {
		return w.result(res)
	}
	if w.pending > 0 {
		w.pending--
		if w.pending == 0 {
			w.restart()
		}
		return w.result(res)
	}

	switch w.phase {
	case PhaseIntro:
		w.stepIntro()
	case PhaseRunning:
		w.stepRunning()
	case PhaseOutro:
		w.stepOutro(&res)
	}

	if w.player.Dying && w.phase != PhaseOutro && w.phase != PhaseComplete {
		w.pending = w.cfg.Timing.DeathDelayTicks()
		res.Died = true
		w.log.Info("player died", "level", w.level.ID, "attempt", w.attempts, "percent", w.percent)
	}
	return w.result(res)
}

// Frame advances one animation frame of the static camera rebuild. It does
// nothing unless the frame driver is active.
func (w *World) Frame(in core.InputFrame) core.StepResult {
	var res core.StepResult
	if w.applyInput(in) {
		return w.result(res)
	}
	if w.clock.Active() != core.DriverFrame || w.paused {
		return w.result(res)
	}
	switch w.scroll {
	case FrozenBuildingAhead:
		w.pumpRebuild()
	case RebuildSettling:
		w.settle()
	default:
		w.clock.Handoff(core.DriverTick)
	}
	return w.result(res)
}

func (w *World) result(res core.StepResult) core.StepResult {
	res.State = w.State()
	res.Next = w.clock.Active()
	res.Generation = w.clock.Generation()
	return res
}

// applyInput applies player commands and reports whether they restarted
// the attempt, which consumes the step.
func (w *World) applyInput(in core.InputFrame) bool {
	if in.Has(core.ActionMenu) {
		w.menu = true
	}
	if in.Has(core.ActionPause) && w.phase != PhaseComplete {
		w.paused = !w.paused
		w.log.Debug("pause", "paused", w.paused)
	}
	if in.Has(core.ActionRestart) && (w.paused || w.phase == PhaseOutro || w.phase == PhaseComplete) {
		w.restart()
		return true
	}
	if in.Has(core.ActionSlowMode) {
		w.toggleFlyThrough()
	}
	if in.Has(core.ActionJumpPressed) {
		w.held = true
		if !w.paused && !w.player.Dying {
			w.player.Active = true
			w.player.kin.Press(w.player)
		}
	}
	if in.Has(core.ActionJumpReleased) {
		w.held = false
		w.player.Active = false
	}
	return false
}

func (w *World) toggleFlyThrough() {
	w.flyThrough = !w.flyThrough
	if w.flyThrough {
		w.baseSpeed = w.speed
		w.speed = w.cfg.Scroll.FlyThroughSpeed
	} else {
		w.speed = w.baseSpeed
	}
	w.log.Debug("fly-through", "on", w.flyThrough, "speed", w.speed)
}

// setSpeed changes the scroll speed; during fly-through the change applies
// once fly-through is switched off.
func (w *World) setSpeed(s float64) {
	if w.flyThrough {
		w.baseSpeed = s
		return
	}
	w.speed = s
}

func (w *World) restart() {
	w.reset(w.attempts + 1)
	w.log.Info("attempt", "level", w.level.ID, "n", w.attempts)
}

// reset restores the initial state of an attempt and cancels every
// in-flight driver message.
func (w *World) reset(attempts int) {
	w.clock.Cancel()
	w.interp = script.NewInterpreter(&w.level.Program, w.cfg.Scroll.FarTriggerX)
	w.events.Reset()
	w.entities = nil
	w.dots = nil
	w.columns = nil
	w.total = w.level.Program.TotalColumns()
	w.crossed = 0
	w.palette = w.level.Palette
	w.player = newPlayer(newKinematics(SchemeFreeFall, w.cfg), w.cfg.Player.StartX, w.cfg.Player.StartY, w.cfg.Player.Size)
	w.cursor = w.cfg.Scroll.SpawnX
	w.texture = 0
	w.speed = w.cfg.Scroll.Speed
	w.baseSpeed = w.speed
	w.flyThrough = false
	w.interpDone = false
	w.phase = PhaseIntro
	w.scroll = Scrolling
	w.settleDeg = 0
	w.settleFrame = 0
	w.scrolled = 0
	w.paused = false
	w.menu = false
	w.attempts = attempts
	w.percent = 0
	w.pending = 0
	w.held = false
}

func (w *World) stepIntro() {
	w.spawn()
	w.stepPlayer(true)
	w.animate()
	if !w.player.Dying {
		w.player.Rect.X += w.speed
	}
	if w.player.Rect.X > w.cfg.Player.IntroEndX {
		w.phase = PhaseRunning
		w.log.Debug("intro done", "x", w.player.Rect.X)
	}
	w.pruneDots()
}

func (w *World) stepRunning() {
	if w.scroll == Scrolling {
		w.spawn()
		w.scrollWorld(-w.speed)
	}
	w.stepPlayer(true)
	w.animate()
	w.updateProgress()
	w.retire()
	w.fireEvents()
	if w.scroll == FrozenBuildingAhead {
		w.advanceStatic()
	}
	w.pruneDots()
	w.checkExhausted()
}

func (w *World) stepOutro(res *core.StepResult) {
	w.stepPlayer(false)
	w.animate()
	w.player.Rect.X += w.speed
	w.pruneDots()
	if w.player.Rect.X >= w.cfg.Scroll.ScreenWidth {
		w.phase = PhaseComplete
		w.percent = 100
		res.Completed = true
		w.log.Info("level complete", "level", w.level.ID, "attempts", w.attempts)
	}
}

// stepPlayer runs the per-tick player sequence: reset contact flags,
// portals, the scheme's contact checks, then movement.
func (w *World) stepPlayer(collide bool) {
	w.player.checkInit()
	if collide && !w.flyThrough {
		w.collidePortals()
		p := w.player
		p.kin.CheckCollisions(p, w, w.held)
	}
	p := w.player
	if p.move(w.held) {
		w.dropDot()
	}
}

func (w *World) dropDot() {
	cx, cy := w.player.Rect.Center()
	w.dots = append(w.dots, entity.TrailDot{X: cx, Y: cy, SpawnPlayerX: w.player.Rect.X})
}

// animate advances every entity animation.
func (w *World) animate() {
	for _, e := range w.entities {
		if e.Anim != nil {
			e.Anim.Step(&e.Rect)
		}
	}
}

// updateProgress counts the column groups the player has passed.
func (w *World) updateProgress() {
	px := w.player.Rect.X
	n := 0
	for n < len(w.columns) && w.columns[n] < px {
		n++
	}
	if n == 0 {
		return
	}
	w.columns = w.columns[n:]
	w.crossed += n
	if w.total > 0 {
		w.percent = core.Clamp(int(math.Round(float64(w.crossed)*100/float64(w.total))), 0, 100)
	}
}

// fireEvents runs every due timed event.
func (w *World) fireEvents() {
	static := w.scroll != Scrolling
	w.events.Process(w.player.Rect.X, w.cfg.Scroll.TriggerProximity, static, w.applyEvent)
}

func (w *World) applyEvent(ev *entity.TimedEvent) bool {
	switch ev.Kind {
	case entity.EventPaletteSwap:
		done := ev.Step(&w.palette)
		if done {
			w.log.Debug("palette", "slot", ev.Slot, "color", w.palette.Get(ev.Slot))
		}
		return done
	case entity.EventTextureSwap:
		w.texture = ev.Texture
		w.log.Debug("texture", "index", ev.Texture)
	case entity.EventStaticCamera:
		if w.scroll == Scrolling {
			w.scroll = FrozenBuildingAhead
			w.log.Debug("static camera", "state", w.scroll, "x", w.player.Rect.X)
		}
	case entity.EventLevelEnd:
		w.endLevel()
	}
	return true
}

func (w *World) endLevel() {
	if w.phase != PhaseRunning || w.player.Dying {
		return
	}
	w.phase = PhaseOutro
	w.log.Info("level end", "level", w.level.ID, "attempt", w.attempts)
}

// checkExhausted ends the level once the script ran out without an end
// directive and every column group has been passed.
func (w *World) checkExhausted() {
	if !w.interpDone || w.scroll != Scrolling || len(w.columns) > 0 {
		return
	}
	if w.events.Has(entity.EventLevelEnd) {
		return
	}
	w.endLevel()
}
