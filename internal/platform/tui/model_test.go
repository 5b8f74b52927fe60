package tui

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/games/dash"
	"github.com/vovakirdan/tui-dash/internal/games/dash/levels"
	"github.com/vovakirdan/tui-dash/internal/storage"
)

// fakeGame records the inputs it sees and replays scripted results.
type fakeGame struct {
	steps   int
	frames  int
	inputs  []core.InputFrame
	results []core.StepResult
}

func (g *fakeGame) ID() string               { return "fake" }
func (g *fakeGame) Title() string            { return "Fake" }
func (g *fakeGame) Reset(core.RuntimeConfig) {}
func (g *fakeGame) Render(dst *core.Screen)  { dst.DrawText(0, 0, "fake") }
func (g *fakeGame) State() core.GameState    { return core.GameState{Attempts: 1} }
func (g *fakeGame) Intervals() (time.Duration, time.Duration) {
	return 10 * time.Millisecond, 20 * time.Millisecond
}

func (g *fakeGame) next(in core.InputFrame) core.StepResult {
	g.inputs = append(g.inputs, in.Clone())
	if len(g.results) == 0 {
		return core.StepResult{State: core.GameState{Attempts: 1}}
	}
	res := g.results[0]
	g.results = g.results[1:]
	return res
}

func (g *fakeGame) Step(in core.InputFrame) core.StepResult {
	g.steps++
	return g.next(in)
}

func (g *fakeGame) Frame(in core.InputFrame) core.StepResult {
	g.frames++
	return g.next(in)
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	nm, ok := next.(Model)
	if !ok {
		t.Fatalf("Update returned %T", next)
	}
	return nm, cmd
}

func TestModelDropsStaleMessages(t *testing.T) {
	g := &fakeGame{results: []core.StepResult{
		{Next: core.DriverFrame, Generation: 1},
	}}
	m := NewModel(g, nil, core.DefaultConfig())

	m, cmd := update(t, m, TickMsg{Gen: 0})
	if g.steps != 1 || cmd == nil {
		t.Fatalf("steps = %d, cmd nil = %v", g.steps, cmd == nil)
	}

	m, cmd = update(t, m, TickMsg{Gen: 0})
	if g.steps != 1 || cmd != nil {
		t.Error("stale tick should be dropped")
	}

	_, _ = update(t, m, FrameMsg{Gen: 1})
	if g.frames != 1 {
		t.Errorf("frames = %d, want 1", g.frames)
	}
}

func TestModelJumpEdges(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, core.DefaultConfig())

	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	m, _ = update(t, m, space)
	m, _ = update(t, m, space)
	m, _ = update(t, m, TickMsg{})
	if !g.inputs[0].Has(core.ActionJumpPressed) {
		t.Error("first tick should see the jump press")
	}

	m, _ = update(t, m, TickMsg{})
	if g.inputs[1].Has(core.ActionJumpPressed) {
		t.Error("repeat should not press again")
	}

	m, _ = update(t, m, HoldCheckMsg{Seq: m.hold.seq, At: time.Now().Add(time.Second)})
	_, _ = update(t, m, TickMsg{})
	if !g.inputs[2].Has(core.ActionJumpReleased) {
		t.Error("expected a synthesized release")
	}
}

func TestModelSavesAttempts(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "dash.db"))
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	defer store.Close()

	g := &fakeGame{results: []core.StepResult{
		{Died: true, State: core.GameState{Attempts: 1, Percent: 37}},
		{Generation: 1, State: core.GameState{Attempts: 2, Percent: 37}},
		{Generation: 1, Completed: true, State: core.GameState{Attempts: 2, Percent: 100, Complete: true}},
	}}
	m := NewModel(g, store, core.DefaultConfig())

	m, _ = update(t, m, TickMsg{Gen: 0})
	m, _ = update(t, m, TickMsg{Gen: 0})
	_, _ = update(t, m, TickMsg{Gen: 1})

	runs, err := store.AllRuns("fake")
	if err != nil {
		t.Fatalf("AllRuns: %v", err)
	}
	if len(runs) != 2 {
		t.Fatalf("runs = %d, want 2", len(runs))
	}
	if !runs[0].Completed || runs[0].Percent != 100 || runs[0].Attempt != 2 {
		t.Errorf("latest run = %+v", runs[0])
	}
	if runs[1].Completed || runs[1].Percent != 37 {
		t.Errorf("first run = %+v", runs[1])
	}
}

func TestModelMenuQuits(t *testing.T) {
	g := &fakeGame{results: []core.StepResult{
		{State: core.GameState{Menu: true}},
	}}
	m := NewModel(g, nil, core.DefaultConfig())

	m, _ = update(t, m, runeKey('b'))
	m, cmd := update(t, m, TickMsg{})
	if !g.inputs[0].Has(core.ActionMenu) {
		t.Error("menu action not forwarded")
	}
	if !m.BackToMenu() || cmd == nil {
		t.Error("expected back to menu")
	}
}

func TestModelBlurReleasesJump(t *testing.T) {
	g := &fakeGame{}
	m := NewModel(g, nil, core.DefaultConfig())

	space := tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}}
	m, _ = update(t, m, space)
	seq := m.hold.seq
	m, _ = update(t, m, TickMsg{})

	m, _ = update(t, m, tea.BlurMsg{})
	m, _ = update(t, m, TickMsg{})
	if !g.inputs[1].Has(core.ActionJumpReleased) {
		t.Fatal("focus loss should release the jump")
	}

	m, _ = update(t, m, HoldCheckMsg{Seq: seq, At: time.Now().Add(time.Second)})
	_, _ = update(t, m, TickMsg{})
	if g.inputs[2].Has(core.ActionJumpReleased) {
		t.Error("stale hold check released twice")
	}
}

func TestModelQuitKey(t *testing.T) {
	m := NewModel(&fakeGame{}, nil, core.DefaultConfig())
	m, cmd := update(t, m, runeKey('q'))
	if !m.IsQuitting() || cmd == nil {
		t.Error("q should quit")
	}
	if m.View() != "" {
		t.Error("quitting view should be empty")
	}
}

const reloadLevel = `id: reload-demo
name: Reload Demo
palette:
  foreground: "#00FF00"
  animated: red
  background: "#D5DEED"
  ground: SlateGray
script:
  - "b9"
  - "end"
`

func TestModelReloadRestartsChain(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.yaml")
	if err := os.WriteFile(path, []byte(reloadLevel), 0o600); err != nil {
		t.Fatal(err)
	}
	lvl, err := levels.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}

	m := NewModel(dash.New(lvl), nil, core.DefaultConfig())
	before := m.gen

	edited := strings.Replace(reloadLevel, `"b9"`, `"b8"`, 1)
	if err := os.WriteFile(path, []byte(edited), 0o600); err != nil {
		t.Fatal(err)
	}

	m, cmd := update(t, m, LevelReloadMsg{Path: path})
	if cmd == nil {
		t.Fatal("reload should schedule a new tick")
	}
	if m.gen == before {
		t.Error("reload should move to a new generation")
	}
	if !strings.HasPrefix(m.status, "reloaded") {
		t.Errorf("status = %q", m.status)
	}

	// The tick scheduled before the reload is stale.
	m, cmd = update(t, m, TickMsg{Gen: before})
	if cmd != nil {
		t.Error("stale tick should be dropped")
	}
}

func TestModelReloadRejectsBrokenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "level.yaml")
	if err := os.WriteFile(path, []byte(reloadLevel), 0o600); err != nil {
		t.Fatal(err)
	}
	lvl, err := levels.LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	m := NewModel(dash.New(lvl), nil, core.DefaultConfig())
	before := m.gen

	broken := strings.Replace(reloadLevel, `"b9"`, `"bx9"`, 1)
	if err := os.WriteFile(path, []byte(broken), 0o600); err != nil {
		t.Fatal(err)
	}

	m, _ = update(t, m, LevelReloadMsg{Path: path})
	if m.gen != before {
		t.Error("failed reload must keep the running chain")
	}
	if !strings.HasPrefix(m.status, "reload failed") {
		t.Errorf("status = %q", m.status)
	}
}
