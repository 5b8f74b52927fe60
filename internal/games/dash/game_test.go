package dash

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/games/dash/levels"
	"github.com/vovakirdan/tui-dash/internal/registry"
)

func newGame(t *testing.T, id string) *Game {
	t.Helper()
	g, err := registry.Create(id)
	if err != nil {
		t.Fatalf("Create(%q) error = %v", id, err)
	}
	dg, ok := g.(*Game)
	if !ok {
		t.Fatalf("Create(%q) returned %T", id, g)
	}
	dg.Reset(core.DefaultConfig())
	if dg.Err() != nil {
		t.Fatalf("Reset() error = %v", dg.Err())
	}
	return dg
}

func TestBuiltinLevelsRegistered(t *testing.T) {
	builtin, err := levels.Builtin()
	if err != nil {
		t.Fatalf("Builtin() error = %v", err)
	}
	for _, lvl := range builtin {
		if !registry.Exists(lvl.ID) {
			t.Errorf("level %q not registered", lvl.ID)
		}
	}
}

func TestGameStepAndFrame(t *testing.T) {
	g := newGame(t, "first-flight")

	in := core.NewInputFrame()
	var res core.StepResult
	for i := 0; i < 10; i++ {
		res = g.Step(in)
	}
	if res.Next != core.DriverTick || res.State.Attempts != 1 {
		t.Errorf("result = %+v, expected tick driver at attempt 1", res)
	}

	// The frame driver is inactive, so Frame must not advance anything.
	before, _ := g.Snapshot()
	g.Frame(in)
	after, _ := g.Snapshot()
	if before.Player.Rect != after.Player.Rect {
		t.Error("Frame advanced the world while the tick driver was active")
	}
}

func TestGameIntervals(t *testing.T) {
	g := newGame(t, "first-flight")
	tick, frame := g.Intervals()
	if tick <= 0 || frame <= 0 {
		t.Errorf("Intervals() = %v, %v", tick, frame)
	}
}

func TestGameRender(t *testing.T) {
	g := newGame(t, "first-flight")
	for i := 0; i < 5; i++ {
		g.Step(core.NewInputFrame())
	}

	screen := core.NewScreen(80, 24)
	g.Render(screen)

	hud := screen.Row(0)
	if !strings.Contains(hud, "First Flight") || !strings.Contains(hud, "Attempt 1") {
		t.Errorf("HUD = %q", hud)
	}
	bottom := screen.GetCell(10, 23)
	if !bottom.Styled || !bottom.Backed {
		t.Errorf("ground cell = %+v, expected coloured", bottom)
	}
}

func TestGameRenderPaused(t *testing.T) {
	g := newGame(t, "first-flight")
	in := core.NewInputFrame()
	in.Set(core.ActionPause)
	g.Step(in)

	screen := core.NewScreen(80, 24)
	g.Render(screen)
	if !strings.Contains(screen.String(), "PAUSED") {
		t.Error("paused overlay not drawn")
	}
}

func TestGameReload(t *testing.T) {
	g := newGame(t, "first-flight")

	other := g.level
	other.ID = "someone-else"
	if err := g.Reload(other); err == nil {
		t.Error("Reload() expected error for a different level ID")
	}

	edited := g.level
	edited.Name = "Edited"
	if err := g.Reload(edited); err != nil {
		t.Fatalf("Reload() error = %v", err)
	}
	if g.Title() != "Edited" {
		t.Errorf("Title() = %q after reload", g.Title())
	}
}

func TestProgressBar(t *testing.T) {
	tests := []struct {
		percent int
		want    string
	}{
		{0, "[····]"},
		{50, "[■■··]"},
		{100, "[■■■■]"},
		{150, "[■■■■]"},
	}
	for _, tc := range tests {
		if got := progressBar(tc.percent, 4); got != tc.want {
			t.Errorf("progressBar(%d) = %q, expected %q", tc.percent, got, tc.want)
		}
	}
}
