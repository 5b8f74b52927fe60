package entity

import (
	"testing"

	"github.com/vovakirdan/tui-dash/internal/core"
)

func TestEntityClassification(t *testing.T) {
	tests := []struct {
		name                     string
		e                        *Entity
		solid, deadly, ring, act bool
	}{
		{"block", NewBlock(0, 0, 0), true, false, false, false},
		{"ground", NewGround(429), true, false, false, false},
		{"spike", NewSpike(0, 0, false), false, true, false, false},
		{"half spike", NewHalfSpike(0, 0, true), false, true, false, false},
		{"jump ring", NewRing(KindJumpRing, 0, 0, RingJump), false, false, true, false},
		{"gravity ring", NewRing(KindGravityRing, 0, 0, RingGravity), false, false, true, false},
		{"portal", NewPortal(0, 0, FuncArrow), false, false, false, true},
		{"gravity trigger", NewPortal(0, 0, FuncGravityUp), false, false, false, true},
		{"text", NewText(0, 0, "hi"), false, false, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.e.Solid(); got != tc.solid {
				t.Errorf("Solid() = %v, expected %v", got, tc.solid)
			}
			if got := tc.e.Deadly(); got != tc.deadly {
				t.Errorf("Deadly() = %v, expected %v", got, tc.deadly)
			}
			if got := tc.e.Ring(); got != tc.ring {
				t.Errorf("Ring() = %v, expected %v", got, tc.ring)
			}
			if got := tc.e.Activator(); got != tc.act {
				t.Errorf("Activator() = %v, expected %v", got, tc.act)
			}
		})
	}
}

func TestNewPortalKind(t *testing.T) {
	if k := NewPortal(0, 0, FuncGravityDown).Kind; k != KindGravityTrigger {
		t.Errorf("gravity function should build a trigger, got %s", k)
	}
	p := NewPortal(10, 20, FuncHover)
	if p.Kind != KindPortal || !p.Enabled {
		t.Errorf("hover portal = %+v", p)
	}
	if p.Rect.W != 30 || p.Rect.H != 90 {
		t.Errorf("portal size = %vx%v, expected 30x90", p.Rect.W, p.Rect.H)
	}
}

func TestValidPortalFunction(t *testing.T) {
	for _, id := range []int{0, 1, 2, 3, 4, 6, 7, 8, 9, 10} {
		if !ValidPortalFunction(id) {
			t.Errorf("ValidPortalFunction(%d) = false", id)
		}
	}
	for _, id := range []int{-1, 5, 11, 42} {
		if ValidPortalFunction(id) {
			t.Errorf("ValidPortalFunction(%d) = true", id)
		}
	}
}

func TestAnimationStep(t *testing.T) {
	tests := []struct {
		name      string
		dir       Direction
		wantY     float64
		wantSteps int
	}{
		{"up", Up, 340, 4},
		{"down", Down, 460, 4},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := core.NewRect(100, 400, 30, 30)
			a := &Animation{Direction: tc.dir, Distance: 60, Rate: 16, TriggerX: 200, OriginY: 400}

			steps := 0
			for a.Step(&r) {
				steps++
				if steps > 100 {
					t.Fatal("animation never finished")
				}
			}
			if steps != tc.wantSteps {
				t.Errorf("steps = %d, expected %d", steps, tc.wantSteps)
			}
			if r.Y != tc.wantY || !a.Done {
				t.Errorf("y = %v done = %v, expected %v true", r.Y, a.Done, tc.wantY)
			}

			// Done is permanent.
			for i := 0; i < 10; i++ {
				a.Step(&r)
			}
			if r.Y != tc.wantY {
				t.Errorf("done animation moved to %v", r.Y)
			}
		})
	}
}

func TestAnimationWaitsForTrigger(t *testing.T) {
	r := core.NewRect(300, 400, 30, 30)
	a := &Animation{Direction: Up, Distance: 30, Rate: 5, TriggerX: 250, OriginY: 400}

	if a.Step(&r) || r.Y != 400 {
		t.Fatal("animation should not start before the entity passes its trigger")
	}
	r.X = 249
	if !a.Step(&r) || r.Y != 395 {
		t.Errorf("animation should move once past the trigger, y = %v", r.Y)
	}
}

func TestPaletteSwapImmediate(t *testing.T) {
	var p Palette
	red := core.MustParseHex("#FF0000")
	ev := NewPaletteSwap(480, SlotForeground, red, 0)

	if !ev.Step(&p) {
		t.Error("immediate swap should finish in one step")
	}
	if p.Get(SlotForeground) != red {
		t.Errorf("foreground = %v, expected %v", p.Get(SlotForeground), red)
	}
}

func TestPaletteSwapFadeEndsExactly(t *testing.T) {
	var p Palette
	p.Set(SlotBackground, core.MustParseHex("#D5DEED"))
	blue := core.MustParseHex("#0000FF")
	ev := NewPaletteSwap(480, SlotBackground, blue, 45)

	for i := 1; i <= 45; i++ {
		done := ev.Step(&p)
		if done != (i == 45) {
			t.Fatalf("step %d: done = %v", i, done)
		}
	}
	if p.Get(SlotBackground) != blue {
		t.Errorf("background = %v, expected %v", p.Get(SlotBackground), blue)
	}
	if ev.Fade.StepsDone != ev.Fade.Total {
		t.Errorf("StepsDone = %d, Total = %d", ev.Fade.StepsDone, ev.Fade.Total)
	}
}

func TestPaletteSwapCapturesFromAtActivation(t *testing.T) {
	var p Palette
	p.Set(SlotGround, core.RGB{R: 100})
	ev := NewPaletteSwap(0, SlotGround, core.RGB{R: 200}, 2)

	// Colour changes between creation and activation are honoured.
	p.Set(SlotGround, core.RGB{R: 0})
	ev.Step(&p)
	if got := p.Get(SlotGround); got.R != 100 {
		t.Errorf("first fade step = %v, expected R=100", got)
	}
	if ev.Fade.From.R != 0 {
		t.Errorf("From = %v, expected the colour at activation", ev.Fade.From)
	}
}

func TestTrailDotAlpha(t *testing.T) {
	d := TrailDot{X: 200, Y: 300, SpawnPlayerX: 240}
	tests := []struct {
		playerX float64
		want    float64
	}{
		{200, 1},
		{250, 0.5},
		{300, 0},
		{400, 0},
	}
	for _, tc := range tests {
		if got := d.Alpha(tc.playerX, 100); got != tc.want {
			t.Errorf("Alpha(%v) = %v, expected %v", tc.playerX, got, tc.want)
		}
	}
}
