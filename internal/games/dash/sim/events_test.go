package sim

import (
	"testing"

	"github.com/vovakirdan/tui-dash/internal/core"
	"github.com/vovakirdan/tui-dash/internal/games/dash/entity"
)

func TestSchedulerProcess(t *testing.T) {
	tests := []struct {
		name     string
		trigger  float64
		playerX  float64
		static   bool
		wantFire bool
	}{
		{"at proximity", 240, 240, false, true},
		{"left of proximity", 200, 240, false, true},
		{"ahead", 244, 240, false, false},
		{"static, player passed", 500, 520, true, true},
		{"static, player behind", 500, 480, true, false},
		{"player passed without static", 500, 520, false, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var s Scheduler
			s.Add(&entity.TimedEvent{TriggerX: tc.trigger, Kind: entity.EventTextureSwap})
			fired := false
			s.Process(tc.playerX, 240, tc.static, func(*entity.TimedEvent) bool {
				fired = true
				return true
			})
			if fired != tc.wantFire {
				t.Errorf("fired = %v, expected %v", fired, tc.wantFire)
			}
			if want := map[bool]int{true: 0, false: 1}[tc.wantFire]; s.Len() != want {
				t.Errorf("pending = %d, expected %d", s.Len(), want)
			}
		})
	}
}

func TestSchedulerKeepsUnfinishedEvents(t *testing.T) {
	var s Scheduler
	a := &entity.TimedEvent{TriggerX: 100, Kind: entity.EventPaletteSwap}
	b := &entity.TimedEvent{TriggerX: 120, Kind: entity.EventTextureSwap}
	c := &entity.TimedEvent{TriggerX: 900, Kind: entity.EventLevelEnd}
	s.Add(a, b, c)

	var order []*entity.TimedEvent
	s.Process(240, 240, false, func(ev *entity.TimedEvent) bool {
		order = append(order, ev)
		return ev != a
	})
	if len(order) != 2 || order[0] != a || order[1] != b {
		t.Fatalf("fired %v, expected a then b", order)
	}
	if s.Len() != 2 || s.pending[0] != a || s.pending[1] != c {
		t.Errorf("pending = %v, expected a and c in order", s.pending)
	}
	if !s.Has(entity.EventLevelEnd) || s.Has(entity.EventTextureSwap) {
		t.Error("Has reports wrong kinds")
	}
}

func TestSchedulerScrollStopsAtProximity(t *testing.T) {
	var s Scheduler
	near := &entity.TimedEvent{TriggerX: 242}
	far := &entity.TimedEvent{TriggerX: 600}
	waiting := &entity.TimedEvent{TriggerX: 240}
	s.Add(near, far, waiting)

	s.Scroll(-4, 240)
	if near.TriggerX != 238 || far.TriggerX != 596 || waiting.TriggerX != 240 {
		t.Errorf("after scroll: near=%v far=%v waiting=%v", near.TriggerX, far.TriggerX, waiting.TriggerX)
	}

	s.Shift(-10)
	if waiting.TriggerX != 230 {
		t.Errorf("Shift moved waiting event to %v, expected 230", waiting.TriggerX)
	}
	s.Reset()
	if s.Len() != 0 {
		t.Error("Reset left events")
	}
}

func TestClockHandoffAndCancel(t *testing.T) {
	var c Clock
	if c.Active() != core.DriverTick {
		t.Fatalf("initial driver = %s, expected tick", c.Active())
	}
	c.Handoff(core.DriverFrame)
	if c.Active() != core.DriverFrame {
		t.Errorf("after handoff driver = %s", c.Active())
	}
	gen := c.Generation()
	c.Cancel()
	if c.Generation() != gen+1 || c.Active() != core.DriverTick {
		t.Errorf("after cancel gen = %d driver = %s", c.Generation(), c.Active())
	}
}
