package sim

import "github.com/vovakirdan/tui-dash/internal/games/dash/entity"

// Scheduler holds pending timed events in script order.
type Scheduler struct {
	pending []*entity.TimedEvent
}

// Add appends events to the pending set.
func (s *Scheduler) Add(evs ...*entity.TimedEvent) {
	s.pending = append(s.pending, evs...)
}

// Len returns the number of pending events.
func (s *Scheduler) Len() int {
	return len(s.pending)
}

// Has reports whether an event of kind k is still pending.
func (s *Scheduler) Has(k entity.EventKind) bool {
	for _, ev := range s.pending {
		if ev.Kind == k {
			return true
		}
	}
	return false
}

// Reset drops every pending event.
func (s *Scheduler) Reset() {
	s.pending = nil
}

// Scroll moves events that are still right of proximity by dx. Events stop
// once they reach proximity and wait there until they finish.
func (s *Scheduler) Scroll(dx, proximity float64) {
	for _, ev := range s.pending {
		if ev.TriggerX > proximity {
			ev.TriggerX += dx
		}
	}
}

// Shift moves every pending event by dx.
func (s *Scheduler) Shift(dx float64) {
	for _, ev := range s.pending {
		ev.TriggerX += dx
	}
}

// Process fires every due event. An event is due once it has reached
// proximity, or during a static camera once the player has passed it.
// apply performs one activation and reports whether the event is finished;
// finished events are removed.
func (s *Scheduler) Process(playerX, proximity float64, static bool, apply func(*entity.TimedEvent) bool) {
	kept := s.pending[:0]
	for _, ev := range s.pending {
		due := ev.TriggerX <= proximity || (static && playerX > ev.TriggerX)
		if due && apply(ev) {
			continue
		}
		kept = append(kept, ev)
	}
	for i := len(kept); i < len(s.pending); i++ {
		s.pending[i] = nil
	}
	s.pending = kept
}
