package tui

import (
	"testing"
	"time"
)

func TestHoldTrackerEdges(t *testing.T) {
	h := NewHoldTracker(500*time.Millisecond, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	rising, seq := h.Press(t0)
	if !rising {
		t.Fatal("first press should be a rising edge")
	}
	if h.Timeout() != 500*time.Millisecond {
		t.Errorf("initial timeout = %v", h.Timeout())
	}

	rising, seq2 := h.Press(t0.Add(450 * time.Millisecond))
	if rising {
		t.Error("repeat should not be a rising edge")
	}
	if h.Timeout() != 100*time.Millisecond {
		t.Errorf("repeat timeout = %v", h.Timeout())
	}

	if h.Check(seq, t0.Add(2*time.Second)) {
		t.Error("check from an older press must be ignored")
	}
	if h.Check(seq2, t0.Add(500*time.Millisecond)) {
		t.Error("released before the repeat timeout")
	}
	if !h.Check(seq2, t0.Add(550*time.Millisecond)) {
		t.Error("expected release after the repeat timeout")
	}
	if h.held {
		t.Error("still held after release")
	}

	rising, _ = h.Press(t0.Add(time.Second))
	if !rising {
		t.Error("press after release should be a rising edge")
	}
}

func TestHoldTrackerRelease(t *testing.T) {
	h := NewHoldTracker(DefaultHoldInitial, DefaultHoldRepeat)
	if h.Release() {
		t.Error("release without press reported held")
	}
	_, seq := h.Press(time.Now())
	if !h.Release() {
		t.Error("release after press should report held")
	}
	if h.Check(seq, time.Now().Add(time.Hour)) {
		t.Error("check after forced release must be ignored")
	}
}
