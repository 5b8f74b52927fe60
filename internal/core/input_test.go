package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if !f.Empty() {
		t.Fatal("new frame should be empty")
	}

	f.Set(ActionJumpPressed)
	f.Set(ActionPause)
	if !f.Has(ActionJumpPressed) || !f.Has(ActionPause) {
		t.Error("Has() should report actions that were Set")
	}
	if f.Has(ActionJumpReleased) {
		t.Error("Has() should be false for actions never Set")
	}

	clone := f.Clone()
	f.Clear()
	if !f.Empty() {
		t.Error("Clear() should empty the frame")
	}
	if !clone.Has(ActionJumpPressed) {
		t.Error("Clone() must not share storage with the original")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	var f InputFrame
	if f.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	f.Set(ActionQuit)
	if !f.Has(ActionQuit) {
		t.Error("Set() on a zero frame should allocate")
	}
}

func TestActionString(t *testing.T) {
	tests := []struct {
		a    Action
		want string
	}{
		{ActionJumpPressed, "JumpPressed"},
		{ActionSlowMode, "SlowMode"},
		{ActionRestart, "Restart"},
		{Action(99), "Unknown"},
	}
	for _, tc := range tests {
		if got := tc.a.String(); got != tc.want {
			t.Errorf("Action(%d).String() = %q, expected %q", tc.a, got, tc.want)
		}
	}
}
