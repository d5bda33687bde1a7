package core

import (
	"slices"
	"testing"
)

func TestInputFrame(t *testing.T) {
	var f InputFrame
	if f.Has(ActionUp) {
		t.Error("zero InputFrame should have no actions")
	}

	f.Set(ActionLeft)
	f.Set(ActionConfirm)
	if !f.Has(ActionLeft) || !f.Has(ActionConfirm) {
		t.Error("Set actions should be reported by Has")
	}
	if f.Has(ActionRight) {
		t.Error("unset action should not be reported")
	}

	f.Clear()
	if f.Has(ActionLeft) || f.Has(ActionConfirm) {
		t.Error("Clear should remove all actions")
	}
}

func TestInputFramePressedOrder(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionDown)
	f.Set(ActionLeft)
	f.Set(ActionDown)

	want := []Action{ActionDown, ActionLeft, ActionDown}
	if got := f.Pressed(); !slices.Equal(got, want) {
		t.Errorf("Pressed() = %v, expected %v", got, want)
	}

	f.Clear()
	if n := len(f.Pressed()); n != 0 {
		t.Errorf("Pressed() has %d actions after Clear", n)
	}
}

func TestActionString(t *testing.T) {
	tests := map[Action]string{
		ActionNone:  "None",
		ActionLeft:  "Left",
		ActionRight: "Right",
		ActionPause: "Pause",
		Action(99):  "Unknown",
	}
	for a, want := range tests {
		if got := a.String(); got != want {
			t.Errorf("Action(%d).String() = %q, expected %q", int(a), got, want)
		}
	}
}
