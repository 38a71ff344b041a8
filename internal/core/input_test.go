package core

import "testing"

func TestInputFrameActions(t *testing.T) {
	f := NewInputFrame()
	if f.Has(ActionRestart) {
		t.Error("new frame should have no actions")
	}

	f.Set(ActionRestart)
	if !f.Has(ActionRestart) {
		t.Error("Has(ActionRestart) = false after Set")
	}

	var zero InputFrame
	zero.Set(ActionPause)
	if !zero.Has(ActionPause) {
		t.Error("Set on a zero frame should allocate the action map")
	}
}

func TestInputFrameZones(t *testing.T) {
	f := NewInputFrame()
	if f.AnyZone() {
		t.Error("new frame should have no zones pressed")
	}

	f.PressZone(3)
	f.PressZone(-1)       // ignored
	f.PressZone(MaxZones) // ignored

	for zone := range MaxZones {
		if got := f.ZonePressed(zone); got != (zone == 3) {
			t.Errorf("ZonePressed(%d) = %v", zone, got)
		}
	}
	if f.ZonePressed(-1) || f.ZonePressed(MaxZones) {
		t.Error("out-of-range zones should never report pressed")
	}
	if !f.AnyZone() {
		t.Error("AnyZone() = false with zone 3 pressed")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionTurnLeft)
	f.PressZone(0)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionTurnLeft) || f.AnyZone() {
		t.Error("Clear should reset actions and zones")
	}
	if !clone.Has(ActionTurnLeft) || !clone.ZonePressed(0) {
		t.Error("Clone should not share state with the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionTurnRight.String() != "TurnRight" {
		t.Errorf("String() = %q, expected TurnRight", ActionTurnRight.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("String() = %q, expected Unknown", Action(99).String())
	}
}
