package core

// MaxZones is the number of directional zones the input device exposes.
const MaxZones = 10

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone      Action = iota
	ActionTurnLeft         // Left arrow, A, H - steer to the next zone counter-clockwise
	ActionTurnRight        // Right arrow, D, L - steer to the next zone clockwise
	ActionConfirm          // Enter - confirm selection in menu
	ActionBack             // B, Escape - go back to menu
	ActionRestart          // R key - restart game after game over
	ActionQuit             // Q, Ctrl+C - exit game/session
	ActionPause            // P - pause/unpause game
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionTurnLeft:
		return "TurnLeft"
	case ActionTurnRight:
		return "TurnRight"
	case ActionConfirm:
		return "Confirm"
	case ActionBack:
		return "Back"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	case ActionPause:
		return "Pause"
	default:
		return "Unknown"
	}
}

// InputFrame represents the local player's input during one simulation tick:
// semantic button actions plus the directional zones activated this frame.
// Games read it and never modify it.
type InputFrame struct {
	// Actions maps action types to whether they were triggered this frame.
	Actions map[Action]bool

	zones [MaxZones]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		Actions: make(map[Action]bool),
	}
}

// Set marks an action as triggered for this frame.
func (f *InputFrame) Set(a Action) {
	if f.Actions == nil {
		f.Actions = make(map[Action]bool)
	}
	f.Actions[a] = true
}

// Has returns true if the given action was triggered this frame.
func (f InputFrame) Has(a Action) bool {
	if f.Actions == nil {
		return false
	}
	return f.Actions[a]
}

// PressZone marks a directional zone as activated. Out-of-range zones are ignored.
func (f *InputFrame) PressZone(zone int) {
	if zone < 0 || zone >= MaxZones {
		return
	}
	f.zones[zone] = true
}

// ZonePressed reports whether the zone was activated this frame.
func (f InputFrame) ZonePressed(zone int) bool {
	if zone < 0 || zone >= MaxZones {
		return false
	}
	return f.zones[zone]
}

// AnyZone reports whether any zone was activated this frame.
func (f InputFrame) AnyZone() bool {
	for _, z := range f.zones {
		if z {
			return true
		}
	}
	return false
}

// Clear resets all actions and zones for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.Actions {
		delete(f.Actions, k)
	}
	f.zones = [MaxZones]bool{}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.Actions {
		clone.Actions[k] = v
	}
	clone.zones = f.zones
	return clone
}
