package core

// Action represents a semantic game action, abstracted from physical key presses.
// This allows games to work with high-level intents rather than raw input.
type Action int

const (
	ActionNone    Action = iota
	ActionLeft           // A, Left arrow - move ship left
	ActionRight          // D, Right arrow - move ship right
	ActionFire           // Space - fire a bolt
	ActionPause          // P, Escape - pause/unpause game
	ActionRestart        // R key - restart after the wave ends
	ActionQuit           // Q, Ctrl+C - exit
)

// String returns a human-readable name for the action.
func (a Action) String() string {
	switch a {
	case ActionNone:
		return "None"
	case ActionLeft:
		return "Left"
	case ActionRight:
		return "Right"
	case ActionFire:
		return "Fire"
	case ActionPause:
		return "Pause"
	case ActionRestart:
		return "Restart"
	case ActionQuit:
		return "Quit"
	default:
		return "Unknown"
	}
}

// InputFrame represents the input state during one simulation tick.
// An action may be held (the key is down) and, on the first frame it goes
// down, also pressed.
type InputFrame struct {
	held    map[Action]bool
	pressed map[Action]bool
}

// NewInputFrame creates an empty input frame.
func NewInputFrame() InputFrame {
	return InputFrame{
		held:    make(map[Action]bool),
		pressed: make(map[Action]bool),
	}
}

// Set marks an action as newly pressed this frame. A pressed action is also held.
func (f *InputFrame) Set(a Action) {
	f.ensure()
	f.pressed[a] = true
	f.held[a] = true
}

// Hold marks an action as held without a press edge.
func (f *InputFrame) Hold(a Action) {
	f.ensure()
	f.held[a] = true
}

// IsDown returns true if the action's key is currently held.
func (f InputFrame) IsDown(a Action) bool {
	return f.held[a]
}

// IsPressed returns true if the action's key went down this frame.
func (f InputFrame) IsPressed(a Action) bool {
	return f.pressed[a]
}

// Has returns true if the action was held or pressed this frame.
func (f InputFrame) Has(a Action) bool {
	return f.held[a] || f.pressed[a]
}

// Clear resets all actions for the next frame.
func (f *InputFrame) Clear() {
	for k := range f.held {
		delete(f.held, k)
	}
	for k := range f.pressed {
		delete(f.pressed, k)
	}
}

// Clone creates a copy of this input frame.
func (f InputFrame) Clone() InputFrame {
	clone := NewInputFrame()
	for k, v := range f.held {
		clone.held[k] = v
	}
	for k, v := range f.pressed {
		clone.pressed[k] = v
	}
	return clone
}

func (f *InputFrame) ensure() {
	if f.held == nil {
		f.held = make(map[Action]bool)
	}
	if f.pressed == nil {
		f.pressed = make(map[Action]bool)
	}
}
