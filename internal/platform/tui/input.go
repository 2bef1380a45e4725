package tui

import "github.com/vovakirdan/tui-invaders/internal/core"

// DefaultHoldTicks is how long a movement or fire key counts as held after
// its last key event. It covers the gap between terminal auto-repeat events.
const DefaultHoldTicks = 6

// inputTracker builds per-tick input frames from key events.
// Terminals report key presses and auto-repeats but never releases, so a key
// is held until holdTicks ticks pass without an event for it. A press edge is
// reported when an event arrives for a key that is not held.
type inputTracker struct {
	holdTicks int
	remaining map[core.Action]int
	pressed   map[core.Action]bool
}

func newInputTracker(holdTicks int) *inputTracker {
	if holdTicks < 1 {
		holdTicks = 1
	}
	return &inputTracker{
		holdTicks: holdTicks,
		remaining: make(map[core.Action]int),
		pressed:   make(map[core.Action]bool),
	}
}

// Press records a key event for an action.
func (t *inputTracker) Press(a core.Action) {
	if a == core.ActionNone {
		return
	}
	if t.remaining[a] == 0 {
		t.pressed[a] = true
	}

	switch a {
	case core.ActionLeft, core.ActionRight, core.ActionFire:
		t.remaining[a] = t.holdTicks
	default:
		// Commands are one-shot
		t.remaining[a] = 1
	}

	// Auto-repeat only follows the latest key, so the other direction is released.
	switch a {
	case core.ActionLeft:
		delete(t.remaining, core.ActionRight)
	case core.ActionRight:
		delete(t.remaining, core.ActionLeft)
	}
}

// Frame returns the input for the current tick.
func (t *inputTracker) Frame() core.InputFrame {
	frame := core.NewInputFrame()
	for a, n := range t.remaining {
		if n > 0 {
			frame.Hold(a)
		}
	}
	for a := range t.pressed {
		frame.Set(a)
	}
	return frame
}

// Advance ends the current tick: press edges are consumed and hold windows shrink.
func (t *inputTracker) Advance() {
	clear(t.pressed)
	for a, n := range t.remaining {
		if n <= 1 {
			delete(t.remaining, a)
		} else {
			t.remaining[a] = n - 1
		}
	}
}

// Reset releases every key.
func (t *inputTracker) Reset() {
	clear(t.pressed)
	clear(t.remaining)
}
