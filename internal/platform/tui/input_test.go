package tui

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

func TestInputTrackerPressEdge(t *testing.T) {
	tr := newInputTracker(3)

	tr.Press(core.ActionFire)
	f := tr.Frame()
	if !f.IsPressed(core.ActionFire) || !f.IsDown(core.ActionFire) {
		t.Fatal("first event should press and hold")
	}
	tr.Advance()

	// Auto-repeat while held extends the hold without a new edge
	tr.Press(core.ActionFire)
	f = tr.Frame()
	if f.IsPressed(core.ActionFire) {
		t.Error("repeat while held should not be a new press")
	}
	if !f.IsDown(core.ActionFire) {
		t.Error("key should still be held")
	}
}

func TestInputTrackerHoldExpires(t *testing.T) {
	tr := newInputTracker(3)
	tr.Press(core.ActionRight)

	for tick := range 3 {
		if !tr.Frame().IsDown(core.ActionRight) {
			t.Fatalf("tick %d: key should be held", tick)
		}
		tr.Advance()
	}
	if tr.Frame().IsDown(core.ActionRight) {
		t.Error("hold should expire without events")
	}

	tr.Press(core.ActionRight)
	if !tr.Frame().IsPressed(core.ActionRight) {
		t.Error("event after release should be a new press")
	}
}

func TestInputTrackerOppositeDirection(t *testing.T) {
	tr := newInputTracker(5)
	tr.Press(core.ActionLeft)
	tr.Advance()
	tr.Press(core.ActionRight)

	f := tr.Frame()
	if f.IsDown(core.ActionLeft) {
		t.Error("pressing right should release left")
	}
	if !f.IsDown(core.ActionRight) {
		t.Error("right should be held")
	}
}

func TestInputTrackerCommandsAreOneShot(t *testing.T) {
	tr := newInputTracker(5)
	tr.Press(core.ActionPause)
	if !tr.Frame().IsPressed(core.ActionPause) {
		t.Fatal("pause should be pressed")
	}
	tr.Advance()
	if tr.Frame().Has(core.ActionPause) {
		t.Error("pause should not linger")
	}

	tr.Press(core.ActionPause)
	if !tr.Frame().IsPressed(core.ActionPause) {
		t.Error("second pause on the next tick should press again")
	}
}

func TestInputTrackerReset(t *testing.T) {
	tr := newInputTracker(5)
	tr.Press(core.ActionLeft)
	tr.Press(core.ActionNone)
	tr.Reset()
	if tr.Frame().Has(core.ActionLeft) || tr.Frame().Has(core.ActionNone) {
		t.Error("reset should release every key")
	}
}
