package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Direction is the vertical travel direction of a bolt.
type Direction int

const (
	Up   Direction = iota // Fired by the ship
	Down                  // Fired by an alien
)

// String returns a human-readable name for the direction.
func (d Direction) String() string {
	if d == Up {
		return "up"
	}
	return "down"
}

// Bolt is a laser bolt. The sign of Velocity tells who fired it.
type Bolt struct {
	X, Y          float64 // Center
	Width, Height float64
	Velocity      float64 // y distance per tick, never zero
}

// NewBolt creates a bolt centered on (x, y).
// Panics on a zero or non-finite velocity.
func NewBolt(x, y, w, h, velocity float64) *Bolt {
	if velocity == 0 || !core.Finite(velocity) {
		panic(fmt.Sprintf("invaders: invalid bolt velocity %v", velocity))
	}
	return &Bolt{X: x, Y: y, Width: w, Height: h, Velocity: velocity}
}

// IsPlayerBolt reports whether the bolt travels upward.
func (b *Bolt) IsPlayerBolt() bool {
	return b.Velocity > 0
}

// Direction returns Up for player bolts and Down for alien bolts.
func (b *Bolt) Direction() Direction {
	if b.IsPlayerBolt() {
		return Up
	}
	return Down
}

// Advance moves the bolt by one tick of velocity.
func (b *Bolt) Advance() {
	b.Y += b.Velocity
}

// Collides reports whether the bolt's center lies inside box.
// No direction gate is applied; see Hit.
func (b *Bolt) Collides(box core.Box) bool {
	return box.Contains(b.X, b.Y)
}

// Box returns the bolt's bounding box.
func (b *Bolt) Box() core.Box {
	return core.NewBox(b.X, b.Y, b.Width, b.Height)
}

// Top returns the y of the upper edge.
func (b *Bolt) Top() float64 { return b.Y + b.Height/2 }

// Bottom returns the y of the lower edge.
func (b *Bolt) Bottom() float64 { return b.Y - b.Height/2 }

// OutOfBounds reports whether the bolt has fully left [0, height].
func (b *Bolt) OutOfBounds(height float64) bool {
	return b.Bottom() > height || b.Top() < 0
}
