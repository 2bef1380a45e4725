package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Alien is a single member of the formation.
type Alien struct {
	X, Y          float64 // Center
	Width, Height float64
	Image         string // Image variant key, e.g. "alien1"
}

// MoveX shifts the alien horizontally.
func (a *Alien) MoveX(delta float64) {
	if !core.Finite(delta) {
		panic(fmt.Sprintf("invaders: invalid alien delta %v", delta))
	}
	a.X += delta
}

// MoveY shifts the alien vertically. Negative deltas move down.
func (a *Alien) MoveY(delta float64) {
	if !core.Finite(delta) {
		panic(fmt.Sprintf("invaders: invalid alien delta %v", delta))
	}
	a.Y += delta
}

// Box returns the alien's bounding box.
func (a *Alien) Box() core.Box {
	return core.NewBox(a.X, a.Y, a.Width, a.Height)
}

// Collides reports whether a player bolt hits the alien.
func (a *Alien) Collides(b *Bolt) bool {
	return Hit(b, a.Box(), Up)
}
