package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Ship is the player ship. It only moves horizontally.
type Ship struct {
	X, Y          float64 // Center
	Width, Height float64
}

// NewShip creates a ship centered horizontally with its bottom edge at cfg.Bottom.
func NewShip(cfg config.ShipConfig, worldWidth float64) *Ship {
	return &Ship{
		X:      worldWidth / 2,
		Y:      cfg.Bottom + cfg.Height/2,
		Width:  cfg.Width,
		Height: cfg.Height,
	}
}

// Move shifts the ship horizontally. Negative deltas move left.
// Bounds are the caller's concern.
func (s *Ship) Move(delta float64) {
	if !core.Finite(delta) {
		panic(fmt.Sprintf("invaders: invalid ship delta %v", delta))
	}
	s.X += delta
}

// Box returns the ship's bounding box.
func (s *Ship) Box() core.Box {
	return core.NewBox(s.X, s.Y, s.Width, s.Height)
}

// Top returns the y of the ship's upper edge, where player bolts spawn.
func (s *Ship) Top() float64 {
	return s.Y + s.Height/2
}

// Collides reports whether an alien bolt hits the ship.
func (s *Ship) Collides(b *Bolt) bool {
	return Hit(b, s.Box(), Down)
}
