package invaders

import "github.com/vovakirdan/tui-invaders/internal/core"

// Hit is the single collision rule: the bolt must travel in the required
// direction and its center must lie inside target.
// Aliens require Up, the ship requires Down.
func Hit(b *Bolt, target core.Box, required Direction) bool {
	return b.Direction() == required && b.Collides(target)
}
