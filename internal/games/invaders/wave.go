package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// RNG is the random source a wave draws alien fire from.
// *rand.Rand implements it.
type RNG interface {
	Intn(n int) int
}

// FormationDirection is the horizontal marching direction of the aliens.
type FormationDirection int

const (
	Right FormationDirection = iota
	Left
)

// String returns a human-readable name for the direction.
func (d FormationDirection) String() string {
	if d == Right {
		return "right"
	}
	return "left"
}

// Wave is one level: a ship, an alien formation and the bolts in flight.
// It is driven by one Update call per frame and is not safe for concurrent use.
type Wave struct {
	cfg config.InvadersConfig
	rng RNG

	ship      *Ship // nil while destroyed
	aliens    *Grid
	bolts     []*Bolt
	lives     int
	timer     float64 // Seconds since the last formation step
	direction FormationDirection
	nextShot  int  // Formation steps until an alien fires
	dead      bool // Raised when the ship is destroyed, cleared by the controller
}

// NewWave creates a wave with a full formation and a ship at center-bottom.
// Panics if cfg is invalid or rng is nil.
func NewWave(cfg config.InvadersConfig, rng RNG) *Wave {
	if err := cfg.Validate(); err != nil {
		panic(fmt.Sprintf("invaders: %v", err))
	}
	if rng == nil {
		panic("invaders: nil random source")
	}

	w := &Wave{
		cfg:       cfg,
		rng:       rng,
		ship:      NewShip(cfg.Ship, cfg.World.Width),
		aliens:    NewGrid(cfg.Aliens, cfg.World.Height),
		lives:     cfg.Ship.Lives,
		direction: Right,
	}
	w.nextShot = w.drawShotDelay()
	return w
}

// Update advances the wave by one frame. dt is the elapsed time in seconds.
// Panics on a negative or non-finite dt.
func (w *Wave) Update(in Input, dt float64) {
	if dt < 0 || !core.Finite(dt) {
		panic(fmt.Sprintf("invaders: invalid dt %v", dt))
	}
	if in == nil {
		panic("invaders: nil input")
	}

	w.moveShip(in)

	if w.timer > w.cfg.Aliens.StepInterval {
		w.stepFormation()
		w.nextShot--
		w.timer = 0
	} else {
		w.timer += dt
	}

	if in.IsPressed(core.ActionFire) && w.ship != nil && !w.playerBoltActive() {
		w.fireShipBolt()
	}

	for _, b := range w.bolts {
		b.Advance()
	}
	w.removeBolts(func(b *Bolt) bool { return b.OutOfBounds(w.cfg.World.Height) })

	if w.nextShot <= 0 {
		w.fireAlienBolt()
	}

	w.resolveAlienHits()
	if w.resolveShipHit() {
		if w.lives > 0 {
			w.lives--
		}
		w.dead = true
	}
}

// moveShip applies held movement keys. Each direction is gated on the ship
// still being inside the world before the move, not clamped after it.
func (w *Wave) moveShip(in Input) {
	if w.ship == nil {
		return
	}
	step := w.cfg.Ship.Movement
	if w.ship.X <= w.cfg.World.Width && in.IsDown(core.ActionRight) {
		w.ship.Move(step)
	}
	if w.ship.X >= 0 && in.IsDown(core.ActionLeft) {
		w.ship.Move(-step)
	}
}

// stepFormation moves the formation once. When the outermost alien in the
// marching direction is within HSep of the wall, the formation turns and
// drops instead of moving sideways.
func (w *Wave) stepFormation() {
	a := w.cfg.Aliens

	switch w.direction {
	case Right:
		edge, ok := w.aliens.RightEdge()
		if !ok {
			return
		}
		if w.cfg.World.Width-edge < a.HSep {
			w.direction = Left
			w.aliens.Translate(0, -a.VWalk)
			return
		}
		w.aliens.Translate(a.HWalk, 0)
	case Left:
		edge, ok := w.aliens.LeftEdge()
		if !ok {
			return
		}
		if edge < a.HSep {
			w.direction = Right
			w.aliens.Translate(0, -a.VWalk)
			return
		}
		w.aliens.Translate(-a.HWalk, 0)
	}
}

func (w *Wave) playerBoltActive() bool {
	for _, b := range w.bolts {
		if b.IsPlayerBolt() {
			return true
		}
	}
	return false
}

func (w *Wave) fireShipBolt() {
	b := w.cfg.Bolts
	w.bolts = append(w.bolts, NewBolt(w.ship.X, w.ship.Top(), b.Width, b.Height, b.Speed))
}

// fireAlienBolt fires from the lowest alien of a random non-empty column
// and restarts the countdown, whether or not a column could fire.
func (w *Wave) fireAlienBolt() {
	if cols := w.aliens.NonEmptyColumns(); len(cols) > 0 {
		col := cols[w.rng.Intn(len(cols))]
		if a, _, ok := w.aliens.LowestInColumn(col); ok {
			b := w.cfg.Bolts
			w.bolts = append(w.bolts, NewBolt(a.X, a.Y-b.Height/2, b.Width, b.Height, -b.Speed))
		}
	}
	w.nextShot = w.drawShotDelay()
}

// drawShotDelay returns a countdown in [1, rate].
func (w *Wave) drawShotDelay() int {
	return 1 + w.rng.Intn(w.cfg.Bolts.Rate)
}

// resolveAlienHits removes every player bolt that hits an alien along with
// the alien. Bolts are checked in flight order against aliens in row-major
// order; the first alien hit takes the bolt.
func (w *Wave) resolveAlienHits() {
	w.removeBolts(w.hitAlien)
}

func (w *Wave) hitAlien(b *Bolt) bool {
	if !b.IsPlayerBolt() {
		return false
	}
	for row := range w.aliens.Rows() {
		for col := range w.aliens.Cols() {
			if a := w.aliens.At(row, col); a != nil && a.Collides(b) {
				w.aliens.Kill(row, col)
				return true
			}
		}
	}
	return false
}

// resolveShipHit destroys the ship with the first alien bolt that hits it.
// Reports whether the ship was destroyed this frame.
func (w *Wave) resolveShipHit() bool {
	if w.ship == nil {
		return false
	}
	for i, b := range w.bolts {
		if w.ship.Collides(b) {
			w.bolts = append(w.bolts[:i], w.bolts[i+1:]...)
			w.ship = nil
			return true
		}
	}
	return false
}

func (w *Wave) removeBolts(drop func(*Bolt) bool) {
	kept := w.bolts[:0]
	for _, b := range w.bolts {
		if !drop(b) {
			kept = append(kept, b)
		}
	}
	clear(w.bolts[len(kept):])
	w.bolts = kept
}

// Dead reports whether the ship was destroyed and the flag not yet cleared.
func (w *Wave) Dead() bool { return w.dead }

// SetDead sets the dead flag. Controllers clear it after handling a lost life.
func (w *Wave) SetDead(dead bool) { w.dead = dead }

// Lives returns the number of lives left.
func (w *Wave) Lives() int { return w.lives }

// Aliens returns the formation. Callers must treat it as read-only.
func (w *Wave) Aliens() *Grid { return w.aliens }

// Ship returns the ship, or nil while it is destroyed.
func (w *Wave) Ship() *Ship { return w.ship }

// Bolts returns the bolts in flight. Callers must not modify the slice.
func (w *Wave) Bolts() []*Bolt { return w.bolts }

// Direction returns the formation's marching direction.
func (w *Wave) Direction() FormationDirection { return w.direction }

// Config returns the configuration the wave was built with.
func (w *Wave) Config() config.InvadersConfig { return w.cfg }

// Won reports whether every alien has been destroyed.
func (w *Wave) Won() bool {
	return w.aliens.Empty()
}

// Lost reports whether lives are exhausted or an alien crossed the defense line.
func (w *Wave) Lost() bool {
	return w.lives == 0 || w.aliens.AnyBelow(w.cfg.World.DefenseLine)
}

// RespawnShip places a new ship at center-bottom if lives remain and no
// ship is present.
func (w *Wave) RespawnShip() {
	if w.lives > 0 && w.ship == nil {
		w.ship = NewShip(w.cfg.Ship, w.cfg.World.Width)
	}
}

// Draw paints aliens, then the ship, then the defense line, then bolts.
func (w *Wave) Draw(v View) {
	w.aliens.Each(func(_, _ int, a *Alien) {
		v.Draw(Drawable{Kind: KindAlien, Box: a.Box(), Image: a.Image})
	})
	if w.ship != nil {
		v.Draw(Drawable{Kind: KindShip, Box: w.ship.Box()})
	}
	world := w.cfg.World
	v.Draw(Drawable{Kind: KindDefenseLine, Box: core.NewBox(world.Width/2, world.DefenseLine, world.Width, 0)})
	for _, b := range w.bolts {
		kind := KindAlienBolt
		if b.IsPlayerBolt() {
			kind = KindPlayerBolt
		}
		v.Draw(Drawable{Kind: kind, Box: b.Box()})
	}
}
