package invaders

import (
	"math"
	"math/rand"
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

func smallGrid(rows, cols int) func(*config.InvadersConfig) {
	return func(c *config.InvadersConfig) {
		c.Aliens.Rows = rows
		c.Aliens.Columns = cols
	}
}

func TestNewWave(t *testing.T) {
	w := newTestWave(t, nil)

	if w.Lives() != 3 {
		t.Errorf("lives = %d, expected 3", w.Lives())
	}
	if w.Ship() == nil || w.Ship().X != 400 {
		t.Error("wave should start with a ship at center-bottom")
	}
	if w.Aliens().Alive() != 60 {
		t.Errorf("aliens = %d, expected 60", w.Aliens().Alive())
	}
	if len(w.Bolts()) != 0 || w.Dead() || w.Won() || w.Lost() {
		t.Error("new wave should have no bolts and no outcome")
	}
	if w.Direction() != Right {
		t.Errorf("direction = %v, expected right", w.Direction())
	}
	if w.nextShot < 1 || w.nextShot > w.cfg.Bolts.Rate {
		t.Errorf("nextShot = %d, expected within [1, %d]", w.nextShot, w.cfg.Bolts.Rate)
	}
}

func TestNewWavePanics(t *testing.T) {
	bad := config.DefaultInvadersConfig()
	bad.Aliens.Rows = 0
	mustPanic(t, "invalid config", func() { NewWave(bad, &seqRNG{}) })
	mustPanic(t, "nil rng", func() { NewWave(config.DefaultInvadersConfig(), nil) })
}

func TestUpdateRejectsInvalidDt(t *testing.T) {
	w := newTestWave(t, nil)
	in := core.NewInputFrame()
	for _, dt := range []float64{-0.001, math.NaN(), math.Inf(1)} {
		mustPanic(t, "dt", func() { w.Update(in, dt) })
	}
	mustPanic(t, "nil input", func() { w.Update(nil, 0) })
}

func TestShipMovementGating(t *testing.T) {
	w := newTestWave(t, nil)
	right := core.NewInputFrame()
	right.Hold(core.ActionRight)
	left := core.NewInputFrame()
	left.Hold(core.ActionLeft)

	w.Update(right, 0)
	if w.Ship().X != 405 {
		t.Errorf("ship x = %v, expected 405", w.Ship().X)
	}

	// At the edge the move still applies; past it, it does not
	w.Ship().X = 800
	w.Update(right, 0)
	if w.Ship().X != 805 {
		t.Errorf("ship x = %v, expected 805", w.Ship().X)
	}
	w.Update(right, 0)
	if w.Ship().X != 805 {
		t.Errorf("ship past the right edge moved to %v", w.Ship().X)
	}

	w.Ship().X = -1
	w.Update(left, 0)
	if w.Ship().X != -1 {
		t.Errorf("ship past the left edge moved to %v", w.Ship().X)
	}

	both := core.NewInputFrame()
	both.Hold(core.ActionLeft)
	both.Hold(core.ActionRight)
	w.Ship().X = 400
	w.Update(both, 0)
	if w.Ship().X != 400 {
		t.Errorf("opposite keys should cancel, ship at %v", w.Ship().X)
	}
}

func TestFormationTimer(t *testing.T) {
	w := newTestWave(t, nil)
	w.nextShot = 3
	in := core.NewInputFrame()
	x0 := w.Aliens().At(0, 0).X

	// Timer goes 0.5, 1.0, 1.5 without stepping; it must exceed the interval
	for i := range 3 {
		w.Update(in, 0.5)
		if w.Aliens().At(0, 0).X != x0 {
			t.Fatalf("formation stepped early on update %d", i+1)
		}
	}

	w.Update(in, 0.5)
	if got := w.Aliens().At(0, 0).X; got != x0+8 {
		t.Errorf("alien x = %v after step, expected %v", got, x0+8)
	}
	if w.timer != 0 {
		t.Errorf("timer = %v after step, expected 0", w.timer)
	}
	if w.nextShot != 2 {
		t.Errorf("nextShot = %d after step, expected 2", w.nextShot)
	}
}

func TestFormationFlipsTwicePerTraverse(t *testing.T) {
	w := newTestWave(t, smallGrid(5, 5))
	vwalk := w.cfg.Aliens.VWalk

	var flips []int
	for step := 1; step <= 300; step++ {
		dir := w.Direction()
		y := w.Aliens().At(0, 0).Y
		x := w.Aliens().At(0, 0).X

		w.stepFormation()

		a := w.Aliens().At(0, 0)
		if w.Direction() != dir {
			flips = append(flips, step)
			if a.Y != y-vwalk || a.X != x {
				t.Fatalf("step %d: flip should drop by %v without moving sideways", step, vwalk)
			}
			continue
		}
		if a.Y != y {
			t.Fatalf("step %d: formation dropped without flipping", step)
		}
		if math.Abs(a.X-x) != w.cfg.Aliens.HWalk {
			t.Fatalf("step %d: formation moved %v sideways", step, a.X-x)
		}
	}

	want := []int{71, 145, 219, 293}
	if len(flips) != len(want) {
		t.Fatalf("flips at steps %v, expected %v", flips, want)
	}
	for i := range want {
		if flips[i] != want[i] {
			t.Errorf("flips at steps %v, expected %v", flips, want)
			break
		}
	}

	if w.Direction() != Right {
		t.Errorf("direction = %v after four flips, expected right", w.Direction())
	}
}

func TestFormationEdgeUsesOutermostRow(t *testing.T) {
	w := newTestWave(t, smallGrid(3, 5))
	// Only row 2 keeps its rightmost alien
	w.Aliens().Kill(0, 4)
	w.Aliens().Kill(1, 4)

	edge := w.Aliens().At(2, 4)
	edge.X = 790
	w.stepFormation()
	if w.Direction() != Left {
		t.Error("outermost alien in any row should trigger the flip")
	}
}

func TestEmptyGridNeverFlips(t *testing.T) {
	w := newTestWave(t, smallGrid(2, 2))
	for row := range 2 {
		for col := range 2 {
			w.Aliens().Kill(row, col)
		}
	}
	for range 500 {
		w.stepFormation()
	}
	if w.Direction() != Right {
		t.Error("empty grid flipped direction")
	}
}

func TestPlayerFire(t *testing.T) {
	w := newTestWave(t, nil)
	w.nextShot = 100

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	w.Update(fire, 0)

	if len(w.Bolts()) != 1 {
		t.Fatalf("expected one bolt, got %d", len(w.Bolts()))
	}
	b := w.Bolts()[0]
	// Spawned at the ship top (76) then advanced once
	if b.X != 400 || b.Y != 86 || !b.IsPlayerBolt() {
		t.Errorf("bolt at (%v, %v) velocity %v, expected (400, 86) going up", b.X, b.Y, b.Velocity)
	}

	// Fire is ignored while a player bolt is in flight
	for range 5 {
		w.Update(fire, 0)
	}
	if len(w.Bolts()) != 1 {
		t.Errorf("expected at most one player bolt, got %d", len(w.Bolts()))
	}

	// Holding without a press edge does not fire
	w.bolts = nil
	hold := core.NewInputFrame()
	hold.Hold(core.ActionFire)
	w.Update(hold, 0)
	if len(w.Bolts()) != 0 {
		t.Error("held fire key without a press should not fire")
	}
}

func TestPlayerFireNeedsShip(t *testing.T) {
	w := newTestWave(t, nil)
	w.nextShot = 100
	w.ship = nil

	fire := core.NewInputFrame()
	fire.Set(core.ActionFire)
	w.Update(fire, 0)
	if len(w.Bolts()) != 0 {
		t.Error("no bolt should spawn without a ship")
	}
}

func TestBoltRemoval(t *testing.T) {
	w := newTestWave(t, nil)
	w.nextShot = 100
	w.bolts = []*Bolt{
		NewBolt(10, 695, 4, 16, 10), // Leaves the top
		NewBolt(10, 5, 4, 16, -10),  // Leaves the bottom
	}
	in := core.NewInputFrame()

	w.Update(in, 0)
	if len(w.Bolts()) != 2 {
		t.Fatalf("bolts still overlapping the world should stay, got %d", len(w.Bolts()))
	}

	w.Update(in, 0)
	if len(w.Bolts()) != 0 {
		t.Errorf("bolts fully outside the world should be removed, got %d", len(w.Bolts()))
	}
}

func TestAlienFireSingleColumn(t *testing.T) {
	for seed := range int64(20) {
		cfg := config.DefaultInvadersConfig()
		cfg.Aliens.Rows = 5
		cfg.Aliens.Columns = 5
		w := NewWave(cfg, rand.New(rand.NewSource(seed)))

		for row := range 5 {
			for col := range 5 {
				if row != 2 || col != 3 {
					w.Aliens().Kill(row, col)
				}
			}
		}
		survivor := w.Aliens().At(2, 3)

		w.fireAlienBolt()

		if len(w.Bolts()) != 1 {
			t.Fatalf("seed %d: expected one bolt, got %d", seed, len(w.Bolts()))
		}
		b := w.Bolts()[0]
		if b.X != survivor.X || b.Y != survivor.Y-8 || b.Velocity != -10 {
			t.Errorf("seed %d: bolt at (%v, %v) velocity %v, expected (%v, %v) velocity -10",
				seed, b.X, b.Y, b.Velocity, survivor.X, survivor.Y-8)
		}
		if w.nextShot < 1 || w.nextShot > cfg.Bolts.Rate {
			t.Errorf("seed %d: nextShot = %d, expected within [1, %d]", seed, w.nextShot, cfg.Bolts.Rate)
		}
	}
}

func TestAlienFireLowestInColumn(t *testing.T) {
	cfg := config.DefaultInvadersConfig()
	cfg.Aliens.Rows = 3
	cfg.Aliens.Columns = 4
	// First draw is the initial countdown, second picks column index 2
	w := NewWave(cfg, &seqRNG{vals: []int{0, 2}})
	w.Aliens().Kill(2, 2)

	w.fireAlienBolt()

	shooter := w.Aliens().At(1, 2)
	if len(w.Bolts()) != 1 || w.Bolts()[0].X != shooter.X {
		t.Fatalf("expected the lowest alien of column 2 to fire")
	}
}

func TestAlienFireCountdownResetsWithoutShooters(t *testing.T) {
	w := newTestWave(t, smallGrid(1, 2))
	w.Aliens().Kill(0, 0)
	w.Aliens().Kill(0, 1)
	w.nextShot = 0

	w.fireAlienBolt()
	if len(w.Bolts()) != 0 {
		t.Error("empty grid should not fire")
	}
	if w.nextShot < 1 {
		t.Errorf("countdown should reset, got %d", w.nextShot)
	}
}

func TestAlienFireDuringUpdate(t *testing.T) {
	w := newTestWave(t, nil)
	w.nextShot = 1
	w.timer = 2 // Past the interval: the next update steps the formation

	w.Update(core.NewInputFrame(), 0)

	if len(w.Bolts()) != 1 || w.Bolts()[0].IsPlayerBolt() {
		t.Fatalf("expected one alien bolt after the countdown ran out, got %d bolts", len(w.Bolts()))
	}
	if w.nextShot < 1 {
		t.Errorf("countdown should restart, got %d", w.nextShot)
	}
}

func TestAlienHit(t *testing.T) {
	w := newTestWave(t, nil)
	w.nextShot = 100
	target := w.Aliens().At(0, 0)
	w.bolts = []*Bolt{NewBolt(target.X, target.Y-10, 4, 16, 10)}

	w.Update(core.NewInputFrame(), 0)

	if w.Aliens().At(0, 0) != nil {
		t.Error("alien should be destroyed")
	}
	if len(w.Bolts()) != 0 {
		t.Error("bolt should be consumed")
	}
	if w.Aliens().Alive() != 59 {
		t.Errorf("alive = %d, expected 59", w.Aliens().Alive())
	}
}

func TestAlienHitFirstMatchWins(t *testing.T) {
	w := newTestWave(t, nil)
	w.nextShot = 100
	a := w.Aliens().At(0, 0)
	b := w.Aliens().At(0, 1)
	b.X = a.X // Overlapping hitboxes

	// Two bolts on the same spot: the first takes (0,0), the second (0,1)
	w.bolts = []*Bolt{
		NewBolt(a.X, a.Y-10, 4, 16, 10),
		NewBolt(a.X, a.Y-10, 4, 16, 10),
		NewBolt(a.X, a.Y-10, 4, 16, 10),
	}
	w.Update(core.NewInputFrame(), 0)

	if w.Aliens().At(0, 0) != nil || w.Aliens().At(0, 1) != nil {
		t.Error("each bolt should destroy one overlapping alien")
	}
	if len(w.Bolts()) != 1 {
		t.Errorf("third bolt has nothing left to hit and should stay, got %d bolts", len(w.Bolts()))
	}
}

func TestFriendlyFireNeverHits(t *testing.T) {
	w := newTestWave(t, nil)
	w.nextShot = 100
	ship := w.Ship()
	alien := w.Aliens().At(0, 0)

	w.bolts = []*Bolt{
		NewBolt(ship.X, ship.Y-10, 4, 16, 10),    // Player bolt through the ship
		NewBolt(alien.X, alien.Y+10, 4, 16, -10), // Alien bolt through an alien
	}
	w.Update(core.NewInputFrame(), 0)

	if w.Ship() == nil || w.Dead() {
		t.Error("player bolt should not hit the ship")
	}
	if w.Aliens().At(0, 0) == nil {
		t.Error("alien bolt should not hit an alien")
	}
	if len(w.Bolts()) != 2 {
		t.Errorf("both bolts should stay in flight, got %d", len(w.Bolts()))
	}
}

func TestShipHitLastLife(t *testing.T) {
	w := newTestWave(t, func(c *config.InvadersConfig) { c.Ship.Lives = 1 })
	w.nextShot = 100
	ship := w.Ship()
	w.bolts = []*Bolt{NewBolt(ship.X, ship.Y+10, 4, 16, -10)}

	w.Update(core.NewInputFrame(), 0)

	if w.Ship() != nil {
		t.Error("ship should be destroyed")
	}
	if w.Lives() != 0 {
		t.Errorf("lives = %d, expected 0", w.Lives())
	}
	if !w.Dead() {
		t.Error("dead flag should be raised")
	}
	if !w.Lost() {
		t.Error("wave should be lost")
	}
	if len(w.Bolts()) != 0 {
		t.Error("bolt that hit the ship should be removed")
	}

	w.RespawnShip()
	if w.Ship() != nil {
		t.Error("no respawn without lives")
	}
}

func TestShipHitDecrementsOnce(t *testing.T) {
	w := newTestWave(t, nil)
	w.nextShot = 100
	ship := w.Ship()
	w.bolts = []*Bolt{
		NewBolt(ship.X, ship.Y+10, 4, 16, -10),
		NewBolt(ship.X, ship.Y+5, 4, 16, -10),
	}
	in := core.NewInputFrame()

	w.Update(in, 0)
	if w.Lives() != 2 {
		t.Fatalf("lives = %d, expected 2", w.Lives())
	}
	if len(w.Bolts()) != 1 {
		t.Errorf("only the first hitting bolt should be consumed, got %d bolts", len(w.Bolts()))
	}

	w.SetDead(false)
	for range 10 {
		w.Update(in, 0)
	}
	if w.Lives() != 2 {
		t.Errorf("lives = %d while the ship is absent, expected 2", w.Lives())
	}
	if w.Dead() {
		t.Error("dead flag should only be raised on the frame the ship is destroyed")
	}

	w.RespawnShip()
	if w.Ship() == nil || w.Ship().X != 400 {
		t.Error("ship should respawn at center-bottom")
	}
	same := w.Ship()
	w.RespawnShip()
	if w.Ship() != same {
		t.Error("respawn should not replace a present ship")
	}
}

func TestWinAndLose(t *testing.T) {
	w := newTestWave(t, smallGrid(2, 2))
	if w.Won() || w.Lost() {
		t.Fatal("fresh wave has no outcome")
	}

	w.Aliens().Translate(0, -500)
	if !w.Lost() {
		t.Error("alien below the defense line should lose the wave")
	}

	for row := range 2 {
		for col := range 2 {
			w.Aliens().Kill(row, col)
		}
	}
	if !w.Won() {
		t.Error("empty grid should win the wave")
	}
	if w.Lost() {
		t.Error("destroyed aliens below the line do not count")
	}
}

func TestDrawOrder(t *testing.T) {
	w := newTestWave(t, smallGrid(2, 3))
	w.bolts = []*Bolt{
		NewBolt(100, 300, 4, 16, -10),
		NewBolt(200, 300, 4, 16, 10),
	}
	w.Aliens().Kill(0, 1)

	v := &recordingView{}
	w.Draw(v)

	var kinds []Kind
	for _, d := range v.drawn {
		kinds = append(kinds, d.Kind)
	}
	expected := []Kind{
		KindAlien, KindAlien, KindAlien, KindAlien, KindAlien,
		KindShip, KindDefenseLine, KindAlienBolt, KindPlayerBolt,
	}
	if len(kinds) != len(expected) {
		t.Fatalf("drew %v, expected %v", kinds, expected)
	}
	for i := range expected {
		if kinds[i] != expected[i] {
			t.Fatalf("drew %v, expected %v", kinds, expected)
		}
	}

	line := v.drawn[6].Box
	if line.Y != 100 || line.W != 800 {
		t.Errorf("defense line box = %+v, expected y 100 spanning the world", line)
	}
	if v.drawn[0].Image != "alien1" {
		t.Errorf("alien image = %q, expected alien1", v.drawn[0].Image)
	}

	// Without a ship the ship draw is skipped
	w.ship = nil
	v = &recordingView{}
	w.Draw(v)
	if v.drawn[5].Kind != KindDefenseLine {
		t.Errorf("drawable 5 = %v, expected the defense line", v.drawn[5].Kind)
	}
}
