package invaders

import (
	"encoding/binary"
	"hash/fnv"
	"math"
)

// Snapshot captures the wave state for determinism testing.
// Positions are world coordinates rounded to thousandths.
type Snapshot struct {
	Tick        uint64
	Lives       int
	Dead        bool
	Direction   FormationDirection
	NextShot    int
	ShipPresent bool
	ShipX       int

	// Presence per slot, row-major; 1 = alive
	AlienData []int

	// Reference alien position: the first present alien in row-major order
	AlienX, AlienY int

	// Each bolt is 3 ints: X, Y, Velocity
	BoltCount int
	BoltData  []int

	Won, Lost bool
}

// Snapshot returns the current game snapshot.
func (g *Game) Snapshot() Snapshot {
	snap := g.wave.Snapshot()
	snap.Tick = g.tick
	snap.Won = g.won
	snap.Lost = g.lost
	return snap
}

// Snapshot returns the current wave snapshot. Tick is left zero.
func (w *Wave) Snapshot() Snapshot {
	snap := Snapshot{
		Lives:     w.lives,
		Dead:      w.dead,
		Direction: w.direction,
		NextShot:  w.nextShot,
		AlienData: make([]int, 0, w.aliens.Rows()*w.aliens.Cols()),
		BoltCount: len(w.bolts),
		BoltData:  make([]int, 0, len(w.bolts)*3),
		Won:       w.Won(),
		Lost:      w.Lost(),
	}
	if w.ship != nil {
		snap.ShipPresent = true
		snap.ShipX = fixed(w.ship.X)
	}

	found := false
	for row := range w.aliens.Rows() {
		for col := range w.aliens.Cols() {
			a := w.aliens.At(row, col)
			if a == nil {
				snap.AlienData = append(snap.AlienData, 0)
				continue
			}
			snap.AlienData = append(snap.AlienData, 1)
			if !found {
				snap.AlienX, snap.AlienY = fixed(a.X), fixed(a.Y)
				found = true
			}
		}
	}

	for _, b := range w.bolts {
		snap.BoltData = append(snap.BoltData, fixed(b.X), fixed(b.Y), fixed(b.Velocity))
	}
	return snap
}

// Hash returns an FNV-1a hash of the snapshot.
func (s *Snapshot) Hash() uint64 {
	h := fnv.New64a()
	var buf [8]byte
	put := func(v int64) {
		binary.LittleEndian.PutUint64(buf[:], uint64(v)) //#nosec G115 -- hash input
		_, _ = h.Write(buf[:])
	}
	flag := func(b bool) {
		if b {
			put(1)
		} else {
			put(0)
		}
	}

	put(int64(s.Tick)) //#nosec G115 -- hash input
	put(int64(s.Lives))
	flag(s.Dead)
	put(int64(s.Direction))
	put(int64(s.NextShot))
	flag(s.ShipPresent)
	put(int64(s.ShipX))
	for _, v := range s.AlienData {
		put(int64(v))
	}
	put(int64(s.AlienX))
	put(int64(s.AlienY))
	put(int64(s.BoltCount))
	for _, v := range s.BoltData {
		put(int64(v))
	}
	flag(s.Won)
	flag(s.Lost)
	return h.Sum64()
}

func fixed(v float64) int {
	return int(math.Round(v * 1000))
}
