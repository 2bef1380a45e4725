package invaders

import (
	"testing"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// seqRNG returns a fixed sequence of values, each reduced modulo n.
type seqRNG struct {
	vals []int
	i    int
}

func (r *seqRNG) Intn(n int) int {
	if len(r.vals) == 0 {
		return 0
	}
	v := r.vals[r.i%len(r.vals)] % n
	r.i++
	return v
}

// recordingView records drawables in paint order.
type recordingView struct {
	drawn []Drawable
}

func (v *recordingView) Draw(d Drawable) {
	v.drawn = append(v.drawn, d)
}

func newTestWave(t *testing.T, mutate func(*config.InvadersConfig)) *Wave {
	t.Helper()
	cfg := config.DefaultInvadersConfig()
	if mutate != nil {
		mutate(&cfg)
	}
	return NewWave(cfg, &seqRNG{})
}

func mustPanic(t *testing.T, name string, fn func()) {
	t.Helper()
	defer func() {
		if recover() == nil {
			t.Errorf("%s: expected panic", name)
		}
	}()
	fn()
}
