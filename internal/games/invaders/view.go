package invaders

import (
	"math"

	"github.com/vovakirdan/tui-invaders/internal/config"
	"github.com/vovakirdan/tui-invaders/internal/core"
)

// Input is the per-frame key state a wave reads.
// core.InputFrame implements it.
type Input interface {
	IsDown(a core.Action) bool
	IsPressed(a core.Action) bool
}

// Kind identifies what a Drawable represents.
type Kind int

const (
	KindAlien Kind = iota
	KindShip
	KindDefenseLine
	KindPlayerBolt
	KindAlienBolt
)

// Drawable is one positioned rectangle handed to a View.
type Drawable struct {
	Kind  Kind
	Box   core.Box // World units, y up
	Image string   // Image variant for aliens, empty otherwise
}

// View receives the wave's drawables in paint order; later draws are on top.
type View interface {
	Draw(d Drawable)
}

// ScreenView projects world drawables onto a character screen.
// Rows above Top are left to the caller for status text.
type ScreenView struct {
	Screen *core.Screen
	World  config.WorldConfig
	Top    int
}

var alienGlyphs = []struct {
	r rune
	c core.Color
}{
	{'W', core.ColorBrightMagenta},
	{'M', core.ColorBrightCyan},
	{'X', core.ColorBrightYellow},
}

// Draw implements View.
func (v *ScreenView) Draw(d Drawable) {
	r := v.project(d.Box)

	switch d.Kind {
	case KindAlien:
		g := alienGlyphs[imageIndex(d.Image)%len(alienGlyphs)]
		v.Screen.DrawRect(r, g.r, g.c)
	case KindShip:
		v.Screen.DrawRect(r, '▲', core.ColorBrightGreen)
	case KindDefenseLine:
		v.Screen.DrawRect(core.NewRect(0, r.Y, v.Screen.Width(), 1), '─', core.ColorRed)
	case KindPlayerBolt:
		v.Screen.DrawRect(r, '|', core.ColorBrightWhite)
	case KindAlienBolt:
		v.Screen.DrawRect(r, '!', core.ColorBrightRed)
	}
}

// project maps a world box to the cells it covers, at least one cell.
func (v *ScreenView) project(b core.Box) core.Rect {
	w, h := v.Screen.Width(), v.Screen.Height()-v.Top
	if w <= 0 || h <= 0 {
		return core.Rect{}
	}

	col := func(x float64) int {
		return core.Clamp(int(math.Floor(x/v.World.Width*float64(w))), 0, w-1)
	}
	row := func(y float64) int {
		return core.Clamp(int(math.Floor((v.World.Height-y)/v.World.Height*float64(h))), 0, h-1)
	}

	x0, x1 := col(b.MinX()), col(b.MaxX())
	y0, y1 := row(b.MaxY()), row(b.MinY())
	return core.NewRect(x0, v.Top+y0, x1-x0+1, y1-y0+1)
}

// imageIndex extracts a stable index from an image key such as "alien2".
func imageIndex(image string) int {
	n := 0
	for _, r := range image {
		if r >= '0' && r <= '9' {
			n = n*10 + int(r-'0')
		}
	}
	if n > 0 {
		n--
	}
	return n
}
