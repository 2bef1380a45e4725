package invaders

import (
	"fmt"

	"github.com/vovakirdan/tui-invaders/internal/config"
)

// Grid is the alien formation: a fixed rows x cols arena of slots.
// A nil slot is a destroyed alien and never becomes occupied again, so an
// alien keeps its row and column for the whole wave.
type Grid struct {
	rows, cols int
	cells      [][]*Alien // cells[row][col], row 0 is the top row
}

// NewGrid builds a full formation. The first column is HSep plus half an
// alien from the left wall; the top row sits Ceiling below the world top.
// Image variants change every two rows and cycle through cfg.Images.
func NewGrid(cfg config.AliensConfig, worldHeight float64) *Grid {
	if cfg.Rows <= 0 || cfg.Columns <= 0 || len(cfg.Images) == 0 {
		panic(fmt.Sprintf("invaders: invalid grid %dx%d with %d images", cfg.Rows, cfg.Columns, len(cfg.Images)))
	}

	g := &Grid{
		rows:  cfg.Rows,
		cols:  cfg.Columns,
		cells: make([][]*Alien, cfg.Rows),
	}

	x0 := cfg.HSep + cfg.Width/2
	y := worldHeight - (cfg.Ceiling + cfg.Height/2)
	for row := range cfg.Rows {
		image := cfg.Images[(row/2)%len(cfg.Images)]
		g.cells[row] = make([]*Alien, cfg.Columns)
		x := x0
		for col := range cfg.Columns {
			g.cells[row][col] = &Alien{X: x, Y: y, Width: cfg.Width, Height: cfg.Height, Image: image}
			x += cfg.Width + cfg.HSep
		}
		y -= cfg.Height + cfg.VSep
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// At returns the alien in a slot, or nil if the slot is empty.
// Panics if the slot is outside the grid.
func (g *Grid) At(row, col int) *Alien {
	g.check(row, col)
	return g.cells[row][col]
}

// Kill empties a slot.
func (g *Grid) Kill(row, col int) {
	g.check(row, col)
	g.cells[row][col] = nil
}

// Alive returns the number of aliens still present.
func (g *Grid) Alive() int {
	n := 0
	g.Each(func(int, int, *Alien) { n++ })
	return n
}

// Empty reports whether every slot is empty.
func (g *Grid) Empty() bool {
	for _, cells := range g.cells {
		for _, a := range cells {
			if a != nil {
				return false
			}
		}
	}
	return true
}

// FirstInRow returns the column of the leftmost alien in a row.
// ok is false for an emptied row.
func (g *Grid) FirstInRow(row int) (col int, ok bool) {
	g.check(row, 0)
	for c, a := range g.cells[row] {
		if a != nil {
			return c, true
		}
	}
	return 0, false
}

// LastInRow returns the column of the rightmost alien in a row.
// ok is false for an emptied row.
func (g *Grid) LastInRow(row int) (col int, ok bool) {
	g.check(row, 0)
	for c := g.cols - 1; c >= 0; c-- {
		if g.cells[row][c] != nil {
			return c, true
		}
	}
	return 0, false
}

// LeftEdge returns the smallest alien center x over all non-empty rows.
// ok is false when the grid is empty.
func (g *Grid) LeftEdge() (x float64, ok bool) {
	for row := range g.rows {
		col, found := g.FirstInRow(row)
		if !found {
			continue
		}
		if ax := g.cells[row][col].X; !ok || ax < x {
			x, ok = ax, true
		}
	}
	return x, ok
}

// RightEdge returns the largest alien center x over all non-empty rows.
// ok is false when the grid is empty.
func (g *Grid) RightEdge() (x float64, ok bool) {
	for row := range g.rows {
		col, found := g.LastInRow(row)
		if !found {
			continue
		}
		if ax := g.cells[row][col].X; !ok || ax > x {
			x, ok = ax, true
		}
	}
	return x, ok
}

// NonEmptyColumns returns the indices of columns with at least one alien,
// in ascending order.
func (g *Grid) NonEmptyColumns() []int {
	var cols []int
	for col := range g.cols {
		for row := range g.rows {
			if g.cells[row][col] != nil {
				cols = append(cols, col)
				break
			}
		}
	}
	return cols
}

// LowestInColumn returns the bottom-most alien of a column and its row.
// ok is false for an emptied column.
func (g *Grid) LowestInColumn(col int) (a *Alien, row int, ok bool) {
	g.check(0, col)
	for r := g.rows - 1; r >= 0; r-- {
		if alien := g.cells[r][col]; alien != nil {
			return alien, r, true
		}
	}
	return nil, 0, false
}

// Each calls fn for every present alien in row-major order.
func (g *Grid) Each(fn func(row, col int, a *Alien)) {
	for row, cells := range g.cells {
		for col, a := range cells {
			if a != nil {
				fn(row, col, a)
			}
		}
	}
}

// Translate moves every present alien by (dx, dy).
func (g *Grid) Translate(dx, dy float64) {
	g.Each(func(_, _ int, a *Alien) {
		if dx != 0 {
			a.MoveX(dx)
		}
		if dy != 0 {
			a.MoveY(dy)
		}
	})
}

// AnyBelow reports whether a present alien's center is below y.
func (g *Grid) AnyBelow(y float64) bool {
	below := false
	g.Each(func(_, _ int, a *Alien) {
		if a.Y < y {
			below = true
		}
	})
	return below
}

func (g *Grid) check(row, col int) {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		panic(fmt.Sprintf("invaders: slot (%d,%d) outside %dx%d grid", row, col, g.rows, g.cols))
	}
}
