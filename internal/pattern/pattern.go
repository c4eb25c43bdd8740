// Package pattern supplies named seed patterns as coordinate lists of
// (dx, dy) offsets relative to the grid center, plus the procedural
// "soup" fill.
package pattern

import (
	"math/rand/v2"
	"sort"

	"github.com/mgrid/casim/internal/grid"
)

// SoupDensity is the fill probability used by the procedural soup preset.
const SoupDensity = 0.15

// Point is a cell offset from the grid center.
type Point struct {
	DX, DY int
}

// Cell is a point with an explicit state, for multi-color seeds.
type Cell struct {
	DX, DY int
	State  uint8
}

var library = map[string]map[string][]Point{
	"life": {
		"block":   {{0, 0}, {1, 0}, {0, 1}, {1, 1}},
		"blinker": {{-1, 0}, {0, 0}, {1, 0}},
		"toad":    {{0, 0}, {1, 0}, {2, 0}, {-1, 1}, {0, 1}, {1, 1}},
		"beacon":  {{-1, -1}, {0, -1}, {-1, 0}, {2, 1}, {1, 2}, {2, 2}},
		"beehive": {{0, 0}, {1, 0}, {-1, 1}, {2, 1}, {0, 2}, {1, 2}},
		"glider":  {{0, -1}, {1, 0}, {-1, 1}, {0, 1}, {1, 1}},
		"lwss": {
			{0, 0}, {3, 0}, {4, 1}, {0, 2}, {4, 2},
			{1, 3}, {2, 3}, {3, 3}, {4, 3},
		},
		"r-pentomino": {{0, -1}, {1, -1}, {-1, 0}, {0, 0}, {0, 1}},
		"acorn":       {{-2, -1}, {0, 0}, {-3, 1}, {-2, 1}, {1, 1}, {2, 1}, {3, 1}},
		"glider-gun": {
			{-17, 0}, {-17, 1}, {-16, 0}, {-16, 1},
			{-7, 0}, {-7, 1}, {-7, 2}, {-6, -1}, {-6, 3}, {-5, -2}, {-5, 4},
			{-4, -2}, {-4, 4}, {-3, 1}, {-2, -1}, {-2, 3}, {-1, 0}, {-1, 1},
			{-1, 2}, {0, 1},
			{3, 0}, {3, -1}, {3, -2}, {4, 0}, {4, -1}, {4, -2}, {5, 1},
			{5, -3}, {7, 1}, {7, 2}, {7, -3}, {7, -4},
			{17, -2}, {17, -1}, {18, -2}, {18, -1},
		},
	},
	"highlife": {
		"replicator": {{1, 0}, {0, 1}, {1, 1}, {2, 1}, {0, 2}, {2, 2}, {1, 3}},
	},
	"hexlife": {},
	"wireworld": {
		// A straight conductor run with a traveling head/tail pair is
		// stamped by LoadPattern in the variant itself; only soup lives here.
	},
}

// Seeds of explicitly-colored cells for the color-competition variants.
var coloredLibrary = map[string]map[string][]Cell{
	"immigration": {
		"color-mix": colorCells([]seed{
			{pts: []Point{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}, dx: -20, dy: -15, state: 1},
			{pts: []Point{{0, 0}, {1, 0}, {2, 0}}, dx: -1, dy: -15, state: 2},
			{pts: []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, dx: 10, dy: -15, state: 3},
		}),
	},
	"rainbow": {
		"rainbow-mix": colorCells([]seed{
			{pts: []Point{{1, 0}, {2, 1}, {0, 2}, {1, 2}, {2, 2}}, dx: -30, dy: -20, state: 1},
			{pts: []Point{{0, 0}, {1, 0}, {2, 0}}, dx: -15, dy: -20, state: 2},
			{pts: []Point{{1, 0}, {2, 0}, {3, 0}, {0, 1}, {1, 1}, {2, 1}}, dx: 0, dy: -20, state: 3},
			{pts: []Point{{0, 0}, {1, 0}, {0, 1}, {1, 1}}, dx: 15, dy: -20, state: 4},
			{pts: []Point{{1, 0}, {2, 0}, {0, 1}, {3, 1}, {1, 2}, {2, 2}}, dx: 25, dy: -20, state: 5},
			{pts: []Point{{0, 0}, {1, 0}, {0, 1}, {3, 2}, {2, 3}, {3, 3}}, dx: -20, dy: 0, state: 6},
		}),
	},
}

type seed struct {
	pts    []Point
	dx, dy int
	state  uint8
}

func colorCells(seeds []seed) []Cell {
	var out []Cell
	for _, s := range seeds {
		for _, p := range s.pts {
			out = append(out, Cell{DX: p.DX + s.dx, DY: p.DY + s.dy, State: s.state})
		}
	}
	return out
}

// Coords returns the coordinate list for a named pattern of a mode.
func Coords(mode, name string) ([]Point, bool) {
	pts, ok := library[mode][name]
	return pts, ok
}

// ColoredCells returns the explicitly-colored seed for a named pattern.
func ColoredCells(mode, name string) ([]Cell, bool) {
	cells, ok := coloredLibrary[mode][name]
	return cells, ok
}

// Names lists the pattern names available for a mode, "soup" included,
// sorted alphabetically.
func Names(mode string) []string {
	names := []string{"soup"}
	for name := range library[mode] {
		names = append(names, name)
	}
	for name := range coloredLibrary[mode] {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Stamp writes the pattern centered on the grid with the given state,
// silently clipping offsets that fall outside.
func Stamp(g *grid.Grid, pts []Point, state uint8) {
	cx, cy := g.W/2, g.H/2
	for _, p := range pts {
		x, y := cx+p.DX, cy+p.DY
		if g.InBounds(x, y) {
			g.Set(x, y, state)
		}
	}
}

// StampCells writes explicitly-colored cells centered on the grid.
func StampCells(g *grid.Grid, cells []Cell) {
	cx, cy := g.W/2, g.H/2
	for _, c := range cells {
		x, y := cx+c.DX, cy+c.DY
		if g.InBounds(x, y) {
			g.Set(x, y, c.State)
		}
	}
}

// Soup fills roughly SoupDensity of the grid with uniformly random states
// drawn from 1..maxState. The grid is cleared first.
func Soup(g *grid.Grid, rng *rand.Rand, maxState uint8) {
	g.Clear()
	cells := g.Cells()
	for i := range cells {
		if rng.Float64() < SoupDensity {
			if maxState <= 1 {
				cells[i] = 1
			} else {
				cells[i] = uint8(rng.IntN(int(maxState))) + 1
			}
		}
	}
}
