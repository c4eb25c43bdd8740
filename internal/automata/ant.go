package automata

import (
	"fmt"

	"github.com/mgrid/casim/internal/grid"
)

// Ant headings, clockwise from north.
const (
	HeadingNorth = iota
	HeadingEast
	HeadingSouth
	HeadingWest
)

// AntMarker is the sentinel state used to overlay the agent position in
// the render view. It never appears in the authoritative grid.
const AntMarker uint8 = 2

// LangtonsAnt is the agent-plus-grid automaton: the ant flips the cell it
// stands on, turns by the color it read, and walks forward with toroidal
// wrapping.
type LangtonsAnt struct {
	g       *grid.Grid
	x, y    int
	heading int
}

// NewLangtonsAnt creates an all-dead grid with the ant centered, facing
// north.
func NewLangtonsAnt(w, h int) *LangtonsAnt {
	a := &LangtonsAnt{g: grid.New(w, h)}
	a.Reset()
	return a
}

// Reset clears the grid and recenters the ant facing north.
func (a *LangtonsAnt) Reset() {
	a.g.Clear()
	a.x = a.g.W / 2
	a.y = a.g.H / 2
	a.heading = HeadingNorth
}

// Grid returns the authoritative grid, without the agent overlay.
func (a *LangtonsAnt) Grid() *grid.Grid { return a.g }

// Render returns a copy of the grid with the ant's cell overlaid with
// AntMarker, for display only.
func (a *LangtonsAnt) Render() *grid.Grid {
	view := a.g.Clone()
	view.Set(a.x, a.y, AntMarker)
	return view
}

// Position returns the ant's cell and heading.
func (a *LangtonsAnt) Position() (x, y, heading int) { return a.x, a.y, a.heading }

// Step reads the current cell, flips it, turns clockwise on a 0 read and
// counter-clockwise on a 1 read, then moves one cell forward, wrapping at
// the edges.
func (a *LangtonsAnt) Step() {
	read := a.g.Get(a.x, a.y)
	a.g.Set(a.x, a.y, 1-read)

	if read == 0 {
		a.heading = (a.heading + 1) % 4
	} else {
		a.heading = (a.heading + 3) % 4
	}

	switch a.heading {
	case HeadingNorth:
		a.y = grid.WrapIndex(a.y-1, a.g.H)
	case HeadingEast:
		a.x = grid.WrapIndex(a.x+1, a.g.W)
	case HeadingSouth:
		a.y = grid.WrapIndex(a.y+1, a.g.H)
	default:
		a.x = grid.WrapIndex(a.x-1, a.g.W)
	}
}

// HandleClick teleports the ant to the clicked cell.
func (a *LangtonsAnt) HandleClick(x, y int) error {
	if !a.g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	a.x, a.y = x, y
	return nil
}
