package automata

import (
	"fmt"
	"math/rand/v2"

	"github.com/mgrid/casim/internal/grid"
	"github.com/mgrid/casim/internal/pattern"
)

// Wireworld cell states.
const (
	WireEmpty     uint8 = 0
	WireConductor uint8 = 1
	WireHead      uint8 = 2
	WireTail      uint8 = 3
)

// Wireworld is the 4-state signal-propagation automaton: electron heads
// travel along conductors, trailed by tails.
type Wireworld struct {
	boundary grid.Boundary
	cur      *grid.Grid
	nxt      *grid.Grid
	rng      *rand.Rand
}

// NewWireworld creates an empty Wireworld grid.
func NewWireworld(w, h int, boundary grid.Boundary, seed int64) *Wireworld {
	return &Wireworld{
		boundary: boundary,
		cur:      grid.New(w, h),
		nxt:      grid.New(w, h),
		rng:      rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

// Reset clears the grid.
func (ww *Wireworld) Reset() { ww.cur.Clear() }

// Grid returns the authoritative grid.
func (ww *Wireworld) Grid() *grid.Grid { return ww.cur }

// Step applies the Wireworld transition: head becomes tail, tail becomes
// conductor, and a conductor becomes a head iff exactly 1 or 2 of its
// Moore neighbors are heads. Empty cells stay empty.
func (ww *Wireworld) Step() {
	w, h := ww.cur.W, ww.cur.H
	cur, nxt := ww.cur.Cells(), ww.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			switch cur[idx] {
			case WireHead:
				nxt[idx] = WireTail
			case WireTail:
				nxt[idx] = WireConductor
			case WireConductor:
				heads := ww.headNeighbors(x, y)
				if heads == 1 || heads == 2 {
					nxt[idx] = WireHead
				} else {
					nxt[idx] = WireConductor
				}
			default:
				nxt[idx] = WireEmpty
			}
		}
	}
	ww.cur, ww.nxt = ww.nxt, ww.cur
}

func (ww *Wireworld) headNeighbors(x, y int) int {
	w, h := ww.cur.W, ww.cur.H
	cur := ww.cur.Cells()
	heads := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny, ok := grid.Resolve(x+dx, y+dy, w, h, ww.boundary)
			if !ok {
				continue
			}
			if cur[ny*w+nx] == WireHead {
				heads++
			}
		}
	}
	return heads
}

// HandleClick cycles the clicked cell through
// empty -> conductor -> head -> tail -> empty.
func (ww *Wireworld) HandleClick(x, y int) error {
	if !ww.cur.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	ww.cur.Set(x, y, (ww.cur.Get(x, y)+1)%4)
	return nil
}

// LoadPattern supports the random-conductor soup preset.
func (ww *Wireworld) LoadPattern(name string) error {
	ww.cur.Clear()
	if name != "soup" {
		return fmt.Errorf("unknown pattern %q for wireworld", name)
	}
	pattern.Soup(ww.cur, ww.rng, 1)
	return nil
}
