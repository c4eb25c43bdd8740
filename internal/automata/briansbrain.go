package automata

import (
	"fmt"
	"math/rand/v2"

	"github.com/mgrid/casim/internal/grid"
	"github.com/mgrid/casim/internal/pattern"
)

// Brian's Brain cell states.
const (
	BrainReady      uint8 = 0
	BrainFiring     uint8 = 1
	BrainRefractory uint8 = 2
)

// BriansBrain is the 3-state refractory automaton: a ready cell fires when
// exactly two neighbors fire, then rests one generation before it can fire
// again.
type BriansBrain struct {
	boundary grid.Boundary
	cur      *grid.Grid
	nxt      *grid.Grid
	rng      *rand.Rand
}

// NewBriansBrain creates an all-ready grid.
func NewBriansBrain(w, h int, boundary grid.Boundary, seed int64) *BriansBrain {
	return &BriansBrain{
		boundary: boundary,
		cur:      grid.New(w, h),
		nxt:      grid.New(w, h),
		rng:      rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

// Reset clears the grid.
func (b *BriansBrain) Reset() { b.cur.Clear() }

// Grid returns the authoritative grid.
func (b *BriansBrain) Grid() *grid.Grid { return b.cur }

// Step advances one generation: firing -> refractory -> ready
// unconditionally; ready -> firing iff exactly 2 neighbors are firing.
func (b *BriansBrain) Step() {
	w, h := b.cur.W, b.cur.H
	cur, nxt := b.cur.Cells(), b.nxt.Cells()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			switch cur[idx] {
			case BrainFiring:
				nxt[idx] = BrainRefractory
			case BrainRefractory:
				nxt[idx] = BrainReady
			default:
				firing := 0
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						nx, ny, ok := grid.Resolve(x+dx, y+dy, w, h, b.boundary)
						if !ok {
							continue
						}
						if cur[ny*w+nx] == BrainFiring {
							firing++
						}
					}
				}
				if firing == 2 {
					nxt[idx] = BrainFiring
				} else {
					nxt[idx] = BrainReady
				}
			}
		}
	}
	b.cur, b.nxt = b.nxt, b.cur
}

// HandleClick cycles the clicked cell through ready -> firing -> refractory.
func (b *BriansBrain) HandleClick(x, y int) error {
	if !b.cur.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	b.cur.Set(x, y, (b.cur.Get(x, y)+1)%3)
	return nil
}

// LoadPattern supports the random firing soup preset.
func (b *BriansBrain) LoadPattern(name string) error {
	b.cur.Clear()
	if name != "soup" {
		return fmt.Errorf("unknown pattern %q for brain", name)
	}
	pattern.Soup(b.cur, b.rng, 1)
	return nil
}
