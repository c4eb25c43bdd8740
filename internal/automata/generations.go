package automata

import (
	"fmt"
	"math/rand/v2"

	"github.com/mgrid/casim/internal/grid"
	"github.com/mgrid/casim/internal/pattern"
)

// Generations generalizes Brian's Brain to N states with configurable
// birth/survival sets. State 1 is the only "alive" state for neighbor
// counting; states 2..n-1 are decaying and advance unconditionally until
// they reset to 0.
type Generations struct {
	nStates  int
	birth    NeighborSet
	survival NeighborSet
	boundary grid.Boundary
	cur      *grid.Grid
	nxt      *grid.Grid
	rng      *rand.Rand
}

// NewGenerations creates a Generations automaton. nStates below 3 is
// raised to 3; the default rule when both sets are empty is B2/S (the
// Star Wars-family firing rule).
func NewGenerations(w, h, nStates int, birth, survival NeighborSet, boundary grid.Boundary, seed int64) *Generations {
	if nStates < 3 {
		nStates = 3
	}
	if birth == 0 && survival == 0 {
		birth = NewNeighborSet(2)
	}
	return &Generations{
		nStates:  nStates,
		birth:    birth,
		survival: survival,
		boundary: boundary,
		cur:      grid.New(w, h),
		nxt:      grid.New(w, h),
		rng:      rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

// States returns the number of states.
func (g *Generations) States() int { return g.nStates }

// SetRules replaces the birth and survival sets without altering the grid.
func (g *Generations) SetRules(birth, survival NeighborSet) {
	g.birth = birth
	g.survival = survival
}

// Reset clears the grid.
func (g *Generations) Reset() { g.cur.Clear() }

// Grid returns the authoritative grid.
func (g *Generations) Grid() *grid.Grid { return g.cur }

// Step advances one generation. Only state-1 neighbors count as alive.
func (g *Generations) Step() {
	w, h := g.cur.W, g.cur.H
	cur, nxt := g.cur.Cells(), g.nxt.Cells()
	last := uint8(g.nStates - 1)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			idx := y*w + x
			state := cur[idx]
			switch {
			case state == 0:
				if g.birth.Has(g.aliveNeighbors(x, y)) {
					nxt[idx] = 1
				} else {
					nxt[idx] = 0
				}
			case state == 1:
				if g.survival.Has(g.aliveNeighbors(x, y)) {
					nxt[idx] = 1
				} else {
					nxt[idx] = 2
				}
			case state == last:
				nxt[idx] = 0
			default:
				nxt[idx] = state + 1
			}
		}
	}
	g.cur, g.nxt = g.nxt, g.cur
}

func (g *Generations) aliveNeighbors(x, y int) int {
	w, h := g.cur.W, g.cur.H
	cur := g.cur.Cells()
	alive := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if dx == 0 && dy == 0 {
				continue
			}
			nx, ny, ok := grid.Resolve(x+dx, y+dy, w, h, g.boundary)
			if !ok {
				continue
			}
			if cur[ny*w+nx] == 1 {
				alive++
			}
		}
	}
	return alive
}

// HandleClick cycles the clicked cell through all states.
func (g *Generations) HandleClick(x, y int) error {
	if !g.cur.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	g.cur.Set(x, y, (g.cur.Get(x, y)+1)%uint8(g.nStates))
	return nil
}

// LoadPattern supports the random soup preset with state-1 seeds.
func (g *Generations) LoadPattern(name string) error {
	g.cur.Clear()
	if name != "soup" {
		return fmt.Errorf("unknown pattern %q for generations", name)
	}
	pattern.Soup(g.cur, g.rng, 1)
	return nil
}
