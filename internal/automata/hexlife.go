package automata

import (
	"fmt"
	"math/rand/v2"

	"github.com/mgrid/casim/internal/grid"
	"github.com/mgrid/casim/internal/pattern"
)

// Neighbor offsets for the odd-r horizontal hex layout. Each cell has six
// neighbors; the diagonal pair mirrors between even and odd rows because
// odd rows are shifted half a cell to the right.
var (
	hexEvenOffsets = [6][2]int{
		{-1, 0}, {1, 0}, // left, right
		{-1, -1}, {0, -1}, // up-left, up
		{-1, 1}, {0, 1}, // down-left, down
	}
	hexOddOffsets = [6][2]int{
		{-1, 0}, {1, 0}, // left, right
		{0, -1}, {1, -1}, // up, up-right
		{0, 1}, {1, 1}, // down, down-right
	}
)

// HexLife is binary life on a hex-packed odd-r grid with toroidal
// wrapping. Default rule: birth on exactly 2 neighbors, survival on 3 or 4.
type HexLife struct {
	birth    NeighborSet
	survival NeighborSet
	cur      *grid.Grid
	nxt      *grid.Grid
	rng      *rand.Rand
}

// NewHexLife creates a hex life grid with the default B2/S34 rule.
func NewHexLife(w, h int, seed int64) *HexLife {
	return &HexLife{
		birth:    NewNeighborSet(2),
		survival: NewNeighborSet(3, 4),
		cur:      grid.New(w, h),
		nxt:      grid.New(w, h),
		rng:      rand.New(rand.NewPCG(uint64(seed), uint64(seed)^0x9e3779b97f4a7c15)),
	}
}

// SetRules replaces the birth and survival sets without altering the grid.
func (hl *HexLife) SetRules(birth, survival NeighborSet) {
	hl.birth = birth
	hl.survival = survival
}

// Reset clears the grid.
func (hl *HexLife) Reset() { hl.cur.Clear() }

// Grid returns the authoritative grid.
func (hl *HexLife) Grid() *grid.Grid { return hl.cur }

// Step advances one generation using the row-parity neighbor sets.
func (hl *HexLife) Step() {
	w, h := hl.cur.W, hl.cur.H
	cur, nxt := hl.cur.Cells(), hl.nxt.Cells()
	for y := 0; y < h; y++ {
		offsets := &hexEvenOffsets
		if y%2 == 1 {
			offsets = &hexOddOffsets
		}
		for x := 0; x < w; x++ {
			neighbors := 0
			for _, d := range offsets {
				nx := grid.WrapIndex(x+d[0], w)
				ny := grid.WrapIndex(y+d[1], h)
				neighbors += int(cur[ny*w+nx])
			}
			idx := y*w + x
			switch {
			case cur[idx] == 0 && hl.birth.Has(neighbors):
				nxt[idx] = 1
			case cur[idx] == 1 && hl.survival.Has(neighbors):
				nxt[idx] = 1
			default:
				nxt[idx] = 0
			}
		}
	}
	hl.cur, hl.nxt = hl.nxt, hl.cur
}

// HandleClick toggles the clicked cell.
func (hl *HexLife) HandleClick(x, y int) error {
	if !hl.cur.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d)", ErrOutOfBounds, x, y)
	}
	hl.cur.Set(x, y, 1-hl.cur.Get(x, y))
	return nil
}

// LoadPattern supports the random soup preset.
func (hl *HexLife) LoadPattern(name string) error {
	hl.cur.Clear()
	if name != "soup" {
		return fmt.Errorf("unknown pattern %q for hexlife", name)
	}
	pattern.Soup(hl.cur, hl.rng, 1)
	return nil
}
