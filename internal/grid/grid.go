package grid

import (
	"encoding/binary"
	"hash/fnv"
)

// Grid stores 2D cell states in row-major order. Values are small
// unsigned integers in [0, nStates) for whichever automaton owns the grid.
type Grid struct {
	W, H  int
	cells []uint8
}

// New allocates a zeroed grid with the given dimensions.
func New(w, h int) *Grid {
	if w <= 0 {
		w = 1
	}
	if h <= 0 {
		h = 1
	}
	return &Grid{W: w, H: h, cells: make([]uint8, w*h)}
}

// Cells exposes the backing slice so hot loops can index it directly.
func (g *Grid) Cells() []uint8 { return g.cells }

// Index returns the linear slice index for coordinates (x, y).
func (g *Grid) Index(x, y int) int { return y*g.W + x }

// InBounds reports whether (x, y) lies inside the grid.
func (g *Grid) InBounds(x, y int) bool {
	return x >= 0 && x < g.W && y >= 0 && y < g.H
}

// Get returns the state at (x, y). The coordinates must be in bounds.
func (g *Grid) Get(x, y int) uint8 { return g.cells[y*g.W+x] }

// Set writes the state at (x, y). The coordinates must be in bounds.
func (g *Grid) Set(x, y int, v uint8) { g.cells[y*g.W+x] = v }

// Clear fills the grid with zeros.
func (g *Grid) Clear() {
	for i := range g.cells {
		g.cells[i] = 0
	}
}

// Clone returns a deep copy.
func (g *Grid) Clone() *Grid {
	c := &Grid{W: g.W, H: g.H, cells: make([]uint8, len(g.cells))}
	copy(c.cells, g.cells)
	return c
}

// CopyFrom overwrites this grid with the contents of src. Both grids must
// have the same dimensions; mismatched sources are ignored.
func (g *Grid) CopyFrom(src *Grid) {
	if src == nil || src.W != g.W || src.H != g.H {
		return
	}
	copy(g.cells, src.cells)
}

// Equal reports whether two grids have identical shape and contents.
func (g *Grid) Equal(o *Grid) bool {
	if o == nil || g.W != o.W || g.H != o.H {
		return false
	}
	for i, v := range g.cells {
		if o.cells[i] != v {
			return false
		}
	}
	return true
}

// Population counts nonzero cells.
func (g *Grid) Population() int {
	n := 0
	for _, v := range g.cells {
		if v != 0 {
			n++
		}
	}
	return n
}

// Density returns the fraction of nonzero cells.
func (g *Grid) Density() float64 {
	return float64(g.Population()) / float64(len(g.cells))
}

// Hash returns an FNV-1a digest of the grid shape and contents. Two grids
// hash equal iff dimensions and every cell match, up to hash collisions.
func (g *Grid) Hash() uint64 {
	h := fnv.New64a()
	var dims [8]byte
	binary.LittleEndian.PutUint32(dims[0:], uint32(g.W))
	binary.LittleEndian.PutUint32(dims[4:], uint32(g.H))
	h.Write(dims[:])
	h.Write(g.cells)
	return h.Sum64()
}
