package grid

import (
	"fmt"
	"strings"
)

// Boundary selects how neighbor lookups past the grid edge resolve.
type Boundary int

const (
	// Wrap treats the grid as a torus: indices wrap to the opposite edge.
	Wrap Boundary = iota
	// Fixed treats everything outside the grid as dead (state 0).
	Fixed
	// Reflect mirrors the near interior, edge row/column included.
	Reflect
)

func (b Boundary) String() string {
	switch b {
	case Wrap:
		return "wrap"
	case Fixed:
		return "fixed"
	case Reflect:
		return "reflect"
	}
	return "unknown"
}

// ParseBoundary parses a boundary mode name, case-insensitively.
func ParseBoundary(name string) (Boundary, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "wrap", "":
		return Wrap, nil
	case "fixed":
		return Fixed, nil
	case "reflect":
		return Reflect, nil
	}
	return Wrap, fmt.Errorf("unknown boundary mode: %s (choose wrap, fixed, reflect)", name)
}

// Kernel is a 3x3 weight matrix applied to each cell's neighborhood.
// Kernel[1][1] weights the cell itself.
type Kernel [3][3]int

// MooreKernel weights all 8 surrounding cells at 1 and the center at 0,
// so the resulting sums are live-neighbor counts for binary grids.
var MooreKernel = Kernel{
	{1, 1, 1},
	{1, 0, 1},
	{1, 1, 1},
}

// WrapIndex folds i onto [0, n) toroidally.
func WrapIndex(i, n int) int {
	return ((i % n) + n) % n
}

// ReflectIndex mirrors i into [0, n) with the edge included, matching
// symmetric reflection: -1 -> 0, n -> n-1. The period-2n fold keeps the
// result defined even when the offset exceeds the grid size.
func ReflectIndex(i, n int) int {
	period := 2 * n
	i = ((i % period) + period) % period
	if i >= n {
		i = period - 1 - i
	}
	return i
}

// Resolve maps an out-of-bounds neighbor coordinate under the boundary
// mode. ok is false only for Fixed lookups that fall outside the grid.
func Resolve(x, y, w, h int, b Boundary) (nx, ny int, ok bool) {
	switch b {
	case Wrap:
		return WrapIndex(x, w), WrapIndex(y, h), true
	case Reflect:
		return ReflectIndex(x, w), ReflectIndex(y, h), true
	default:
		if x < 0 || x >= w || y < 0 || y >= h {
			return 0, 0, false
		}
		return x, y, true
	}
}

// NeighborCounts convolves the grid with the kernel under the given
// boundary mode and returns the per-cell weighted sums in row-major order.
// For MooreKernel under Wrap this yields exactly the live-neighbor counts
// that life-like rules are defined over. Pure function: g is not modified.
func NeighborCounts(g *Grid, k Kernel, b Boundary) []int {
	w, h := g.W, g.H
	cells := g.Cells()
	out := make([]int, w*h)

	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			sum := 0
			for dy := -1; dy <= 1; dy++ {
				for dx := -1; dx <= 1; dx++ {
					weight := k[dy+1][dx+1]
					if weight == 0 {
						continue
					}
					nx, ny, ok := Resolve(x+dx, y+dy, w, h, b)
					if !ok {
						continue
					}
					sum += weight * int(cells[ny*w+nx])
				}
			}
			out[y*w+x] = sum
		}
	}
	return out
}
