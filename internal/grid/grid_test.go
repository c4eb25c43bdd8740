package grid

import "testing"

func TestCloneIsDeep(t *testing.T) {
	g := New(4, 3)
	g.Set(1, 2, 7)

	c := g.Clone()
	c.Set(1, 2, 0)

	if g.Get(1, 2) != 7 {
		t.Error("mutating the clone changed the original")
	}
	if !g.Equal(g.Clone()) {
		t.Error("clone should compare equal to its source")
	}
}

func TestPopulationDensity(t *testing.T) {
	g := New(10, 10)
	g.Set(0, 0, 1)
	g.Set(9, 9, 3)

	if got := g.Population(); got != 2 {
		t.Errorf("population = %d, want 2", got)
	}
	if got := g.Density(); got != 0.02 {
		t.Errorf("density = %f, want 0.02", got)
	}
}

func TestHashDistinguishesShapeAndContent(t *testing.T) {
	a := New(4, 2)
	b := New(2, 4)
	if a.Hash() == b.Hash() {
		t.Error("transposed dimensions should hash differently")
	}

	c := New(4, 2)
	if a.Hash() != c.Hash() {
		t.Error("identical grids should hash equal")
	}

	c.Set(3, 1, 1)
	if a.Hash() == c.Hash() {
		t.Error("differing contents should hash differently")
	}
}

func TestNeighborCountsFixed(t *testing.T) {
	// Single live cell in a corner: under Fixed, only in-bounds neighbors
	// contribute.
	g := New(3, 3)
	g.Set(0, 0, 1)

	counts := NeighborCounts(g, MooreKernel, Fixed)
	if counts[g.Index(0, 0)] != 0 {
		t.Errorf("corner self-count = %d, want 0", counts[g.Index(0, 0)])
	}
	if counts[g.Index(1, 1)] != 1 {
		t.Errorf("diagonal neighbor count = %d, want 1", counts[g.Index(1, 1)])
	}
	if counts[g.Index(2, 2)] != 0 {
		t.Errorf("far corner count = %d, want 0", counts[g.Index(2, 2)])
	}
}

func TestNeighborCountsReflect(t *testing.T) {
	// Live cell at (0,0). Reflection duplicates the edge, so the cell sees
	// mirror images of itself across both edges and the corner.
	g := New(3, 3)
	g.Set(0, 0, 1)

	counts := NeighborCounts(g, MooreKernel, Reflect)
	// Neighbors of (0,0): (-1,-1),(0,-1),(1,-1),(-1,0),(1,0),(-1,1),(0,1),(1,1)
	// reflect to (0,0),(0,0),(1,0),(0,0),(1,0),(0,1),(0,1),(1,1):
	// three mirror copies of the live cell itself.
	if counts[g.Index(0, 0)] != 3 {
		t.Errorf("reflected corner count = %d, want 3", counts[g.Index(0, 0)])
	}
}

// Wrap-boundary equivalence: neighbor counts at (0,0) must match the
// counts read from the interior of an explicitly 3x3-tiled copy.
func TestNeighborCountsWrapMatchesTiling(t *testing.T) {
	g := New(5, 4)
	g.Set(0, 0, 1)
	g.Set(4, 0, 1)
	g.Set(0, 3, 1)
	g.Set(2, 2, 1)
	g.Set(4, 3, 1)

	tiled := New(g.W*3, g.H*3)
	for ty := 0; ty < 3; ty++ {
		for tx := 0; tx < 3; tx++ {
			for y := 0; y < g.H; y++ {
				for x := 0; x < g.W; x++ {
					tiled.Set(tx*g.W+x, ty*g.H+y, g.Get(x, y))
				}
			}
		}
	}

	wrapped := NeighborCounts(g, MooreKernel, Wrap)
	flat := NeighborCounts(tiled, MooreKernel, Fixed)

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			want := flat[tiled.Index(g.W+x, g.H+y)]
			got := wrapped[g.Index(x, y)]
			if got != want {
				t.Fatalf("count at (%d,%d): wrap=%d tiled=%d", x, y, got, want)
			}
		}
	}
}

func TestNeighborCountsTinyGrid(t *testing.T) {
	// A 1x1 grid still produces defined results in every mode.
	g := New(1, 1)
	g.Set(0, 0, 1)

	if got := NeighborCounts(g, MooreKernel, Wrap)[0]; got != 8 {
		t.Errorf("wrap 1x1 count = %d, want 8 (all neighbors are the cell)", got)
	}
	if got := NeighborCounts(g, MooreKernel, Fixed)[0]; got != 0 {
		t.Errorf("fixed 1x1 count = %d, want 0", got)
	}
	if got := NeighborCounts(g, MooreKernel, Reflect)[0]; got != 8 {
		t.Errorf("reflect 1x1 count = %d, want 8", got)
	}
}

func TestParseBoundary(t *testing.T) {
	tests := []struct {
		in      string
		want    Boundary
		wantErr bool
	}{
		{"wrap", Wrap, false},
		{" WRAP ", Wrap, false},
		{"fixed", Fixed, false},
		{"Reflect", Reflect, false},
		{"", Wrap, false},
		{"moebius", Wrap, true},
	}
	for _, tt := range tests {
		got, err := ParseBoundary(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBoundary(%q) err = %v", tt.in, err)
			continue
		}
		if err == nil && got != tt.want {
			t.Errorf("ParseBoundary(%q) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
