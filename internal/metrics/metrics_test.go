package metrics

import (
	"math"
	"testing"

	"github.com/mgrid/casim/internal/grid"
)

func TestCollect(t *testing.T) {
	g := grid.New(10, 10)
	g.Set(0, 0, 1)
	g.Set(5, 5, 2)

	m := Collect(7, g)
	if m.Generation != 7 || m.Population != 2 || m.Density != 0.02 {
		t.Errorf("Collect = %+v", m)
	}
}

func TestSummarize(t *testing.T) {
	log := []Step{
		{Generation: 1, Population: 10, Density: 0.10},
		{Generation: 2, Population: 30, Density: 0.30},
		{Generation: 3, Population: 20, Density: 0.20},
	}
	s := Summarize(log)
	if s.Generations != 3 {
		t.Errorf("generations = %d", s.Generations)
	}
	if s.Population != 20 || s.PeakPopulation != 30 {
		t.Errorf("population = %d, peak = %d", s.Population, s.PeakPopulation)
	}
	if math.Abs(s.AvgPopulation-20) > 1e-9 {
		t.Errorf("avg population = %f", s.AvgPopulation)
	}
	if math.Abs(s.AvgDensity-0.2) > 1e-9 {
		t.Errorf("avg density = %f", s.AvgDensity)
	}
}

func TestSummarizeEmpty(t *testing.T) {
	s := Summarize(nil)
	if s.Generations != 0 || s.Population != 0 {
		t.Errorf("empty summary = %+v", s)
	}
}

func TestEntropy(t *testing.T) {
	uniform := grid.New(8, 8)
	if got := Entropy(uniform); got != 0 {
		t.Errorf("entropy of blank grid = %f, want 0", got)
	}

	// Half 0s, half 1s: exactly 1 bit.
	half := grid.New(8, 8)
	for i := 0; i < 32; i++ {
		half.Set(i%8, i/8, 1)
	}
	if got := Entropy(half); math.Abs(got-1.0) > 1e-9 {
		t.Errorf("entropy of half-filled grid = %f, want 1", got)
	}
}

func TestComplexityOrdering(t *testing.T) {
	blank := grid.New(16, 16)

	checker := grid.New(16, 16)
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if (x+y)%2 == 0 {
				checker.Set(x, y, 1)
			}
		}
	}

	if Complexity(blank, nil) >= Complexity(checker, nil) {
		t.Error("checkerboard should score higher than a blank grid")
	}
	if c := Complexity(checker, blank); c < 0 || c > 1 {
		t.Errorf("complexity out of range: %f", c)
	}
}

func TestDiversity(t *testing.T) {
	blank := grid.New(8, 8)
	// Single distinct 2x2 block.
	if got := Diversity(blank); got >= 0.05 {
		t.Errorf("blank diversity = %f, want near 0", got)
	}

	varied := grid.New(8, 8)
	for y := 0; y < 8; y++ {
		for x := 0; x < 8; x++ {
			varied.Set(x, y, uint8((x*7+y*13)%4))
		}
	}
	if Diversity(varied) <= Diversity(blank) {
		t.Error("varied grid should be more diverse than blank")
	}
}
