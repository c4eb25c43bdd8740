// Package metrics derives per-step and aggregate numeric summaries from
// grid snapshots. Everything here is display-side analysis: nothing feeds
// back into any transition rule.
package metrics

import (
	"math"

	"github.com/mgrid/casim/internal/grid"
)

// Step is the per-generation record appended to the simulator's log and
// handed to metrics consumers.
type Step struct {
	Generation int     `json:"generation"`
	Population int     `json:"population"`
	Density    float64 `json:"density"`
}

// Collect builds the step record for a grid at the given generation.
func Collect(generation int, g *grid.Grid) Step {
	pop := g.Population()
	return Step{
		Generation: generation,
		Population: pop,
		Density:    float64(pop) / float64(g.W*g.H),
	}
}

// Summary aggregates a metrics log for display.
type Summary struct {
	Generations    int     `json:"generations"`
	Population     int     `json:"population"`
	PeakPopulation int     `json:"peak_population"`
	AvgPopulation  float64 `json:"avg_population"`
	Density        float64 `json:"density"`
	PeakDensity    float64 `json:"peak_density"`
	AvgDensity     float64 `json:"avg_density"`
	CanUndo        bool    `json:"can_undo"`
	CanRedo        bool    `json:"can_redo"`
	CyclePeriod    int     `json:"cycle_period,omitempty"`
	CycleStart     int     `json:"cycle_start,omitempty"`
}

// Summarize folds a log into a Summary. Undo/redo availability and cycle
// data are filled in by the simulator.
func Summarize(log []Step) Summary {
	var s Summary
	s.Generations = len(log)
	if len(log) == 0 {
		return s
	}

	var popSum, densSum float64
	for _, m := range log {
		popSum += float64(m.Population)
		densSum += m.Density
		if m.Population > s.PeakPopulation {
			s.PeakPopulation = m.Population
		}
		if m.Density > s.PeakDensity {
			s.PeakDensity = m.Density
		}
	}
	last := log[len(log)-1]
	s.Population = last.Population
	s.Density = last.Density
	s.AvgPopulation = popSum / float64(len(log))
	s.AvgDensity = densSum / float64(len(log))
	return s
}

// Entropy approximates the Shannon entropy of the grid's state
// distribution, in bits. Uniformly mixed grids score high, single-state
// grids score zero.
func Entropy(g *grid.Grid) float64 {
	var counts [256]int
	for _, v := range g.Cells() {
		counts[v]++
	}
	total := float64(g.W * g.H)
	entropy := 0.0
	for _, c := range counts {
		if c == 0 {
			continue
		}
		p := float64(c) / total
		entropy -= p * math.Log2(p)
	}
	return entropy
}

// Complexity blends density, state-boundary length, and change rate into
// a rough structural-complexity score in [0, 1]. prev may be nil.
func Complexity(g, prev *grid.Grid) float64 {
	w, h := g.W, g.H
	cells := g.Cells()
	total := float64(w * h)

	density := float64(g.Population()) / total

	// Boundary length: horizontally and vertically adjacent cell pairs in
	// differing states, wrapped, as a fraction of all such pairs.
	edges := 0
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			v := cells[y*w+x]
			if cells[y*w+grid.WrapIndex(x+1, w)] != v {
				edges++
			}
			if cells[grid.WrapIndex(y+1, h)*w+x] != v {
				edges++
			}
		}
	}
	edgeRatio := float64(edges) / (2 * total)

	changeRatio := 0.0
	if prev != nil && prev.W == w && prev.H == h {
		changed := 0
		pcells := prev.Cells()
		for i, v := range cells {
			if pcells[i] != v {
				changed++
			}
		}
		changeRatio = float64(changed) / total
	}

	score := 0.4*density + 0.4*edgeRatio + 0.2*changeRatio
	return math.Min(1, math.Max(0, score))
}

// Diversity measures local-pattern variety: the number of distinct 2x2
// neighborhoods divided by the number of 2x2 blocks. A blank or uniform
// grid scores near zero; a random soup scores high.
func Diversity(g *grid.Grid) float64 {
	w, h := g.W, g.H
	if w < 2 || h < 2 {
		return 0
	}
	cells := g.Cells()
	seen := make(map[uint32]struct{})
	blocks := 0
	for y := 0; y+1 < h; y++ {
		for x := 0; x+1 < w; x++ {
			key := uint32(cells[y*w+x]) |
				uint32(cells[y*w+x+1])<<8 |
				uint32(cells[(y+1)*w+x])<<16 |
				uint32(cells[(y+1)*w+x+1])<<24
			seen[key] = struct{}{}
			blocks++
		}
	}
	return float64(len(seen)) / float64(blocks)
}
