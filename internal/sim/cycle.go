package sim

import "github.com/mgrid/casim/internal/grid"

// CycleDetector maps grid content hashes to the generation at which each
// state was first observed, detecting exact-state repetition (oscillator
// periods, stabilization). The table is bounded: once more than max
// distinct states are tracked, the oldest is evicted, so detection covers
// a sliding window of recent history rather than growing without limit.
type CycleDetector struct {
	max   int
	seen  map[uint64]int
	order []uint64
}

// CycleInfo describes a detected repetition.
type CycleInfo struct {
	Period    int `json:"period"`
	FirstSeen int `json:"first_seen"`
}

// NewCycleDetector creates a detector remembering at most max states.
func NewCycleDetector(max int) *CycleDetector {
	if max <= 0 {
		max = 1000
	}
	return &CycleDetector{max: max, seen: make(map[uint64]int, max)}
}

// Observe records the grid state at the given generation. If the exact
// state was seen before, it returns the cycle info; the first-seen
// generation is retained so repeated observations keep reporting the
// original period anchor.
func (c *CycleDetector) Observe(g *grid.Grid, generation int) (CycleInfo, bool) {
	h := g.Hash()
	if first, ok := c.seen[h]; ok {
		return CycleInfo{Period: generation - first, FirstSeen: first}, true
	}

	c.seen[h] = generation
	c.order = append(c.order, h)
	if len(c.order) > c.max {
		delete(c.seen, c.order[0])
		c.order = c.order[1:]
	}
	return CycleInfo{}, false
}

// Reset drops all recorded states.
func (c *CycleDetector) Reset() {
	c.seen = make(map[uint64]int, c.max)
	c.order = c.order[:0]
}
