// Package automata implements the cellular-automaton state-transition
// rules. Every variant updates synchronously: the whole next generation is
// derived from the whole current generation through a double buffer that is
// swapped only after the full pass, so no rule ever observes a
// partially-updated grid.
package automata

import (
	"errors"

	"github.com/mgrid/casim/internal/grid"
)

// ErrOutOfBounds reports coordinates outside the grid passed to a
// cell-level operation.
var ErrOutOfBounds = errors.New("automata: coordinates out of bounds")

// Automaton is the capability contract every variant satisfies.
//
// Grid returns the authoritative grid; it is owned by the automaton, and
// callers that need a snapshot must Clone it. Step is a total function of
// the current grid and the rule parameters.
type Automaton interface {
	Reset()
	Step()
	Grid() *grid.Grid
	HandleClick(x, y int) error
}

// PatternLoader is implemented by variants that support named presets.
type PatternLoader interface {
	LoadPattern(name string) error
}

// RuleConfigurable is implemented by variants whose birth/survival sets can
// be swapped without touching the grid.
type RuleConfigurable interface {
	SetRules(birth, survival NeighborSet)
}

// Renderer is implemented by variants whose display view differs from the
// authoritative grid (Langton's Ant overlays the agent). Consumers that
// draw the grid should prefer Render when available.
type Renderer interface {
	Render() *grid.Grid
}

// DisplayGrid returns the grid a renderer should draw: the overlay view for
// variants that have one, the authoritative grid otherwise.
func DisplayGrid(a Automaton) *grid.Grid {
	if r, ok := a.(Renderer); ok {
		return r.Render()
	}
	return a.Grid()
}
