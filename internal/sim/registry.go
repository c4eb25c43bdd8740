package sim

import (
	"fmt"
	"sort"

	"github.com/mgrid/casim/internal/automata"
	"github.com/mgrid/casim/internal/grid"
)

// Options carries the variant-independent construction parameters a
// factory may use. Factories ignore fields that do not apply to them.
type Options struct {
	Boundary grid.Boundary
	Birth    automata.NeighborSet
	Survival automata.NeighborSet
	States   int
	Seed     int64
}

// Factory builds an automaton with the given dimensions.
type Factory func(w, h int, opts Options) automata.Automaton

// Registry maps mode names to automaton factories. It is an explicit
// value handed to the Simulator; hosts extend it by registering plugin
// factories before constructing the Simulator.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry returns a registry pre-populated with the built-in
// variants.
func NewRegistry() *Registry {
	r := &Registry{factories: make(map[string]Factory)}

	r.Register("life", func(w, h int, o Options) automata.Automaton {
		return automata.NewConway(w, h, o.Boundary, o.Seed)
	})
	r.Register("highlife", func(w, h int, o Options) automata.Automaton {
		return automata.NewHighLife(w, h, o.Boundary, o.Seed)
	})
	r.Register("custom", func(w, h int, o Options) automata.Automaton {
		return automata.NewLifeLike(w, h, o.Birth, o.Survival, o.Boundary, "life", o.Seed)
	})
	r.Register("wireworld", func(w, h int, o Options) automata.Automaton {
		return automata.NewWireworld(w, h, o.Boundary, o.Seed)
	})
	r.Register("brain", func(w, h int, o Options) automata.Automaton {
		return automata.NewBriansBrain(w, h, o.Boundary, o.Seed)
	})
	r.Register("generations", func(w, h int, o Options) automata.Automaton {
		return automata.NewGenerations(w, h, o.States, o.Birth, o.Survival, o.Boundary, o.Seed)
	})
	r.Register("immigration", func(w, h int, o Options) automata.Automaton {
		return automata.NewImmigration(w, h, o.Boundary, o.Seed)
	})
	r.Register("rainbow", func(w, h int, o Options) automata.Automaton {
		return automata.NewRainbow(w, h, o.Boundary, o.Seed)
	})
	r.Register("ant", func(w, h int, o Options) automata.Automaton {
		return automata.NewLangtonsAnt(w, h)
	})
	r.Register("hexlife", func(w, h int, o Options) automata.Automaton {
		return automata.NewHexLife(w, h, o.Seed)
	})

	return r
}

// Register adds or replaces a factory under the given name.
func (r *Registry) Register(name string, f Factory) {
	r.factories[name] = f
}

// Get returns the factory for a mode name.
func (r *Registry) Get(name string) (Factory, error) {
	f, ok := r.factories[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownMode, name)
	}
	return f, nil
}

// Modes lists the registered mode names, sorted.
func (r *Registry) Modes() []string {
	names := make([]string, 0, len(r.factories))
	for name := range r.factories {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
