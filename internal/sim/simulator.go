// Package sim orchestrates a single active automaton: stepping, per-step
// metrics, bounded undo/redo history, and exact-state cycle detection.
package sim

import (
	"fmt"

	"github.com/mgrid/casim/internal/automata"
	"github.com/mgrid/casim/internal/grid"
	"github.com/mgrid/casim/internal/metrics"
)

// Config fixes the simulator's grid dimensions, default mode, and history
// bounds.
type Config struct {
	Width      int
	Height     int
	Mode       string
	Options    Options
	MaxHistory int // undo/redo stack bound
	MaxLog     int // metrics log bound
	MaxCycle   int // cycle table bound
}

// DefaultConfig returns a 100x100 Conway grid with wrap boundaries.
func DefaultConfig() Config {
	return Config{
		Width:      100,
		Height:     100,
		Mode:       "life",
		MaxHistory: 100,
		MaxLog:     1000,
		MaxCycle:   1000,
	}
}

// Simulator owns at most one active automaton and all derived history.
// The automaton is replaced wholesale on every mode switch; the grid is
// owned by the automaton, and every snapshot the simulator hands out is a
// deep copy.
type Simulator struct {
	cfg       Config
	registry  *Registry
	automaton automata.Automaton
	mode      string

	generation int
	log        []metrics.Step
	undo       *UndoManager
	cycles     *CycleDetector
	cycle      CycleInfo
	cycleSeen  bool

	onStep func(metrics.Step)
}

// New creates a simulator bound to an explicit registry.
func New(registry *Registry, cfg Config) *Simulator {
	if cfg.Width <= 0 {
		cfg.Width = 100
	}
	if cfg.Height <= 0 {
		cfg.Height = 100
	}
	if cfg.MaxHistory <= 0 {
		cfg.MaxHistory = 100
	}
	if cfg.MaxLog <= 0 {
		cfg.MaxLog = 1000
	}
	if cfg.MaxCycle <= 0 {
		cfg.MaxCycle = 1000
	}
	return &Simulator{
		cfg:      cfg,
		registry: registry,
		undo:     NewUndoManager(cfg.MaxHistory),
		cycles:   NewCycleDetector(cfg.MaxCycle),
	}
}

// SetOnStep installs a callback invoked with every step's metric record.
func (s *Simulator) SetOnStep(fn func(metrics.Step)) { s.onStep = fn }

// Initialize constructs the automaton for the named mode (the configured
// default when mode is empty) and optionally loads a named preset
// pattern. On error the simulator keeps its previous state untouched.
func (s *Simulator) Initialize(mode, patternName string) error {
	if mode == "" {
		mode = s.cfg.Mode
	}
	factory, err := s.registry.Get(mode)
	if err != nil {
		return err
	}

	a := factory(s.cfg.Width, s.cfg.Height, s.cfg.Options)
	if patternName != "" {
		loader, ok := a.(automata.PatternLoader)
		if !ok {
			return fmt.Errorf("mode %s does not support patterns", mode)
		}
		if err := loader.LoadPattern(patternName); err != nil {
			return err
		}
	}

	s.automaton = a
	s.mode = mode
	s.resetHistory()
	return nil
}

// Mode returns the active mode name.
func (s *Simulator) Mode() string { return s.mode }

// Generation returns the current generation counter.
func (s *Simulator) Generation() int { return s.generation }

// Automaton exposes the active automaton for consumers that need the full
// capability contract (the live view's click handling). Nil before
// Initialize.
func (s *Simulator) Automaton() automata.Automaton { return s.automaton }

// Step advances n generations. For each one it snapshots the prior grid
// for undo, steps the automaton, records metrics, and feeds the cycle
// table. It returns the per-step records in order.
func (s *Simulator) Step(n int) ([]metrics.Step, error) {
	if s.automaton == nil {
		return nil, ErrNotInitialized
	}

	records := make([]metrics.Step, 0, n)
	for i := 0; i < n; i++ {
		s.undo.PushState(fmt.Sprintf("Generation %d", s.generation), s.automaton.Grid())

		s.automaton.Step()
		s.generation++

		m := metrics.Collect(s.generation, s.automaton.Grid())
		s.log = append(s.log, m)
		if len(s.log) > s.cfg.MaxLog {
			s.log = s.log[1:]
		}
		records = append(records, m)

		if info, ok := s.cycles.Observe(s.automaton.Grid(), s.generation); ok && !s.cycleSeen {
			s.cycle = info
			s.cycleSeen = true
		}

		if s.onStep != nil {
			s.onStep(m)
		}
	}
	return records, nil
}

// Reset reinitializes the automaton's grid and zeroes all derived history.
// The automaton instance itself is kept.
func (s *Simulator) Reset() error {
	if s.automaton == nil {
		return ErrNotInitialized
	}
	s.automaton.Reset()
	s.resetHistory()
	return nil
}

func (s *Simulator) resetHistory() {
	s.generation = 0
	s.log = s.log[:0]
	s.undo.Clear()
	s.cycles.Reset()
	s.cycle = CycleInfo{}
	s.cycleSeen = false
	if s.automaton != nil {
		s.cycles.Observe(s.automaton.Grid(), 0)
	}
}

// Undo restores the previous snapshot, decrementing the generation
// counter. It returns false when no history is available.
func (s *Simulator) Undo() (bool, error) {
	if s.automaton == nil {
		return false, ErrNotInitialized
	}
	snap, ok := s.undo.Undo(s.automaton.Grid())
	if !ok {
		return false, nil
	}
	s.automaton.Grid().CopyFrom(snap.Grid)
	if s.generation > 0 {
		s.generation--
	}
	return true, nil
}

// Redo reapplies the most recently undone snapshot, incrementing the
// generation counter. It returns false when no redo is available.
func (s *Simulator) Redo() (bool, error) {
	if s.automaton == nil {
		return false, ErrNotInitialized
	}
	snap, ok := s.undo.Redo(s.automaton.Grid())
	if !ok {
		return false, nil
	}
	s.automaton.Grid().CopyFrom(snap.Grid)
	s.generation++
	return true, nil
}

// SetCell writes a single cell. Out-of-range coordinates are an explicit
// error rather than a silent no-op.
func (s *Simulator) SetCell(x, y int, v uint8) error {
	if s.automaton == nil {
		return ErrNotInitialized
	}
	g := s.automaton.Grid()
	if !g.InBounds(x, y) {
		return fmt.Errorf("%w: (%d,%d) on %dx%d grid", ErrOutOfBounds, x, y, g.W, g.H)
	}
	g.Set(x, y, v)
	return nil
}

// Click forwards a click to the active automaton's variant-specific
// handler.
func (s *Simulator) Click(x, y int) error {
	if s.automaton == nil {
		return ErrNotInitialized
	}
	return s.automaton.HandleClick(x, y)
}

// GridSnapshot returns a deep copy of the current grid.
func (s *Simulator) GridSnapshot() (*grid.Grid, error) {
	if s.automaton == nil {
		return nil, ErrNotInitialized
	}
	return s.automaton.Grid().Clone(), nil
}

// Log returns the recorded per-step metrics, oldest first. The slice is
// shared; callers must not modify it.
func (s *Simulator) Log() []metrics.Step { return s.log }

// MetricsSummary aggregates the metrics log with history availability and
// any detected state cycle.
func (s *Simulator) MetricsSummary() metrics.Summary {
	summary := metrics.Summarize(s.log)
	summary.CanUndo = s.undo.CanUndo()
	summary.CanRedo = s.undo.CanRedo()
	if s.cycleSeen {
		summary.CyclePeriod = s.cycle.Period
		summary.CycleStart = s.cycle.FirstSeen
	}
	return summary
}

// Cycle returns the first detected exact-state repetition, if any.
func (s *Simulator) Cycle() (CycleInfo, bool) { return s.cycle, s.cycleSeen }
