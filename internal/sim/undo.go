package sim

import "github.com/mgrid/casim/internal/grid"

// Snapshot is a labeled deep copy of a grid state.
type Snapshot struct {
	Label string
	Grid  *grid.Grid
}

// UndoManager keeps bounded undo and redo stacks of labeled grid
// snapshots. Pushing a new state always clears the redo stack: any new
// action invalidates the redone future.
type UndoManager struct {
	max  int
	undo []Snapshot
	redo []Snapshot
}

// NewUndoManager creates a manager holding at most max snapshots per
// stack.
func NewUndoManager(max int) *UndoManager {
	if max <= 0 {
		max = 100
	}
	return &UndoManager{max: max}
}

// PushState deep-copies state onto the undo stack, evicting the oldest
// entry once the bound is exceeded, and clears the redo stack.
func (u *UndoManager) PushState(label string, state *grid.Grid) {
	u.undo = append(u.undo, Snapshot{Label: label, Grid: state.Clone()})
	if len(u.undo) > u.max {
		u.undo = u.undo[1:]
	}
	u.redo = u.redo[:0]
}

// Undo pops the most recent snapshot, pushing a copy of current onto the
// redo stack under the popped label. ok is false when the stack is empty;
// that is an expected condition, not a fault.
func (u *UndoManager) Undo(current *grid.Grid) (s Snapshot, ok bool) {
	if len(u.undo) == 0 {
		return Snapshot{}, false
	}
	s = u.undo[len(u.undo)-1]
	u.undo = u.undo[:len(u.undo)-1]

	u.redo = append(u.redo, Snapshot{Label: s.Label, Grid: current.Clone()})
	if len(u.redo) > u.max {
		u.redo = u.redo[1:]
	}
	return s, true
}

// Redo pops the most recent undone snapshot, pushing a copy of current
// back onto the undo stack.
func (u *UndoManager) Redo(current *grid.Grid) (s Snapshot, ok bool) {
	if len(u.redo) == 0 {
		return Snapshot{}, false
	}
	s = u.redo[len(u.redo)-1]
	u.redo = u.redo[:len(u.redo)-1]

	u.undo = append(u.undo, Snapshot{Label: s.Label, Grid: current.Clone()})
	if len(u.undo) > u.max {
		u.undo = u.undo[1:]
	}
	return s, true
}

// CanUndo reports whether an undo snapshot is available.
func (u *UndoManager) CanUndo() bool { return len(u.undo) > 0 }

// CanRedo reports whether a redo snapshot is available.
func (u *UndoManager) CanRedo() bool { return len(u.redo) > 0 }

// Clear drops all history.
func (u *UndoManager) Clear() {
	u.undo = nil
	u.redo = nil
}
