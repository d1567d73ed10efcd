// Package history maintains the per-user ordered, reversible sequence of
// resume versions: the undo/redo timeline.
package history

import "errors"

// Boundary conditions on the timeline. Both are no-op results for callers,
// not failures: there is simply nothing to move.
var (
	ErrNothingToUndo = errors.New("nothing to undo")
	ErrNothingToRedo = errors.New("nothing to redo")
)
