// Package display decouples the solving core from how its progress is
// shown. Sink is the only contract the solver and its line strategies
// depend on; Console and Simple are the two concrete backends.
package display

import "github.com/clue-solve/nonogram/internal/board"

// Kind identifies which fields of a State are meaningful.
type Kind int

const (
	// Loading announces the solver is validating and constructing its
	// internal tables; Message carries a short human-readable status.
	Loading Kind = iota
	// Idle announces the solver is ready to run but hasn't started.
	Idle
	// Solving announces a line is actively being worked; Grid, Line and
	// Remaining are populated.
	Solving
	// Solved announces the solver has no dirty line left; Grid is
	// populated and still holds Unknown cells if the puzzle could not be
	// fully determined.
	Solved
	// Failed announces the solver gave up; Message carries the reason.
	Failed
)

// State is a tagged snapshot of solver progress. Only the fields relevant
// to Kind are meaningful; a Sink should ignore the rest.
type State struct {
	Kind      Kind
	Message   string
	Grid      *board.Grid
	Line      board.Line
	Remaining int // lines still dirty, including the one in progress
}

// Sink receives solver progress. ChangeState is called whenever the
// solver moves between Loading/Idle/Solving/Solved/Failed, or switches to
// a different line while Solving. UpdateProgress is called much more
// often, from inside a single line's candidate scan, and reports how many
// of that line's surviving candidates have been checked so far.
type Sink interface {
	ChangeState(state State)
	UpdateProgress(done, total int)
}

// Noop is a Sink that discards everything. Useful as a default for
// callers, and in tests that don't care about display output.
type Noop struct{}

func (Noop) ChangeState(State)       {}
func (Noop) UpdateProgress(int, int) {}
