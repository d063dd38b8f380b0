// Package solver ties the board, the combinatorial enumerator and the
// per-line strategies together into the worklist loop that actually
// solves a nonogram: repeatedly pick the most-constrained dirty line,
// narrow it, and mark whatever lines cross a newly determined cell dirty
// in turn, until nothing is dirty or a contradiction is found.
package solver

import (
	"context"
	"fmt"

	"github.com/clue-solve/nonogram/internal/board"
	"github.com/clue-solve/nonogram/internal/comb"
	"github.com/clue-solve/nonogram/internal/display"
	"github.com/clue-solve/nonogram/internal/strategy"
)

// Solver holds the board and the per-line strategies that narrow it.
type Solver struct {
	grid *board.Grid
	rows []*strategy.LineStrategy
	cols []*strategy.LineStrategy

	rowHints [][]int
	colHints [][]int

	sink  display.Sink
	dirty map[board.Line]bool
}

// New validates rows, cols and the hint slices, builds a LineStrategy for
// every row and column, and returns a Solver with every line dirty. sink
// may be nil, in which case progress is simply not reported.
func New(rows, cols int, rowHints, colHints [][]int, sink display.Sink) (*Solver, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, rows, cols)
	}
	if len(rowHints) != rows {
		return nil, fmt.Errorf("%w: %d row hints for %d rows", ErrInvalidDimensions, len(rowHints), rows)
	}
	if len(colHints) != cols {
		return nil, fmt.Errorf("%w: %d column hints for %d columns", ErrInvalidDimensions, len(colHints), cols)
	}
	if sink == nil {
		sink = display.Noop{}
	}

	sink.ChangeState(display.State{Kind: display.Loading, Message: "building line strategies"})

	enumerator := comb.NewEnumerator()

	rowStrategies := make([]*strategy.LineStrategy, rows)
	for i, hint := range rowHints {
		s, err := strategy.New(hint, cols, enumerator)
		if err != nil {
			return nil, fmt.Errorf("%w: row %d: %v", ErrInvalidHint, i, err)
		}
		rowStrategies[i] = s
	}

	colStrategies := make([]*strategy.LineStrategy, cols)
	for i, hint := range colHints {
		s, err := strategy.New(hint, rows, enumerator)
		if err != nil {
			return nil, fmt.Errorf("%w: column %d: %v", ErrInvalidHint, i, err)
		}
		colStrategies[i] = s
	}

	s := &Solver{
		grid:     board.NewGrid(rows, cols),
		rows:     rowStrategies,
		cols:     colStrategies,
		rowHints: rowHints,
		colHints: colHints,
		sink:     sink,
		dirty:    make(map[board.Line]bool, rows+cols),
	}
	for i := 0; i < rows; i++ {
		s.dirty[board.Line{Axis: board.Row, Index: i}] = true
	}
	for i := 0; i < cols; i++ {
		s.dirty[board.Line{Axis: board.Column, Index: i}] = true
	}

	sink.ChangeState(display.State{Kind: display.Idle})
	return s, nil
}

// Grid returns the solver's board. The returned value is shared; callers
// should treat it as read-only once Solve has started.
func (s *Solver) Grid() *board.Grid {
	return s.grid
}

// IsSolved reports whether every cell on the board is determined.
func (s *Solver) IsSolved() bool {
	return s.grid.Unknowns() == 0
}

// Solve runs the worklist loop to completion: at each step it picks the
// dirty line with the fewest surviving candidates, narrows it, and marks
// every line crossing a newly determined cell dirty. It returns nil once
// no line is dirty (whether or not the board ends up fully determined —
// an under-constrained puzzle can reach quiescence with cells still
// Unknown), a *LineError if a line's strategy finds no viable candidate
// left, and ctx.Err() if ctx is cancelled mid-run.
func (s *Solver) Solve(ctx context.Context) (err error) {
	defer func() {
		if err != nil {
			s.sink.ChangeState(display.State{Kind: display.Failed, Message: err.Error()})
		}
	}()

	for len(s.dirty) > 0 {
		if err := ctx.Err(); err != nil {
			return err
		}

		line := s.pickMostConstrained()
		delete(s.dirty, line)

		st := s.strategyFor(line)
		current := s.grid.Snapshot(line)

		s.sink.ChangeState(display.State{
			Kind:      display.Solving,
			Grid:      s.grid,
			Line:      line,
			Remaining: len(s.dirty) + 1,
		})

		pattern, err := st.Solve(current, s.sink)
		if err != nil {
			return &LineError{Line: line, Hint: s.hintFor(line), Cause: err}
		}

		applyErr := s.grid.ApplyLine(line, pattern, func(pos int) {
			s.dirty[line.Cross(pos)] = true
		})
		if applyErr != nil {
			return &LineError{Line: line, Hint: s.hintFor(line), Cause: applyErr}
		}
	}

	s.sink.ChangeState(display.State{Kind: display.Solved, Grid: s.grid})
	return nil
}

// pickMostConstrained returns the dirty line with the fewest surviving
// candidates, so the scheduler always spends its next step where it's
// most likely to determine a cell. Ties are broken deterministically: rows
// before columns, ascending index within an axis, so a run is
// reproducible for the same puzzle.
func (s *Solver) pickMostConstrained() board.Line {
	var best board.Line
	bestCount := -1
	consider := func(line board.Line) {
		if !s.dirty[line] {
			return
		}
		count := s.strategyFor(line).CandidateCount()
		if bestCount == -1 || count < bestCount {
			best = line
			bestCount = count
		}
	}
	for i := range s.rows {
		consider(board.Line{Axis: board.Row, Index: i})
	}
	for i := range s.cols {
		consider(board.Line{Axis: board.Column, Index: i})
	}
	return best
}

func (s *Solver) strategyFor(l board.Line) *strategy.LineStrategy {
	if l.Axis == board.Row {
		return s.rows[l.Index]
	}
	return s.cols[l.Index]
}

func (s *Solver) hintFor(l board.Line) []int {
	if l.Axis == board.Row {
		return s.rowHints[l.Index]
	}
	return s.colHints[l.Index]
}
