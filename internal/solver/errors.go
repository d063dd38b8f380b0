package solver

import (
	"errors"
	"fmt"

	"github.com/clue-solve/nonogram/internal/board"
)

// ErrInvalidDimensions is returned by New when rows or cols is not
// positive, or the hint slices don't match rows/cols in length.
var ErrInvalidDimensions = errors.New("solver: invalid board dimensions")

// ErrInvalidHint is returned by New when a hint cannot fit in its line:
// its runs plus mandatory single-cell gaps exceed the line's length.
var ErrInvalidHint = errors.New("solver: hint does not fit its line")

// LineError wraps a failure that occurred while solving a specific line,
// giving the caller enough context to report or log it usefully.
type LineError struct {
	Line  board.Line
	Hint  []int
	Cause error
}

func (e *LineError) Error() string {
	return fmt.Sprintf("solver: line %s (hint %v): %v", e.Line, e.Hint, e.Cause)
}

func (e *LineError) Unwrap() error {
	return e.Cause
}
