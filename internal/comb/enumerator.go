package comb

import (
	"errors"

	"github.com/clue-solve/nonogram/internal/board"
)

// ErrIndexOutOfRange signals index >= Count(amount, count): an internal
// invariant violation, since every candidate index a LineStrategy hands to
// the enumerator was drawn from its own candidate bit-set.
var ErrIndexOutOfRange = errors.New("comb: index out of range")

// Enumerator is the shared handle every LineStrategy holds onto: one
// Counter memo, reused across every row and column so its cache pays off
// (see SPEC_FULL.md §9, "Shared enumerator memo").
type Enumerator struct {
	counter *Counter
}

// NewEnumerator returns an Enumerator with a fresh, empty memo.
func NewEnumerator() *Enumerator {
	return &Enumerator{counter: NewCounter()}
}

// EnumerateComposition returns the index-th composition of amount into
// count ordered, non-negative parts, in the "tail-first" canonical order:
// higher-index bins vary fastest. The walk fixes each of the first
// count-2 bins in turn by scanning candidate values upward and comparing
// against the running count of arrangements already passed; the final two
// bins are then solved directly from what's left.
func (e *Enumerator) EnumerateComposition(amount, count, index int) ([]int, error) {
	total := e.counter.Count(amount, count)
	if int64(index) >= total {
		return nil, ErrIndexOutOfRange
	}

	result := make([]int, count)
	left := amount
	countedIndex := 0

	for i := 0; i < count-2; i++ {
		for j := 0; j <= left; j++ {
			remaining := left - j
			arrangements := e.counter.Count(remaining, count-i-1)
			next := countedIndex + int(arrangements)
			if next > index {
				result[i] = j
				left -= j
				break
			}
			countedIndex = next
		}
	}

	result[count-2] = index - countedIndex
	result[count-1] = left - result[count-2]
	return result, nil
}

// CandidateCount returns the number of distinct arrangements of hint within
// a line of the given length: C(free, bins) where free is the number of
// EMPTY slots distributable around the runs and bins = len(hint)+1.
func CandidateCount(e *Enumerator, hint []int, length int) int64 {
	free, bins := footprint(hint, length)
	return e.counter.Count(free, bins)
}

// footprint returns the free-slot count and bin count MaterializeLine and
// CandidateCount both need: free = length+1 - sum(hint) - len(hint),
// bins = len(hint)+1.
func footprint(hint []int, length int) (free, bins int) {
	sum := 0
	for _, h := range hint {
		sum += h
	}
	return length + 1 - sum - len(hint), len(hint) + 1
}

// MaterializeLine returns the index-th arrangement of hint within a line of
// the given length, as a slice of board.Cell of length `length`. An empty
// hint always materializes to an all-EMPTY line (index must be 0).
func (e *Enumerator) MaterializeLine(hint []int, length, index int) ([]board.Cell, error) {
	if len(hint) == 0 {
		if index != 0 {
			return nil, ErrIndexOutOfRange
		}
		line := make([]board.Cell, length)
		for i := range line {
			line[i] = board.Empty
		}
		return line, nil
	}

	free, bins := footprint(hint, length)
	gaps, err := e.EnumerateComposition(free, bins, index)
	if err != nil {
		return nil, err
	}

	line := make([]board.Cell, 0, length)
	for i, run := range hint {
		line = append(line, fillOf(board.Empty, gaps[i])...)
		line = append(line, fillOf(board.Filled, run)...)
		if i < len(hint)-1 {
			line = append(line, board.Empty)
		}
	}
	line = append(line, fillOf(board.Empty, gaps[len(gaps)-1])...)
	return line, nil
}

// fillOf returns a freshly allocated slice of n copies of c.
func fillOf(c board.Cell, n int) []board.Cell {
	out := make([]board.Cell, n)
	for i := range out {
		out[i] = c
	}
	return out
}
