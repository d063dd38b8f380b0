// Package strategy solves a single line against its hint: given the cells
// currently determined on a row or column, it narrows the set of
// candidate arrangements still consistent with the board and reports
// which further cells that narrowing determines.
package strategy

import (
	"errors"
	"fmt"
	"slices"

	"github.com/clue-solve/nonogram/internal/board"
	"github.com/clue-solve/nonogram/internal/comb"
	"github.com/clue-solve/nonogram/internal/display"
)

// ErrContradiction is returned by Solve when no remaining candidate is
// compatible with the board's currently determined cells: the hint and
// the fixed cells cannot be reconciled.
var ErrContradiction = errors.New("strategy: no candidate is compatible with the board")

// progressTick is how often, in candidates checked, Solve reports
// UpdateProgress to its sink. A 50x50 line with a wide hint can have
// millions of candidates; reporting every one would dominate wall time.
const progressTick = 64

// LineStrategy narrows the candidate set for one line (one hint, one
// length) as the board around it fills in.
type LineStrategy struct {
	hint       []int
	length     int
	enumerator *comb.Enumerator
	candidates *BitSet
}

// New validates hint against length and returns a LineStrategy with every
// arrangement initially viable. It returns an error if the hint cannot
// possibly fit in a line of the given length.
func New(hint []int, length int, enumerator *comb.Enumerator) (*LineStrategy, error) {
	sum := 0
	for _, h := range hint {
		if h <= 0 {
			return nil, fmt.Errorf("strategy: hint run must be positive, got %d", h)
		}
		sum += h
	}
	minLength := sum
	if len(hint) > 0 {
		minLength += len(hint) - 1
	}
	if minLength > length {
		return nil, fmt.Errorf("strategy: hint %v cannot fit in a line of length %d", hint, length)
	}

	total := comb.CandidateCount(enumerator, hint, length)
	return &LineStrategy{
		hint:       hint,
		length:     length,
		enumerator: enumerator,
		candidates: NewBitSet(int(total)),
	}, nil
}

// CandidateCount returns how many candidates this strategy still
// considers viable. The scheduler uses this to pick the most-constrained
// dirty line next.
func (s *LineStrategy) CandidateCount() int {
	return s.candidates.Count()
}

// Solve checks every surviving candidate against current (the line's
// cells as they stand on the board right now), discards candidates that
// conflict with an already-determined cell, and returns the merge of
// every candidate that remains: a position is Filled or Empty in the
// result only if every surviving candidate agrees on it, and Unknown
// otherwise. A line with no Unknown cell is returned unchanged when its
// runs match the hint, and yields ErrContradiction when they do not.
//
// Solve mutates the strategy's internal candidate set but never the
// board; the caller applies the returned pattern.
func (s *LineStrategy) Solve(current []board.Cell, sink display.Sink) ([]board.Cell, error) {
	if sink == nil {
		sink = display.Noop{}
	}

	fullyDetermined := true
	for _, c := range current {
		if !c.Determined() {
			fullyDetermined = false
			break
		}
	}
	if fullyDetermined {
		var runs []int
		run := 0
		for i, c := range current {
			if c == board.Filled {
				run++
			}
			if run > 0 && (c == board.Empty || i == len(current)-1) {
				runs = append(runs, run)
				run = 0
			}
		}
		if !slices.Equal(runs, s.hint) {
			return nil, ErrContradiction
		}
		return current, nil
	}

	merged := make([]board.Cell, s.length)
	var removals []int
	total := s.candidates.Count()
	checked := 0
	var materializeErr error

	s.candidates.Each(func(idx int) bool {
		pattern, err := s.enumerator.MaterializeLine(s.hint, s.length, idx)
		if err != nil {
			// idx came from our own bitset, sized by the same enumerator;
			// this would mean the bitset and enumerator disagree.
			materializeErr = fmt.Errorf("strategy: candidate %d: %w", idx, err)
			return false
		}

		compatible := true
		for pos, want := range pattern {
			have := current[pos]
			if have.Determined() && want.Determined() && have != want {
				compatible = false
				break
			}
		}

		if !compatible {
			removals = append(removals, idx)
		} else {
			for pos, want := range pattern {
				merged[pos] = merged[pos].Merge(want)
			}
		}

		checked++
		if checked%progressTick == 0 {
			sink.UpdateProgress(checked, total)
		}
		return true
	})
	if materializeErr != nil {
		return nil, materializeErr
	}
	sink.UpdateProgress(total, total)

	for _, idx := range removals {
		s.candidates.Clear(idx)
	}
	if s.candidates.Count() == 0 {
		return nil, ErrContradiction
	}

	for pos, c := range merged {
		if c == board.Crash {
			merged[pos] = board.Unknown
		}
	}
	return merged, nil
}
