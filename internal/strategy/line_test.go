package strategy

import (
	"testing"

	"github.com/clue-solve/nonogram/internal/board"
	"github.com/clue-solve/nonogram/internal/comb"
)

func unknownLine(n int) []board.Cell {
	return make([]board.Cell, n)
}

func renderCells(cells []board.Cell) string {
	out := make([]byte, len(cells))
	for i, c := range cells {
		switch c {
		case board.Filled:
			out[i] = '#'
		case board.Empty:
			out[i] = '.'
		default:
			out[i] = '?'
		}
	}
	return string(out)
}

func TestNewRejectsOversizedHint(t *testing.T) {
	e := comb.NewEnumerator()
	if _, err := New([]int{3, 3}, 5, e); err == nil {
		t.Fatal("New([3,3], 5) should have failed: runs plus one gap need 7 cells")
	}
}

func TestLineStrategyFullyDeterminedInOnePass(t *testing.T) {
	e := comb.NewEnumerator()
	s, err := New([]int{3}, 3, e)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.CandidateCount() != 1 {
		t.Fatalf("CandidateCount = %d, want 1", s.CandidateCount())
	}
	got, err := s.Solve(unknownLine(3), nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	if renderCells(got) != "###" {
		t.Errorf("Solve result = %q, want %q", renderCells(got), "###")
	}
}

func TestLineStrategyNarrowsAcrossDeterminedCell(t *testing.T) {
	e := comb.NewEnumerator()
	s, err := New([]int{2}, 4, e)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if s.CandidateCount() != 3 {
		t.Fatalf("CandidateCount = %d, want 3", s.CandidateCount())
	}

	current := unknownLine(4)
	current[0] = board.Filled
	got, err := s.Solve(current, nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	// Only "##.." is compatible with a Filled first cell.
	if s.CandidateCount() != 1 {
		t.Fatalf("CandidateCount after Solve = %d, want 1", s.CandidateCount())
	}
	if renderCells(got) != "##.." {
		t.Errorf("Solve result = %q, want %q", renderCells(got), "##..")
	}
}

func TestLineStrategyContradiction(t *testing.T) {
	e := comb.NewEnumerator()
	s, err := New([]int{3}, 3, e)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	current := unknownLine(3)
	current[0] = board.Empty
	if _, err := s.Solve(current, nil); err != ErrContradiction {
		t.Fatalf("Solve error = %v, want ErrContradiction", err)
	}
}

func TestLineStrategyAmbiguousLeavesCellsUnknown(t *testing.T) {
	e := comb.NewEnumerator()
	s, err := New([]int{1}, 3, e)
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := s.Solve(unknownLine(3), nil)
	if err != nil {
		t.Fatalf("Solve: %v", err)
	}
	for i, c := range got {
		if c.Determined() {
			t.Errorf("position %d = %v, want Unknown (hint [1] in length 3 is ambiguous everywhere)", i, c)
		}
	}
}
