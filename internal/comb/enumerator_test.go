package comb

import (
	"reflect"
	"testing"

	"github.com/clue-solve/nonogram/internal/board"
)

func TestCounterKnownValues(t *testing.T) {
	c := NewCounter()
	if got := c.Count(20, 5); got != 10626 {
		t.Errorf("Count(20, 5) = %d, want 10626", got)
	}
	if got := c.Count(10, 1); got != 1 {
		t.Errorf("Count(10, 1) = %d, want 1", got)
	}
	if got := c.Count(0, 4); got != 1 {
		t.Errorf("Count(0, 4) = %d, want 1", got)
	}
}

func TestEnumerateComposition(t *testing.T) {
	e := NewEnumerator()
	cases := []struct {
		amount, count, index int
		want                 []int
	}{
		{5, 3, 0, []int{0, 0, 5}},
		{5, 3, 20, []int{5, 0, 0}},
		{0, 4, 0, []int{0, 0, 0, 0}},
		{6, 4, 0, []int{0, 0, 0, 6}},
	}
	for _, c := range cases {
		got, err := e.EnumerateComposition(c.amount, c.count, c.index)
		if err != nil {
			t.Errorf("EnumerateComposition(%d, %d, %d): %v", c.amount, c.count, c.index, err)
			continue
		}
		if !reflect.DeepEqual(got, c.want) {
			t.Errorf("EnumerateComposition(%d, %d, %d) = %v, want %v", c.amount, c.count, c.index, got, c.want)
		}
	}
}

func TestEnumerateCompositionIndexOutOfRange(t *testing.T) {
	e := NewEnumerator()
	total := e.counter.Count(5, 3)
	if _, err := e.EnumerateComposition(5, 3, int(total)); err != ErrIndexOutOfRange {
		t.Fatalf("EnumerateComposition at total index: err = %v, want ErrIndexOutOfRange", err)
	}
}

func TestMaterializeLine(t *testing.T) {
	cases := []struct {
		hint   []int
		length int
		index  int
		want   string
	}{
		{[]int{2, 2}, 7, 0, "##.##.."},
		{[]int{2, 3, 3}, 10, 0, "##.###.###"},
		{[]int{2, 2}, 10, 10, ".##.....##"},
	}
	e := NewEnumerator()
	for _, c := range cases {
		line, err := e.MaterializeLine(c.hint, c.length, c.index)
		if err != nil {
			t.Errorf("MaterializeLine(%v, %d, %d): %v", c.hint, c.length, c.index, err)
			continue
		}
		if got := renderLine(line); got != c.want {
			t.Errorf("MaterializeLine(%v, %d, %d) = %q, want %q", c.hint, c.length, c.index, got, c.want)
		}
	}
}

func TestMaterializeLineEmptyHint(t *testing.T) {
	e := NewEnumerator()
	line, err := e.MaterializeLine(nil, 4, 0)
	if err != nil {
		t.Fatalf("MaterializeLine(nil, 4, 0): %v", err)
	}
	if got := renderLine(line); got != "...." {
		t.Errorf("MaterializeLine(nil, 4, 0) = %q, want %q", got, "....")
	}
}

func TestCandidateCount(t *testing.T) {
	e := NewEnumerator()
	if got := CandidateCount(e, []int{2, 2}, 7); got != 6 {
		t.Errorf("CandidateCount([2,2], 7) = %d, want 6", got)
	}
}

// renderLine renders a line of cells as '#' for Filled and '.' for Empty,
// matching the compact notation used by the materialize test vectors.
func renderLine(line []board.Cell) string {
	out := make([]byte, len(line))
	for i, c := range line {
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
