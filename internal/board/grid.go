package board

import (
	"errors"
	"strings"
)

// ErrOverwrite is returned by ApplyLine when a pattern would change an
// already-determined cell to a different determined value. It signals the
// same underlying problem as a Contradiction: the puzzle is unsatisfiable
// given the cells fixed so far.
var ErrOverwrite = errors.New("board: attempted to overwrite a determined cell")

// Grid is a dense, row-major rows x cols board of cells. It owns its cell
// memory exclusively; Row/Column hand back snapshots by value so callers
// can read a line before a later mutation.
type Grid struct {
	rows, cols int
	cells      []Cell
}

// NewGrid allocates a rows x cols grid with every cell UNKNOWN.
func NewGrid(rows, cols int) *Grid {
	return &Grid{rows: rows, cols: cols, cells: make([]Cell, rows*cols)}
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// LineLength returns the length of a line on the given axis: Cols for a
// row, Rows for a column.
func (g *Grid) LineLength(axis Axis) int {
	if axis == Row {
		return g.cols
	}
	return g.rows
}

// LineCount returns how many lines exist on the given axis: Rows for the
// Row axis, Cols for the Column axis.
func (g *Grid) LineCount(axis Axis) int {
	if axis == Row {
		return g.rows
	}
	return g.cols
}

func (g *Grid) index(row, col int) int {
	return row*g.cols + col
}

// Get returns the cell at (row, col).
func (g *Grid) Get(row, col int) Cell {
	return g.cells[g.index(row, col)]
}

// Row returns a fresh copy of row r, left to right.
func (g *Grid) Row(r int) []Cell {
	out := make([]Cell, g.cols)
	copy(out, g.cells[g.index(r, 0):g.index(r, 0)+g.cols])
	return out
}

// Column returns a fresh copy of column c, top to bottom.
func (g *Grid) Column(c int) []Cell {
	out := make([]Cell, g.rows)
	for r := 0; r < g.rows; r++ {
		out[r] = g.Get(r, c)
	}
	return out
}

// Snapshot returns a fresh copy of the line identified by l.
func (g *Grid) Snapshot(l Line) []Cell {
	if l.Axis == Row {
		return g.Row(l.Index)
	}
	return g.Column(l.Index)
}

// Unknowns reports how many cells remain UNKNOWN across the whole grid.
func (g *Grid) Unknowns() int {
	n := 0
	for _, c := range g.cells {
		if c == Unknown {
			n++
		}
	}
	return n
}

// ApplyLine writes each determined position of pattern into line l,
// invoking observer with the cross-axis position for every cell actually
// changed. Positions already holding the same determined value are left
// alone; UNKNOWN entries in pattern are skipped. Attempting to change a
// determined cell to a different determined value returns ErrOverwrite and
// leaves the grid unmodified for that call.
func (g *Grid) ApplyLine(l Line, pattern []Cell, observer func(crossAxisPos int)) error {
	for i, want := range pattern {
		if !want.Determined() {
			continue
		}
		if have := g.Get(g.coords(l, i)); have.Determined() && have != want {
			return ErrOverwrite
		}
	}
	for i, want := range pattern {
		if !want.Determined() {
			continue
		}
		row, col := g.coords(l, i)
		if g.Get(row, col) == want {
			continue
		}
		g.cells[g.index(row, col)] = want
		if observer != nil {
			observer(i)
		}
	}
	return nil
}

// String renders the grid as one line of cell glyphs per row.
func (g *Grid) String() string {
	var b strings.Builder
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			b.WriteString(g.Get(r, c).String())
		}
		if r < g.rows-1 {
			b.WriteByte('\n')
		}
	}
	return b.String()
}

// coords maps a position within line l to (row, col) in the grid.
func (g *Grid) coords(l Line, pos int) (row, col int) {
	if l.Axis == Row {
		return l.Index, pos
	}
	return pos, l.Index
}
