// Command nonogram solves nonogram (picross) puzzles by constraint
// propagation.
//
// # Overview
//
// Given a puzzle's row and column hints, nonogram repeatedly narrows each
// line to the cells every one of its remaining viable arrangements agrees
// on, propagating newly determined cells to the lines crossing them,
// until no line has anything left to narrow. It never guesses: a puzzle
// with more than one valid solution stops short of fully determining the
// board rather than picking a solution arbitrarily.
//
// # Usage
//
//	nonogram puzzle.txt
//	nonogram --html scraped.html
//	nonogram --simple puzzle.txt > log.txt
//	nonogram --interval 50 puzzle.txt
//
// # Input formats
//
// Plain text: a first line of "<rows> <cols>", then one row-hint line per
// row and one column-hint line per column, each hint a whitespace
// separated list of run lengths (an empty line means no runs in that
// line).
//
// HTML (--html): a scraped puzzle table, with column hints in a header
// row of `<td data-row="-1" data-col="N">` cells and row hints in the
// first `<td>` of each `<tbody>` row, both carrying their run lengths as
// a `<div>` of `<span>` elements.
//
// # Display
//
// By default nonogram takes over the terminal's alternate screen and
// animates the solve, highlighting whichever line is currently being
// narrowed. --simple switches to a plain line-by-line log suitable for a
// pipe or a file. --interval slows the animation down.
package main
