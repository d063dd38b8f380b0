// Package input parses puzzle definitions into row and column hints, from
// either a plain-text format or an HTML table scraped from a puzzle site.
package input

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ParseText reads the plain-text puzzle format: a first line of
// "<rows> <cols>", followed by one row-hint line per row and then one
// column-hint line per column, each a whitespace-separated list of run
// lengths (an empty line means no runs: that line is entirely empty). A
// leading UTF-8 BOM on the first line is stripped, since several puzzle
// export tools add one.
func ParseText(r io.Reader) (rows, cols int, rowHints, colHints [][]int, err error) {
	scanner := bufio.NewScanner(r)

	if !scanner.Scan() {
		return 0, 0, nil, nil, &ParseError{Context: "first line", Cause: fmt.Errorf("input is empty")}
	}
	first := strings.TrimPrefix(scanner.Text(), "\xef\xbb\xbf")
	fields := strings.Fields(first)
	if len(fields) < 2 {
		return 0, 0, nil, nil, &ParseError{Context: "first line", Cause: fmt.Errorf("expected \"<rows> <cols>\", got %q", first)}
	}
	rows, err = strconv.Atoi(fields[0])
	if err != nil {
		return 0, 0, nil, nil, &ParseError{Context: "row count", Cause: err}
	}
	cols, err = strconv.Atoi(fields[1])
	if err != nil {
		return 0, 0, nil, nil, &ParseError{Context: "column count", Cause: err}
	}

	rowHints, err = readHintLines(scanner, rows, "row")
	if err != nil {
		return 0, 0, nil, nil, err
	}
	colHints, err = readHintLines(scanner, cols, "column")
	if err != nil {
		return 0, 0, nil, nil, err
	}
	return rows, cols, rowHints, colHints, nil
}

func readHintLines(scanner *bufio.Scanner, count int, label string) ([][]int, error) {
	hints := make([][]int, 0, count)
	for i := 0; i < count; i++ {
		if !scanner.Scan() {
			return nil, &ParseError{Context: fmt.Sprintf("%s hint %d", label, i), Cause: fmt.Errorf("not enough %s hint lines", label)}
		}
		fields := strings.Fields(scanner.Text())
		hint := make([]int, 0, len(fields))
		for _, f := range fields {
			v, err := strconv.Atoi(f)
			if err != nil {
				return nil, &ParseError{Context: fmt.Sprintf("%s hint %d", label, i), Cause: err}
			}
			hint = append(hint, v)
		}
		hints = append(hints, hint)
	}
	return hints, nil
}
