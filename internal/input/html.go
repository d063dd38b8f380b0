package input

import (
	"fmt"
	"io"
	"regexp"
	"strconv"
)

var (
	columnCellPattern = regexp.MustCompile(`<td data-row="-1" data-col="\d+"[^>]*>(.*?)</td>`)
	numberPattern     = regexp.MustCompile(`<span>(\d+)</span>`)
	tbodyPattern      = regexp.MustCompile(`(?s)<tbody>(.*?)</tbody>`)
	rowCellPattern    = regexp.MustCompile(`(?s)<tr[^>]*?>.*?<td[^>]*?>(.*?)</td>`)
)

// ParseHTML extracts row and column hints from an HTML nonogram table, the
// format several puzzle sites render their board as: a header row of
// `<td data-row="-1" data-col="N">` cells carrying each column's hint, and
// a `<tbody>` of `<tr>` rows whose first `<td>` carries that row's hint,
// both as a `<div>` of `<span>` run lengths.
func ParseHTML(r io.Reader) (rows, cols int, rowHints, colHints [][]int, err error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return 0, 0, nil, nil, &ParseError{Context: "reading HTML", Cause: err}
	}
	html := string(data)

	for _, cell := range columnCellPattern.FindAllStringSubmatch(html, -1) {
		hint, err := extractNumbers(cell[1])
		if err != nil {
			return 0, 0, nil, nil, &ParseError{Context: "column hint", Cause: err}
		}
		colHints = append(colHints, hint)
	}

	tbody := tbodyPattern.FindStringSubmatch(html)
	if tbody != nil {
		for _, row := range rowCellPattern.FindAllStringSubmatch(tbody[1], -1) {
			hint, err := extractNumbers(row[1])
			if err != nil {
				return 0, 0, nil, nil, &ParseError{Context: "row hint", Cause: err}
			}
			rowHints = append(rowHints, hint)
		}
	}

	if len(rowHints) == 0 || len(colHints) == 0 {
		return 0, 0, nil, nil, &ParseError{Context: "HTML table", Cause: fmt.Errorf("found %d row hints and %d column hints, need at least one of each", len(rowHints), len(colHints))}
	}

	return len(rowHints), len(colHints), rowHints, colHints, nil
}

func extractNumbers(s string) ([]int, error) {
	matches := numberPattern.FindAllStringSubmatch(s, -1)
	numbers := make([]int, 0, len(matches))
	for _, m := range matches {
		v, err := strconv.Atoi(m[1])
		if err != nil {
			return nil, err
		}
		numbers = append(numbers, v)
	}
	return numbers, nil
}
