package input

import (
	"reflect"
	"strings"
	"testing"
)

func TestParseText(t *testing.T) {
	src := "2 3\n1\n2 1\n1\n\n2\n"
	rows, cols, rowHints, colHints, err := ParseText(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	if rows != 2 || cols != 3 {
		t.Fatalf("dimensions = %dx%d, want 2x3", rows, cols)
	}
	wantRows := [][]int{{1}, {2, 1}}
	wantCols := [][]int{{1}, {}, {2}}
	if !reflect.DeepEqual(rowHints, wantRows) {
		t.Errorf("rowHints = %v, want %v", rowHints, wantRows)
	}
	if !reflect.DeepEqual(colHints, wantCols) {
		t.Errorf("colHints = %v, want %v", colHints, wantCols)
	}
}

func TestParseTextStripsBOM(t *testing.T) {
	src := "\xef\xbb\xbf1 1\n1\n1\n"
	rows, cols, _, _, err := ParseText(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseText: %v", err)
	}
	if rows != 1 || cols != 1 {
		t.Fatalf("dimensions = %dx%d, want 1x1", rows, cols)
	}
}

func TestParseTextNotEnoughHints(t *testing.T) {
	src := "2 1\n1\n"
	if _, _, _, _, err := ParseText(strings.NewReader(src)); err == nil {
		t.Fatal("ParseText should have failed: missing second row hint")
	}
}

func TestParseHTML(t *testing.T) {
	src := `
<table>
<thead>
<tr>
<td data-row="-1" data-col="0"><div><span>1</span></div></td>
<td data-row="-1" data-col="1"><div><span>2</span></div></td>
</tr>
</thead>
<tbody>
<tr><td><div><span>1</span></div></td></tr>
<tr><td><div><span>2</span></div></td></tr>
</tbody>
</table>`
	rows, cols, rowHints, colHints, err := ParseHTML(strings.NewReader(src))
	if err != nil {
		t.Fatalf("ParseHTML: %v", err)
	}
	if rows != 2 || cols != 2 {
		t.Fatalf("dimensions = %dx%d, want 2x2", rows, cols)
	}
	if !reflect.DeepEqual(rowHints, [][]int{{1}, {2}}) {
		t.Errorf("rowHints = %v", rowHints)
	}
	if !reflect.DeepEqual(colHints, [][]int{{1}, {2}}) {
		t.Errorf("colHints = %v", colHints)
	}
}

func TestParseHTMLMissingTable(t *testing.T) {
	if _, _, _, _, err := ParseHTML(strings.NewReader("<html></html>")); err == nil {
		t.Fatal("ParseHTML should have failed: no table present")
	}
}
