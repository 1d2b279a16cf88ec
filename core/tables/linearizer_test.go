package tables

import (
	"strings"
	"testing"

	"github.com/PuerkitoBio/goquery"

	"github.com/noorkhafidzin/blogger2hugo/core"
)

// render runs Convert over the given HTML and returns the body with raw
// fragments restored.
func render(t *testing.T, html string) string {
	t.Helper()
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	buf := core.NewRawBuffer()
	Convert(doc, buf)
	body, err := doc.Find("body").Html()
	if err != nil {
		t.Fatalf("serialize: %v", err)
	}
	return buf.Restore(body)
}

func TestSimpleTable(t *testing.T) {
	html := `<table>
		<tr><th>A</th><th>B</th><th>C</th></tr>
		<tr><td>1</td><td>2</td><td>3</td></tr>
	</table>`
	got := render(t, html)

	if !strings.Contains(got, "| A | B | C |") {
		t.Errorf("missing header row in %q", got)
	}
	if !strings.Contains(got, "| --- | --- | --- |") {
		t.Errorf("missing 3-column separator in %q", got)
	}
	if !strings.Contains(got, "| 1 | 2 | 3 |") {
		t.Errorf("missing body row in %q", got)
	}
	if n := strings.Count(got, "\n| "); n != 3 {
		t.Errorf("expected exactly header+separator+1 body row, got %d pipe rows in %q", n, got)
	}
}

func TestComplexTablePassthrough(t *testing.T) {
	html := `<table><tr><td colspan="2">wide</td></tr><tr><td>a</td><td>b</td></tr></table>`
	got := render(t, html)

	if !strings.Contains(got, "<table>") || !strings.Contains(got, `colspan="2"`) {
		t.Errorf("complex table should pass through as raw markup, got %q", got)
	}
	if strings.Contains(got, "---") {
		t.Errorf("complex table must not be converted, got %q", got)
	}
}

func TestRowspanIsComplexToo(t *testing.T) {
	html := `<table><tr><td rowspan="2">tall</td><td>x</td></tr><tr><td>y</td></tr></table>`
	got := render(t, html)
	if !strings.Contains(got, "<table>") {
		t.Errorf("rowspan table should pass through, got %q", got)
	}
}

func TestRaggedRowsPadded(t *testing.T) {
	html := `<table>
		<tr><th>A</th><th>B</th><th>C</th></tr>
		<tr><td>2</td><td>3</td></tr>
	</table>`
	got := render(t, html)

	if !strings.Contains(got, "| 2 | 3 |  |") {
		t.Errorf("short row should be padded with an empty cell, got %q", got)
	}
}

func TestEmptyRowsDropped(t *testing.T) {
	html := `<table>
		<tr><td> </td><td></td></tr>
		<tr><th>H</th></tr>
		<tr><td>v</td></tr>
	</table>`
	got := render(t, html)

	if !strings.Contains(got, "| H |") || !strings.Contains(got, "| v |") {
		t.Errorf("surviving rows missing in %q", got)
	}
	if n := strings.Count(got, "\n| "); n != 3 {
		t.Errorf("empty row should be dropped, got %d pipe rows in %q", n, got)
	}
}

func TestHeaderOnlyTableStillRenders(t *testing.T) {
	html := `<table><tr><th>Only</th><th>Header</th></tr></table>`
	got := render(t, html)

	if !strings.Contains(got, "| Only | Header |") {
		t.Errorf("missing header in %q", got)
	}
	if !strings.Contains(got, "| --- | --- |") {
		t.Errorf("separator row must be present even with zero body rows, got %q", got)
	}
}

func TestAllEmptyTablePassthrough(t *testing.T) {
	html := `<table><tr><td></td></tr></table>`
	got := render(t, html)
	if !strings.Contains(got, "<table>") {
		t.Errorf("table with no surviving rows should pass through, got %q", got)
	}
}

func TestPipeEscapedInCellText(t *testing.T) {
	html := `<table><tr><td>a|b</td><td>c</td></tr></table>`
	got := render(t, html)
	if !strings.Contains(got, `a\|b`) {
		t.Errorf("literal pipe should be escaped, got %q", got)
	}
}

func TestCellTextJoinsDescendants(t *testing.T) {
	html := `<table><tr><td><b>bold</b>
		plain <i>italic</i></td></tr></table>`
	got := render(t, html)
	if !strings.Contains(got, "| bold plain italic |") {
		t.Errorf("descendant text should be space-joined and trimmed, got %q", got)
	}
}
