// Package tables converts structurally simple HTML tables into pipe-delimited
// markdown. Tables with spanning cells are left as their original raw markup:
// partial conversion of complex layouts loses information, so they pass
// through unmodified.
package tables

import (
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"

	"github.com/noorkhafidzin/blogger2hugo/core"
)

// Convert rewrites every table in doc, in document order. Simple tables
// become a markdown table block; complex or empty tables keep their original
// markup. Conversion must run after image and frame rewriting so cell text
// already holds the final references.
func Convert(doc *goquery.Document, raw core.RawSink) {
	doc.Find("table").Each(func(_ int, s *goquery.Selection) {
		block, ok := linearize(s)
		if !ok {
			outer, err := goquery.OuterHtml(s)
			if err != nil {
				return
			}
			block = "\n\n" + outer + "\n\n"
		}
		s.ReplaceWithHtml(raw.Put(block))
	})
}

// linearize renders one table subtree to a markdown block. It reports false
// for complex tables (any cell spanning rows or columns) and for tables with
// no surviving rows.
func linearize(table *goquery.Selection) (string, bool) {
	if isComplex(table) {
		return "", false
	}

	var rows [][]string
	table.Find("tr").Each(func(_ int, tr *goquery.Selection) {
		rows = append(rows, rowCells(tr))
	})

	// Drop rows that are entirely empty after text extraction.
	kept := rows[:0]
	for _, r := range rows {
		for _, cell := range r {
			if strings.TrimSpace(cell) != "" {
				kept = append(kept, r)
				break
			}
		}
	}
	rows = kept
	if len(rows) == 0 {
		return "", false
	}

	// Ragged-row tolerance: pad short rows to the widest row.
	cols := 0
	for _, r := range rows {
		if len(r) > cols {
			cols = len(r)
		}
	}
	for i, r := range rows {
		for len(r) < cols {
			r = append(r, "")
		}
		rows[i] = r
	}

	var b strings.Builder
	b.WriteString("\n\n| " + strings.Join(rows[0], " | ") + " |\n")
	seps := make([]string, cols)
	for i := range seps {
		seps[i] = "---"
	}
	b.WriteString("| " + strings.Join(seps, " | ") + " |\n")
	for _, r := range rows[1:] {
		b.WriteString("| " + strings.Join(r, " | ") + " |\n")
	}
	b.WriteString("\n\n")
	return b.String(), true
}

// isComplex reports whether any cell carries a row or column span.
func isComplex(table *goquery.Selection) bool {
	spanning := false
	table.Find("td,th").EachWithBreak(func(_ int, cell *goquery.Selection) bool {
		if _, ok := cell.Attr("colspan"); ok {
			spanning = true
			return false
		}
		if _, ok := cell.Attr("rowspan"); ok {
			spanning = true
			return false
		}
		return true
	})
	return spanning
}

// rowCells extracts the cell texts of one row, direct children only, in
// document order. Literal pipes are escaped so cell text cannot break the
// column layout.
func rowCells(tr *goquery.Selection) []string {
	var cells []string
	tr.Children().Filter("th,td").Each(func(_ int, cell *goquery.Selection) {
		text := strings.ReplaceAll(cellText(cell), "|", `\|`)
		cells = append(cells, text)
	})
	return cells
}

// cellText joins every descendant text node of the cell, each trimmed, with
// single spaces.
func cellText(cell *goquery.Selection) string {
	var parts []string
	for _, node := range cell.Nodes {
		collectText(node, &parts)
	}
	return strings.Join(parts, " ")
}

func collectText(n *html.Node, parts *[]string) {
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			*parts = append(*parts, t)
		}
		return
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		collectText(c, parts)
	}
}
