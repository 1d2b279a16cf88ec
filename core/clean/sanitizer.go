// Package clean normalizes a content tree before the rewrite passes.
// It removes script-class noise elements and strips every attribute outside
// a small allow-list, discarding styling and tracking metadata that has no
// place in the migrated document.
package clean

import (
	"github.com/PuerkitoBio/goquery"
	"golang.org/x/net/html"
)

// noiseSelectors are elements removed outright; they contribute nothing to
// post content.
var noiseSelectors = []string{"script", "style", "noscript"}

// allowedAttrs is the attribute allow-list: source reference, link target,
// alt text, and title text survive; everything else is dropped.
var allowedAttrs = map[string]bool{
	"src":   true,
	"href":  true,
	"alt":   true,
	"title": true,
}

// Sanitize strips noise elements and disallowed attributes in place.
// Span attributes on table cells are kept: the table pass needs them to
// classify complex tables.
func Sanitize(doc *goquery.Document) {
	for _, sel := range noiseSelectors {
		doc.Find(sel).Remove()
	}

	doc.Find("*").Each(func(_ int, s *goquery.Selection) {
		for _, node := range s.Nodes {
			kept := node.Attr[:0]
			for _, attr := range node.Attr {
				if allowedAttrs[attr.Key] || isSpan(node, attr) {
					kept = append(kept, attr)
				}
			}
			node.Attr = kept
		}
	})
}

func isSpan(node *html.Node, attr html.Attribute) bool {
	if attr.Key != "colspan" && attr.Key != "rowspan" {
		return false
	}
	return node.Data == "td" || node.Data == "th"
}
