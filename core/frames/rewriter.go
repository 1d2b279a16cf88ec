// Package frames rewrites embedded <iframe> elements into Hugo-friendly
// equivalents: YouTube embeds become shortcodes, Google Drive file previews
// become direct download links, and anything else passes through as its
// original raw markup for the downstream renderer to keep opaque.
package frames

import (
	"fmt"
	"regexp"

	"github.com/PuerkitoBio/goquery"

	"github.com/noorkhafidzin/blogger2hugo/core"
)

var (
	youtubeRe = regexp.MustCompile(`(?:youtube\.com/embed/|youtu\.be/)([\w-]+)`)
	driveRe   = regexp.MustCompile(`drive\.google\.com/file/d/([^/?#]+)`)
)

// Rewrite replaces every iframe in doc. Frames without a source reference
// are removed. Malformed or unrecognized sources fall through to the opaque
// passthrough branch rather than failing.
func Rewrite(doc *goquery.Document, raw core.RawSink) {
	doc.Find("iframe").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if src == "" {
			s.Remove()
			return
		}

		if m := youtubeRe.FindStringSubmatch(src); m != nil {
			s.ReplaceWithHtml(raw.Put(fmt.Sprintf("{{< youtube %s >}}", m[1])))
			return
		}

		if m := driveRe.FindStringSubmatch(src); m != nil {
			link := fmt.Sprintf("[Download PDF](https://drive.google.com/uc?export=download&id=%s)", m[1])
			s.ReplaceWithHtml(raw.Put(link))
			return
		}

		outer, err := goquery.OuterHtml(s)
		if err != nil {
			s.Remove()
			return
		}
		s.ReplaceWithHtml(raw.Put(outer))
	})
}
