// Package assets localizes embedded images: it discovers every <img> in a
// content tree, downloads each distinct source once with bounded concurrency,
// and rewrites the node to a markdown image reference — local on success,
// the original remote URL on failure.
package assets

import (
	"context"
	"fmt"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/cespare/xxhash/v2"
	"golang.org/x/sync/errgroup"

	"github.com/noorkhafidzin/blogger2hugo/core"
	"github.com/noorkhafidzin/blogger2hugo/core/slug"
)

// maxExtLen bounds the extension taken from a source path, dot included.
const maxExtLen = 5

// job is one distinct image reference to fetch. Every node sharing the
// source is rewritten from the single job outcome.
type job struct {
	src      string
	filename string
	path     string
	nodes    []*goquery.Selection
	ok       bool
}

// Localizer downloads post images and rewrites their references.
type Localizer struct {
	fetcher core.Fetcher
	limit   int
}

// New creates a Localizer. A non-positive limit falls back to the default
// worker count.
func New(fetcher core.Fetcher, limit int) *Localizer {
	if limit <= 0 {
		limit = core.DefaultConcurrency
	}
	return &Localizer{fetcher: fetcher, limit: limit}
}

// Localize rewrites every image in doc. The target directory is created
// unconditionally, even when the post has no images; failure to create it is
// the only error Localize returns. Individual fetch failures degrade to a
// remote image reference and never abort the post.
func (l *Localizer) Localize(ctx context.Context, doc *goquery.Document, targetDir, postSlug string, raw core.RawSink) error {
	jobs := collectJobs(doc, targetDir, postSlug)

	// Downstream consumers expect the directory even for image-free posts.
	if err := os.MkdirAll(targetDir, 0o755); err != nil {
		return fmt.Errorf("creating image directory %s: %w", targetDir, err)
	}

	g := new(errgroup.Group)
	g.SetLimit(l.limit)
	for _, j := range jobs {
		g.Go(func() error {
			res, err := l.fetcher.Fetch(ctx, j.src)
			if err != nil {
				return nil // fallback to the remote reference
			}
			if err := os.WriteFile(j.path, res.Body, 0o644); err != nil {
				return nil
			}
			j.ok = true
			return nil
		})
	}
	// Full join point: every outcome is known before any node is rewritten.
	_ = g.Wait()

	for _, j := range jobs {
		for _, node := range j.nodes {
			alt := node.AttrOr("alt", "")
			var md string
			if j.ok {
				md = fmt.Sprintf("![%s](/posts/%s/images/%s)", alt, postSlug, j.filename)
			} else {
				md = fmt.Sprintf("![%s](%s)", alt, j.src)
			}
			node.ReplaceWithHtml(raw.Put(md))
		}
	}
	return nil
}

// collectJobs gathers one job per distinct image source, in document order.
// Images without a source reference carry no information and are removed.
func collectJobs(doc *goquery.Document, targetDir, postSlug string) []*job {
	byName := make(map[string]*job)
	var jobs []*job

	doc.Find("img").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if src == "" {
			s.Remove()
			return
		}
		name := TargetFilename(postSlug, src)
		j, seen := byName[name]
		if !seen {
			j = &job{
				src:      src,
				filename: name,
				path:     filepath.Join(targetDir, name),
			}
			byName[name] = j
			jobs = append(jobs, j)
		}
		j.nodes = append(j.nodes, s)
	})
	return jobs
}

// TargetFilename derives the deterministic local filename for a source
// reference. It is a pure function of (slug, src): repeated references within
// a post and repeated runs always map to the same name, so deduplication and
// collision-freedom hold by construction.
func TargetFilename(postSlug, src string) string {
	return slug.Normalize(fmt.Sprintf("%s-%d%s", postSlug, xxhash.Sum64String(src), extensionFor(src)))
}

// extensionFor extracts a plausible lowercase extension from the source path,
// query parameters stripped. Absent or implausible extensions fall back to
// .jpg.
func extensionFor(src string) string {
	clean := src
	if i := strings.IndexByte(clean, '?'); i >= 0 {
		clean = clean[:i]
	}
	ext := strings.ToLower(path.Ext(clean))
	if len(ext) < 2 || len(ext) > maxExtLen {
		return ".jpg"
	}
	for _, ch := range ext[1:] {
		if (ch < 'a' || ch > 'z') && (ch < '0' || ch > '9') {
			return ".jpg"
		}
	}
	return ext
}
