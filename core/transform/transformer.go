// Package transform orchestrates the per-post content pipeline:
// parse → clean → localize assets → rewrite frames → linearize tables →
// render markdown. Each stage runs over the whole tree before the next
// begins; only asset fetching performs I/O.
package transform

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/noorkhafidzin/blogger2hugo/core"
	"github.com/noorkhafidzin/blogger2hugo/core/assets"
	"github.com/noorkhafidzin/blogger2hugo/core/clean"
	"github.com/noorkhafidzin/blogger2hugo/core/fetch"
	"github.com/noorkhafidzin/blogger2hugo/core/frames"
	"github.com/noorkhafidzin/blogger2hugo/core/normalize"
	"github.com/noorkhafidzin/blogger2hugo/core/tables"
)

// Transformer converts one post's raw HTML into its final markdown document.
// A Transformer is safe for sequential reuse across posts; it holds only
// read-only configuration.
type Transformer struct {
	localizer *assets.Localizer
	norm      core.Normalizer
}

// New creates a Transformer from the run configuration.
func New(cfg core.Config) *Transformer {
	return &Transformer{
		localizer: assets.New(fetch.New(cfg.FetchTimeout), cfg.Concurrency),
		norm:      normalize.New(),
	}
}

// NewWith creates a Transformer with explicit collaborators, for tests and
// callers that need a custom fetcher or renderer.
func NewWith(localizer *assets.Localizer, norm core.Normalizer) *Transformer {
	return &Transformer{localizer: localizer, norm: norm}
}

// Transform runs the full pipeline for one post. targetDir is the post's
// image directory; it is created even when the post has zero images. The
// returned document is non-empty for non-empty meaningful input. The only
// errors returned are environment-level ones (directory creation); content
// problems degrade per item instead of aborting the post.
func (t *Transformer) Transform(ctx context.Context, rawHTML, targetDir, postSlug string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		// net/html recovers from malformed markup, so this is effectively
		// unreachable; keep the post viewable with its raw content anyway.
		if mkErr := os.MkdirAll(targetDir, 0o755); mkErr != nil {
			return "", fmt.Errorf("creating image directory %s: %w", targetDir, mkErr)
		}
		return rawHTML, nil
	}

	raw := core.NewRawBuffer()

	clean.Sanitize(doc)
	if err := t.localizer.Localize(ctx, doc, targetDir, postSlug, raw); err != nil {
		return "", err
	}
	frames.Rewrite(doc, raw)
	tables.Convert(doc, raw)

	body := bodyHTML(doc)
	markdown, err := t.norm.Normalize(body)
	if err != nil || strings.TrimSpace(markdown) == "" {
		// Defensive fallback: never emit an empty document for non-empty
		// input. The pre-render markup is still a viewable body.
		markdown = body
	}
	return raw.Restore(markdown), nil
}

// bodyHTML serializes the rewritten tree. goquery wraps fragments in
// html/body, so the body's inner HTML is the post content.
func bodyHTML(doc *goquery.Document) string {
	body := doc.Find("body")
	if body.Length() > 0 {
		if h, err := body.Html(); err == nil {
			return h
		}
	}
	if h, err := doc.Html(); err == nil {
		return h
	}
	return ""
}
