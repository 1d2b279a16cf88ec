// Package core defines the pipeline types and interfaces for blogger2hugo.
// Each stage of the content transformation is a clean, testable interface.
package core

import "context"

// Post is one entry from a Blogger export. Immutable once parsed.
type Post struct {
	Title     string
	Published string // RFC3339, as found in the export
	Updated   string
	Permalink string // original Blogger path, without surrounding slashes
	Slug      string // filesystem-safe, unique within a run
	Draft     bool
	Tags      []string
	Content   string // raw post HTML, may be empty or malformed
}

// FetchResult holds the payload and response metadata from a fetch.
type FetchResult struct {
	URL        string
	StatusCode int
	Body       []byte
}

// Fetcher retrieves the raw bytes behind a URL.
type Fetcher interface {
	Fetch(ctx context.Context, url string) (*FetchResult, error)
}

// Normalizer converts cleaned HTML into Markdown (the canonical output format).
type Normalizer interface {
	Normalize(html string) (string, error)
}

// RawSink collects output fragments that must reach the final document
// verbatim. Put stores a fragment and returns an opaque placeholder token;
// rewrite stages place the token in the content tree where the fragment
// belongs, and the orchestrator substitutes the fragment back in after
// markdown rendering, so renderer escaping cannot mangle generated markup.
type RawSink interface {
	Put(fragment string) (token string)
}
