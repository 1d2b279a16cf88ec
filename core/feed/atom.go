// Package feed parses a Blogger Atom export into post records.
// Only entries of Blogger type POST are kept; pages, comments, and settings
// entries are skipped.
package feed

import (
	"encoding/xml"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/noorkhafidzin/blogger2hugo/core"
	"github.com/noorkhafidzin/blogger2hugo/core/slug"
)

// atomFeed is the root element of a Blogger export.
type atomFeed struct {
	XMLName xml.Name    `xml:"feed"`
	Entries []atomEntry `xml:"entry"`
}

type atomEntry struct {
	ID         string         `xml:"id"`
	Title      string         `xml:"title"`
	Published  string         `xml:"published"`
	Updated    string         `xml:"updated"`
	Content    string         `xml:"content"`
	Type       string         `xml:"http://schemas.google.com/blogger/2018 type"`
	Status     string         `xml:"http://schemas.google.com/blogger/2018 status"`
	Filename   string         `xml:"http://schemas.google.com/blogger/2018 filename"`
	Categories []atomCategory `xml:"category"`
}

type atomCategory struct {
	Term string `xml:"term,attr"`
}

// ParseFile reads and parses the export at path.
func ParseFile(path string) ([]core.Post, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening export %s: %w", path, err)
	}
	defer f.Close()
	return Parse(f)
}

// Parse decodes a Blogger Atom export into post records.
func Parse(r io.Reader) ([]core.Post, error) {
	var doc atomFeed
	if err := xml.NewDecoder(r).Decode(&doc); err != nil {
		return nil, fmt.Errorf("decoding atom feed: %w", err)
	}

	var posts []core.Post
	for _, e := range doc.Entries {
		if e.Type != "POST" {
			continue
		}
		posts = append(posts, postFromEntry(e))
	}
	return posts, nil
}

// postFromEntry maps one Atom entry to a post record, deriving the permalink
// and slug with the documented fallback chain.
func postFromEntry(e atomEntry) core.Post {
	title := strings.TrimSpace(e.Title)
	if title == "" {
		title = "untitled"
	}

	permalink := strings.Trim(strings.TrimSpace(e.Filename), "/")
	if permalink == "" {
		// Missing permalink: derive one from the title, or from the trailing
		// segment of the Atom id when the title is empty too.
		source := strings.TrimSpace(e.Title)
		if source == "" {
			source = idSuffix(e.ID)
		}
		permalink = slug.Normalize(source) + ".html"
	}

	postSlug := slug.Normalize(strings.TrimSuffix(permalink, ".html"))
	if postSlug == "" {
		// Normalization can empty out a name made of unsafe characters;
		// fall back to a synthetic identifier from the Atom id.
		postSlug = "post-" + slug.Normalize(idSuffix(e.ID))
	}

	var tags []string
	for _, c := range e.Categories {
		if c.Term != "" {
			tags = append(tags, c.Term)
		}
	}

	return core.Post{
		Title:     title,
		Published: strings.TrimSpace(e.Published),
		Updated:   strings.TrimSpace(e.Updated),
		Permalink: permalink,
		Slug:      postSlug,
		Draft:     e.Status == "DRAFT",
		Tags:      tags,
		Content:   e.Content,
	}
}

// idSuffix returns the part of an Atom id after the last dash, which for
// Blogger ids is the numeric post id.
func idSuffix(id string) string {
	if i := strings.LastIndexByte(id, '-'); i >= 0 {
		return id[i+1:]
	}
	return id
}
