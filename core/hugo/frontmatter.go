// Package hugo generates the YAML front matter block that precedes each
// migrated document.
package hugo

import (
	"fmt"

	"gopkg.in/yaml.v3"

	"github.com/noorkhafidzin/blogger2hugo/core"
)

// FrontMatter is the metadata block of a migrated post.
type FrontMatter struct {
	Title   string   `yaml:"title"`
	Date    string   `yaml:"date"`
	Lastmod string   `yaml:"lastmod"`
	Tags    []string `yaml:"tags"`
	Aliases []string `yaml:"aliases,omitempty"`
	Draft   bool     `yaml:"draft"`
}

// FromPost builds the front matter for a post. The original Blogger
// permalink becomes an alias so old links keep resolving.
func FromPost(p core.Post) FrontMatter {
	fm := FrontMatter{
		Title:   p.Title,
		Date:    p.Published,
		Lastmod: p.Updated,
		Tags:    p.Tags,
		Draft:   p.Draft,
	}
	if p.Permalink != "" {
		fm.Aliases = []string{"/" + p.Permalink}
	}
	return fm
}

// Render encodes the front matter between --- fences, followed by a blank
// line. The YAML encoder owns quoting and escaping of titles.
func Render(fm FrontMatter) (string, error) {
	if fm.Tags == nil {
		fm.Tags = []string{}
	}
	out, err := yaml.Marshal(&fm)
	if err != nil {
		return "", fmt.Errorf("encoding front matter: %w", err)
	}
	return "---\n" + string(out) + "---\n\n", nil
}
