// Package output handles the on-disk layout of the migrated site:
// one directory per post under posts/, holding index.md and an images/
// subdirectory for localized media.
package output

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer writes migrated posts to disk.
type Writer struct {
	BaseDir string
}

// New creates a Writer targeting the given output directory.
// If outputDir is empty, it defaults to the current working directory.
func New(outputDir string) (*Writer, error) {
	if outputDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("getting working directory: %w", err)
		}
		outputDir = wd
	}

	if err := os.MkdirAll(filepath.Join(outputDir, "posts"), 0o755); err != nil {
		return nil, fmt.Errorf("creating output directory: %w", err)
	}

	return &Writer{BaseDir: outputDir}, nil
}

// PostDir returns the directory of one post.
func (w *Writer) PostDir(slug string) string {
	return filepath.Join(w.BaseDir, "posts", slug)
}

// ImageDir returns the localized-image directory of one post. Writes into it
// are confined to that post's own jobs, so posts stay independent even when
// processed in parallel.
func (w *Writer) ImageDir(slug string) string {
	return filepath.Join(w.PostDir(slug), "images")
}

// WritePost writes a post's index.md, creating the post directory if needed.
func (w *Writer) WritePost(slug string, content []byte) (string, error) {
	dir := w.PostDir(slug)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("creating post directory %s: %w", dir, err)
	}

	path := filepath.Join(dir, "index.md")
	if err := os.WriteFile(path, content, 0o644); err != nil {
		return "", fmt.Errorf("writing file %s: %w", path, err)
	}
	return path, nil
}
