package core

import (
	"fmt"
	"strings"
)

// RawBuffer is the standard RawSink implementation. Tokens are plain text
// that neither the HTML serializer nor the markdown escaper will alter.
// One buffer belongs to one post transformation; it is not safe for
// concurrent use.
type RawBuffer struct {
	fragments []string
}

// NewRawBuffer creates an empty RawBuffer.
func NewRawBuffer() *RawBuffer {
	return &RawBuffer{}
}

// Put stores a fragment and returns its placeholder token.
func (b *RawBuffer) Put(fragment string) string {
	b.fragments = append(b.fragments, fragment)
	return rawToken(len(b.fragments) - 1)
}

// Restore substitutes every placeholder token in s with its fragment.
// Fragments can themselves contain tokens allocated earlier (an image
// placeholder inside a table block snapshot), so substitution runs in
// decreasing allocation order: containers expand first, and their embedded
// earlier tokens are replaced by the remaining iterations.
func (b *RawBuffer) Restore(s string) string {
	for i := len(b.fragments) - 1; i >= 0; i-- {
		s = strings.ReplaceAll(s, rawToken(i), b.fragments[i])
	}
	return s
}

func rawToken(i int) string {
	return fmt.Sprintf("@@raw:%d@@", i)
}
