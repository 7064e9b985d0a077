package glyph

import (
	"sync"

	"golang.org/x/image/font/gofont/goregular"
)

var (
	defaultOnce   sync.Once
	defaultSource *Source
	defaultErr    error
)

// Default returns the embedded fallback font (Go Regular), used when no font
// path is configured. The font is parsed once and the Source is shared by
// all callers.
func Default() (*Source, error) {
	defaultOnce.Do(func() {
		defaultSource, defaultErr = NewSource(goregular.TTF)
	})
	return defaultSource, defaultErr
}
