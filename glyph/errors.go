package glyph

import "errors"

// Sentinel errors for the glyph package.
var (
	// ErrEmptyData is returned when font data is empty.
	ErrEmptyData = errors.New("glyph: empty font data")
)
