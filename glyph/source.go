// Package glyph loads outline fonts and rasterizes single glyphs into
// coverage masks.
//
// A [Source] wraps one parsed font file and can mint any number of [Face]
// instances, each rendering at one fixed pixel size. Coverage masks and ink
// boxes use cell coordinates: origin at the top-left of the glyph layout box,
// y growing downward, baseline at the face ascent.
package glyph

import (
	"fmt"
	"os"

	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
)

// Source represents a loaded font file (TTF or OTF).
// One Source can create multiple Face instances at different sizes.
// Source is heavyweight and should be shared across the application.
//
// Source is safe for concurrent use.
// Source must not be copied after creation (enforced by copyCheck).
type Source struct {
	// addr is used for copy protection.
	// It must point to the Source itself.
	addr *Source

	data []byte
	font *opentype.Font
	name string
}

// NewSource creates a Source from font data.
// The data slice is copied internally and can be reused after this call.
func NewSource(data []byte) (*Source, error) {
	if len(data) == 0 {
		return nil, ErrEmptyData
	}

	// The parsed font reads from its input lazily, so parse a private copy.
	dataCopy := make([]byte, len(data))
	copy(dataCopy, data)

	f, err := opentype.Parse(dataCopy)
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to parse font: %w", err)
	}

	s := &Source{
		data: dataCopy,
		font: f,
	}
	s.addr = s // Self-reference for copy detection
	s.name = familyName(f)

	return s, nil
}

// LoadSource loads a Source from a font file path.
func LoadSource(path string) (*Source, error) {
	// #nosec G304 -- Font file path is provided by the user
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to read font file: %w", err)
	}

	return NewSource(data)
}

// Name returns the font family name, falling back to the full font name and
// finally to "Unknown Font" when the name table has no usable entry.
func (s *Source) Name() string {
	s.copyCheck()
	return s.name
}

// NumGlyphs returns the number of glyphs in the font.
func (s *Source) NumGlyphs() int {
	s.copyCheck()
	return s.font.NumGlyphs()
}

// copyCheck panics if Source was copied by value.
// This is the Ebitengine pattern for preventing accidental copies.
func (s *Source) copyCheck() {
	if s.addr != s {
		panic("glyph: Source must not be copied by value")
	}
}

// familyName extracts the font family name from the parsed font.
func familyName(f *opentype.Font) string {
	if name, err := f.Name(nil, sfnt.NameIDFamily); err == nil && name != "" {
		return name
	}

	if name, err := f.Name(nil, sfnt.NameIDFull); err == nil && name != "" {
		return name
	}

	return "Unknown Font"
}
