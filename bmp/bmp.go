// Package bmp serializes indexed images as uncompressed BMP files.
//
// Serialization is delegated to github.com/jsummers/gobmp, which picks the
// bit depth from the palette size: an atlas with at most 16 colors becomes a
// 4 bits per pixel indexed BMP that any standard reader can decode.
package bmp

import (
	"bytes"
	"errors"
	"fmt"
	"image"
	"io"
	"os"
	"path/filepath"

	"github.com/jsummers/gobmp"
)

// MaxPaletteColors is the largest palette an atlas BMP may carry.
const MaxPaletteColors = 16

// Encoding errors.
var (
	// ErrEmptyPalette is returned when the image has no palette entries.
	ErrEmptyPalette = errors.New("bmp: empty palette")
)

// Encode writes img to w as an uncompressed indexed BMP.
func Encode(w io.Writer, img *image.Paletted) error {
	if len(img.Palette) == 0 {
		return ErrEmptyPalette
	}
	if len(img.Palette) > MaxPaletteColors {
		return fmt.Errorf("bmp: palette has %d colors, limit is %d", len(img.Palette), MaxPaletteColors)
	}

	if err := gobmp.Encode(w, img); err != nil {
		return fmt.Errorf("bmp: encode: %w", err)
	}
	return nil
}

// WriteFile encodes img fully in memory, then writes it to path in a single
// step. A failed encode therefore never leaves a file behind, and an
// existing file is only ever replaced by a complete atlas.
func WriteFile(path string, img *image.Paletted) error {
	var buf bytes.Buffer
	if err := Encode(&buf, img); err != nil {
		return err
	}

	if err := os.WriteFile(filepath.Clean(path), buf.Bytes(), 0o644); err != nil {
		return fmt.Errorf("bmp: write file: %w", err)
	}
	return nil
}
