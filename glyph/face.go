package glyph

import (
	"fmt"
	"image"
	"image/color"

	"golang.org/x/image/font"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/math/fixed"
)

// Metrics is the ink bounding box of a glyph in cell coordinates.
// Characters without visible ink (and runes the font cannot map) have the
// zero Metrics.
type Metrics struct {
	MinX, MinY, MaxX, MaxY int
}

// Width returns the horizontal extent of the ink box.
func (m Metrics) Width() int { return m.MaxX - m.MinX }

// Height returns the vertical extent of the ink box.
func (m Metrics) Height() int { return m.MaxY - m.MinY }

// Face renders glyphs of a Source at one fixed pixel size.
//
// A Face is not safe for concurrent use: it owns rasterization buffers that
// are reused between calls. Create one Face per goroutine.
type Face struct {
	face   font.Face
	ascent int
}

// NewFace creates a Face rendering glyphs of s at the given pixel size.
func (s *Source) NewFace(pixelSize int) (*Face, error) {
	if s == nil {
		panic("glyph: Source is nil (check the error from LoadSource)")
	}
	s.copyCheck()

	// DPI 72 makes the point size equal the pixel size.
	f, err := opentype.NewFace(s.font, &opentype.FaceOptions{
		Size:    float64(pixelSize),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	if err != nil {
		return nil, fmt.Errorf("glyph: failed to create face: %w", err)
	}

	return &Face{
		face:   f,
		ascent: f.Metrics().Ascent.Ceil(),
	}, nil
}

// Ascent returns the baseline y coordinate in cell space, in pixels.
func (f *Face) Ascent() int {
	return f.ascent
}

// Has reports whether the font maps r to a glyph.
func (f *Face) Has(r rune) bool {
	_, ok := f.face.GlyphAdvance(r)
	return ok
}

// Metrics returns the ink bounding box of r in cell coordinates:
// the outline bounds shifted so the baseline sits at the face ascent,
// min corner floored and max corner ceiled to whole pixels.
func (f *Face) Metrics(r rune) Metrics {
	b, _, ok := f.face.GlyphBounds(r)
	if !ok || b.Min.X >= b.Max.X || b.Min.Y >= b.Max.Y {
		return Metrics{}
	}
	return Metrics{
		MinX: b.Min.X.Floor(),
		MinY: f.ascent + b.Min.Y.Floor(),
		MaxX: b.Max.X.Ceil(),
		MaxY: f.ascent + b.Max.Y.Ceil(),
	}
}

// Glyph rasterizes r and returns its antialiased coverage mask, indexed in
// cell coordinates: the mask bounds equal the box reported by Metrics.
// The second return is false when the rune has no visible ink (such as
// space) or no glyph in the font.
func (f *Face) Glyph(r rune) (*image.Alpha, bool) {
	dot := fixed.P(0, f.ascent)
	dr, mask, maskp, _, ok := f.face.Glyph(dot, r)
	if !ok || dr.Empty() {
		return nil, false
	}

	// Normalize the face's internal mask into a standalone alpha image
	// positioned at the ink box.
	cov := image.NewAlpha(dr)
	for y := 0; y < dr.Dy(); y++ {
		for x := 0; x < dr.Dx(); x++ {
			_, _, _, a := mask.At(maskp.X+x, maskp.Y+y).RGBA()
			cov.SetAlpha(dr.Min.X+x, dr.Min.Y+y, color.Alpha{A: uint8(a >> 8)})
		}
	}
	return cov, true
}

// Close releases the resources of the underlying face.
func (f *Face) Close() error {
	return f.face.Close()
}
