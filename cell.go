package ttf2bmp

import "image"

// coverageSource supplies rasterized glyph coverage masks in cell
// coordinates. *glyph.Face is the production implementation.
type coverageSource interface {
	Glyph(r rune) (*image.Alpha, bool)
}

// outlineOffsets are the eight neighbor displacements stamped around the
// glyph when the outline is enabled, in row-major order.
var outlineOffsets = [8][2]int{
	{-1, -1}, {0, -1}, {1, -1},
	{-1, 0}, {1, 0},
	{-1, 1}, {0, 1}, {1, 1},
}

// composeCell renders one character into a fresh opaque cell pixmap.
//
// The glyph ink box is centered in the cell using integer division, so an
// odd size difference leaves the extra pixel on the right and bottom
// margins. Outline and text coverage are stamped on an oversized
// transparent working buffer, the outline first in all eight directions and
// the text color last on top; then the cell-sized top-left region of the
// buffer is flattened over the opaque background. Characters without ink
// produce a plain background cell.
func composeCell(src coverageSource, r rune, cfg *Config) *Pixmap {
	cell := NewPixmap(cfg.CellWidth, cfg.CellHeight)
	cell.Fill(cfg.Background)

	cov, ok := src.Glyph(r)
	if !ok {
		return cell
	}

	b := cov.Bounds()
	offX := (cfg.CellWidth-b.Dx())/2 - b.Min.X
	offY := (cfg.CellHeight-b.Dy())/2 - b.Min.Y

	work := NewPixmap(2*cfg.CellWidth, 2*cfg.CellHeight)
	if cfg.Outline {
		for _, d := range outlineOffsets {
			work.StampMask(cov, offX+d[0], offY+d[1], cfg.OutlineColor)
		}
	}
	work.StampMask(cov, offX, offY, cfg.Text)

	cell.DrawOver(work, 0, 0)
	return cell
}
