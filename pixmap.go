package ttf2bmp

import (
	"image"
	"image/color"

	"github.com/nikanikoo/ttf2bmp/internal/blend"
)

// Pixmap represents a rectangular pixel buffer in premultiplied RGBA format.
// A freshly created Pixmap is fully transparent.
type Pixmap struct {
	width  int
	height int
	data   []uint8 // premultiplied RGBA, 4 bytes per pixel
}

// NewPixmap creates a new transparent pixmap with the given dimensions.
func NewPixmap(width, height int) *Pixmap {
	return &Pixmap{
		width:  width,
		height: height,
		data:   make([]uint8, width*height*4),
	}
}

// Width returns the width of the pixmap.
func (p *Pixmap) Width() int {
	return p.width
}

// Height returns the height of the pixmap.
func (p *Pixmap) Height() int {
	return p.height
}

// Data returns the raw pixel data (premultiplied RGBA format).
func (p *Pixmap) Data() []uint8 {
	return p.data
}

// Fill sets every pixel to the opaque color c.
func (p *Pixmap) Fill(c RGB) {
	for i := 0; i < len(p.data); i += 4 {
		p.data[i+0] = c.R
		p.data[i+1] = c.G
		p.data[i+2] = c.B
		p.data[i+3] = 255
	}
}

// StampMask composites the solid color c, scaled by the coverage mask, over
// the pixmap. Mask coordinates are shifted by (ox, oy): the mask pixel at
// (mx, my) lands on (ox+mx, oy+my). Pixels outside the pixmap are clipped.
func (p *Pixmap) StampMask(mask *image.Alpha, ox, oy int, c RGB) {
	b := mask.Bounds()
	for my := b.Min.Y; my < b.Max.Y; my++ {
		y := oy + my
		if y < 0 || y >= p.height {
			continue
		}
		for mx := b.Min.X; mx < b.Max.X; mx++ {
			x := ox + mx
			if x < 0 || x >= p.width {
				continue
			}
			a := mask.AlphaAt(mx, my).A
			if a == 0 {
				continue
			}
			sr := blend.MulDiv255(c.R, a)
			sg := blend.MulDiv255(c.G, a)
			sb := blend.MulDiv255(c.B, a)
			i := (y*p.width + x) * 4
			p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3] = blend.SourceOver(
				sr, sg, sb, a,
				p.data[i+0], p.data[i+1], p.data[i+2], p.data[i+3])
		}
	}
}

// DrawOver composites src over the pixmap with the src origin placed at
// (ox, oy). Pixels falling outside the destination are clipped.
func (p *Pixmap) DrawOver(src *Pixmap, ox, oy int) {
	for sy := 0; sy < src.height; sy++ {
		y := oy + sy
		if y < 0 || y >= p.height {
			continue
		}
		for sx := 0; sx < src.width; sx++ {
			x := ox + sx
			if x < 0 || x >= p.width {
				continue
			}
			si := (sy*src.width + sx) * 4
			sa := src.data[si+3]
			if sa == 0 {
				continue
			}
			di := (y*p.width + x) * 4
			p.data[di+0], p.data[di+1], p.data[di+2], p.data[di+3] = blend.SourceOver(
				src.data[si+0], src.data[si+1], src.data[si+2], sa,
				p.data[di+0], p.data[di+1], p.data[di+2], p.data[di+3])
		}
	}
}

// Blit copies src into the pixmap with its top-left corner at (ox, oy),
// replacing destination pixels. The source must fit entirely inside the
// destination.
func (p *Pixmap) Blit(src *Pixmap, ox, oy int) {
	for sy := 0; sy < src.height; sy++ {
		di := ((oy+sy)*p.width + ox) * 4
		si := sy * src.width * 4
		copy(p.data[di:di+src.width*4], src.data[si:si+src.width*4])
	}
}

// BorderRect draws a one-pixel border just inside the rectangle with
// top-left corner (x, y) and the given dimensions, in the opaque color c.
func (p *Pixmap) BorderRect(x, y, w, h int, c RGB) {
	for bx := x; bx < x+w; bx++ {
		p.setPixel(bx, y, c)
		p.setPixel(bx, y+h-1, c)
	}
	for by := y; by < y+h; by++ {
		p.setPixel(x, by, c)
		p.setPixel(x+w-1, by, c)
	}
}

// setPixel sets one pixel to an opaque color, ignoring out-of-range coordinates.
func (p *Pixmap) setPixel(x, y int, c RGB) {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return
	}
	i := (y*p.width + x) * 4
	p.data[i+0] = c.R
	p.data[i+1] = c.G
	p.data[i+2] = c.B
	p.data[i+3] = 255
}

// ToImage converts the pixmap to an image.RGBA, which shares the
// premultiplied representation.
func (p *Pixmap) ToImage() *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, p.width, p.height))
	copy(img.Pix, p.data)
	return img
}

// At implements the image.Image interface.
func (p *Pixmap) At(x, y int) color.Color {
	if x < 0 || x >= p.width || y < 0 || y >= p.height {
		return color.RGBA{}
	}
	i := (y*p.width + x) * 4
	return color.RGBA{R: p.data[i+0], G: p.data[i+1], B: p.data[i+2], A: p.data[i+3]}
}

// Bounds implements the image.Image interface.
func (p *Pixmap) Bounds() image.Rectangle {
	return image.Rect(0, 0, p.width, p.height)
}

// ColorModel implements the image.Image interface.
func (p *Pixmap) ColorModel() color.Model {
	return color.RGBAModel
}
