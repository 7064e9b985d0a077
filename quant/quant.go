// Package quant reduces images to small indexed palettes.
//
// The palette is derived by median cut over the opaque RGB values of the
// input. Every choice the algorithm makes is tie-broken in a fixed order
// (lowest box index, then channel order R, G, B, then lexicographic pixel
// order), so the same input always yields the same palette and the same
// indexed image.
package quant

import (
	"image"
	"image/color"
	"sort"
)

// rgb is one opaque pixel sample.
type rgb [3]uint8

// Palette derives up to maxColors representative colors from img.
// Images that already use maxColors or fewer distinct colors keep exactly
// those colors. The result is sorted by luma, then R, G, B, with duplicate
// entries removed. An empty image yields an empty palette; maxColors values
// below 1 are treated as 1.
func Palette(img image.Image, maxColors int) color.Palette {
	if maxColors < 1 {
		maxColors = 1
	}

	px := samples(img)
	if len(px) == 0 {
		return color.Palette{}
	}

	if d := distinct(px); len(d) <= maxColors {
		return assemble(d)
	}

	// Median cut: repeatedly split the box with the widest channel range at
	// the median pixel along that channel.
	boxes := [][]rgb{px}
	for len(boxes) < maxColors {
		best, bestCh, bestSpan := -1, 0, 0
		for i, b := range boxes {
			ch, span := widest(b)
			if span > bestSpan {
				best, bestCh, bestSpan = i, ch, span
			}
		}
		if best < 0 {
			break // every box holds a single color
		}
		b := boxes[best]
		sortByChannel(b, bestCh)
		mid := len(b) / 2
		boxes[best] = b[:mid]
		boxes = append(boxes, b[mid:])
	}

	means := make([]rgb, len(boxes))
	for i, b := range boxes {
		means[i] = mean(b)
	}
	return assemble(means)
}

// Quantize maps img onto the palette derived by Palette. Every pixel gets
// its nearest palette entry by squared RGB distance; ties keep the lowest
// palette index.
func Quantize(img image.Image, maxColors int) *image.Paletted {
	pal := Palette(img, maxColors)
	b := img.Bounds()
	out := image.NewPaletted(b, pal)
	if len(pal) == 0 {
		return out
	}

	// Each distinct input color is resolved once.
	cache := make(map[rgb]uint8)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			p := sample(img, x, y)
			idx, ok := cache[p]
			if !ok {
				idx = uint8(pal.Index(color.RGBA{R: p[0], G: p[1], B: p[2], A: 255}))
				cache[p] = idx
			}
			out.SetColorIndex(x, y, idx)
		}
	}
	return out
}

// sample reads one pixel as opaque 8-bit RGB.
func sample(img image.Image, x, y int) rgb {
	r, g, b, _ := img.At(x, y).RGBA()
	return rgb{uint8(r >> 8), uint8(g >> 8), uint8(b >> 8)}
}

// samples collects every pixel of img. Duplicates are kept so medians and
// means are weighted by frequency.
func samples(img image.Image) []rgb {
	b := img.Bounds()
	out := make([]rgb, 0, b.Dx()*b.Dy())
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			out = append(out, sample(img, x, y))
		}
	}
	return out
}

// distinct returns the set of unique samples in lexicographic order.
func distinct(px []rgb) []rgb {
	seen := make(map[rgb]struct{})
	for _, p := range px {
		seen[p] = struct{}{}
	}
	out := make([]rgb, 0, len(seen))
	for p := range seen {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return less(out[i], out[j], 0) })
	return out
}

// widest returns the channel with the largest value range in the box and
// that range. Channel ties resolve in R, G, B order. A span of zero means
// the box cannot be split.
func widest(px []rgb) (ch, span int) {
	var lo, hi rgb
	lo = rgb{255, 255, 255}
	for _, p := range px {
		for c := 0; c < 3; c++ {
			if p[c] < lo[c] {
				lo[c] = p[c]
			}
			if p[c] > hi[c] {
				hi[c] = p[c]
			}
		}
	}
	for c := 0; c < 3; c++ {
		if s := int(hi[c]) - int(lo[c]); s > span {
			ch, span = c, s
		}
	}
	return ch, span
}

// sortByChannel orders px by the given channel first, then by the remaining
// channels, giving a total order on values.
func sortByChannel(px []rgb, ch int) {
	sort.Slice(px, func(i, j int) bool { return less(px[i], px[j], ch) })
}

// less compares two samples starting at channel ch and wrapping around.
func less(a, b rgb, ch int) bool {
	for k := 0; k < 3; k++ {
		c := (ch + k) % 3
		if a[c] != b[c] {
			return a[c] < b[c]
		}
	}
	return false
}

// mean returns the frequency-weighted average color of a box, rounded to
// the nearest integer per channel.
func mean(px []rgb) rgb {
	var sr, sg, sb int
	for _, p := range px {
		sr += int(p[0])
		sg += int(p[1])
		sb += int(p[2])
	}
	n := len(px)
	return rgb{
		uint8((sr + n/2) / n),
		uint8((sg + n/2) / n),
		uint8((sb + n/2) / n),
	}
}

// assemble sorts box colors by luma (then R, G, B), drops duplicates, and
// converts to a color.Palette of opaque entries.
func assemble(colors []rgb) color.Palette {
	sorted := make([]rgb, len(colors))
	copy(sorted, colors)
	sort.Slice(sorted, func(i, j int) bool {
		li, lj := luma(sorted[i]), luma(sorted[j])
		if li != lj {
			return li < lj
		}
		return less(sorted[i], sorted[j], 0)
	})

	pal := make(color.Palette, 0, len(sorted))
	var prev rgb
	for i, p := range sorted {
		if i > 0 && p == prev {
			continue
		}
		pal = append(pal, color.RGBA{R: p[0], G: p[1], B: p[2], A: 255})
		prev = p
	}
	return pal
}

// luma is the integer Rec. 601 brightness weight used for palette ordering.
func luma(p rgb) int {
	return 299*int(p[0]) + 587*int(p[1]) + 114*int(p[2])
}
