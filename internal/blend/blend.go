package blend

// SourceOver composites a premultiplied source pixel over a destination pixel.
//
// Formula: S + D * (1 - Sa)
//
// The fully transparent and fully opaque source cases short-circuit, which
// covers most pixels when stamping glyph coverage.
func SourceOver(sr, sg, sb, sa, dr, dg, db, da byte) (r, g, b, a byte) {
	switch sa {
	case 0:
		return dr, dg, db, da
	case 255:
		return sr, sg, sb, sa
	}
	invSa := 255 - sa
	return addClamp(sr, MulDiv255(dr, invSa)),
		addClamp(sg, MulDiv255(dg, invSa)),
		addClamp(sb, MulDiv255(db, invSa)),
		addClamp(sa, MulDiv255(da, invSa))
}
