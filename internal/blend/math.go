// Package blend provides premultiplied-alpha compositing for pixel buffers.
//
// All operations work on premultiplied values in the range 0-255.
//
// References:
//   - Porter-Duff: "Compositing Digital Images" (1984)
//   - Alvy Ray Smith's technical memos: http://alvyray.com/Memos/
package blend

// MulDiv255 multiplies two byte values and divides by 255 with proper rounding.
//
// Formula: (a * b + 127) / 255
//
// The +127 provides correct rounding (equivalent to adding 0.5 before
// truncation).
func MulDiv255(a, b byte) byte {
	return byte((uint16(a)*uint16(b) + 127) / 255)
}

// div255Exact divides x by 255 exactly without using division.
//
// Formula: ((x + 1) + ((x + 1) >> 8)) >> 8
//
// This is Alvy Ray Smith's formula, which gives exact (truncating) results
// for all uint16 values. Kept as the reference for the math tests.
func div255Exact(x uint16) uint16 {
	t := x + 1
	return (t + (t >> 8)) >> 8
}

// addClamp adds two bytes and clamps to 255.
func addClamp(a, b byte) byte {
	sum := uint16(a) + uint16(b)
	if sum > 255 {
		return 255
	}
	return byte(sum)
}
