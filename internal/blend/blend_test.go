package blend

import (
	"math"
	"testing"
)

// TestDiv255Exact tests Alvy Ray Smith's exact formula.
func TestDiv255Exact(t *testing.T) {
	// Test all possible values from alpha blending
	for x := 0; x <= 255*255; x++ {
		expected := x / 255
		got := int(div255Exact(uint16(x)))

		if got != expected {
			t.Errorf("div255Exact(%d) = %d, want %d", x, got, expected)
		}
	}
}

// TestMulDiv255 tests multiplication with rounded division.
func TestMulDiv255(t *testing.T) {
	tests := []struct {
		a, b     byte
		expected byte
	}{
		{0, 0, 0},
		{255, 255, 255},
		{0, 255, 0},
		{255, 0, 0},
		{128, 128, 64}, // 128*128/255 = 64.25
		{200, 100, 78}, // 200*100/255 = 78.43
		{1, 255, 1},
		{255, 1, 1},
		{127, 127, 63}, // 127*127/255 = 63.25
		{128, 255, 128},
	}

	for _, tt := range tests {
		got := MulDiv255(tt.a, tt.b)
		if got != tt.expected {
			t.Errorf("MulDiv255(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

// TestMulDiv255AllValues exhaustively checks the rounding against floating
// point for all byte combinations.
func TestMulDiv255AllValues(t *testing.T) {
	errors := 0
	for a := 0; a <= 255; a++ {
		for b := 0; b <= 255; b++ {
			expected := int(math.Round(float64(a*b) / 255.0))
			got := int(MulDiv255(byte(a), byte(b)))

			if got != expected {
				errors++
				if errors <= 5 {
					t.Errorf("MulDiv255(%d, %d) = %d, want %d", a, b, got, expected)
				}
			}
		}
	}
	if errors > 0 {
		t.Errorf("Total errors: %d out of 65536", errors)
	}
}

// TestMulDiv255Identity tests the multiplicative identity and zero.
func TestMulDiv255Identity(t *testing.T) {
	for a := 0; a <= 255; a++ {
		if got := MulDiv255(byte(a), 255); got != byte(a) {
			t.Errorf("MulDiv255(%d, 255) = %d, want %d", a, got, a)
		}
		if got := MulDiv255(255, byte(a)); got != byte(a) {
			t.Errorf("MulDiv255(255, %d) = %d, want %d", a, got, a)
		}
		if got := MulDiv255(byte(a), 0); got != 0 {
			t.Errorf("MulDiv255(%d, 0) = %d, want 0", a, got)
		}
	}
}

// TestAddClamp tests clamped addition.
func TestAddClamp(t *testing.T) {
	tests := []struct {
		a, b     byte
		expected byte
	}{
		{0, 0, 0},
		{100, 100, 200},
		{200, 100, 255}, // Would overflow to 300, clamped to 255
		{255, 255, 255},
		{255, 0, 255},
		{0, 255, 255},
	}

	for _, tt := range tests {
		got := addClamp(tt.a, tt.b)
		if got != tt.expected {
			t.Errorf("addClamp(%d, %d) = %d, want %d", tt.a, tt.b, got, tt.expected)
		}
	}
}

// TestSourceOver_TransparentSource tests that a fully transparent source
// leaves the destination untouched.
func TestSourceOver_TransparentSource(t *testing.T) {
	r, g, b, a := SourceOver(0, 0, 0, 0, 50, 100, 200, 255)
	if r != 50 || g != 100 || b != 200 || a != 255 {
		t.Errorf("SourceOver transparent src = (%d,%d,%d,%d), want (50,100,200,255)", r, g, b, a)
	}
}

// TestSourceOver_OpaqueSource tests that a fully opaque source replaces the
// destination.
func TestSourceOver_OpaqueSource(t *testing.T) {
	r, g, b, a := SourceOver(200, 150, 100, 255, 50, 100, 200, 255)
	if r != 200 || g != 150 || b != 100 || a != 255 {
		t.Errorf("SourceOver opaque src = (%d,%d,%d,%d), want (200,150,100,255)", r, g, b, a)
	}
}

// TestSourceOver_OverTransparent tests compositing onto a transparent
// destination.
func TestSourceOver_OverTransparent(t *testing.T) {
	r, g, b, a := SourceOver(100, 50, 25, 128, 0, 0, 0, 0)
	if r != 100 || g != 50 || b != 25 || a != 128 {
		t.Errorf("SourceOver over transparent = (%d,%d,%d,%d), want (100,50,25,128)", r, g, b, a)
	}
}

// TestSourceOver_SemiTransparent tests the S + D*(1-Sa) formula on a known
// case.
func TestSourceOver_SemiTransparent(t *testing.T) {
	// Premultiplied source (100,50,25) at alpha 128 over opaque (50,100,200).
	r, g, b, a := SourceOver(100, 50, 25, 128, 50, 100, 200, 255)

	invSa := byte(255 - 128)
	wantR := addClamp(100, MulDiv255(50, invSa))
	wantG := addClamp(50, MulDiv255(100, invSa))
	wantB := addClamp(25, MulDiv255(200, invSa))

	if r != wantR || g != wantG || b != wantB {
		t.Errorf("SourceOver = (%d,%d,%d), want (%d,%d,%d)", r, g, b, wantR, wantG, wantB)
	}
	if a != 255 {
		t.Errorf("SourceOver alpha = %d, want 255 (opaque destination stays opaque)", a)
	}
}

// TestSourceOver_OpaqueDestinationStaysOpaque tests that blending anything
// onto an opaque pixel never produces a translucent result.
func TestSourceOver_OpaqueDestinationStaysOpaque(t *testing.T) {
	for sa := 0; sa <= 255; sa++ {
		s := byte(sa)
		sr := MulDiv255(180, s)
		_, _, _, a := SourceOver(sr, sr, sr, s, 10, 20, 30, 255)
		if a != 255 {
			t.Errorf("alpha after blending sa=%d onto opaque = %d, want 255", sa, a)
		}
	}
}

// TestSourceOver_SameColorRestamp tests that stamping a color over a pixel
// that already holds the same color opaquely leaves the color unchanged for
// every coverage value. Overlapping glyph stamps rely on this.
func TestSourceOver_SameColorRestamp(t *testing.T) {
	colors := [][3]byte{
		{0, 0, 0},
		{255, 255, 255},
		{200, 150, 100},
		{1, 128, 254},
		{73, 91, 17},
	}

	for _, c := range colors {
		for alpha := 0; alpha <= 255; alpha++ {
			s := byte(alpha)
			sr := MulDiv255(c[0], s)
			sg := MulDiv255(c[1], s)
			sb := MulDiv255(c[2], s)

			r, g, b, a := SourceOver(sr, sg, sb, s, c[0], c[1], c[2], 255)
			if r != c[0] || g != c[1] || b != c[2] || a != 255 {
				t.Errorf("restamp color (%d,%d,%d) at alpha %d = (%d,%d,%d,%d), want color unchanged",
					c[0], c[1], c[2], alpha, r, g, b, a)
			}
		}
	}
}

// BenchmarkSourceOver_1000Pixels benchmarks blending a row of pixels.
func BenchmarkSourceOver_1000Pixels(b *testing.B) {
	src := make([]byte, 4000) // 1000 RGBA pixels
	dst := make([]byte, 4000)

	// Fill with semi-transparent colors
	for i := 0; i < 4000; i += 4 {
		src[i] = 100   // R (premultiplied)
		src[i+1] = 50  // G
		src[i+2] = 25  // B
		src[i+3] = 128 // A

		dst[i] = 50    // R
		dst[i+1] = 100 // G
		dst[i+2] = 200 // B
		dst[i+3] = 255 // A
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		for j := 0; j < 4000; j += 4 {
			dst[j], dst[j+1], dst[j+2], dst[j+3] = SourceOver(
				src[j], src[j+1], src[j+2], src[j+3],
				dst[j], dst[j+1], dst[j+2], dst[j+3],
			)
		}
	}
}
