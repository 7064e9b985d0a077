package ttf2bmp

import (
	"bytes"
	"image/color"
	"testing"

	"github.com/nikanikoo/ttf2bmp/glyph"
)

func TestAtlasRows(t *testing.T) {
	tests := []struct {
		n, columns int
		want       int
	}{
		{100, 16, 7},
		{100, 10, 10},
		{100, 100, 1},
		{100, 1, 100},
		{100, 7, 15},
		{96, 16, 6},
		{1, 16, 1},
		{16, 16, 1},
		{17, 16, 2},
	}

	for _, tt := range tests {
		if got := atlasRows(tt.n, tt.columns); got != tt.want {
			t.Errorf("atlasRows(%d, %d) = %d, want %d", tt.n, tt.columns, got, tt.want)
		}
	}
}

func defaultSource(t *testing.T) *glyph.Source {
	t.Helper()
	src, err := glyph.Default()
	if err != nil {
		t.Fatalf("glyph.Default() error: %v", err)
	}
	return src
}

func TestBuildAtlas_DefaultDimensions(t *testing.T) {
	src := defaultSource(t)
	cfg := DefaultConfig()

	atlas, err := buildAtlas(src, &cfg, nil)
	if err != nil {
		t.Fatalf("buildAtlas() error: %v", err)
	}

	// 16 columns of 16px cells, 100 characters in 7 rows.
	if atlas.Width() != 256 || atlas.Height() != 112 {
		t.Errorf("atlas = %dx%d, want 256x112", atlas.Width(), atlas.Height())
	}
}

func TestBuildAtlas_Dimensions(t *testing.T) {
	tests := []struct {
		columns int
		wantW   int
		wantH   int
	}{
		{16, 256, 112},
		{10, 160, 160},
		{100, 1600, 16},
		{7, 112, 240},
	}

	src := defaultSource(t)
	for _, tt := range tests {
		cfg := DefaultConfig()
		cfg.Columns = tt.columns

		atlas, err := buildAtlas(src, &cfg, nil)
		if err != nil {
			t.Fatalf("buildAtlas(columns=%d) error: %v", tt.columns, err)
		}
		if atlas.Width() != tt.wantW || atlas.Height() != tt.wantH {
			t.Errorf("columns=%d: atlas = %dx%d, want %dx%d",
				tt.columns, atlas.Width(), atlas.Height(), tt.wantW, tt.wantH)
		}
	}
}

func TestBuildAtlas_ProgressSequential(t *testing.T) {
	src := defaultSource(t)
	cfg := DefaultConfig()

	var percents []int
	_, err := buildAtlas(src, &cfg, func(p int) {
		percents = append(percents, p)
	})
	if err != nil {
		t.Fatalf("buildAtlas() error: %v", err)
	}

	// One callback per character, climbing from 1 to exactly 100.
	if len(percents) != RepertoireSize {
		t.Fatalf("progress called %d times, want %d", len(percents), RepertoireSize)
	}
	for i, p := range percents {
		if p != i+1 {
			t.Fatalf("percents[%d] = %d, want %d", i, p, i+1)
		}
	}
}

func TestBuildAtlas_ProgressParallel(t *testing.T) {
	src := defaultSource(t)
	cfg := DefaultConfig()
	cfg.Workers = 4

	var percents []int
	_, err := buildAtlas(src, &cfg, func(p int) {
		// The callback runs under the progress mutex, so no extra locking.
		percents = append(percents, p)
	})
	if err != nil {
		t.Fatalf("buildAtlas() error: %v", err)
	}

	if len(percents) != RepertoireSize {
		t.Fatalf("progress called %d times, want %d", len(percents), RepertoireSize)
	}
	if percents[0] < 1 {
		t.Errorf("first percent = %d, want at least 1", percents[0])
	}
	if last := percents[len(percents)-1]; last != 100 {
		t.Errorf("final percent = %d, want 100", last)
	}
	for i := 1; i < len(percents); i++ {
		if percents[i] < percents[i-1] {
			t.Fatalf("progress went backwards: %d after %d", percents[i], percents[i-1])
		}
	}
}

func TestBuildAtlas_Deterministic(t *testing.T) {
	src := defaultSource(t)
	cfg := DefaultConfig()

	a, err := buildAtlas(src, &cfg, nil)
	if err != nil {
		t.Fatalf("buildAtlas() error: %v", err)
	}
	b, err := buildAtlas(src, &cfg, nil)
	if err != nil {
		t.Fatalf("buildAtlas() error: %v", err)
	}

	if !bytes.Equal(a.Data(), b.Data()) {
		t.Error("two sequential builds differ")
	}
}

func TestBuildAtlas_ParallelMatchesSequential(t *testing.T) {
	src := defaultSource(t)

	seq := DefaultConfig()
	seqAtlas, err := buildAtlas(src, &seq, nil)
	if err != nil {
		t.Fatalf("sequential buildAtlas() error: %v", err)
	}

	for _, workers := range []int{2, 4, 8, 200} {
		par := DefaultConfig()
		par.Workers = workers

		parAtlas, err := buildAtlas(src, &par, nil)
		if err != nil {
			t.Fatalf("parallel buildAtlas(workers=%d) error: %v", workers, err)
		}
		if !bytes.Equal(seqAtlas.Data(), parAtlas.Data()) {
			t.Errorf("workers=%d: parallel atlas differs from sequential", workers)
		}
	}
}

func TestBuildAtlas_GridBorders(t *testing.T) {
	src := defaultSource(t)
	cfg := DefaultConfig()
	cfg.Grid = true

	atlas, err := buildAtlas(src, &cfg, nil)
	if err != nil {
		t.Fatalf("buildAtlas() error: %v", err)
	}

	gray := color.RGBA{128, 128, 128, 255}
	// Corners of the first cell.
	for _, pt := range [][2]int{{0, 0}, {15, 0}, {0, 15}, {15, 15}} {
		if got := atlas.At(pt[0], pt[1]).(color.RGBA); got != gray {
			t.Errorf("border pixel (%d,%d) = %v, want gray", pt[0], pt[1], got)
		}
	}
	// Corners of the last populated cell (index 99: row 6, column 3).
	for _, pt := range [][2]int{{48, 96}, {63, 96}, {48, 111}, {63, 111}} {
		if got := atlas.At(pt[0], pt[1]).(color.RGBA); got != gray {
			t.Errorf("border pixel (%d,%d) = %v, want gray", pt[0], pt[1], got)
		}
	}
}

func TestBuildAtlas_EmptySlotsStayPlain(t *testing.T) {
	src := defaultSource(t)
	cfg := DefaultConfig()
	cfg.Grid = true

	atlas, err := buildAtlas(src, &cfg, nil)
	if err != nil {
		t.Fatalf("buildAtlas() error: %v", err)
	}

	// Slot 100 (row 6, column 4) holds no character: pure background, no
	// border even with the grid enabled.
	white := color.RGBA{255, 255, 255, 255}
	for y := 96; y < 112; y++ {
		for x := 64; x < 80; x++ {
			if got := atlas.At(x, y).(color.RGBA); got != white {
				t.Fatalf("empty slot pixel (%d,%d) = %v, want background", x, y, got)
			}
		}
	}
}

func TestBuildAtlas_SpaceCellIsPlain(t *testing.T) {
	src := defaultSource(t)
	cfg := DefaultConfig()

	atlas, err := buildAtlas(src, &cfg, nil)
	if err != nil {
		t.Fatalf("buildAtlas() error: %v", err)
	}

	// The space (index 0) maps to a glyph but has no ink.
	white := color.RGBA{255, 255, 255, 255}
	for y := 0; y < 16; y++ {
		for x := 0; x < 16; x++ {
			if got := atlas.At(x, y).(color.RGBA); got != white {
				t.Fatalf("space cell pixel (%d,%d) = %v, want background", x, y, got)
			}
		}
	}
}

func TestBuildAtlas_GlyphInkPresent(t *testing.T) {
	src := defaultSource(t)
	cfg := DefaultConfig()

	atlas, err := buildAtlas(src, &cfg, nil)
	if err != nil {
		t.Fatalf("buildAtlas() error: %v", err)
	}

	// 'H' sits at index 40 (row 2, column 8). Its cell must contain ink.
	white := color.RGBA{255, 255, 255, 255}
	ink := false
	for y := 32; y < 48 && !ink; y++ {
		for x := 128; x < 144; x++ {
			if atlas.At(x, y).(color.RGBA) != white {
				ink = true
				break
			}
		}
	}
	if !ink {
		t.Error("cell for 'H' contains no ink")
	}
}
