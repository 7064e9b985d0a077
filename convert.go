package ttf2bmp

import (
	"github.com/nikanikoo/ttf2bmp/bmp"
	"github.com/nikanikoo/ttf2bmp/glyph"
	"github.com/nikanikoo/ttf2bmp/quant"
)

// Progress receives the overall completion percentage after each composed
// glyph cell, non-decreasing and ending at exactly 100. Callbacks run
// synchronously on the conversion goroutines and must return quickly.
// A nil Progress is simply not called.
type Progress func(percent int)

// Result summarizes a finished conversion.
type Result struct {
	// FontName is the family name of the rasterized font.
	FontName string

	// RepertoireSize is the number of characters in the atlas.
	RepertoireSize int

	// Rows is the number of cell rows in the atlas grid.
	Rows int

	// AtlasWidth and AtlasHeight are the output dimensions in pixels.
	AtlasWidth  int
	AtlasHeight int

	// PaletteSize is the number of colors in the written BMP.
	PaletteSize int

	// Path is the location of the written BMP.
	Path string
}

// Convert runs the full pipeline: load the font, compose every repertoire
// character into its fixed-size cell, assemble the cells into the grid
// atlas, reduce the atlas to at most 16 colors, and write it as an indexed
// BMP to cfg.OutputPath.
//
// Font problems surface as *FontLoadError before any pixel work; output
// problems surface as *WriteError at the final step. In both cases no
// output file is created, so a failed conversion never leaves a partial
// atlas behind.
func Convert(cfg Config, progress Progress) (*Result, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	log := Logger()

	var (
		src *glyph.Source
		err error
	)
	source := cfg.FontPath
	if source == "" {
		source = "embedded"
		src, err = glyph.Default()
	} else {
		src, err = glyph.LoadSource(cfg.FontPath)
	}
	if err != nil {
		return nil, &FontLoadError{Source: source, Err: err}
	}
	log.Info("font loaded", "name", src.Name(), "glyphs", src.NumGlyphs())

	atlas, err := buildAtlas(src, &cfg, progress)
	if err != nil {
		// Only face creation can fail here, which is a font problem.
		return nil, &FontLoadError{Source: source, Err: err}
	}
	rows := atlasRows(RepertoireSize, cfg.Columns)
	log.Info("atlas built", "width", atlas.Width(), "height", atlas.Height(), "rows", rows)

	img := quant.Quantize(atlas.ToImage(), bmp.MaxPaletteColors)
	log.Info("palette reduced", "colors", len(img.Palette))

	if err := bmp.WriteFile(cfg.OutputPath, img); err != nil {
		return nil, &WriteError{Path: cfg.OutputPath, Err: err}
	}
	log.Info("atlas written", "path", cfg.OutputPath)

	return &Result{
		FontName:       src.Name(),
		RepertoireSize: RepertoireSize,
		Rows:           rows,
		AtlasWidth:     atlas.Width(),
		AtlasHeight:    atlas.Height(),
		PaletteSize:    len(img.Palette),
		Path:           cfg.OutputPath,
	}, nil
}
