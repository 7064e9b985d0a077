// Package ttf2bmp renders a fixed character repertoire from an outline font
// into an indexed BMP glyph atlas.
//
// # Overview
//
// ttf2bmp rasterizes each character of its repertoire (printable ASCII plus a
// small supplementary set, see [Repertoire]) into a fixed-size cell, centers
// the glyph ink inside the cell, optionally synthesizes a one-pixel outline,
// packs the cells into a grid atlas, reduces the atlas to at most 16 colors,
// and writes the result as an uncompressed 4-bit indexed BMP. The output is
// meant for bitmap-font consumers that index the atlas by cell position.
//
// # Quick Start
//
//	import "github.com/nikanikoo/ttf2bmp"
//
//	cfg := ttf2bmp.DefaultConfig()
//	cfg.FontPath = "DejaVuSans.ttf"
//	cfg.OutputPath = "font.bmp"
//
//	res, err := ttf2bmp.Convert(cfg, nil)
//	if err != nil {
//	    log.Fatalf("conversion failed: %v", err)
//	}
//	fmt.Printf("wrote %s (%dx%d)\n", res.Path, res.AtlasWidth, res.AtlasHeight)
//
// # Pipeline
//
// Conversion runs as a single pass: font loading (package glyph), per-cell
// composition, atlas assembly, palette reduction (package quant), and BMP
// serialization (package bmp). A [Progress] callback reports completion per
// composed cell. Nothing is written to disk until every earlier stage has
// succeeded, so a failed conversion never leaves a partial output file.
//
// # Coordinate System
//
// Cells use top-left origin coordinates with the baseline placed at the face
// ascent. Glyph ink boxes are expressed in this space, so a box min above the
// baseline has y smaller than the ascent.
package ttf2bmp

// Version is the current version of the library.
const Version = "1.0.0"
