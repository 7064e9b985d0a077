// Command ttf2bmp renders a font's character repertoire into an indexed
// BMP glyph atlas.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"

	"github.com/nikanikoo/ttf2bmp"
)

func main() {
	var (
		fontPath   = flag.String("font", "", "font file (TTF or OTF); empty uses the embedded Go Regular")
		size       = flag.Int("size", 16, "rasterization size in pixels")
		cellWidth  = flag.Int("cell-width", 16, "cell width in pixels")
		cellHeight = flag.Int("cell-height", 16, "cell height in pixels")
		columns    = flag.Int("columns", 16, "cells per atlas row")
		output     = flag.String("out", "font.bmp", "output BMP file")
		bg         = flag.String("bg", "ffffff", "background color (hex)")
		text       = flag.String("text", "000000", "text color (hex)")
		outline    = flag.Bool("outline", false, "draw a one-pixel outline around glyphs")
		outlineCol = flag.String("outline-color", "ff0000", "outline color (hex)")
		grid       = flag.Bool("grid", false, "draw one-pixel cell borders")
		workers    = flag.Int("workers", 1, "goroutines composing cells")
		verbose    = flag.Bool("v", false, "verbose logging to stderr")
	)
	flag.Parse()

	if *verbose {
		ttf2bmp.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		})))
	}

	cfg := ttf2bmp.DefaultConfig()
	cfg.FontPath = *fontPath
	cfg.FontSize = *size
	cfg.CellWidth = *cellWidth
	cfg.CellHeight = *cellHeight
	cfg.Columns = *columns
	cfg.OutputPath = *output
	cfg.Outline = *outline
	cfg.Grid = *grid
	cfg.Workers = *workers

	var err error
	if cfg.Background, err = ttf2bmp.ParseRGB(*bg); err != nil {
		fail(err)
	}
	if cfg.Text, err = ttf2bmp.ParseRGB(*text); err != nil {
		fail(err)
	}
	if cfg.OutlineColor, err = ttf2bmp.ParseRGB(*outlineCol); err != nil {
		fail(err)
	}

	res, err := ttf2bmp.Convert(cfg, nil)
	if err != nil {
		fail(err)
	}

	fmt.Printf("%s: %s, %d characters in %d rows, %dx%d, %d colors\n",
		res.Path, res.FontName, res.RepertoireSize, res.Rows,
		res.AtlasWidth, res.AtlasHeight, res.PaletteSize)
}

// fail prints the uniform failure message and exits.
func fail(err error) {
	fmt.Fprintf(os.Stderr, "conversion failed: %v\n", err)
	os.Exit(1)
}
