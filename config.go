package ttf2bmp

import "fmt"

// Config holds every parameter of a conversion.
//
// The zero value is not usable; start from [DefaultConfig] and override
// fields as needed. Validate reports the first invalid field, so callers can
// fail fast before any font or file work happens.
type Config struct {
	// FontPath is the path of the font file to rasterize (TTF or OTF).
	// When empty, the embedded default font is used.
	FontPath string

	// FontSize is the rasterization size in pixels.
	FontSize int

	// CellWidth and CellHeight are the fixed dimensions of one glyph cell.
	CellWidth  int
	CellHeight int

	// Columns is the number of cells per atlas row.
	Columns int

	// OutputPath is where the BMP atlas is written.
	OutputPath string

	// Background fills every cell before glyph ink is drawn.
	Background RGB

	// Text is the color of the glyph ink.
	Text RGB

	// Outline enables a one-pixel outline around the glyph ink,
	// drawn in OutlineColor underneath the text color.
	Outline      bool
	OutlineColor RGB

	// Grid draws a one-pixel border around every cell in a fixed gray.
	Grid bool

	// Workers is the number of goroutines composing cells.
	// 1 keeps the whole conversion on the calling goroutine.
	Workers int
}

// DefaultConfig returns the standard conversion parameters:
// 16x16 pixel cells, 16 cells per row, black text on white,
// outline and grid disabled.
func DefaultConfig() Config {
	return Config{
		FontSize:     16,
		CellWidth:    16,
		CellHeight:   16,
		Columns:      16,
		OutputPath:   "font.bmp",
		Background:   White,
		Text:         Black,
		Outline:      false,
		OutlineColor: Red,
		Grid:         false,
		Workers:      1,
	}
}

// Validate checks that all numeric parameters are positive and the output
// path is set. It returns the first problem found.
func (c *Config) Validate() error {
	switch {
	case c.FontSize < 1:
		return fmt.Errorf("ttf2bmp: font size must be at least 1, got %d", c.FontSize)
	case c.CellWidth < 1:
		return fmt.Errorf("ttf2bmp: cell width must be at least 1, got %d", c.CellWidth)
	case c.CellHeight < 1:
		return fmt.Errorf("ttf2bmp: cell height must be at least 1, got %d", c.CellHeight)
	case c.Columns < 1:
		return fmt.Errorf("ttf2bmp: columns must be at least 1, got %d", c.Columns)
	case c.Workers < 1:
		return fmt.Errorf("ttf2bmp: workers must be at least 1, got %d", c.Workers)
	case c.OutputPath == "":
		return fmt.Errorf("ttf2bmp: output path must not be empty")
	}
	return nil
}
