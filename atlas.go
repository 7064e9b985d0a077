package ttf2bmp

import (
	"sync"

	"github.com/nikanikoo/ttf2bmp/glyph"
	"github.com/nikanikoo/ttf2bmp/internal/parallel"
)

// gridGray is the fixed color of the optional cell borders.
var gridGray = Gray

// atlasRows returns the number of grid rows needed for n cells.
func atlasRows(n, columns int) int {
	return (n + columns - 1) / columns
}

// buildAtlas composes every repertoire character into its grid cell and
// returns the finished atlas pixmap. The atlas is pre-filled with the
// background color, so grid slots past the last character stay plain.
//
// The progress callback runs after each composed cell with the overall
// completion percentage, non-decreasing and ending at exactly 100.
func buildAtlas(src *glyph.Source, cfg *Config, progress Progress) (*Pixmap, error) {
	rep := Repertoire()
	rows := atlasRows(len(rep), cfg.Columns)
	atlas := NewPixmap(cfg.Columns*cfg.CellWidth, rows*cfg.CellHeight)
	atlas.Fill(cfg.Background)

	if cfg.Workers > 1 {
		if err := composeChunked(atlas, src, cfg, rep, progress); err != nil {
			return nil, err
		}
		return atlas, nil
	}

	face, err := src.NewFace(cfg.FontSize)
	if err != nil {
		return nil, err
	}
	defer func() { _ = face.Close() }()

	for i, r := range rep {
		placeCell(atlas, face, r, i, cfg)
		if progress != nil {
			progress((i + 1) * 100 / len(rep))
		}
	}
	return atlas, nil
}

// placeCell composes one character and blits it into its grid slot,
// drawing the cell border when the grid is enabled.
func placeCell(atlas *Pixmap, face *glyph.Face, r rune, i int, cfg *Config) {
	if !face.Has(r) {
		Logger().Debug("font has no glyph", "char", string(r))
	}
	cell := composeCell(face, r, cfg)
	x := (i % cfg.Columns) * cfg.CellWidth
	y := (i / cfg.Columns) * cfg.CellHeight
	atlas.Blit(cell, x, y)
	if cfg.Grid {
		atlas.BorderRect(x, y, cfg.CellWidth, cfg.CellHeight, gridGray)
	}
}

// composeChunked is the concurrent path: the repertoire is split into
// contiguous chunks, one per worker, and every chunk composes with its own
// Face since a Face cannot be shared between goroutines. Cells land in
// disjoint atlas regions, so the result is bit-identical to the sequential
// path. A completed-cell counter drives the progress callback under a
// mutex, keeping the observed percentages non-decreasing.
func composeChunked(atlas *Pixmap, src *glyph.Source, cfg *Config, rep []rune, progress Progress) error {
	workers := cfg.Workers
	if workers > len(rep) {
		workers = len(rep)
	}

	var (
		mu       sync.Mutex
		done     int
		firstErr error
	)
	report := func() {
		mu.Lock()
		done++
		if progress != nil {
			progress(done * 100 / len(rep))
		}
		mu.Unlock()
	}
	fail := func(err error) {
		mu.Lock()
		if firstErr == nil {
			firstErr = err
		}
		mu.Unlock()
	}

	chunk := (len(rep) + workers - 1) / workers
	work := make([]func(), 0, workers)
	for start := 0; start < len(rep); start += chunk {
		end := start + chunk
		if end > len(rep) {
			end = len(rep)
		}
		lo, hi := start, end
		work = append(work, func() {
			face, err := src.NewFace(cfg.FontSize)
			if err != nil {
				fail(err)
				return
			}
			defer func() { _ = face.Close() }()
			for i := lo; i < hi; i++ {
				placeCell(atlas, face, rep[i], i, cfg)
				report()
			}
		})
	}

	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()
	pool.ExecuteAll(work)

	return firstErr
}
