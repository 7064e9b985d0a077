// Command ttf2bmp-gui is a graphical front-end for the glyph atlas
// converter. Conversion runs on its own goroutine so the window stays
// responsive; progress and results are marshalled back with fyne.Do.
package main

import (
	"fmt"
	"strconv"
	"strings"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/widget"

	"github.com/nikanikoo/ttf2bmp"
)

// controls bundles the input widgets so the conversion config can be read
// in one place.
type controls struct {
	font, out                            *widget.Entry
	size, cellW, cellH, columns, workers *widget.Entry
	bg, text, outlineColor               *widget.Entry
	outline, grid                        *widget.Check
}

func newControls() *controls {
	c := &controls{
		font:         widget.NewEntry(),
		out:          widget.NewEntry(),
		size:         widget.NewEntry(),
		cellW:        widget.NewEntry(),
		cellH:        widget.NewEntry(),
		columns:      widget.NewEntry(),
		workers:      widget.NewEntry(),
		bg:           widget.NewEntry(),
		text:         widget.NewEntry(),
		outlineColor: widget.NewEntry(),
		outline:      widget.NewCheck("Outline", nil),
		grid:         widget.NewCheck("Grid lines", nil),
	}
	c.font.SetPlaceHolder("embedded Go Regular")
	c.out.SetText("font.bmp")
	c.size.SetText("16")
	c.cellW.SetText("16")
	c.cellH.SetText("16")
	c.columns.SetText("16")
	c.workers.SetText("1")
	c.bg.SetText("ffffff")
	c.text.SetText("000000")
	c.outlineColor.SetText("ff0000")
	return c
}

// config assembles a conversion config from the widget values.
func (c *controls) config() (ttf2bmp.Config, error) {
	cfg := ttf2bmp.DefaultConfig()
	cfg.FontPath = strings.TrimSpace(c.font.Text)
	cfg.OutputPath = strings.TrimSpace(c.out.Text)
	cfg.Outline = c.outline.Checked
	cfg.Grid = c.grid.Checked

	fields := []struct {
		name  string
		entry *widget.Entry
		dst   *int
	}{
		{"size", c.size, &cfg.FontSize},
		{"cell width", c.cellW, &cfg.CellWidth},
		{"cell height", c.cellH, &cfg.CellHeight},
		{"columns", c.columns, &cfg.Columns},
		{"workers", c.workers, &cfg.Workers},
	}
	for _, f := range fields {
		v, err := strconv.Atoi(strings.TrimSpace(f.entry.Text))
		if err != nil {
			return cfg, fmt.Errorf("%s must be a number", f.name)
		}
		*f.dst = v
	}

	var err error
	if cfg.Background, err = ttf2bmp.ParseRGB(c.bg.Text); err != nil {
		return cfg, err
	}
	if cfg.Text, err = ttf2bmp.ParseRGB(c.text.Text); err != nil {
		return cfg, err
	}
	if cfg.OutlineColor, err = ttf2bmp.ParseRGB(c.outlineColor.Text); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func main() {
	guiApp := app.New()
	win := guiApp.NewWindow("ttf2bmp")
	win.Resize(fyne.NewSize(540, 560))

	c := newControls()

	browseFont := widget.NewButton("Browse", func() {
		dialog.ShowFileOpen(func(rc fyne.URIReadCloser, err error) {
			if err != nil || rc == nil {
				return
			}
			defer func() { _ = rc.Close() }()
			c.font.SetText(rc.URI().Path())
		}, win)
	})
	browseOut := widget.NewButton("Browse", func() {
		dialog.ShowFileSave(func(wc fyne.URIWriteCloser, err error) {
			if err != nil || wc == nil {
				return
			}
			defer func() { _ = wc.Close() }()
			c.out.SetText(wc.URI().Path())
		}, win)
	})

	progress := widget.NewProgressBar()
	progress.Max = 100
	status := widget.NewLabel("")

	var convertBtn *widget.Button
	convertBtn = widget.NewButton("Convert", func() {
		cfg, err := c.config()
		if err != nil {
			dialog.ShowError(err, win)
			return
		}
		convertBtn.Disable()
		progress.SetValue(0)
		status.SetText("Converting...")

		go func() {
			res, err := ttf2bmp.Convert(cfg, func(percent int) {
				fyne.Do(func() {
					progress.SetValue(float64(percent))
				})
			})
			fyne.Do(func() {
				convertBtn.Enable()
				if err != nil {
					status.SetText("")
					dialog.ShowError(fmt.Errorf("conversion failed: %w", err), win)
					return
				}
				status.SetText(fmt.Sprintf("Wrote %s: %s, %d characters, %dx%d, %d colors",
					res.Path, res.FontName, res.RepertoireSize,
					res.AtlasWidth, res.AtlasHeight, res.PaletteSize))
			})
		}()
	})

	form := widget.NewForm(
		widget.NewFormItem("Font", container.NewBorder(nil, nil, nil, browseFont, c.font)),
		widget.NewFormItem("Output", container.NewBorder(nil, nil, nil, browseOut, c.out)),
		widget.NewFormItem("Size", c.size),
		widget.NewFormItem("Cell width", c.cellW),
		widget.NewFormItem("Cell height", c.cellH),
		widget.NewFormItem("Columns", c.columns),
		widget.NewFormItem("Background", c.bg),
		widget.NewFormItem("Text color", c.text),
		widget.NewFormItem("Outline color", c.outlineColor),
		widget.NewFormItem("Workers", c.workers),
	)

	win.SetContent(container.NewVBox(
		form,
		container.NewHBox(c.outline, c.grid),
		convertBtn,
		progress,
		status,
	))
	win.ShowAndRun()
}
