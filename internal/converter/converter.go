// Package converter turns a raster image into ASCII art rendered as an SVG
// document. The pipeline is a single linear pass: decode and prepare the
// image, average block luminance, map each block to a rune from a
// brightness-ordered density string, and emit one positioned glyph per cell.
package converter

import (
	"bytes"
	"log"
	"os"
	"path/filepath"
)

// Published defaults of the tool.
const (
	DefaultMaxSize    = 200
	DefaultContrast   = 1.5
	DefaultScale      = 10
	DefaultFontFamily = "Courier, monospace"
	DefaultForeground = "white"
	DefaultBackground = "black"
)

// Options configures one conversion. The zero value is not usable; start
// from DefaultOptions.
type Options struct {
	// Columns caps the number of character columns; the cell width is
	// derived from it. 0 samples one column per source pixel.
	Columns int
	// CellHeight is the cell height in source pixels. 0 makes cells square.
	CellHeight int
	// Density is the glyph palette, brightest to darkest.
	Density string
	// MaxSize fits the longest image side to this many pixels before
	// sampling. 0 keeps the decoded size.
	MaxSize int
	// Contrast is the linear stretch factor applied around the mean
	// luminance. 1 leaves the image unchanged.
	Contrast float64
	// Blur is the Gaussian sigma applied before sampling. 0 skips the pass.
	Blur float64
	// Scale is the number of output pixels per source pixel.
	Scale int

	FontFamily string
	Foreground string
	Background string
}

// DefaultOptions returns the options the img2svg command runs with when no
// flags are given.
func DefaultOptions() Options {
	return Options{
		Density:    DefaultDensity,
		MaxSize:    DefaultMaxSize,
		Contrast:   DefaultContrast,
		Scale:      DefaultScale,
		FontFamily: DefaultFontFamily,
		Foreground: DefaultForeground,
		Background: DefaultBackground,
	}
}

func (o Options) validate() error {
	switch {
	case o.Columns < 0:
		return &ConfigError{Reason: "columns must be >= 0"}
	case o.CellHeight < 0:
		return &ConfigError{Reason: "cell height must be >= 0"}
	case len(o.Density) == 0:
		return &ConfigError{Reason: "density string must not be empty"}
	case o.MaxSize < 0:
		return &ConfigError{Reason: "max size must be >= 0"}
	case o.Contrast < 0:
		return &ConfigError{Reason: "contrast factor must be >= 0"}
	case o.Blur < 0:
		return &ConfigError{Reason: "blur sigma must be >= 0"}
	case o.Scale < 1:
		return &ConfigError{Reason: "scale must be >= 1"}
	case o.FontFamily == "":
		return &ConfigError{Reason: "font family must not be empty"}
	case o.Foreground == "" || o.Background == "":
		return &ConfigError{Reason: "foreground and background colors must not be empty"}
	}
	return nil
}

// cellDims derives the sample cell size from the prepared image width.
func cellDims(width int, o Options) (cellW, cellH int) {
	cellW = 1
	if o.Columns > 0 {
		cellW = (width + o.Columns - 1) / o.Columns
	}
	cellH = cellW
	if o.CellHeight > 0 {
		cellH = o.CellHeight
	}
	return cellW, cellH
}

// Convert runs the whole pipeline for one image and commits the SVG
// document to outPath. It either writes the complete document or leaves
// outPath untouched.
func Convert(inPath, outPath string, opts Options) error {
	if err := opts.validate(); err != nil {
		return err
	}

	grid, err := Load(inPath, opts)
	if err != nil {
		return err
	}

	cellW, cellH := cellDims(grid.W, opts)
	lum := Sample(grid, cellW, cellH)
	chars := MapLuminance(lum, []rune(opts.Density))
	log.Printf("sampled %dx%d cells (cell %dx%d px)", lum.Cols, lum.Rows, cellW, cellH)

	var buf bytes.Buffer
	RenderSVG(&buf, chars, Geometry{
		AdvanceX:   opts.Scale * cellW,
		AdvanceY:   opts.Scale * cellH,
		FontSize:   opts.Scale * cellH,
		FontFamily: opts.FontFamily,
		Foreground: opts.Foreground,
		Background: opts.Background,
	})

	if err := commit(outPath, buf.Bytes()); err != nil {
		return err
	}
	log.Printf("wrote %s (%d bytes)", outPath, buf.Len())
	return nil
}

// commit lands the document through a temp file in the destination
// directory and a rename, so outPath never holds a partial document.
func commit(path string, data []byte) error {
	tmp, err := os.CreateTemp(filepath.Dir(path), filepath.Base(path)+".tmp-*")
	if err != nil {
		return &WriteError{Path: path, Err: err}
	}
	// CreateTemp opens the file 0600; the published document gets 0644.
	if err := tmp.Chmod(0o644); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name())
		return &WriteError{Path: path, Err: err}
	}
	return nil
}
