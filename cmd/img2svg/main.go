package main

import (
	"flag"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"

	"github.com/mush1e/ASCII-SVG-Gen/internal/converter"
)

var (
	output   = flag.String("o", "", "output SVG path (default: input path with .svg extension)")
	columns  = flag.Int("columns", 0, "character columns (0 = one per source pixel)")
	cellH    = flag.Int("cell-height", 0, "cell height in source pixels (0 = square cells)")
	charset  = flag.String("charset", converter.DefaultDensity, "density string, brightest to darkest")
	maxSize  = flag.Int("max-size", converter.DefaultMaxSize, "fit longest side to this many pixels before sampling (0 = keep size)")
	contrast = flag.Float64("contrast", converter.DefaultContrast, "contrast factor (1 = unchanged)")
	blur     = flag.Float64("blur", 0, "gaussian blur sigma applied before sampling (0 = off)")
	scale    = flag.Int("scale", converter.DefaultScale, "output pixels per source pixel")
	font     = flag.String("font", converter.DefaultFontFamily, "glyph font-family")
	fg       = flag.String("fg", converter.DefaultForeground, "glyph fill color")
	bg       = flag.String("bg", converter.DefaultBackground, "background color")
)

func main() {
	log.SetFlags(0)
	log.SetPrefix("img2svg: ")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	input := flag.Arg(0)
	out := *output
	if out == "" {
		out = defaultOutput(input)
	}

	opts := converter.Options{
		Columns:    *columns,
		CellHeight: *cellH,
		Density:    *charset,
		MaxSize:    *maxSize,
		Contrast:   *contrast,
		Blur:       *blur,
		Scale:      *scale,
		FontFamily: *font,
		Foreground: *fg,
		Background: *bg,
	}
	if err := converter.Convert(input, out, opts); err != nil {
		log.Fatal(err)
	}
}

func usage() {
	w := flag.CommandLine.Output()
	fmt.Fprintf(w, "usage: img2svg [flags] input-image\n\n")
	fmt.Fprintf(w, "Converts a raster image (JPEG, PNG, BMP, TIFF, WebP) into ASCII art\nrendered as an SVG document.\n\n")
	flag.PrintDefaults()
}

// defaultOutput puts the document next to the input, swapping the
// extension for .svg.
func defaultOutput(in string) string {
	return strings.TrimSuffix(in, filepath.Ext(in)) + ".svg"
}
