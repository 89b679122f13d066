package converter

import (
	"image"
	"log"
	"os"

	"github.com/disintegration/gift"
	"github.com/nfnt/resize"

	_ "image/jpeg"
	_ "image/png"

	// bmp, tiff and webp register themselves with image.Decode.
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
	_ "golang.org/x/image/webp"
)

// PixelGrid is a width×height grid of 8-bit RGB triples, three bytes per
// pixel, row-major. The loader materializes it from the decoded image so
// the later stages never touch an image.Image again.
type PixelGrid struct {
	W, H int
	Pix  []uint8
}

// RGB returns the channels of the pixel at (x, y).
func (p *PixelGrid) RGB(x, y int) (r, g, b uint8) {
	i := (y*p.W + x) * 3
	return p.Pix[i], p.Pix[i+1], p.Pix[i+2]
}

// Load decodes the image at path and prepares it for sampling: fit the
// longest side to opts.MaxSize, optionally blur, flatten to a PixelGrid
// and stretch contrast. The grid is not modified after Load returns.
func Load(path string, opts Options) (*PixelGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	defer f.Close()

	img, format, err := image.Decode(f)
	if err != nil {
		return nil, &DecodeError{Path: path, Err: err}
	}
	log.Printf("decoded %s image %s (%dx%d)", format, path, img.Bounds().Dx(), img.Bounds().Dy())

	img = fitLongestSide(img, opts.MaxSize)
	if opts.Blur > 0 {
		g := gift.New(gift.GaussianBlur(float32(opts.Blur)))
		dst := image.NewRGBA(g.Bounds(img.Bounds()))
		g.Draw(dst, img)
		img = dst
	}

	grid := materialize(img)
	grid.stretchContrast(opts.Contrast)
	return grid, nil
}

// fitLongestSide scales img so its longest side equals max, preserving the
// aspect ratio. Smaller images are scaled up as well. max <= 0 keeps the
// image as is.
func fitLongestSide(img image.Image, max int) image.Image {
	if max <= 0 {
		return img
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	factor := float64(max) / float64(w)
	if h > w {
		factor = float64(max) / float64(h)
	}
	nw, nh := int(float64(w)*factor), int(float64(h)*factor)
	if nw < 1 {
		nw = 1
	}
	if nh < 1 {
		nh = 1
	}
	if nw == w && nh == h {
		return img
	}
	return resize.Resize(uint(nw), uint(nh), img, resize.Lanczos3)
}

func materialize(img image.Image) *PixelGrid {
	b := img.Bounds()
	grid := &PixelGrid{W: b.Dx(), H: b.Dy(), Pix: make([]uint8, b.Dx()*b.Dy()*3)}
	i := 0
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r, g, bl, _ := img.At(x, y).RGBA()
			grid.Pix[i] = uint8(r >> 8)
			grid.Pix[i+1] = uint8(g >> 8)
			grid.Pix[i+2] = uint8(bl >> 8)
			i += 3
		}
	}
	return grid
}

// stretchContrast scales every channel away from the grid's mean luminance:
// out = mean + factor*(in - mean), clamped to [0, 255]. Factor 1 is the
// identity; solid black and solid white are fixed points at any factor.
func (p *PixelGrid) stretchContrast(factor float64) {
	if factor == 1 || len(p.Pix) == 0 {
		return
	}
	mean := p.meanLuminance()
	for i, v := range p.Pix {
		p.Pix[i] = clampChannel(mean + factor*(float64(v)-mean))
	}
}

func (p *PixelGrid) meanLuminance() float64 {
	sum := 0.0
	for i := 0; i < len(p.Pix); i += 3 {
		sum += luminance(p.Pix[i], p.Pix[i+1], p.Pix[i+2])
	}
	n := float64(len(p.Pix) / 3)
	// The anchor is a whole 8-bit luminance level.
	return float64(int(sum/n + 0.5))
}

func clampChannel(v float64) uint8 {
	if v <= 0 {
		return 0
	}
	if v >= 255 {
		return 255
	}
	return uint8(v + 0.5)
}
