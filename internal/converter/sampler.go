package converter

// Rec. 709 luma weights, the one fixed perceptual weighting the pipeline
// applies. Kept as named constants so the choice is visible in one place.
const (
	lumR = 0.2126
	lumG = 0.7152
	lumB = 0.0722
)

func luminance(r, g, b uint8) float64 {
	return lumR*float64(r) + lumG*float64(g) + lumB*float64(b)
}

// LuminanceGrid holds one brightness value in [0, 255] per sample block,
// row-major.
type LuminanceGrid struct {
	Cols, Rows int
	V          []float64
}

// At returns the luminance of the block in column c, row r.
func (lg *LuminanceGrid) At(c, r int) float64 { return lg.V[r*lg.Cols+c] }

// Sample partitions the grid into non-overlapping cellW×cellH blocks and
// averages per-pixel luminance over each block. Blocks on the right and
// bottom edges clamp to the remaining pixels, so the result always has
// ceil(W/cellW) columns and ceil(H/cellH) rows and no block is empty.
func Sample(p *PixelGrid, cellW, cellH int) *LuminanceGrid {
	cols := (p.W + cellW - 1) / cellW
	rows := (p.H + cellH - 1) / cellH
	lg := &LuminanceGrid{Cols: cols, Rows: rows, V: make([]float64, cols*rows)}
	for row := 0; row < rows; row++ {
		y0 := row * cellH
		y1 := min(y0+cellH, p.H)
		for col := 0; col < cols; col++ {
			x0 := col * cellW
			x1 := min(x0+cellW, p.W)
			sum := 0.0
			for y := y0; y < y1; y++ {
				for x := x0; x < x1; x++ {
					r, g, b := p.RGB(x, y)
					sum += luminance(r, g, b)
				}
			}
			lg.V[row*cols+col] = sum / float64((x1-x0)*(y1-y0))
		}
	}
	return lg
}
