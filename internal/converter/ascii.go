package converter

// DefaultDensity orders the glyph palette brightest to darkest. The three
// trailing spaces widen the darkest band.
const DefaultDensity = "Ñ@#W$9876543210?!abc;:+=-,.   "

// CharacterGrid holds one density rune per sample block, row-major, with
// the same dimensions as the LuminanceGrid it was mapped from.
type CharacterGrid struct {
	Cols, Rows int
	Cells      []rune
}

// At returns the rune of the cell in column c, row r.
func (cg *CharacterGrid) At(c, r int) rune { return cg.Cells[r*cg.Cols+c] }

// charIndex picks the density index for one luminance value. The palette
// runs bright to dark, so high luminance lands near the front: 255 maps to
// index 0 and 0 maps to the last index.
func charIndex(l float64, n int) int {
	idx := n - 1 - int(l*float64(n)/256)
	if idx < 0 {
		idx = 0
	} else if idx >= n {
		idx = n - 1
	}
	return idx
}

// MapLuminance converts every sample to a rune from density. Each cell is
// mapped independently; equal luminance always yields equal runes.
func MapLuminance(lg *LuminanceGrid, density []rune) *CharacterGrid {
	cg := &CharacterGrid{Cols: lg.Cols, Rows: lg.Rows, Cells: make([]rune, len(lg.V))}
	n := len(density)
	for i, l := range lg.V {
		cg.Cells[i] = density[charIndex(l, n)]
	}
	return cg
}
