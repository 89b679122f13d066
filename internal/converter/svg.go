package converter

import (
	"fmt"
	"io"

	svg "github.com/ajstarks/svgo"
)

// Geometry fixes the glyph layout for one render: every glyph occupies an
// AdvanceX×AdvanceY box and is centered in it. All values are integer
// pixels, so a given grid and geometry always produce identical bytes.
type Geometry struct {
	AdvanceX   int
	AdvanceY   int
	FontSize   int
	FontFamily string
	Foreground string
	Background string
}

// RenderSVG writes the character grid as a complete SVG document: a
// full-bleed background rect, one group carrying the shared text style,
// and one <text> element per cell. Markup-significant runes in the grid
// are escaped by the text writer.
func RenderSVG(w io.Writer, cg *CharacterGrid, geom Geometry) {
	width := cg.Cols * geom.AdvanceX
	height := cg.Rows * geom.AdvanceY

	canvas := svg.New(w)
	canvas.Start(width, height)
	canvas.Rect(0, 0, width, height, "fill:"+geom.Background)
	canvas.Gstyle(fmt.Sprintf("font-family:%s;font-size:%dpx;fill:%s;text-anchor:middle;dominant-baseline:middle",
		geom.FontFamily, geom.FontSize, geom.Foreground))
	for r := 0; r < cg.Rows; r++ {
		y := r*geom.AdvanceY + geom.AdvanceY/2
		for c := 0; c < cg.Cols; c++ {
			x := c*geom.AdvanceX + geom.AdvanceX/2
			canvas.Text(x, y, string(cg.At(c, r)))
		}
	}
	canvas.Gend()
	canvas.End()
}
