package render

import "github.com/gdamore/tcell/v2"

// Palette for the plot. Kept as RGB so rectangle fills can be alpha
// blended against the background instead of using a flat color.
var (
	rgbBackground = tcell.NewRGBColor(16, 18, 26)
	rgbGridLine   = tcell.NewRGBColor(46, 52, 70)
	rgbAxis       = tcell.NewRGBColor(104, 112, 140)
	rgbCurve      = tcell.NewRGBColor(120, 220, 130)
	rgbPoint      = tcell.NewRGBColor(235, 203, 92)
	rgbRectFill   = tcell.NewRGBColor(82, 138, 230)
	rgbRectEdge   = tcell.NewRGBColor(140, 180, 245)
	rgbText       = tcell.NewRGBColor(220, 220, 220)
	rgbTextDim    = tcell.NewRGBColor(140, 140, 150)
	rgbError      = tcell.NewRGBColor(230, 110, 110)
)

// rectAlpha is the rectangle fill opacity over whatever is already
// on the cell.
const rectAlpha = 0.35

// alphaOver blends fg over bg with the given alpha in [0, 1].
func alphaOver(fg, bg tcell.Color, alpha float64) tcell.Color {
	fr, fgc, fb := fg.RGB()
	br, bgc, bb := bg.RGB()

	blend := func(f, b int32) int32 {
		v := int32(float64(f)*alpha + float64(b)*(1-alpha))
		if v < 0 {
			return 0
		}
		if v > 255 {
			return 255
		}
		return v
	}

	return tcell.NewRGBColor(blend(fr, br), blend(fgc, bgc), blend(fb, bb))
}
