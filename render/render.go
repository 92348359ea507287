// Package render redraws the whole frame from current state: unit
// grid, curve trace, approximation rectangles, area readout and the
// status/prompt strips. It consumes session state and approximator
// output but never mutates either; there is no drawing state carried
// between frames.
package render

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/riemann-tutor/curves"
	"github.com/lixenwraith/riemann-tutor/engine"
	"github.com/lixenwraith/riemann-tutor/grid"
	"github.com/lixenwraith/riemann-tutor/riemann"
)

// Renderer paints frames onto a tcell screen. The plot area maps the
// mapper's pixel window [0,500]² onto the terminal cells above the
// two reserved bottom rows (prompt strip and status bar).
type Renderer struct {
	screen     tcell.Screen
	sampleStep float64

	width, height int
	plotW, plotH  int
}

// New creates a renderer. sampleStep is the domain-x increment used
// to trace analytic curves.
func New(screen tcell.Screen, sampleStep float64) *Renderer {
	r := &Renderer{screen: screen, sampleStep: sampleStep}
	r.Resize()
	return r
}

// Resize re-reads the screen size and recomputes the plot area.
// Called on terminal resize events.
func (r *Renderer) Resize() {
	r.width, r.height = r.screen.Size()
	r.plotW = r.width
	r.plotH = r.height - 2
	if r.plotH < 1 {
		r.plotH = 1
	}
}

// cell maps a pixel-space coordinate onto a plot cell.
func (r *Renderer) cell(px, py float64) (int, int) {
	cx := int(px/grid.PixelSpan*float64(r.plotW-1) + 0.5)
	cy := int(py/grid.PixelSpan*float64(r.plotH-1) + 0.5)
	return cx, cy
}

func (r *Renderer) inPlot(cx, cy int) bool {
	return cx >= 0 && cx < r.plotW && cy >= 0 && cy < r.plotH
}

// Frame redraws everything in order: background grid, curve trace,
// rectangles, readout, then the status and prompt strips.
func (r *Renderer) Frame(sess *engine.Session, approx riemann.Approximation, promptLabel, promptEcho string, promptActive bool) {
	r.screen.Clear()
	base := tcell.StyleDefault.Background(rgbBackground)
	r.screen.Fill(' ', base)

	r.drawGrid(base)
	r.drawCurve(sess, base)
	r.drawRectangles(approx)
	r.drawReadout(sess, approx, base)
	r.drawStatusBar(sess, base)
	r.drawPrompt(promptLabel, promptEcho, promptActive, base)

	r.screen.Show()
}

// drawGrid draws a line per domain unit, with the window edges in the
// brighter axis color.
func (r *Renderer) drawGrid(base tcell.Style) {
	gridStyle := base.Foreground(rgbGridLine)
	axisStyle := base.Foreground(rgbAxis)
	labelStyle := base.Foreground(rgbTextDim)

	for u := 0.0; u <= grid.Units; u++ {
		style := gridStyle
		if u == 0 || u == grid.Units {
			style = axisStyle
		}

		// Horizontal line at domain y = u.
		_, py := grid.ToPixel(0, u)
		_, cy := r.cell(0, py)
		for cx := 0; cx < r.plotW; cx++ {
			if r.inPlot(cx, cy) {
				r.screen.SetContent(cx, cy, '─', nil, style)
			}
		}

		// Vertical line at domain x = u.
		px, _ := grid.ToPixel(u, 0)
		cx, _ := r.cell(px, 0)
		for cy := 0; cy < r.plotH; cy++ {
			if r.inPlot(cx, cy) {
				r.screen.SetContent(cx, cy, '│', nil, style)
			}
		}
	}

	// Unit labels along the bottom edge.
	_, basePy := grid.ToPixel(0, 0)
	_, baseCy := r.cell(0, basePy)
	for u := 1.0; u < grid.Units; u++ {
		px, _ := grid.ToPixel(u, 0)
		cx, _ := r.cell(px, 0)
		if r.inPlot(cx, baseCy) {
			r.screen.SetContent(cx, baseCy, rune('0'+int(u)), nil, labelStyle)
		}
	}
}

// drawCurve traces the active curve by sampling across the window,
// clipping anything outside it. While custom entry is in progress the
// collected points are shown as markers instead.
func (r *Renderer) drawCurve(sess *engine.Session, base tcell.Style) {
	if sess.Entering {
		r.drawPointMarkers(sess.Collector.Points(), base)
		return
	}
	if sess.Curve == nil {
		return
	}

	curveStyle := base.Foreground(rgbCurve)
	for x := 0.0; x <= grid.Units; x += r.sampleStep {
		y, err := sess.Curve.Evaluate(x)
		if err != nil {
			// Outside a piecewise range; nothing to trace here.
			continue
		}
		if y < 0 || y > grid.Units {
			continue
		}
		cx, cy := r.cell(grid.ToPixel(x, y))
		if r.inPlot(cx, cy) {
			r.screen.SetContent(cx, cy, '•', nil, curveStyle)
		}
	}

	if pw, ok := sess.Curve.(*curves.Piecewise); ok {
		r.drawPointMarkers(pw.Points(), base)
	}
}

func (r *Renderer) drawPointMarkers(points []curves.Point, base tcell.Style) {
	style := base.Foreground(rgbPoint)
	for _, p := range points {
		cx, cy := r.cell(grid.ToPixel(p.X, p.Y))
		if r.inPlot(cx, cy) {
			r.screen.SetContent(cx, cy, '+', nil, style)
		}
	}
}

// drawRectangles fills each slab with a translucent blend over what
// is already on the cell, then strokes the sampled-height edge.
func (r *Renderer) drawRectangles(approx riemann.Approximation) {
	for _, rect := range approx.Rectangles {
		lo, hi := 0.0, rect.Height
		if hi < lo {
			lo, hi = hi, lo
		}

		leftPx, topPy := grid.ToPixel(rect.X0, hi)
		rightPx, basePy := grid.ToPixel(rect.X0+rect.Width, lo)
		cx0, cyTop := r.cell(leftPx, topPy)
		cx1, cyBase := r.cell(rightPx, basePy)

		for cy := cyTop; cy <= cyBase; cy++ {
			for cx := cx0; cx <= cx1; cx++ {
				if !r.inPlot(cx, cy) {
					continue
				}
				r.blendCell(cx, cy)
			}
		}

		// Stroke the top edge at the sampled height.
		edgeStyle := tcell.StyleDefault.Background(rgbBackground).Foreground(rgbRectEdge)
		edgePx, edgePy := grid.ToPixel(rect.X0, rect.Height)
		ex0, ey := r.cell(edgePx, edgePy)
		edgePx2, _ := grid.ToPixel(rect.X0+rect.Width, rect.Height)
		ex1, _ := r.cell(edgePx2, edgePy)
		for cx := ex0; cx <= ex1; cx++ {
			if r.inPlot(cx, ey) {
				r.screen.SetContent(cx, ey, '─', nil, edgeStyle)
			}
		}
	}
}

// blendCell composites the rectangle fill over the cell's current
// background, keeping whatever glyph is already there.
func (r *Renderer) blendCell(cx, cy int) {
	ch, comb, style, _ := r.screen.GetContent(cx, cy)
	_, bg, _ := style.Decompose()
	r.screen.SetContent(cx, cy, ch, comb, style.Background(alphaOver(rgbRectFill, bg, rectAlpha)))
}

// drawReadout paints the area estimate inside the plot.
func (r *Renderer) drawReadout(sess *engine.Session, approx riemann.Approximation, base tcell.Style) {
	text := fmt.Sprintf(" area ≈ %.4f ", approx.Area)
	r.drawText(1, 0, text, base.Foreground(rgbText).Bold(true))

	if sess.Entering {
		r.drawText(1, 1, fmt.Sprintf(" %d/%d points ", sess.Collector.Len(), curves.MaxPoints),
			base.Foreground(rgbTextDim))
	}
}

// drawStatusBar paints the bottom row: current state on the left,
// key help on the right, transient messages in between.
func (r *Renderer) drawStatusBar(sess *engine.Session, base tcell.Style) {
	y := r.height - 1
	style := base.Foreground(rgbTextDim)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	left := fmt.Sprintf(" curve:%s  N:%d  rule:%s", sess.Kind, sess.Count, sess.Rule)
	r.drawTextRow(0, y, left, base.Foreground(rgbText))

	if sess.Status != "" {
		r.drawTextRow(len(left)+2, y, sess.Status, base.Foreground(rgbError))
	}

	help := "1 linear  2 quad  3 custom  n count  r rule  c clear  q quit "
	if x := r.width - len(help); x > len(left)+2 {
		r.drawTextRow(x, y, help, style)
	}
}

// drawPrompt paints the prompt strip above the status bar with a
// block cursor after the echoed text.
func (r *Renderer) drawPrompt(label, echo string, active bool, base tcell.Style) {
	if !active {
		return
	}
	y := r.height - 2
	style := base.Foreground(rgbText)
	for x := 0; x < r.width; x++ {
		r.screen.SetContent(x, y, ' ', nil, style)
	}

	text := " " + label + echo
	r.drawTextRow(0, y, text, style)
	if cx := len(text); cx < r.width {
		r.screen.SetContent(cx, y, ' ', nil, style.Reverse(true))
	}
}

// drawText writes into the plot area with clipping.
func (r *Renderer) drawText(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		if r.inPlot(x+i, y) {
			r.screen.SetContent(x+i, y, ch, nil, style)
		}
	}
}

// drawTextRow writes onto an absolute screen row with clipping.
func (r *Renderer) drawTextRow(x, y int, text string, style tcell.Style) {
	for i, ch := range []rune(text) {
		if x+i >= 0 && x+i < r.width && y >= 0 && y < r.height {
			r.screen.SetContent(x+i, y, ch, nil, style)
		}
	}
}
