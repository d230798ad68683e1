package widgets

import (
	"fmt"
	"image/color"
	"math"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/chandramohan-1/mobius-strip/internal/engine"
)

var (
	colorArea   = color.NRGBA{R: 33, G: 145, B: 140, A: 230} // viridis teal
	colorLength = color.NRGBA{R: 253, G: 231, B: 37, A: 255} // viridis yellow
	colorAxis   = color.NRGBA{R: 80, G: 80, B: 80, A: 255}
	colorText   = color.NRGBA{R: 60, G: 60, B: 60, A: 255}
)

// ConvergencePlot draws surface area and edge length against resolution on a
// logarithmic resolution axis, each series normalised to its own range.
type ConvergencePlot struct {
	widget.BaseWidget
	results   []engine.ConvergenceResult
	maxWidth  float32
	maxHeight float32
}

// NewConvergencePlot creates a plot of results sized maxW x maxH.
func NewConvergencePlot(results []engine.ConvergenceResult, maxW, maxH float32) *ConvergencePlot {
	cp := &ConvergencePlot{
		results:   results,
		maxWidth:  maxW,
		maxHeight: maxH,
	}
	cp.ExtendBaseWidget(cp)
	return cp
}

// CreateRenderer implements fyne.Widget.
func (cp *ConvergencePlot) CreateRenderer() fyne.WidgetRenderer {
	r := &convergencePlotRenderer{cp: cp}
	r.rebuild()
	return r
}

// plotPosition maps a result index to plot coordinates inside a w x h box.
// x follows log(resolution); y follows value normalised between lo and hi,
// with larger values drawn higher.
func plotPosition(results []engine.ConvergenceResult, i int, value, lo, hi float64, w, h float32) fyne.Position {
	first := math.Log(float64(results[0].Shape.Resolution))
	last := math.Log(float64(results[len(results)-1].Shape.Resolution))

	fx := 0.5
	if last > first {
		fx = (math.Log(float64(results[i].Shape.Resolution)) - first) / (last - first)
	}
	fy := 0.5
	if hi > lo {
		fy = (value - lo) / (hi - lo)
	}
	return fyne.NewPos(float32(fx)*w, (1-float32(fy))*h)
}

func seriesRange(results []engine.ConvergenceResult, pick func(engine.ConvergenceResult) float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, r := range results {
		v := pick(r)
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	return lo, hi
}

type convergencePlotRenderer struct {
	cp      *ConvergencePlot
	objects []fyne.CanvasObject
}

func (r *convergencePlotRenderer) rebuild() {
	r.objects = nil
	results := r.cp.results
	if len(results) == 0 {
		return
	}

	const margin = float32(30)
	w := r.cp.maxWidth - 2*margin
	h := r.cp.maxHeight - 2*margin
	if w <= 0 || h <= 0 {
		return
	}
	origin := fyne.NewPos(margin, margin)

	xAxis := canvas.NewLine(colorAxis)
	xAxis.Position1 = fyne.NewPos(margin, margin+h)
	xAxis.Position2 = fyne.NewPos(margin+w, margin+h)
	yAxis := canvas.NewLine(colorAxis)
	yAxis.Position1 = origin
	yAxis.Position2 = fyne.NewPos(margin, margin+h)
	r.objects = append(r.objects, xAxis, yAxis)

	r.drawSeries(results, func(c engine.ConvergenceResult) float64 { return c.SurfaceArea }, colorArea, origin, w, h)
	r.drawSeries(results, func(c engine.ConvergenceResult) float64 { return c.EdgeLength }, colorLength, origin, w, h)

	for i, res := range results {
		p := plotPosition(results, i, 0, 0, 0, w, h)
		label := canvas.NewText(fmt.Sprintf("n=%d", res.Shape.Resolution), colorText)
		label.TextSize = 9
		label.Move(fyne.NewPos(origin.X+p.X-10, margin+h+4))
		r.objects = append(r.objects, label)
	}

	legend := canvas.NewText("area", colorArea)
	legend.TextSize = 10
	legend.Move(fyne.NewPos(margin+4, 4))
	legend2 := canvas.NewText("edge length", colorLength)
	legend2.TextSize = 10
	legend2.Move(fyne.NewPos(margin+44, 4))
	r.objects = append(r.objects, legend, legend2)
}

func (r *convergencePlotRenderer) drawSeries(results []engine.ConvergenceResult, pick func(engine.ConvergenceResult) float64, col color.Color, origin fyne.Position, w, h float32) {
	lo, hi := seriesRange(results, pick)
	var prev fyne.Position
	for i, res := range results {
		p := plotPosition(results, i, pick(res), lo, hi, w, h).Add(origin)
		if i > 0 {
			line := canvas.NewLine(col)
			line.StrokeWidth = 2
			line.Position1 = prev
			line.Position2 = p
			r.objects = append(r.objects, line)
		}
		marker := canvas.NewCircle(col)
		const markerSize = float32(6)
		marker.Resize(fyne.NewSize(markerSize, markerSize))
		marker.Move(fyne.NewPos(p.X-markerSize/2, p.Y-markerSize/2))
		r.objects = append(r.objects, marker)
		prev = p
	}
}

func (r *convergencePlotRenderer) Layout(size fyne.Size) {}
func (r *convergencePlotRenderer) Refresh()              { r.rebuild() }
func (r *convergencePlotRenderer) Destroy()              {}
func (r *convergencePlotRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}
func (r *convergencePlotRenderer) MinSize() fyne.Size {
	return fyne.NewSize(r.cp.maxWidth, r.cp.maxHeight)
}
