package widgets

import (
	"image"
	"image/color"
	"sync"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"

	"github.com/chandramohan-1/mobius-strip/internal/engine"
	"github.com/chandramohan-1/mobius-strip/internal/export"
	"github.com/chandramohan-1/mobius-strip/internal/model"
)

// MeshCanvas renders the projected strip surface, resampled to the widget size.
type MeshCanvas struct {
	widget.BaseWidget

	mu       sync.RWMutex
	points   *engine.SurfacePoints
	settings model.RenderSettings
	minSize  fyne.Size
}

// NewMeshCanvas creates an empty canvas with the given minimum size.
func NewMeshCanvas(settings model.RenderSettings, minW, minH float32) *MeshCanvas {
	mc := &MeshCanvas{
		settings: settings,
		minSize:  fyne.NewSize(minW, minH),
	}
	mc.ExtendBaseWidget(mc)
	return mc
}

// SetPoints replaces the drawn surface. nil clears the canvas.
func (mc *MeshCanvas) SetPoints(pts *engine.SurfacePoints) {
	mc.mu.Lock()
	mc.points = pts
	mc.mu.Unlock()
	mc.Refresh()
}

// SetSettings replaces the render settings. Width and height are ignored in
// favour of the widget size.
func (mc *MeshCanvas) SetSettings(settings model.RenderSettings) {
	mc.mu.Lock()
	mc.settings = settings
	mc.mu.Unlock()
	mc.Refresh()
}

// Points returns the surface currently drawn, or nil.
func (mc *MeshCanvas) Points() *engine.SurfacePoints {
	mc.mu.RLock()
	defer mc.mu.RUnlock()
	return mc.points
}

// render draws the surface at w x h pixels. An empty or unrenderable surface
// yields a plain background.
func (mc *MeshCanvas) render(w, h int) image.Image {
	if w <= 0 || h <= 0 {
		return image.NewRGBA(image.Rect(0, 0, 1, 1))
	}

	mc.mu.RLock()
	pts := mc.points
	settings := mc.settings
	mc.mu.RUnlock()

	if pts != nil {
		settings.Width, settings.Height = w, h
		if img, err := export.RenderImage(pts, settings); err == nil {
			return img
		}
	}

	blank := image.NewRGBA(image.Rect(0, 0, w, h))
	bg := color.RGBA{R: 255, G: 255, B: 255, A: 255}
	for i := 0; i < len(blank.Pix); i += 4 {
		blank.Pix[i], blank.Pix[i+1], blank.Pix[i+2], blank.Pix[i+3] = bg.R, bg.G, bg.B, bg.A
	}
	return blank
}

func (mc *MeshCanvas) CreateRenderer() fyne.WidgetRenderer {
	r := &meshCanvasRenderer{mc: mc}
	r.raster = canvas.NewRaster(mc.render)
	r.border = canvas.NewRectangle(color.Transparent)
	r.border.StrokeColor = color.NRGBA{R: 100, G: 100, B: 100, A: 255}
	r.border.StrokeWidth = 1
	r.hint = canvas.NewText("Set parameters and press Compute", color.NRGBA{R: 120, G: 120, B: 120, A: 255})
	r.hint.TextSize = 11
	return r
}

type meshCanvasRenderer struct {
	mc     *MeshCanvas
	raster *canvas.Raster
	border *canvas.Rectangle
	hint   *canvas.Text
}

func (r *meshCanvasRenderer) Layout(size fyne.Size) {
	r.raster.Resize(size)
	r.border.Resize(size)
	hs := r.hint.MinSize()
	r.hint.Move(fyne.NewPos((size.Width-hs.Width)/2, (size.Height-hs.Height)/2))
}

func (r *meshCanvasRenderer) Refresh() {
	r.hint.Hidden = r.mc.Points() != nil
	r.raster.Refresh()
	r.hint.Refresh()
}

func (r *meshCanvasRenderer) MinSize() fyne.Size { return r.mc.minSize }
func (r *meshCanvasRenderer) Destroy()           {}
func (r *meshCanvasRenderer) Objects() []fyne.CanvasObject {
	return []fyne.CanvasObject{r.raster, r.border, r.hint}
}
