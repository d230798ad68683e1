package export

import (
	"fmt"
	"image"
	"image/draw"
	"io"

	"github.com/gogpu/gg"

	"github.com/chandramohan-1/mobius-strip/internal/engine"
	"github.com/chandramohan-1/mobius-strip/internal/model"
)

// Faces per direction drawn by the raster renderer before the mesh is coarsened.
const pngTargetCells = 160

// RenderPNG draws the surface as a shaded mesh and writes it to path.
func RenderPNG(path string, pts *engine.SurfacePoints, settings model.RenderSettings) error {
	dc, err := drawSurface(pts, settings)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.SavePNG(path); err != nil {
		return fmt.Errorf("failed to write PNG %s: %w", path, err)
	}
	return nil
}

// EncodePNG draws the surface as a shaded mesh and streams the PNG to w.
func EncodePNG(w io.Writer, pts *engine.SurfacePoints, settings model.RenderSettings) error {
	dc, err := drawSurface(pts, settings)
	if err != nil {
		return err
	}
	defer dc.Close()

	if err := dc.EncodePNG(w); err != nil {
		return fmt.Errorf("failed to encode PNG: %w", err)
	}
	return nil
}

// RenderImage draws the surface into an in-memory image of the configured
// size, for on-screen display.
func RenderImage(pts *engine.SurfacePoints, settings model.RenderSettings) (*image.RGBA, error) {
	dc, err := drawSurface(pts, settings)
	if err != nil {
		return nil, err
	}
	defer dc.Close()

	src := dc.Image()
	img := image.NewRGBA(src.Bounds())
	draw.Draw(img, img.Bounds(), src, src.Bounds().Min, draw.Src)
	return img, nil
}

func drawSurface(pts *engine.SurfacePoints, settings model.RenderSettings) (*gg.Context, error) {
	if pts == nil || pts.X.Rows() < 2 || pts.X.Cols() < 2 {
		return nil, fmt.Errorf("no surface points to render")
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	cmap, err := ColormapByName(settings.Colormap)
	if err != nil {
		return nil, err
	}

	stride := settings.Stride(pts.X.Cols(), pngTargetCells)
	scene := BuildScene(pts, NewProjector(settings.Elevation, settings.Azimuth), stride)
	vp := scene.Fit(0, 0, float64(settings.Width), float64(settings.Height), 0.08*float64(min(settings.Width, settings.Height)))

	dc := gg.NewContext(settings.Width, settings.Height)
	dc.ClearWithColor(gg.RGB(1, 1, 1))

	dc.SetLineWidth(0.4)
	for _, f := range scene.Faces {
		c := cmap(f.Level)
		for k, corner := range f.Corners {
			x, y := vp.Map(corner)
			if k == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		dc.ClosePath()
		dc.SetRGBA(float64(c.R)/255, float64(c.G)/255, float64(c.B)/255, settings.Alpha)
		if err := dc.FillPreserve(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("failed to fill face: %w", err)
		}
		// Thin darker outline keeps the mesh readable at full opacity.
		dc.SetRGBA(float64(c.R)/510, float64(c.G)/510, float64(c.B)/510, settings.Alpha*0.6)
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("failed to stroke face: %w", err)
		}
	}

	dc.SetRGB(0.1, 0.1, 0.1)
	dc.SetLineWidth(1.5)
	for _, edge := range scene.Edges {
		for j, p := range edge {
			x, y := vp.Map(p)
			if j == 0 {
				dc.MoveTo(x, y)
			} else {
				dc.LineTo(x, y)
			}
		}
		if err := dc.Stroke(); err != nil {
			dc.Close()
			return nil, fmt.Errorf("failed to stroke boundary: %w", err)
		}
	}
	return dc, nil
}
