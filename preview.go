package pocket

import (
	"image/color"
	"io"
	"os"

	"github.com/camforge/pocket/internal/render"
)

// Preview rendering colors: rings in light gray, the stitched spiral on
// top in blue.
var (
	previewBackground = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	previewRingColor  = color.RGBA{R: 190, G: 190, B: 190, A: 255}
	previewPathColor  = color.RGBA{R: 45, G: 100, B: 210, A: 255}
)

// toRenderPoints converts a kernel path to the renderer's point type.
func toRenderPoints(p Path) []render.Point {
	out := make([]render.Point, len(p))
	for i, pt := range p {
		out[i] = render.Point{X: pt.X, Y: pt.Y}
	}
	return out
}

// EncodePNG writes a raster preview of the toolpath as PNG to the given
// writer. This is useful for streaming, network output, or custom
// storage.
func (pv *Preview) EncodePNG(w io.Writer, width, height int) error {
	lines := make([]render.Polyline, 0, len(pv.Rings)+1)
	for _, ring := range pv.Rings {
		lines = append(lines, render.Polyline{
			Points: toRenderPoints(ring),
			Color:  previewRingColor,
			Width:  1,
		})
	}
	lines = append(lines, render.Polyline{
		Points: toRenderPoints(pv.Spiral),
		Color:  previewPathColor,
		Width:  2,
	})
	return render.EncodePNG(w, lines, render.Options{
		Width:      width,
		Height:     height,
		Padding:    10,
		Background: previewBackground,
	})
}

// SavePNG writes the preview to a PNG file.
func (pv *Preview) SavePNG(path string, width, height int) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()
	return pv.EncodePNG(f, width, height)
}
