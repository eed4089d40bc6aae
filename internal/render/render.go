// Package render rasterizes toolpath polylines into preview images.
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/vector"
)

// Point represents a 2D point in mm (internal copy to avoid import cycle).
type Point struct {
	X, Y float64
}

// Polyline is one stroked path in the preview.
type Polyline struct {
	Points []Point
	Color  color.RGBA
	// Width is the stroke width in device pixels.
	Width float64
}

// Options controls the output image.
type Options struct {
	Width, Height int
	// Padding is the margin, in pixels, kept around the geometry.
	Padding    float64
	Background color.RGBA
}

// Image renders the polylines into an RGBA image. The geometry is scaled
// uniformly to fit the image (Y flipped, so mm Y-up maps to image Y-down)
// and centered with the configured padding.
func Image(lines []Polyline, opts Options) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, opts.Width, opts.Height))
	draw.Draw(img, img.Bounds(), image.NewUniform(opts.Background), image.Point{}, draw.Src)

	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	for _, l := range lines {
		for _, p := range l.Points {
			minX = math.Min(minX, p.X)
			minY = math.Min(minY, p.Y)
			maxX = math.Max(maxX, p.X)
			maxY = math.Max(maxY, p.Y)
		}
	}
	if minX > maxX || minY > maxY {
		return img
	}

	spanX := maxX - minX
	spanY := maxY - minY
	availX := float64(opts.Width) - 2*opts.Padding
	availY := float64(opts.Height) - 2*opts.Padding
	scale := 1.0
	if spanX > 0 || spanY > 0 {
		scale = math.Min(safeDiv(availX, spanX), safeDiv(availY, spanY))
	}

	// Center the geometry in the image.
	offX := (float64(opts.Width) - spanX*scale) / 2
	offY := (float64(opts.Height) - spanY*scale) / 2

	toPixel := func(p Point) (float32, float32) {
		x := (p.X-minX)*scale + offX
		y := float64(opts.Height) - ((p.Y-minY)*scale + offY)
		return float32(x), float32(y)
	}

	for _, l := range lines {
		strokePolyline(img, l, toPixel)
	}
	return img
}

// safeDiv returns a/b, or +Inf when b is zero, so degenerate spans never
// poison the fit scale.
func safeDiv(a, b float64) float64 {
	if b == 0 {
		return math.Inf(1)
	}
	return a / b
}

// strokePolyline draws one polyline as a sequence of filled segment quads
// using the x/image vector rasterizer.
func strokePolyline(img *image.RGBA, l Polyline, toPixel func(Point) (float32, float32)) {
	if len(l.Points) < 2 {
		return
	}
	width := l.Width
	if width <= 0 {
		width = 1
	}
	half := float32(width / 2)

	ras := vector.NewRasterizer(img.Bounds().Dx(), img.Bounds().Dy())
	for i := 0; i < len(l.Points)-1; i++ {
		x0, y0 := toPixel(l.Points[i])
		x1, y1 := toPixel(l.Points[i+1])

		dx := x1 - x0
		dy := y1 - y0
		length := float32(math.Hypot(float64(dx), float64(dy)))
		if length == 0 {
			continue
		}
		// Unit normal, scaled to half the stroke width.
		nx := -dy / length * half
		ny := dx / length * half

		ras.MoveTo(x0+nx, y0+ny)
		ras.LineTo(x1+nx, y1+ny)
		ras.LineTo(x1-nx, y1-ny)
		ras.LineTo(x0-nx, y0-ny)
		ras.ClosePath()
	}
	ras.Draw(img, img.Bounds(), image.NewUniform(l.Color), image.Point{})
}

// EncodePNG renders the polylines and writes the result as PNG.
func EncodePNG(w io.Writer, lines []Polyline, opts Options) error {
	return png.Encode(w, Image(lines, opts))
}
