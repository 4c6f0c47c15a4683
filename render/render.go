// Package render draws preview images of reference paths, sketched strokes
// and retargeted results as seen through a view.
//
// Paths are projected to the viewport, expanded into outlines with
// [curve.StrokePath] and filled with a [vector.Rasterizer].
package render

import (
	"image"
	"image/color"
	"image/draw"
	"image/png"
	"io"
	"os"

	"golang.org/x/image/vector"
	"honnef.co/go/curve"
	"honnef.co/go/sketchpath"
	"honnef.co/go/sketchpath/view"
)

// DefaultTolerance is the flattening tolerance used when Preview.Tolerance
// is zero, in pixels.
const DefaultTolerance = 0.1

// Layer is one path to draw.
type Layer struct {
	Path sketchpath.Polyline
	// Color defaults to black.
	Color color.Color
	// Width is the stroke width in pixels.
	Width float64
}

// Preview renders layers through a view. The image has the view's viewport
// size.
type Preview struct {
	View view.View
	// Background fills the image before any layer is drawn. If nil, the
	// image starts out transparent.
	Background color.Color
	Tolerance  float64
}

func (p Preview) tolerance() float64 {
	if p.Tolerance > 0 {
		return p.Tolerance
	}
	return DefaultTolerance
}

// Centerline returns the projection of pl in image coordinates, with the
// origin at the top left. Points that cannot be projected, such as points
// behind a perspective eye, break the line into separate subpaths.
func (p Preview) Centerline(pl sketchpath.Polyline) curve.BezPath {
	var out curve.BezPath
	open := false
	for _, pt := range pl {
		x, y, ok := p.View.Project(pt)
		if !ok {
			open = false
			continue
		}
		ipt := curve.Pt(x, float64(p.View.Height)-y)
		if open {
			out.LineTo(ipt)
		} else {
			out.MoveTo(ipt)
			open = true
		}
	}
	return out
}

// Outline returns the filled outline of l's stroke in image coordinates,
// flattened to lines.
func (p Preview) Outline(l Layer) curve.BezPath {
	center := p.Centerline(l.Path)
	style := curve.DefaultStroke.WithWidth(l.Width)
	stroked := curve.StrokePath(center.Elements(), style, curve.StrokeOpts{}, p.tolerance())
	var out curve.BezPath
	for el := range curve.Flatten(stroked, p.tolerance()) {
		out.Push(el)
	}
	return out
}

// Draw renders the layers in order, later layers on top.
func (p Preview) Draw(layers ...Layer) *image.RGBA {
	w, h := p.View.Width, p.View.Height
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	if p.Background != nil {
		draw.Draw(img, img.Bounds(), image.NewUniform(p.Background), image.Point{}, draw.Src)
	}
	ras := vector.NewRasterizer(w, h)
	for _, l := range layers {
		if l.Width <= 0 || len(l.Path) < 2 {
			continue
		}
		ras.Reset(w, h)
		fill(ras, p.Outline(l))
		c := l.Color
		if c == nil {
			c = color.Black
		}
		ras.Draw(img, img.Bounds(), image.NewUniform(c), image.Point{})
	}
	return img
}

func fill(ras *vector.Rasterizer, path curve.BezPath) {
	open := false
	for _, el := range path {
		switch el.Kind {
		case curve.MoveToKind:
			if open {
				ras.ClosePath()
			}
			ras.MoveTo(float32(el.P0.X), float32(el.P0.Y))
			open = true
		case curve.LineToKind:
			ras.LineTo(float32(el.P0.X), float32(el.P0.Y))
		case curve.ClosePathKind:
			ras.ClosePath()
			open = false
		}
	}
	if open {
		ras.ClosePath()
	}
}

// EncodePNG writes img to w as PNG.
func EncodePNG(w io.Writer, img image.Image) error {
	return png.Encode(w, img)
}

// WritePNG writes img to the file path as PNG.
func WritePNG(path string, img image.Image) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return EncodePNG(f, img)
}
