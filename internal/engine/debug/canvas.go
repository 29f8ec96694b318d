// Package debug provides debug visualization utilities: a software canvas
// that rasterizes frames into an image, and PNG screenshot capture.
package debug

import (
	"image"
	"image/color"
	imagedraw "image/draw"
	"math"

	"golang.org/x/image/vector"

	"github.com/Faultbox/tilecaster/internal/engine/draw"
)

// circleSegments is the polygon resolution used for filled circles.
const circleSegments = 24

// Canvas rasterizes draw calls into an RGBA image. It implements
// draw.Canvas and is used for headless renders and tests.
type Canvas struct {
	img *image.RGBA
	z   *vector.Rasterizer
}

// NewCanvas creates a canvas of the given pixel size.
func NewCanvas(width, height int) *Canvas {
	return &Canvas{
		img: image.NewRGBA(image.Rect(0, 0, width, height)),
		z:   vector.NewRasterizer(width, height),
	}
}

// Image returns the backing image.
func (c *Canvas) Image() *image.RGBA {
	return c.img
}

// Clear fills the whole image.
func (c *Canvas) Clear(col draw.Color) {
	imagedraw.Draw(c.img, c.img.Bounds(), image.NewUniform(toNRGBA(col)), image.Point{}, imagedraw.Src)
}

// FillRect draws a filled rectangle clipped to the image.
func (c *Canvas) FillRect(x, y, w, h float64, col draw.Color) {
	bw, bh := c.size()
	x0, y0 := clamp(x, 0, bw), clamp(y, 0, bh)
	x1, y1 := clamp(x+w, 0, bw), clamp(y+h, 0, bh)
	if x1 <= x0 || y1 <= y0 {
		return
	}

	c.begin()
	c.z.MoveTo(float32(x0), float32(y0))
	c.z.LineTo(float32(x1), float32(y0))
	c.z.LineTo(float32(x1), float32(y1))
	c.z.LineTo(float32(x0), float32(y1))
	c.z.ClosePath()
	c.fill(col)
}

// Line draws a one pixel wide segment as a thin quad.
func (c *Canvas) Line(x1, y1, x2, y2 float64, col draw.Color) {
	bw, bh := c.size()
	var ok bool
	if x1, y1, x2, y2, ok = clipSegment(x1, y1, x2, y2, -1, -1, bw+1, bh+1); !ok {
		return
	}

	dx, dy := x2-x1, y2-y1
	length := math.Hypot(dx, dy)
	if length == 0 {
		c.FillRect(x1-0.5, y1-0.5, 1, 1, col)
		return
	}
	// Half-pixel offset perpendicular to the segment.
	nx, ny := -dy/length*0.5, dx/length*0.5

	c.begin()
	c.z.MoveTo(float32(x1+nx), float32(y1+ny))
	c.z.LineTo(float32(x2+nx), float32(y2+ny))
	c.z.LineTo(float32(x2-nx), float32(y2-ny))
	c.z.LineTo(float32(x1-nx), float32(y1-ny))
	c.z.ClosePath()
	c.fill(col)
}

// FillCircle draws a filled circle approximated by a polygon.
func (c *Canvas) FillCircle(cx, cy, radius float64, col draw.Color) {
	bw, bh := c.size()
	if radius <= 0 || cx+radius < 0 || cy+radius < 0 || cx-radius > bw || cy-radius > bh {
		return
	}

	c.begin()
	for i := 0; i < circleSegments; i++ {
		a := float64(i) * 2 * math.Pi / circleSegments
		px := float32(clamp(cx+radius*math.Cos(a), -1, bw+1))
		py := float32(clamp(cy+radius*math.Sin(a), -1, bh+1))
		if i == 0 {
			c.z.MoveTo(px, py)
		} else {
			c.z.LineTo(px, py)
		}
	}
	c.z.ClosePath()
	c.fill(col)
}

func (c *Canvas) size() (float64, float64) {
	b := c.img.Bounds()
	return float64(b.Dx()), float64(b.Dy())
}

func (c *Canvas) begin() {
	b := c.img.Bounds()
	c.z.Reset(b.Dx(), b.Dy())
	c.z.DrawOp = imagedraw.Over
}

func (c *Canvas) fill(col draw.Color) {
	c.z.Draw(c.img, c.img.Bounds(), image.NewUniform(toNRGBA(col)), image.Point{})
}

func toNRGBA(c draw.Color) color.NRGBA {
	r, g, b, a := c.Bytes()
	return color.NRGBA{R: r, G: g, B: b, A: a}
}

func clamp(v, lo, hi float64) float64 {
	switch {
	case math.IsNaN(v):
		return lo
	case v < lo:
		return lo
	case v > hi:
		return hi
	}
	return v
}

// clipSegment clips a segment to the rectangle [minX, maxX] x [minY, maxY]
// (Liang-Barsky). ok is false when nothing remains.
func clipSegment(x1, y1, x2, y2, minX, minY, maxX, maxY float64) (float64, float64, float64, float64, bool) {
	dx, dy := x2-x1, y2-y1
	t0, t1 := 0.0, 1.0

	edges := [4][2]float64{
		{-dx, x1 - minX},
		{dx, maxX - x1},
		{-dy, y1 - minY},
		{dy, maxY - y1},
	}
	for _, e := range edges {
		p, q := e[0], e[1]
		if p == 0 {
			if q < 0 {
				return 0, 0, 0, 0, false
			}
			continue
		}
		r := q / p
		if p < 0 {
			if r > t1 {
				return 0, 0, 0, 0, false
			}
			if r > t0 {
				t0 = r
			}
		} else {
			if r < t0 {
				return 0, 0, 0, 0, false
			}
			if r < t1 {
				t1 = r
			}
		}
	}
	return x1 + t0*dx, y1 + t0*dy, x1 + t1*dx, y1 + t1*dy, true
}
