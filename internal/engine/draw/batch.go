package draw

import "math"

// FloatsPerVertex is the Batch vertex layout: x, y, z, r, g, b, a.
const FloatsPerVertex = 7

// circleSegments is the triangle count of a filled circle.
const circleSegments = 24

// Batch is a Canvas that tessellates every call into solid triangles,
// ready for a single GPU draw call.
type Batch struct {
	vertices []float32
	clear    Color
	cleared  bool
}

var _ Canvas = (*Batch)(nil)

// NewBatch returns a batch with room for capacity floats.
func NewBatch(capacity int) *Batch {
	return &Batch{vertices: make([]float32, 0, capacity)}
}

// Reset drops all queued triangles and any pending clear.
func (b *Batch) Reset() {
	b.vertices = b.vertices[:0]
	b.cleared = false
}

// Vertices returns the raw vertex data.
func (b *Batch) Vertices() []float32 {
	return b.vertices
}

// VertexCount returns the number of queued vertices.
func (b *Batch) VertexCount() int {
	return len(b.vertices) / FloatsPerVertex
}

// ClearColor reports the color of the last Clear since Reset.
func (b *Batch) ClearColor() (Color, bool) {
	return b.clear, b.cleared
}

// Clear discards queued triangles; everything drawn so far is covered.
func (b *Batch) Clear(c Color) {
	b.vertices = b.vertices[:0]
	b.clear = c
	b.cleared = true
}

// FillRect queues a rectangle as two triangles.
func (b *Batch) FillRect(x, y, w, h float64, c Color) {
	b.quad(float32(x), float32(y), float32(w), float32(h), c)
}

// Line queues a one pixel wide segment as a rotated quad.
func (b *Batch) Line(x1, y1, x2, y2 float64, c Color) {
	b.segment(float32(x1), float32(y1), float32(x2), float32(y2), 1, c)
}

// FillCircle queues a triangle fan.
func (b *Batch) FillCircle(cx, cy, radius float64, c Color) {
	if radius <= 0 || c.A <= 0 {
		return
	}
	x0, y0, r := float32(cx), float32(cy), float32(radius)
	step := 2 * math.Pi / circleSegments
	px, py := x0+r, y0
	for i := 1; i <= circleSegments; i++ {
		a := step * float64(i)
		x := x0 + r*float32(math.Cos(a))
		y := y0 + r*float32(math.Sin(a))
		b.triangle(x0, y0, px, py, x, y, c)
		px, py = x, y
	}
}

func (b *Batch) vertex(x, y float32, c Color) {
	b.vertices = append(b.vertices, x, y, 0, c.R, c.G, c.B, c.A)
}

func (b *Batch) triangle(x1, y1, x2, y2, x3, y3 float32, c Color) {
	b.vertex(x1, y1, c)
	b.vertex(x2, y2, c)
	b.vertex(x3, y3, c)
}

func (b *Batch) quad(x, y, w, h float32, c Color) {
	if w <= 0 || h <= 0 || c.A <= 0 {
		return
	}
	b.triangle(x, y, x+w, y, x+w, y+h, c)
	b.triangle(x, y, x+w, y+h, x, y+h, c)
}

func (b *Batch) segment(x1, y1, x2, y2, width float32, c Color) {
	if c.A <= 0 {
		return
	}
	dx, dy := x2-x1, y2-y1
	length := float32(math.Hypot(float64(dx), float64(dy)))
	if length == 0 {
		b.quad(x1-width/2, y1-width/2, width, width, c)
		return
	}
	// Half-width normal.
	nx, ny := -dy/length*width/2, dx/length*width/2
	b.triangle(x1+nx, y1+ny, x2+nx, y2+ny, x2-nx, y2-ny, c)
	b.triangle(x1+nx, y1+ny, x2-nx, y2-ny, x1-nx, y1-ny, c)
}
