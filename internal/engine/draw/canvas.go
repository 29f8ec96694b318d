// Package draw defines the draw primitives the renderer emits each frame and
// the canvases that consume them.
package draw

// Canvas receives the per-frame draw calls. Coordinates are in canvas
// pixels with the origin at the top-left and y pointing down.
type Canvas interface {
	// Clear fills the whole canvas with a color.
	Clear(c Color)
	// FillRect draws a filled axis-aligned rectangle.
	FillRect(x, y, w, h float64, c Color)
	// Line draws a one pixel wide segment between two points.
	Line(x1, y1, x2, y2 float64, c Color)
	// FillCircle draws a filled circle.
	FillCircle(cx, cy, radius float64, c Color)
}

// Scaled wraps a canvas and multiplies every coordinate and length by a
// uniform factor. Used for the minimap.
type Scaled struct {
	Canvas Canvas
	Factor float64
}

// NewScaled returns a Scaled canvas.
func NewScaled(c Canvas, factor float64) *Scaled {
	return &Scaled{Canvas: c, Factor: factor}
}

// Clear forwards to the wrapped canvas.
func (s *Scaled) Clear(c Color) {
	s.Canvas.Clear(c)
}

// FillRect draws a scaled rectangle.
func (s *Scaled) FillRect(x, y, w, h float64, c Color) {
	f := s.Factor
	s.Canvas.FillRect(x*f, y*f, w*f, h*f, c)
}

// Line draws a scaled segment.
func (s *Scaled) Line(x1, y1, x2, y2 float64, c Color) {
	f := s.Factor
	s.Canvas.Line(x1*f, y1*f, x2*f, y2*f, c)
}

// FillCircle draws a scaled circle.
func (s *Scaled) FillCircle(cx, cy, radius float64, c Color) {
	f := s.Factor
	s.Canvas.FillCircle(cx*f, cy*f, radius*f, c)
}

// Call is one recorded draw call.
type Call struct {
	Op     Op
	Coords [4]float64
	Color  Color
}

// Op identifies a draw primitive.
type Op uint8

const (
	OpClear Op = iota
	OpRect
	OpLine
	OpCircle
)

// Recorder is a Canvas that stores every call, for tests and frame dumps.
type Recorder struct {
	Calls []Call
}

// Reset drops recorded calls, keeping capacity.
func (r *Recorder) Reset() {
	r.Calls = r.Calls[:0]
}

// Clear records a clear.
func (r *Recorder) Clear(c Color) {
	r.Calls = append(r.Calls, Call{Op: OpClear, Color: c})
}

// FillRect records a rectangle.
func (r *Recorder) FillRect(x, y, w, h float64, c Color) {
	r.Calls = append(r.Calls, Call{Op: OpRect, Coords: [4]float64{x, y, w, h}, Color: c})
}

// Line records a segment.
func (r *Recorder) Line(x1, y1, x2, y2 float64, c Color) {
	r.Calls = append(r.Calls, Call{Op: OpLine, Coords: [4]float64{x1, y1, x2, y2}, Color: c})
}

// FillCircle records a circle.
func (r *Recorder) FillCircle(cx, cy, radius float64, c Color) {
	r.Calls = append(r.Calls, Call{Op: OpCircle, Coords: [4]float64{cx, cy, radius}, Color: c})
}

// Count returns how many calls of op were recorded.
func (r *Recorder) Count(op Op) int {
	n := 0
	for _, c := range r.Calls {
		if c.Op == op {
			n++
		}
	}
	return n
}
