// Package ui2d draws solid 2D primitives with OpenGL. All draw calls of a
// frame are queued into one vertex batch, drawn into an offscreen target at
// canvas resolution and then scaled onto the window.
package ui2d

import (
	"fmt"
	"unsafe"

	"github.com/go-gl/gl/v4.1-core/gl"

	"github.com/Faultbox/tilecaster/internal/engine/draw"
	"github.com/Faultbox/tilecaster/internal/engine/framebuffer"
	"github.com/Faultbox/tilecaster/internal/engine/shader"
	"github.com/Faultbox/tilecaster/pkg/math"
)

// Renderer is a draw.Canvas backed by the current OpenGL context. Draw calls
// go to the embedded batch; End uploads and draws it.
type Renderer struct {
	width, height int // logical canvas size

	viewportW, viewportH int // drawable size in physical pixels

	program *shader.Program
	target  *framebuffer.Framebuffer
	vao     uint32
	vbo     uint32

	*draw.Batch
}

var _ draw.Canvas = (*Renderer)(nil)

// New creates a renderer for a logical canvas of width x height pixels.
// The GL context must be current and loaded.
func New(width, height int) (*Renderer, error) {
	if width <= 0 || height <= 0 {
		return nil, fmt.Errorf("invalid canvas size %dx%d", width, height)
	}
	r := &Renderer{
		width:     width,
		height:    height,
		viewportW: width,
		viewportH: height,
		Batch:     draw.NewBatch(64 * 1024),
	}

	var err error
	if r.program, err = shader.New(shader.SolidVertex, shader.SolidFragment); err != nil {
		return nil, fmt.Errorf("create solid shader: %w", err)
	}
	if r.target, err = framebuffer.New(int32(width), int32(height)); err != nil {
		r.program.Delete()
		return nil, fmt.Errorf("create render target: %w", err)
	}
	r.createBuffers()

	return r, nil
}

func (r *Renderer) createBuffers() {
	gl.GenVertexArrays(1, &r.vao)
	gl.BindVertexArray(r.vao)

	gl.GenBuffers(1, &r.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)

	// pos(3) + color(4)
	stride := int32(draw.FloatsPerVertex * 4)
	gl.VertexAttribPointerWithOffset(0, 3, gl.FLOAT, false, stride, 0)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointerWithOffset(1, 4, gl.FLOAT, false, stride, 3*4)
	gl.EnableVertexAttribArray(1)

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
}

// Size returns the logical canvas size.
func (r *Renderer) Size() (int, int) {
	return r.width, r.height
}

// SetViewport sets the drawable size in physical pixels.
func (r *Renderer) SetViewport(width, height int) {
	r.viewportW, r.viewportH = width, height
}

// Begin starts a new frame.
func (r *Renderer) Begin() {
	r.Reset()
}

// End draws the batch into the offscreen target and presents it
// letterboxed in the viewport.
func (r *Renderer) End() {
	r.target.Bind()
	if c, ok := r.ClearColor(); ok {
		gl.ClearColor(c.R, c.G, c.B, c.A)
		gl.Clear(gl.COLOR_BUFFER_BIT)
	}
	r.flush()
	r.target.Unbind()

	x, y, w, h := math.Letterbox(r.width, r.height, r.viewportW, r.viewportH)
	r.target.Present(int32(r.viewportW), int32(r.viewportH), int32(x), int32(y), int32(w), int32(h))
}

func (r *Renderer) flush() {
	vertices := r.Vertices()
	if len(vertices) == 0 {
		return
	}

	gl.Enable(gl.BLEND)
	gl.BlendFunc(gl.SRC_ALPHA, gl.ONE_MINUS_SRC_ALPHA)
	gl.Disable(gl.DEPTH_TEST)
	gl.Disable(gl.CULL_FACE)

	// y grows downward, like the canvas.
	proj := math.Ortho(0, float32(r.width), float32(r.height), 0, -1, 1)
	r.program.Use()
	r.program.SetMat4("uProjection", &proj)

	gl.BindVertexArray(r.vao)
	gl.BindBuffer(gl.ARRAY_BUFFER, r.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(vertices)*4, unsafe.Pointer(&vertices[0]), gl.STREAM_DRAW)
	gl.DrawArrays(gl.TRIANGLES, 0, int32(r.VertexCount()))

	gl.BindVertexArray(0)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.UseProgram(0)
}

// ReadPixels returns the last frame at canvas resolution as bottom-up RGBA
// rows, ready for debug.ScreenshotCapture.CaptureFromPixels.
func (r *Renderer) ReadPixels() ([]byte, int, int) {
	return r.target.ReadPixels(), r.width, r.height
}

// Close releases GPU resources.
func (r *Renderer) Close() {
	if r.vao != 0 {
		gl.DeleteVertexArrays(1, &r.vao)
	}
	if r.vbo != 0 {
		gl.DeleteBuffers(1, &r.vbo)
	}
	if r.target != nil {
		r.target.Destroy()
	}
	if r.program != nil {
		r.program.Delete()
	}
}
