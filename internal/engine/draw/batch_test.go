package draw

import (
	"math"
	"testing"
)

func TestBatchFillRect(t *testing.T) {
	b := NewBatch(0)
	b.FillRect(10, 20, 30, 40, ColorRed)

	if got := b.VertexCount(); got != 6 {
		t.Fatalf("expected 6 vertices, got %d", got)
	}
	v := b.Vertices()
	// First vertex is the top-left corner with the color attached.
	want := []float32{10, 20, 0, 1, 0, 0, 1}
	for i, w := range want {
		if v[i] != w {
			t.Errorf("vertex[0][%d] = %v, want %v", i, v[i], w)
		}
	}
	// Third vertex is the bottom-right corner.
	if x, y := v[2*FloatsPerVertex], v[2*FloatsPerVertex+1]; x != 40 || y != 60 {
		t.Errorf("third vertex at (%v, %v), want (40, 60)", x, y)
	}
}

func TestBatchSkipsInvisible(t *testing.T) {
	b := NewBatch(0)
	b.FillRect(0, 0, 0, 10, ColorWhite)
	b.FillRect(0, 0, 10, -1, ColorWhite)
	b.FillRect(0, 0, 10, 10, ColorTransparent)
	b.FillCircle(5, 5, 0, ColorWhite)
	b.Line(0, 0, 10, 10, ColorTransparent)

	if got := b.VertexCount(); got != 0 {
		t.Errorf("expected no vertices, got %d", got)
	}
}

func TestBatchLineWidth(t *testing.T) {
	b := NewBatch(0)
	b.Line(0, 5, 10, 5, ColorWhite)

	if got := b.VertexCount(); got != 6 {
		t.Fatalf("expected 6 vertices, got %d", got)
	}
	v := b.Vertices()
	minY, maxY := float32(math.Inf(1)), float32(math.Inf(-1))
	for i := 0; i < len(v); i += FloatsPerVertex {
		y := v[i+1]
		if y < minY {
			minY = y
		}
		if y > maxY {
			maxY = y
		}
	}
	if minY != 4.5 || maxY != 5.5 {
		t.Errorf("horizontal line spans y [%v, %v], want [4.5, 5.5]", minY, maxY)
	}
}

func TestBatchDegenerateLine(t *testing.T) {
	b := NewBatch(0)
	b.Line(3, 3, 3, 3, ColorWhite)
	if got := b.VertexCount(); got != 6 {
		t.Errorf("zero-length line should draw a dot, got %d vertices", got)
	}
}

func TestBatchCircle(t *testing.T) {
	b := NewBatch(0)
	b.FillCircle(50, 50, 10, ColorBlue)

	if got := b.VertexCount(); got != circleSegments*3 {
		t.Fatalf("expected %d vertices, got %d", circleSegments*3, got)
	}
	v := b.Vertices()
	for i := 0; i < len(v); i += FloatsPerVertex {
		d := math.Hypot(float64(v[i]-50), float64(v[i+1]-50))
		if d > 10.001 {
			t.Errorf("vertex %d lies %v from the center", i/FloatsPerVertex, d)
		}
	}
}

func TestBatchClear(t *testing.T) {
	b := NewBatch(0)
	if _, ok := b.ClearColor(); ok {
		t.Error("fresh batch should have no pending clear")
	}

	b.FillRect(0, 0, 1, 1, ColorWhite)
	b.Clear(ColorBackdrop)
	if got := b.VertexCount(); got != 0 {
		t.Errorf("clear should discard queued vertices, got %d", got)
	}
	if c, ok := b.ClearColor(); !ok || c != ColorBackdrop {
		t.Errorf("ClearColor = %v, %v; want backdrop", c, ok)
	}

	b.FillRect(0, 0, 1, 1, ColorWhite)
	b.Reset()
	if _, ok := b.ClearColor(); ok || b.VertexCount() != 0 {
		t.Error("Reset should drop vertices and the pending clear")
	}
}
