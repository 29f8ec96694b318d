// Package term shows frames in a terminal through tcell, two pixels per
// cell using the upper half block.
package term

import (
	"image"
	"image/color"

	"github.com/gdamore/tcell/v2"
	xdraw "golang.org/x/image/draw"

	"github.com/Faultbox/tilecaster/pkg/math"
)

// HalfBlock is drawn in every cell: foreground is the top pixel,
// background the bottom one.
const HalfBlock = '▀'

// Surface is the part of tcell.Screen the presenter writes to.
type Surface interface {
	Size() (int, int)
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
}

// Presenter scales frames to the surface and writes them as cells.
// The zero value is ready to use.
type Presenter struct {
	scaled *image.RGBA
}

// Present letterboxes src into the surface. Cells outside the frame are black.
func (p *Presenter) Present(s Surface, src *image.RGBA) {
	cols, rows := s.Size()
	if cols <= 0 || rows <= 0 {
		return
	}
	pw, ph := cols, rows*2
	if p.scaled == nil || p.scaled.Rect.Dx() != pw || p.scaled.Rect.Dy() != ph {
		p.scaled = image.NewRGBA(image.Rect(0, 0, pw, ph))
	} else {
		xdraw.Draw(p.scaled, p.scaled.Rect, image.Black, image.Point{}, xdraw.Src)
	}

	sb := src.Bounds()
	x, y, w, h := math.Letterbox(sb.Dx(), sb.Dy(), pw, ph)
	if w > 0 && h > 0 {
		xdraw.NearestNeighbor.Scale(p.scaled, image.Rect(x, y, x+w, y+h), src, sb, xdraw.Src, nil)
	}

	for row := 0; row < rows; row++ {
		for col := 0; col < cols; col++ {
			top := p.scaled.RGBAAt(col, row*2)
			bottom := p.scaled.RGBAAt(col, row*2+1)
			s.SetContent(col, row, HalfBlock, nil, CellStyle(top, bottom))
		}
	}
}

// CellStyle is the style of a cell showing top over bottom.
func CellStyle(top, bottom color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(rgb(top)).Background(rgb(bottom))
}

// Pixels are opaque after compositing, so alpha is dropped.
func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}
