// Package minimap draws the top-down view of the grid, the cast rays and the
// observer, scaled down into a corner of the frame.
package minimap

import (
	"github.com/Faultbox/tilecaster/internal/engine/draw"
	"github.com/Faultbox/tilecaster/internal/grid"
	"github.com/Faultbox/tilecaster/internal/pose"
	"github.com/Faultbox/tilecaster/internal/raycast"
	rmath "github.com/Faultbox/tilecaster/pkg/math"
)

// Minimap renders a scaled map overview with the observer and its rays.
type Minimap struct {
	// Display settings
	Scale    float64 // uniform factor applied to every world coordinate
	ShowGrid bool    // tile outlines
	ShowRays bool

	// Observer marker
	MarkerRadius  float64 // world units
	HeadingLength float64 // world units

	WallColor     draw.Color
	OpenColor     draw.Color
	GridColor     draw.Color
	RayColor      draw.Color
	ObserverColor draw.Color
}

// New creates a minimap with the classic palette.
func New(scale float64) *Minimap {
	return &Minimap{
		Scale:         scale,
		ShowGrid:      true,
		ShowRays:      true,
		MarkerRadius:  3,
		HeadingLength: 10,
		WallColor:     draw.ColorTileWall,
		OpenColor:     draw.ColorTileOpen,
		GridColor:     draw.ColorTileEdge,
		RayColor:      draw.ColorRayLine,
		ObserverColor: draw.ColorObserver,
	}
}

// Size returns the on-screen size of the minimap for g.
func (m *Minimap) Size(g *grid.Grid) (w, h float64) {
	return g.Width() * m.Scale, g.Height() * m.Scale
}

// Render draws tiles, then rays, then the observer.
func (m *Minimap) Render(c draw.Canvas, g *grid.Grid, p *pose.Pose, rays []raycast.Ray) {
	sc := draw.NewScaled(c, m.Scale)

	m.renderTiles(sc, g)
	if m.ShowGrid {
		m.renderGrid(sc, g)
	}
	if m.ShowRays {
		m.renderRays(sc, p, rays)
	}
	m.renderObserver(sc, p)
}

func (m *Minimap) renderTiles(c draw.Canvas, g *grid.Grid) {
	tile := g.TileSize()
	for row := 0; row < g.Rows(); row++ {
		for col := 0; col < g.Cols(); col++ {
			color := m.OpenColor
			if g.Cell(row, col) {
				color = m.WallColor
			}
			c.FillRect(float64(col)*tile, float64(row)*tile, tile, tile, color)
		}
	}
}

func (m *Minimap) renderGrid(c draw.Canvas, g *grid.Grid) {
	tile := g.TileSize()

	// Vertical lines
	for col := 0; col <= g.Cols(); col++ {
		x := float64(col) * tile
		c.Line(x, 0, x, g.Height(), m.GridColor)
	}

	// Horizontal lines
	for row := 0; row <= g.Rows(); row++ {
		y := float64(row) * tile
		c.Line(0, y, g.Width(), y, m.GridColor)
	}
}

func (m *Minimap) renderRays(c draw.Canvas, p *pose.Pose, rays []raycast.Ray) {
	for _, r := range rays {
		c.Line(p.Position.X, p.Position.Y, r.Hit.X, r.Hit.Y, m.RayColor)
	}
}

func (m *Minimap) renderObserver(c draw.Canvas, p *pose.Pose) {
	c.FillCircle(p.Position.X, p.Position.Y, m.MarkerRadius, m.ObserverColor)

	tip := p.Position.Add(rmath.FromAngle(p.Heading).Scale(m.HeadingLength))
	c.Line(p.Position.X, p.Position.Y, tip.X, tip.Y, m.ObserverColor)
}
