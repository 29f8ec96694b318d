// Package grid holds the tile occupancy map and its collision queries.
package grid

import (
	"errors"
	"fmt"
	"math"
)

// DefaultTileSize is the number of world units per cell.
const DefaultTileSize = 32

// DefaultRows is the canonical 11x15 map.
var DefaultRows = []string{
	"###############",
	"#...........#.#",
	"#....#......#.#",
	"####......#.#.#",
	"#.........#.#.#",
	"#.......#####.#",
	"#.............#",
	"#.............#",
	"######...####.#",
	"#.............#",
	"###############",
}

// Grid is an immutable rows x cols occupancy table.
type Grid struct {
	rows     int
	cols     int
	tileSize float64
	walls    []bool // row-major
}

// New parses rows of cells: '#' or '1' is a wall, '.', '0' or ' ' is open.
func New(rows []string, tileSize float64) (*Grid, error) {
	if len(rows) == 0 {
		return nil, errors.New("grid has no rows")
	}
	if tileSize <= 0 || math.IsNaN(tileSize) || math.IsInf(tileSize, 0) {
		return nil, fmt.Errorf("invalid tile size %v", tileSize)
	}

	cols := len(rows[0])
	if cols == 0 {
		return nil, errors.New("grid has no columns")
	}

	g := &Grid{
		rows:     len(rows),
		cols:     cols,
		tileSize: tileSize,
		walls:    make([]bool, len(rows)*cols),
	}
	for r, line := range rows {
		if len(line) != cols {
			return nil, fmt.Errorf("row %d has %d cells, want %d", r, len(line), cols)
		}
		for c := 0; c < cols; c++ {
			switch line[c] {
			case '#', '1':
				g.walls[r*cols+c] = true
			case '.', '0', ' ':
			default:
				return nil, fmt.Errorf("row %d col %d: unknown cell %q", r, c, line[c])
			}
		}
	}
	return g, nil
}

// Default returns the canonical map at the given tile size.
func Default(tileSize float64) *Grid {
	g, err := New(DefaultRows, tileSize)
	if err != nil {
		panic(err)
	}
	return g
}

// Rows returns the number of rows.
func (g *Grid) Rows() int { return g.rows }

// Cols returns the number of columns.
func (g *Grid) Cols() int { return g.cols }

// TileSize returns world units per cell.
func (g *Grid) TileSize() float64 { return g.tileSize }

// Width returns the world width (cols * tileSize).
func (g *Grid) Width() float64 { return float64(g.cols) * g.tileSize }

// Height returns the world height (rows * tileSize).
func (g *Grid) Height() float64 { return float64(g.rows) * g.tileSize }

// Cell reports whether the cell at (row, col) is a wall.
// Cells outside the table are walls.
func (g *Grid) Cell(row, col int) bool {
	if row < 0 || row >= g.rows || col < 0 || col >= g.cols {
		return true
	}
	return g.walls[row*g.cols+col]
}

// IsWall reports whether the world point (x, y) lies in a wall.
// Everything outside [0, Width] x [0, Height] is a wall, which keeps ray
// marches finite and the observer inside the map.
func (g *Grid) IsWall(x, y float64) bool {
	if !(x >= 0 && x <= g.Width() && y >= 0 && y <= g.Height()) {
		return true
	}
	return g.Cell(int(y/g.tileSize), int(x/g.tileSize))
}

// String renders the grid with '#' and '.'.
func (g *Grid) String() string {
	buf := make([]byte, 0, g.rows*(g.cols+1))
	for r := 0; r < g.rows; r++ {
		for c := 0; c < g.cols; c++ {
			if g.walls[r*g.cols+c] {
				buf = append(buf, '#')
			} else {
				buf = append(buf, '.')
			}
		}
		buf = append(buf, '\n')
	}
	return string(buf)
}
