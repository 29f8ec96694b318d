// Package raycast finds, for a given angle, the nearest wall hit on the tile
// grid by marching along horizontal and vertical grid lines.
package raycast

import (
	rmath "github.com/Faultbox/tilecaster/pkg/math"
)

// Ray is one column's cast for one frame.
type Ray struct {
	Angle    float64    // normalized cast angle
	Hit      rmath.Vec2 // wall hit point
	Distance float64    // Euclidean distance from the origin to Hit
	Vertical bool       // hit a vertical grid line (x = k * tileSize)
	Facing   Facing
	Missed   bool // neither scan hit; Hit is on the world border
}
