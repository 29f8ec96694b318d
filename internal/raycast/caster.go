package raycast

import (
	"math"

	rmath "github.com/Faultbox/tilecaster/pkg/math"
)

// Map is what the caster needs from the grid. *grid.Grid implements it.
type Map interface {
	IsWall(x, y float64) bool
	TileSize() float64
	Width() float64
	Height() float64
}

// nudge is how far a sample point moves off a grid line into the cell being
// entered when the ray travels toward smaller coordinates. It stays inside
// that cell for any tile size.
func nudge(tile float64) float64 {
	return math.Min(1, tile/2)
}

// Caster casts rays against a Map.
type Caster struct {
	m Map
}

// New returns a caster over m.
func New(m Map) *Caster {
	return &Caster{m: m}
}

// hit is one scan's result.
type hit struct {
	point rmath.Vec2
	dist  float64
	ok    bool
}

// Cast returns the nearest wall hit from origin along angle.
func (c *Caster) Cast(origin rmath.Vec2, angle float64) Ray {
	angle = rmath.NormalizeAngle(angle)
	facing := FacingOf(angle)

	h := c.scanHorizontal(origin, angle, facing)
	v := c.scanVertical(origin, angle, facing)

	ray := Ray{Angle: angle, Facing: facing}
	switch {
	case v.ok && (!h.ok || v.dist < h.dist):
		ray.Hit, ray.Distance, ray.Vertical = v.point, v.dist, true
	case h.ok:
		ray.Hit, ray.Distance = h.point, h.dist
	default:
		ray.Hit = c.borderExit(origin, angle)
		ray.Distance = math.Hypot(c.m.Width(), c.m.Height())
		ray.Missed = true
	}
	return ray
}

// CastFan fills dst with n rays spread evenly across fov, the first at
// heading - fov/2. dst is reused when it has capacity.
func (c *Caster) CastFan(dst []Ray, origin rmath.Vec2, heading, fov float64, n int) []Ray {
	if n <= 0 {
		return dst[:0]
	}
	if cap(dst) < n {
		dst = make([]Ray, n)
	}
	dst = dst[:n]

	angle := heading - fov/2
	step := fov / float64(n)
	for i := range dst {
		dst[i] = c.Cast(origin, angle)
		angle += step
	}
	return dst
}

// scanHorizontal marches along horizontal grid lines (y = k * tile).
func (c *Caster) scanHorizontal(origin rmath.Vec2, angle float64, facing Facing) hit {
	// A ray parallel to the x axis never crosses a horizontal line.
	if math.Abs(math.Sin(angle)) < rmath.Epsilon {
		return hit{}
	}
	tile := c.m.TileSize()
	tan := rmath.ClampedTan(angle)
	sx, sy := facing.Signs()

	y := math.Floor(origin.Y/tile) * tile
	if facing.Down() {
		y += tile
	}
	x := origin.X + (y-origin.Y)/tan

	stepY := sy * tile
	stepX := sx * math.Abs(tile/tan)

	var probe float64
	if !facing.Down() {
		probe = -nudge(tile)
	}
	return c.march(origin, x, y, stepX, stepY, 0, probe)
}

// scanVertical marches along vertical grid lines (x = k * tile).
func (c *Caster) scanVertical(origin rmath.Vec2, angle float64, facing Facing) hit {
	// A ray parallel to the y axis never crosses a vertical line.
	if math.Abs(math.Cos(angle)) < rmath.Epsilon {
		return hit{}
	}
	tile := c.m.TileSize()
	// Only multiplied here, and bounded by the cosine check above.
	tan := math.Tan(angle)
	sx, sy := facing.Signs()

	x := math.Floor(origin.X/tile) * tile
	if facing.Right() {
		x += tile
	}
	y := origin.Y + (x-origin.X)*tan

	stepX := sx * tile
	stepY := sy * math.Abs(tile*tan)

	var probe float64
	if !facing.Right() {
		probe = -nudge(tile)
	}
	return c.march(origin, x, y, stepX, stepY, probe, 0)
}

// march steps from (x, y) until the sampled cell is a wall or the point
// leaves the world. probeX/probeY offset the sample, not the hit point.
func (c *Caster) march(origin rmath.Vec2, x, y, stepX, stepY, probeX, probeY float64) hit {
	w, h := c.m.Width(), c.m.Height()
	for x >= 0 && x <= w && y >= 0 && y <= h {
		if c.m.IsWall(x+probeX, y+probeY) {
			p := rmath.Vec2{X: x, Y: y}
			return hit{point: p, dist: origin.Distance(p), ok: true}
		}
		x += stepX
		y += stepY
	}
	return hit{}
}

// borderExit returns where the ray from origin leaves the world rectangle.
func (c *Caster) borderExit(origin rmath.Vec2, angle float64) rmath.Vec2 {
	dir := rmath.FromAngle(angle)
	t := math.Inf(1)
	if dir.X > rmath.Epsilon {
		t = math.Min(t, (c.m.Width()-origin.X)/dir.X)
	} else if dir.X < -rmath.Epsilon {
		t = math.Min(t, -origin.X/dir.X)
	}
	if dir.Y > rmath.Epsilon {
		t = math.Min(t, (c.m.Height()-origin.Y)/dir.Y)
	} else if dir.Y < -rmath.Epsilon {
		t = math.Min(t, -origin.Y/dir.Y)
	}
	if math.IsInf(t, 0) || t < 0 {
		t = 0
	}
	return origin.Add(dir.Scale(t))
}
