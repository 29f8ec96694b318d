package raycast

import "math"

// Facing is the quadrant a ray points into. Screen space has y growing
// downward, so angles in (0, π) face down.
type Facing uint8

const (
	UpRight Facing = iota
	UpLeft
	DownRight
	DownLeft
)

// FacingOf classifies a normalized angle.
func FacingOf(angle float64) Facing {
	down := angle > 0 && angle < math.Pi
	right := angle < math.Pi/2 || angle > 3*math.Pi/2

	switch {
	case down && right:
		return DownRight
	case down:
		return DownLeft
	case right:
		return UpRight
	}
	return UpLeft
}

// Down reports whether the ray moves toward larger y.
func (f Facing) Down() bool { return f == DownRight || f == DownLeft }

// Right reports whether the ray moves toward larger x.
func (f Facing) Right() bool { return f == UpRight || f == DownRight }

// facingSigns holds the x and y step signs per quadrant.
var facingSigns = [4][2]float64{
	UpRight:   {1, -1},
	UpLeft:    {-1, -1},
	DownRight: {1, 1},
	DownLeft:  {-1, 1},
}

// Signs returns the sign of the x step and the y step.
func (f Facing) Signs() (sx, sy float64) {
	s := facingSigns[f]
	return s[0], s[1]
}

func (f Facing) String() string {
	switch f {
	case UpRight:
		return "up-right"
	case UpLeft:
		return "up-left"
	case DownRight:
		return "down-right"
	case DownLeft:
		return "down-left"
	}
	return "unknown"
}
