// Package pose tracks the observer's position and heading and integrates
// movement intents against the grid once per tick.
package pose

import (
	"math"

	rmath "github.com/Faultbox/tilecaster/pkg/math"
)

// Intent is a movement request in {-1, 0, +1}.
type Intent int

const (
	Back    Intent = -1
	None    Intent = 0
	Forward Intent = 1

	Left  Intent = -1
	Right Intent = 1
)

// Clamp maps any value onto {-1, 0, +1} by sign.
func Clamp(v int) Intent {
	switch {
	case v < 0:
		return -1
	case v > 0:
		return 1
	}
	return 0
}

// Collider answers wall queries. *grid.Grid implements it.
type Collider interface {
	IsWall(x, y float64) bool
}

// Pose is the observer. Walk and Turn are written by the input collaborator
// and read by Integrate.
type Pose struct {
	Position  rmath.Vec2
	Heading   float64 // radians in [0, 2π)
	MoveSpeed float64 // world units per tick
	TurnSpeed float64 // radians per tick

	Walk Intent
	Turn Intent
}

// New returns a pose with a normalized heading and no pending intents.
func New(x, y, heading, moveSpeed, turnSpeed float64) *Pose {
	return &Pose{
		Position:  rmath.Vec2{X: x, Y: y},
		Heading:   rmath.NormalizeAngle(heading),
		MoveSpeed: moveSpeed,
		TurnSpeed: turnSpeed,
	}
}

// Integrate advances one tick: turn first, then attempt the move.
// A move whose destination is inside a wall is dropped entirely; there is no
// sliding along the wall, so a diagonal step into a wall yields zero
// displacement even when one axis alone would have been free.
// Returns true when the position changed.
func (p *Pose) Integrate(c Collider) bool {
	p.Heading = rmath.NormalizeAngle(p.Heading + float64(Clamp(int(p.Turn)))*p.TurnSpeed)

	walk := float64(Clamp(int(p.Walk)))
	if walk == 0 || p.MoveSpeed == 0 {
		return false
	}

	step := rmath.FromAngle(p.Heading).Scale(p.MoveSpeed * walk)
	candidate := p.Position.Add(step)
	if math.IsNaN(candidate.X) || math.IsNaN(candidate.Y) {
		return false
	}
	if c.IsWall(candidate.X, candidate.Y) {
		return false
	}
	p.Position = candidate
	return true
}

// Stop clears both intents.
func (p *Pose) Stop() {
	p.Walk = None
	p.Turn = None
}
