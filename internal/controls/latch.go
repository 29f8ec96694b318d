package controls

import "time"

// DefaultHold covers the initial auto-repeat delay of most terminals.
const DefaultHold = 600 * time.Millisecond

// Latch drives Controls from inputs that report presses but no releases,
// such as terminals. A movement lapses once no press for its axis has
// arrived within Hold; key auto-repeat keeps a held key alive.
type Latch struct {
	Hold time.Duration

	controls *Controls
	walkAt   time.Time
	turnAt   time.Time
}

// NewLatch wraps c.
func NewLatch(c *Controls, hold time.Duration) *Latch {
	return &Latch{Hold: hold, controls: c}
}

// Press starts or refreshes the movement for a at time now.
func (l *Latch) Press(a Action, now time.Time) {
	switch a {
	case ActionForward, ActionBack:
		l.walkAt = now
	case ActionTurnLeft, ActionTurnRight:
		l.turnAt = now
	default:
		return
	}
	l.controls.Press(a)
}

// Expire releases every axis whose last press is older than Hold.
func (l *Latch) Expire(now time.Time) {
	if !l.walkAt.IsZero() && now.Sub(l.walkAt) > l.Hold {
		l.controls.Release(ActionForward)
		l.walkAt = time.Time{}
	}
	if !l.turnAt.IsZero() && now.Sub(l.turnAt) > l.Hold {
		l.controls.Release(ActionTurnLeft)
		l.turnAt = time.Time{}
	}
}
