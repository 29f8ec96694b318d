// Package controls turns key presses into observer intents and one-shot
// application actions.
package controls

import (
	"fmt"
	"strings"

	"github.com/Faultbox/tilecaster/internal/pose"
)

// Action is what a bound key does.
type Action uint8

const (
	ActionNone Action = iota
	ActionForward
	ActionBack
	ActionTurnLeft
	ActionTurnRight
	ActionQuit
	ActionScreenshot
	ActionToggleMinimap
)

var actionNames = [...]string{
	ActionNone:          "none",
	ActionForward:       "forward",
	ActionBack:          "back",
	ActionTurnLeft:      "turn_left",
	ActionTurnRight:     "turn_right",
	ActionQuit:          "quit",
	ActionScreenshot:    "screenshot",
	ActionToggleMinimap: "toggle_minimap",
}

func (a Action) String() string {
	if int(a) < len(actionNames) {
		return actionNames[a]
	}
	return fmt.Sprintf("Action(%d)", a)
}

// ParseAction resolves an action name as written in config files.
func ParseAction(name string) (Action, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for a, s := range actionNames {
		if s == n {
			return Action(a), nil
		}
	}
	return ActionNone, fmt.Errorf("unknown action %q", name)
}

// Movement reports whether the action drives an intent rather than
// firing once.
func (a Action) Movement() bool {
	return a >= ActionForward && a <= ActionTurnRight
}

// Bindings maps SDL scancode names to actions. Lookups ignore case.
type Bindings map[string]Action

// DefaultBindings binds the arrow keys and WASD to movement.
func DefaultBindings() Bindings {
	return Bindings{
		"up":     ActionForward,
		"down":   ActionBack,
		"left":   ActionTurnLeft,
		"right":  ActionTurnRight,
		"w":      ActionForward,
		"s":      ActionBack,
		"a":      ActionTurnLeft,
		"d":      ActionTurnRight,
		"escape": ActionQuit,
		"f12":    ActionScreenshot,
		"m":      ActionToggleMinimap,
	}
}

// Merge parses key -> action-name overrides on top of b.
func (b Bindings) Merge(overrides map[string]string) error {
	for key, name := range overrides {
		a, err := ParseAction(name)
		if err != nil {
			return fmt.Errorf("key %q: %w", key, err)
		}
		b[strings.ToLower(key)] = a
	}
	return nil
}

// Lookup returns the action bound to key, or ActionNone.
func (b Bindings) Lookup(key string) Action {
	return b[strings.ToLower(key)]
}

// Controls holds the intent state fed to the pose each tick.
type Controls struct {
	walk pose.Intent
	turn pose.Intent
}

// Press starts the movement for a. Non-movement actions are ignored.
func (c *Controls) Press(a Action) {
	switch a {
	case ActionForward:
		c.walk = pose.Forward
	case ActionBack:
		c.walk = pose.Back
	case ActionTurnLeft:
		c.turn = pose.Left
	case ActionTurnRight:
		c.turn = pose.Right
	}
}

// Release resets the axis a belongs to, whichever key set it.
func (c *Controls) Release(a Action) {
	switch a {
	case ActionForward, ActionBack:
		c.walk = pose.None
	case ActionTurnLeft, ActionTurnRight:
		c.turn = pose.None
	}
}

// Reset drops both intents, e.g. when the window loses focus.
func (c *Controls) Reset() {
	c.walk = pose.None
	c.turn = pose.None
}

// Intents returns the current walk and turn intents.
func (c *Controls) Intents() (walk, turn pose.Intent) {
	return c.walk, c.turn
}

// Apply copies the intents onto p.
func (c *Controls) Apply(p *pose.Pose) {
	p.Walk = c.walk
	p.Turn = c.turn
}
