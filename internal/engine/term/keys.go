package term

import (
	"strings"

	"github.com/gdamore/tcell/v2"
)

var keyNames = map[tcell.Key]string{
	tcell.KeyUp:     "up",
	tcell.KeyDown:   "down",
	tcell.KeyLeft:   "left",
	tcell.KeyRight:  "right",
	tcell.KeyEscape: "escape",
	tcell.KeyF12:    "f12",
	tcell.KeyEnter:  "return",
	tcell.KeyTab:    "tab",
}

// KeyName returns the binding name of a key event, matching the lower-cased
// scancode names the windowed client uses. Unknown keys give "".
func KeyName(ev *tcell.EventKey) string {
	if ev.Key() == tcell.KeyRune {
		if ev.Rune() == ' ' {
			return "space"
		}
		return strings.ToLower(string(ev.Rune()))
	}
	return keyNames[ev.Key()]
}

// Interrupt reports whether ev is Ctrl+C, which always quits.
func Interrupt(ev *tcell.EventKey) bool {
	return ev.Key() == tcell.KeyCtrlC
}
