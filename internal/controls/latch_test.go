package controls

import (
	"testing"
	"time"

	"github.com/Faultbox/tilecaster/internal/pose"
)

func TestLatch(t *testing.T) {
	var c Controls
	l := NewLatch(&c, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	l.Press(ActionForward, t0)
	l.Press(ActionTurnLeft, t0.Add(80*time.Millisecond))

	l.Expire(t0.Add(90 * time.Millisecond))
	if w, tr := c.Intents(); w != pose.Forward || tr != pose.Left {
		t.Fatalf("intents = %v, %v; want forward, left", w, tr)
	}

	// Walk lapses first; turn was pressed later.
	l.Expire(t0.Add(150 * time.Millisecond))
	if w, tr := c.Intents(); w != pose.None || tr != pose.Left {
		t.Errorf("intents = %v, %v; want none, left", w, tr)
	}

	l.Expire(t0.Add(200 * time.Millisecond))
	if _, tr := c.Intents(); tr != pose.None {
		t.Errorf("turn = %v, want none", tr)
	}
}

func TestLatchRepeatKeepsAlive(t *testing.T) {
	var c Controls
	l := NewLatch(&c, 100*time.Millisecond)
	t0 := time.Unix(0, 0)

	for i := 0; i < 10; i++ {
		now := t0.Add(time.Duration(i) * 50 * time.Millisecond)
		l.Press(ActionBack, now)
		l.Expire(now)
	}
	if w, _ := c.Intents(); w != pose.Back {
		t.Errorf("walk = %v, want back while repeating", w)
	}
}

func TestLatchIgnoresOneShot(t *testing.T) {
	var c Controls
	l := NewLatch(&c, time.Millisecond)
	l.Press(ActionQuit, time.Unix(0, 0))
	l.Expire(time.Unix(10, 0))
	if w, tr := c.Intents(); w != pose.None || tr != pose.None {
		t.Errorf("intents = %v, %v; want none", w, tr)
	}
}
