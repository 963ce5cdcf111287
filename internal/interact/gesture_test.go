package interact

import "testing"

func TestGestureClick(t *testing.T) {
	var g Gesture
	g.Press(100, 100)
	if _, _, drag := g.Move(102, 101); drag {
		t.Error("Expected small travel not to drag")
	}
	if !g.Release(103, 101) {
		t.Error("Expected release within slop to click")
	}
	if g.Down() {
		t.Error("Expected button up after release")
	}
}

func TestGestureDrag(t *testing.T) {
	var g Gesture
	g.Press(100, 100)
	dx, dy, drag := g.Move(110, 95)
	if !drag || dx != 10 || dy != -5 {
		t.Errorf("Expected drag (10,-5), got (%v,%v) %v", dx, dy, drag)
	}
	dx, dy, _ = g.Move(112, 95)
	if dx != 2 || dy != 0 {
		t.Errorf("Expected incremental delta (2,0), got (%v,%v)", dx, dy)
	}
	if g.Release(100, 100) {
		t.Error("Expected drag release not to click even back at the start")
	}
}

func TestGestureIgnoresStrayEvents(t *testing.T) {
	var g Gesture
	if _, _, drag := g.Move(50, 50); drag {
		t.Error("Expected no drag without a press")
	}
	if g.Release(50, 50) {
		t.Error("Expected no click without a press")
	}
	g.Slop = 1
	g.Press(0, 0)
	if _, _, drag := g.Move(2, 0); !drag {
		t.Error("Expected custom slop to start a drag")
	}
}
