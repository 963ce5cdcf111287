package graphics

import (
	"unicode"

	rl "github.com/gen2brain/raylib-go/raylib"

	"orrery/internal/interact"
	"orrery/internal/viewer"
)

// input polls raylib once per frame and forwards events to the viewer's controller and rig.
type input struct {
	v       *viewer.Viewer
	gesture interact.Gesture
	lastX   float32
	lastY   float32
}

func (in *input) update() {
	v := in.v
	if rl.IsWindowResized() {
		v.Controller.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	}

	m := rl.GetMousePosition()
	if m.X != in.lastX || m.Y != in.lastY {
		in.lastX, in.lastY = m.X, m.Y
		if !in.gesture.Down() {
			v.Controller.PointerMove(m.X, m.Y)
		}
	}
	if rl.IsMouseButtonPressed(rl.MouseButtonLeft) {
		in.gesture.Press(m.X, m.Y)
	}
	if rl.IsMouseButtonDown(rl.MouseButtonLeft) {
		if dx, dy, ok := in.gesture.Move(m.X, m.Y); ok {
			_, h := v.Controller.Viewport()
			v.Rig.Rotate(dx, dy, h)
		}
	}
	if rl.IsMouseButtonReleased(rl.MouseButtonLeft) && in.gesture.Release(m.X, m.Y) {
		v.Controller.Click(m.X, m.Y)
	}
	if wheel := rl.GetMouseWheelMove(); wheel != 0 {
		v.Rig.Zoom(wheel)
	}

	// Commands are bound to characters, not key codes.
	for c := rl.GetCharPressed(); c != 0; c = rl.GetCharPressed() {
		v.Key(unicode.ToLower(rune(c)))
	}
}
