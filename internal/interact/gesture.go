package interact

// ClickSlop is how far, in pixels or cells, a press may travel and still count as a click.
const ClickSlop = 4

// Gesture tells clicks from drags for one pointer button. Hosts feed it press, move and release
// events; once travel exceeds ClickSlop the press becomes a drag and the release is not a click.
type Gesture struct {
	Slop float32

	down           bool
	dragging       bool
	startX, startY float32
	lastX, lastY   float32
}

// Down reports whether the button is held.
func (g *Gesture) Down() bool { return g.down }

// Press starts a gesture at (x, y).
func (g *Gesture) Press(x, y float32) {
	g.down = true
	g.dragging = false
	g.startX, g.startY = x, y
	g.lastX, g.lastY = x, y
}

// Move returns the pointer delta since the last move while dragging.
func (g *Gesture) Move(x, y float32) (dx, dy float32, drag bool) {
	if !g.down {
		return 0, 0, false
	}
	if !g.dragging {
		slop := g.Slop
		if slop <= 0 {
			slop = ClickSlop
		}
		tx, ty := x-g.startX, y-g.startY
		if tx*tx+ty*ty < slop*slop {
			return 0, 0, false
		}
		g.dragging = true
	}
	dx, dy = x-g.lastX, y-g.lastY
	g.lastX, g.lastY = x, y
	return dx, dy, dx != 0 || dy != 0
}

// Release ends the gesture and reports whether it was a click.
func (g *Gesture) Release(x, y float32) bool {
	if !g.down {
		return false
	}
	g.Move(x, y)
	click := !g.dragging
	g.down = false
	g.dragging = false
	return click
}
