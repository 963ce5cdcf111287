package tui

import (
	"context"
	"time"
	"unicode"

	"github.com/gdamore/tcell/v2"

	"orrery/internal/interact"
	"orrery/internal/scene"
	"orrery/internal/viewer"
)

const (
	// cellAspect is a terminal cell's height over its width.
	cellAspect    = 2.0
	frameInterval = time.Second / 30
	statusText    = " p pause  o orbits  f hud  q quit "
)

// terminalCSS restyles the overlay in cell units.
const terminalCSS = `
.tooltip { background: #101820; color: #f0f0f0; padding: 1px; }
.hud { left: 1px; top: 0px; color: #7fff7f; padding: 0; }
.inspector { left: 100%; top: 10%; background: #181818; color: #d0d0d0; padding: 1px; }
`

// Host draws a viewer on a tcell screen. The viewport is measured in cells; the camera aspect
// accounts for cells being taller than wide.
type Host struct {
	Screen tcell.Screen
	V      *viewer.Viewer

	gesture interact.Gesture
	canvas  *canvas
	width   int
	height  int
}

// New prepares screen (already initialised) to show v.
func New(screen tcell.Screen, v *viewer.Viewer) *Host {
	h := &Host{Screen: screen, V: v, canvas: &canvas{}}
	screen.EnableMouse(tcell.MouseMotionEvents)
	screen.HideCursor()

	if sheet, err := parseTerminalCSS(); err == nil {
		v.UI.SetStylesheet(sheet)
	}
	v.Tooltip.Offset = 1
	v.Loop.Render = h.draw
	v.Controller.Picker = h.pick
	v.Controller.OnResize = func(w, hgt int) {
		v.Camera.Aspect = float32(w) / (float32(hgt) * cellAspect)
	}
	h.resize()
	return h
}

// Run drives frames at a fixed rate until ctx is done or the user quits. A goroutine forwards
// PollEvent results; all state is touched on the calling goroutine.
func (h *Host) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.Screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(frameInterval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev := <-events:
			if !h.Handle(ev) {
				return nil
			}
		case <-ticker.C:
			h.V.Loop.Frame()
		}
	}
}

// Handle applies one event. It returns false when the user asked to quit.
func (h *Host) Handle(ev tcell.Event) bool {
	v := h.V
	switch ev := ev.(type) {
	case *tcell.EventKey:
		switch ev.Key() {
		case tcell.KeyEscape, tcell.KeyCtrlC:
			return false
		case tcell.KeyRune:
			r := unicode.ToLower(ev.Rune())
			if r == 'q' {
				return false
			}
			v.Key(r)
		}
	case *tcell.EventMouse:
		h.mouse(ev)
	case *tcell.EventResize:
		h.Screen.Sync()
		h.resize()
	}
	return true
}

func (h *Host) mouse(ev *tcell.EventMouse) {
	v := h.V
	cx, cy := ev.Position()
	x, y := float32(cx)+0.5, float32(cy)+0.5
	buttons := ev.Buttons()

	switch {
	case buttons&tcell.WheelUp != 0:
		v.Rig.Zoom(1)
		return
	case buttons&tcell.WheelDown != 0:
		v.Rig.Zoom(-1)
		return
	}

	if buttons&tcell.Button1 != 0 {
		if !h.gesture.Down() {
			h.gesture.Press(x, y)
			return
		}
		if dx, dy, ok := h.gesture.Move(x, y); ok {
			v.Rig.Rotate(dx/cellAspect, dy, h.height)
		}
		return
	}
	if h.gesture.Down() {
		if h.gesture.Release(x, y) {
			v.Controller.Click(x, y)
		}
		return
	}
	v.Controller.PointerMove(x, y)
}

func (h *Host) resize() {
	w, hgt := h.Screen.Size()
	h.width, h.height = w, hgt
	h.canvas.resize(w, hgt)
	h.V.Controller.Resize(w, hgt)
}

// pick returns the body drawn in the cell under (x, y).
func (h *Host) pick(x, y float32) (*scene.Object, bool) {
	o := h.canvas.owner(int(x), int(y))
	return o, o != nil
}

// draw is the loop's render step. It runs whether or not the animation is paused.
func (h *Host) draw() {
	v := h.V
	h.canvas.clear()
	if v.State.OrbitsVisible {
		for _, ring := range v.Scene.Rings {
			h.canvas.ring(v.Camera, ring)
		}
	}
	h.canvas.bodies(v, v.Scene.Bodies())
	h.canvas.flush(h.Screen)

	v.Overlay(time.Now())
	v.UI.Draw(&drawer{screen: h.Screen}, int32(h.width), int32(h.height))
	drawStatus(h.Screen, h.width, h.height)
	h.Screen.Show()
}

func drawStatus(s tcell.Screen, w, hgt int) {
	if hgt < 2 {
		return
	}
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	x := w - len(statusText)
	if x < 0 {
		x = 0
	}
	for i, r := range statusText {
		if x+i >= w {
			break
		}
		s.SetContent(x+i, hgt-1, r, nil, style)
	}
}
