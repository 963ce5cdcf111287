package graphics

import (
	rl "github.com/gen2brain/raylib-go/raylib"

	"orrery/internal/logger"
	"orrery/internal/viewer"
)

// worldScale maps scene units to render units so the outer orbits stay inside raylib's far
// clip plane.
const worldScale = 0.1

// Options configures the window.
type Options struct {
	Width      int
	Height     int
	Fullscreen bool
	Title      string
}

// Run opens the window and drives v until it is closed. Each frame it drains input, then runs
// one loop frame whose render step draws the scene and the overlay.
func Run(opts Options, v *viewer.Viewer) {
	flags := uint32(rl.FlagWindowResizable | rl.FlagMsaa4xHint)
	width, height := int32(opts.Width), int32(opts.Height)
	if opts.Fullscreen {
		flags |= rl.FlagFullscreenMode
		width, height = int32(rl.GetMonitorWidth(0)), int32(rl.GetMonitorHeight(0))
	}
	rl.SetConfigFlags(flags)
	rl.InitWindow(width, height, opts.Title)
	defer rl.CloseWindow()
	rl.SetTargetFPS(60)

	r := newRenderer(v)
	defer r.unload()
	in := &input{v: v}

	v.HUD.FPS = rl.GetFPS
	v.Controller.Resize(rl.GetScreenWidth(), rl.GetScreenHeight())
	v.Loop.Render = r.draw
	v.Log.Logf(logger.Info, "window %dx%d", rl.GetScreenWidth(), rl.GetScreenHeight())

	for !rl.WindowShouldClose() {
		in.update()
		v.Loop.Frame()
	}
}

func vec(p [3]float32) rl.Vector3 {
	return rl.NewVector3(p[0]*worldScale, p[1]*worldScale, p[2]*worldScale)
}
