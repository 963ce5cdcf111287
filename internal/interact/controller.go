package interact

import (
	"flag"
	"fmt"

	"orrery/internal/camera"
	"orrery/internal/commands"
	"orrery/internal/pick"
	"orrery/internal/scene"
	"orrery/internal/sim"
	"orrery/internal/ui"
)

// Observer is told about picks and commands. metrics.Collector satisfies it.
type Observer interface {
	ObservePick(kind string, hit bool)
	ObserveCommand(name string)
}

// Controller turns input events into picks, tooltip changes, commands and viewport updates.
// It runs on the frame loop's goroutine.
type Controller struct {
	Camera   *camera.Camera
	Scene    *scene.Scene
	Tooltip  *ui.Tooltip
	Commands *commands.Registry
	Observer Observer

	// OnResize, if set, resizes the host's render surface after the camera is updated.
	OnResize func(width, height int)

	// Picker, if set, replaces ray picking. Hosts that draw bodies larger than their true
	// projection use it to pick what is on screen at (x, y).
	Picker func(x, y float32) (*scene.Object, bool)

	width, height int
	x, y          float32
	ndcX, ndcY    float32
	selected      *scene.Object
}

// New returns a controller for a width×height viewport.
func New(cam *camera.Camera, s *scene.Scene, tip *ui.Tooltip, reg *commands.Registry, width, height int) *Controller {
	c := &Controller{Camera: cam, Scene: s, Tooltip: tip, Commands: reg}
	c.Resize(width, height)
	return c
}

// Viewport returns the current viewport size.
func (c *Controller) Viewport() (int, int) {
	return c.width, c.height
}

// Pointer returns the last pointer position in NDC.
func (c *Controller) Pointer() (float32, float32) {
	return c.ndcX, c.ndcY
}

// PointerMove records the pointer and, unless a tooltip is pinned, previews the body under it.
func (c *Controller) PointerMove(x, y float32) {
	c.x, c.y = x, y
	c.ndcX, c.ndcY = pick.NDC(x, y, c.width, c.height)
	if c.Tooltip.Pinned {
		return
	}
	if o, ok := c.Pick(); ok && o.Tag.Inspectable() {
		c.Tooltip.Show(o.Tag.Name, o.Tag.Distance, x, y, false)
		return
	}
	c.Tooltip.Hide()
}

// Click picks at (x, y). A planet or moon pins the tooltip there; anything else, or nothing,
// hides it.
func (c *Controller) Click(x, y float32) {
	c.x, c.y = x, y
	c.ndcX, c.ndcY = pick.NDC(x, y, c.width, c.height)
	o, ok := c.Pick()
	if c.Observer != nil {
		kind := "none"
		if ok {
			kind = o.Tag.Kind.String()
		}
		c.Observer.ObservePick(kind, ok)
	}
	if ok && o.Tag.Inspectable() {
		c.Tooltip.Show(o.Tag.Name, o.Tag.Distance, x, y, true)
		c.selected = o
		return
	}
	c.Tooltip.Hide()
	c.selected = nil
}

// Pick returns the nearest body under the current pointer.
func (c *Controller) Pick() (*scene.Object, bool) {
	if c.Picker != nil {
		return c.Picker(c.x, c.y)
	}
	o, d := c.Camera.Ray(c.ndcX, c.ndcY)
	hit, ok := pick.Nearest(pick.Ray{Origin: o, Dir: d}, c.Scene.Bodies())
	if !ok {
		return nil, false
	}
	return hit.Target, true
}

// Selected returns the body whose tooltip is pinned, if any.
func (c *Controller) Selected() (*scene.Object, bool) {
	if c.selected == nil || !c.Tooltip.Pinned {
		return nil, false
	}
	return c.selected, true
}

// Key runs the command bound to r and reports it by name. Unbound keys are ignored.
func (c *Controller) Key(r rune) error {
	name, err := c.Commands.Key(r)
	if name != "" && c.Observer != nil {
		c.Observer.ObserveCommand(name)
	}
	return err
}

// Resize sets the camera aspect and tells the host to resize its surface.
func (c *Controller) Resize(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.width, c.height = width, height
	c.Camera.SetViewport(width, height)
	if c.OnResize != nil {
		c.OnResize(width, height)
	}
}

// BindDefaults registers the pause, orbits and hud commands on reg and binds them to p, o and f.
// onHUD may be nil.
func BindDefaults(reg *commands.Registry, state *sim.State, onHUD func()) {
	reg.Register("pause", nil, func() error {
		state.TogglePause()
		return nil
	})

	fs := flag.NewFlagSet("orbits", flag.ContinueOnError)
	show := fs.String("show", "toggle", "on, off or toggle")
	reg.Register("orbits", fs, func() error {
		defer func() { *show = "toggle" }()
		switch *show {
		case "toggle":
			state.ToggleOrbits()
		case "on":
			state.OrbitsVisible = true
		case "off":
			state.OrbitsVisible = false
		default:
			return fmt.Errorf("orbits: -show must be on, off or toggle, got %q", *show)
		}
		return nil
	})

	reg.Register("hud", nil, func() error {
		if onHUD != nil {
			onHUD()
		}
		return nil
	})

	reg.Bind('p', "pause")
	reg.Bind('o', "orbits")
	reg.Bind('f', "hud")
}
