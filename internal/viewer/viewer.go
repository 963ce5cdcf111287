package viewer

import (
	"fmt"
	"os"
	"time"

	"golang.org/x/text/language"

	"orrery/internal/assets"
	"orrery/internal/bodies"
	"orrery/internal/camera"
	"orrery/internal/commands"
	"orrery/internal/config"
	"orrery/internal/debug"
	"orrery/internal/interact"
	"orrery/internal/logger"
	"orrery/internal/metrics"
	"orrery/internal/scene"
	"orrery/internal/sim"
	"orrery/internal/ui"
)

// Viewer wires the scene, loop, camera, controller and overlay together. Hosts feed it input
// and draw what it holds; it never touches a window or terminal itself.
type Viewer struct {
	Prefs      config.Prefs
	State      *sim.State
	Scene      *scene.Scene
	Camera     *camera.Camera
	Rig        *camera.Rig
	Loop       *sim.Loop
	Commands   *commands.Registry
	Controller *interact.Controller
	UI         *ui.Engine
	Tooltip    *ui.Tooltip
	Inspector  *ui.Inspector
	HUD        *debug.HUD
	Textures   *assets.Library
	Log        *logger.Logger
	Metrics    *metrics.Collector

	nodes []*ui.Node
}

// New builds a viewer over a private copy of reg with preferences p. log may be nil.
func New(p config.Prefs, reg *bodies.Registry, log *logger.Logger) (*Viewer, error) {
	if log == nil {
		log = logger.New("")
	}
	// Each viewer owns its bodies.
	reg, err := reg.Clone()
	if err != nil {
		return nil, err
	}
	s, err := scene.Build(reg)
	if err != nil {
		return nil, err
	}
	v := &Viewer{
		Prefs:     p,
		State:     &sim.State{Paused: p.StartPaused, OrbitsVisible: p.ShowOrbits},
		Scene:     s,
		Commands:  commands.NewRegistry(),
		Inspector: ui.NewInspector(),
		Textures:  assets.NewLibrary(p.TextureDirs, p.MaxTexture),
		Log:       log,
	}

	aspect := float32(p.Width) / float32(p.Height)
	v.Camera = camera.New(camera.Vec3{0, 0, p.Camera.Distance}, p.Camera.Fovy, aspect)
	v.Rig = camera.NewRig(p.Camera.Distance, p.Camera.Polar)
	v.Rig.Damping = p.Camera.Damping
	v.Rig.Apply(v.Camera)

	v.Loop = sim.NewLoop(s, v.State, sim.WallClock{})
	v.Loop.UpdateCamera = v.UpdateCamera

	tag, err := language.Parse(p.Locale)
	if err != nil {
		log.Warn(fmt.Sprintf("locale %q: %v; using en", p.Locale, err))
		tag = language.English
	}
	v.Tooltip = ui.NewTooltip(tag)

	v.HUD = debug.New(v.State)
	v.HUD.SetShowFPS(p.ShowFPS)
	v.HUD.SetShowMemAlloc(p.ShowMemAlloc)
	v.HUD.Visible = p.ShowFPS || p.ShowMemAlloc

	interact.BindDefaults(v.Commands, v.State, func() { v.HUD.Toggle() })
	v.Controller = interact.New(v.Camera, s, v.Tooltip, v.Commands, p.Width, p.Height)

	v.UI = ui.New(ui.DefaultStylesheet())
	if p.StyleSheet != "" {
		if err := v.UI.LoadCSS(p.StyleSheet); err != nil && !os.IsNotExist(err) {
			log.Error("stylesheet "+p.StyleSheet, err)
		}
	}

	log.Logf(logger.Info, "scene built: %d planets, %d moons, %d rings", len(s.Planets), len(s.Moons), len(s.Rings))
	return v, nil
}

// Attach reports frames, picks and commands to m.
func (v *Viewer) Attach(m *metrics.Collector) {
	v.Metrics = m
	v.Loop.Recorder = m
	v.Controller.Observer = m
	m.SetBodies(bodies.Sun.String(), 1)
	m.SetBodies(bodies.Planet.String(), len(v.Scene.Planets))
	m.SetBodies(bodies.Moon.String(), len(v.Scene.Moons))
}

// UpdateCamera runs one frame of the orbit rig and moves the camera.
func (v *Viewer) UpdateCamera() {
	v.Rig.Update()
	v.Rig.Apply(v.Camera)
}

// Key runs the command bound to r and logs failures.
func (v *Viewer) Key(r rune) {
	if err := v.Controller.Key(r); err != nil {
		v.Log.Error("command", err)
	}
}

// Selection describes the pinned body for the inspector.
func (v *Viewer) Selection() (ui.Selection, bool) {
	o, ok := v.Controller.Selected()
	if !ok {
		return ui.Selection{}, false
	}
	sel := ui.Selection{
		Name:     o.Tag.Name,
		Kind:     o.Tag.Kind.String(),
		Radius:   o.Tag.Radius,
		Distance: o.Tag.Distance,
		Position: o.Position,
	}
	if o.Parent != nil {
		sel.Parent = o.Parent.Tag.Name
	}
	return sel, true
}

// Overlay counts a HUD frame at now and returns the nodes to draw: HUD, inspector, tooltip.
func (v *Viewer) Overlay(now time.Time) []*ui.Node {
	v.HUD.Tick(now)
	nodes := v.HUD.AppendNodes(v.nodes[:0])
	sel, ok := v.Selection()
	nodes = v.Inspector.AppendNodes(nodes, ok, sel)
	nodes = v.Tooltip.AppendNodes(nodes)
	v.nodes = nodes
	v.UI.SetNodes(nodes)
	return nodes
}

// Color returns the display colour of o: its texture's average colour when the texture loads,
// else its registry colour, else grey.
func (v *Viewer) Color(o *scene.Object) (uint8, uint8, uint8) {
	if o.Texture != "" {
		if c, err := v.Textures.Average(o.Texture); err == nil {
			return c.R, c.G, c.B
		}
	}
	if c, ok := ui.ParseHexColor(o.Color); ok {
		return c.R, c.G, c.B
	}
	return 128, 128, 128
}
