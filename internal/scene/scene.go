package scene

import (
	"fmt"

	"orrery/internal/bodies"
	"orrery/internal/camera"
	"orrery/internal/orbit"
)

// Tag is the metadata picking reads from an object. It is set once at build time.
type Tag struct {
	Name     string
	Kind     bodies.Kind
	Radius   float32
	Distance float32
}

// Inspectable reports whether a tooltip should describe the object.
func (t Tag) Inspectable() bool {
	return t.Kind == bodies.Planet || t.Kind == bodies.Moon
}

// Object is the rendered form of one body. Position and Spin are rewritten every frame by the
// animation loop; Tilt is fixed.
type Object struct {
	Body     *bodies.Body
	Tag      Tag
	Parent   *Object
	Orbit    orbit.Ellipse
	Position [3]float32
	Spin     float32
	Tilt     float32
	Texture  string
	Color    string
}

// Center implements pick.Target.
func (o *Object) Center() camera.Vec3 { return o.Position }

// BoundingRadius implements pick.Target.
func (o *Object) BoundingRadius() float32 { return o.Tag.Radius }

// Ring is an orbit outline. Points are relative to the centre: the origin for planets, the
// parent's current position for moons.
type Ring struct {
	Owner  *Object
	Points [][3]float32
	Tilt   float32
}

// Center returns where the ring is drawn this frame.
func (r *Ring) Center() [3]float32 {
	if r.Owner != nil && r.Owner.Parent != nil {
		return r.Owner.Parent.Position
	}
	return [3]float32{}
}

// World returns the ring's points placed at its current centre.
func (r *Ring) World() [][3]float32 {
	c := r.Center()
	out := make([][3]float32, len(r.Points))
	for i, p := range r.Points {
		out[i] = orbit.Add(c, p)
	}
	return out
}

// LightKind distinguishes the two light models.
type LightKind int

const (
	Ambient LightKind = iota
	Point
)

// Light is a scene light. Distance is the point light's reach; zero means unlimited.
type Light struct {
	Kind      LightKind
	Color     uint32
	Intensity float32
	Position  [3]float32
	Distance  float32
}

// Background is the image drawn behind everything.
type Background struct {
	Texture string
}

// Scene holds every object built at startup. Nothing is added or removed afterwards.
type Scene struct {
	Sun        *Object
	Planets    []*Object
	Moons      []*Object
	Rings      []*Ring
	Lights     []Light
	Background Background

	byName map[string]*Object
}

const (
	ambientColor     = 0x404040
	ambientIntensity = 50
	sunLightColor    = 0xffffff
	sunLightDistance = 100
)

// DefaultBackground is the background texture name.
const DefaultBackground = "solar_system.jpg"

// Build constructs the scene from reg. Objects are placed at their orbit's t=0 position; the
// animation loop moves them from the first frame on.
func Build(reg *bodies.Registry) (*Scene, error) {
	if err := reg.Validate(); err != nil {
		return nil, fmt.Errorf("scene: %w", err)
	}
	s := &Scene{byName: make(map[string]*Object, len(reg.Bodies))}

	sun := reg.Sun()
	s.Sun = newObject(sun)
	s.byName[sun.Name] = s.Sun

	for _, b := range reg.Planets() {
		o := newObject(b)
		o.Position = o.Orbit.At(0)
		s.Planets = append(s.Planets, o)
		s.byName[b.Name] = o
	}
	for _, b := range reg.Moons() {
		o := newObject(b)
		o.Parent = s.byName[b.ParentName]
		o.Position = orbit.Add(o.Parent.Position, o.Orbit.At(0))
		s.Moons = append(s.Moons, o)
		s.byName[b.Name] = o
	}
	for _, b := range reg.Bodies {
		if !b.Ring || b.Kind == bodies.Sun {
			continue
		}
		s.Rings = append(s.Rings, &Ring{
			Owner:  s.byName[b.Name],
			Points: orbit.Ring(b.OrbitX, b.OrbitZ, b.OrbitTilt, orbit.RingSegments),
			Tilt:   b.OrbitTilt,
		})
	}

	s.Lights = []Light{
		{Kind: Ambient, Color: ambientColor, Intensity: ambientIntensity},
		{Kind: Point, Color: sunLightColor, Intensity: 1, Distance: sunLightDistance},
	}
	s.Background = Background{Texture: DefaultBackground}
	return s, nil
}

func newObject(b *bodies.Body) *Object {
	return &Object{
		Body: b,
		Tag: Tag{
			Name:     b.Name,
			Kind:     b.Kind,
			Radius:   b.Radius,
			Distance: b.Distance(),
		},
		Orbit: orbit.Ellipse{
			A:        b.OrbitX,
			B:        b.OrbitZ,
			Speed:    b.OrbitalSpeed,
			Bob:      b.BobAmplitude,
			BobSpeed: b.BobSpeed(),
		},
		Tilt:    b.AxialTilt,
		Texture: b.Texture,
		Color:   b.Color,
	}
}

// Object returns the object built for the named body.
func (s *Scene) Object(name string) (*Object, bool) {
	o, ok := s.byName[name]
	return o, ok
}

// Bodies returns every pickable object: sun, planets, then moons.
func (s *Scene) Bodies() []*Object {
	out := make([]*Object, 0, 1+len(s.Planets)+len(s.Moons))
	out = append(out, s.Sun)
	out = append(out, s.Planets...)
	return append(out, s.Moons...)
}
