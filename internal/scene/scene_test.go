package scene

import (
	"errors"
	"math"
	"testing"

	"orrery/internal/bodies"
)

func TestBuildCounts(t *testing.T) {
	s, err := Build(bodies.Default())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	if s.Sun == nil || s.Sun.Tag.Kind != bodies.Sun {
		t.Fatalf("Expected one sun, got %+v", s.Sun)
	}
	if len(s.Planets) != 9 {
		t.Errorf("Expected 9 planets, got %d", len(s.Planets))
	}
	if len(s.Moons) != 4 {
		t.Errorf("Expected 4 moons, got %d", len(s.Moons))
	}
	if len(s.Rings) != 10 {
		t.Errorf("Expected 10 rings, got %d", len(s.Rings))
	}
	if len(s.Bodies()) != 14 {
		t.Errorf("Expected 14 pickable bodies, got %d", len(s.Bodies()))
	}
	if s.Background.Texture != DefaultBackground {
		t.Errorf("Expected background %s, got %s", DefaultBackground, s.Background.Texture)
	}

	var ambient, point int
	for _, l := range s.Lights {
		switch l.Kind {
		case Ambient:
			ambient++
		case Point:
			point++
			if l.Position != [3]float32{} {
				t.Errorf("Expected sun light at origin, got %v", l.Position)
			}
		}
	}
	if ambient != 1 || point != 1 {
		t.Errorf("Expected one ambient and one point light, got %d/%d", ambient, point)
	}
}

func TestBuildTags(t *testing.T) {
	s, err := Build(bodies.Default())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}

	earth, ok := s.Object("Zemlja")
	if !ok {
		t.Fatal("Expected Zemlja object")
	}
	want := Tag{Name: "Zemlja", Kind: bodies.Planet, Radius: 3, Distance: 150}
	if earth.Tag != want {
		t.Errorf("Expected tag %+v, got %+v", want, earth.Tag)
	}
	if !earth.Tag.Inspectable() {
		t.Error("Expected planets to be inspectable")
	}
	if s.Sun.Tag.Inspectable() {
		t.Error("Expected the sun not to be inspectable")
	}

	for _, m := range s.Moons {
		if m.Parent == nil || m.Parent.Tag.Kind != bodies.Planet {
			t.Errorf("Expected moon %s bound to a planet, got %+v", m.Tag.Name, m.Parent)
		}
		if !m.Tag.Inspectable() {
			t.Errorf("Expected moon %s to be inspectable", m.Tag.Name)
		}
	}
	phobos, _ := s.Object("Fobos")
	mars, _ := s.Object("Mars")
	if phobos.Parent != mars {
		t.Error("Expected Fobos parent to be the Mars object")
	}
}

func TestRingsShareOrbitRadii(t *testing.T) {
	s, err := Build(bodies.Default())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	for _, r := range s.Rings {
		b := r.Owner.Body
		if len(r.Points) != 100 {
			t.Errorf("%s: expected 100 points, got %d", b.Name, len(r.Points))
		}
		if r.Points[0][0] != b.OrbitX {
			t.Errorf("%s: expected ring to start at %v, got %v", b.Name, b.OrbitX, r.Points[0][0])
		}
		if r.Tilt != b.OrbitTilt {
			t.Errorf("%s: expected tilt %v, got %v", b.Name, b.OrbitTilt, r.Tilt)
		}
	}

	neptune, _ := s.Object("Neptun")
	for _, r := range s.Rings {
		if r.Owner == neptune && r.Tilt == 0 {
			t.Error("Expected Neptun ring to be tilted")
		}
	}
}

func TestBobbingBodiesStayOnTheirRings(t *testing.T) {
	s, err := Build(bodies.Default())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	checked := 0
	for _, r := range s.Rings {
		o := r.Owner
		if o.Orbit.Bob == 0 {
			continue
		}
		checked++
		pts := r.World()
		for _, k := range []int{0, 25, 40, 75} {
			at := 2 * math.Pi * float64(k) / float64(len(pts)) / o.Orbit.Speed
			p, q := o.Orbit.At(at), pts[k]
			dx, dy, dz := p[0]-q[0], p[1]-q[1], p[2]-q[2]
			if d := float32(math.Sqrt(float64(dx*dx + dy*dy + dz*dz))); d > o.Tag.Radius {
				t.Errorf("%s sample %d: expected body %v within %v of ring point %v, off by %v",
					o.Tag.Name, k, p, o.Tag.Radius, q, d)
			}
		}
	}
	if checked != 2 {
		t.Errorf("Expected 2 bobbing bodies with rings, got %d", checked)
	}
}

func TestMoonRingFollowsParent(t *testing.T) {
	s, err := Build(bodies.Default())
	if err != nil {
		t.Fatalf("Build failed: %v", err)
	}
	earth, _ := s.Object("Zemlja")
	var moonRing *Ring
	for _, r := range s.Rings {
		if r.Owner.Tag.Kind == bodies.Moon {
			moonRing = r
		}
	}
	if moonRing == nil {
		t.Fatal("Expected a moon ring")
	}
	earth.Position = [3]float32{10, 0, 20}
	if got := moonRing.World()[0]; got != [3]float32{20, 0, 20} {
		t.Errorf("Expected ring point offset from parent, got %v", got)
	}
}

func TestBuildRejectsInvalidRegistry(t *testing.T) {
	reg := bodies.Default()
	m, _ := reg.ByName("Titan")
	m.ParentName = "nowhere"
	if _, err := Build(reg); !errors.Is(err, bodies.ErrInvalid) {
		t.Errorf("Expected ErrInvalid, got %v", err)
	}
}
