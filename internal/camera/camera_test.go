package camera

import (
	"math"
	"testing"
)

func approx(a, b, tol float32) bool {
	return math.Abs(float64(a-b)) <= float64(tol)
}

func TestRayThroughCenter(t *testing.T) {
	c := New(Vec3{0, 0, 1000}, 75, 16.0/9)
	o, d := c.Ray(0, 0)
	if o != c.Position {
		t.Errorf("Expected ray origin at camera, got %v", o)
	}
	if !approx(d[0], 0, 1e-6) || !approx(d[1], 0, 1e-6) || !approx(d[2], -1, 1e-6) {
		t.Errorf("Expected center ray along -Z, got %v", d)
	}
}

func TestProjectInvertsRay(t *testing.T) {
	c := New(Vec3{300, 400, 800}, 60, 1.5)
	for _, ndc := range [][2]float32{{0.5, -0.25}, {-0.9, 0.9}, {0, 0.3}} {
		o, d := c.Ray(ndc[0], ndc[1])
		p := Add(o, Scale(d, 500))
		x, y, _, ok := c.Project(p)
		if !ok {
			t.Fatalf("Expected point on ray in front of camera")
		}
		if !approx(x, ndc[0], 1e-4) || !approx(y, ndc[1], 1e-4) {
			t.Errorf("Expected projection %v, got (%v, %v)", ndc, x, y)
		}
	}
}

func TestProjectBehind(t *testing.T) {
	c := New(Vec3{0, 0, 100}, 75, 1)
	if _, _, _, ok := c.Project(Vec3{0, 0, 200}); ok {
		t.Error("Expected point behind camera to be rejected")
	}
}

func TestSetViewport(t *testing.T) {
	c := New(Vec3{0, 0, 10}, 75, 1)
	c.SetViewport(1920, 1080)
	if !approx(c.Aspect, 1920.0/1080, 1e-6) {
		t.Errorf("Expected aspect %v, got %v", 1920.0/1080, c.Aspect)
	}
	c.SetViewport(0, 1080)
	if !approx(c.Aspect, 1920.0/1080, 1e-6) {
		t.Error("Expected zero width to be ignored")
	}
}

func TestRigStartsOnAxis(t *testing.T) {
	r := NewRig(1000, math.Pi/2)
	p := r.Position()
	if !approx(p[0], 0, 1e-3) || !approx(p[1], 0, 0.1) || !approx(p[2], 1000, 1e-2) {
		t.Errorf("Expected camera on +Z at 1000, got %v", p)
	}
}

func TestRigDamping(t *testing.T) {
	r := NewRig(1000, 1)
	r.Rotate(-100, 0, 1000)
	total := float32(2 * math.Pi * 100 / 1000)

	r.Update()
	if !approx(r.Theta, total*0.25, 1e-5) {
		t.Errorf("Expected first update to apply a quarter of the drag, got %v of %v", r.Theta, total)
	}
	for i := 0; i < 200; i++ {
		r.Update()
	}
	if !approx(r.Theta, total, 1e-3) {
		t.Errorf("Expected rig to settle on the full drag %v, got %v", total, r.Theta)
	}
	if r.Update() {
		t.Error("Expected settled rig to report no motion")
	}
}

func TestRigPolarClamp(t *testing.T) {
	r := NewRig(1000, 1)
	r.Rotate(0, -100000, 100)
	for i := 0; i < 50; i++ {
		r.Update()
	}
	if r.Phi > math.Pi/2+1e-6 {
		t.Errorf("Expected polar angle clamped to pi/2, got %v", r.Phi)
	}
	if p := r.Position(); p[1] < -0.1 {
		t.Errorf("Expected camera never below the orbital plane, got y=%v", p[1])
	}
}

func TestRigZoom(t *testing.T) {
	r := NewRig(1000, 1)
	r.Zoom(1)
	r.Update()
	if !approx(r.Radius, 950, 1e-2) {
		t.Errorf("Expected radius 950 after one zoom step, got %v", r.Radius)
	}
	r.Zoom(-1000)
	r.Update()
	if r.Radius != r.MaxDistance {
		t.Errorf("Expected radius clamped to %v, got %v", r.MaxDistance, r.Radius)
	}
}

func TestRigApply(t *testing.T) {
	r := NewRig(500, 0.8)
	c := New(Vec3{}, 75, 1)
	r.Apply(c)
	if c.Position != r.Position() || c.Target != r.Target {
		t.Errorf("Expected camera placed by rig, got %+v", c)
	}
}
