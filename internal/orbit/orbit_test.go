package orbit

import (
	"math"
	"testing"
)

const eps = 1e-4

func near(a, b float32) bool {
	return math.Abs(float64(a-b)) < eps
}

func TestEarthAtOneSecond(t *testing.T) {
	e := Ellipse{A: 150, B: 150, Speed: 0.0003}
	p := e.At(1000)

	wantX := float32(150 * math.Cos(0.3))
	wantZ := float32(150 * math.Sin(0.3))
	if !near(p[0], wantX) || !near(p[2], wantZ) {
		t.Errorf("Expected (%v, %v), got (%v, %v)", wantX, wantZ, p[0], p[2])
	}
	if p[1] != 0 {
		t.Errorf("Expected y 0 without bob, got %v", p[1])
	}
}

func TestAtIsIdempotent(t *testing.T) {
	e := Ellipse{A: 700, B: 680, Speed: 0.00002, Bob: 30}
	now := 1.7e12
	first := e.At(now)
	for i := 0; i < 10; i++ {
		if got := e.At(now); got != first {
			t.Fatalf("Expected identical position on read %d, got %v vs %v", i, got, first)
		}
	}
}

func TestBob(t *testing.T) {
	e := Ellipse{A: 600, B: 590, Speed: 0.00002, Bob: 10}
	tq := math.Pi / 2 / 0.00002
	p := e.At(tq)
	if !near(p[1], 10) {
		t.Errorf("Expected full bob amplitude at quarter orbit, got %v", p[1])
	}
}

func TestBobSpeed(t *testing.T) {
	e := Ellipse{A: 600, B: 590, Speed: 0.00002, Bob: 10, BobSpeed: 0.0001}
	tq := math.Pi / 2 / 0.0001
	p := e.At(tq)
	if !near(p[1], 10) {
		t.Errorf("Expected full bob at the bob's own quarter period, got %v", p[1])
	}
	want := 600 * math.Cos(tq*0.00002)
	if math.Abs(float64(p[0])-want) > 1e-2 {
		t.Errorf("Expected x %v from orbital speed, got %v", want, p[0])
	}
}

func TestBobbingBodyStaysOnTiltedRing(t *testing.T) {
	const a, b, bob = 700, 680, 30
	e := Ellipse{A: a, B: b, Speed: 0.00002, Bob: bob}
	pts := Ring(a, b, float32(math.Atan2(bob, b)), RingSegments)
	for _, k := range []int{0, 10, 25, 60, 75} {
		p := e.At(2 * math.Pi * float64(k) / RingSegments / e.Speed)
		q := pts[k]
		dx, dy, dz := p[0]-q[0], p[1]-q[1], p[2]-q[2]
		if d := math.Sqrt(float64(dx*dx + dy*dy + dz*dz)); d > 1 {
			t.Errorf("Sample %d: expected body %v on ring point %v, off by %v", k, p, q, d)
		}
	}
}

func TestRing(t *testing.T) {
	pts := Ring(60, 55, 0, RingSegments)
	if len(pts) != 100 {
		t.Fatalf("Expected 100 points, got %d", len(pts))
	}
	if !near(pts[0][0], 60) || !near(pts[0][2], 0) {
		t.Errorf("Expected first point at (60,0,0), got %v", pts[0])
	}
	if !near(pts[25][2], 55) {
		t.Errorf("Expected quarter point at z=55, got %v", pts[25])
	}
	for i, p := range pts {
		if p[1] != 0 {
			t.Fatalf("Expected flat ring, point %d has y %v", i, p[1])
		}
	}
}

func TestRingTilt(t *testing.T) {
	tilt := float32(math.Pi / 6)
	pts := Ring(100, 100, tilt, 4)
	q := pts[1]
	if !near(q[1], 50) || !near(q[2], float32(100*math.Cos(math.Pi/6))) {
		t.Errorf("Expected tilted quarter point, got %v", q)
	}
}

func TestRingDefaultSegments(t *testing.T) {
	if got := len(Ring(1, 1, 0, 0)); got != RingSegments {
		t.Errorf("Expected %d points, got %d", RingSegments, got)
	}
}
