package orbit

import (
	"math"

	"github.com/chewxy/math32"
)

// RingSegments is the number of sampled points in an orbit ring.
const RingSegments = 100

// Ellipse is an orbit path in the XZ plane: half-axis A on X, B on Z. Speed is radians per
// millisecond and Bob is the out-of-plane amplitude. BobSpeed is the bob's rate; zero means Speed.
type Ellipse struct {
	A, B     float32
	Speed    float64
	Bob      float32
	BobSpeed float64
}

// At returns the offset from the orbit centre at wall-clock time t (milliseconds). The angle is
// computed in float64 because t is an absolute Unix time and float32 would lose the fraction.
func (e Ellipse) At(t float64) [3]float32 {
	angle := t * e.Speed
	s, c := math.Sincos(angle)
	var y float32
	if e.Bob != 0 {
		bs := s
		if e.BobSpeed != 0 && e.BobSpeed != e.Speed {
			bs = math.Sin(t * e.BobSpeed)
		}
		y = e.Bob * float32(bs)
	}
	return [3]float32{e.A * float32(c), y, e.B * float32(s)}
}

// Ring samples n points on the ellipse, tilted about the X axis so +Z rises towards +Y. A body
// bobbing at its orbital rate with amplitude b·tan(tilt) stays on its ring.
func Ring(a, b, tilt float32, n int) [][3]float32 {
	if n <= 0 {
		n = RingSegments
	}
	st, ct := math32.Sincos(tilt)
	pts := make([][3]float32, n)
	for i := range pts {
		angle := float32(i) / float32(n) * 2 * math32.Pi
		x := a * math32.Cos(angle)
		z := b * math32.Sin(angle)
		pts[i] = [3]float32{x, z * st, z * ct}
	}
	return pts
}

// Add returns a+b.
func Add(a, b [3]float32) [3]float32 {
	return [3]float32{a[0] + b[0], a[1] + b[1], a[2] + b[2]}
}
