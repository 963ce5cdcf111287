package camera

import "github.com/chewxy/math32"

const (
	defaultDamping  = 0.25
	minPolar        = 1e-3
	zoomStep        = 0.95
	settleThreshold = 1e-5
)

// Rig is a damped orbit controller around a fixed target. Drag input accumulates into a pending
// delta that Update releases a fraction at a time. There is no panning.
type Rig struct {
	Target      Vec3
	Radius      float32
	Theta       float32 // azimuth around +Y; 0 looks down -Z
	Phi         float32 // polar angle from +Y
	Damping     float32
	MaxPolar    float32
	MinDistance float32
	MaxDistance float32

	dTheta, dPhi float32
	scale        float32
}

// NewRig returns a rig at radius with the given polar angle, damping 0.25 and polar limit π/2.
func NewRig(radius, phi float32) *Rig {
	r := &Rig{
		Radius:      radius,
		Phi:         phi,
		Damping:     defaultDamping,
		MaxPolar:    math32.Pi / 2,
		MinDistance: radius * 0.05,
		MaxDistance: radius * 4,
		scale:       1,
	}
	r.clamp()
	return r
}

// Rotate queues a drag of (dx, dy) pixels in a viewport of the given height. A drag across the
// full height turns the view once around.
func (r *Rig) Rotate(dx, dy float32, height int) {
	if height <= 0 {
		return
	}
	full := 2 * math32.Pi / float32(height)
	r.dTheta -= dx * full
	r.dPhi -= dy * full
}

// Zoom scales the distance; positive steps move closer.
func (r *Rig) Zoom(steps float32) {
	if r.scale == 0 {
		r.scale = 1
	}
	r.scale *= math32.Pow(zoomStep, steps)
}

// Update applies one frame of damped motion. It reports whether the camera moved.
func (r *Rig) Update() bool {
	if r.scale == 0 {
		r.scale = 1
	}
	k := r.Damping
	if k <= 0 || k > 1 {
		k = 1
	}
	moved := math32.Abs(r.dTheta) > settleThreshold || math32.Abs(r.dPhi) > settleThreshold || r.scale != 1

	r.Theta += r.dTheta * k
	r.Phi += r.dPhi * k
	r.Radius *= r.scale
	r.clamp()

	r.dTheta *= 1 - k
	r.dPhi *= 1 - k
	if math32.Abs(r.dTheta) <= settleThreshold {
		r.dTheta = 0
	}
	if math32.Abs(r.dPhi) <= settleThreshold {
		r.dPhi = 0
	}
	r.scale = 1
	return moved
}

func (r *Rig) clamp() {
	max := r.MaxPolar
	if max <= 0 || max > math32.Pi-minPolar {
		max = math32.Pi - minPolar
	}
	if r.Phi < minPolar {
		r.Phi = minPolar
	}
	if r.Phi > max {
		r.Phi = max
	}
	if r.MinDistance > 0 && r.Radius < r.MinDistance {
		r.Radius = r.MinDistance
	}
	if r.MaxDistance > 0 && r.Radius > r.MaxDistance {
		r.Radius = r.MaxDistance
	}
}

// Position returns the camera position implied by the rig.
func (r *Rig) Position() Vec3 {
	sp, cp := math32.Sincos(r.Phi)
	st, ct := math32.Sincos(r.Theta)
	return Add(r.Target, Vec3{r.Radius * sp * st, r.Radius * cp, r.Radius * sp * ct})
}

// Apply moves c to the rig's position, looking at the target.
func (r *Rig) Apply(c *Camera) {
	c.Position = r.Position()
	c.Target = r.Target
	c.Up = Vec3{0, 1, 0}
}
