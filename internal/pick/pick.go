package pick

import (
	"github.com/chewxy/math32"

	"orrery/internal/camera"
)

// NDC maps a pixel position in a width×height viewport to normalized device coordinates in
// [-1, 1]. Y is inverted so +1 is the top edge.
func NDC(x, y float32, width, height int) (float32, float32) {
	if width <= 0 || height <= 0 {
		return 0, 0
	}
	return x/float32(width)*2 - 1, -(y/float32(height))*2 + 1
}

// Ray is a half-line from Origin along the unit vector Dir.
type Ray struct {
	Origin camera.Vec3
	Dir    camera.Vec3
}

// FromCamera returns the ray through pixel (x, y) of the viewport.
func FromCamera(c *camera.Camera, x, y float32, width, height int) Ray {
	nx, ny := NDC(x, y, width, height)
	o, d := c.Ray(nx, ny)
	return Ray{Origin: o, Dir: d}
}

// IntersectSphere returns the distance along r to the first hit with the sphere, or false. A ray
// starting inside the sphere hits its far side.
func IntersectSphere(r Ray, center camera.Vec3, radius float32) (float32, bool) {
	oc := camera.Sub(r.Origin, center)
	b := camera.Dot(oc, r.Dir)
	c := camera.Dot(oc, oc) - radius*radius
	disc := b*b - c
	if disc < 0 {
		return 0, false
	}
	sq := math32.Sqrt(disc)
	t := -b - sq
	if t < 0 {
		t = -b + sq
	}
	if t < 0 {
		return 0, false
	}
	return t, true
}

// Target is anything a ray can hit.
type Target interface {
	Center() camera.Vec3
	BoundingRadius() float32
}

// Hit is the nearest intersection found by Nearest.
type Hit[T Target] struct {
	Target   T
	Distance float32
}

// Nearest returns the closest target r intersects. ok is false when nothing is hit, including
// when targets is empty.
func Nearest[T Target](r Ray, targets []T) (hit Hit[T], ok bool) {
	for _, t := range targets {
		d, got := IntersectSphere(r, t.Center(), t.BoundingRadius())
		if !got {
			continue
		}
		if !ok || d < hit.Distance {
			hit = Hit[T]{Target: t, Distance: d}
			ok = true
		}
	}
	return hit, ok
}
