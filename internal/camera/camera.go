package camera

import "github.com/chewxy/math32"

// Vec3 is a point or direction in world space.
type Vec3 = [3]float32

// Camera is a perspective camera. Fovy is the vertical field of view in degrees and Aspect is
// viewport width over height.
type Camera struct {
	Position Vec3
	Target   Vec3
	Up       Vec3
	Fovy     float32
	Aspect   float32
	Near     float32
	Far      float32
}

// New returns a camera at position looking at the origin with +Y up.
func New(position Vec3, fovy, aspect float32) *Camera {
	return &Camera{
		Position: position,
		Up:       Vec3{0, 1, 0},
		Fovy:     fovy,
		Aspect:   aspect,
		Near:     0.1,
		Far:      5000,
	}
}

// SetViewport updates the aspect ratio for a width×height viewport. Degenerate sizes are ignored.
func (c *Camera) SetViewport(width, height int) {
	if width <= 0 || height <= 0 {
		return
	}
	c.Aspect = float32(width) / float32(height)
}

// basis returns the camera's forward, right and up unit vectors.
func (c *Camera) basis() (fwd, right, up Vec3) {
	fwd = Normalize(Sub(c.Target, c.Position))
	right = Normalize(Cross(fwd, c.Up))
	up = Cross(right, fwd)
	return fwd, right, up
}

// Ray returns the world-space ray through normalized device coordinates (ndcX, ndcY), each in
// [-1, 1] with +Y up.
func (c *Camera) Ray(ndcX, ndcY float32) (origin, dir Vec3) {
	fwd, right, up := c.basis()
	h := math32.Tan(c.Fovy * math32.Pi / 360)
	w := h * c.Aspect
	d := Add(fwd, Add(Scale(right, ndcX*w), Scale(up, ndcY*h)))
	return c.Position, Normalize(d)
}

// Project maps a world point to normalized device coordinates. ok is false when the point is
// behind the camera.
func (c *Camera) Project(p Vec3) (ndcX, ndcY, depth float32, ok bool) {
	fwd, right, up := c.basis()
	rel := Sub(p, c.Position)
	depth = Dot(rel, fwd)
	if depth <= c.Near {
		return 0, 0, depth, false
	}
	h := math32.Tan(c.Fovy * math32.Pi / 360)
	w := h * c.Aspect
	ndcX = Dot(rel, right) / (depth * w)
	ndcY = Dot(rel, up) / (depth * h)
	return ndcX, ndcY, depth, true
}

// ProjectedRadius is the half-height in NDC of a sphere of radius r seen at depth.
func (c *Camera) ProjectedRadius(r, depth float32) float32 {
	if depth <= 0 {
		return 0
	}
	h := math32.Tan(c.Fovy * math32.Pi / 360)
	return r / (depth * h)
}

// Add returns a+b.
func Add(a, b Vec3) Vec3 { return Vec3{a[0] + b[0], a[1] + b[1], a[2] + b[2]} }

// Sub returns a-b.
func Sub(a, b Vec3) Vec3 { return Vec3{a[0] - b[0], a[1] - b[1], a[2] - b[2]} }

// Scale returns v*s.
func Scale(v Vec3, s float32) Vec3 { return Vec3{v[0] * s, v[1] * s, v[2] * s} }

// Dot returns the dot product.
func Dot(a, b Vec3) float32 { return a[0]*b[0] + a[1]*b[1] + a[2]*b[2] }

// Cross returns a×b.
func Cross(a, b Vec3) Vec3 {
	return Vec3{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}

// Length returns |v|.
func Length(v Vec3) float32 { return math32.Sqrt(Dot(v, v)) }

// Normalize returns v scaled to unit length; the zero vector is returned unchanged.
func Normalize(v Vec3) Vec3 {
	l := Length(v)
	if l == 0 {
		return v
	}
	return Scale(v, 1/l)
}
