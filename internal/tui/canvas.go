package tui

import (
	"sort"

	"github.com/chewxy/math32"
	"github.com/gdamore/tcell/v2"
	"github.com/lucasb-eyer/go-colorful"

	"orrery/internal/camera"
	"orrery/internal/scene"
	"orrery/internal/viewer"
)

const (
	ringRune  = '·'
	fogStart  = 800
	fogEnd    = 4000
	fogAmount = 0.6
)

var ringStyle = tcell.StyleDefault.Foreground(tcell.NewRGBColor(110, 110, 110))

type cell struct {
	r      rune
	style  tcell.Style
	body   *scene.Object
	filled bool
}

// canvas is one frame of cells. Bodies are painted far to near so nearer discs win; each cell
// remembers the body painted there for picking.
type canvas struct {
	w, h  int
	cells []cell
}

func (c *canvas) resize(w, h int) {
	c.w, c.h = w, h
	c.cells = make([]cell, w*h)
}

func (c *canvas) clear() {
	for i := range c.cells {
		c.cells[i] = cell{}
	}
}

func (c *canvas) at(x, y int) *cell {
	if x < 0 || y < 0 || x >= c.w || y >= c.h {
		return nil
	}
	return &c.cells[y*c.w+x]
}

func (c *canvas) owner(x, y int) *scene.Object {
	if cl := c.at(x, y); cl != nil {
		return cl.body
	}
	return nil
}

// toCell maps NDC to fractional cell coordinates.
func (c *canvas) toCell(ndcX, ndcY float32) (float32, float32) {
	return (ndcX + 1) / 2 * float32(c.w), (1 - ndcY) / 2 * float32(c.h)
}

// ring plots the ring's points as dots.
func (c *canvas) ring(cam *camera.Camera, ring *scene.Ring) {
	for _, p := range ring.World() {
		nx, ny, _, ok := cam.Project(p)
		if !ok {
			continue
		}
		x, y := c.toCell(nx, ny)
		if cl := c.at(int(math32.Floor(x)), int(math32.Floor(y))); cl != nil && !cl.filled {
			cl.r = ringRune
			cl.style = ringStyle
		}
	}
}

type projected struct {
	o      *scene.Object
	x, y   float32
	rx, ry float32
	depth  float32
}

// bodies paints each object as a shaded disc at least one cell wide.
func (c *canvas) bodies(v *viewer.Viewer, objs []*scene.Object) {
	cam := v.Camera
	list := make([]projected, 0, len(objs))
	for _, o := range objs {
		nx, ny, depth, ok := cam.Project(o.Position)
		if !ok {
			continue
		}
		x, y := c.toCell(nx, ny)
		ry := cam.ProjectedRadius(o.Tag.Radius, depth) * float32(c.h) / 2
		list = append(list, projected{o: o, x: x, y: y, rx: ry * cellAspect, ry: ry, depth: depth})
	}
	sort.Slice(list, func(i, j int) bool { return list[i].depth > list[j].depth })

	for _, p := range list {
		r, g, b := v.Color(p.o)
		base := colorful.Color{R: float64(r) / 255, G: float64(g) / 255, B: float64(b) / 255}
		base = fog(base, p.depth)
		lit := p.o != v.Scene.Sun
		c.disc(p, base, lit)
	}
}

func (c *canvas) disc(p projected, base colorful.Color, lit bool) {
	if p.rx <= 0 || p.ry <= 0 {
		c.paint(int(math32.Floor(p.x)), int(math32.Floor(p.y)), p.o, base)
		return
	}
	// Clamp in float space: a body right at the camera projects to an enormous disc.
	x0 := int(math32.Floor(max(p.x-p.rx, 0)))
	x1 := int(math32.Floor(min(p.x+p.rx, float32(c.w-1))))
	y0 := int(math32.Floor(max(p.y-p.ry, 0)))
	y1 := int(math32.Floor(min(p.y+p.ry, float32(c.h-1))))
	painted := false
	for y := y0; y <= y1; y++ {
		for x := x0; x <= x1; x++ {
			dx := (float32(x) + 0.5 - p.x) / p.rx
			dy := (float32(y) + 0.5 - p.y) / p.ry
			d2 := dx*dx + dy*dy
			if d2 > 1 {
				continue
			}
			c.paint(x, y, p.o, shade(base, d2, lit))
			painted = true
		}
	}
	if !painted {
		c.paint(int(math32.Floor(p.x)), int(math32.Floor(p.y)), p.o, base)
	}
}

func (c *canvas) paint(x, y int, o *scene.Object, col colorful.Color) {
	cl := c.at(x, y)
	if cl == nil {
		return
	}
	r, g, b := col.Clamped().RGB255()
	cl.r = ' '
	cl.style = tcell.StyleDefault.Background(tcell.NewRGBColor(int32(r), int32(g), int32(b)))
	cl.body = o
	cl.filled = true
}

// shade darkens a disc towards its rim, as if lit from the viewer.
func shade(base colorful.Color, d2 float32, lit bool) colorful.Color {
	if !lit {
		return base
	}
	nz := math32.Sqrt(1 - d2)
	return base.BlendLab(colorful.Color{}, float64(1-(0.4+0.6*nz)))
}

// fog fades distant bodies towards black.
func fog(base colorful.Color, depth float32) colorful.Color {
	t := (depth - fogStart) / (fogEnd - fogStart)
	if t <= 0 {
		return base
	}
	if t > 1 {
		t = 1
	}
	return base.BlendLab(colorful.Color{}, float64(t*fogAmount))
}

func (c *canvas) flush(s tcell.Screen) {
	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			cl := c.cells[y*c.w+x]
			r := cl.r
			if r == 0 {
				r = ' '
			}
			s.SetContent(x, y, r, nil, cl.style)
		}
	}
}
