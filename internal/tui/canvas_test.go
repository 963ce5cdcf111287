package tui

import (
	"testing"

	"github.com/lucasb-eyer/go-colorful"

	"orrery/internal/scene"
)

func TestHugeDiscFillsCanvas(t *testing.T) {
	var c canvas
	c.resize(80, 24)
	o := &scene.Object{}
	c.disc(projected{o: o, x: 40, y: 12, rx: 1e9, ry: 1e9}, colorful.Color{R: 1}, true)

	for y := 0; y < c.h; y++ {
		for x := 0; x < c.w; x++ {
			if c.owner(x, y) != o {
				t.Fatalf("Expected cell %d,%d painted", x, y)
			}
		}
	}
}

func TestOffscreenDiscPaintsNothing(t *testing.T) {
	var c canvas
	c.resize(10, 10)
	c.disc(projected{o: &scene.Object{}, x: -50, y: 5, rx: 3, ry: 3}, colorful.Color{G: 1}, false)

	for i, cl := range c.cells {
		if cl.body != nil {
			t.Fatalf("Expected cell %d empty", i)
		}
	}
}
