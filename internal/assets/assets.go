package assets

import (
	"errors"
	"fmt"
	"image"
	"image/color"
	"os"
	"path/filepath"

	"github.com/anthonynsimon/bild/imgio"
	"github.com/anthonynsimon/bild/transform"
	_ "golang.org/x/image/webp"
)

// ErrNotFound is returned when no candidate directory holds the requested file.
var ErrNotFound = errors.New("assets: not found")

// Library resolves texture names against a list of directories, first match winning, and keeps
// decoded images.
// Images wider or taller than MaxSize are downscaled on load.
type Library struct {
	Dirs    []string
	MaxSize int

	images map[string]image.Image
	avg    map[string]color.RGBA
}

// NewLibrary returns a library searching dirs. maxSize <= 0 disables downscaling.
func NewLibrary(dirs []string, maxSize int) *Library {
	return &Library{
		Dirs:    dirs,
		MaxSize: maxSize,
		images:  make(map[string]image.Image),
		avg:     make(map[string]color.RGBA),
	}
}

// Resolve returns the first existing path for name.
func (l *Library) Resolve(name string) (string, error) {
	if name == "" {
		return "", ErrNotFound
	}
	for _, dir := range l.Dirs {
		p := filepath.Join(dir, name)
		if info, err := os.Stat(p); err == nil && !info.IsDir() {
			return p, nil
		}
	}
	return "", fmt.Errorf("%w: %s", ErrNotFound, name)
}

// Image returns the decoded, possibly downscaled image for name. Results are cached.
func (l *Library) Image(name string) (image.Image, error) {
	if img, ok := l.images[name]; ok {
		return img, nil
	}
	path, err := l.Resolve(name)
	if err != nil {
		return nil, err
	}
	img, err := imgio.Open(path)
	if err != nil {
		return nil, fmt.Errorf("assets: %s: %w", name, err)
	}
	img = Fit(img, l.MaxSize)
	l.images[name] = img
	return img, nil
}

// Average returns the mean colour of the texture for name.
func (l *Library) Average(name string) (color.RGBA, error) {
	if c, ok := l.avg[name]; ok {
		return c, nil
	}
	img, err := l.Image(name)
	if err != nil {
		return color.RGBA{}, err
	}
	c := Average(img)
	l.avg[name] = c
	return c, nil
}

// Fit downscales img so neither side exceeds max, keeping the aspect ratio.
func Fit(img image.Image, max int) image.Image {
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if max <= 0 || (w <= max && h <= max) {
		return img
	}
	if w >= h {
		h = h * max / w
		w = max
	} else {
		w = w * max / h
		h = max
	}
	if w < 1 {
		w = 1
	}
	if h < 1 {
		h = 1
	}
	return transform.Resize(img, w, h, transform.Linear)
}

// Average box-filters img down to one pixel.
func Average(img image.Image) color.RGBA {
	px := transform.Resize(img, 1, 1, transform.Box)
	return px.RGBAAt(0, 0)
}
