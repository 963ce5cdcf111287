package ui

import (
	"image/color"
	"os"
	"strings"
)

// Drawer is the host surface the overlay is drawn on. Sizes are in the host's units (pixels for
// the window, cells for the terminal).
type Drawer interface {
	FillRect(x, y, w, h int32, c color.RGBA)
	StrokeRect(x, y, w, h int32, c color.RGBA)
	Text(x, y int32, s string, size int32, c color.RGBA)
	MeasureText(s string, size int32) int32
	LineHeight(size int32) int32
}

// Engine holds the stylesheet and the nodes to draw this frame. Resolved styles are cached per
// node and dropped when the stylesheet changes.
type Engine struct {
	sheet  *Stylesheet
	nodes  []*Node
	styles map[*Node]ComputedStyle
}

// New creates an engine with sheet (may be nil).
func New(sheet *Stylesheet) *Engine {
	return &Engine{sheet: sheet, styles: make(map[*Node]ComputedStyle)}
}

// LoadCSS parses the stylesheet at path and replaces the current one.
func (e *Engine) LoadCSS(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	sheet, err := ParseCSS(string(data))
	if err != nil {
		return err
	}
	e.SetStylesheet(sheet)
	return nil
}

// SetStylesheet replaces the stylesheet.
func (e *Engine) SetStylesheet(sheet *Stylesheet) {
	e.sheet = sheet
	e.styles = make(map[*Node]ComputedStyle)
}

// Stylesheet returns the current stylesheet (may be nil).
func (e *Engine) Stylesheet() *Stylesheet {
	return e.sheet
}

// SetNodes replaces the nodes drawn by Draw. Nodes are drawn in order.
func (e *Engine) SetNodes(nodes []*Node) {
	e.nodes = nodes
}

// Style returns the resolved style of n.
func (e *Engine) Style(n *Node) ComputedStyle {
	if s, ok := e.styles[n]; ok {
		return s
	}
	s := ResolveProps(e.resolveProps(n))
	e.styles[n] = s
	return s
}

func (e *Engine) resolveProps(n *Node) map[string]string {
	merged := make(map[string]string)
	if e.sheet == nil {
		return merged
	}
	for _, rule := range e.sheet.Rules {
		sel := rule.Selector
		matches := (sel[0] == '.' && n.Class == sel[1:]) || (sel[0] == '#' && n.ID == sel[1:])
		if !matches {
			continue
		}
		for k, v := range rule.Props {
			merged[k] = v
		}
	}
	return merged
}

// Layout resolves n's bounds for a screen of the given size.
func (e *Engine) Layout(d Drawer, n *Node, screenW, screenH int32) (x, y, w, h int32) {
	style := e.Style(n)
	x, y = int32(n.Bounds.X), int32(n.Bounds.Y)
	w, h = int32(n.Bounds.Width), int32(n.Bounds.Height)
	if style.HasLeft {
		x = style.Left
	}
	if style.HasTop {
		y = style.Top
	}
	if style.Width > 0 {
		w = style.Width
	}
	if style.Height > 0 {
		h = style.Height
	}
	if n.AutoSize && n.Text != "" {
		lines := strings.Split(n.Text, "\n")
		var tw int32
		for _, l := range lines {
			if lw := d.MeasureText(l, style.FontSize); lw > tw {
				tw = lw
			}
		}
		w = tw + 2*style.Padding
		h = int32(len(lines))*d.LineHeight(style.FontSize) + 2*style.Padding
	}
	if style.LeftPct >= 0 {
		x = (screenW - w) * style.LeftPct / 100
	}
	if style.TopPct >= 0 {
		y = (screenH - h) * style.TopPct / 100
	}
	if n.Clamp {
		x = clamp(x, 0, screenW-w)
		y = clamp(y, 0, screenH-h)
	}
	return x, y, w, h
}

func clamp(v, lo, hi int32) int32 {
	if v > hi {
		v = hi
	}
	if v < lo {
		v = lo
	}
	return v
}

// Draw draws every node: background, border, then each text line.
func (e *Engine) Draw(d Drawer, screenW, screenH int32) {
	for _, n := range e.nodes {
		style := e.Style(n)
		x, y, w, h := e.Layout(d, n, screenW, screenH)
		if style.Background.A > 0 && w > 0 && h > 0 {
			d.FillRect(x, y, w, h, style.Background)
		}
		if style.HasBorder && w > 0 && h > 0 {
			d.StrokeRect(x, y, w, h, style.Border)
		}
		if n.Text == "" {
			continue
		}
		lh := d.LineHeight(style.FontSize)
		for i, line := range strings.Split(n.Text, "\n") {
			d.Text(x+style.Padding, y+style.Padding+int32(i)*lh, line, style.FontSize, style.Color)
		}
	}
}
