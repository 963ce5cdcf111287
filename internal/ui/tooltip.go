package ui

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// cursorOffset keeps the tooltip from sitting under the pointer.
const cursorOffset = 12

// Tooltip describes the body under or last clicked by the pointer. Pinned tooltips come from a
// click and are not replaced by hover previews.
type Tooltip struct {
	Visible  bool
	Pinned   bool
	Name     string
	Distance float32
	X, Y     float32
	Label    string
	Offset   float32 // distance from the pointer to the tooltip's corner

	printer *message.Printer
	node    *Node
}

// NewTooltip returns a hidden tooltip that formats numbers for lang.
func NewTooltip(lang language.Tag) *Tooltip {
	n := NewNode("label", "tooltip", "", "")
	n.AutoSize = true
	n.Clamp = true
	return &Tooltip{
		Label:   "Distance",
		Offset:  cursorOffset,
		printer: message.NewPrinter(lang),
		node:    n,
	}
}

// Show displays name and distance at pointer position (x, y).
func (t *Tooltip) Show(name string, distance, x, y float32, pin bool) {
	t.Visible = true
	t.Pinned = pin
	t.Name = name
	t.Distance = distance
	t.X, t.Y = x, y
}

// Hide clears the tooltip and its pin.
func (t *Tooltip) Hide() {
	t.Visible = false
	t.Pinned = false
}

// Text is the tooltip's content: the name, then the distance.
func (t *Tooltip) Text() string {
	return t.Name + "\n" + t.Label + ": " + t.formatDistance()
}

func (t *Tooltip) formatDistance() string {
	d := float64(t.Distance)
	if d == math.Trunc(d) {
		return t.printer.Sprintf("%d", int64(d))
	}
	return t.printer.Sprintf("%.2f", d)
}

// AppendNodes appends the tooltip's node to dst when it is visible.
func (t *Tooltip) AppendNodes(dst []*Node) []*Node {
	if !t.Visible {
		return dst
	}
	t.node.Text = t.Text()
	t.node.Bounds.X = t.X + t.Offset
	t.node.Bounds.Y = t.Y + t.Offset
	return append(dst, t.node)
}
