package ui

import (
	"fmt"
	"strings"
)

// Inspector is a right-side panel describing the pinned body while it moves: kind, parent,
// radius, orbit and live position.
type Inspector struct {
	panel *Node
}

// NewInspector creates an Inspector styled by .inspector.
func NewInspector() *Inspector {
	n := NewNode("panel", "inspector", "", "")
	n.AutoSize = true
	n.Clamp = true
	return &Inspector{panel: n}
}

// Selection is what the inspector shows. The caller fills it from the scene; ui does not
// depend on scene.
type Selection struct {
	Name     string
	Kind     string
	Parent   string
	Radius   float32
	Distance float32
	Position [3]float32
}

// Lines returns the panel text, one entry per row.
func (sel Selection) Lines() []string {
	kind := "Kind: " + sel.Kind
	if sel.Parent != "" {
		kind = fmt.Sprintf("Kind: %s of %s", sel.Kind, sel.Parent)
	}
	return []string{
		sel.Name,
		kind,
		fmt.Sprintf("Radius: %g", sel.Radius),
		fmt.Sprintf("Orbit: %g", sel.Distance),
		fmt.Sprintf("Position: %.1f, %.1f, %.1f", sel.Position[0], sel.Position[1], sel.Position[2]),
	}
}

// AppendNodes appends the inspector to dst when visible is true, after updating its text.
func (in *Inspector) AppendNodes(dst []*Node, visible bool, sel Selection) []*Node {
	if !visible {
		return dst
	}
	in.panel.Text = strings.Join(sel.Lines(), "\n")
	return append(dst, in.panel)
}
