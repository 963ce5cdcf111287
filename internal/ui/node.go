package ui

// Rect is a screen rectangle in pixels.
type Rect struct {
	X, Y, Width, Height float32
}

// Node is a single overlay element: panel, label, etc. Class and ID are matched by the
// stylesheet. Text may span several lines. A node with AutoSize grows to fit its text, and one
// with Clamp is kept inside the screen.
type Node struct {
	Type     string // "panel", "label", etc.
	Class    string
	ID       string
	Bounds   Rect
	Text     string
	AutoSize bool
	Clamp    bool
}

// NewNode creates a node with type and optional class, id, and text.
func NewNode(typ, class, id, text string) *Node {
	return &Node{Type: typ, Class: class, ID: id, Text: text}
}
