package ui

import (
	"image/color"
	"strconv"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Rule is a single CSS rule: one selector and its raw property values.
type Rule struct {
	Selector string            // e.g. ".tooltip" or "#hud"
	Props    map[string]string // e.g. "background" -> "#333"
}

// Stylesheet is a list of rules; later rules override earlier ones.
type Stylesheet struct {
	Rules []Rule
}

// ComputedStyle holds resolved values used for drawing.
// LeftPct/TopPct: 0–100 for percentage positioning; -1 means use Left/Top (or the node's own
// bounds when HasLeft/HasTop are false).
type ComputedStyle struct {
	Background color.RGBA
	Color      color.RGBA
	Border     color.RGBA
	HasBorder  bool
	Width      int32
	Height     int32
	Left       int32
	Top        int32
	HasLeft    bool
	HasTop     bool
	LeftPct    int32
	TopPct     int32
	Padding    int32
	FontSize   int32
}

// DefaultComputedStyle returns transparent background, white 20px text, no border.
func DefaultComputedStyle() ComputedStyle {
	return ComputedStyle{
		Background: color.RGBA{},
		Color:      color.RGBA{255, 255, 255, 255},
		Border:     color.RGBA{0, 0, 0, 255},
		LeftPct:    -1,
		TopPct:     -1,
		Padding:    4,
		FontSize:   20,
	}
}

// ParseHexColor parses #RGB or #RRGGBB, optionally followed by two alpha digits.
func ParseHexColor(s string) (color.RGBA, bool) {
	s = strings.TrimSpace(s)
	alpha := uint8(255)
	if len(s) == 9 && s[0] == '#' {
		a, err := strconv.ParseUint(s[7:], 16, 8)
		if err != nil {
			return color.RGBA{}, false
		}
		alpha = uint8(a)
		s = s[:7]
	}
	c, err := colorful.Hex(s)
	if err != nil {
		return color.RGBA{}, false
	}
	r, g, b := c.RGB255()
	return color.RGBA{r, g, b, alpha}, true
}

// ParsePx parses a number with an optional "px" suffix.
func ParsePx(s string) (int32, bool) {
	s = strings.TrimSpace(strings.TrimSuffix(strings.TrimSpace(s), "px"))
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, false
	}
	return int32(n), true
}

// ParsePct parses "N%" with N in 0–100.
func ParsePct(s string) (int32, bool) {
	s = strings.TrimSpace(s)
	if len(s) < 2 || s[len(s)-1] != '%' {
		return 0, false
	}
	n, err := strconv.Atoi(s[:len(s)-1])
	if err != nil || n < 0 || n > 100 {
		return 0, false
	}
	return int32(n), true
}

// ResolveProps builds a ComputedStyle from merged properties.
func ResolveProps(props map[string]string) ComputedStyle {
	out := DefaultComputedStyle()
	for k, v := range props {
		v = strings.TrimSpace(v)
		switch k {
		case "background":
			if c, ok := ParseHexColor(v); ok {
				out.Background = c
			}
		case "color":
			if c, ok := ParseHexColor(v); ok {
				out.Color = c
			}
		case "border":
			if c, ok := ParseHexColor(v); ok {
				out.Border = c
				out.HasBorder = true
			}
		case "width":
			if n, ok := ParsePx(v); ok {
				out.Width = n
			}
		case "height":
			if n, ok := ParsePx(v); ok {
				out.Height = n
			}
		case "left", "x":
			if pct, ok := ParsePct(v); ok {
				out.LeftPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Left = n
				out.HasLeft = true
			}
		case "top", "y":
			if pct, ok := ParsePct(v); ok {
				out.TopPct = pct
			} else if n, ok := ParsePx(v); ok {
				out.Top = n
				out.HasTop = true
			}
		case "padding":
			if n, ok := ParsePx(v); ok && n >= 0 {
				out.Padding = n
			}
		case "font-size":
			if n, ok := ParsePx(v); ok && n > 0 {
				out.FontSize = n
			}
		}
	}
	return out
}
