package ui

import (
	"image/color"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/text/language"
)

type fakeDrawer struct {
	rects []string
	texts []string
	pos   [][2]int32
}

func (d *fakeDrawer) FillRect(x, y, w, h int32, c color.RGBA) {
	d.rects = append(d.rects, "fill")
}

func (d *fakeDrawer) StrokeRect(x, y, w, h int32, c color.RGBA) {
	d.rects = append(d.rects, "stroke")
}

func (d *fakeDrawer) Text(x, y int32, s string, size int32, c color.RGBA) {
	d.texts = append(d.texts, s)
	d.pos = append(d.pos, [2]int32{x, y})
}

func (d *fakeDrawer) MeasureText(s string, size int32) int32 { return int32(len(s)) * 10 }
func (d *fakeDrawer) LineHeight(size int32) int32           { return size + 4 }

func TestParseCSS(t *testing.T) {
	sheet, err := ParseCSS(`
/* overlay */
.tooltip { background: #333; color: #ffffff; padding: 6px; }
#hud { left: 12px; top: 5%; }
div { color: #f00; }
.a, .b { width: 40px; }
@media screen { .hidden { color: #000; } }
.nested .child { color: #111; }
`)
	if err != nil {
		t.Fatalf("ParseCSS failed: %v", err)
	}

	bySel := map[string]Rule{}
	for _, r := range sheet.Rules {
		bySel[r.Selector] = r
	}
	tooltip, ok := bySel[".tooltip"]
	if !ok {
		t.Fatalf("Expected .tooltip rule, got %+v", sheet.Rules)
	}
	if tooltip.Props["background"] != "#333" || tooltip.Props["padding"] != "6px" {
		t.Errorf("Unexpected tooltip props %v", tooltip.Props)
	}
	if hud := bySel["#hud"]; hud.Props["top"] != "5%" {
		t.Errorf("Expected #hud top 5%%, got %v", hud.Props)
	}
	if _, ok := bySel["div"]; ok {
		t.Error("Expected element selector to be skipped")
	}
	if bySel[".a"].Props["width"] != "40px" || bySel[".b"].Props["width"] != "40px" {
		t.Errorf("Expected selector list to yield two rules, got %+v", sheet.Rules)
	}
	if _, ok := bySel[".hidden"]; ok {
		t.Error("Expected rules inside at-rules to be skipped")
	}
	for sel := range bySel {
		if strings.Contains(sel, "child") {
			t.Error("Expected descendant selector to be skipped")
		}
	}
}

func TestResolveProps(t *testing.T) {
	s := ResolveProps(map[string]string{
		"background": "#10182080",
		"color":      "#fff",
		"border":     "#b3b7ba",
		"left":       "50%",
		"top":        "12px",
		"font-size":  "16px",
		"padding":    "-3",
	})
	if s.Background != (color.RGBA{0x10, 0x18, 0x20, 0x80}) {
		t.Errorf("Expected background with alpha, got %v", s.Background)
	}
	if s.Color != (color.RGBA{255, 255, 255, 255}) {
		t.Errorf("Expected white text, got %v", s.Color)
	}
	if !s.HasBorder || s.Border != (color.RGBA{0xb3, 0xb7, 0xba, 255}) {
		t.Errorf("Expected border, got %v %v", s.HasBorder, s.Border)
	}
	if s.LeftPct != 50 || !s.HasTop || s.Top != 12 {
		t.Errorf("Unexpected position %+v", s)
	}
	if s.FontSize != 16 {
		t.Errorf("Expected font size 16, got %d", s.FontSize)
	}
	if s.Padding != 4 {
		t.Errorf("Expected negative padding ignored, got %d", s.Padding)
	}
}

func TestParseHexColorRejectsGarbage(t *testing.T) {
	for _, s := range []string{"red", "#12", "#zzzzzz", "#1234567g"} {
		if _, ok := ParseHexColor(s); ok {
			t.Errorf("Expected %q to be rejected", s)
		}
	}
}

func TestTooltipText(t *testing.T) {
	tip := NewTooltip(language.English)
	tip.Show("Zemlja", 150, 100, 100, true)
	if got := tip.Text(); got != "Zemlja\nDistance: 150" {
		t.Errorf("Unexpected tooltip text %q", got)
	}
	tip.Show("Mars", 2.5, 0, 0, false)
	if !strings.Contains(tip.Text(), "2.50") {
		t.Errorf("Expected fractional distance, got %q", tip.Text())
	}
	if tip.Pinned {
		t.Error("Expected hover preview not to pin")
	}

	tip.Hide()
	if tip.Visible || tip.Pinned {
		t.Error("Expected hide to clear visibility and pin")
	}
	if nodes := tip.AppendNodes(nil); len(nodes) != 0 {
		t.Errorf("Expected no nodes when hidden, got %d", len(nodes))
	}
}

func TestTooltipClampedToScreen(t *testing.T) {
	e := New(DefaultStylesheet())
	tip := NewTooltip(language.English)
	tip.Show("Jupiter", 300, 790, 590, true)
	nodes := tip.AppendNodes(nil)
	if len(nodes) != 1 {
		t.Fatalf("Expected one tooltip node, got %d", len(nodes))
	}

	d := &fakeDrawer{}
	x, y, w, h := e.Layout(d, nodes[0], 800, 600)
	if x+w > 800 || y+h > 600 || x < 0 || y < 0 {
		t.Errorf("Expected tooltip inside screen, got %d,%d %dx%d", x, y, w, h)
	}
	if w != int32(len("Distance: 300"))*10+12 {
		t.Errorf("Expected width from the longest line, got %d", w)
	}
}

func TestEngineDraw(t *testing.T) {
	e := New(DefaultStylesheet())
	tip := NewTooltip(language.English)
	tip.Show("Titan", 20, 10, 10, true)
	e.SetNodes(tip.AppendNodes(nil))

	d := &fakeDrawer{}
	e.Draw(d, 800, 600)
	if len(d.rects) != 2 {
		t.Errorf("Expected background and border, got %v", d.rects)
	}
	if len(d.texts) != 2 || d.texts[0] != "Titan" || d.texts[1] != "Distance: 20" {
		t.Errorf("Unexpected text lines %q", d.texts)
	}
	if d.pos[0][0] != 10+12+6 {
		t.Errorf("Expected text at cursor+offset+padding, got %v", d.pos[0])
	}
	if d.pos[1][1]-d.pos[0][1] != 22 {
		t.Errorf("Expected line height 22, got %d", d.pos[1][1]-d.pos[0][1])
	}
}

func TestInspector(t *testing.T) {
	in := NewInspector()
	if got := in.AppendNodes(nil, false, Selection{}); len(got) != 0 {
		t.Error("Expected hidden inspector to add nothing")
	}
	nodes := in.AppendNodes(nil, true, Selection{Name: "Fobos", Kind: "moon", Parent: "Mars", Radius: 0.15, Distance: 5})
	if len(nodes) != 1 {
		t.Fatalf("Expected one node, got %d", len(nodes))
	}
	if !strings.Contains(nodes[0].Text, "moon of Mars") || !strings.HasPrefix(nodes[0].Text, "Fobos\n") {
		t.Errorf("Unexpected inspector text %q", nodes[0].Text)
	}

	e := New(DefaultStylesheet())
	x, _, w, _ := e.Layout(&fakeDrawer{}, nodes[0], 1000, 600)
	if x+w != 1000 {
		t.Errorf("Expected inspector flush right, got x=%d w=%d", x, w)
	}
}

func TestLoadCSS(t *testing.T) {
	path := filepath.Join(t.TempDir(), "overlay.css")
	if err := os.WriteFile(path, []byte(".tooltip { color: #00ff00; }"), 0644); err != nil {
		t.Fatal(err)
	}
	e := New(nil)
	n := NewNode("label", "tooltip", "", "x")
	if e.Style(n).Color != (color.RGBA{255, 255, 255, 255}) {
		t.Error("Expected default white without a stylesheet")
	}
	if err := e.LoadCSS(path); err != nil {
		t.Fatalf("LoadCSS failed: %v", err)
	}
	if got := e.Style(n).Color; got != (color.RGBA{0, 255, 0, 255}) {
		t.Errorf("Expected cached style dropped after reload, got %v", got)
	}
	if err := e.LoadCSS(filepath.Join(t.TempDir(), "none.css")); err == nil {
		t.Error("Expected error for missing file")
	}
}
