package tui

import (
	"image/color"

	"github.com/gdamore/tcell/v2"

	"orrery/internal/ui"
)

func parseTerminalCSS() (*ui.Stylesheet, error) {
	return ui.ParseCSS(terminalCSS)
}

// drawer implements ui.Drawer in cells. Font sizes are ignored.
type drawer struct {
	screen tcell.Screen
}

func rgb(c color.RGBA) tcell.Color {
	return tcell.NewRGBColor(int32(c.R), int32(c.G), int32(c.B))
}

func (d *drawer) FillRect(x, y, w, h int32, c color.RGBA) {
	style := tcell.StyleDefault.Background(rgb(c))
	for row := y; row < y+h; row++ {
		for col := x; col < x+w; col++ {
			d.screen.SetContent(int(col), int(row), ' ', nil, style)
		}
	}
}

func (d *drawer) StrokeRect(x, y, w, h int32, c color.RGBA) {}

func (d *drawer) Text(x, y int32, s string, size int32, c color.RGBA) {
	col := int(x)
	for _, r := range s {
		_, _, style, _ := d.screen.GetContent(col, int(y))
		d.screen.SetContent(col, int(y), r, nil, style.Foreground(rgb(c)))
		col++
	}
}

func (d *drawer) MeasureText(s string, size int32) int32 {
	return int32(len([]rune(s)))
}

func (d *drawer) LineHeight(size int32) int32 { return 1 }
