package graphics

import (
	"image/color"

	rl "github.com/gen2brain/raylib-go/raylib"

	"orrery/internal/fonts"
)

const fontLoadSize = 32

// overlay implements ui.Drawer with raylib 2D calls. Without a font file it uses raylib's
// default font.
type overlay struct {
	font    rl.Font
	hasFont bool
}

func newOverlay(dirs []string) (*overlay, string) {
	o := &overlay{}
	path, err := fonts.Find(dirs, "")
	if err != nil {
		return o, ""
	}
	o.font = rl.LoadFontEx(path, fontLoadSize, nil)
	o.hasFont = rl.IsFontValid(o.font) && o.font.Texture.ID != 0
	if !o.hasFont {
		return o, ""
	}
	rl.SetTextureFilter(o.font.Texture, rl.FilterBilinear)
	return o, path
}

func (o *overlay) unload() {
	if o.hasFont {
		rl.UnloadFont(o.font)
	}
}

func (o *overlay) FillRect(x, y, w, h int32, c color.RGBA) {
	rl.DrawRectangle(x, y, w, h, c)
}

func (o *overlay) StrokeRect(x, y, w, h int32, c color.RGBA) {
	rl.DrawRectangleLines(x, y, w, h, c)
}

func (o *overlay) Text(x, y int32, s string, size int32, c color.RGBA) {
	if o.hasFont {
		rl.DrawTextEx(o.font, s, rl.NewVector2(float32(x), float32(y)), float32(size), 1, c)
		return
	}
	rl.DrawText(s, x, y, size, c)
}

func (o *overlay) MeasureText(s string, size int32) int32 {
	if o.hasFont {
		return int32(rl.MeasureTextEx(o.font, s, float32(size), 1).X)
	}
	return rl.MeasureText(s, size)
}

func (o *overlay) LineHeight(size int32) int32 {
	return size + 4
}
