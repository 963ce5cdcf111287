package ui

// DefaultCSS styles the tooltip, inspector and HUD when no stylesheet file is present.
const DefaultCSS = `
.tooltip { background: #101820e0; color: #f0f0f0; border: #b3b7ba; padding: 6px; font-size: 18px; }
.hud { left: 12px; top: 12px; color: #7fff7f; font-size: 18px; padding: 0; }
.inspector { left: 100%; top: 10%; background: #181818f0; border: #505050; color: #d0d0d0; padding: 8px; font-size: 18px; }
`

// DefaultStylesheet parses DefaultCSS.
func DefaultStylesheet() *Stylesheet {
	sheet, err := ParseCSS(DefaultCSS)
	if err != nil {
		return &Stylesheet{}
	}
	return sheet
}
