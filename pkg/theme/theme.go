// Package theme holds the colours and font parameters that widgets paint with.
package theme

// Font names understood by the bundled backends.
const (
	FontSansSerif = "sans-serif"
	FontGoRegular = "go-regular"
	FontBasic     = "basic"
)

// Theme is the resolved visual configuration for one application.
type Theme struct {
	WindowBackground Color
	Label            Color
	ButtonDark       Color
	ButtonLight      Color
	Border           Color
	BorderLight      Color

	// FontName selects the text face. See the Font constants.
	FontName string
	// TextSize is the normal text size in pixels.
	TextSize float64
	// ButtonRadius is the corner radius of button backgrounds.
	ButtonRadius float64
	// BorderWidth is the stroke width of button borders.
	BorderWidth float64
}

// Default returns the dark theme used on small panels.
func Default() *Theme {
	return &Theme{
		WindowBackground: Hex(0x292929),
		Label:            Hex(0xf0f0ea),
		ButtonDark:       Hex(0x404048),
		ButtonLight:      Hex(0x707074),
		Border:           Hex(0x3a3a3a),
		BorderLight:      Hex(0xa1a1a1),
		FontName:         FontSansSerif,
		TextSize:         15,
		ButtonRadius:     4,
		BorderWidth:      2,
	}
}

// LineHeight is the height of one line of normal text.
func (t *Theme) LineHeight() float64 {
	return t.TextSize * 1.2
}
