package palette

import (
	colorful "github.com/lucasb-eyer/go-colorful"
)

// ContrastText picks black or white text for a swatch of the given color,
// whichever sits further from it in CIE L*
func ContrastText(c RGB) RGB {
	col := colorful.Color{
		R: float64(c.R) / 255,
		G: float64(c.G) / 255,
		B: float64(c.B) / 255,
	}
	l, _, _ := col.Lab()
	if l > 0.5 {
		return RGB{}
	}
	return RGB{R: 255, G: 255, B: 255}
}
