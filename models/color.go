package models

import (
	"fmt"

	"github.com/chromix/api/palette"
)

// ColorDetail describes one color in every supported notation
type ColorDetail struct {
	Hex  ColorHex  `json:"hex"`
	RGB  ColorRGB  `json:"rgb"`
	HSL  ColorHSL  `json:"hsl"`
	CMYK ColorCMYK `json:"cmyk"`
}

type ColorHex struct {
	Value string `json:"value"`
	Clean string `json:"clean"`
}

type ColorRGB struct {
	R     int    `json:"r"`
	G     int    `json:"g"`
	B     int    `json:"b"`
	Value string `json:"value"`
}

type ColorHSL struct {
	H     int    `json:"h"`
	S     int    `json:"s"`
	L     int    `json:"l"`
	Value string `json:"value"`
}

type ColorCMYK struct {
	C     int    `json:"c"`
	M     int    `json:"m"`
	Y     int    `json:"y"`
	K     int    `json:"k"`
	Value string `json:"value"`
}

// NewColorDetail expands a validated #RRGGBB color
func NewColorDetail(hex string) ColorDetail {
	rgb := palette.HexToRGB(hex)
	hsl := rgb.HSL()
	cmyk := rgb.CMYK()
	canonical := rgb.Hex()

	return ColorDetail{
		Hex: ColorHex{
			Value: canonical,
			Clean: canonical[1:],
		},
		RGB: ColorRGB{
			R:     rgb.R,
			G:     rgb.G,
			B:     rgb.B,
			Value: palette.FormatColor(canonical, palette.FormatRGB),
		},
		HSL: ColorHSL{
			H:     hsl.H,
			S:     hsl.S,
			L:     hsl.L,
			Value: palette.FormatColor(canonical, palette.FormatHSL),
		},
		CMYK: ColorCMYK{
			C:     cmyk.C,
			M:     cmyk.M,
			Y:     cmyk.Y,
			K:     cmyk.K,
			Value: palette.FormatColor(canonical, palette.FormatCMYK),
		},
	}
}

// SchemeResponse is one scheme with its colors rendered in the requested format
type SchemeResponse struct {
	Kind      palette.Kind `json:"kind"`
	Name      string       `json:"name"`
	Colors    []string     `json:"colors"`
	Formatted []string     `json:"formatted"`
}

// PaletteResponse is returned by GET /v1/palette
type PaletteResponse struct {
	Base    string               `json:"base"`
	Format  palette.Format       `json:"format"`
	Score   palette.HarmonyScore `json:"score"`
	Schemes []SchemeResponse     `json:"schemes"`
}

type FormatResponse struct {
	Color  string         `json:"color"`
	Format palette.Format `json:"format"`
	Value  string         `json:"value"`
}

type ScoreResponse struct {
	Color string `json:"color"`
	HSL   string `json:"hsl"`
	palette.HarmonyScore
}

type InvertResponse struct {
	Color    string `json:"color"`
	Inverted string `json:"inverted"`
}

type ShareResponse struct {
	Color string `json:"color"`
	URL   string `json:"url"`
}

type QRResponse struct {
	Color    string `json:"color"`
	Payload  string `json:"payload"`
	ImageURL string `json:"imageUrl"`
}

// RGBString renders r, g, b the way stored colors are displayed
func RGBString(r, g, b int) string {
	return fmt.Sprintf("rgb(%d,%d,%d)", r, g, b)
}
