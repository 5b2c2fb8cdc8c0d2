package palette

import (
	"fmt"
	"strings"
)

// Format is a textual color notation
type Format string

const (
	FormatHex  Format = "hex"
	FormatRGB  Format = "rgb"
	FormatHSL  Format = "hsl"
	FormatCMYK Format = "cmyk"
)

// Formats lists the supported notations
var Formats = []Format{FormatHex, FormatRGB, FormatHSL, FormatCMYK}

// ParseFormat maps a name to a Format, falling back to hex for empty input.
// Unknown names are kept as is and render the color unchanged.
func ParseFormat(s string) Format {
	if s == "" {
		return FormatHex
	}
	return Format(strings.ToLower(s))
}

// Valid reports whether f is one of Formats
func (f Format) Valid() bool {
	switch f {
	case FormatHex, FormatRGB, FormatHSL, FormatCMYK:
		return true
	}
	return false
}

// FormatColor renders a #RRGGBB color in the requested notation. Unknown
// formats, and colors that are not valid hex, are returned unchanged.
func FormatColor(hex string, f Format) string {
	if !IsValidHex(hex) {
		return hex
	}
	rgb := HexToRGB(hex)

	switch f {
	case FormatHex:
		return strings.ToUpper(hex)
	case FormatRGB:
		return fmt.Sprintf("rgb(%d, %d, %d)", rgb.R, rgb.G, rgb.B)
	case FormatHSL:
		hsl := rgb.HSL()
		return fmt.Sprintf("hsl(%d, %d%%, %d%%)", hsl.H, hsl.S, hsl.L)
	case FormatCMYK:
		cmyk := rgb.CMYK()
		return fmt.Sprintf("cmyk(%d%%, %d%%, %d%%, %d%%)", cmyk.C, cmyk.M, cmyk.Y, cmyk.K)
	default:
		return hex
	}
}

// FormatScheme renders every color of s in the given notation
func FormatScheme(s Scheme, f Format) []string {
	out := make([]string, len(s.Colors))
	for i, c := range s.Colors {
		out[i] = FormatColor(c, f)
	}
	return out
}
