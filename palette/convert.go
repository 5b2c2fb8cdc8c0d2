package palette

import (
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
)

// ErrInvalidColorFormat is returned for any color string that is not #RRGGBB
var ErrInvalidColorFormat = errors.New("invalid color format")

var hexPattern = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

// RGB is the canonical color representation, each channel in [0,255]
type RGB struct {
	R int `json:"r"`
	G int `json:"g"`
	B int `json:"b"`
}

// HSL holds hue in degrees [0,360) and saturation/lightness in percent
type HSL struct {
	H int `json:"h"`
	S int `json:"s"`
	L int `json:"l"`
}

// CMYK holds the four ink percentages in [0,100]
type CMYK struct {
	C int `json:"c"`
	M int `json:"m"`
	Y int `json:"y"`
	K int `json:"k"`
}

// IsValidHex reports whether s matches #RRGGBB
func IsValidHex(s string) bool {
	return hexPattern.MatchString(s)
}

// NormalizeHex validates hex and returns its uppercase canonical form
func NormalizeHex(hex string) (string, error) {
	if !IsValidHex(hex) {
		return "", fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}
	return strings.ToUpper(hex), nil
}

// ParseHex validates hex and decodes it into RGB
func ParseHex(hex string) (RGB, error) {
	if !IsValidHex(hex) {
		return RGB{}, fmt.Errorf("%w: %q", ErrInvalidColorFormat, hex)
	}
	return HexToRGB(hex), nil
}

// HexToRGB decodes the 2-digit groups at offsets 1, 3 and 5. The input must
// already be validated; malformed input decodes to zero channels.
func HexToRGB(hex string) RGB {
	if len(hex) != 7 {
		return RGB{}
	}
	r, _ := strconv.ParseUint(hex[1:3], 16, 8)
	g, _ := strconv.ParseUint(hex[3:5], 16, 8)
	b, _ := strconv.ParseUint(hex[5:7], 16, 8)
	return RGB{R: int(r), G: int(g), B: int(b)}
}

// RGBToHex encodes the channels as uppercase #RRGGBB, clamping each to [0,255]
func RGBToHex(r, g, b int) string {
	return fmt.Sprintf("#%02X%02X%02X", clampChannel(r), clampChannel(g), clampChannel(b))
}

// Hex returns the canonical #RRGGBB encoding of c
func (c RGB) Hex() string {
	return RGBToHex(c.R, c.G, c.B)
}

// HSL converts c to HSL
func (c RGB) HSL() HSL {
	return RGBToHSL(c.R, c.G, c.B)
}

// CMYK converts c to CMYK
func (c RGB) CMYK() CMYK {
	return RGBToCMYK(c.R, c.G, c.B)
}

// RGBToHSL converts using the max/min channel method. Achromatic colors get
// hue 0 and saturation 0. Components are rounded to integers, so a trip back
// through HSLToHex may drift by a few units per channel; use RGBToHSLPrecise
// when that matters.
func RGBToHSL(r, g, b int) HSL {
	h, s, l := RGBToHSLPrecise(r, g, b)
	return HSL{
		H: wrapHue(round(h)),
		S: round(s),
		L: round(l),
	}
}

// RGBToHSLPrecise is RGBToHSL without the final rounding: hue in degrees,
// saturation and lightness in percent.
func RGBToHSLPrecise(r, g, b int) (h, s, l float64) {
	rf := float64(r) / 255
	gf := float64(g) / 255
	bf := float64(b) / 255

	max := math.Max(rf, math.Max(gf, bf))
	min := math.Min(rf, math.Min(gf, bf))
	l = (max + min) / 2

	if max == min {
		return 0, 0, l * 100
	}

	d := max - min
	if l > 0.5 {
		s = d / (2 - max - min)
	} else {
		s = d / (max + min)
	}

	switch max {
	case rf:
		h = (gf - bf) / d
		if gf < bf {
			h += 6
		}
	case gf:
		h = (bf-rf)/d + 2
	default:
		h = (rf-gf)/d + 4
	}
	h /= 6

	return h * 360, s * 100, l * 100
}

// HSLToRGB converts with the a/k formulation:
//
//	a = s * min(l, 1-l)
//	k = (n + h/30) mod 12
//	channel = l - a * max(min(k-3, 9-k, 1), -1)
//
// for n = 0, 8, 4. Saturation and lightness may be fractional; they are
// clamped to [0,100] and the hue is wrapped into [0,360) first.
func HSLToRGB(h, s, l float64) RGB {
	h = math.Mod(h, 360)
	if h < 0 {
		h += 360
	}
	s = clampPercent(s) / 100
	l = clampPercent(l) / 100

	a := s * math.Min(l, 1-l)
	f := func(n float64) int {
		k := math.Mod(n+h/30, 12)
		v := l - a*math.Max(math.Min(math.Min(k-3, 9-k), 1), -1)
		return clampChannel(round(255 * v))
	}
	return RGB{R: f(0), G: f(8), B: f(4)}
}

// HSLToHex converts HSL to canonical #RRGGBB, see HSLToRGB
func HSLToHex(h, s, l float64) string {
	return HSLToRGB(h, s, l).Hex()
}

// RGBToCMYK derives ink percentages. Pure black forces c=m=y=0.
func RGBToCMYK(r, g, b int) CMYK {
	c := 1 - float64(r)/255
	m := 1 - float64(g)/255
	y := 1 - float64(b)/255
	k := math.Min(c, math.Min(m, y))

	if k == 1 {
		c, m, y = 0, 0, 0
	} else {
		c = (c - k) / (1 - k)
		m = (m - k) / (1 - k)
		y = (y - k) / (1 - k)
	}

	return CMYK{
		C: round(c * 100),
		M: round(m * 100),
		Y: round(y * 100),
		K: round(k * 100),
	}
}

// Invert returns the channel-wise inverse 255 - channel
func Invert(c RGB) RGB {
	return RGB{R: 255 - c.R, G: 255 - c.G, B: 255 - c.B}
}

// InvertHex validates hex and returns its inverse
func InvertHex(hex string) (string, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return "", err
	}
	return Invert(rgb).Hex(), nil
}

func round(v float64) int {
	return int(math.Round(v))
}

func clampChannel(v int) int {
	if v < 0 {
		return 0
	}
	if v > 255 {
		return 255
	}
	return v
}

func clampPercent(v float64) float64 {
	return math.Max(0, math.Min(100, v))
}

func wrapHue(h int) int {
	h %= 360
	if h < 0 {
		h += 360
	}
	return h
}
