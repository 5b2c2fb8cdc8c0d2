package palette

import "fmt"

// Kind identifies one of the harmony schemes
type Kind string

const (
	Monochromatic      Kind = "monochromatic"
	Complementary      Kind = "complementary"
	Analogous          Kind = "analogous"
	Triadic            Kind = "triadic"
	Tetradic           Kind = "tetradic"
	SplitComplementary Kind = "split-complementary"
	Square             Kind = "square"
	Shades             Kind = "shades"
	Tints              Kind = "tints"
)

// Kinds lists every scheme kind in palette order
var Kinds = []Kind{
	Monochromatic,
	Complementary,
	Analogous,
	Triadic,
	Tetradic,
	SplitComplementary,
	Square,
	Shades,
	Tints,
}

var kindNames = map[Kind]string{
	Monochromatic:      "Monochromatic",
	Complementary:      "Complementary",
	Analogous:          "Analogous",
	Triadic:            "Triadic",
	Tetradic:           "Tetradic",
	SplitComplementary: "Split Complementary",
	Square:             "Square",
	Shades:             "Shades",
	Tints:              "Tints",
}

type generator func(base RGB) []string

var generators = map[Kind]generator{
	Monochromatic:      monochromatic,
	Complementary:      complementary,
	Analogous:          analogous,
	Triadic:            triadic,
	Tetradic:           tetradic,
	SplitComplementary: splitComplementary,
	Square:             square,
	Shades:             shades,
	Tints:              tints,
}

// Name returns the human readable scheme name
func (k Kind) Name() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return string(k)
}

// Valid reports whether k is one of the known kinds
func (k Kind) Valid() bool {
	_, ok := generators[k]
	return ok
}

// ParseKind resolves a scheme slug
func ParseKind(s string) (Kind, error) {
	k := Kind(s)
	if !k.Valid() {
		return "", fmt.Errorf("unknown scheme kind %q", s)
	}
	return k, nil
}

// Scheme is an ordered list of colors derived from one base color
type Scheme struct {
	Kind   Kind     `json:"kind"`
	Name   string   `json:"name"`
	Colors []string `json:"colors"`
}

// Palette is every scheme generated for one base color
type Palette struct {
	Base    string   `json:"base"`
	Schemes []Scheme `json:"schemes"`
}

// Scheme returns the scheme of the given kind, if present
func (p Palette) Scheme(kind Kind) (Scheme, bool) {
	for _, s := range p.Schemes {
		if s.Kind == kind {
			return s, true
		}
	}
	return Scheme{}, false
}

// Generate derives one scheme from a #RRGGBB base color
func Generate(kind Kind, hex string) (Scheme, error) {
	gen, ok := generators[kind]
	if !ok {
		return Scheme{}, fmt.Errorf("unknown scheme kind %q", kind)
	}
	base, err := ParseHex(hex)
	if err != nil {
		return Scheme{}, err
	}
	return Scheme{Kind: kind, Name: kind.Name(), Colors: gen(base)}, nil
}

// GenerateAll derives the full palette for a #RRGGBB base color
func GenerateAll(hex string) (Palette, error) {
	base, err := ParseHex(hex)
	if err != nil {
		return Palette{}, err
	}

	p := Palette{Base: base.Hex(), Schemes: make([]Scheme, 0, len(Kinds))}
	for _, kind := range Kinds {
		p.Schemes = append(p.Schemes, Scheme{
			Kind:   kind,
			Name:   kind.Name(),
			Colors: generators[kind](base),
		})
	}
	return p, nil
}

func scale(c RGB, factor float64) string {
	return RGBToHex(
		round(float64(c.R)*factor),
		round(float64(c.G)*factor),
		round(float64(c.B)*factor),
	)
}

func rotate(h int, degrees int) float64 {
	return float64(wrapHue(h + degrees))
}

func monochromatic(base RGB) []string {
	colors := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		colors = append(colors, scale(base, 0.2+float64(i)*0.2))
	}
	return colors
}

func complementary(base RGB) []string {
	comp := Invert(base)
	mid := RGBToHex(
		round(float64(base.R+comp.R)/2),
		round(float64(base.G+comp.G)/2),
		round(float64(base.B+comp.B)/2),
	)
	return []string{
		base.Hex(),
		comp.Hex(),
		mid,
		scale(base, 0.7),
		scale(comp, 0.7),
	}
}

func analogous(base RGB) []string {
	hsl := base.HSL()
	s, l := float64(hsl.S), float64(hsl.L)

	colors := make([]string, 0, 5)
	for i := -2; i <= 2; i++ {
		colors = append(colors, HSLToHex(rotate(hsl.H, i*30), s, l))
	}
	return colors
}

func triadic(base RGB) []string {
	hsl := base.HSL()
	h, s, l := float64(hsl.H), float64(hsl.S), float64(hsl.L)
	return []string{
		base.Hex(),
		HSLToHex(rotate(hsl.H, 120), s, l),
		HSLToHex(rotate(hsl.H, 240), s, l),
		HSLToHex(h, s*0.7, l),
		HSLToHex(h, s*1.3, l),
	}
}

func tetradic(base RGB) []string {
	hsl := base.HSL()
	h, s, l := float64(hsl.H), float64(hsl.S), float64(hsl.L)
	return []string{
		base.Hex(),
		HSLToHex(rotate(hsl.H, 90), s, l),
		HSLToHex(rotate(hsl.H, 180), s, l),
		HSLToHex(rotate(hsl.H, 270), s, l),
		HSLToHex(h, s*0.5, l*0.8),
	}
}

func splitComplementary(base RGB) []string {
	hsl := base.HSL()
	h, s, l := float64(hsl.H), float64(hsl.S), float64(hsl.L)
	return []string{
		base.Hex(),
		HSLToHex(rotate(hsl.H, 150), s, l),
		HSLToHex(rotate(hsl.H, 210), s, l),
		HSLToHex(h, s*0.8, l*0.9),
		HSLToHex(h, s*0.6, l*1.1),
	}
}

func square(base RGB) []string {
	hsl := base.HSL()
	h, s, l := float64(hsl.H), float64(hsl.S), float64(hsl.L)
	return []string{
		base.Hex(),
		HSLToHex(rotate(hsl.H, 90), s, l),
		HSLToHex(rotate(hsl.H, 180), s, l),
		HSLToHex(rotate(hsl.H, 270), s, l),
		HSLToHex(h, s*0.8, l*1.1),
	}
}

func shades(base RGB) []string {
	colors := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		colors = append(colors, scale(base, 1-float64(i)/4))
	}
	return colors
}

func tints(base RGB) []string {
	colors := make([]string, 0, 5)
	for i := 0; i < 5; i++ {
		factor := float64(i) / 4
		colors = append(colors, RGBToHex(
			round(float64(base.R)+float64(255-base.R)*factor),
			round(float64(base.G)+float64(255-base.G)*factor),
			round(float64(base.B)+float64(255-base.B)*factor),
		))
	}
	return colors
}
