package palette

// DefaultColor is the base color a fresh session starts from
const DefaultColor = "#6366F1"

// Session is the working state of a palette editor: the base color, the
// display format and everything derived from them. Every change produces a
// new Session; nothing is updated in place.
type Session struct {
	Color   string       `json:"color"`
	Format  Format       `json:"format"`
	Palette Palette      `json:"palette"`
	Score   HarmonyScore `json:"score"`
}

// NewSession computes the palette and score for hex
func NewSession(hex string, f Format) (Session, error) {
	p, err := GenerateAll(hex)
	if err != nil {
		return Session{}, err
	}
	return Session{
		Color:   p.Base,
		Format:  f,
		Palette: p,
		Score:   ScoreHSL(HexToRGB(p.Base).HSL()),
	}, nil
}

// WithColor replaces the base color, regenerating the palette
func (s Session) WithColor(hex string) (Session, error) {
	return NewSession(hex, s.Format)
}

// WithFormat changes only the display format
func (s Session) WithFormat(f Format) Session {
	s.Format = f
	return s
}

// Invert switches the base color to its inverse
func (s Session) Invert() Session {
	next, err := NewSession(Invert(HexToRGB(s.Color)).Hex(), s.Format)
	if err != nil {
		// s.Color is canonical, so its inverse always parses
		return s
	}
	return next
}

// Formatted returns every scheme's colors rendered in the session format
func (s Session) Formatted() map[Kind][]string {
	out := make(map[Kind][]string, len(s.Palette.Schemes))
	for _, scheme := range s.Palette.Schemes {
		out[scheme.Kind] = FormatScheme(scheme, s.Format)
	}
	return out
}
