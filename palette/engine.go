package palette

// Engine exposes the palette functions behind a value so collaborators can
// depend on an interface instead of the package
type Engine struct{}

func (Engine) ComputePalette(hex string) (Palette, error) {
	return GenerateAll(hex)
}

func (Engine) FormatColor(hex string, f Format) string {
	return FormatColor(hex, f)
}

func (Engine) ScoreColor(hex string) (HarmonyScore, error) {
	return Score(hex)
}
