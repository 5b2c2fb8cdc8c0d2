package palette

// Label is the verbal grade attached to a harmony score
type Label string

const (
	LabelExcellent        Label = "excellent"
	LabelVeryGood         Label = "very good"
	LabelGood             Label = "good"
	LabelAcceptable       Label = "acceptable"
	LabelNeedsImprovement Label = "needs improvement"
)

// HarmonyScore is a heuristic quality grade for a single color
type HarmonyScore struct {
	Value int   `json:"value"`
	Label Label `json:"label"`
}

// Score grades a #RRGGBB color
func Score(hex string) (HarmonyScore, error) {
	rgb, err := ParseHex(hex)
	if err != nil {
		return HarmonyScore{}, err
	}
	return ScoreHSL(rgb.HSL()), nil
}

// ScoreHSL grades a color from its HSL components. The value is capped at 100
// but has no lower bound.
func ScoreHSL(hsl HSL) HarmonyScore {
	score := 85

	if hsl.S > 70 {
		score += 5
	} else if hsl.S < 30 {
		score -= 5
	}

	if hsl.L > 80 || hsl.L < 20 {
		score -= 5
	} else {
		score += 5
	}

	if hsl.H >= 180 && hsl.H <= 300 {
		score += 5
	}

	label := LabelFor(score)

	if score > 100 {
		score = 100
	}
	return HarmonyScore{Value: score, Label: label}
}

// LabelFor maps a raw score to its grade
func LabelFor(value int) Label {
	switch {
	case value >= 90:
		return LabelExcellent
	case value >= 80:
		return LabelVeryGood
	case value >= 70:
		return LabelGood
	case value >= 60:
		return LabelAcceptable
	default:
		return LabelNeedsImprovement
	}
}
