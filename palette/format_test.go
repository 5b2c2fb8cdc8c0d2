package palette

import "testing"

func TestFormatColor(t *testing.T) {
	tests := []struct {
		name   string
		color  string
		format Format
		want   string
	}{
		{name: "hex unchanged", color: "#FFFFFF", format: FormatHex, want: "#FFFFFF"},
		{name: "hex uppercased", color: "#6366f1", format: FormatHex, want: "#6366F1"},
		{name: "rgb", color: "#6366F1", format: FormatRGB, want: "rgb(99, 102, 241)"},
		{name: "hsl", color: "#6366F1", format: FormatHSL, want: "hsl(239, 84%, 67%)"},
		{name: "cmyk", color: "#6366F1", format: FormatCMYK, want: "cmyk(59%, 58%, 0%, 5%)"},
		{name: "cmyk black", color: "#000000", format: FormatCMYK, want: "cmyk(0%, 0%, 0%, 100%)"},
		{name: "unknown format", color: "#6366f1", format: Format("lab"), want: "#6366f1"},
		{name: "invalid color", color: "blue", format: FormatRGB, want: "blue"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatColor(tt.color, tt.format); got != tt.want {
				t.Errorf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestParseFormat(t *testing.T) {
	if got := ParseFormat(""); got != FormatHex {
		t.Errorf("expected hex default, got %s", got)
	}
	if got := ParseFormat("CMYK"); got != FormatCMYK {
		t.Errorf("expected cmyk, got %s", got)
	}
	if ParseFormat("lab").Valid() {
		t.Error("lab should not be a valid format")
	}
	for _, f := range Formats {
		if !f.Valid() {
			t.Errorf("%s should be valid", f)
		}
	}
}

func TestFormatScheme(t *testing.T) {
	s := Scheme{Kind: Shades, Colors: []string{"#FF0000", "#000000"}}
	got := FormatScheme(s, FormatRGB)
	if got[0] != "rgb(255, 0, 0)" || got[1] != "rgb(0, 0, 0)" {
		t.Errorf("unexpected formatting: %v", got)
	}
}
