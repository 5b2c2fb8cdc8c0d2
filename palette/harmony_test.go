package palette

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestGenerateAllIndigo(t *testing.T) {
	p, err := GenerateAll("#6366f1")
	if err != nil {
		t.Fatal(err)
	}
	if p.Base != "#6366F1" {
		t.Errorf("expected canonical base #6366F1, got %s", p.Base)
	}

	want := map[Kind][]string{
		Monochromatic:      {"#141430", "#282960", "#3B3D91", "#4F52C1", "#6366F1"},
		Complementary:      {"#6366F1", "#9C990E", "#808080", "#4547A9", "#6D6B0A"},
		Analogous:          {"#64F2EF", "#64ADF2", "#6467F2", "#A864F2", "#EF64F2"},
		Triadic:            {"#6366F1", "#F26467", "#67F264", "#797BDC", "#575AFF"},
		Tetradic:           {"#6366F1", "#F264AD", "#F2EF64", "#64F2A8", "#5759BA"},
		SplitComplementary: {"#6366F1", "#F2A864", "#ADF264", "#5658DE", "#9A9BDE"},
		Square:             {"#6366F1", "#F264AD", "#F2EF64", "#64F2A8", "#8F90E9"},
		Shades:             {"#6366F1", "#4A4DB5", "#323379", "#191A3C", "#000000"},
		Tints:              {"#6366F1", "#8A8CF5", "#B1B3F8", "#D8D9FC", "#FFFFFF"},
	}

	if len(p.Schemes) != len(Kinds) {
		t.Fatalf("expected %d schemes, got %d", len(Kinds), len(p.Schemes))
	}
	for i, scheme := range p.Schemes {
		if scheme.Kind != Kinds[i] {
			t.Errorf("scheme %d: expected kind %s, got %s", i, Kinds[i], scheme.Kind)
		}
		if diff := cmp.Diff(want[scheme.Kind], scheme.Colors); diff != "" {
			t.Errorf("%s mismatch (-want +got):\n%s", scheme.Kind, diff)
		}
	}
}

func TestGeneratePrimaryRed(t *testing.T) {
	tests := []struct {
		kind Kind
		want []string
	}{
		{Complementary, []string{"#FF0000", "#00FFFF", "#808080", "#B30000", "#00B3B3"}},
		{Analogous, []string{"#FF00FF", "#FF0080", "#FF0000", "#FF8000", "#FFFF00"}},
		{Triadic, []string{"#FF0000", "#00FF00", "#0000FF", "#D92626", "#FF0000"}},
		{Tetradic, []string{"#FF0000", "#80FF00", "#00FFFF", "#8000FF", "#993333"}},
		{SplitComplementary, []string{"#FF0000", "#00FF80", "#0080FF", "#CF1717", "#D14747"}},
		{Square, []string{"#FF0000", "#80FF00", "#00FFFF", "#8000FF", "#E83030"}},
		{Tints, []string{"#FF0000", "#FF4040", "#FF8080", "#FFBFBF", "#FFFFFF"}},
	}
	for _, tt := range tests {
		t.Run(string(tt.kind), func(t *testing.T) {
			s, err := Generate(tt.kind, "#FF0000")
			if err != nil {
				t.Fatal(err)
			}
			if diff := cmp.Diff(tt.want, s.Colors); diff != "" {
				t.Errorf("mismatch (-want +got):\n%s", diff)
			}
		})
	}
}

func TestGenerateCountsAndFormat(t *testing.T) {
	bases := []string{"#6366F1", "#000000", "#FFFFFF", "#808080", "#FF0000", "#00ff7f", "#123456", "#CC33FF", "#FEFEFE", "#010101"}
	for _, base := range bases {
		p, err := GenerateAll(base)
		if err != nil {
			t.Fatalf("%s: %v", base, err)
		}
		for _, s := range p.Schemes {
			if len(s.Colors) != 5 {
				t.Errorf("%s %s: expected 5 colors, got %d", base, s.Kind, len(s.Colors))
			}
			for _, c := range s.Colors {
				if !IsValidHex(c) || c != FormatColor(c, FormatHex) {
					t.Errorf("%s %s: invalid color %q", base, s.Kind, c)
				}
			}
		}
	}
}

func TestTriadicHueWrap(t *testing.T) {
	// hsl(300, 100%, 50%)
	s, err := Generate(Triadic, "#FF00FF")
	if err != nil {
		t.Fatal(err)
	}
	got := hues(s.Colors[:3])
	if diff := cmp.Diff([]int{300, 60, 180}, got); diff != "" {
		t.Errorf("hue mismatch (-want +got):\n%s", diff)
	}
}

func TestAnalogousHuesNeverNegative(t *testing.T) {
	// hsl(10, 100%, 50%): the two lower samples wrap past zero
	s, err := Generate(Analogous, "#FF2B00")
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]int{310, 340, 10, 40, 70}, hues(s.Colors)); diff != "" {
		t.Errorf("hue mismatch (-want +got):\n%s", diff)
	}
}

func TestComplementHueIsOpposite(t *testing.T) {
	s, err := Generate(Complementary, "#CC33FF")
	if err != nil {
		t.Fatal(err)
	}
	h := hues(s.Colors)
	if (h[0]+180)%360 != h[1] {
		t.Errorf("expected complement hue %d, got %d", (h[0]+180)%360, h[1])
	}
}

func TestGenerateIsDeterministic(t *testing.T) {
	a, _ := GenerateAll("#3A7BD5")
	b, _ := GenerateAll("#3A7BD5")
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("palettes differ:\n%s", diff)
	}
}

func TestGenerateErrors(t *testing.T) {
	if _, err := GenerateAll("#12345"); !errors.Is(err, ErrInvalidColorFormat) {
		t.Errorf("expected ErrInvalidColorFormat, got %v", err)
	}
	if _, err := Generate(Kind("hexadic"), "#123456"); err == nil {
		t.Error("expected error for unknown kind")
	}
	if _, err := ParseKind("split-complementary"); err != nil {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestPaletteScheme(t *testing.T) {
	p, _ := GenerateAll("#6366F1")
	s, ok := p.Scheme(Shades)
	if !ok || s.Name != "Shades" {
		t.Fatalf("expected shades scheme, got %+v", s)
	}
	if _, ok := (Palette{}).Scheme(Shades); ok {
		t.Error("empty palette should not contain schemes")
	}
}

func hues(colors []string) []int {
	out := make([]int, len(colors))
	for i, c := range colors {
		out[i] = HexToRGB(c).HSL().H
	}
	return out
}
