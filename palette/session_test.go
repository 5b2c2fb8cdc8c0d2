package palette

import (
	"errors"
	"testing"
)

func TestSession(t *testing.T) {
	s, err := NewSession("#6366f1", FormatRGB)
	if err != nil {
		t.Fatal(err)
	}
	if s.Color != "#6366F1" {
		t.Errorf("expected canonical color, got %s", s.Color)
	}
	if s.Score.Value != 100 {
		t.Errorf("expected score 100, got %d", s.Score.Value)
	}
	if got := s.Formatted()[Tints][4]; got != "rgb(255, 255, 255)" {
		t.Errorf("expected white tint, got %s", got)
	}

	next, err := s.WithColor("#FF0000")
	if err != nil {
		t.Fatal(err)
	}
	if next.Palette.Base != "#FF0000" || next.Format != FormatRGB {
		t.Errorf("unexpected session after color change: %+v", next)
	}
	if s.Palette.Base != "#6366F1" {
		t.Error("previous session must not change")
	}

	if _, err := s.WithColor("red"); !errors.Is(err, ErrInvalidColorFormat) {
		t.Errorf("expected ErrInvalidColorFormat, got %v", err)
	}

	inv := s.Invert()
	if inv.Color != "#9C990E" {
		t.Errorf("expected #9C990E, got %s", inv.Color)
	}
	if inv.Invert().Color != s.Color {
		t.Error("inverting twice should restore the color")
	}

	if f := s.WithFormat(FormatHSL).Format; f != FormatHSL {
		t.Errorf("expected hsl, got %s", f)
	}
}
