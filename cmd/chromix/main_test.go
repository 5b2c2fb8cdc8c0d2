package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/fatih/color"

	"github.com/chromix/api/palette"
)

// run executes the CLI without colors against configPath, a missing file
// unless the test wrote one
func run(t *testing.T, configPath string, args ...string) (string, error) {
	t.Helper()
	color.NoColor = true
	if configPath == "" {
		configPath = filepath.Join(t.TempDir(), "missing.toml")
	}

	root := newRootCmd()
	var out bytes.Buffer
	root.SetOut(&out)
	root.SetErr(&out)
	root.SetArgs(append([]string{"--config", configPath}, args...))
	err := root.Execute()
	return out.String(), err
}

func mustRun(t *testing.T, args ...string) string {
	t.Helper()
	out, err := run(t, "", args...)
	if err != nil {
		t.Fatalf("chromix %s: %v\n%s", strings.Join(args, " "), err, out)
	}
	return out
}

func TestPaletteCommand(t *testing.T) {
	out := mustRun(t, "palette", "#6366F1", "--scheme", "monochromatic")

	for _, want := range []string{"#6366F1", "100 (Excellent)", "Monochromatic", " #141430 ", " #4F52C1 "} {
		if !strings.Contains(out, want) {
			t.Errorf("expected %q in output:\n%s", want, out)
		}
	}
	if strings.Contains(out, "Complementary") {
		t.Errorf("scheme filter ignored:\n%s", out)
	}
}

func TestPaletteCommandFormats(t *testing.T) {
	out := mustRun(t, "palette", "6366f1", "-f", "rgb", "-s", "monochromatic")
	if !strings.Contains(out, "rgb(99, 102, 241)") {
		t.Errorf("expected rgb swatch labels:\n%s", out)
	}

	if _, err := run(t, "", "palette", "-f", "lab"); err == nil {
		t.Error("expected an error for an unknown format")
	}
	if _, err := run(t, "", "palette", "-s", "pentadic"); err == nil {
		t.Error("expected an error for an unknown scheme")
	}
}

func TestPaletteCommandDefaultsToEveryScheme(t *testing.T) {
	out := mustRun(t, "palette")
	for _, kind := range palette.Kinds {
		if !strings.Contains(out, kind.Name()) {
			t.Errorf("missing %s in default palette", kind.Name())
		}
	}
}

func TestInvalidColorArgument(t *testing.T) {
	_, err := run(t, "", "score", "blue")
	if !errors.Is(err, palette.ErrInvalidColorFormat) {
		t.Errorf("expected ErrInvalidColorFormat, got %v", err)
	}
}

func TestSingleColorCommands(t *testing.T) {
	tests := []struct {
		name string
		args []string
		want string
	}{
		{name: "scheme", args: []string{"scheme", "complementary", "#6366F1"}, want: " #9C990E "},
		{name: "convert", args: []string{"convert", "#6366F1"}, want: "cmyk(59%, 58%, 0%, 5%)"},
		{name: "format", args: []string{"format", "#6366F1", "-f", "hsl"}, want: "hsl(239, 84%, 67%)\n"},
		{name: "score", args: []string{"score", "#6366F1"}, want: "100/100 Excellent"},
		{name: "invert", args: []string{"invert", "#6366F1"}, want: " #6366F1  ->  #9C990E "},
		{name: "invert palette", args: []string{"invert", "#6366F1", "--palette"}, want: "Base  #9C990E "},
		{name: "qr", args: []string{"qr", "#6366F1", "--size", "64"}, want: "size=64x64"},
		{name: "export", args: []string{"export", "#6366F1"}, want: "--color-tints-5: #FFFFFF;"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if out := mustRun(t, tt.args...); !strings.Contains(out, tt.want) {
				t.Errorf("expected %q in output:\n%s", tt.want, out)
			}
		})
	}
}

func TestCopyCommand(t *testing.T) {
	out := mustRun(t, "copy", "#6366F1")
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if lines[0] != "#141430" {
		t.Errorf("expected #141430 first, got %q", lines[0])
	}
	seen := map[string]bool{}
	for _, line := range lines {
		if seen[line] {
			t.Errorf("duplicate %s", line)
		}
		seen[line] = true
	}
}

func TestExportToFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "palette.css")
	out := mustRun(t, "export", "#6366F1", "-o", path)
	if !strings.Contains(out, "Palette exported to "+path) {
		t.Errorf("expected success line, got:\n%s", out)
	}

	css, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("export file missing: %v", err)
	}
	if !strings.HasPrefix(string(css), "/* ===== Chromix Pro - Color Palette ===== */") {
		t.Errorf("unexpected stylesheet header:\n%s", css)
	}
}

func TestShareAndOpen(t *testing.T) {
	link := strings.TrimSpace(mustRun(t, "share", "#6366F1", "--base", "https://chromix.example/"))
	if !strings.HasPrefix(link, "https://chromix.example/?palette=%23141430") {
		t.Fatalf("unexpected link %q", link)
	}

	out := mustRun(t, "open", link, "-s", "monochromatic")
	if !strings.Contains(out, "Palette loaded from link") || !strings.Contains(out, "Base  #141430 ") {
		t.Errorf("shared palette not opened on its first color:\n%s", out)
	}
	if strings.Contains(out, "Tints") {
		t.Errorf("--scheme should limit the opened palette to monochromatic:\n%s", out)
	}

	if _, err := run(t, "", "open", link, "--scheme", "pastel"); err == nil {
		t.Error("expected an error for an unknown scheme")
	}

	if _, err := run(t, "", "open", "https://chromix.example/"); err == nil {
		t.Error("expected an error for a link without a palette")
	}
}
