package main

import (
	"fmt"
	"io"
	"strings"

	"github.com/fatih/color"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/chromix/api/palette"
)

var (
	clrDim     = color.New(color.FgHiBlack)
	clrBold    = color.New(color.Bold)
	clrSuccess = color.New(color.FgGreen)
	clrError   = color.New(color.FgRed)
	clrInfo    = color.New(color.FgBlue)

	titleCaser = cases.Title(language.English)
)

// swatch renders label on a block of hex, with black or white text chosen
// for legibility
func swatch(hex, label string) string {
	bg := palette.HexToRGB(hex)
	fg := palette.ContrastText(bg)
	return color.RGB(fg.R, fg.G, fg.B).AddBgRGB(bg.R, bg.G, bg.B).Sprint(" " + label + " ")
}

func printScheme(w io.Writer, name string, colors, labels []string) {
	fmt.Fprintln(w, clrBold.Sprint(name))
	parts := make([]string, len(colors))
	for i, c := range colors {
		parts[i] = swatch(c, labels[i])
	}
	fmt.Fprintln(w, "  "+strings.Join(parts, " "))
}

func printSession(w io.Writer, s palette.Session, kinds []palette.Kind) {
	fmt.Fprintf(w, "%s %s  %s %d (%s)\n\n",
		clrDim.Sprint("Base"),
		swatch(s.Color, s.Color),
		clrDim.Sprint("Harmony"),
		s.Score.Value,
		titleCaser.String(string(s.Score.Label)),
	)

	formatted := s.Formatted()
	for _, kind := range kinds {
		scheme, ok := s.Palette.Scheme(kind)
		if !ok {
			continue
		}
		printScheme(w, scheme.Name, scheme.Colors, formatted[kind])
	}
}

func success(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", clrSuccess.Sprint("✔"), fmt.Sprintf(format, args...))
}

func info(w io.Writer, format string, args ...any) {
	fmt.Fprintf(w, "%s %s\n", clrInfo.Sprint("ℹ"), fmt.Sprintf(format, args...))
}

func failure(w io.Writer, err error) {
	fmt.Fprintf(w, "%s %v\n", clrError.Sprint("✖"), err)
}
