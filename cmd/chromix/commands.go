package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chromix/api/palette"
)

// colorArg returns the normalized color at args[i], the default base color
// when absent. A bare RRGGBB gets its leading '#'.
func colorArg(args []string, i int) (string, error) {
	if len(args) <= i {
		return palette.DefaultColor, nil
	}
	value := strings.TrimSpace(args[i])
	if !strings.HasPrefix(value, "#") {
		value = "#" + value
	}
	return palette.NormalizeHex(value)
}

func newSession(opts *options, args []string, i int) (palette.Session, error) {
	hex, err := colorArg(args, i)
	if err != nil {
		return palette.Session{}, err
	}
	return palette.NewSession(hex, opts.outputFormat())
}

// addSchemeFlag registers --scheme on cmd. The returned func resolves the
// kinds to print, the configured ones when the flag is unset.
func addSchemeFlag(cmd *cobra.Command, opts *options) func() ([]palette.Kind, error) {
	var schemes []string
	cmd.Flags().StringSliceVarP(&schemes, "scheme", "s", nil, "limit output to these schemes (repeatable)")

	return func() ([]palette.Kind, error) {
		if len(schemes) == 0 {
			return opts.cfg.kinds(), nil
		}
		kinds := make([]palette.Kind, 0, len(schemes))
		for _, name := range schemes {
			k, err := palette.ParseKind(name)
			if err != nil {
				return nil, err
			}
			kinds = append(kinds, k)
		}
		return kinds, nil
	}
}

func newPaletteCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "palette [color]",
		Short: "Print every harmony scheme for a color",
		Example: `  chromix palette "#6366F1"
  chromix palette ff0000 --scheme triadic --scheme tints -f rgb`,
		Args: cobra.MaximumNArgs(1),
	}
	selectedKinds := addSchemeFlag(cmd, opts)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		kinds, err := selectedKinds()
		if err != nil {
			return err
		}
		s, err := newSession(opts, args, 0)
		if err != nil {
			return err
		}
		printSession(cmd.OutOrStdout(), s, kinds)
		return nil
	}
	return cmd
}

func newSchemeCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "scheme <kind> [color]",
		Short: "Print one harmony scheme",
		Long:  "Print one harmony scheme. Kinds: " + kindList() + ".",
		Args:  cobra.RangeArgs(1, 2),
		RunE: func(cmd *cobra.Command, args []string) error {
			kind, err := palette.ParseKind(args[0])
			if err != nil {
				return err
			}
			hex, err := colorArg(args, 1)
			if err != nil {
				return err
			}
			scheme, err := palette.Generate(kind, hex)
			if err != nil {
				return err
			}
			printScheme(cmd.OutOrStdout(), scheme.Name, scheme.Colors, palette.FormatScheme(scheme, opts.outputFormat()))
			return nil
		},
	}
}

func kindList() string {
	names := make([]string, len(palette.Kinds))
	for i, k := range palette.Kinds {
		names[i] = string(k)
	}
	return strings.Join(names, ", ")
}

func newConvertCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "convert [color]",
		Short: "Show a color in every notation",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := colorArg(args, 0)
			if err != nil {
				return err
			}
			w := cmd.OutOrStdout()
			fmt.Fprintln(w, swatch(hex, hex))
			for _, f := range palette.Formats {
				fmt.Fprintf(w, "  %-5s %s\n", clrDim.Sprint(f), palette.FormatColor(hex, f))
			}
			return nil
		},
	}
}

func newFormatCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "format [color]",
		Short: "Print a color in the selected format",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := colorArg(args, 0)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), palette.FormatColor(hex, opts.outputFormat()))
			return nil
		},
	}
}

func newScoreCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "score [color]",
		Short: "Grade a color's harmony",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			hex, err := colorArg(args, 0)
			if err != nil {
				return err
			}
			score, err := palette.Score(hex)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "%s %d/100 %s\n",
				swatch(hex, palette.FormatColor(hex, palette.FormatHSL)),
				score.Value,
				titleCaser.String(string(score.Label)),
			)
			return nil
		},
	}
}

func newInvertCmd(opts *options) *cobra.Command {
	var full bool

	cmd := &cobra.Command{
		Use:   "invert [color]",
		Short: "Invert a color",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(opts, args, 0)
			if err != nil {
				return err
			}
			inverted := s.Invert()

			w := cmd.OutOrStdout()
			if full {
				printSession(w, inverted, opts.cfg.kinds())
				return nil
			}
			f := opts.outputFormat()
			fmt.Fprintf(w, "%s -> %s\n",
				swatch(s.Color, palette.FormatColor(s.Color, f)),
				swatch(inverted.Color, palette.FormatColor(inverted.Color, f)),
			)
			return nil
		},
	}
	cmd.Flags().BoolVar(&full, "palette", false, "print the full palette of the inverted color")
	return cmd
}

func newExportCmd(opts *options) *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "export [color]",
		Short: "Export the palette as CSS custom properties",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(opts, args, 0)
			if err != nil {
				return err
			}
			css := palette.ExportCSS(s.Palette)

			if output == "" || output == "-" {
				fmt.Fprint(cmd.OutOrStdout(), css)
				return nil
			}
			if err := os.WriteFile(output, []byte(css), 0o644); err != nil {
				return fmt.Errorf("write %s: %w", output, err)
			}
			success(cmd.OutOrStdout(), "Palette exported to %s", output)
			return nil
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "write to file instead of stdout")
	return cmd
}

func newCopyCmd(opts *options) *cobra.Command {
	return &cobra.Command{
		Use:   "copy [color]",
		Short: "List every palette color once, one per line",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(opts, args, 0)
			if err != nil {
				return err
			}
			for _, c := range palette.CopyAll(s.Palette, s.Format) {
				fmt.Fprintln(cmd.OutOrStdout(), c)
			}
			return nil
		},
	}
}

func newShareCmd(opts *options) *cobra.Command {
	var base string

	cmd := &cobra.Command{
		Use:   "share [color]",
		Short: "Print a shareable palette link",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(opts, args, 0)
			if err != nil {
				return err
			}
			if base == "" {
				base = opts.cfg.ShareBaseURL
			}
			link, err := palette.ShareURL(base, s.Palette)
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), link)
			return nil
		},
	}
	cmd.Flags().StringVar(&base, "base", "", "page the link points to (default from config)")
	return cmd
}

func newOpenCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "open <link>",
		Short: "Print the palette behind a shared link",
		Example: `  chromix open "https://chromix.example/?palette=%23141430,%23282960"
  chromix open "palette=%23FF0000" -s complementary`,
		Args: cobra.ExactArgs(1),
	}
	selectedKinds := addSchemeFlag(cmd, opts)

	cmd.RunE = func(cmd *cobra.Command, args []string) error {
		kinds, err := selectedKinds()
		if err != nil {
			return err
		}
		query := args[0]
		if _, after, found := strings.Cut(query, "?"); found {
			query = after
		}
		hex, err := palette.ParseShared(query)
		if err != nil {
			return err
		}
		s, err := palette.NewSession(hex, opts.outputFormat())
		if err != nil {
			return err
		}
		info(cmd.OutOrStdout(), "Palette loaded from link")
		printSession(cmd.OutOrStdout(), s, kinds)
		return nil
	}
	return cmd
}

func newQRCmd(opts *options) *cobra.Command {
	var size int

	cmd := &cobra.Command{
		Use:   "qr [color]",
		Short: "Print the QR payload and image link for a palette",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := newSession(opts, args, 0)
			if err != nil {
				return err
			}
			if size <= 0 {
				size = opts.cfg.QRSize
			}
			payload := palette.QRPayload(s.Palette)
			w := cmd.OutOrStdout()
			fmt.Fprintf(w, "%s %s\n", clrDim.Sprint("payload"), payload)
			fmt.Fprintf(w, "%s %s\n", clrDim.Sprint("image  "), palette.QRImageURL(payload, size))
			return nil
		},
	}
	cmd.Flags().IntVar(&size, "size", 0, "image edge in pixels (default from config)")
	return cmd
}
