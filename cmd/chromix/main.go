// chromix prints color harmony palettes in the terminal.
//
// Usage:
//
//	chromix palette "#6366F1"
//	chromix palette ff0000 --scheme triadic --scheme tints -f rgb
//	chromix score "#6366F1"
//	chromix export "#6366F1" -o palette.css
//
// Defaults are read from ~/.chromix.toml (or $CHROMIX_CONFIG):
//
//	format = "hsl"
//	schemes = ["monochromatic", "complementary"]
//	no_color = false
package main

import (
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/chromix/api/palette"
)

// version is set via ldflags at build time.
var version = "dev"

// options carries the resolved config and global flags into every command
type options struct {
	configPath string
	format     string
	noColor    bool

	cfg Config
}

// resolve loads the config file and lets explicitly set flags override it
func (o *options) resolve(cmd *cobra.Command) error {
	path := o.configPath
	if path == "" {
		var err error
		if path, err = defaultConfigPath(); err != nil {
			return err
		}
	}
	cfg, err := loadConfig(path)
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("format") {
		cfg.Format = o.format
	}
	if cmd.Flags().Changed("no-color") {
		cfg.NoColor = o.noColor
	}
	if err := cfg.validate(); err != nil {
		return err
	}
	if cfg.NoColor {
		color.NoColor = true
	}

	o.cfg = cfg
	return nil
}

func (o *options) outputFormat() palette.Format {
	return palette.ParseFormat(o.cfg.Format)
}

func newRootCmd() *cobra.Command {
	opts := &options{}

	root := &cobra.Command{
		Use:   "chromix",
		Short: "Color harmony palettes in the terminal",
		Long: `chromix derives harmony schemes from a base color and prints them as
terminal swatches, in hex, rgb, hsl or cmyk notation.

Colors are given as #RRGGBB or RRGGBB. Without a color argument the
default base color #6366F1 is used.`,
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return opts.resolve(cmd)
		},
	}

	root.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.chromix.toml)")
	root.PersistentFlags().StringVarP(&opts.format, "format", "f", "hex", "output format: hex, rgb, hsl or cmyk")
	root.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "print plain text without swatches")

	root.AddCommand(
		newPaletteCmd(opts),
		newSchemeCmd(opts),
		newConvertCmd(opts),
		newFormatCmd(opts),
		newScoreCmd(opts),
		newInvertCmd(opts),
		newExportCmd(opts),
		newCopyCmd(opts),
		newShareCmd(opts),
		newOpenCmd(opts),
		newQRCmd(opts),
	)
	return root
}

func main() {
	root := newRootCmd()
	if err := root.Execute(); err != nil {
		failure(root.ErrOrStderr(), err)
		os.Exit(1)
	}
}
