package main

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"

	"github.com/chromix/api/palette"
)

const configFileName = ".chromix.toml"

// Config holds the optional ~/.chromix.toml settings. Command line flags
// take precedence over every field.
type Config struct {
	Format       string   `toml:"format"`
	Schemes      []string `toml:"schemes"`
	NoColor      bool     `toml:"no_color"`
	ShareBaseURL string   `toml:"share_base_url"`
	QRSize       int      `toml:"qr_size"`
}

func defaultConfig() Config {
	return Config{
		Format:       string(palette.FormatHex),
		ShareBaseURL: "http://localhost:5173/",
		QRSize:       palette.DefaultQRSize,
	}
}

// defaultConfigPath honours CHROMIX_CONFIG before falling back to the home
// directory
func defaultConfigPath() (string, error) {
	if path := os.Getenv("CHROMIX_CONFIG"); path != "" {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("locate home directory: %w", err)
	}
	return filepath.Join(home, configFileName), nil
}

// loadConfig reads path over the defaults. A missing file is not an error.
func loadConfig(path string) (Config, error) {
	cfg := defaultConfig()
	if path == "" {
		return cfg, nil
	}

	md, err := toml.DecodeFile(path, &cfg)
	if errors.Is(err, os.ErrNotExist) {
		return defaultConfig(), nil
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("config %s: unknown keys %s", path, strings.Join(keys, ", "))
	}

	return cfg, cfg.validate()
}

func (c Config) validate() error {
	if !palette.ParseFormat(c.Format).Valid() {
		return fmt.Errorf("config: unknown format %q", c.Format)
	}
	for _, s := range c.Schemes {
		if _, err := palette.ParseKind(s); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	if c.QRSize < 0 {
		return fmt.Errorf("config: qr_size must be positive, got %d", c.QRSize)
	}
	return nil
}

// kinds resolves the configured scheme names, defaulting to every kind
func (c Config) kinds() []palette.Kind {
	if len(c.Schemes) == 0 {
		return palette.Kinds
	}
	out := make([]palette.Kind, 0, len(c.Schemes))
	for _, s := range c.Schemes {
		if k, err := palette.ParseKind(s); err == nil {
			out = append(out, k)
		}
	}
	return out
}
