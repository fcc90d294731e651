// Package config loads the mcfmt tool configuration.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"unicode/utf8"

	"gopkg.in/yaml.v3"
)

// Config holds settings for the mcfmt commands. The core parser takes
// everything it needs as arguments; this only configures the tooling
// around it.
type Config struct {
	// StartChar introduces a format code. "§" unless overridden.
	StartChar string `yaml:"start_char"`

	Preview Preview `yaml:"preview"`
}

// Preview configures the interactive previewer.
type Preview struct {
	// AltScreen runs the previewer on the terminal's alternate screen.
	AltScreen bool `yaml:"alt_screen"`
	// Sample pre-fills the input field.
	Sample string `yaml:"sample"`
}

// Default returns the configuration used when no file is present.
func Default() Config {
	return Config{
		StartChar: "§",
		Preview: Preview{
			AltScreen: true,
			Sample:    "§4Dark red §oand italic §rthen §b§lbold aqua",
		},
	}
}

// Dir returns the mcfmt configuration directory.
// Respects XDG_CONFIG_HOME on Unix, APPDATA on Windows.
func Dir() string {
	var base string

	if runtime.GOOS == "windows" {
		base = os.Getenv("APPDATA")
		if base == "" {
			base = filepath.Join(os.Getenv("USERPROFILE"), "AppData", "Roaming")
		}
	} else {
		base = os.Getenv("XDG_CONFIG_HOME")
		if base == "" {
			home, _ := os.UserHomeDir()
			base = filepath.Join(home, ".config")
		}
	}

	return filepath.Join(base, "mcfmt")
}

// File returns the path to the config file inside Dir.
func File() string {
	return filepath.Join(Dir(), "config.yaml")
}

// Load reads configuration from customPath if given, otherwise from
// File(). A missing default file is not an error; defaults are returned.
// Values absent from the file keep their defaults.
func Load(customPath string) (Config, error) {
	cfg := Default()

	path := customPath
	if path == "" {
		path = File()
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if customPath == "" && os.IsNotExist(err) {
			return cfg, nil
		}
		return cfg, fmt.Errorf("failed to read config %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", path, err)
	}
	if utf8.RuneCountInString(cfg.StartChar) != 1 {
		return cfg, fmt.Errorf("start_char must be a single character, got %q", cfg.StartChar)
	}
	return cfg, nil
}

// StartRune returns the configured start character as a rune.
func (c Config) StartRune() rune {
	r, _ := utf8.DecodeRuneInString(c.StartChar)
	return r
}
