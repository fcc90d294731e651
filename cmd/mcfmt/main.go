// mcfmt is a small toolbox around the legacy formatting parser.
//
// Usage:
//
//	mcfmt preview           - Interactively preview format codes
//	mcfmt dump [string]     - Print span constructors for a test fixture
//	mcfmt ping <address>    - Fetch a server's status and render its MOTD
//
// Global flags:
//
//	--config <path>   - Config file (default: ~/.config/mcfmt/config.yaml)
//	--marker <char>   - Format code marker (overrides config)
package main

import (
	"fmt"
	"unicode/utf8"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Cldfire/mc-legacy-formatting/config"
)

var (
	flagConfig string
	flagMarker string
)

var rootCmd = &cobra.Command{
	Use:   "mcfmt",
	Short: "Tools for Minecraft's legacy formatting codes",
	Long: `mcfmt parses strings containing Minecraft's legacy inline formatting
codes ('§' or '&' followed by a color or style character) and renders
them in the terminal.

Available commands:
  preview  - Interactive live previewer
  dump     - Print span constructors ready to paste into a test
  ping     - Fetch a server's status and render its MOTD

Examples:
  mcfmt preview
  mcfmt dump '§4Dark red §oand italic'
  mcfmt dump --marker '&' '&6Gold'
  mcfmt ping mc.example.com`,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to config YAML")
	rootCmd.PersistentFlags().StringVar(&flagMarker, "marker", "", "Format code marker character")

	rootCmd.AddCommand(previewCmd)
	rootCmd.AddCommand(dumpCmd)
	rootCmd.AddCommand(pingCmd)
}

// loadConfig resolves the config file and applies the marker flag on top.
func loadConfig() (config.Config, error) {
	cfg, err := config.Load(flagConfig)
	if err != nil {
		return cfg, err
	}
	if flagMarker != "" {
		if utf8.RuneCountInString(flagMarker) != 1 {
			return cfg, fmt.Errorf("--marker must be a single character, got %q", flagMarker)
		}
		cfg.StartChar = flagMarker
	}
	return cfg, nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
