package main

import (
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Cldfire/mc-legacy-formatting/ui/preview"
)

var flagSample string

var previewCmd = &cobra.Command{
	Use:   "preview",
	Short: "Interactively preview format codes",
	Long: `Opens a live previewer: type a string containing format codes and see
the rendered result and the span breakdown update as you type.

Keys:
  ctrl+t  - Toggle the marker between '§' and '&'
  ctrl+d  - Toggle the span constructor (fixture) section
  ctrl+g  - Toggle the format code guide
  esc     - Quit`,
	Args: cobra.NoArgs,
	Run:  runPreview,
}

func init() {
	previewCmd.Flags().StringVar(&flagSample, "sample", "", "Initial input field contents")
}

func runPreview(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("loading config", "err", err)
	}

	sample := cfg.Preview.Sample
	if flagSample != "" {
		sample = flagSample
	}

	err = preview.Run(preview.Options{
		StartChar: cfg.StartRune(),
		Sample:    sample,
		AltScreen: cfg.Preview.AltScreen,
	})
	if err != nil {
		log.Fatal("previewer failed", "err", err)
	}
}
