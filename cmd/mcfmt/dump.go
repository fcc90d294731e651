package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Cldfire/mc-legacy-formatting/fixture"
)

var dumpCmd = &cobra.Command{
	Use:   "dump [string]",
	Short: "Print span constructors for a test fixture",
	Long: `Parses the given string (or stdin if no argument is given) and prints
the spans as Go constructor calls, ready to paste into a table test.`,
	Args: cobra.MaximumNArgs(1),
	Run:  runDump,
}

func runDump(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		log.Fatal("loading config", "err", err)
	}

	var input string
	if len(args) == 1 {
		input = args[0]
	} else {
		data, err := io.ReadAll(os.Stdin)
		if err != nil {
			log.Fatal("reading stdin", "err", err)
		}
		input = strings.TrimSuffix(string(data), "\n")
	}

	fmt.Print(fixture.Format(input, cfg.StartRune()))
}
