package main

import (
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/Cldfire/mc-legacy-formatting/pretty"
	"github.com/Cldfire/mc-legacy-formatting/slp"
)

var flagTimeout time.Duration

var pingCmd = &cobra.Command{
	Use:   "ping <address>",
	Short: "Fetch a server's status and render its MOTD",
	Long: `Performs a Server List Ping against the given address (port defaults
to 25565) and renders the MOTD, version, and player sample with their
format codes applied.

Status responses use the vanilla '§' marker regardless of config.`,
	Args: cobra.ExactArgs(1),
	Run:  runPing,
}

func init() {
	pingCmd.Flags().DurationVar(&flagTimeout, "timeout", 10*time.Second, "Timeout for the whole exchange")
}

func runPing(cmd *cobra.Command, args []string) {
	status, err := slp.Ping(args[0], flagTimeout)
	if err != nil {
		log.Fatal("ping failed", "addr", args[0], "err", err)
	}

	r := pretty.NewRenderer()

	fmt.Printf("version: %s (protocol %d)\n", r.Text(status.VersionName), status.Protocol)
	fmt.Printf("players: %d/%d\n", status.OnlinePlayers, status.MaxPlayers)
	if status.Latency > 0 {
		fmt.Printf("latency: %s\n", status.Latency.Round(time.Millisecond))
	}

	fmt.Println("description:")
	fmt.Println(r.Text(status.Description))

	if len(status.Sample) > 0 {
		fmt.Println("sample:")
		for _, name := range status.Sample {
			fmt.Printf("  %s\n", r.Text(name))
		}
	}
}
