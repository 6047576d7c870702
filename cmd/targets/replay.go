package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-targets/internal/replay"
)

var replayCmd = &cobra.Command{
	Use:   "replay <code>",
	Short: "Play a shared replay code",
	Long: `Decode a replay code and play exactly the session it describes.
The COLOR-SHAPE- label is optional.

Examples:
  targets replay 500001300601100012121
  targets replay BLUE-CIRCLE-500001300601100012121`,
	Args: cobra.ExactArgs(1),
	Run:  runReplay,
}

func runReplay(_ *cobra.Command, args []string) {
	cfg, err := replay.Decode(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	logger.Debug("replaying code", "code", cfg.Seed)
	playConfig(cfg)
}
