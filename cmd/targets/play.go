package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-targets/internal/platform/tui"
	"github.com/vovakirdan/tui-targets/internal/replay"
)

var playFlags authorFlags

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Author a session, print its replay code, and play it",
	Long: `Build a session from a preset and/or flags, print the replay code
that reproduces it, and start playing.

Examples:
  targets play
  targets play --preset hazards
  targets play --counts 3,2,1,1,2 --size large --boundaries visual
  targets play --input joystick --deadzone 25 --sensitivity low

Controls:
  Arrows/WASD/HJKL  - Move
  Mouse             - Move (mouse and cursor input)
  Enter/Space       - Start
  P                 - Pause
  R                 - Replay (after finishing)
  B/Esc             - Back
  Q                 - Quit`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playFlags.register(playCmd)
}

func runPlay(cmd *cobra.Command, _ []string) {
	cfg, err := playFlags.build(cmd)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	sealed, err := replay.Seal(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Replay code: %s\n", replay.Pretty(sealed.Seed))
	playConfig(sealed)
}

// playConfig runs one session in the terminal and exits non-zero on failure.
func playConfig(cfg replay.Config) {
	store := openStore()
	rc := terminalConfig()

	err := tui.Run(cfg, env(store), rc.ScreenW, rc.ScreenH)

	if store != nil {
		store.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error running session: %v\n", err)
		os.Exit(1)
	}
}
