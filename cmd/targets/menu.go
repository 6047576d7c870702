package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-targets/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a preset or replay code interactively",
	Long: `Start the trainer in interactive menu mode.

Use arrow keys or j/k to navigate, Enter to select a preset.
The last entry prompts for a replay code. Tab opens your history.
After a session you return to the menu.

Controls:
  Up/Down/j/k  - Navigate menu
  Enter/Space  - Select
  Tab          - History
  Q            - Quit`,
	Run: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) {
	store := openStore()
	rc := terminalConfig()

	err := tui.RunApp(env(store), rc.ScreenW, rc.ScreenH)

	if store != nil {
		store.Close()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
