package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-targets/internal/registry"
	"github.com/vovakirdan/tui-targets/internal/replay"
)

var presetsCmd = &cobra.Command{
	Use:   "presets",
	Short: "List all presets",
	Long:  `Shows every preset with the replay code it produces.`,
	Run:   runPresets,
}

func runPresets(_ *cobra.Command, _ []string) {
	presets := registry.List()

	if len(presets) == 0 {
		fmt.Println("No presets available.")
		return
	}

	fmt.Println("Available presets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, p := range presets {
		if len(p.ID) > maxIDLen {
			maxIDLen = len(p.ID)
		}
	}

	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "ID", "Code", "Description")
	fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, "--", "----", "-----------")

	for _, p := range presets {
		code, err := replay.Encode(p.Config)
		if err != nil {
			code = "invalid"
		}
		fmt.Printf("  %-*s  %-24s  %s\n", maxIDLen, p.ID, code, p.Description)
	}

	fmt.Println()
	fmt.Println("Run 'targets play --preset <id>' to play a preset.")
}
