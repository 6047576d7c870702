package main

import (
	"fmt"
	"os"

	"github.com/dustin/go-humanize"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-targets/internal/replay"
	"github.com/vovakirdan/tui-targets/internal/session"
	"github.com/vovakirdan/tui-targets/internal/storage"
)

var statsCmd = &cobra.Command{
	Use:   "stats <code>",
	Short: "Show statistics for a replay code",
	Long: `Display best and average completion time for every stored run
of one replay code.

Examples:
  targets stats 500001300601100012121
  targets stats BLUE-CIRCLE-500001300601100012121`,
	Args: cobra.ExactArgs(1),
	Run:  runStats,
}

func runStats(_ *cobra.Command, args []string) {
	cfg, err := replay.Decode(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	stats, err := store.StatsForCode(cfg.Seed)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving stats: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Stats - %s\n", replay.Pretty(cfg.Seed))
	fmt.Println()

	if stats.Runs == 0 {
		fmt.Println("No runs recorded for this code yet.")
		fmt.Println()
		fmt.Printf("Play 'targets replay %s' to set the first time!\n", cfg.Seed)
		return
	}

	fmt.Printf("  %-12s  %s\n", "Runs", humanize.Comma(int64(stats.Runs)))
	fmt.Printf("  %-12s  %s\n", "Best", session.FormatElapsed(stats.Best))
	fmt.Printf("  %-12s  %s\n", "Average", session.FormatElapsed(stats.Average))
	fmt.Printf("  %-12s  %d\n", "Hazards hit", stats.HazardsHit)
	fmt.Printf("  %-12s  %s\n", "Last played", humanize.Time(stats.LastPlayed))
}
