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

var (
	flagHistoryLimit int
	flagClearHistory bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent sessions",
	Long: `Display the most recent completed sessions, newest first.

Examples:
  targets history
  targets history --limit 5
  targets history --clear`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 20, "Number of sessions to show")
	historyCmd.Flags().BoolVar(&flagClearHistory, "clear", false, "Delete all stored sessions")
}

func runHistory(_ *cobra.Command, _ []string) {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history database: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagClearHistory {
		if err := store.ClearHistory(); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("History cleared.")
		return
	}

	entries, err := store.Recent(flagHistoryLimit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error retrieving history: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("Recent Sessions")
	fmt.Println()

	if len(entries) == 0 {
		fmt.Println("No sessions recorded yet.")
		fmt.Println()
		fmt.Println("Play 'targets play' to record your first session!")
		return
	}

	fmt.Printf("  %-10s  %-7s  %-4s  %-16s  %s\n", "Time", "Targets", "Hits", "When", "Code")
	fmt.Printf("  %-10s  %-7s  %-4s  %-16s  %s\n", "----", "-------", "----", "----", "----")
	for _, e := range entries {
		fmt.Printf("  %-10s  %-7s  %-4d  %-16s  %s\n",
			session.FormatElapsed(e.TotalTime),
			fmt.Sprintf("%d/%d", e.CoreTargetsCollected, e.TotalTargets),
			e.HazardTargetsHit,
			humanize.Time(e.FinishedAt),
			replay.Pretty(e.Code),
		)
	}

	if total, err := store.Count(); err == nil && total > len(entries) {
		fmt.Println()
		fmt.Printf("Showing %d of %d sessions.\n", len(entries), total)
	}
}
