// targets is an accessibility-oriented target trainer for the terminal.
//
// Usage:
//
//	targets menu                - Pick a preset or replay code interactively
//	targets play [flags]        - Author a session, print its code, and play it
//	targets replay <code>       - Play a shared replay code
//	targets code encode|decode  - Replay code utilities
//	targets history             - Show recent sessions
//	targets stats <code>        - Show statistics for one code
//	targets presets             - List presets
//	targets serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: from config, 60)
//	--db <path>          - Set database path (default: ~/.targets/history.db)
//	--config <path>      - Trainer config file (YAML or TOML)
//	--log-level <level>  - debug, info, warn, error
package main

import (
	"fmt"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-targets/internal/config"
	"github.com/vovakirdan/tui-targets/internal/platform/tui"
	"github.com/vovakirdan/tui-targets/internal/storage"
)

var (
	// Global flags
	flagFPS      int
	flagDBPath   string
	flagConfig   string
	flagLogLevel string

	// Set up by the root pre-run hook.
	logger  *log.Logger
	trainer config.TrainerConfig
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "targets",
	Short: "Targets - an accessible pointing and movement trainer",
	Long: `Targets is a terminal trainer for steering a marker onto targets.
Every session is described by a short replay code: share it and anyone
gets exactly the same layout.

Available commands:
  menu     - Interactive preset picker
  play     - Author a session and play it
  replay   - Play a shared replay code
  code     - Encode or decode replay codes
  history  - Show recent sessions
  stats    - Show statistics for a code
  presets  - List presets
  serve    - Start SSH server for remote play

Examples:
  targets menu
  targets play --preset dwell
  targets play --counts 3,2,1,1,2 --size large --input continuous
  targets replay BLUE-CIRCLE-500001300601100012121
  targets serve --ssh :2222`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 0, "Tick rate (frames per second, 0 = config value)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.targets/history.db", "Path to history database")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to trainer config (YAML or TOML)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(codeCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(presetsCmd)
	rootCmd.AddCommand(serveCmd)
}

// setup builds the logger and loads the trainer config for every command.
func setup(_ *cobra.Command, _ []string) error {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return fmt.Errorf("invalid --log-level: %w", err)
	}
	logger = log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "targets",
		Level:           level,
	})

	trainer, err = config.Load(flagConfig)
	if err != nil {
		return err
	}
	if flagFPS > 0 {
		trainer.Session.TickRate = flagFPS
	}
	logger.Debug("trainer config loaded", "path", flagConfig, "tick_rate", trainer.Session.TickRate)
	return nil
}

// openStore opens the history database, or returns nil with a warning so
// play can continue without persistence.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		logger.Warn("could not open history database", "path", flagDBPath, "error", err)
		return nil
	}
	store.SetHistoryLimit(trainer.Session.HistoryLimit)
	return store
}

// env bundles the shared collaborators for the TUI.
func env(store *storage.Store) tui.Env {
	return tui.Env{Trainer: trainer, Store: store, Logger: logger}
}
