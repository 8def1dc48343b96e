package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/avelar/wordsight/internal/engine"
	"github.com/avelar/wordsight/internal/kv"
)

var rootCmd = &cobra.Command{
	Use:   "wordsight",
	Short: "Privacy-first learning insights for vocabulary practice",
	Long: "Wordsight — a consent-gated, device-local analytics engine that turns\n" +
		"practice attempts into insights, recommendations, and adaptive difficulty.\n" +
		"Nothing leaves the device, and nothing is recorded without opt-in.",
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides WORDSIGHT_DB env var)")

	rootCmd.AddCommand(recordCmd)
	rootCmd.AddCommand(insightsCmd)
	rootCmd.AddCommand(recommendCmd)
	rootCmd.AddCommand(adaptiveCmd)
	rootCmd.AddCommand(consentCmd)
	rootCmd.AddCommand(prefsCmd)
	rootCmd.AddCommand(purgeCmd)
	rootCmd.AddCommand(exportCmd)
	rootCmd.AddCommand(versionCmd)
}

// resolveDBPath returns the database path using --db flag (highest priority),
// then WORDSIGHT_DB env var, then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, kv.EnsureDir(p)
	}
	return kv.DefaultDBPath()
}

// openEngine opens the storage backend, builds the engine, and runs the
// session-start expiry check. The caller must invoke the returned closer.
func openEngine(cmd *cobra.Command) (*engine.Engine, func(), error) {
	dbPath, err := resolveDBPath(cmd)
	if err != nil {
		return nil, nil, fmt.Errorf("resolve DB path: %w", err)
	}
	backend, err := kv.OpenSQLite(dbPath)
	if err != nil {
		return nil, nil, fmt.Errorf("open store: %w", err)
	}

	eng, err := engine.New(backend)
	if err != nil {
		backend.Close()
		return nil, nil, fmt.Errorf("init engine: %w", err)
	}

	// The engine runs no timers; expired data is purged at session start.
	eng.CheckAndPurgeExpiredData()

	return eng, func() { backend.Close() }, nil
}
