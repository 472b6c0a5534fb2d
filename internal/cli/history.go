package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/asteroid-belt/identicon/internal/config"
	"github.com/asteroid-belt/identicon/internal/db"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recently generated identicons",
	Long: `List identicons recorded by previous generate runs, newest first.

Recording can be disabled with IDENTICON_HISTORY_ENABLED=false or
generate --no-history.`,
	Args: cobra.NoArgs,
	RunE: runHistory,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete all history entries",
	Args:  cobra.NoArgs,
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", db.DefaultHistoryLimit, "Maximum entries to show")
	historyCmd.AddCommand(historyClearCmd)
}

func openHistory(cmdName string) (*db.DB, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, trackCLIError(cmdName, fmt.Errorf("load config: %w", err))
	}
	database, err := db.New(db.DefaultConfig(config.GetPaths(cfg).Database))
	if err != nil {
		return nil, trackCLIError(cmdName, fmt.Errorf("open history database: %w", err))
	}
	return database, nil
}

func runHistory(cmd *cobra.Command, args []string) error {
	database, err := openHistory("history")
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	gens, err := database.ListGenerations(historyLimit)
	if err != nil {
		return trackCLIError("history", err)
	}

	telemetryClient.TrackHistoryViewed(len(gens))

	out := cmd.OutOrStdout()
	if len(gens) == 0 {
		_, _ = fmt.Fprintln(out, "No identicons generated yet.")
		_, _ = fmt.Fprintln(out, "\nUse 'identicon generate <input>' to create one.")
		return nil
	}

	_, _ = fmt.Fprintf(out, "HISTORY (%d entries)\n", len(gens))
	_, _ = fmt.Fprintln(out, "──────────────────────────────────────────────────")
	for _, g := range gens {
		_, _ = fmt.Fprintf(out, "%s  %s  %2d cells  %s\n",
			g.CreatedAt.Local().Format("2006-01-02 15:04:05"), g.Color, g.Filled, g.Path)
	}
	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	database, err := openHistory("clear")
	if err != nil {
		return err
	}
	defer func() { _ = database.Close() }()

	removed, err := database.ClearGenerations()
	if err != nil {
		return trackCLIError("clear", err)
	}

	telemetryClient.TrackHistoryCleared(removed)
	_, _ = fmt.Fprintf(cmd.OutOrStdout(), "Removed %d history entries.\n", removed)
	return nil
}
