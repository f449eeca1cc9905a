package main

import (
	"context"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/michellepace/markdown-to-word/internal/history"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "List recent conversion outcomes",
	Long: `History lists the most recent per-file conversion outcomes from the
SQLite log. Recording is enabled by passing --history-db to convert, or by
setting history_db in the config file.`,
	RunE: runHistory,
}

func init() {
	historyCmd.Flags().String("history-db", "", "SQLite conversion log path (default from config)")
	historyCmd.Flags().Int("limit", 20, "maximum number of entries to list")

	rootCmd.AddCommand(historyCmd)
}

func runHistory(cmd *cobra.Command, args []string) error {
	path := flagOr(cmd, "history-db", "history_db")
	if path == "" {
		return fmt.Errorf("no history database configured: pass --history-db or set history_db in the config file")
	}

	store, err := history.Open(path)
	if err != nil {
		return err
	}
	defer store.Close()

	limit, _ := cmd.Flags().GetInt("limit")
	entries, err := store.Recent(context.Background(), limit)
	if err != nil {
		return err
	}
	if len(entries) == 0 {
		fmt.Println("no conversions recorded")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tSTARTED\tSOURCE\tSTATUS\tERROR")
	for _, e := range entries {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\t%s\n", e.RunID, e.StartedAt, e.Source, e.Status, e.Error)
	}
	return w.Flush()
}
