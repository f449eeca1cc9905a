package main

import (
	"fmt"
	"io"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/michellepace/markdown-to-word/internal/convert"
)

var reportCmd = &cobra.Command{
	Use:   "report [file]",
	Short: "Show a saved conversion run report",
	Long: `Report prints the run parameters, per-file outcomes, and summary recorded
in a YAML run report written by convert --report.`,
	Args: cobra.ExactArgs(1),
	RunE: runReport,
}

func init() {
	rootCmd.AddCommand(reportCmd)
}

func runReport(cmd *cobra.Command, args []string) error {
	r, err := convert.LoadReport(args[0])
	if err != nil {
		return err
	}
	return printReport(os.Stdout, r)
}

func printReport(out io.Writer, r *convert.ReportFile) error {
	fmt.Fprintf(out, "Run started %s\n", r.Run.StartedAt.Format(time.RFC3339))
	fmt.Fprintf(out, "Input:  %s\n", r.Run.InputPath)
	fmt.Fprintf(out, "Output: %s\n", r.Run.OutputDir)
	if r.Run.Pandoc != "" {
		fmt.Fprintf(out, "Pandoc: %s\n", r.Run.Pandoc)
	}
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "SOURCE\tSTATUS\tERROR")
	for _, f := range r.Files {
		fmt.Fprintf(w, "%s\t%s\t%s\n", f.Source, f.Status, f.Error)
	}
	if err := w.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\n%d converted, %d skipped, %d failed (total: %d)\n",
		r.Summary.Converted, r.Summary.Skipped, r.Summary.Failed, r.Summary.Total)
	return nil
}
