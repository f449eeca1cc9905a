package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/michellepace/markdown-to-word/internal/convert"
	"github.com/michellepace/markdown-to-word/internal/history"
	"github.com/michellepace/markdown-to-word/internal/pandoc"
	"github.com/michellepace/markdown-to-word/pkg/types"
)

const (
	defaultInputDir  = "x-input"
	defaultOutputDir = "x-output"
)

var convertCmd = &cobra.Command{
	Use:   "convert [input] [output]",
	Short: "Convert Markdown files to Word documents",
	Long: `Convert turns a Markdown file, or every .md file in a directory, into
.docx documents in the output directory. Specify both input and output, or
neither to use the default folders. Files are processed one at a time; a
failure is reported and the batch moves on.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConvert,
}

func init() {
	addConvertFlags(convertCmd)
	rootCmd.AddCommand(convertCmd)
}

func addConvertFlags(cmd *cobra.Command) {
	cmd.Flags().String("pandoc", "", `pandoc binary name or path (default from config, else "pandoc")`)
	cmd.Flags().String("wrap", "", `pandoc --wrap mode (default "preserve")`)
	cmd.Flags().String("reference-doc", "", "reference .docx whose styles pandoc applies to the output")
	cmd.Flags().Bool("skip-existing", false, "skip files whose .docx output already exists")
	cmd.Flags().String("report", "", "write a YAML run report to this path")
	cmd.Flags().String("history-db", "", "SQLite conversion log path (default from config; empty disables)")
}

// flagOr returns the flag value when set, otherwise the viper key's value.
func flagOr(cmd *cobra.Command, flag, key string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	return viper.GetString(key)
}

// validateArgs enforces the both-or-neither rule for the positional input
// and output arguments.
func validateArgs(args []string) error {
	if len(args) == 1 {
		return fmt.Errorf("either specify both input and output, or neither (run with --help for examples)")
	}
	return nil
}

func runConvert(cmd *cobra.Command, args []string) error {
	if err := validateArgs(args); err != nil {
		return err
	}

	cfg := buildConfig(cmd, args)

	// A bare run against the default folders scaffolds the input directory
	// so there is somewhere obvious to drop files.
	if len(args) == 0 {
		if _, err := os.Stat(cfg.InputPath); os.IsNotExist(err) {
			if err := os.MkdirAll(cfg.InputPath, 0o755); err != nil {
				return fmt.Errorf("creating input directory %s: %w", cfg.InputPath, err)
			}
		}
	}

	if _, err := os.Stat(cfg.InputPath); err != nil {
		return fmt.Errorf("input path %s does not exist (run with --help for examples)", cfg.InputPath)
	}
	if err := os.MkdirAll(cfg.OutputDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory %s: %w", cfg.OutputDir, err)
	}

	runner, err := pandoc.Detect(cfg.Pandoc)
	if err != nil {
		return err
	}
	pandocVersion, err := runner.Version()
	if err != nil {
		pandocVersion = ""
	}

	docs, err := convert.Discover(cfg.InputPath, cfg.OutputDir)
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		fmt.Printf("no Markdown files found in %s\n", cfg.InputPath)
		return nil
	}

	fmt.Printf("Processing input from %s\n\n", cfg.InputPath)
	started := time.Now().UTC()
	result := convert.ConvertBatch(runner, docs, convert.Options{SkipExisting: cfg.SkipExisting}, os.Stdout)
	fmt.Printf("Output directory: %s\n", cfg.OutputDir)

	if cfg.HistoryDB != "" {
		if err := recordHistory(cfg, pandocVersion, result); err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not record history: %v\n", err)
		}
	}

	if cfg.ReportPath != "" {
		report := convert.NewReport(convert.RunInfo{
			InputPath: cfg.InputPath,
			OutputDir: cfg.OutputDir,
			Pandoc:    pandocVersion,
			StartedAt: started,
		}, result)
		if err := report.Save(cfg.ReportPath); err != nil {
			return err
		}
	}

	if result.HasFailures() {
		return fmt.Errorf("%d file(s) failed conversion", result.Failed)
	}
	return nil
}

func buildConfig(cmd *cobra.Command, args []string) types.ConversionConfig {
	cfg := types.ConversionConfig{
		InputPath: viper.GetString("input_dir"),
		OutputDir: viper.GetString("output_dir"),
		Pandoc: types.PandocConfig{
			Binary:       flagOr(cmd, "pandoc", "pandoc_path"),
			Wrap:         flagOr(cmd, "wrap", "wrap"),
			ReferenceDoc: flagOr(cmd, "reference-doc", "reference_doc"),
		},
		HistoryDB: flagOr(cmd, "history-db", "history_db"),
	}
	if len(args) == 2 {
		cfg.InputPath = args[0]
		cfg.OutputDir = args[1]
	}
	cfg.SkipExisting, _ = cmd.Flags().GetBool("skip-existing")
	cfg.ReportPath, _ = cmd.Flags().GetString("report")
	return cfg
}

func recordHistory(cfg types.ConversionConfig, pandocVersion string, result convert.BatchResult) error {
	store, err := history.Open(cfg.HistoryDB)
	if err != nil {
		return err
	}
	defer store.Close()

	ctx := context.Background()
	runID, err := store.BeginRun(ctx, cfg.InputPath, cfg.OutputDir, pandocVersion)
	if err != nil {
		return err
	}
	for _, r := range result.Files {
		if err := store.RecordFile(ctx, runID, r); err != nil {
			return err
		}
	}
	return nil
}
