// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the md2word CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// version is set at build time via ldflags.
var version = "dev"

// rootCmd is the base command. Running it without a subcommand performs a
// conversion, so `md2word [input] [output]` works directly.
var rootCmd = &cobra.Command{
	Use:   "md2word [input] [output]",
	Short: "Batch-convert Markdown files to Word documents with pandoc",
	Long: `md2word converts Markdown files into Word documents by driving pandoc.
It discovers .md files, repairs remote image references that have local
copies next to the source, and invokes pandoc once per file. Markdown
parsing, DOCX generation, and image fetching are all pandoc's job.

Give an input file or directory and an output directory, or neither to use
the default x-input and x-output folders.`,
	Args: cobra.MaximumNArgs(2),
	RunE: runConvert,
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./md2word.yaml or ~/.config/md2word/config.yaml)")
	addConvertFlags(rootCmd)
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("md2word")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "md2word"))
		}
	}

	viper.SetEnvPrefix("MD2WORD")
	viper.AutomaticEnv()

	viper.SetDefault("input_dir", defaultInputDir)
	viper.SetDefault("output_dir", defaultOutputDir)
	viper.SetDefault("pandoc_path", "pandoc")
	viper.SetDefault("wrap", "preserve")

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
