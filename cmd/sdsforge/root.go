package main

import (
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chemledger/sdsforge/version"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "sdsforge",
	Short: "SDS processing pipeline with LLM-powered extraction and risk assessment",
	Long: `sdsforge turns a folder of safety data sheets into a multi-sheet
chemical registry workbook.

The pipeline includes:
  - Structured field extraction from SDS text
  - Critical-gap detection with web-research enrichment
  - Workplace risk assessment and scoring
  - Excel registry generation in Hungarian, English or German`,
	Version: version.GitRelease,
}

func init() {
	rootCmd.PersistentFlags().StringVar(
		&cfgFile, "config", "", "config file (default: ./config.yaml or ~/.sdsforge/config.yaml)",
	)
	rootCmd.PersistentFlags().BoolVarP(
		&verbose, "verbose", "v", false, "enable debug logging",
	)

	rootCmd.AddCommand(versionCmd)
}

func newLogger() *slog.Logger {
	level := slog.LevelInfo
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	}))
}
