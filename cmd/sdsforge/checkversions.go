package main

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"

	"github.com/chemledger/sdsforge/internal/config"
	"github.com/chemledger/sdsforge/internal/providers"
	"github.com/chemledger/sdsforge/internal/versioncheck"
)

var (
	checkWorkbook string
	checkLanguage string
)

var checkVersionsCmd = &cobra.Command{
	Use:   "check-versions",
	Short: "Check a registry workbook for outdated SDS revisions",
	Long: `Read the product rows of a generated registry workbook and research
whether newer SDS revisions have been published. Findings are printed;
the workbook itself is never modified.

Examples:
  sdsforge check-versions --workbook output/SDS_Database_hu_20260301_0900.xlsx
  sdsforge check-versions --workbook registry.xlsx --language en`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := newLogger()

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cm.Get()

		lang := cfg.Output.Language
		if checkLanguage != "" {
			lang = checkLanguage
		}

		entries, err := versioncheck.ReadEntries(checkWorkbook, lang)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No product rows found.")
			return nil
		}

		client, err := providers.NewOpenAIClient(providers.OpenAIConfig{
			APIKey:            cfg.ResolvedAPIKey(),
			DefaultModel:      cfg.OpenAI.Model,
			RequestsPerMinute: cfg.OpenAI.RequestsPerMinute,
			MaxRetries:        cfg.OpenAI.MaxRetries,
			RetryDelayBase:    time.Duration(cfg.OpenAI.RetryDelaySeconds) * time.Second,
			Logger:            logger,
		})
		if err != nil {
			return err
		}
		researcher := providers.NewOpenAIResearcher(client, cfg.Research.Model, logger)

		checker := versioncheck.New(researcher, logger)
		findings, err := checker.Check(ctx, entries)
		if err != nil {
			return err
		}

		for _, f := range findings {
			fmt.Printf("--- %s (row %d, version %q)\n", f.Entry.Product, f.Entry.Row, f.Entry.Version)
			if f.Err != nil {
				fmt.Printf("    check failed: %v\n", f.Err)
				continue
			}
			fmt.Println(f.Findings)
		}
		return nil
	},
}

func init() {
	checkVersionsCmd.Flags().StringVarP(&checkWorkbook, "workbook", "w", "", "registry workbook to check (required)")
	checkVersionsCmd.Flags().StringVarP(&checkLanguage, "language", "l", "", "workbook language: hu, en or de (default from config)")
	_ = checkVersionsCmd.MarkFlagRequired("workbook")

	rootCmd.AddCommand(checkVersionsCmd)
}
