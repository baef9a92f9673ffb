package main

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/chemledger/sdsforge/internal/batch"
	"github.com/chemledger/sdsforge/internal/config"
	"github.com/chemledger/sdsforge/internal/docsource"
	"github.com/chemledger/sdsforge/internal/enrich"
	"github.com/chemledger/sdsforge/internal/extract"
	"github.com/chemledger/sdsforge/internal/locale"
	"github.com/chemledger/sdsforge/internal/providers"
	"github.com/chemledger/sdsforge/internal/report"
	"github.com/chemledger/sdsforge/internal/risk"
)

const dateFlagFormat = "2006.01.02"

var (
	processInputDir  string
	processLanguage  string
	processEvaluator string
	processEvalDate  string
	processDeadline  string
	processTemplate  string
	processOutputDir string
	processNoEnrich  bool
)

var processCmd = &cobra.Command{
	Use:   "process [files...]",
	Short: "Process SDS documents into a registry workbook",
	Long: `Process SDS documents into a multi-sheet registry workbook.

Documents are given either as file arguments (.txt or .pdf) or collected
from a directory via --input. Each document is extracted, gap-enriched
when research is enabled, risk-assessed, and written into a single
timestamped Excel workbook.

Examples:
  sdsforge process --input ./sheets --language hu --evaluator "Kiss J."
  sdsforge process acetone.txt toluene.pdf --language en
  sdsforge process --input ./sheets --no-enrich`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		logger := newLogger()

		cm, err := config.NewManager(cfgFile)
		if err != nil {
			return err
		}
		cfg := cm.Get()

		if processInputDir == "" && len(args) == 0 {
			return fmt.Errorf("no input: pass document files or --input DIR")
		}

		lang := cfg.Output.Language
		if processLanguage != "" {
			lang = processLanguage
		}
		if !locale.Supported(lang) {
			return fmt.Errorf("unsupported language %q (supported: %s)",
				lang, strings.Join(locale.Codes(), ", "))
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

		adapter, err := extract.NewAdapter(extract.Config{
			Client:      client,
			Model:       cfg.OpenAI.Model,
			Temperature: cfg.OpenAI.Temperature,
			Logger:      logger,
		})
		if err != nil {
			return err
		}
		assessor, err := risk.NewAssessor(risk.Config{
			Client:      client,
			Model:       cfg.OpenAI.Model,
			Temperature: cfg.OpenAI.Temperature,
			Logger:      logger,
		})
		if err != nil {
			return err
		}

		var enricher *enrich.Enricher
		if cfg.Research.Enabled && !processNoEnrich {
			researcher := providers.NewOpenAIResearcher(client, cfg.Research.Model, logger)
			enricher = enrich.New(researcher, adapter, logger)
		}

		docs, err := loadDocuments(logger, args)
		if err != nil {
			return err
		}
		if len(docs) == 0 {
			return fmt.Errorf("no documents found")
		}

		orch, err := batch.New(batch.Config{
			Adapter:  adapter,
			Assessor: assessor,
			Enricher: enricher,
			Pause:    time.Duration(cfg.Batch.PauseMillis) * time.Millisecond,
			Logger:   logger,
		})
		if err != nil {
			return err
		}

		logger.Info("starting batch",
			"documents", len(docs), "language", lang, "enrichment", enricher != nil)
		result, err := orch.Run(ctx, docs, lang)
		if err != nil {
			return err
		}

		meta, err := buildMetadata(cfg, lang)
		if err != nil {
			return err
		}
		renderer := &report.Renderer{TemplatePath: processTemplate, Logger: logger}
		data, err := renderer.Render(result.Records, result.Assessments, meta)
		if err != nil {
			return err
		}

		outDir := cfg.Output.Dir
		if processOutputDir != "" {
			outDir = processOutputDir
		}
		if err := os.MkdirAll(outDir, 0o755); err != nil {
			return err
		}
		outPath := filepath.Join(outDir, report.Filename(lang, time.Now()))
		if err := os.WriteFile(outPath, data, 0o644); err != nil {
			return err
		}

		logger.Info("batch complete",
			"processed", result.Processed,
			"failed", result.Failed,
			"unreadable", result.Unreadable,
			"output", outPath)
		fmt.Printf("Wrote %s (%d processed, %d failed, %d unreadable)\n",
			outPath, result.Processed, result.Failed, result.Unreadable)
		return nil
	},
}

// loadDocuments collects documents from --input and any file arguments,
// in that order.
func loadDocuments(logger *slog.Logger, args []string) ([]batch.Document, error) {
	loader := &docsource.Loader{Logger: logger}

	var docs []batch.Document
	if processInputDir != "" {
		dirDocs, err := loader.LoadDir(processInputDir)
		if err != nil {
			return nil, err
		}
		docs = append(docs, dirDocs...)
	}
	for _, path := range args {
		doc, err := loader.Load(path)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// buildMetadata resolves evaluator and dates for the workbook. The review
// date is one year after evaluation; the action deadline defaults to thirty
// days out.
func buildMetadata(cfg *config.Config, lang string) (report.Metadata, error) {
	evalDate := time.Now()
	if processEvalDate != "" {
		t, err := time.Parse(dateFlagFormat, processEvalDate)
		if err != nil {
			return report.Metadata{}, fmt.Errorf("invalid --eval-date (want YYYY.MM.DD): %w", err)
		}
		evalDate = t
	}

	deadline := evalDate.AddDate(0, 0, 30)
	if processDeadline != "" {
		t, err := time.Parse(dateFlagFormat, processDeadline)
		if err != nil {
			return report.Metadata{}, fmt.Errorf("invalid --deadline (want YYYY.MM.DD): %w", err)
		}
		deadline = t
	}

	return report.Metadata{
		Evaluator:  processEvaluator,
		EvalDate:   evalDate,
		ReviewDate: evalDate.AddDate(1, 0, 0),
		Deadline:   deadline,
		Language:   lang,
	}, nil
}

func init() {
	processCmd.Flags().StringVarP(&processInputDir, "input", "i", "", "directory of SDS documents (.txt, .pdf)")
	processCmd.Flags().StringVarP(&processLanguage, "language", "l", "", "output language: hu, en or de (default from config)")
	processCmd.Flags().StringVar(&processEvaluator, "evaluator", "", "evaluator name for the risk sheet")
	processCmd.Flags().StringVar(&processEvalDate, "eval-date", "", "evaluation date, YYYY.MM.DD (default today)")
	processCmd.Flags().StringVar(&processDeadline, "deadline", "", "action plan deadline, YYYY.MM.DD (default eval date + 30 days)")
	processCmd.Flags().StringVar(&processTemplate, "template", "", "existing workbook to fill instead of building from scratch")
	processCmd.Flags().StringVarP(&processOutputDir, "output-dir", "d", "", "output directory (default from config)")
	processCmd.Flags().BoolVar(&processNoEnrich, "no-enrich", false, "skip the research enrichment pass")

	rootCmd.AddCommand(processCmd)
}
