// Package batch runs the per-document pipeline over a set of SDS documents:
// readability gate, extraction, normalization, optional gap-fill enrichment,
// and risk assessment. Documents are processed strictly sequentially and
// per-document failures never abort the run.
package batch

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/chemledger/sdsforge/internal/enrich"
	"github.com/chemledger/sdsforge/internal/extract"
	"github.com/chemledger/sdsforge/internal/locale"
	"github.com/chemledger/sdsforge/internal/risk"
	"github.com/chemledger/sdsforge/internal/sds"
)

// MinDocumentChars is the readability gate: documents with less usable text
// than this never reach the extraction model.
const MinDocumentChars = 100

// DefaultPause is the pause between consecutive documents.
const DefaultPause = 300 * time.Millisecond

// Document is one named text input.
type Document struct {
	Name string
	Text string
}

// Result accumulates the outputs of one run. Records and Assessments are
// parallel, append-only, and in submission order.
type Result struct {
	Records     []sds.Record
	Assessments []*risk.Assessment

	Processed  int
	Failed     int
	Unreadable int
}

// Config configures the orchestrator.
type Config struct {
	Adapter  *extract.Adapter
	Assessor *risk.Assessor
	Enricher *enrich.Enricher // nil disables the enrichment pass

	Pause  time.Duration
	Logger *slog.Logger
}

// Orchestrator drives sequential batch runs.
type Orchestrator struct {
	adapter  *extract.Adapter
	assessor *risk.Assessor
	enricher *enrich.Enricher
	pause    time.Duration
	logger   *slog.Logger
}

// New creates an orchestrator.
func New(cfg Config) (*Orchestrator, error) {
	if cfg.Adapter == nil {
		return nil, fmt.Errorf("batch: adapter is required")
	}
	if cfg.Assessor == nil {
		return nil, fmt.Errorf("batch: assessor is required")
	}
	if cfg.Pause <= 0 {
		cfg.Pause = DefaultPause
	}
	if cfg.Logger == nil {
		cfg.Logger = slog.Default()
	}
	return &Orchestrator{
		adapter:  cfg.Adapter,
		assessor: cfg.Assessor,
		enricher: cfg.Enricher,
		pause:    cfg.Pause,
		logger:   cfg.Logger,
	}, nil
}

// Run processes documents in order. Cancellation is honored between
// documents: the partial result accumulated so far is returned together
// with the context error.
func (o *Orchestrator) Run(ctx context.Context, docs []Document, langCode string) (*Result, error) {
	loc := locale.For(langCode)
	res := &Result{
		Records:     make([]sds.Record, 0, len(docs)),
		Assessments: make([]*risk.Assessment, 0, len(docs)),
	}

	for i, doc := range docs {
		if err := ctx.Err(); err != nil {
			return res, err
		}
		if i > 0 {
			select {
			case <-ctx.Done():
				return res, ctx.Err()
			case <-time.After(o.pause):
			}
		}

		rec, assessment := o.processOne(ctx, doc, loc)
		res.Records = append(res.Records, rec)
		res.Assessments = append(res.Assessments, assessment)
		switch rec.Status {
		case sds.StatusProcessed:
			res.Processed++
		case sds.StatusUnreadable:
			res.Unreadable++
		default:
			res.Failed++
		}
		o.logger.Info("document finished",
			"document", doc.Name,
			"status", rec.Status.String(),
			"position", fmt.Sprintf("%d/%d", i+1, len(docs)))
	}
	return res, nil
}

// processOne runs the pipeline for a single document. All failures are
// folded into the returned record; a nil assessment means the risk pass
// failed or never ran.
func (o *Orchestrator) processOne(ctx context.Context, doc Document, loc locale.Strings) (sds.Record, *risk.Assessment) {
	text := strings.TrimSpace(doc.Text)
	if n := utf8.RuneCountInString(text); n < MinDocumentChars {
		rec := sds.NewRecord(doc.Name)
		rec.Status = sds.StatusUnreadable
		rec.Err = fmt.Sprintf("document text too short (%d chars)", n)
		return rec, nil
	}

	raw, err := o.adapter.Extract(ctx, doc.Text, loc)
	if err != nil {
		o.logger.Error("extraction failed", "document", doc.Name, "error", err)
		rec := sds.NewRecord(doc.Name)
		rec.Status = sds.StatusFailed
		rec.Err = err.Error()
		return rec, nil
	}

	rec := sds.Normalize(doc.Name, raw)

	if o.enricher != nil {
		enriched := o.enricher.Enrich(ctx, rec, loc)
		rec = enriched.Record
	}

	assessment, err := o.assessor.Assess(ctx, rec, loc)
	if err != nil {
		// the record stands on its own; the risk row stays empty
		o.logger.Warn("risk assessment failed", "document", doc.Name, "error", err)
		return rec, nil
	}
	return rec, assessment
}
