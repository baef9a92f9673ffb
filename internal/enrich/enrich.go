// Package enrich fills safety-critical gaps in extracted records from
// external research. Enrichment is speculative: any failure leaves the
// record exactly as it was.
package enrich

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/chemledger/sdsforge/internal/extract"
	"github.com/chemledger/sdsforge/internal/locale"
	"github.com/chemledger/sdsforge/internal/providers"
	"github.com/chemledger/sdsforge/internal/schema"
	"github.com/chemledger/sdsforge/internal/sds"
)

// Result reports what an enrichment pass did.
type Result struct {
	Record      sds.Record
	Gaps        []string // gaps that were declared
	Filled      []string // gaps the merge actually filled
	ResearchRan bool
	Err         error // soft failure, record is unchanged when set
}

// Enricher runs the research + merge pass for one record.
type Enricher struct {
	researcher providers.Researcher
	adapter    *extract.Adapter
	logger     *slog.Logger
}

// New creates an enricher.
func New(researcher providers.Researcher, adapter *extract.Adapter, logger *slog.Logger) *Enricher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Enricher{researcher: researcher, adapter: adapter, logger: logger}
}

// Enrich detects critical gaps, researches them, and merges concrete
// findings back into the record. Failures are contained: the returned
// Result always carries a usable record.
func (e *Enricher) Enrich(ctx context.Context, rec sds.Record, loc locale.Strings) Result {
	gaps := sds.CriticalGaps(rec, loc)
	if len(gaps) == 0 {
		return Result{Record: rec}
	}

	query := BuildQuery(rec, gaps)
	findings, err := e.researcher.Research(ctx, query)
	if err != nil {
		e.logger.Warn("research failed, keeping record as extracted",
			"document", rec.SourceDocument, "error", err)
		return Result{Record: rec, Gaps: gaps, Err: fmt.Errorf("research failed: %w", err)}
	}
	if strings.TrimSpace(findings) == "" {
		return Result{Record: rec, Gaps: gaps, ResearchRan: true}
	}

	merged, err := e.adapter.Merge(ctx, rec, findings, gaps, loc)
	if err != nil {
		e.logger.Warn("merge failed, keeping record as extracted",
			"document", rec.SourceDocument, "error", err)
		return Result{Record: rec, Gaps: gaps, ResearchRan: true, Err: fmt.Errorf("merge failed: %w", err)}
	}

	filled := sds.FilledGaps(rec, merged, gaps)
	if len(filled) > 0 {
		e.logger.Info("gap fill merged research data",
			"document", rec.SourceDocument, "filled", filled)
	}
	return Result{Record: merged, Gaps: gaps, Filled: filled, ResearchRan: true}
}

// BuildQuery composes the research query from the product identity and the
// named gaps. Field descriptions make the query self-contained for a
// search-backed model.
func BuildQuery(rec sds.Record, gaps []string) string {
	var b strings.Builder
	b.WriteString("Find authoritative safety data for the following product.\n")
	fmt.Fprintf(&b, "Product: %s\n", rec.Value("product_name"))
	if m := rec.Value("manufacturer"); m != "" {
		fmt.Fprintf(&b, "Manufacturer: %s\n", m)
	}
	for i, c := range rec.Components() {
		fmt.Fprintf(&b, "Component %d: %s", i+1, c.Name)
		if c.CAS != "" {
			fmt.Fprintf(&b, " (CAS %s)", c.CAS)
		}
		b.WriteString("\n")
	}
	b.WriteString("Needed values:\n")
	for _, g := range gaps {
		desc := g
		if f, err := schema.Get(g); err == nil {
			desc = fmt.Sprintf("%s: %s", g, f.Description)
		}
		fmt.Fprintf(&b, "- %s\n", desc)
	}
	return b.String()
}
