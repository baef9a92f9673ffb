// Package versioncheck inspects a generated registry workbook and asks a
// research backend whether newer SDS revisions have been published for the
// listed products. Findings are advisory and the workbook is never mutated.
package versioncheck

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/chemledger/sdsforge/internal/locale"
	"github.com/chemledger/sdsforge/internal/providers"
)

// Database sheet columns the checker reads (1-indexed).
const (
	colProductName  = 3
	colVersion      = 5
	colIssueDate    = 6
	colRevisionDate = 7
	colManufacturer = 8
)

// Entry is one product row pulled from the workbook.
type Entry struct {
	Row          int
	Product      string
	Manufacturer string
	Version      string
	IssueDate    string
	RevisionDate string
}

// Finding is the research outcome for one entry.
type Finding struct {
	Entry    Entry
	Findings string
	Err      error
}

// Checker runs currency checks against registry workbooks.
type Checker struct {
	researcher providers.Researcher
	logger     *slog.Logger
}

// New creates a checker.
func New(researcher providers.Researcher, logger *slog.Logger) *Checker {
	if logger == nil {
		logger = slog.Default()
	}
	return &Checker{researcher: researcher, logger: logger}
}

// ReadEntries pulls the product rows out of a workbook's database sheet.
// Error rows (error marker in the product column) are skipped.
func ReadEntries(path, langCode string) ([]Entry, error) {
	loc := locale.For(langCode)

	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open workbook: %w", err)
	}
	defer f.Close()

	sheet := loc.SheetNames[2]
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("failed to read sheet %s: %w", sheet, err)
	}
	if len(rows) < 2 {
		return nil, nil
	}

	cell := func(row []string, col int) string {
		if col-1 < len(row) {
			return strings.TrimSpace(row[col-1])
		}
		return ""
	}

	var entries []Entry
	for i, row := range rows[1:] {
		product := cell(row, colProductName)
		if product == "" || product == loc.ErrorMarker {
			continue
		}
		entries = append(entries, Entry{
			Row:          i + 2,
			Product:      product,
			Manufacturer: cell(row, colManufacturer),
			Version:      cell(row, colVersion),
			IssueDate:    cell(row, colIssueDate),
			RevisionDate: cell(row, colRevisionDate),
		})
	}
	return entries, nil
}

// Check researches every entry sequentially. Per-entry failures land in the
// finding; the pass keeps going.
func (c *Checker) Check(ctx context.Context, entries []Entry) ([]Finding, error) {
	findings := make([]Finding, 0, len(entries))
	for _, e := range entries {
		if err := ctx.Err(); err != nil {
			return findings, err
		}
		text, err := c.researcher.Research(ctx, buildQuery(e))
		if err != nil {
			c.logger.Warn("version check failed", "product", e.Product, "error", err)
			findings = append(findings, Finding{Entry: e, Err: err})
			continue
		}
		findings = append(findings, Finding{Entry: e, Findings: text})
	}
	return findings, nil
}

func buildQuery(e Entry) string {
	var b strings.Builder
	b.WriteString("Is a newer safety data sheet revision published for this product?\n")
	fmt.Fprintf(&b, "Product: %s\n", e.Product)
	if e.Manufacturer != "" {
		fmt.Fprintf(&b, "Manufacturer: %s\n", e.Manufacturer)
	}
	if e.Version != "" {
		fmt.Fprintf(&b, "Known SDS version: %s\n", e.Version)
	}
	if e.RevisionDate != "" {
		fmt.Fprintf(&b, "Known revision date: %s\n", e.RevisionDate)
	} else if e.IssueDate != "" {
		fmt.Fprintf(&b, "Known issue date: %s\n", e.IssueDate)
	}
	b.WriteString("Answer with the latest known version/revision date and where it is published.")
	return b.String()
}
