package versioncheck

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/chemledger/sdsforge/internal/providers"
	"github.com/chemledger/sdsforge/internal/report"
	"github.com/chemledger/sdsforge/internal/risk"
	"github.com/chemledger/sdsforge/internal/sds"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()

	good := sds.NewRecord("a.pdf")
	good.Status = sds.StatusProcessed
	good.Set("product_name", "Acetone")
	good.Set("sds_version", "3.1")
	good.Set("manufacturer", "ChemCo")

	bad := sds.NewRecord("b.pdf")
	bad.Status = sds.StatusFailed
	bad.Err = "boom"

	r := &report.Renderer{Now: func() time.Time {
		return time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	}}
	data, err := r.Render(
		[]sds.Record{good, bad},
		[]*risk.Assessment{nil, nil},
		report.Metadata{
			Evaluator: "x",
			EvalDate:  time.Now(), ReviewDate: time.Now(), Deadline: time.Now(),
			Language: "en",
		})
	if err != nil {
		t.Fatalf("Render: %v", err)
	}

	path := filepath.Join(t.TempDir(), "registry.xlsx")
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatalf("write workbook: %v", err)
	}
	return path
}

func TestReadEntries(t *testing.T) {
	path := writeWorkbook(t)

	entries, err := ReadEntries(path, "en")
	if err != nil {
		t.Fatalf("ReadEntries: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("got %d entries, want 1 (error row skipped)", len(entries))
	}
	e := entries[0]
	if e.Product != "Acetone" || e.Version != "3.1" || e.Manufacturer != "ChemCo" {
		t.Errorf("entry = %+v", e)
	}
	if e.Row != 2 {
		t.Errorf("row = %d, want 2", e.Row)
	}
}

func TestCheck(t *testing.T) {
	researcher := &providers.MockResearcher{Findings: "Version 4.0 published 2026-01-15 by ChemCo."}
	c := New(researcher, nil)

	entries := []Entry{{Row: 2, Product: "Acetone", Manufacturer: "ChemCo", Version: "3.1"}}
	findings, err := c.Check(context.Background(), entries)
	if err != nil {
		t.Fatalf("Check: %v", err)
	}
	if len(findings) != 1 || findings[0].Findings == "" {
		t.Fatalf("findings = %+v", findings)
	}
	if q := researcher.LastQuery(); !strings.Contains(q, "Acetone") || !strings.Contains(q, "3.1") {
		t.Errorf("query = %q", q)
	}

	t.Run("failure contained per entry", func(t *testing.T) {
		failing := &providers.MockResearcher{ShouldFail: true}
		c := New(failing, nil)
		findings, err := c.Check(context.Background(), entries)
		if err != nil {
			t.Fatalf("Check: %v", err)
		}
		if findings[0].Err == nil {
			t.Error("expected per-entry error")
		}
	})
}
