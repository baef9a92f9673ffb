package report

import (
	"bytes"
	"errors"
	"reflect"
	"testing"
	"time"

	"github.com/xuri/excelize/v2"

	"github.com/chemledger/sdsforge/internal/locale"
	"github.com/chemledger/sdsforge/internal/risk"
	"github.com/chemledger/sdsforge/internal/sds"
)

func testMeta(lang string) Metadata {
	return Metadata{
		Evaluator:  "J. Kovács",
		EvalDate:   time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC),
		ReviewDate: time.Date(2027, 3, 1, 0, 0, 0, 0, time.UTC),
		Deadline:   time.Date(2026, 6, 30, 0, 0, 0, 0, time.UTC),
		Language:   lang,
	}
}

func fixedRenderer() *Renderer {
	return &Renderer{Now: func() time.Time {
		return time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	}}
}

func okRecord(name string) sds.Record {
	rec := sds.NewRecord(name + ".pdf")
	rec.Status = sds.StatusProcessed
	rec.Set("product_name", name)
	rec.Set("h_statements", "H225 (Highly flammable liquid and vapour)")
	return rec
}

func assessment(prob, sev int, level string) *risk.Assessment {
	return &risk.Assessment{
		Probability: prob,
		Severity:    sev,
		RiskScore:   prob * sev,
		RiskLevel:   level,
	}
}

func open(t *testing.T, data []byte) *excelize.File {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	if err != nil {
		t.Fatalf("OpenReader: %v", err)
	}
	t.Cleanup(func() { f.Close() })
	return f
}

func TestRender(t *testing.T) {
	loc := locale.For("en")

	t.Run("all six sheets exist", func(t *testing.T) {
		data, err := fixedRenderer().Render(
			[]sds.Record{okRecord("Acetone")},
			[]*risk.Assessment{assessment(2, 3, "significant")},
			testMeta("en"))
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		f := open(t, data)
		for _, name := range loc.SheetNames {
			if idx, _ := f.GetSheetIndex(name); idx < 0 {
				t.Errorf("missing sheet %q", name)
			}
		}
	})

	t.Run("database preserves row count and order", func(t *testing.T) {
		records := []sds.Record{okRecord("Alpha"), okRecord("Beta"), okRecord("Gamma")}
		assessments := []*risk.Assessment{nil, nil, nil}
		data, err := fixedRenderer().Render(records, assessments, testMeta("en"))
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		f := open(t, data)
		rows, err := f.GetRows(loc.SheetNames[2])
		if err != nil {
			t.Fatalf("GetRows: %v", err)
		}
		if len(rows) != 4 { // header + 3 records
			t.Fatalf("got %d rows, want 4", len(rows))
		}
		for i, want := range []string{"Alpha", "Beta", "Gamma"} {
			if rows[i+1][2] != want {
				t.Errorf("row %d product = %q, want %q", i+2, rows[i+1][2], want)
			}
		}
	})

	t.Run("failed record keeps its row with error marker", func(t *testing.T) {
		bad := sds.NewRecord("broken.pdf")
		bad.Status = sds.StatusFailed
		bad.Err = "retries exhausted: connection refused"

		data, err := fixedRenderer().Render(
			[]sds.Record{okRecord("Alpha"), bad},
			[]*risk.Assessment{nil, nil},
			testMeta("en"))
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		f := open(t, data)
		rows, _ := f.GetRows(loc.SheetNames[2])
		if len(rows) != 3 {
			t.Fatalf("got %d rows, want 3", len(rows))
		}
		errRow := rows[2]
		if errRow[2] != loc.ErrorMarker {
			t.Errorf("product cell = %q, want %q", errRow[2], loc.ErrorMarker)
		}
		if errRow[len(errRow)-1] != bad.Err {
			t.Errorf("notes cell = %q, want raw error", errRow[len(errRow)-1])
		}
	})

	t.Run("action plan lists only scores at or above threshold", func(t *testing.T) {
		records := []sds.Record{okRecord("Low"), okRecord("Mid"), okRecord("High"), okRecord("NoRisk")}
		assessments := []*risk.Assessment{
			assessment(1, 2, "acceptable"),  // 2: below threshold
			assessment(2, 2, "tolerable"),   // 4
			assessment(3, 4, "significant"), // 12
			nil,
		}
		data, err := fixedRenderer().Render(records, assessments, testMeta("en"))
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		f := open(t, data)
		rows, _ := f.GetRows(loc.SheetNames[5])
		if len(rows) != 3 { // header + Mid + High
			t.Fatalf("got %d action rows, want 3", len(rows))
		}
		if rows[1][1] != "Mid" || rows[2][1] != "High" {
			t.Errorf("action plan products = %q, %q", rows[1][1], rows[2][1])
		}
	})

	t.Run("length mismatch is a render failure", func(t *testing.T) {
		_, err := fixedRenderer().Render(
			[]sds.Record{okRecord("Alpha")},
			[]*risk.Assessment{},
			testMeta("en"))
		if !errors.Is(err, ErrRenderFailure) {
			t.Errorf("got %v, want ErrRenderFailure", err)
		}
	})

	t.Run("unknown language falls back to default labels", func(t *testing.T) {
		data, err := fixedRenderer().Render(
			[]sds.Record{okRecord("Acetone")},
			[]*risk.Assessment{nil},
			testMeta("xx"))
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		f := open(t, data)
		fallback := locale.For(locale.DefaultLanguage)
		if idx, _ := f.GetSheetIndex(fallback.SheetNames[2]); idx < 0 {
			t.Error("fallback database sheet missing")
		}
	})

	t.Run("hungarian workbook uses hungarian labels", func(t *testing.T) {
		hu := locale.For("hu")
		data, err := fixedRenderer().Render(
			[]sds.Record{okRecord("Aceton")},
			[]*risk.Assessment{nil},
			testMeta("hu"))
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		f := open(t, data)
		rows, _ := f.GetRows(hu.SheetNames[2])
		if rows[0][0] != hu.DBHeaders[0] {
			t.Errorf("header = %q, want %q", rows[0][0], hu.DBHeaders[0])
		}
	})

	t.Run("identical input renders identical structure", func(t *testing.T) {
		records := []sds.Record{okRecord("Alpha"), okRecord("Beta")}
		assessments := []*risk.Assessment{assessment(2, 2, "tolerable"), nil}

		first, err := fixedRenderer().Render(records, assessments, testMeta("en"))
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		second, err := fixedRenderer().Render(records, assessments, testMeta("en"))
		if err != nil {
			t.Fatalf("Render: %v", err)
		}

		f1, f2 := open(t, first), open(t, second)
		for _, sheet := range loc.SheetNames {
			r1, _ := f1.GetRows(sheet)
			r2, _ := f2.GetRows(sheet)
			if !reflect.DeepEqual(r1, r2) {
				t.Errorf("sheet %q differs between renders", sheet)
			}
		}
	})

	t.Run("missing fields marked with X", func(t *testing.T) {
		rec := okRecord("Acetone")
		rec.MissingFields = []string{"ak_value"}
		data, err := fixedRenderer().Render(
			[]sds.Record{rec}, []*risk.Assessment{nil}, testMeta("en"))
		if err != nil {
			t.Fatalf("Render: %v", err)
		}
		f := open(t, data)
		rows, _ := f.GetRows(loc.SheetNames[2])
		found := false
		for _, cell := range rows[1] {
			if cell == "X" {
				found = true
			}
		}
		if !found {
			t.Error("no X marker for missing ak_value")
		}
	})
}

func TestLevelFill(t *testing.T) {
	newBook := func(t *testing.T, code string) *book {
		t.Helper()
		f := excelize.NewFile()
		t.Cleanup(func() { f.Close() })
		st, err := newStyleSet(f)
		if err != nil {
			t.Fatalf("newStyleSet: %v", err)
		}
		return &book{f: f, st: st, loc: locale.For(code)}
	}

	for _, code := range []string{"hu", "en", "de"} {
		t.Run(code, func(t *testing.T) {
			b := newBook(t, code)
			fills := [4]int{b.st.greenCell, b.st.yellowCell, b.st.orangeCell, b.st.redCell}

			t.Run("full level labels map to their band", func(t *testing.T) {
				for i, label := range b.loc.RiskLevels {
					if got := b.levelFill(label); got != fills[i] {
						t.Errorf("levelFill(%q) = %d, want band %d fill %d", label, got, i, fills[i])
					}
				}
			})

			t.Run("bare band words map to their band", func(t *testing.T) {
				kw := b.loc.Keywords
				for i, keys := range [4][]string{kw.Acceptable, kw.Tolerable, kw.Significant, kw.Unacceptable} {
					for _, word := range keys {
						if got := b.levelFill(word); got != fills[i] {
							t.Errorf("levelFill(%q) = %d, want band %d fill %d", word, got, i, fills[i])
						}
					}
				}
			})
		})
	}

	t.Run("unmatched text gets no fill", func(t *testing.T) {
		b := newBook(t, "en")
		if got := b.levelFill("n/a"); got != 0 {
			t.Errorf("levelFill = %d, want 0", got)
		}
	})
}

func TestFilename(t *testing.T) {
	ts := time.Date(2026, 3, 1, 14, 30, 0, 0, time.UTC)
	got := Filename("hu", ts)
	want := "SDS_Database_hu_20260301_1430.xlsx"
	if got != want {
		t.Errorf("Filename = %q, want %q", got, want)
	}
}
