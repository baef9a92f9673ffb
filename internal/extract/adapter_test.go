package extract

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/chemledger/sdsforge/internal/locale"
	"github.com/chemledger/sdsforge/internal/providers"
	"github.com/chemledger/sdsforge/internal/sds"
)

func TestExtract(t *testing.T) {
	loc := locale.For("en")

	t.Run("returns raw mapping", func(t *testing.T) {
		mock := providers.NewMockClient()
		mock.ResponseJSON = json.RawMessage(`{"product_name":"Acetone","flash_point":"-20"}`)

		a, err := NewAdapter(Config{Client: mock})
		if err != nil {
			t.Fatalf("NewAdapter: %v", err)
		}
		raw, err := a.Extract(context.Background(), "SECTION 1 ... Acetone ...", loc)
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}
		if raw["product_name"] != "Acetone" {
			t.Errorf("product_name = %v", raw["product_name"])
		}
	})

	t.Run("client failure wraps ExtractionError", func(t *testing.T) {
		mock := providers.NewMockClient()
		mock.ShouldFail = true

		a, _ := NewAdapter(Config{Client: mock})
		_, err := a.Extract(context.Background(), "text", loc)
		var ee *ExtractionError
		if !errors.As(err, &ee) {
			t.Fatalf("got %T, want *ExtractionError", err)
		}
		if ee.Stage != "extract" {
			t.Errorf("stage = %q", ee.Stage)
		}
	})

	t.Run("long documents are truncated", func(t *testing.T) {
		mock := providers.NewMockClient()
		mock.ResponseJSON = json.RawMessage(`{"product_name":"X"}`)
		a, _ := NewAdapter(Config{Client: mock})

		long := strings.Repeat("a", MaxDocumentChars+5000)
		if _, err := a.Extract(context.Background(), long, loc); err != nil {
			t.Fatalf("Extract: %v", err)
		}
		// truncation happens before the prompt is built, so the mock's token
		// estimate reflects the capped length
	})
}

func TestTruncate(t *testing.T) {
	t.Run("short text passes through", func(t *testing.T) {
		if got := truncate("short"); got != "short" {
			t.Errorf("truncate = %q", got)
		}
	})

	t.Run("long text capped with marker", func(t *testing.T) {
		got := truncate(strings.Repeat("a", MaxDocumentChars+1))
		if len(got) != MaxDocumentChars+len(truncationMarker) {
			t.Errorf("len = %d", len(got))
		}
		if !strings.HasSuffix(got, truncationMarker) {
			t.Error("marker missing")
		}
	})

	t.Run("cut backs off to a rune boundary", func(t *testing.T) {
		// two-byte runes guarantee the byte cap lands mid-sequence
		long := strings.Repeat("é", MaxDocumentChars)
		got := truncate(long)
		if !utf8.ValidString(got) {
			t.Fatal("truncated text is not valid UTF-8")
		}
		body := strings.TrimSuffix(got, truncationMarker)
		if len(body) > MaxDocumentChars {
			t.Errorf("body is %d bytes, cap is %d", len(body), MaxDocumentChars)
		}
		if body != strings.Repeat("é", MaxDocumentChars/2) {
			t.Error("cut split a rune instead of backing off")
		}
	})
}

func TestMerge(t *testing.T) {
	loc := locale.For("en")

	orig := sds.NewRecord("a.pdf")
	orig.Status = sds.StatusProcessed
	orig.Set("product_name", "Acetone")
	orig.Set("h_statements", "H225 (Highly flammable liquid and vapour)")

	t.Run("fills only declared gaps", func(t *testing.T) {
		mock := providers.NewMockClient()
		// model returns a rewrite of a present field plus an undeclared one
		mock.ResponseJSON = json.RawMessage(`{
			"product_name": "Acetone Ultra",
			"h_statements": "H225 (Highly flammable liquid and vapour)",
			"ld50_oral": "5800 mg/kg",
			"svhc": "no"
		}`)
		a, _ := NewAdapter(Config{Client: mock})

		merged, err := a.Merge(context.Background(), orig, "LD50 oral rat 5800 mg/kg", []string{"ld50_oral"}, loc)
		if err != nil {
			t.Fatalf("Merge: %v", err)
		}
		if merged.Value("product_name") != "Acetone" {
			t.Errorf("present field rewritten: %q", merged.Value("product_name"))
		}
		if merged.Value("ld50_oral") != "5800 mg/kg" {
			t.Errorf("declared gap not filled: %q", merged.Value("ld50_oral"))
		}
		if merged.Has("svhc") {
			t.Error("undeclared field leaked through merge")
		}
	})

	t.Run("merge failure returns original", func(t *testing.T) {
		mock := providers.NewMockClient()
		mock.ShouldFail = true
		a, _ := NewAdapter(Config{Client: mock})

		merged, err := a.Merge(context.Background(), orig, "findings", []string{"ld50_oral"}, loc)
		if err == nil {
			t.Fatal("expected error")
		}
		if merged.Value("product_name") != "Acetone" {
			t.Error("original record should come back unchanged")
		}
	})
}

func TestPrompts(t *testing.T) {
	t.Run("user prompt carries language and text", func(t *testing.T) {
		p := UserPrompt("Deutsch", "SDS BODY")
		if !strings.Contains(p, "Deutsch") || !strings.Contains(p, "SDS BODY") {
			t.Errorf("prompt = %q", p)
		}
	})

	t.Run("merge prompt lists gaps", func(t *testing.T) {
		p := MergeUserPrompt("English", `{"a":"b"}`, []string{"ld50_oral", "svhc"}, "findings text")
		for _, want := range []string{"ld50_oral", "svhc", "findings text", `{"a":"b"}`} {
			if !strings.Contains(p, want) {
				t.Errorf("prompt missing %q", want)
			}
		}
	})
}
