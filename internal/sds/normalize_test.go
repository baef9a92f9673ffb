package sds

import "testing"

func TestNormalize(t *testing.T) {
	t.Run("values trimmed and stored", func(t *testing.T) {
		rec := Normalize("a.pdf", map[string]any{
			"product_name": "  Acetone  ",
			"flash_point":  -20.0,
		})
		if rec.Value("product_name") != "Acetone" {
			t.Errorf("product_name = %q", rec.Value("product_name"))
		}
		if rec.Value("flash_point") != "-20" {
			t.Errorf("flash_point = %q", rec.Value("flash_point"))
		}
		if rec.Status != StatusProcessed {
			t.Errorf("status = %v", rec.Status)
		}
	})

	t.Run("null-ish values become absent", func(t *testing.T) {
		rec := Normalize("a.pdf", map[string]any{
			"product_name": "Acetone",
			"odor":         "",
			"ph":           nil,
			"svhc":         "null",
			"ufi_code":     "N/A",
			"color":        " - ",
		})
		for _, key := range []string{"odor", "ph", "svhc", "ufi_code", "color"} {
			if rec.Has(key) {
				t.Errorf("%s should be absent, got %q", key, rec.Value(key))
			}
		}
	})

	t.Run("unknown keys dropped", func(t *testing.T) {
		rec := Normalize("a.pdf", map[string]any{
			"product_name": "Acetone",
			"made_up":      "x",
		})
		if rec.Has("made_up") {
			t.Error("unknown key survived")
		}
	})

	t.Run("bookkeeping fields", func(t *testing.T) {
		rec := Normalize("a.pdf", map[string]any{
			"product_name":     "Acetone",
			"confidence_score": 0.85,
			"missing_fields":   []any{"ak_value", "not_a_field", "svhc"},
		})
		if rec.Confidence == nil || *rec.Confidence != 0.85 {
			t.Errorf("confidence = %v", rec.Confidence)
		}
		want := []string{"ak_value", "svhc"}
		if len(rec.MissingFields) != 2 || rec.MissingFields[0] != want[0] || rec.MissingFields[1] != want[1] {
			t.Errorf("missing fields = %v", rec.MissingFields)
		}
	})

	t.Run("idempotent on normalized data", func(t *testing.T) {
		first := Normalize("a.pdf", map[string]any{
			"product_name": " Acetone ",
			"svhc":         "none",
			"flash_point":  "-20 °C",
		})
		raw := make(map[string]any, len(first.Fields))
		for k, v := range first.Fields {
			raw[k] = v
		}
		second := Normalize("a.pdf", raw)
		if len(second.Fields) != len(first.Fields) {
			t.Fatalf("field count changed: %d vs %d", len(second.Fields), len(first.Fields))
		}
		for k, v := range first.Fields {
			if second.Value(k) != v {
				t.Errorf("%s changed: %q vs %q", k, second.Value(k), v)
			}
		}
	})
}
