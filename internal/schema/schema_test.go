package schema

import "testing"

func TestFieldSet(t *testing.T) {
	t.Run("79 extraction fields", func(t *testing.T) {
		if got := len(All()); got != 79 {
			t.Errorf("got %d fields, want 79", got)
		}
	})

	t.Run("keys unique", func(t *testing.T) {
		seen := map[string]bool{}
		for _, k := range Keys() {
			if seen[k] {
				t.Errorf("duplicate key %s", k)
			}
			seen[k] = true
		}
	})

	t.Run("lookup", func(t *testing.T) {
		f, err := Get("ak_value")
		if err != nil {
			t.Fatalf("Get(ak_value): %v", err)
		}
		if !f.Critical {
			t.Error("ak_value should be critical")
		}
		if _, err := Get("nope"); err == nil {
			t.Error("expected error for unknown key")
		}
	})
}

func TestDatabaseLayout(t *testing.T) {
	layout := DatabaseLayout()
	if got := len(layout); got != 85 {
		t.Fatalf("got %d columns, want 85", got)
	}
	if layout[0].Kind != ColSeq {
		t.Error("column 1 should be the sequence column")
	}
	if layout[1].Key != "product_category" || layout[2].Key != "product_name" {
		t.Errorf("columns 2-3 = %q, %q; want product_category, product_name", layout[1].Key, layout[2].Key)
	}
	if layout[84].Kind != ColNotes {
		t.Error("last column should be the notes column")
	}
	if layout[82].Key != "exposure_routes" {
		t.Errorf("column 83 = %q, want exposure_routes", layout[82].Key)
	}

	// every extraction field appears exactly once
	count := map[string]int{}
	for _, c := range layout {
		if c.Kind == ColField {
			count[c.Key]++
		}
	}
	for _, k := range Keys() {
		if count[k] != 1 {
			t.Errorf("field %s appears %d times in layout", k, count[k])
		}
	}
}

func TestExtractionJSONSchema(t *testing.T) {
	doc := ExtractionJSONSchema()
	js, ok := doc["json_schema"].(map[string]any)
	if !ok {
		t.Fatal("missing json_schema wrapper")
	}
	if js["strict"] != true {
		t.Error("schema should be strict")
	}
	sch := js["schema"].(map[string]any)
	props := sch["properties"].(map[string]any)
	if got := len(props); got != 81 { // 79 fields + confidence_score + missing_fields
		t.Errorf("got %d properties, want 81", got)
	}
	if sch["additionalProperties"] != false {
		t.Error("additionalProperties should be false")
	}
}

func TestRiskJSONSchema(t *testing.T) {
	doc := RiskJSONSchema()
	js := doc["json_schema"].(map[string]any)
	sch := js["schema"].(map[string]any)
	props := sch["properties"].(map[string]any)
	prob := props["probability"].(map[string]any)
	if prob["minimum"] != 1 || prob["maximum"] != 4 {
		t.Errorf("probability bounds = %v..%v, want 1..4", prob["minimum"], prob["maximum"])
	}
	score := props["risk_score"].(map[string]any)
	if score["maximum"] != 16 {
		t.Errorf("risk_score maximum = %v, want 16", score["maximum"])
	}
}
