package sds

import (
	"reflect"
	"testing"
)

func TestRecordSetGet(t *testing.T) {
	rec := NewRecord("a.pdf")
	rec.Set("product_name", "Acetone")

	if v, ok := rec.Get("product_name"); !ok || v != "Acetone" {
		t.Errorf("Get = %q, %v", v, ok)
	}

	t.Run("empty value means absent", func(t *testing.T) {
		rec.Set("odor", "")
		if rec.Has("odor") {
			t.Error("empty value should not be stored")
		}
		rec.Set("product_name", "")
		if rec.Has("product_name") {
			t.Error("setting empty should clear the field")
		}
	})
}

func TestComponents(t *testing.T) {
	rec := NewRecord("a.pdf")
	rec.Set("comp1_name", "Acetone")
	rec.Set("comp1_cas", "67-64-1")
	rec.Set("comp3_name", "Toluene")

	comps := rec.Components()
	if len(comps) != 2 {
		t.Fatalf("got %d components, want 2", len(comps))
	}
	if comps[0].Name != "Acetone" || comps[0].CAS != "67-64-1" {
		t.Errorf("component 1 = %+v", comps[0])
	}
	if comps[1].Name != "Toluene" {
		t.Errorf("component 2 = %+v", comps[1])
	}
}

func TestRestoreOriginals(t *testing.T) {
	orig := NewRecord("a.pdf")
	orig.Status = StatusProcessed
	orig.Set("product_name", "Acetone")
	orig.Set("flash_point", "-20")

	t.Run("original values always win", func(t *testing.T) {
		merged := orig.Clone()
		merged.Set("product_name", "Acetone Pro") // model rewrote a present field
		merged.Set("ld50_oral", "5800 mg/kg")

		out := RestoreOriginals(orig, merged, []string{"ld50_oral"})
		if out.Value("product_name") != "Acetone" {
			t.Errorf("product_name = %q, want original", out.Value("product_name"))
		}
		if out.Value("ld50_oral") != "5800 mg/kg" {
			t.Error("allowed gap fill should survive")
		}
	})

	t.Run("undeclared additions are reverted", func(t *testing.T) {
		merged := orig.Clone()
		merged.Set("svhc", "no") // not a declared gap

		out := RestoreOriginals(orig, merged, []string{"ld50_oral"})
		if out.Has("svhc") {
			t.Error("undeclared field should be removed")
		}
	})

	t.Run("bookkeeping comes from the original", func(t *testing.T) {
		merged := orig.Clone()
		merged.SourceDocument = "other.pdf"
		merged.Err = "noise"

		out := RestoreOriginals(orig, merged, nil)
		if out.SourceDocument != "a.pdf" || out.Err != "" {
			t.Errorf("bookkeeping leaked: %+v", out)
		}
	})
}

func TestFilledGaps(t *testing.T) {
	orig := NewRecord("a.pdf")
	orig.Set("product_name", "Acetone")

	merged := orig.Clone()
	merged.Set("ld50_oral", "5800 mg/kg")

	got := FilledGaps(orig, merged, []string{"ld50_oral", "svhc"})
	if !reflect.DeepEqual(got, []string{"ld50_oral"}) {
		t.Errorf("FilledGaps = %v", got)
	}
}

func TestClone(t *testing.T) {
	rec := NewRecord("a.pdf")
	rec.Set("product_name", "Acetone")
	c := 0.9
	rec.Confidence = &c

	cp := rec.Clone()
	cp.Set("product_name", "Other")
	*cp.Confidence = 0.1

	if rec.Value("product_name") != "Acetone" {
		t.Error("clone shares field map")
	}
	if *rec.Confidence != 0.9 {
		t.Error("clone shares confidence pointer")
	}
}
