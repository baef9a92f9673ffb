package docsource

import (
	"os"
	"path/filepath"
	"testing"
)

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write %s: %v", name, err)
	}
	return path
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	l := &Loader{}

	t.Run("txt read directly", func(t *testing.T) {
		path := writeFile(t, dir, "acetone.txt", "SECTION 1 Acetone safety data sheet")
		doc, err := l.Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if doc.Name != "acetone.txt" || doc.Text == "" {
			t.Errorf("doc = %+v", doc)
		}
	})

	t.Run("broken pdf yields empty text", func(t *testing.T) {
		path := writeFile(t, dir, "broken.pdf", "not a pdf")
		doc, err := l.Load(path)
		if err != nil {
			t.Fatalf("Load: %v", err)
		}
		if doc.Text != "" {
			t.Errorf("text = %q, want empty", doc.Text)
		}
		if doc.Name != "broken.pdf" {
			t.Errorf("name = %q", doc.Name)
		}
	})

	t.Run("unsupported extension", func(t *testing.T) {
		path := writeFile(t, dir, "notes.docx", "x")
		if _, err := l.Load(path); err == nil {
			t.Error("expected error")
		}
	})
}

func TestLoadDir(t *testing.T) {
	dir := t.TempDir()
	l := &Loader{}

	writeFile(t, dir, "b.txt", "second document text")
	writeFile(t, dir, "a.txt", "first document text")
	writeFile(t, dir, "skip.docx", "ignored")

	docs, err := l.LoadDir(dir)
	if err != nil {
		t.Fatalf("LoadDir: %v", err)
	}
	if len(docs) != 2 {
		t.Fatalf("got %d docs, want 2", len(docs))
	}
	if docs[0].Name != "a.txt" || docs[1].Name != "b.txt" {
		t.Errorf("order = %s, %s", docs[0].Name, docs[1].Name)
	}

	t.Run("sidecar txt not loaded twice", func(t *testing.T) {
		sub := t.TempDir()
		writeFile(t, sub, "sheet.pdf", "broken pdf body")
		writeFile(t, sub, "sheet.txt", "text layer for the pdf")

		docs, err := l.LoadDir(sub)
		if err != nil {
			t.Fatalf("LoadDir: %v", err)
		}
		if len(docs) != 1 {
			t.Fatalf("got %d docs, want 1", len(docs))
		}
		if docs[0].Name != "sheet.pdf" {
			t.Errorf("name = %q", docs[0].Name)
		}
	})
}
