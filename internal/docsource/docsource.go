// Package docsource loads named SDS documents from disk. Plain text files
// are read directly; PDFs are validated and page-counted, with their text
// layer expected in a sidecar .txt file produced by an external extraction
// step. Documents with no usable text still enter the batch so they surface
// as unreadable rows instead of disappearing.
package docsource

import (
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pdfcpu/pdfcpu/pkg/api"

	"github.com/chemledger/sdsforge/internal/batch"
)

// Loader collects documents from files and directories.
type Loader struct {
	Logger *slog.Logger
}

func (l *Loader) logger() *slog.Logger {
	if l.Logger != nil {
		return l.Logger
	}
	return slog.Default()
}

// LoadDir loads every .txt and .pdf document in a directory, sorted by
// name. PDFs whose sidecar .txt also sits in the directory are not loaded
// twice; the PDF entry wins.
func (l *Loader) LoadDir(dir string) ([]batch.Document, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read document directory: %w", err)
	}

	pdfSidecars := make(map[string]bool)
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		switch strings.ToLower(filepath.Ext(name)) {
		case ".pdf":
			paths = append(paths, filepath.Join(dir, name))
			pdfSidecars[sidecarPath(filepath.Join(dir, name))] = true
		case ".txt":
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	sort.Strings(paths)

	var docs []batch.Document
	for _, p := range paths {
		if strings.EqualFold(filepath.Ext(p), ".txt") && pdfSidecars[p] {
			continue
		}
		doc, err := l.Load(p)
		if err != nil {
			return nil, err
		}
		docs = append(docs, doc)
	}
	return docs, nil
}

// Load loads a single document by path.
func (l *Loader) Load(path string) (batch.Document, error) {
	name := filepath.Base(path)
	switch strings.ToLower(filepath.Ext(path)) {
	case ".txt":
		text, err := os.ReadFile(path)
		if err != nil {
			return batch.Document{}, fmt.Errorf("failed to read %s: %w", name, err)
		}
		return batch.Document{Name: name, Text: string(text)}, nil
	case ".pdf":
		return l.loadPDF(path)
	default:
		return batch.Document{}, fmt.Errorf("unsupported document type: %s", name)
	}
}

// loadPDF validates the PDF and reads its sidecar text layer. A broken PDF
// or a missing sidecar yields a document with empty text, which the batch
// gate turns into an unreadable record.
func (l *Loader) loadPDF(path string) (batch.Document, error) {
	name := filepath.Base(path)
	doc := batch.Document{Name: name}

	f, err := os.Open(path)
	if err != nil {
		return batch.Document{}, fmt.Errorf("failed to open %s: %w", name, err)
	}
	pageCount, err := api.PageCount(f, nil)
	f.Close()
	if err != nil {
		l.logger().Warn("PDF validation failed", "document", name, "error", err)
		return doc, nil
	}

	text, err := os.ReadFile(sidecarPath(path))
	if err != nil {
		l.logger().Warn("no text layer for PDF", "document", name, "pages", pageCount)
		return doc, nil
	}
	l.logger().Debug("loaded PDF document", "document", name, "pages", pageCount, "chars", len(text))
	doc.Text = string(text)
	return doc, nil
}

func sidecarPath(pdfPath string) string {
	return strings.TrimSuffix(pdfPath, filepath.Ext(pdfPath)) + ".txt"
}
