package scrapdf

import (
	"errors"
	"strings"
	"testing"

	"github.com/pyhub-apps/scrapdf-golang/internal/pdftest"
)

func TestOpen(t *testing.T) {
	path := pdftest.Write(t, t.TempDir(), "sample.pdf", pdftest.Doc{
		Title: pdftest.Title,
		Pages: pdftest.TextPages("Dummy PDF file"),
	})

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Failed to open PDF: %v", err)
	}
	defer doc.Close()

	if got := doc.Metadata().Title(); got != pdftest.Title {
		t.Errorf("Expected title %q, got %q", pdftest.Title, got)
	}

	pages, err := ExtractAll(doc)
	if err != nil {
		t.Fatalf("Failed to extract pages: %v", err)
	}
	if len(pages) != 1 {
		t.Fatalf("Expected 1 page, got %d", len(pages))
	}
	if !strings.Contains(pages[0].Text, "Dummy PDF file") {
		t.Errorf("Expected text to contain 'Dummy PDF file', got: %s", pages[0].Text)
	}
	if doc.NumPages() != 1 {
		t.Errorf("Expected 1 page consumed, got %d", doc.NumPages())
	}
}

func TestPages(t *testing.T) {
	path := pdftest.Write(t, t.TempDir(), "sample.pdf", pdftest.Doc{
		Pages: pdftest.TextPages("one", "two", "three"),
	})

	doc, err := Open(path)
	if err != nil {
		t.Fatalf("Failed to open PDF: %v", err)
	}
	defer doc.Close()

	want := 1
	for page, err := range Pages(doc) {
		if err != nil {
			t.Fatalf("Unexpected error on page %d: %v", want, err)
		}
		if page.Page != want {
			t.Errorf("Expected page %d, got %d", want, page.Page)
		}
		want++
	}
	if want != 4 {
		t.Errorf("Expected 3 pages, got %d", want-1)
	}
}

func TestOpen_Errors(t *testing.T) {
	dir := t.TempDir()
	scanned := pdftest.Write(t, dir, "scanned.pdf", pdftest.Doc{
		Pages: pdftest.ScannedPages("SCANNED"),
	})

	if _, err := Open(dir + "/notes.txt"); !errors.Is(err, ErrUnsupportedFormat) {
		t.Errorf("Expected ErrUnsupportedFormat, got %v", err)
	}
	if _, err := Open(dir + "/missing.pdf"); !errors.Is(err, ErrNotFound) {
		t.Errorf("Expected ErrNotFound, got %v", err)
	}

	doc, err := Open(scanned)
	if err != nil {
		t.Fatalf("Failed to open PDF: %v", err)
	}
	defer doc.Close()
	if _, err := doc.Next(); !errors.Is(err, ErrParsingFailed) {
		t.Errorf("Expected ErrParsingFailed, got %v", err)
	}
}

func TestOpenOCR(t *testing.T) {
	path := pdftest.Write(t, t.TempDir(), "scanned.pdf", pdftest.Doc{
		Pages: pdftest.ScannedPages("SCANNED"),
	})

	doc, err := OpenOCR(path, WithRecognizer(staticRecognizer("recognized")), WithTempDir(t.TempDir()))
	if err != nil {
		t.Fatalf("Failed to open PDF: %v", err)
	}
	defer doc.Close()

	page, err := doc.Next()
	if err != nil {
		t.Fatalf("Failed to recognize page: %v", err)
	}
	if page.Text != "recognized" {
		t.Errorf("Expected recognized text, got %q", page.Text)
	}
}

type staticRecognizer string

func (s staticRecognizer) Name() string { return "static" }

func (s staticRecognizer) Recognize(string) (string, error) { return string(s), nil }
