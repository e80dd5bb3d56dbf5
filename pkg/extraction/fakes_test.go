package extraction_test

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/pyhub-apps/scrapdf-golang/pkg/pdf"
	"github.com/pyhub-apps/scrapdf-golang/pkg/raster"
)

// fakeDocument serves fixed page texts through the parsing contract
type fakeDocument struct {
	texts []string
	info  []pdf.Info
}

func (d *fakeDocument) NumPage() int { return len(d.texts) }
func (d *fakeDocument) InfoBlocks() []pdf.Info { return d.info }
func (d *fakeDocument) Backend() pdf.Backend { return "fake" }

func (d *fakeDocument) Page(number int) (pdf.Page, error) {
	if number < 1 || number > len(d.texts) {
		return nil, fmt.Errorf("page number %d out of range", number)
	}
	return fakePage{number: number, text: d.texts[number-1]}, nil
}

type fakePage struct {
	number int
	text   string
}

func (p fakePage) Number() int { return p.number }

func (p fakePage) ExtractText(...pdf.TextExtractionOption) (string, error) {
	return p.text + pdf.FormFeed, nil
}

// fakeOpener returns doc, or err when set, and records the password
type fakeOpener struct {
	doc      *fakeDocument
	err      error
	password string
}

func (o *fakeOpener) open(_ io.ReaderAt, _ int64, password string) (pdf.Document, error) {
	o.password = password
	if o.err != nil {
		return nil, o.err
	}
	return o.doc, nil
}

// fakeRenderer writes one placeholder file per non-blank page
type fakeRenderer struct {
	pages  []string // "" marks a blank page
	err    error
	outDir string
}

func (r *fakeRenderer) Render(_, _ string, outDir string) ([]raster.PageImage, error) {
	r.outDir = outDir
	if r.err != nil {
		return nil, r.err
	}
	images := make([]raster.PageImage, len(r.pages))
	for i, text := range r.pages {
		images[i] = raster.PageImage{Page: i + 1}
		if text == "" {
			continue
		}
		path := filepath.Join(outDir, raster.ImageName(i+1, "txt"))
		if err := os.WriteFile(path, []byte(text), 0o600); err != nil {
			return nil, err
		}
		images[i].Path = path
	}
	return images, nil
}

// fakeRecognizer "recognizes" the placeholder files written above, or
// echoes the image path for real renderers
type fakeRecognizer struct {
	calls  []string
	failOn int // 1-based call that fails, 0 never
}

func (r *fakeRecognizer) Name() string { return "fake" }

func (r *fakeRecognizer) Recognize(imagePath string) (string, error) {
	r.calls = append(r.calls, imagePath)
	if r.failOn == len(r.calls) {
		return "", errors.New("engine crashed")
	}
	if strings.HasSuffix(imagePath, ".txt") {
		data, err := os.ReadFile(imagePath)
		return string(data), err
	}
	return "recognized " + filepath.Base(imagePath), nil
}

// placeholderPDF creates a file that only needs to pass path validation
func placeholderPDF(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "placeholder.pdf")
	if err := os.WriteFile(path, []byte("%PDF-1.4\n"), 0o600); err != nil {
		t.Fatalf("Failed to write placeholder: %v", err)
	}
	return path
}
