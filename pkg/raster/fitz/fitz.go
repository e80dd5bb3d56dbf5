// Package fitz renders PDF pages to bitmaps with MuPDF through go-fitz.
// Importing it requires cgo and the MuPDF libraries.
package fitz

import (
	"errors"
	"fmt"

	gofitz "github.com/gen2brain/go-fitz"

	"github.com/pyhub-apps/scrapdf-golang/pkg/raster"
)

// DefaultDPI is a resolution Tesseract handles well
const DefaultDPI = 300

// ErrEncrypted is returned for password protected documents; go-fitz has no
// way to authenticate.
var ErrEncrypted = errors.New("fitz: encrypted documents are not supported")

// Renderer rasterizes every page with MuPDF
type Renderer struct {
	DPI float64
}

// New creates a renderer. A non-positive dpi selects DefaultDPI.
func New(dpi float64) *Renderer {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return &Renderer{DPI: dpi}
}

// Render writes one PNG per page into outDir
func (r *Renderer) Render(path, password, outDir string) ([]raster.PageImage, error) {
	if password != "" {
		return nil, ErrEncrypted
	}

	doc, err := gofitz.New(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with fitz: %w", err)
	}
	defer doc.Close()

	pages := make([]raster.PageImage, 0, doc.NumPage())
	for n := 0; n < doc.NumPage(); n++ {
		img, err := doc.ImageDPI(n, r.DPI)
		if err != nil {
			return nil, fmt.Errorf("failed to render page %d: %w", n+1, err)
		}
		imgPath, err := raster.WritePNG(outDir, n+1, img)
		if err != nil {
			return nil, err
		}
		pages = append(pages, raster.PageImage{Page: n + 1, Path: imgPath})
	}

	return pages, nil
}
