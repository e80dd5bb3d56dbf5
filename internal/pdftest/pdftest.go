// Package pdftest generates PDF fixtures for tests: documents with embedded
// text, encrypted documents and scanned documents whose pages are images.
package pdftest

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/png"
	"path/filepath"
	"testing"

	"github.com/jung-kurt/gofpdf"
	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"
)

// Title is the title set on fixture documents
const Title = "A block-sorting lossless data compression algorithm"

// Page describes one fixture page. Scanned pages carry their text as an
// image only.
type Page struct {
	Text    string
	Scanned bool
}

// Doc describes a fixture document
type Doc struct {
	Title    string
	Password string
	Pages    []Page
}

// TextPages is a convenience for documents made of text pages only
func TextPages(texts ...string) []Page {
	pages := make([]Page, len(texts))
	for i, text := range texts {
		pages[i] = Page{Text: text}
	}
	return pages
}

// ScannedPages is a convenience for documents made of image pages only
func ScannedPages(texts ...string) []Page {
	pages := make([]Page, len(texts))
	for i, text := range texts {
		pages[i] = Page{Text: text, Scanned: true}
	}
	return pages
}

// Write renders doc into dir/name and returns the path
func Write(tb testing.TB, dir, name string, doc Doc) string {
	tb.Helper()

	pdf := gofpdf.New("P", "mm", "A4", "")
	if doc.Title != "" {
		pdf.SetTitle(doc.Title, false)
	}
	if doc.Password != "" {
		pdf.SetProtection(gofpdf.CnProtectPrint, doc.Password, "owner-"+doc.Password)
	}

	for i, page := range doc.Pages {
		pdf.AddPage()
		if !page.Scanned {
			pdf.SetFont("Helvetica", "", 12)
			pdf.MultiCell(0, 6, page.Text, "", "L", false)
			continue
		}

		img := RenderText(page.Text)
		var buf bytes.Buffer
		if err := png.Encode(&buf, img); err != nil {
			tb.Fatalf("Failed to encode page %d: %v", i+1, err)
		}
		imageName := fmt.Sprintf("scan-%d", i+1)
		opts := gofpdf.ImageOptions{ImageType: "PNG"}
		pdf.RegisterImageOptionsReader(imageName, opts, &buf)
		pdf.ImageOptions(imageName, 10, 10, 190, 0, false, opts, 0, "")
	}

	path := filepath.Join(dir, name)
	if err := pdf.OutputFileAndClose(path); err != nil {
		tb.Fatalf("Failed to write PDF fixture: %v", err)
	}
	return path
}

// RenderText draws text in black on a white page image, scaled up so OCR
// engines can read the bitmap font
func RenderText(text string) *image.Gray {
	const scale = 4
	face := basicfont.Face7x13

	width := font.MeasureString(face, text).Ceil() + 20
	small := image.NewGray(image.Rect(0, 0, width, 40))
	draw.Draw(small, small.Bounds(), &image.Uniform{C: color.White}, image.Point{}, draw.Src)

	d := &font.Drawer{
		Dst:  small,
		Src:  image.Black,
		Face: face,
		Dot:  fixed.P(10, 25),
	}
	d.DrawString(text)

	large := image.NewGray(image.Rect(0, 0, width*scale, 40*scale))
	draw.NearestNeighbor.Scale(large, large.Bounds(), small, small.Bounds(), draw.Src, nil)
	return large
}
