// Package raster turns the pages of a PDF document into image files that an
// OCR engine can read.
package raster

import (
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
)

// PageImage is the rendered image of one physical page. Path is empty when
// the page produced no image (for example a blank page in a scanned set).
type PageImage struct {
	Page int
	Path string
}

// Renderer converts every page of a document into one image each, writing
// the images into outDir. Results are ordered by page number and cover all
// pages of the document.
type Renderer interface {
	Render(path, password, outDir string) ([]PageImage, error)
}

// ImageName returns the file name used for a page image
func ImageName(page int, ext string) string {
	return fmt.Sprintf("page-%04d.%s", page, ext)
}

// WritePNG encodes img as PNG into outDir and returns the file path
func WritePNG(outDir string, page int, img image.Image) (string, error) {
	path := filepath.Join(outDir, ImageName(page, "png"))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	if err := png.Encode(f, img); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to encode page %d: %w", page, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write page %d: %w", page, err)
	}
	return path, nil
}
