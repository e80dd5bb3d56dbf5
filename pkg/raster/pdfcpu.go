package raster

import (
	"fmt"
	"image"
	_ "image/jpeg"
	_ "image/png"
	"io"
	"os"
	"path/filepath"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
	_ "golang.org/x/image/bmp"
	_ "golang.org/x/image/tiff"
)

// PDFCPU renders scanned documents by extracting the scan image embedded in
// each page with pdfcpu. It needs no native libraries but only works for
// pages whose content is an embedded raster image, which is exactly what a
// scanner produces. When a page carries several images the largest one is
// taken as the page scan.
type PDFCPU struct{}

// NewPDFCPU creates a pdfcpu backed renderer
func NewPDFCPU() *PDFCPU {
	return &PDFCPU{}
}

// Render extracts one image per page into outDir
func (r *PDFCPU) Render(path, password, outDir string) ([]PageImage, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open file: %w", err)
	}
	defer f.Close()

	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	if password != "" {
		conf.UserPW = password
		conf.OwnerPW = password
	}

	ctx, err := api.ReadValidateAndOptimize(f, conf)
	if err != nil {
		return nil, fmt.Errorf("failed to read PDF context: %w", err)
	}

	pages := make([]PageImage, 0, ctx.PageCount)
	for pageNr := 1; pageNr <= ctx.PageCount; pageNr++ {
		images, err := pdfcpu.ExtractPageImages(ctx, pageNr, false)
		if err != nil {
			return nil, fmt.Errorf("failed to extract images from page %d: %w", pageNr, err)
		}

		pi := PageImage{Page: pageNr}
		if scan, ok := largestImage(images); ok {
			pi.Path, err = writeImage(outDir, pageNr, scan)
			if err != nil {
				return nil, err
			}
		}
		pages = append(pages, pi)
	}

	return pages, nil
}

func largestImage(images map[int]model.Image) (model.Image, bool) {
	var (
		best  model.Image
		found bool
	)
	for _, img := range images {
		if img.Thumb || img.IsImgMask {
			continue
		}
		// ties go to the lower object number so the choice is stable
		area, bestArea := img.Width*img.Height, best.Width*best.Height
		if !found || area > bestArea || (area == bestArea && img.ObjNr < best.ObjNr) {
			best, found = img, true
		}
	}
	return best, found
}

// writeImage stores the image in a format Leptonica reads directly. PNG and
// JPEG streams are copied as-is, everything else is decoded and re-encoded
// as PNG.
func writeImage(outDir string, page int, img model.Image) (string, error) {
	switch img.FileType {
	case "png", "jpg", "jpeg":
		return copyImage(outDir, page, img.FileType, img)
	case "jpx":
		return copyImage(outDir, page, "jp2", img)
	}

	decoded, _, err := image.Decode(img)
	if err != nil {
		return "", fmt.Errorf("failed to decode %s image on page %d: %w", img.FileType, page, err)
	}
	return WritePNG(outDir, page, decoded)
}

func copyImage(outDir string, page int, ext string, r io.Reader) (string, error) {
	path := filepath.Join(outDir, ImageName(page, ext))
	f, err := os.Create(path)
	if err != nil {
		return "", fmt.Errorf("failed to create image file: %w", err)
	}
	if _, err := io.Copy(f, r); err != nil {
		f.Close()
		return "", fmt.Errorf("failed to write page %d: %w", page, err)
	}
	if err := f.Close(); err != nil {
		return "", fmt.Errorf("failed to write page %d: %w", page, err)
	}
	return path, nil
}
