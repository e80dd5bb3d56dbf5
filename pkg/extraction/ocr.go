package extraction

import (
	"errors"
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pyhub-apps/scrapdf-golang/pkg/ocr"
	"github.com/pyhub-apps/scrapdf-golang/pkg/raster"
)

// OCRExtractor extracts text from scanned PDFs by rendering every page to
// an image and running OCR over it. It opens and validates the document the
// same way TextExtractor does, so bad paths and passwords fail at
// construction, but never applies the scanned page check: whatever the OCR
// engine recognizes, including nothing, is returned.
type OCRExtractor struct {
	src        *source
	renderer   raster.Renderer
	recognizer ocr.Recognizer
	workspace  *workspace

	images   []raster.PageImage
	rendered bool
	pos      int
	err      error
}

// NewOCRExtractor validates path and opens the document. Rendering is
// deferred to the first call to Next.
func NewOCRExtractor(path string, opts ...Option) (*OCRExtractor, error) {
	o := newOptions(opts)
	src, err := openSource(path, o)
	if err != nil {
		return nil, err
	}

	e := &OCRExtractor{
		src:        src,
		renderer:   o.renderer,
		recognizer: o.recognizer,
		workspace:  newWorkspace(o.tempDir, src.logger),
	}
	if e.renderer == nil {
		e.renderer = raster.NewPDFCPU()
	}
	if e.recognizer == nil {
		e.recognizer = ocr.DefaultRecognizer()
	}
	return e, nil
}

// Metadata returns the document information dictionary or nil
func (e *OCRExtractor) Metadata() Metadata {
	return cloneMetadata(e.src.metadata)
}

// NumPages returns the number of pages consumed so far
func (e *OCRExtractor) NumPages() int {
	return e.src.numPages
}

// Next recognizes the next page. The first call renders the whole document
// into the workspace.
func (e *OCRExtractor) Next() (PageText, error) {
	if e.err != nil {
		return PageText{}, e.err
	}
	if e.src.closed {
		return PageText{}, ErrClosed
	}
	if !e.rendered {
		if err := e.render(); err != nil {
			e.err = err
			return PageText{}, err
		}
	}
	if e.pos >= len(e.images) {
		e.err = io.EOF
		return PageText{}, e.err
	}

	img := e.images[e.pos]
	e.pos++

	var text string
	if img.Path != "" {
		var err error
		text, err = e.recognizer.Recognize(img.Path)
		if err != nil {
			e.err = fmt.Errorf("failed to recognize page %d: %w", img.Page, err)
			return PageText{}, e.err
		}
	}

	number := e.src.advance()
	e.src.logger.Debug("page recognized",
		zap.Int("page", number),
		zap.String("engine", e.recognizer.Name()),
		zap.Int("chars", len(text)),
	)
	return PageText{Page: number, Text: text}, nil
}

func (e *OCRExtractor) render() error {
	e.rendered = true

	dir, err := e.workspace.create()
	if err != nil {
		return err
	}
	images, err := e.renderer.Render(e.src.path, e.src.password, dir)
	if err != nil {
		return fmt.Errorf("failed to render pages: %w", err)
	}
	e.images = images
	e.src.logger.Debug("document rendered", zap.Int("images", len(images)), zap.String("dir", dir))
	return nil
}

// Close removes the rendered images and closes the document file
func (e *OCRExtractor) Close() error {
	return errors.Join(e.workspace.release(), e.src.close())
}
