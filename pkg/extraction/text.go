package extraction

import (
	"fmt"
	"io"

	"go.uber.org/zap"

	"github.com/pyhub-apps/scrapdf-golang/pkg/pdf"
)

// TextExtractor extracts the text embedded in a (non-scanned) PDF
type TextExtractor struct {
	src      *source
	textOpts []pdf.TextExtractionOption
	cursor   *pageCursor
	err      error
}

// NewTextExtractor validates path and opens the document, decrypting it
// with the password from WithPassword if needed.
func NewTextExtractor(path string, opts ...Option) (*TextExtractor, error) {
	o := newOptions(opts)
	src, err := openSource(path, o)
	if err != nil {
		return nil, err
	}
	return &TextExtractor{src: src, textOpts: o.textOpts}, nil
}

// Metadata returns the document information dictionary or nil
func (e *TextExtractor) Metadata() Metadata {
	return cloneMetadata(e.src.metadata)
}

// NumPages returns the number of pages consumed so far
func (e *TextExtractor) NumPages() int {
	return e.src.numPages
}

// Next extracts the next page. A page whose text device output is exactly
// a form feed has no embedded text and fails with CodeParsingFailed; the
// document is probably a scan and should be retried with the OCR strategy.
func (e *TextExtractor) Next() (PageText, error) {
	if e.err != nil {
		return PageText{}, e.err
	}
	if e.src.closed {
		return PageText{}, ErrClosed
	}
	if e.cursor == nil {
		e.cursor = &pageCursor{doc: e.src.doc}
	}

	page, err := e.cursor.next()
	if err != nil {
		e.err = err
		if err != io.EOF {
			e.err = fmt.Errorf("failed to read page: %w", err)
		}
		return PageText{}, e.err
	}

	text, err := page.ExtractText(e.textOpts...)
	number := e.src.advance()
	if err != nil {
		e.err = newPageError(CodeParsingFailed, e.src.path, number,
			fmt.Sprintf("failed to extract text on page %d", number), err)
		return PageText{}, e.err
	}
	if text == pdf.FormFeed {
		e.err = newPageError(CodeParsingFailed, e.src.path, number,
			fmt.Sprintf("no text found on page %d, could this be a scanned PDF?", number), nil)
		return PageText{}, e.err
	}

	e.src.logger.Debug("page extracted", zap.Int("page", number), zap.Int("chars", len(text)))
	return PageText{Page: number, Text: text}, nil
}

// Close closes the document file
func (e *TextExtractor) Close() error {
	return e.src.close()
}

// pageCursor walks the document's pages forward once
type pageCursor struct {
	doc pdf.Document
	pos int
}

func (c *pageCursor) next() (pdf.Page, error) {
	if c.pos >= c.doc.NumPage() {
		return nil, io.EOF
	}
	c.pos++
	return c.doc.Page(c.pos)
}
