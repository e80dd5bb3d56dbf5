// Package scrapdf extracts plain text, page by page, from PDF documents,
// either from the embedded text or by OCR for scanned documents
package scrapdf

import (
	"github.com/pyhub-apps/scrapdf-golang/pkg/extraction"
)

// Re-export types from extraction package for public API
type (
	Extractor     = extraction.Extractor
	TextExtractor = extraction.TextExtractor
	OCRExtractor  = extraction.OCRExtractor
	PageText      = extraction.PageText
	Metadata      = extraction.Metadata
	Option        = extraction.Option
	Strategy      = extraction.Strategy
	Error         = extraction.Error
	ErrorCode     = extraction.ErrorCode
)

// Re-export strategies, errors and option functions
const (
	StrategyText = extraction.StrategyText
	StrategyOCR  = extraction.StrategyOCR

	CodeUnsupportedFormat = extraction.CodeUnsupportedFormat
	CodeNotFound          = extraction.CodeNotFound
	CodeDecryptionFailed  = extraction.CodeDecryptionFailed
	CodeParsingFailed     = extraction.CodeParsingFailed
)

var (
	ErrUnsupportedFormat = extraction.ErrUnsupportedFormat
	ErrNotFound          = extraction.ErrNotFound
	ErrDecryptionFailed  = extraction.ErrDecryptionFailed
	ErrParsingFailed     = extraction.ErrParsingFailed
	ErrClosed            = extraction.ErrClosed

	WithPassword    = extraction.WithPassword
	WithLogger      = extraction.WithLogger
	WithBackend     = extraction.WithBackend
	WithTextOptions = extraction.WithTextOptions
	WithRenderer    = extraction.WithRenderer
	WithRecognizer  = extraction.WithRecognizer
	WithTempDir     = extraction.WithTempDir
	WithOpener      = extraction.WithOpener

	New        = extraction.New
	Pages      = extraction.Pages
	ExtractAll = extraction.ExtractAll
	CodeOf     = extraction.CodeOf
)

// Open opens a PDF for direct text extraction
func Open(path string, opts ...Option) (*TextExtractor, error) {
	return extraction.NewTextExtractor(path, opts...)
}

// OpenOCR opens a scanned PDF for OCR extraction. Import
// github.com/pyhub-apps/scrapdf-golang/pkg/ocr/tesseract (or pass
// WithRecognizer) to provide an OCR engine.
func OpenOCR(path string, opts ...Option) (*OCRExtractor, error) {
	return extraction.NewOCRExtractor(path, opts...)
}
