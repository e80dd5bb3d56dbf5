// Package extraction pulls plain text out of PDF documents one page at a
// time. Two strategies implement the same Extractor contract:
// TextExtractor reads the text embedded in the document and OCRExtractor
// renders every page and runs OCR over the images, for scanned documents.
//
// Extractors are single-pass, pull-based iterators and are not safe for
// concurrent use. Always Close an extractor, however iteration ended.
package extraction

import (
	"errors"
	"fmt"
	"io"
	"iter"
)

// Extractor is the contract shared by the extraction strategies
type Extractor interface {
	// Metadata returns the document information dictionary, or nil when
	// the document declares none or more than one
	Metadata() Metadata

	// Next returns the next page. It returns io.EOF once every page has
	// been returned and keeps returning the first error it hit after that.
	Next() (PageText, error)

	// NumPages returns how many pages have been consumed so far
	NumPages() int

	// Close releases the file and any temporary files. It is safe to call
	// more than once.
	Close() error
}

var (
	_ Extractor = (*TextExtractor)(nil)
	_ Extractor = (*OCRExtractor)(nil)
)

// New constructs the extractor for the given strategy
func New(strategy Strategy, path string, opts ...Option) (Extractor, error) {
	var (
		e   Extractor
		err error
	)
	switch strategy {
	case StrategyText, "":
		e, err = NewTextExtractor(path, opts...)
	case StrategyOCR:
		e, err = NewOCRExtractor(path, opts...)
	default:
		return nil, fmt.Errorf("unknown extraction strategy %q", strategy)
	}
	if err != nil {
		return nil, err
	}
	return e, nil
}

// Pages adapts an Extractor to a range-over-func sequence. Iteration stops
// after the first error, which is yielded with a zero PageText.
func Pages(e Extractor) iter.Seq2[PageText, error] {
	return func(yield func(PageText, error) bool) {
		for {
			page, err := e.Next()
			if errors.Is(err, io.EOF) {
				return
			}
			if err != nil {
				yield(PageText{}, err)
				return
			}
			if !yield(page, nil) {
				return
			}
		}
	}
}

// ExtractAll drains e. The pages read before a failure are returned along
// with the error.
func ExtractAll(e Extractor) ([]PageText, error) {
	var pages []PageText
	for page, err := range Pages(e) {
		if err != nil {
			return pages, err
		}
		pages = append(pages, page)
	}
	return pages, nil
}
