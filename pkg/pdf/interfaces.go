package pdf

import (
	"io"
)

// Document represents an opened, already decrypted PDF document
type Document interface {
	// NumPage returns the number of physical pages
	NumPage() int

	// Page returns the page with the given number (1-based)
	Page(number int) (Page, error)

	// InfoBlocks returns every document information dictionary the
	// backend could locate, in file order
	InfoBlocks() []Info

	// Backend reports which parsing library opened the document
	Backend() Backend
}

// Page represents a single page of a Document
type Page interface {
	// Number returns the page number (1-based)
	Number() int

	// ExtractText renders the page's text-showing operators to plain text.
	// The result is terminated by a form feed, so a page without any
	// recoverable text renders to exactly FormFeed.
	ExtractText(opts ...TextExtractionOption) (string, error)
}

// Opener opens a Document from a random-access byte stream
type Opener func(r io.ReaderAt, size int64, password string) (Document, error)
