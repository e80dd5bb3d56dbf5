package pdf

import (
	"fmt"
	"io"
	"strings"

	lpdf "github.com/ledongthuc/pdf"
)

// LedongthucDocument implements the Document interface using ledongthuc/pdf library
type LedongthucDocument struct {
	reader *lpdf.Reader
	info   []Info
}

// OpenWithLedongthuc opens a PDF using the ledongthuc/pdf library.
// This provides the most accurate text extraction.
func OpenWithLedongthuc(r io.ReaderAt, size int64, password string) (doc Document, err error) {
	defer recoverError(&err, "open PDF with ledongthuc")

	reader, err := lpdf.NewReaderEncrypted(r, size, passwordFunc(password))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with ledongthuc: %w", classifyOpenError(err, lpdf.ErrInvalidPassword))
	}
	if reader.Trailer().Key("Encrypt").Kind() != lpdf.Null {
		plain, err := decrypt(r, size, password)
		if err != nil {
			return nil, err
		}
		return OpenWithLedongthuc(plain, plain.Size(), "")
	}

	d := &LedongthucDocument{reader: reader}
	d.extractMetadata()
	return d, nil
}

// extractMetadata reads the Info dictionary referenced by the trailer
func (d *LedongthucDocument) extractMetadata() {
	info := d.reader.Trailer().Key("Info")
	if info.Kind() != lpdf.Dict {
		return
	}

	block := Info{}
	for _, key := range info.Keys() {
		v := info.Key(key)
		switch v.Kind() {
		case lpdf.String:
			block[key] = v.Text()
		case lpdf.Name:
			block[key] = v.Name()
		case lpdf.Null:
			// skip
		default:
			block[key] = v.String()
		}
	}
	d.info = []Info{block}
}

// NumPage returns the number of pages
func (d *LedongthucDocument) NumPage() int {
	return d.reader.NumPage()
}

// Page returns a page by its 1-based number
func (d *LedongthucDocument) Page(number int) (Page, error) {
	if number < 1 || number > d.reader.NumPage() {
		return nil, fmt.Errorf("page number %d out of range [1, %d]", number, d.reader.NumPage())
	}
	page := d.reader.Page(number)
	if page.V.IsNull() {
		return nil, fmt.Errorf("page %d not found in page tree", number)
	}
	return &LedongthucPage{page: page, number: number}, nil
}

// InfoBlocks returns the document information dictionaries
func (d *LedongthucDocument) InfoBlocks() []Info {
	return d.info
}

// Backend returns BackendLedongthuc
func (d *LedongthucDocument) Backend() Backend {
	return BackendLedongthuc
}

// LedongthucPage implements the Page interface using ledongthuc/pdf
type LedongthucPage struct {
	page   lpdf.Page
	number int
}

// Number returns the page number (1-based)
func (p *LedongthucPage) Number() int {
	return p.number
}

// ExtractText extracts text from the page.
// ledongthuc/pdf already handles spacing and line breaks, so the
// tolerances are not consulted. The library starts every text object with
// a newline; those are trimmed so a page without glyphs renders to a bare
// form feed.
func (p *LedongthucPage) ExtractText(opts ...TextExtractionOption) (text string, err error) {
	defer recoverError(&err, fmt.Sprintf("extract text from page %d", p.number))

	// A nil font map lets the library resolve the page's own fonts
	text, err = p.page.GetPlainText(nil)
	if err != nil {
		return "", fmt.Errorf("failed to extract text from page %d: %w", p.number, err)
	}
	text = strings.Trim(text, "\n")
	if text != "" {
		text += "\n"
	}
	return terminatePage(text), nil
}
