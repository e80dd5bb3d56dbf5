package pdf

import (
	"fmt"
	"io"
	"strings"

	gopdf "github.com/dslipak/pdf"
)

// DsliPakDocument implements the Document interface using dslipak/pdf library
type DsliPakDocument struct {
	reader *gopdf.Reader
	info   []Info
}

// OpenWithDslipak opens a PDF using the dslipak/pdf library
func OpenWithDslipak(r io.ReaderAt, size int64, password string) (doc Document, err error) {
	defer recoverError(&err, "open PDF with dslipak")

	reader, err := gopdf.NewReaderEncrypted(r, size, passwordFunc(password))
	if err != nil {
		return nil, fmt.Errorf("failed to open PDF with dslipak: %w", classifyOpenError(err, gopdf.ErrInvalidPassword))
	}
	if reader.Trailer().Key("Encrypt").Kind() != gopdf.Null {
		plain, err := decrypt(r, size, password)
		if err != nil {
			return nil, err
		}
		return OpenWithDslipak(plain, plain.Size(), "")
	}

	d := &DsliPakDocument{reader: reader}
	d.extractMetadata()
	return d, nil
}

func (d *DsliPakDocument) extractMetadata() {
	info := d.reader.Trailer().Key("Info")
	if info.Kind() != gopdf.Dict {
		return
	}

	block := Info{}
	for _, key := range info.Keys() {
		v := info.Key(key)
		switch v.Kind() {
		case gopdf.String:
			block[key] = v.Text()
		case gopdf.Name:
			block[key] = v.Name()
		case gopdf.Null:
		default:
			block[key] = v.String()
		}
	}
	d.info = []Info{block}
}

// NumPage returns the number of pages
func (d *DsliPakDocument) NumPage() int {
	return d.reader.NumPage()
}

// Page returns a page by its 1-based number
func (d *DsliPakDocument) Page(number int) (Page, error) {
	if number < 1 || number > d.reader.NumPage() {
		return nil, fmt.Errorf("invalid page number: %d", number)
	}
	return &DsliPakPage{page: d.reader.Page(number), number: number}, nil
}

// InfoBlocks returns the document information dictionaries
func (d *DsliPakDocument) InfoBlocks() []Info {
	return d.info
}

// Backend returns BackendDslipak
func (d *DsliPakDocument) Backend() Backend {
	return BackendDslipak
}

// DsliPakPage implements the Page interface using dslipak/pdf
type DsliPakPage struct {
	page   gopdf.Page
	number int
}

// Number returns the page number (1-based)
func (p *DsliPakPage) Number() int {
	return p.number
}

// ExtractText extracts text from the page.
// dslipak/pdf only exposes positioned text runs, so lines and word
// breaks are rebuilt from the run coordinates.
func (p *DsliPakPage) ExtractText(opts ...TextExtractionOption) (text string, err error) {
	defer recoverError(&err, fmt.Sprintf("extract text from page %d", p.number))

	config := newTextExtractionConfig(opts)
	content := p.page.Content()

	var b strings.Builder
	for i, item := range content.Text {
		if i > 0 {
			prev := content.Text[i-1]
			switch {
			case abs(item.Y-prev.Y) > config.YTolerance:
				b.WriteString("\n")
			case item.X-(prev.X+prev.W) > config.XTolerance && !strings.HasSuffix(prev.S, " "):
				b.WriteString(" ")
			}
		}
		b.WriteString(item.S)
	}
	if b.Len() > 0 {
		b.WriteString("\n")
	}

	return terminatePage(b.String()), nil
}
