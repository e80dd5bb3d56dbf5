package extraction

import (
	"go.uber.org/zap"

	"github.com/pyhub-apps/scrapdf-golang/pkg/ocr"
	"github.com/pyhub-apps/scrapdf-golang/pkg/pdf"
	"github.com/pyhub-apps/scrapdf-golang/pkg/raster"
)

// Option configures an extractor
type Option func(*options)

type options struct {
	password   string
	logger     *zap.Logger
	backend    pdf.Backend
	opener     pdf.Opener
	textOpts   []pdf.TextExtractionOption
	renderer   raster.Renderer
	recognizer ocr.Recognizer
	tempDir    string
}

func newOptions(opts []Option) *options {
	o := &options{logger: zap.NewNop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// WithPassword sets the password used to decrypt the document
func WithPassword(password string) Option {
	return func(o *options) {
		o.password = password
	}
}

// WithLogger sets the logger. Extractors log at debug level only.
func WithLogger(logger *zap.Logger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// WithBackend selects the parsing library. The default tries every backend.
func WithBackend(backend pdf.Backend) Option {
	return func(o *options) {
		o.backend = backend
	}
}

// WithTextOptions passes layout parameters to the text device
func WithTextOptions(opts ...pdf.TextExtractionOption) Option {
	return func(o *options) {
		o.textOpts = append(o.textOpts, opts...)
	}
}

// WithRenderer sets the page renderer used by the OCR strategy.
// Defaults to raster.NewPDFCPU().
func WithRenderer(r raster.Renderer) Option {
	return func(o *options) {
		o.renderer = r
	}
}

// WithRecognizer sets the OCR engine. Defaults to ocr.DefaultRecognizer().
func WithRecognizer(r ocr.Recognizer) Option {
	return func(o *options) {
		o.recognizer = r
	}
}

// WithTempDir sets the parent of the OCR rendering directory.
// Defaults to os.TempDir().
func WithTempDir(dir string) Option {
	return func(o *options) {
		o.tempDir = dir
	}
}

// WithOpener replaces the parsing collaborator. It takes precedence over
// WithBackend.
func WithOpener(opener pdf.Opener) Option {
	return func(o *options) {
		o.opener = opener
	}
}
