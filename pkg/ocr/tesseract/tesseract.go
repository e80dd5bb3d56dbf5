package tesseract

import (
	"fmt"

	"github.com/otiai10/gosseract/v2"

	"github.com/pyhub-apps/scrapdf-golang/pkg/ocr"
)

func init() {
	ocr.SetDefaultRecognizer(New())
}

// Recognizer implements ocr.Recognizer using the gosseract client
type Recognizer struct {
	clientFactory func() *gosseract.Client
	languages     []string
	dpi           int
}

// Option configures a Recognizer
type Option func(*Recognizer)

// WithLanguages selects the trained data used for recognition (e.g. "eng").
// Languages are never detected automatically.
func WithLanguages(langs ...string) Option {
	return func(r *Recognizer) { r.languages = append([]string(nil), langs...) }
}

// WithDPI tells Tesseract the resolution of the input images
func WithDPI(dpi int) Option {
	return func(r *Recognizer) { r.dpi = dpi }
}

// New constructs a Tesseract-backed recognizer
func New(opts ...Option) *Recognizer {
	r := &Recognizer{clientFactory: gosseract.NewClient}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Name returns "tesseract"
func (r *Recognizer) Name() string { return "tesseract" }

// Recognize runs OCR over a single image file. Each call uses its own client
// so a failed recognition cannot leak state into the next page.
func (r *Recognizer) Recognize(imagePath string) (string, error) {
	c := r.clientFactory()
	defer c.Close()

	if len(r.languages) > 0 {
		if err := c.SetLanguage(r.languages...); err != nil {
			return "", fmt.Errorf("set languages: %w", err)
		}
	}
	if r.dpi > 0 {
		if err := c.SetVariable(gosseract.SettableVariable("user_defined_dpi"), fmt.Sprint(r.dpi)); err != nil {
			return "", fmt.Errorf("set dpi: %w", err)
		}
	}
	if err := c.SetImage(imagePath); err != nil {
		return "", fmt.Errorf("set image: %w", err)
	}

	text, err := c.Text()
	if err != nil {
		return "", fmt.Errorf("recognize text: %w", err)
	}
	return text, nil
}
