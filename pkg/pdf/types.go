package pdf

// FormFeed is emitted by the text device after every page
const FormFeed = "\f"

// Backend identifies a parsing library
type Backend string

const (
	BackendLedongthuc Backend = "ledongthuc"
	BackendDslipak    Backend = "dslipak"
)

// Info is one document information dictionary (Title, Author, ...)
type Info map[string]string

// Title returns the Title entry, if any
func (i Info) Title() string {
	return i["Title"]
}

// TextExtractionOption is a function that modifies text extraction behavior
type TextExtractionOption func(*textExtractionConfig)

type textExtractionConfig struct {
	XTolerance float64
	YTolerance float64
}

func newTextExtractionConfig(opts []TextExtractionOption) *textExtractionConfig {
	config := &textExtractionConfig{
		XTolerance: 3.0,
		YTolerance: 3.0,
	}
	for _, opt := range opts {
		opt(config)
	}
	return config
}

// WithXTolerance sets the horizontal gap above which a space is inserted
func WithXTolerance(tolerance float64) TextExtractionOption {
	return func(c *textExtractionConfig) {
		c.XTolerance = tolerance
	}
}

// WithYTolerance sets the vertical distance above which a new line starts
func WithYTolerance(tolerance float64) TextExtractionOption {
	return func(c *textExtractionConfig) {
		c.YTolerance = tolerance
	}
}

// terminatePage appends the page separator to the device output
func terminatePage(text string) string {
	return text + FormFeed
}

func abs(x float64) float64 {
	if x < 0 {
		return -x
	}
	return x
}
