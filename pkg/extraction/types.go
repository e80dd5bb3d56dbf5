package extraction

import (
	"maps"
)

// PageText is the extracted text of one page
type PageText struct {
	// Page is the 1-based physical page number
	Page int
	// Text is the page text as produced by the extraction strategy. Text
	// strategy output keeps the trailing form feed emitted by the text device.
	Text string
}

// Metadata is the document information dictionary (Title, Author, ...)
type Metadata map[string]string

// Title returns the Title entry, if any
func (m Metadata) Title() string {
	return m["Title"]
}

// Strategy names one of the extraction strategies
type Strategy string

const (
	// StrategyText reads the text embedded in the document
	StrategyText Strategy = "text"
	// StrategyOCR renders each page and runs OCR over the image
	StrategyOCR Strategy = "ocr"
)

func cloneMetadata(m Metadata) Metadata {
	if m == nil {
		return nil
	}
	return maps.Clone(m)
}
