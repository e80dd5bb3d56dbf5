// Package ocr defines the contract for engines that turn a page image into
// text. Engines backed by native libraries live in sub-packages and register
// themselves as the default when imported, so callers that never OCR do not
// need cgo.
package ocr

import (
	"errors"
	"sync"
)

// ErrNoEngine is returned by the default recognizer when no engine package
// has been imported.
var ErrNoEngine = errors.New("ocr: no engine registered, import github.com/pyhub-apps/scrapdf-golang/pkg/ocr/tesseract")

// Recognizer converts the image stored at imagePath into recognized text.
// Low confidence or empty results are returned as-is, not as errors.
type Recognizer interface {
	Name() string
	Recognize(imagePath string) (string, error)
}

var (
	mu            sync.RWMutex
	defaultEngine Recognizer = noopRecognizer{}
)

// DefaultRecognizer returns the registered default engine
func DefaultRecognizer() Recognizer {
	mu.RLock()
	defer mu.RUnlock()
	return defaultEngine
}

// SetDefaultRecognizer sets the engine returned by DefaultRecognizer
func SetDefaultRecognizer(r Recognizer) {
	mu.Lock()
	defer mu.Unlock()
	defaultEngine = r
}

type noopRecognizer struct{}

func (noopRecognizer) Name() string { return "noop" }

func (noopRecognizer) Recognize(string) (string, error) {
	return "", ErrNoEngine
}
