package pdf

import (
	"errors"
	"fmt"
	"io"
	"strings"
)

var (
	// ErrInvalidPassword is returned when a document is encrypted and the
	// supplied password (possibly empty) does not open it
	ErrInvalidPassword = errors.New("pdf: invalid password")

	// ErrUnsupportedEncryption is returned when a document uses a security
	// handler the backend cannot decrypt
	ErrUnsupportedEncryption = errors.New("pdf: unsupported encryption")
)

// Open opens a document, trying every backend in order of text extraction
// accuracy. Password failures are returned immediately since another
// backend would reject the same credentials.
func Open(r io.ReaderAt, size int64, password string) (Document, error) {
	// Try ledongthuc implementation first as it has the most accurate text extraction
	doc, err := OpenWithLedongthuc(r, size, password)
	if err == nil {
		return doc, nil
	}
	if isDecryptionError(err) {
		return nil, err
	}

	// Fallback to dslipak implementation
	doc, fallbackErr := OpenWithDslipak(r, size, password)
	if fallbackErr == nil {
		return doc, nil
	}
	if isDecryptionError(fallbackErr) {
		return nil, fallbackErr
	}
	return nil, fmt.Errorf("failed to open PDF with any backend: %w", errors.Join(err, fallbackErr))
}

// OpenerFor returns the Opener for the named backend. The empty backend
// selects the fallback chain used by Open.
func OpenerFor(backend Backend) (Opener, error) {
	switch backend {
	case "":
		return Open, nil
	case BackendLedongthuc:
		return OpenWithLedongthuc, nil
	case BackendDslipak:
		return OpenWithDslipak, nil
	default:
		return nil, fmt.Errorf("unknown PDF backend %q", backend)
	}
}

func isDecryptionError(err error) bool {
	return errors.Is(err, ErrInvalidPassword) || errors.Is(err, ErrUnsupportedEncryption)
}

// classifyOpenError maps a backend's open failure onto the package errors.
// Both backends descend from rsc.io/pdf and report unsupported security
// handlers only through the message text.
func classifyOpenError(err, invalidPassword error) error {
	switch {
	case errors.Is(err, invalidPassword):
		return fmt.Errorf("%w: %v", ErrInvalidPassword, err)
	case strings.Contains(err.Error(), "encryption"):
		return fmt.Errorf("%w: %v", ErrUnsupportedEncryption, err)
	default:
		return err
	}
}

// passwordFunc feeds the password to the backend exactly once. Returning
// the empty string afterwards stops the backend from retrying.
func passwordFunc(password string) func() string {
	if password == "" {
		return nil
	}
	used := false
	return func() string {
		if used {
			return ""
		}
		used = true
		return password
	}
}

// recoverError converts a backend panic into an error. The rsc.io/pdf
// family panics on malformed content streams.
func recoverError(err *error, what string) {
	if r := recover(); r != nil {
		*err = fmt.Errorf("failed to %s: %v", what, r)
	}
}
