package extraction

import (
	"errors"
	"fmt"
)

// ErrorCode classifies extraction failures
type ErrorCode string

const (
	// CodeUnsupportedFormat means the path does not name a PDF document
	CodeUnsupportedFormat ErrorCode = "UNSUPPORTED_FORMAT"
	// CodeNotFound means the path does not reference an existing file
	CodeNotFound ErrorCode = "NOT_FOUND"
	// CodeDecryptionFailed means the document is encrypted and could not be
	// opened with the given password
	CodeDecryptionFailed ErrorCode = "DECRYPTION_FAILED"
	// CodeParsingFailed means a page had no recoverable text; retrying the
	// document with the OCR strategy is the usual remedy
	CodeParsingFailed ErrorCode = "PARSING_FAILED"
)

// Sentinels for errors.Is. Matching is by code only.
var (
	ErrUnsupportedFormat = &Error{Code: CodeUnsupportedFormat, Message: "file is not a PDF document"}
	ErrNotFound          = &Error{Code: CodeNotFound, Message: "file not found"}
	ErrDecryptionFailed  = &Error{Code: CodeDecryptionFailed, Message: "failed to decrypt document"}
	ErrParsingFailed     = &Error{Code: CodeParsingFailed, Message: "failed to parse page"}
)

// ErrClosed is returned by Next after Close
var ErrClosed = errors.New("extraction: extractor is closed")

// Error is an extraction failure with a code from the taxonomy above
type Error struct {
	Code    ErrorCode
	Path    string
	Page    int // 0 for document level errors
	Message string
	Err     error
}

// Error implements the error interface.
func (e *Error) Error() string {
	msg := fmt.Sprintf("%s: %s", e.Code, e.Message)
	if e.Path != "" {
		msg = fmt.Sprintf("%s [%s]", msg, e.Path)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s (%v)", msg, e.Err)
	}
	return msg
}

// Unwrap returns the underlying error.
func (e *Error) Unwrap() error {
	return e.Err
}

// Is reports whether target is an *Error with the same code
func (e *Error) Is(target error) bool {
	t, ok := target.(*Error)
	return ok && t.Code == e.Code
}

// CodeOf returns the code of the first *Error in err's chain
func CodeOf(err error) (ErrorCode, bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Code, true
	}
	return "", false
}

func newError(code ErrorCode, path, message string, err error) *Error {
	return &Error{
		Code:    code,
		Path:    path,
		Message: message,
		Err:     err,
	}
}

func newPageError(code ErrorCode, path string, page int, message string, err error) *Error {
	e := newError(code, path, message, err)
	e.Page = page
	return e
}
