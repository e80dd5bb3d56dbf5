package pdf

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/pdfcpu/pdfcpu/pkg/api"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu"
	"github.com/pdfcpu/pdfcpu/pkg/pdfcpu/model"
)

// decrypt rewrites an encrypted document without its security handler.
// The text backends check passwords but cannot inflate encrypted streams.
func decrypt(r io.ReaderAt, size int64, password string) (*bytes.Reader, error) {
	conf := model.NewDefaultConfiguration()
	conf.ValidationMode = model.ValidationRelaxed
	conf.UserPW = password
	conf.OwnerPW = password

	var buf bytes.Buffer
	if err := api.Decrypt(io.NewSectionReader(r, 0, size), &buf, conf); err != nil {
		if errors.Is(err, pdfcpu.ErrWrongPassword) {
			return nil, fmt.Errorf("%w: %v", ErrInvalidPassword, err)
		}
		return nil, fmt.Errorf("failed to decrypt PDF: %w", err)
	}
	return bytes.NewReader(buf.Bytes()), nil
}
