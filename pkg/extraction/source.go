package extraction

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"go.uber.org/zap"

	"github.com/pyhub-apps/scrapdf-golang/pkg/pdf"
)

// source is the document state both strategies share: the validated
// inputs, the open file and parsed document, the metadata read at open
// time and the count of pages handed out so far.
type source struct {
	path     string
	password string
	logger   *zap.Logger

	file     *os.File
	doc      pdf.Document
	metadata Metadata
	numPages int

	closed bool
}

// openSource validates path and opens the document. The extension check
// runs before any file I/O.
func openSource(path string, o *options) (*source, error) {
	if !strings.EqualFold(filepath.Ext(path), ".pdf") {
		return nil, newError(CodeUnsupportedFormat, path, "file is not a PDF document", nil)
	}

	opener := o.opener
	if opener == nil {
		var err error
		if opener, err = pdf.OpenerFor(o.backend); err != nil {
			return nil, err
		}
	}

	f, err := os.Open(path)
	if err != nil {
		// ENOTDIR: a path component is a regular file
		if errors.Is(err, fs.ErrNotExist) || errors.Is(err, syscall.ENOTDIR) {
			return nil, newError(CodeNotFound, path, "file not found", err)
		}
		return nil, fmt.Errorf("failed to open file: %w", err)
	}

	fi, err := f.Stat()
	if err != nil {
		f.Close()
		return nil, fmt.Errorf("failed to stat file: %w", err)
	}
	if !fi.Mode().IsRegular() {
		f.Close()
		return nil, newError(CodeNotFound, path, "not a regular file", nil)
	}

	doc, err := opener(f, fi.Size(), o.password)
	if err != nil {
		f.Close()
		if errors.Is(err, pdf.ErrInvalidPassword) || errors.Is(err, pdf.ErrUnsupportedEncryption) {
			return nil, newError(CodeDecryptionFailed, path, "failed to decrypt document", err)
		}
		return nil, fmt.Errorf("failed to open PDF: %w", err)
	}

	s := &source{
		path:     path,
		password: o.password,
		logger:   o.logger.With(zap.String("path", path)),
		file:     f,
		doc:      doc,
		metadata: singleInfoBlock(doc.InfoBlocks()),
	}
	s.logger.Debug("document opened",
		zap.String("backend", string(doc.Backend())),
		zap.Int("page_count", doc.NumPage()),
		zap.Bool("metadata", s.metadata != nil),
	)
	return s, nil
}

// singleInfoBlock returns the info block when there is exactly one.
// Zero and several blocks both mean there is no usable metadata.
func singleInfoBlock(blocks []pdf.Info) Metadata {
	if len(blocks) != 1 {
		return nil
	}
	return cloneMetadata(Metadata(blocks[0]))
}

// advance records one more page handed to the caller and returns its number
func (s *source) advance() int {
	s.numPages++
	return s.numPages
}

// close closes the file exactly once; later calls return nil
func (s *source) close() error {
	if s.closed {
		return nil
	}
	s.closed = true
	err := s.file.Close()
	s.logger.Debug("document closed", zap.Int("pages_read", s.numPages), zap.Error(err))
	return err
}
