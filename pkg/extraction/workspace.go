package extraction

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// workspace is a scoped temporary directory for rendered page images. The
// directory is created on first use and removed recursively on release;
// release is a no-op when it was never created or already removed.
type workspace struct {
	root     string
	dir      string
	released bool
	logger   *zap.Logger
}

func newWorkspace(root string, logger *zap.Logger) *workspace {
	if root == "" {
		root = os.TempDir()
	}
	return &workspace{root: root, logger: logger}
}

// create makes the directory and returns its path
func (w *workspace) create() (string, error) {
	if w.released {
		return "", fmt.Errorf("workspace already released")
	}
	if w.dir != "" {
		return w.dir, nil
	}
	dir := filepath.Join(w.root, "scrapdf-"+uuid.NewString())
	if err := os.MkdirAll(dir, 0o700); err != nil {
		return "", fmt.Errorf("failed to create workspace: %w", err)
	}
	w.dir = dir
	w.logger.Debug("workspace created", zap.String("dir", dir))
	return dir, nil
}

// release removes the directory and everything in it
func (w *workspace) release() error {
	if w.released {
		return nil
	}
	w.released = true
	if w.dir == "" {
		return nil
	}
	if err := os.RemoveAll(w.dir); err != nil {
		return fmt.Errorf("failed to remove workspace: %w", err)
	}
	w.logger.Debug("workspace removed", zap.String("dir", w.dir))
	return nil
}
