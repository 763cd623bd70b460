package vault

import (
	"fmt"
	"os"
	"path/filepath"
)

// Writer persists rendered notes into a vault directory. In dry-run
// mode it resolves paths without touching the filesystem.
type Writer struct {
	dir    string
	dryRun bool
}

// NewWriter returns a writer rooted at dir.
func NewWriter(dir string, dryRun bool) *Writer {
	return &Writer{dir: dir, dryRun: dryRun}
}

// Dir returns the vault root directory.
func (w *Writer) Dir() string {
	return w.dir
}

// EnsureDir creates the vault directory tree.
func (w *Writer) EnsureDir() error {
	if w.dryRun {
		return nil
	}
	if err := os.MkdirAll(w.dir, 0o755); err != nil {
		return fmt.Errorf("create vault dir: %w", err)
	}
	return nil
}

// WriteNote stores one note body under the sanitized display name and
// returns the note's path.
func (w *Writer) WriteNote(name string, body []byte) (string, error) {
	base := SanitizeFilename(name)
	if base == "" {
		base = fallbackName
	}
	path := filepath.Join(w.dir, base+".md")
	if w.dryRun {
		return path, nil
	}
	if err := os.WriteFile(path, body, 0o644); err != nil {
		return "", fmt.Errorf("write note %s: %w", base, err)
	}
	return path, nil
}
