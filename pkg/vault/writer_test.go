package vault

import (
	"os"
	"path/filepath"
	"testing"
)

func TestWriteNote(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "net")
	w := NewWriter(dir, false)
	if err := w.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}

	path, err := w.WriteNote("press", []byte("# press\n"))
	if err != nil {
		t.Fatalf("WriteNote failed: %v", err)
	}
	if want := filepath.Join(dir, "press.md"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}

	body, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read note back: %v", err)
	}
	if string(body) != "# press\n" {
		t.Errorf("unexpected note body %q", body)
	}
}

func TestWriteNoteSanitizesName(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, false)

	path, err := w.WriteNote(`press/line?4`, []byte("x"))
	if err != nil {
		t.Fatalf("WriteNote failed: %v", err)
	}
	if want := filepath.Join(dir, "press_line_4.md"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestWriteNoteEmptyNameFallsBack(t *testing.T) {
	dir := t.TempDir()
	w := NewWriter(dir, false)

	path, err := w.WriteNote("", []byte("x"))
	if err != nil {
		t.Fatalf("WriteNote failed: %v", err)
	}
	if want := filepath.Join(dir, fallbackName+".md"); path != want {
		t.Errorf("path = %q, want %q", path, want)
	}
}

func TestDryRunWritesNothing(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "net")
	w := NewWriter(dir, true)

	if err := w.EnsureDir(); err != nil {
		t.Fatalf("EnsureDir failed: %v", err)
	}
	path, err := w.WriteNote("press", []byte("# press\n"))
	if err != nil {
		t.Fatalf("WriteNote failed: %v", err)
	}
	if path == "" {
		t.Fatal("dry run should still resolve the note path")
	}
	if _, err := os.Stat(dir); !os.IsNotExist(err) {
		t.Errorf("dry run created the vault dir: %v", err)
	}
}
