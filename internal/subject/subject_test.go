package subject

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpenMmapPreferred(t *testing.T) {
	path := filepath.Join(t.TempDir(), "subject.txt")
	content := "2024-06-01\n1999-12-31\n"
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	f, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { f.Close() })

	if !f.Mapped() {
		t.Skip("mmap backend unavailable; running fallback")
	}
	if f.os != nil {
		t.Fatalf("expected os backend to be nil when mmap is used")
	}

	if got, err := f.Text(); err != nil || got != content {
		t.Fatalf("Text = %q, %v", got, err)
	}
	if got := f.Len(); got != len(content) {
		t.Fatalf("Len = %d, want %d", got, len(content))
	}
	if f.Name() != path {
		t.Fatalf("Name = %q", f.Name())
	}
}

func TestOpenEmptyFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.txt")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load empty: %v", err)
	}
	if got != "" {
		t.Fatalf("Load empty = %q", got)
	}
}

func TestFallbackReadsWholeFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "plain.txt")
	if err := os.WriteFile(path, []byte("abc"), 0o644); err != nil {
		t.Fatalf("seed file: %v", err)
	}

	raw, err := os.Open(path)
	if err != nil {
		t.Fatalf("open: %v", err)
	}
	f := &File{os: raw}
	t.Cleanup(func() { f.Close() })

	buf := make([]byte, 1)
	if _, err := raw.Read(buf); err != nil {
		t.Fatalf("read: %v", err)
	}
	if got, err := f.Text(); err != nil || got != "abc" {
		t.Fatalf("Text after partial read = %q, %v", got, err)
	}
	if got, err := f.Text(); err != nil || got != "abc" {
		t.Fatalf("second Text = %q, %v", got, err)
	}
	if f.Len() != 3 || f.Mapped() || f.Name() != path {
		t.Fatalf("Len = %d, Mapped = %v, Name = %q", f.Len(), f.Mapped(), f.Name())
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.txt")); !os.IsNotExist(err) {
		t.Fatalf("err = %v, want not-exist", err)
	}
}
