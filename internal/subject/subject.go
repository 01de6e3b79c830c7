// Package subject loads the text a compiled pattern is run against.
//
// Files are memory-mapped via [mmapfile] when the platform allows it, falling
// back to a plain [os.File] read otherwise. Subjects are read-only and are not
// expected to change while they are open.
package subject

import (
	"io"
	"os"

	"go.dw1.io/mmapfile"
)

var _ io.Closer = (*File)(nil)

// File is a subject file backed by either a memory map (preferred) or an
// os.File.
type File struct {
	mm *mmapfile.MmapFile
	os *os.File
}

// Open maps name into memory when supported; otherwise it falls back to
// os.Open. Empty files cannot be mapped and always use the fallback.
func Open(name string) (*File, error) {
	if mf, err := mmapfile.Open(name); err == nil {
		return &File{mm: mf}, nil
	}

	f, err := os.Open(name)
	if err != nil {
		return nil, err
	}

	return &File{os: f}, nil
}

// Load returns the whole contents of name as a string.
func Load(name string) (string, error) {
	f, err := Open(name)
	if err != nil {
		return "", err
	}
	defer f.Close()

	return f.Text()
}

// Text copies the subject into a string. The copy outlives Close.
func (f *File) Text() (string, error) {
	if f.mm != nil {
		return string(f.mm.Bytes()), nil
	}

	if _, err := f.os.Seek(0, io.SeekStart); err != nil {
		return "", err
	}

	data, err := io.ReadAll(f.os)
	if err != nil {
		return "", err
	}

	return string(data), nil
}

// Mapped reports whether the subject is memory-mapped.
func (f *File) Mapped() bool { return f.mm != nil }

// Len returns the mapped length, or the file size for the os.File fallback.
func (f *File) Len() int {
	if f.mm != nil {
		return f.mm.Len()
	}

	info, err := f.os.Stat()
	if err != nil {
		return 0
	}

	return int(info.Size())
}

// Name returns the original file name.
func (f *File) Name() string {
	if f.mm != nil {
		return f.mm.Name()
	}

	return f.os.Name()
}

// Close releases the mapping or the file descriptor.
func (f *File) Close() error {
	if f.mm != nil {
		return f.mm.Close()
	}

	return f.os.Close()
}
