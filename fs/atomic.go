package fs

import (
	"os"
	"path/filepath"
)

// AtomicFile writes to a temporary sibling of the target path.
// Commit replaces the target with the written content; Abort discards it.
// Readers of the target never observe a partially written file.
type AtomicFile struct {
	path string
	tmp  *os.File
}

// CreateAtomic opens a temporary file next to path for writing.
func CreateAtomic(path string) (*AtomicFile, error) {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, err
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*.tmp")
	if err != nil {
		return nil, err
	}
	return &AtomicFile{path: path, tmp: tmp}, nil
}

// Write writes to the temporary file.
func (a *AtomicFile) Write(p []byte) (int, error) {
	return a.tmp.Write(p)
}

// Commit flushes the temporary file and renames it over the target.
func (a *AtomicFile) Commit() error {
	if err := a.tmp.Sync(); err != nil {
		_ = a.Abort()
		return err
	}
	if err := a.tmp.Close(); err != nil {
		_ = os.Remove(a.tmp.Name())
		return err
	}
	if err := os.Chmod(a.tmp.Name(), 0644); err != nil {
		_ = os.Remove(a.tmp.Name())
		return err
	}
	return os.Rename(a.tmp.Name(), a.path)
}

// Abort removes the temporary file, leaving the target untouched.
func (a *AtomicFile) Abort() error {
	_ = a.tmp.Close()
	return os.Remove(a.tmp.Name())
}
