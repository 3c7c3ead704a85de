// Package sidecar writes extracted text next to its source document.
package sidecar

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
)

// Suffix is appended to the full input file name, extension included:
// report.docx becomes report.docx.txt.
const Suffix = ".txt"

// PathFor returns the sidecar path for input inside dir.
func PathFor(dir, input string) string {
	return filepath.Join(dir, filepath.Base(input)+Suffix)
}

// Writer replaces sidecar files atomically. Readers see either the previous
// file or the complete new one, never a partial write.
type Writer struct {
	// StrictPerms, when true, writes files with 0600 instead of 0644.
	StrictPerms bool
}

func (w *Writer) mode() os.FileMode {
	if w != nil && w.StrictPerms {
		return 0o600
	}
	return 0o644
}

// Write stores text at path as UTF-8, overwriting any existing file. The data
// goes to a temporary file in the same directory which is then renamed over
// path; on failure the temporary file is removed.
func (w *Writer) Write(path string, text string) (err error) {
	if path == "" {
		return errors.New("sidecar: empty path")
	}
	dir := filepath.Dir(path)
	f, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp: %w", err)
	}
	tmp := f.Name()
	defer func() {
		if err != nil {
			_ = os.Remove(tmp)
		}
	}()

	if _, err = f.WriteString(text); err != nil {
		f.Close()
		return fmt.Errorf("write temp: %w", err)
	}
	if err = f.Chmod(w.mode()); err != nil {
		f.Close()
		return fmt.Errorf("chmod temp: %w", err)
	}
	if err = f.Close(); err != nil {
		return fmt.Errorf("close temp: %w", err)
	}
	if err = os.Rename(tmp, path); err != nil {
		return fmt.Errorf("rename: %w", err)
	}
	return nil
}
