// Package docx reads the body part of a Word document container.
package docx

import (
	"archive/zip"
	"errors"
	"fmt"
	"io"

	"golang.org/x/text/encoding"
	"golang.org/x/text/transform"
)

// DocumentEntry is the archive entry holding the main document body.
const DocumentEntry = "word/document.xml"

// Sentinel errors returned (wrapped) by ReadDocumentXML. ErrEntryMissing is
// an expected condition for non-Word zip files; the rest are failures.
var (
	ErrOpenArchive  = errors.New("open archive")
	ErrEntryMissing = errors.New("document entry missing")
	ErrReadEntry    = errors.New("read document entry")
	ErrDecode       = errors.New("decode document entry")
)

// ReadDocumentXML opens the archive at path and returns the DocumentEntry
// content decoded as UTF-8. The archive is closed before returning.
func ReadDocumentXML(path string) (string, error) {
	r, err := zip.OpenReader(path)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrOpenArchive, path, err)
	}
	defer r.Close()

	f := findEntry(&r.Reader, DocumentEntry)
	if f == nil {
		return "", fmt.Errorf("%w: %s not found in %s", ErrEntryMissing, DocumentEntry, path)
	}

	raw, err := readEntry(f)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrReadEntry, DocumentEntry, err)
	}
	text, err := decodeUTF8(raw)
	if err != nil {
		return "", fmt.Errorf("%w %s: %w", ErrDecode, DocumentEntry, err)
	}
	return text, nil
}

// findEntry returns the entry with exactly the given name, or nil.
func findEntry(r *zip.Reader, name string) *zip.File {
	for _, f := range r.File {
		if f.Name == name {
			return f
		}
	}
	return nil
}

func readEntry(f *zip.File) ([]byte, error) {
	rc, err := f.Open()
	if err != nil {
		return nil, err
	}
	defer rc.Close()
	return io.ReadAll(rc)
}

// decodeUTF8 fails on the first invalid UTF-8 sequence instead of
// substituting U+FFFD. A byte order mark is kept as U+FEFF.
func decodeUTF8(b []byte) (string, error) {
	out, _, err := transform.Bytes(encoding.UTF8Validator, b)
	if err != nil {
		return "", err
	}
	return string(out), nil
}
