package finbook

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
)

// DefaultBookName is the name of the book created when none exists yet.
const DefaultBookName = "finbook"

// LoadBook opens, decodes and initializes a book from a file path.
// If the file does not exist, an empty book with a name derived from the
// path is returned, so that the first `add` creates it.
func LoadBook(path string) (*Book, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		book := NewBook()
		book.name = bookName(path)
		return book, nil
	}
	if err != nil {
		return nil, fmt.Errorf("could not open book file %q: %w", path, err)
	}
	defer f.Close()

	book, err := DecodeBook(f)
	if err != nil {
		return nil, fmt.Errorf("could not decode book file %q: %w", path, err)
	}
	book.name = bookName(path)
	return book, nil
}

// SaveBook persists the book to the given file path in canonical JSONL form.
// The write goes through a temporary file and a rename, so a failed save
// never truncates the existing book.
func SaveBook(path string, book *Book) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("could not create directory for book %q: %w", path, err)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), "."+filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("could not create temporary book file: %w", err)
	}
	defer os.Remove(tmp.Name())

	if err := EncodeBook(tmp, book); err != nil {
		tmp.Close()
		return fmt.Errorf("could not encode book %q: %w", path, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close temporary book file: %w", err)
	}
	if err := os.Rename(tmp.Name(), path); err != nil {
		return fmt.Errorf("could not replace book file %q: %w", path, err)
	}
	return nil
}

// bookName derives a book name from its file path: the base name without the
// .jsonl extension.
func bookName(path string) string {
	name := strings.TrimSuffix(filepath.Base(path), ".jsonl")
	if name == "" || name == "." {
		return DefaultBookName
	}
	return name
}
