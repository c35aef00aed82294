// Package adapter contains the infrastructure adapters for the jsoned CLI:
// file persistence and the JSON codec.
package adapter

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	m "github.com/mouse-blink/jsoned/internal/model"
)

const defaultFileMode fs.FileMode = 0o644

// DocumentStore abstracts where documents are read from and written to, so
// the editing session can be tested without touching the disk.
type DocumentStore interface {
	// Load reads and decodes the document at path.
	Load(path m.FilePath) (*m.Value, error)

	// Save encodes doc and replaces the file at path with it.
	Save(path m.FilePath, doc *m.Value) error

	// Exists reports whether a file is present at path.
	Exists(path m.FilePath) (bool, error)
}

// LocalDocumentStore is the DocumentStore backed by the local file system.
type LocalDocumentStore struct {
	indent int
}

// NewLocalDocumentStore constructs a LocalDocumentStore that saves with the
// given indentation width.
func NewLocalDocumentStore(indent int) *LocalDocumentStore {
	return &LocalDocumentStore{indent: indent}
}

// Load reads the file at path. Decoding failures wrap ErrInvalidJSON.
func (s *LocalDocumentStore) Load(path m.FilePath) (*m.Value, error) {
	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}

	doc, err := Decode(data)
	if err != nil {
		return nil, fmt.Errorf("load %s: %w", path, err)
	}

	return doc, nil
}

// Save writes doc to a temporary file next to path and renames it into
// place, so the target is never left half written.
func (s *LocalDocumentStore) Save(path m.FilePath, doc *m.Value) error {
	data, err := Encode(doc, s.indent)
	if err != nil {
		return fmt.Errorf("save %s: %w", path, err)
	}

	data = append(data, '\n')

	return writeFileAtomic(string(path), data)
}

// Exists reports whether a file is present at path.
func (s *LocalDocumentStore) Exists(path m.FilePath) (bool, error) {
	_, err := os.Stat(string(path))
	if err == nil {
		return true, nil
	}

	if errors.Is(err, fs.ErrNotExist) {
		return false, nil
	}

	return false, fmt.Errorf("stat %s: %w", path, err)
}

func writeFileAtomic(path string, data []byte) error {
	mode := defaultFileMode
	if info, err := os.Stat(path); err == nil {
		mode = info.Mode().Perm()
	}

	dir := filepath.Dir(path)

	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".tmp-*")
	if err != nil {
		return fmt.Errorf("failed to create temp file: %w", err)
	}

	tmpName := tmp.Name()
	cleanup := func() { _ = os.Remove(tmpName) }

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()

		cleanup()

		return fmt.Errorf("failed to write %s: %w", path, err)
	}

	if err := tmp.Close(); err != nil {
		cleanup()
		return fmt.Errorf("failed to close %s: %w", tmpName, err)
	}

	if err := os.Chmod(tmpName, mode); err != nil {
		cleanup()
		return fmt.Errorf("failed to chmod %s: %w", tmpName, err)
	}

	if err := os.Rename(tmpName, path); err != nil {
		cleanup()
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}

	return nil
}
