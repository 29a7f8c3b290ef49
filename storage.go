package transact

import (
	"bytes"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"
)

// Storage loads and saves a whole Store.
type Storage interface {
	// Load returns the persisted store. It fails with an error wrapping
	// ErrNotFound if nothing was persisted yet, and with a *DataLoadingError
	// if the persisted data is invalid.
	Load() (*Store, error)
	// Save persists s, replacing any previously persisted store.
	Save(s *Store) error
}

// FileStorage persists a Store as a single JSON file.
type FileStorage struct {
	Path string
}

// NewFileStorage returns a FileStorage for the file at path.
func NewFileStorage(path string) *FileStorage { return &FileStorage{Path: path} }

// Load reads and decodes the file.
func (f *FileStorage) Load() (*Store, error) {
	data, err := os.ReadFile(f.Path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, &DataLoadingError{Path: f.Path, Err: fmt.Errorf("%w: %w", ErrNotFound, err)}
	}
	if err != nil {
		return nil, &DataLoadingError{Path: f.Path, Err: err}
	}
	s, err := DecodeStore(bytes.NewReader(data))
	if err != nil {
		var dle *DataLoadingError
		if errors.As(err, &dle) {
			err = dle.Err
		}
		return nil, &DataLoadingError{Path: f.Path, Err: err}
	}
	slog.Debug("load-store", "path", f.Path, "persons", s.persons.Len(), "transactions", s.transactions.Len())
	return s, nil
}

// Save encodes s into the file. The file is replaced atomically: a reader
// never sees a partially written file.
func (f *FileStorage) Save(s *Store) error {
	var buf bytes.Buffer
	if err := EncodeStore(&buf, s); err != nil {
		return err
	}

	dir := filepath.Dir(f.Path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("could not create directory for %q: %w", f.Path, err)
	}
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(f.Path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("could not create temporary file for %q: %w", f.Path, err)
	}
	tmpName := tmp.Name()
	defer os.Remove(tmpName) // no-op once renamed

	if _, err := tmp.Write(buf.Bytes()); err != nil {
		tmp.Close()
		return fmt.Errorf("could not write %q: %w", tmpName, err)
	}
	if err := tmp.Chmod(0644); err != nil {
		tmp.Close()
		return fmt.Errorf("could not chmod %q: %w", tmpName, err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("could not close %q: %w", tmpName, err)
	}
	if err := os.Rename(tmpName, f.Path); err != nil {
		return fmt.Errorf("could not replace %q: %w", f.Path, err)
	}
	slog.Debug("save-store", "path", f.Path, "persons", s.persons.Len(), "transactions", s.transactions.Len())
	return nil
}

// MemoryStorage keeps the encoded Store in memory. Its zero value has nothing
// persisted.
type MemoryStorage struct {
	data []byte
}

func (m *MemoryStorage) Load() (*Store, error) {
	if m.data == nil {
		return nil, &DataLoadingError{Err: fmt.Errorf("%w: %w", ErrNotFound, fs.ErrNotExist)}
	}
	return DecodeStore(bytes.NewReader(m.data))
}

func (m *MemoryStorage) Save(s *Store) error {
	var buf bytes.Buffer
	if err := EncodeStore(&buf, s); err != nil {
		return err
	}
	m.data = buf.Bytes()
	return nil
}
