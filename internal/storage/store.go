package storage

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sync"

	"github.com/product-showcase/catalog-api/internal/models"
)

// Store is the sole point of contact with the persisted catalog document.
//
// The two read methods deliberately differ in failure policy: Read is strict
// and surfaces corrupt or unreadable files to the caller (the raw-document
// endpoint reports those as errors), while ReadOrEmpty substitutes the empty
// dataset on any failure (the resource-scoped routes never fail a read).
// A missing file is an empty dataset in both cases.
type Store interface {
	Read() (models.ProductsData, error)
	ReadOrEmpty() models.ProductsData
	Write(data models.ProductsData) error
	Update(fn func(data *models.ProductsData) error) error
}

// FileStore keeps the whole catalog in one pretty-printed JSON file. Every
// mutation rewrites the document wholesale; there are no partial writes.
type FileStore struct {
	path string
	mu   sync.Mutex
}

// NewFileStore creates a store backed by the JSON document at path.
func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// Read loads the full document. A missing file yields the empty dataset;
// any other read or parse failure is returned to the caller.
func (s *FileStore) Read() (models.ProductsData, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.read()
}

// ReadOrEmpty loads the full document, substituting the empty dataset for
// any failure.
func (s *FileStore) ReadOrEmpty() models.ProductsData {
	s.mu.Lock()
	defer s.mu.Unlock()
	data, err := s.read()
	if err != nil {
		return emptyData()
	}
	return data
}

// Write serializes the full document with 2-space indentation and replaces
// the backing file atomically via a temp-file rename.
func (s *FileStore) Write(data models.ProductsData) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.write(data)
}

// Update runs a read-modify-write cycle as one serialized step, closing the
// lost-update race between concurrent mutations. The read is lenient, same
// as ReadOrEmpty. Nothing is written when fn returns an error.
func (s *FileStore) Update(fn func(data *models.ProductsData) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := s.read()
	if err != nil {
		data = emptyData()
	}
	if err := fn(&data); err != nil {
		return err
	}
	return s.write(data)
}

func (s *FileStore) read() (models.ProductsData, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return emptyData(), nil
		}
		return models.ProductsData{}, fmt.Errorf("failed to read products data: %w", err)
	}

	var data models.ProductsData
	if err := json.Unmarshal(raw, &data); err != nil {
		return models.ProductsData{}, fmt.Errorf("failed to parse products data: %w", err)
	}
	data.Normalize()
	return data, nil
}

func (s *FileStore) write(data models.ProductsData) error {
	data.Normalize()

	raw, err := json.MarshalIndent(data, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to write products data: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), 0o755); err != nil {
		return fmt.Errorf("failed to write products data: %w", err)
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, raw, 0o644); err != nil {
		return fmt.Errorf("failed to write products data: %w", err)
	}
	if err := os.Rename(tmp, s.path); err != nil {
		return fmt.Errorf("failed to write products data: %w", err)
	}
	return nil
}

func emptyData() models.ProductsData {
	return models.ProductsData{Categories: []models.Category{}}
}
