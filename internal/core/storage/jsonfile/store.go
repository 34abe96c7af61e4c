// Package jsonfile stores the asset index as a single JSON file.
package jsonfile

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/cespare/xxhash/v2"
	"github.com/zeusync/assetkit/internal/core/storage/index"
	"github.com/zeusync/assetkit/internal/core/storage/interfaces"
)

var _ interfaces.IndexStore = (*Store)(nil)

// Store reads and writes one fixed path. Writes go through a temporary file
// in the same directory followed by a rename, and are skipped only when the
// encoded bytes match both the last digest and the file currently on disk.
type Store struct {
	path   string
	indent bool

	digest uint64
	known  bool
}

type Option func(*Store)

// WithIndent pretty-prints the written document.
func WithIndent(indent bool) Option {
	return func(s *Store) { s.indent = indent }
}

func New(path string, opts ...Option) *Store {
	s := &Store{path: filepath.Clean(path)}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *Store) Location() string { return s.path }

// Digest returns the xxhash of the last bytes read or written, and whether
// any I/O has happened yet.
func (s *Store) Digest() (uint64, bool) { return s.digest, s.known }

func (s *Store) Load(ctx context.Context) (index.Document, error) {
	if err := ctx.Err(); err != nil {
		return index.Document{}, err
	}
	data, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return index.Document{}, fmt.Errorf("%w: %s", interfaces.ErrIndexNotFound, s.path)
		}
		return index.Document{}, fmt.Errorf("read asset index %s: %w", s.path, err)
	}

	doc, err := index.Unmarshal(data)
	if err != nil {
		return doc, fmt.Errorf("parse asset index %s: %w", s.path, err)
	}
	s.digest, s.known = xxhash.Sum64(data), true
	return doc, nil
}

func (s *Store) Save(ctx context.Context, doc index.Document) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	data, err := index.Marshal(doc, s.indent)
	if err != nil {
		return fmt.Errorf("encode asset index: %w", err)
	}

	sum := xxhash.Sum64(data)
	if s.known && sum == s.digest && s.onDisk() == sum {
		return nil
	}

	dir := filepath.Dir(s.path)
	if err = os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create index dir %s: %w", dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp index: %w", err)
	}
	defer os.Remove(tmp.Name())

	if _, err = tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp index: %w", err)
	}
	if err = tmp.Close(); err != nil {
		return fmt.Errorf("close temp index: %w", err)
	}
	if err = os.Rename(tmp.Name(), s.path); err != nil {
		return fmt.Errorf("replace asset index %s: %w", s.path, err)
	}

	s.digest, s.known = sum, true
	return nil
}

// onDisk hashes the current file content, or returns 0 when it cannot be read.
func (s *Store) onDisk() uint64 {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return 0
	}
	return xxhash.Sum64(data)
}
