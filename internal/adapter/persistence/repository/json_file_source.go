package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
)

// jsonFileSource keeps a whole collection as one JSON array on disk.
// Every write rewrites the document through a temp file and a rename.
type jsonFileSource[T record[T]] struct {
	path string
}

func newJSONFileSource[T record[T]](path string) *jsonFileSource[T] {
	return &jsonFileSource[T]{path: path}
}

func (s *jsonFileSource[T]) Read(_ context.Context) ([]T, error) {
	raw, err := os.ReadFile(s.path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %w: %s", ErrStoreUnavailable, ErrStoreEmpty, s.path)
		}
		return nil, unavailable("read "+s.path, err)
	}
	if len(bytes.TrimSpace(raw)) == 0 {
		return nil, fmt.Errorf("%w: %w: %s", ErrStoreUnavailable, ErrStoreEmpty, s.path)
	}

	var items []T
	if err := json.Unmarshal(raw, &items); err != nil {
		return nil, unavailable("decode "+s.path, err)
	}
	if items == nil {
		items = []T{}
	}
	return items, nil
}

func (s *jsonFileSource[T]) WriteAll(_ context.Context, items []T) error {
	if items == nil {
		items = []T{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return unavailable("encode "+s.path, err)
	}

	dir := filepath.Dir(s.path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return unavailable("mkdir "+dir, err)
	}
	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".*.tmp")
	if err != nil {
		return unavailable("create temp for "+s.path, err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(raw); err != nil {
		_ = tmp.Close()
		_ = os.Remove(tmpName)
		return unavailable("write "+s.path, err)
	}
	if err := tmp.Close(); err != nil {
		_ = os.Remove(tmpName)
		return unavailable("close "+s.path, err)
	}
	if err := os.Rename(tmpName, s.path); err != nil {
		_ = os.Remove(tmpName)
		return unavailable("rename "+s.path, err)
	}
	return nil
}

func (s *jsonFileSource[T]) WriteOne(ctx context.Context, items []T, _ int) error {
	return s.WriteAll(ctx, items)
}
