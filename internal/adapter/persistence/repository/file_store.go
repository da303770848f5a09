package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"
)

var ErrDuplicateID = errors.New("record id already exists")

// FileStore keeps every collection as a JSON array in its own file under dir
// (orders.json, quotes.json, ...), newest record first. Each file has its own
// lock and is rewritten through a temp file and rename.
type FileStore struct {
	dir string
}

func NewFileStore(dir string) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	return &FileStore{dir: dir}, nil
}

func (s *FileStore) path(name string) string {
	return filepath.Join(s.dir, name)
}

type jsonCollection[T any] struct {
	path string
	id   func(T) string
	mu   sync.RWMutex
}

func newJSONCollection[T any](path string, id func(T) string) *jsonCollection[T] {
	return &jsonCollection[T]{path: path, id: id}
}

// load reads the whole file. A missing or empty file is an empty collection.
func (c *jsonCollection[T]) load() ([]T, error) {
	b, err := os.ReadFile(c.path)
	if errors.Is(err, os.ErrNotExist) {
		return []T{}, nil
	}
	if err != nil {
		return nil, err
	}
	items := []T{}
	if len(b) == 0 {
		return items, nil
	}
	if err := json.Unmarshal(b, &items); err != nil {
		return nil, fmt.Errorf("decode %s: %w", filepath.Base(c.path), err)
	}
	return items, nil
}

func (c *jsonCollection[T]) store(items []T) error {
	b, err := json.MarshalIndent(items, "", "  ")
	if err != nil {
		return err
	}
	tmp, err := os.CreateTemp(filepath.Dir(c.path), filepath.Base(c.path)+".*.tmp")
	if err != nil {
		return err
	}
	if _, err := tmp.Write(b); err != nil {
		tmp.Close()
		os.Remove(tmp.Name())
		return err
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name())
		return err
	}
	return os.Rename(tmp.Name(), c.path)
}

func (c *jsonCollection[T]) all(ctx context.Context) ([]T, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.load()
}

func (c *jsonCollection[T]) get(ctx context.Context, id string) (T, bool, error) {
	var zero T
	items, err := c.all(ctx)
	if err != nil {
		return zero, false, err
	}
	for _, it := range items {
		if c.id(it) == id {
			return it, true, nil
		}
	}
	return zero, false, nil
}

func (c *jsonCollection[T]) filter(ctx context.Context, keep func(T) bool) ([]T, error) {
	items, err := c.all(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]T, 0, len(items))
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out, nil
}

// insert prepends item and fails with ErrDuplicateID when the id is taken.
func (c *jsonCollection[T]) insert(ctx context.Context, item T) error {
	return c.modify(ctx, func(items []T) ([]T, error) {
		for _, it := range items {
			if c.id(it) == c.id(item) {
				return nil, fmt.Errorf("%w: %s", ErrDuplicateID, c.id(item))
			}
		}
		return append([]T{item}, items...), nil
	})
}

// replace overwrites the record with item's id in place. It reports false and
// writes nothing when no such record exists.
func (c *jsonCollection[T]) replace(ctx context.Context, item T) (bool, error) {
	found := false
	err := c.modify(ctx, func(items []T) ([]T, error) {
		for i := range items {
			if c.id(items[i]) == c.id(item) {
				items[i] = item
				found = true
				return items, nil
			}
		}
		return nil, nil
	})
	return found, err
}

func (c *jsonCollection[T]) upsert(ctx context.Context, item T) error {
	return c.modify(ctx, func(items []T) ([]T, error) {
		for i := range items {
			if c.id(items[i]) == c.id(item) {
				items[i] = item
				return items, nil
			}
		}
		return append([]T{item}, items...), nil
	})
}

func (c *jsonCollection[T]) remove(ctx context.Context, id string) error {
	return c.modify(ctx, func(items []T) ([]T, error) {
		out := items[:0]
		removed := false
		for _, it := range items {
			if c.id(it) == id {
				removed = true
				continue
			}
			out = append(out, it)
		}
		if !removed {
			return nil, nil
		}
		return out, nil
	})
}

func (c *jsonCollection[T]) replaceAll(ctx context.Context, items []T) error {
	return c.modify(ctx, func([]T) ([]T, error) {
		if items == nil {
			return []T{}, nil
		}
		return items, nil
	})
}

// modify runs fn on the current contents under the write lock. A nil slice
// from fn means nothing changed.
func (c *jsonCollection[T]) modify(ctx context.Context, fn func([]T) ([]T, error)) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()

	items, err := c.load()
	if err != nil {
		return err
	}
	next, err := fn(items)
	if err != nil || next == nil {
		return err
	}
	return c.store(next)
}
