package repository

import (
	"context"
	"fmt"
	"sync"

	"recurring_dashboard/internal/usecase/interfaces"

	"github.com/go-playground/validator/v10"
)

var (
	ErrStoreUnavailable = interfaces.ErrStoreUnavailable
	ErrStoreEmpty       = interfaces.ErrStoreEmpty
)

// record is a stored entity. Clone must not share slices, maps or pointers
// with the receiver.
type record[T any] interface {
	GetID() string
	Clone() T
}

// collectionSource is the durable side of a collection.
type collectionSource[T record[T]] interface {
	Read(ctx context.Context) ([]T, error)
	WriteAll(ctx context.Context, items []T) error
	WriteOne(ctx context.Context, items []T, index int) error
}

// collection memoizes the first successful read of a source and serves
// every lookup from that snapshot. Mutations are written back before the
// snapshot is changed, so a failed write leaves memory untouched.
type collection[T record[T]] struct {
	mu       sync.RWMutex
	source   collectionSource[T]
	validate *validator.Validate
	loaded   bool
	items    []T
}

func newCollection[T record[T]](source collectionSource[T]) *collection[T] {
	return &collection[T]{source: source, validate: validator.New()}
}

func (c *collection[T]) loadAll(ctx context.Context) ([]T, error) {
	c.mu.RLock()
	if c.loaded {
		out := cloneItems(c.items)
		c.mu.RUnlock()
		return out, nil
	}
	c.mu.RUnlock()

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(ctx); err != nil {
		return nil, err
	}
	return cloneItems(c.items), nil
}

// ensureLoaded must be called with the write lock held.
func (c *collection[T]) ensureLoaded(ctx context.Context) error {
	if c.loaded {
		return nil
	}
	items, err := c.source.Read(ctx)
	if err != nil {
		return err
	}
	for i := range items {
		if err := c.validate.Struct(items[i]); err != nil {
			return fmt.Errorf("%w: record %d: %v", ErrStoreUnavailable, i, err)
		}
	}
	c.items = items
	c.loaded = true
	return nil
}

func (c *collection[T]) findByID(ctx context.Context, id string) (T, error) {
	items, err := c.loadAll(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	for _, it := range items {
		if it.GetID() == id {
			return it, nil
		}
	}
	var zero T
	return zero, nil
}

// update applies patch to the record with the given id. It returns the zero
// value when the id is unknown.
func (c *collection[T]) update(ctx context.Context, id string, patch func(*T)) (T, error) {
	var zero T

	c.mu.Lock()
	defer c.mu.Unlock()
	if err := c.ensureLoaded(ctx); err != nil {
		return zero, err
	}

	idx := -1
	for i := range c.items {
		if c.items[i].GetID() == id {
			idx = i
			break
		}
	}
	if idx < 0 {
		return zero, nil
	}

	next := cloneItems(c.items)
	patch(&next[idx])
	if err := c.source.WriteOne(ctx, next, idx); err != nil {
		return zero, err
	}
	c.items = next
	return next[idx], nil
}

func (c *collection[T]) replaceAll(ctx context.Context, items []T) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	next := cloneItems(items)
	if err := c.source.WriteAll(ctx, next); err != nil {
		return err
	}
	c.items = next
	c.loaded = true
	return nil
}

func (c *collection[T]) reset() {
	c.mu.Lock()
	c.items = nil
	c.loaded = false
	c.mu.Unlock()
}

// cloneItems deep-copies items so the snapshot and its callers never share
// nested state.
func cloneItems[T record[T]](items []T) []T {
	out := make([]T, len(items))
	for i := range items {
		out[i] = items[i].Clone()
	}
	return out
}

func unavailable(op string, err error) error {
	return fmt.Errorf("%w: %s: %w", ErrStoreUnavailable, op, err)
}
