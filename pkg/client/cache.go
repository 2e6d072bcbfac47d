package client

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/singleflight"
)

// ErrRequestFailed is returned whenever a fetch could not produce a response.
// Failed fetches are never cached.
var ErrRequestFailed = errors.New("request failed")

// State describes what the cache knows about a key.
type State int

const (
	StateEmpty State = iota
	StateOutstanding
	StateCached
)

func (s State) String() string {
	switch s {
	case StateOutstanding:
		return "outstanding"
	case StateCached:
		return "cached"
	default:
		return "empty"
	}
}

// Observer receives cache events labelled by request kind.
// *metrics.CacheMetrics satisfies it.
type Observer interface {
	Hit(kind string)
	Fetch(kind string)
	FetchFailed(kind string)
	Shared(kind string)
}

type nopObserver struct{}

func (nopObserver) Hit(string)         {}
func (nopObserver) Fetch(string)       {}
func (nopObserver) FetchFailed(string) {}
func (nopObserver) Shared(string)      {}

// FetchFunc performs the underlying request for a cache miss.
type FetchFunc func(ctx context.Context) ([]byte, error)

// Result is a response body plus whether it was served from a completed entry.
type Result struct {
	Body      []byte
	FromCache bool
}

type CacheOptions struct {
	Observer Observer
}

// RequestCache deduplicates identical requests. A key holds at most one
// outstanding fetch; concurrent callers for that key share it. Completed
// responses are kept until invalidated.
type RequestCache struct {
	store    ResponseStore
	group    singleflight.Group
	observer Observer

	mu          sync.Mutex
	outstanding map[string]struct{}
	generation  atomic.Uint64
}

func NewRequestCache(store ResponseStore, opts CacheOptions) *RequestCache {
	if store == nil {
		store = NewMemoryStore()
	}
	observer := opts.Observer
	if observer == nil {
		observer = nopObserver{}
	}
	return &RequestCache{
		store:       store,
		observer:    observer,
		outstanding: make(map[string]struct{}),
	}
}

// CacheKey builds KIND/path?params with params sorted by name.
func CacheKey(kind, path string, params url.Values) string {
	key := strings.ToUpper(kind) + "/" + strings.TrimPrefix(path, "/")
	if encoded := params.Encode(); encoded != "" {
		key += "?" + encoded
	}
	return key
}

func kindOf(key string) string {
	kind, _, _ := strings.Cut(key, "/")
	return kind
}

// Do returns the completed response for key, or runs fetch once no matter how
// many callers ask for key while it is outstanding.
func (c *RequestCache) Do(ctx context.Context, key string, fetch FetchFunc) (Result, error) {
	kind := kindOf(key)

	body, ok, err := c.store.Get(ctx, key)
	if err != nil {
		return Result{}, fmt.Errorf("read cached response: %w", err)
	}
	if ok {
		c.observer.Hit(kind)
		return Result{Body: body, FromCache: true}, nil
	}

	v, err, shared := c.group.Do(key, func() (any, error) {
		// A flight for key may have completed between the miss above and now.
		if body, ok, err := c.store.Get(ctx, key); err != nil {
			return nil, fmt.Errorf("read cached response: %w", err)
		} else if ok {
			c.observer.Hit(kind)
			return Result{Body: body, FromCache: true}, nil
		}

		c.setOutstanding(key, true)
		defer c.setOutstanding(key, false)

		gen := c.generation.Load()
		c.observer.Fetch(kind)
		body, err := fetch(ctx)
		if err != nil {
			c.observer.FetchFailed(kind)
			return nil, err
		}
		// An invalidation that landed mid-flight makes this body stale.
		if c.generation.Load() == gen {
			if err := c.store.Set(ctx, key, body); err != nil {
				return nil, fmt.Errorf("store response: %w", err)
			}
		}
		return Result{Body: body}, nil
	})
	if shared {
		c.observer.Shared(kind)
	}
	if err != nil {
		if errors.Is(err, ErrRequestFailed) {
			return Result{}, err
		}
		return Result{}, fmt.Errorf("%w: %w", ErrRequestFailed, err)
	}
	return v.(Result), nil
}

// State reports whether key is unknown, being fetched, or completed.
func (c *RequestCache) State(ctx context.Context, key string) (State, error) {
	c.mu.Lock()
	_, outstanding := c.outstanding[key]
	c.mu.Unlock()
	if outstanding {
		return StateOutstanding, nil
	}

	_, ok, err := c.store.Get(ctx, key)
	if err != nil {
		return StateEmpty, err
	}
	if ok {
		return StateCached, nil
	}
	return StateEmpty, nil
}

// Invalidate drops the completed entry for key. A fetch already outstanding
// for key keeps running and its callers still receive its body, but the body
// is not stored.
func (c *RequestCache) Invalidate(ctx context.Context, key string) error {
	c.generation.Add(1)
	return c.store.Delete(ctx, key)
}

// InvalidatePrefix drops every entry whose key starts with prefix.
func (c *RequestCache) InvalidatePrefix(ctx context.Context, prefix string) error {
	c.generation.Add(1)
	keys, err := c.store.Keys(ctx)
	if err != nil {
		return err
	}
	for _, key := range keys {
		if !strings.HasPrefix(key, prefix) {
			continue
		}
		if err := c.store.Delete(ctx, key); err != nil {
			return err
		}
	}
	return nil
}

func (c *RequestCache) InvalidateAll(ctx context.Context) error {
	c.generation.Add(1)
	return c.store.Clear(ctx)
}

func (c *RequestCache) setOutstanding(key string, on bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if on {
		c.outstanding[key] = struct{}{}
		return
	}
	delete(c.outstanding, key)
}
