// Copyright © 2025 Steve Taranto staranto@gmail.com
// SPDX-License-Identifier: MIT

package cachergo

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	"github.com/apex/log"

	"github.com/staranto/cachergo/codec"
	"github.com/staranto/cachergo/internal/fingerprint"
	"github.com/staranto/cachergo/internal/scan"
)

// DefaultTimeLimit is how long an entry stays live when a Call carries
// no explicit limit.
const DefaultTimeLimit = 14 * 24 * time.Hour

// storeRetries bounds the timestamp-bump loop in Store when another
// writer keeps minting the same identifier.
const storeRetries = 8

// Cache is an entry store rooted at a single flat directory. The
// directory is an explicit configuration value, never discovered from
// the environment here; resolve it however the caller likes first.
type Cache struct {
	dir   string
	codec codec.Codec
	limit time.Duration
}

// Option configures a Cache at construction.
type Option func(*Cache)

// WithCodec swaps the serializer. The codec decides both the payload
// encoding and the filename suffix.
func WithCodec(c codec.Codec) Option {
	return func(ca *Cache) { ca.codec = c }
}

// WithTimeLimit changes the default time limit applied when a Call's
// Limit is zero.
func WithTimeLimit(d time.Duration) Option {
	return func(ca *Cache) { ca.limit = d }
}

// New opens (creating if needed) a cache rooted at dir. Creation is
// idempotent; an existing directory is reused as is.
func New(dir string, opts ...Option) (*Cache, error) {
	c := &Cache{
		dir:   dir,
		codec: codec.JSON{},
		limit: DefaultTimeLimit,
	}
	for _, opt := range opts {
		opt(c)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil { //nolint:mnd
		return nil, fmt.Errorf("failed to create cache directory: %w", err)
	}

	return c, nil
}

// Dir returns the directory the cache is rooted at.
func (c *Cache) Dir() string { return c.dir }

// Call identifies one computation: its positional arguments, named
// arguments, and an optional Name that partitions the cache directory.
// Operations using a Name never see or prune entries stored under a
// different one. Limit overrides the cache default when non-zero.
type Call struct {
	Args   []any
	Kwargs map[string]any
	Name   string
	Limit  time.Duration
}

func (c *Cache) limitFor(call Call) time.Duration {
	if call.Limit > 0 {
		return call.Limit
	}
	return c.limit
}

// Lookup finds the newest live entry for call and decodes it into a T.
// A call whose arguments cannot be fingerprinted is a plain miss, not an
// error; the caller just recomputes. A payload that no longer decodes is
// deleted and also reported as a miss. Filesystem failures other than
// "already gone" are returned.
func Lookup[T any](c *Cache, call Call) (T, bool, error) {
	var zero T

	fp, err := fingerprint.Derive(c.codec, call.Args, call.Kwargs)
	if err != nil {
		log.Debugf("cache lookup skipped: %v", err)
		return zero, false, nil
	}

	ent, found, err := scan.Newest(
		c.dir, call.Name, fp, c.codec.Ext(), time.Now(), c.limitFor(call))
	if err != nil {
		return zero, false, err
	}
	if !found {
		log.Debugf("cache miss for %s", fp)
		return zero, false, nil
	}

	data, ok, err := readEntry(ent.Path)
	if err != nil {
		return zero, false, err
	}
	if !ok {
		return zero, false, nil
	}

	var value T
	if err := c.codec.Unmarshal(data, &value); err != nil {
		// The entry is presumed corrupt. Drop it and fall through to a
		// miss so the caller recomputes.
		log.Warnf("removing undecodable cache entry %s: %v", ent.Name, err)
		if rmErr := os.Remove(ent.Path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			return zero, false, fmt.Errorf("failed to remove cache entry: %w", rmErr)
		}
		return zero, false, nil
	}

	log.Debugf("cache hit: %s", ent.Name)
	return value, true, nil
}

// Store persists value under a fresh identifier for call. It never
// touches pre-existing entries for the same key; those age out on the
// next scan. Arguments that cannot be fingerprinted, or a value that
// cannot be encoded, fail the store with nothing persisted.
func Store[T any](c *Cache, value T, call Call) error {
	fp, err := fingerprint.Derive(c.codec, call.Args, call.Kwargs)
	if err != nil {
		return err
	}

	data, err := c.codec.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode cache payload: %w", err)
	}

	if err := os.MkdirAll(c.dir, 0o755); err != nil { //nolint:mnd
		return fmt.Errorf("failed to create cache directory: %w", err)
	}

	// Mint a unique identifier. O_EXCL guards against a second store of
	// the same key in the same second; bumping the embedded timestamp
	// keeps the name inside the grammar instead of silently overwriting.
	ts := time.Now()
	for attempt := 0; attempt < storeRetries; attempt++ {
		name := scan.Filename(call.Name, fp, ts, c.codec.Ext())
		path := filepath.Join(c.dir, name)

		f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o600) //nolint:mnd
		if errors.Is(err, fs.ErrExist) {
			ts = ts.Add(time.Second)
			continue
		}
		if err != nil {
			return fmt.Errorf("failed to create cache entry: %w", err)
		}

		if _, err := f.Write(data); err != nil {
			f.Close()
			discard(path)
			return fmt.Errorf("failed to write cache entry: %w", err)
		}
		if err := f.Close(); err != nil {
			discard(path)
			return fmt.Errorf("failed to write cache entry: %w", err)
		}

		log.Debugf("cached %s", name)
		return nil
	}

	return fmt.Errorf("failed to mint a unique cache entry name for %s", fp)
}

// readEntry loads an entry payload. A file that vanished between the
// scan's listing and this read lost a race with a concurrent prune,
// which is the same as never found.
func readEntry(path string) ([]byte, bool, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache entry: %w", err)
	}
	return data, true, nil
}

// discard best-effort removes a partially written entry so the next
// reader never has to decode-and-delete it.
func discard(path string) {
	if err := os.Remove(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Warnf("failed to remove partial cache entry %s: %v", path, err)
	}
}

// Memoize returns the cached result for call when one is live, and
// otherwise invokes fn, stores its result under call, and returns it.
// fn errors propagate untouched and nothing is stored. If the result
// computes but fails to persist, the result is returned together with
// the store error; the value is still good even though the next caller
// will recompute.
func Memoize[T any](c *Cache, call Call, fn func() (T, error)) (T, error) {
	var zero T

	if value, ok, err := Lookup[T](c, call); err != nil {
		return zero, err
	} else if ok {
		return value, nil
	}

	value, err := fn()
	if err != nil {
		return zero, err
	}

	if err := Store(c, value, call); err != nil {
		log.Warnf("failed to write result to cache: %v", err)
		return value, err
	}

	return value, nil
}
