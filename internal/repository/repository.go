// Package repository is the persistence layer for everything the app owns
// locally: vehicles, maintenance items, faults, documents, expenses and the
// registration record. Records are stored as JSON blobs in a key/value
// store, one key per collection.
//
// The error policy follows the device storage it models: reads degrade to
// the collection's zero value, writes are logged and swallowed. The store
// is never allowed to crash the app over a persistence hiccup.
package repository

import (
	"context"
	"encoding/json"
	"reflect"
	"time"

	"github.com/google/uuid"

	"auto-pana/garaje/internal/catalog"
	"auto-pana/garaje/internal/kvstore"
	"auto-pana/garaje/internal/logging"
)

// Repository wraps a kv store with the app's collections.
type Repository struct {
	store kvstore.Store
	cat   *catalog.Catalog

	// Overridable in tests.
	now   func() time.Time
	newID func() string
}

// New creates a repository over the given store and reference catalog.
func New(store kvstore.Store, cat *catalog.Catalog) *Repository {
	return &Repository{
		store: store,
		cat:   cat,
		now:   time.Now,
		newID: uuid.NewString,
	}
}

// getJSON loads and decodes one collection. Returns false when the key is
// absent, unreadable or holds malformed JSON; the caller falls back to its
// zero value.
func (r *Repository) getJSON(ctx context.Context, key string, dst any) bool {
	raw, ok, err := r.store.Get(ctx, key)
	if err != nil {
		logging.Error("failed to read collection", "key", key, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := json.Unmarshal([]byte(raw), dst); err != nil {
		logging.Warn("malformed data in collection", "key", key, "error", err)
		// Unmarshal may have filled part of dst before failing; the
		// caller must see the zero value, not a truncated collection.
		elem := reflect.ValueOf(dst).Elem()
		elem.Set(reflect.Zero(elem.Type()))
		return false
	}
	return true
}

// setJSON encodes and stores one collection, swallowing write failures.
func (r *Repository) setJSON(ctx context.Context, key string, v any) {
	raw, err := json.Marshal(v)
	if err != nil {
		logging.Error("failed to encode collection", "key", key, "error", err)
		return
	}
	if err := r.store.Set(ctx, key, string(raw)); err != nil {
		logging.Error("failed to write collection", "key", key, "error", err)
	}
}

// parseStoredDate reads the date strings the app has historically
// written: plain calendar dates and full ISO timestamps.
func parseStoredDate(s string) (time.Time, error) {
	t, err := time.Parse("2006-01-02", s)
	if err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

// remove deletes one key, swallowing failures.
func (r *Repository) remove(ctx context.Context, key string) {
	if err := r.store.Remove(ctx, key); err != nil {
		logging.Error("failed to remove key", "key", key, "error", err)
	}
}
