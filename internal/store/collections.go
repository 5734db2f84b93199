// Package store persists items and categories as two JSON-encoded
// collections in a single SQLite key/value table. Every operation reads the
// full collection, applies its mutation and writes the full collection back;
// there is exactly one writer, so no finer-grained locking is needed.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"stash/internal/model"
)

// Collection keys in the collections table.
const (
	itemsKey      = "inventory_items"
	categoriesKey = "inventory_categories"
)

// Sentinel errors returned by get and update operations. Deletes are
// idempotent and never return them.
var (
	ErrItemNotFound     = errors.New("item not found")
	ErrCategoryNotFound = errors.New("category not found")
)

// dbtx is the subset of *sql.DB and *sql.Tx the collection helpers use.
type dbtx interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// newID returns a time-ordered unique id. V7 UUIDs combine a millisecond
// timestamp with random bits, so ids stay unique across restarts without a
// collision check.
func newID() string {
	return uuid.Must(uuid.NewV7()).String()
}

// loadRaw reads the raw blob stored under key. A missing row yields nil.
func loadRaw(ctx context.Context, q dbtx, key string) ([]byte, error) {
	var raw []byte
	err := q.QueryRowContext(ctx, `SELECT data FROM collections WHERE key = ?`, key).Scan(&raw)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("reading collection %s: %w", key, err)
	}
	return raw, nil
}

// saveRaw writes the blob stored under key, replacing any previous value.
func saveRaw(ctx context.Context, q dbtx, key string, raw []byte) error {
	_, err := q.ExecContext(ctx,
		`INSERT INTO collections (key, data) VALUES (?, ?)
		 ON CONFLICT (key) DO UPDATE SET data = excluded.data`,
		key, raw,
	)
	if err != nil {
		return fmt.Errorf("writing collection %s: %w", key, err)
	}
	return nil
}

// loadItems decodes the item collection. An undecodable blob yields an empty
// collection rather than an error, so one bad write cannot fail every later
// read; the next successful write replaces it.
func loadItems(ctx context.Context, q dbtx) ([]model.Item, error) {
	raw, err := loadRaw(ctx, q, itemsKey)
	if err != nil || raw == nil {
		return nil, err
	}
	var items []model.Item
	if err := json.Unmarshal(raw, &items); err != nil {
		slog.Warn("discarding undecodable collection", "key", itemsKey, "error", err)
		return nil, nil
	}
	return items, nil
}

func saveItems(ctx context.Context, q dbtx, items []model.Item) error {
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encoding items: %w", err)
	}
	return saveRaw(ctx, q, itemsKey, raw)
}

// loadCategories decodes the category collection, with the same recovery
// behavior as loadItems.
func loadCategories(ctx context.Context, q dbtx) ([]model.Category, error) {
	raw, err := loadRaw(ctx, q, categoriesKey)
	if err != nil || raw == nil {
		return nil, err
	}
	var categories []model.Category
	if err := json.Unmarshal(raw, &categories); err != nil {
		slog.Warn("discarding undecodable collection", "key", categoriesKey, "error", err)
		return nil, nil
	}
	return categories, nil
}

func saveCategories(ctx context.Context, q dbtx, categories []model.Category) error {
	raw, err := json.Marshal(categories)
	if err != nil {
		return fmt.Errorf("encoding categories: %w", err)
	}
	return saveRaw(ctx, q, categoriesKey, raw)
}
