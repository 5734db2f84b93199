package store

import (
	"context"
	"database/sql"
	"sort"
	"time"

	"stash/internal/model"
)

// ListItems returns items matching the filter, newest first. Unset filter
// fields match everything.
func ListItems(ctx context.Context, db *sql.DB, filter model.ItemFilter) ([]model.Item, error) {
	items, err := loadItems(ctx, db)
	if err != nil {
		return nil, err
	}

	var result []model.Item
	for _, item := range items {
		if filter.Matches(item) {
			result = append(result, item)
		}
	}

	sort.SliceStable(result, func(i, j int) bool {
		return result[i].CreatedAt.After(result[j].CreatedAt)
	})
	return result, nil
}

// GetItem returns the item with the given id, or ErrItemNotFound.
func GetItem(ctx context.Context, db *sql.DB, id string) (*model.Item, error) {
	items, err := loadItems(ctx, db)
	if err != nil {
		return nil, err
	}
	for i := range items {
		if items[i].ID == id {
			return &items[i], nil
		}
	}
	return nil, ErrItemNotFound
}

// CreateItem assigns an id and creation time, defaults the currency to ILS
// when unset, and appends the item to the collection.
func CreateItem(ctx context.Context, db *sql.DB, item model.Item) (*model.Item, error) {
	items, err := loadItems(ctx, db)
	if err != nil {
		return nil, err
	}

	item.ID = newID()
	item.CreatedAt = time.Now().UTC()
	item.Currency = item.Currency.OrDefault()

	items = append(items, item)
	if err := saveItems(ctx, db, items); err != nil {
		return nil, err
	}
	return &item, nil
}

// UpdateItem merges the patch over the stored item and returns the result.
// The id is preserved; everything else, including the creation time, changes
// only if explicitly patched. Returns ErrItemNotFound for an unknown id.
func UpdateItem(ctx context.Context, db *sql.DB, id string, patch model.ItemPatch) (*model.Item, error) {
	items, err := loadItems(ctx, db)
	if err != nil {
		return nil, err
	}

	for i := range items {
		if items[i].ID != id {
			continue
		}
		patch.Apply(&items[i])
		if err := saveItems(ctx, db, items); err != nil {
			return nil, err
		}
		return &items[i], nil
	}
	return nil, ErrItemNotFound
}

// DeleteItem removes the item with the given id. Deleting an absent id is a
// no-op.
func DeleteItem(ctx context.Context, db *sql.DB, id string) error {
	items, err := loadItems(ctx, db)
	if err != nil {
		return err
	}

	kept := items[:0]
	for _, item := range items {
		if item.ID != id {
			kept = append(kept, item)
		}
	}
	if len(kept) == len(items) {
		return nil
	}
	return saveItems(ctx, db, kept)
}
