package store

import (
	"context"
	"database/sql"
	"fmt"
	"sort"
	"time"

	"stash/internal/model"
)

// ListCategories returns all categories, newest first.
func ListCategories(ctx context.Context, db *sql.DB) ([]model.Category, error) {
	categories, err := loadCategories(ctx, db)
	if err != nil {
		return nil, err
	}
	sort.SliceStable(categories, func(i, j int) bool {
		return categories[i].CreatedAt.After(categories[j].CreatedAt)
	})
	return categories, nil
}

// GetCategory returns the category with the given id, or ErrCategoryNotFound.
func GetCategory(ctx context.Context, db *sql.DB, id string) (*model.Category, error) {
	categories, err := loadCategories(ctx, db)
	if err != nil {
		return nil, err
	}
	for i := range categories {
		if categories[i].ID == id {
			return &categories[i], nil
		}
	}
	return nil, ErrCategoryNotFound
}

// CreateCategory assigns an id and creation time, fills in display defaults
// for color and icon, and appends the category to the collection.
func CreateCategory(ctx context.Context, db *sql.DB, cat model.Category) (*model.Category, error) {
	categories, err := loadCategories(ctx, db)
	if err != nil {
		return nil, err
	}

	cat.ID = newID()
	cat.CreatedAt = time.Now().UTC()
	if cat.Color == "" {
		cat.Color = model.DefaultCategoryColor
	}
	if cat.Icon == "" {
		cat.Icon = model.DefaultCategoryIcon
	}

	categories = append(categories, cat)
	if err := saveCategories(ctx, db, categories); err != nil {
		return nil, err
	}
	return &cat, nil
}

// UpdateCategory merges the patch over the stored category and returns the
// result. The id and creation time are preserved. Returns
// ErrCategoryNotFound for an unknown id.
func UpdateCategory(ctx context.Context, db *sql.DB, id string, patch model.CategoryPatch) (*model.Category, error) {
	categories, err := loadCategories(ctx, db)
	if err != nil {
		return nil, err
	}

	for i := range categories {
		if categories[i].ID != id {
			continue
		}
		patch.Apply(&categories[i])
		if err := saveCategories(ctx, db, categories); err != nil {
			return nil, err
		}
		return &categories[i], nil
	}
	return nil, ErrCategoryNotFound
}

// DeleteCategory removes the category with the given id and clears the
// reference on every item that pointed at it. Both collections are rewritten
// in one transaction, so callers never observe a dangling reference. Deleting
// an absent id is a no-op for the category collection, but references are
// cleared either way.
func DeleteCategory(ctx context.Context, db *sql.DB, id string) error {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning transaction: %w", err)
	}
	defer tx.Rollback()

	categories, err := loadCategories(ctx, tx)
	if err != nil {
		return err
	}
	kept := categories[:0]
	for _, cat := range categories {
		if cat.ID != id {
			kept = append(kept, cat)
		}
	}
	if err := saveCategories(ctx, tx, kept); err != nil {
		return err
	}

	items, err := loadItems(ctx, tx)
	if err != nil {
		return err
	}
	changed := false
	for i := range items {
		if items[i].CategoryID == id {
			items[i].CategoryID = ""
			changed = true
		}
	}
	if changed {
		if err := saveItems(ctx, tx, items); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing category delete: %w", err)
	}
	return nil
}
