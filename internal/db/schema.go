package db

import (
	"database/sql"
	"fmt"
)

// schema is the full database schema. Storage is a key/value table holding
// one JSON-encoded collection per key; records never get rows of their own.
const schema = `
CREATE TABLE IF NOT EXISTS collections (
    key  TEXT PRIMARY KEY,
    data TEXT NOT NULL
);
`

// EnsureSchema creates all tables if they don't already exist.
func EnsureSchema(db *sql.DB) error {
	_, err := db.Exec(schema)
	if err != nil {
		return fmt.Errorf("creating schema: %w", err)
	}
	return nil
}
